package cli

import "github.com/fatih/color"

var (
	successStyle = color.New(color.FgGreen, color.Bold)
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	infoStyle    = color.New(color.FgCyan)
	mutedStyle   = color.New(color.FgWhite, color.Faint)
)

const (
	checkmark = "✓"
	xmark     = "✗"
)
