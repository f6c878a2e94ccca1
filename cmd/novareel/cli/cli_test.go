package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootHelp(t *testing.T) {
	rootCmd.SetArgs([]string{"--help"})
	require.NoError(t, rootCmd.Execute())
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"generate", "storyboard", "status", "check"} {
		require.True(t, names[want], "command %s not registered", want)
	}
}

func TestGenerateHelp(t *testing.T) {
	rootCmd.SetArgs([]string{"generate", "--help"})
	require.NoError(t, rootCmd.Execute())
}

func TestStoryboardHelp(t *testing.T) {
	rootCmd.SetArgs([]string{"storyboard", "--help"})
	require.NoError(t, rootCmd.Execute())
}

func TestStatusRequiresARN(t *testing.T) {
	orig := statusInvocationARN
	defer func() { statusInvocationARN = orig }()

	statusInvocationARN = ""
	err := runStatus(statusCmd, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invocation-arn is required")
}
