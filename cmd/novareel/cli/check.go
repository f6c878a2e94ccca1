package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Show the effective configuration and credential status",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(false)
	if err != nil {
		return err
	}

	infoStyle.Println("Amazon Bedrock video generation configuration")
	fmt.Println()
	fmt.Printf("  Region:         %s\n", settings.Region)
	fmt.Printf("  Video model:    %s\n", settings.ModelID)
	fmt.Printf("  Image model:    %s\n", settings.ImageModelID)
	fmt.Printf("  Duration:       %d ms\n", settings.DurationMS)
	fmt.Printf("  Quality:        %s\n", settings.Quality)
	fmt.Printf("  Aspect ratio:   %s\n", settings.AspectRatio)
	fmt.Printf("  Output dir:     %s\n", settings.OutputDir)
	fmt.Printf("  Output S3 URI:  %s\n", orUnset(settings.OutputS3URI))
	fmt.Printf("  Poll interval:  %s\n", settings.PollInterval)
	fmt.Printf("  Max wait:       %s\n", settings.MaxWait)
	fmt.Println()

	if settings.HasCredentials() {
		successStyle.Printf("%s AWS credentials are configured.\n", checkmark)
	} else {
		warningStyle.Printf("%s AWS credentials are not set.\n", xmark)
		mutedStyle.Println("  Set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY in the environment or in your .env file.")
	}
	if settings.OutputS3URI == "" {
		warningStyle.Printf("%s OUTPUT_S3_URI is not set; video generation requires an S3 destination.\n", xmark)
	}
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
