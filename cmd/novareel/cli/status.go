package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaehyun-dev/novareel"
	"github.com/jaehyun-dev/novareel/bedrock"
)

var statusInvocationARN string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the status of a video generation job",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if statusInvocationARN == "" {
		return &novareel.ValidationError{Reason: "invocation-arn is required"}
	}

	settings, err := loadSettings(true)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := bedrock.New(ctx, settings, bedrock.WithLogger(newLogger()))
	if err != nil {
		return err
	}

	res, err := client.Status(ctx, statusInvocationARN)
	if err != nil {
		return err
	}

	fmt.Printf("Job ID: %s\n", res.JobID)
	switch res.Status {
	case novareel.StatusSucceeded:
		successStyle.Printf("%s Video generation succeeded\n", checkmark)
		fmt.Printf("Video: %s\n", res.VideoURI)
	case novareel.StatusFailed:
		errorStyle.Printf("%s Video generation failed: %s\n", xmark, res.ErrorDetail)
	default:
		infoStyle.Println("Video generation is in progress...")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVarP(&statusInvocationARN, "invocation-arn", "i", "", "Invocation ARN returned at submit time (required)")
}
