package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaehyun-dev/novareel"
	"github.com/jaehyun-dev/novareel/bedrock"
	"github.com/jaehyun-dev/novareel/config"
)

const defaultPrompt = "A cat playing with a ball in a sunny garden"

var (
	generatePrompt         string
	generateModelID        string
	generateDuration       int
	generateQuality        string
	generateSeed           int64
	generateNegativePrompt string
	generateStylePreset    string
	generateNoWait         bool
	generateNoDownload     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a video from a text prompt",
	Long: `Generate a video from a text prompt.

The job is submitted to Bedrock and polled until it finishes, then the
video is downloaded to the output directory. Use --no-wait to submit
without waiting.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(true)
	if err != nil {
		return err
	}

	req, err := novareel.BuildRequest(novareel.RequestInput{
		Prompt:         generatePrompt,
		ModelID:        generateModelID,
		DurationMS:     generateDuration,
		Quality:        generateQuality,
		Seed:           generateSeed,
		NegativePrompt: generateNegativePrompt,
		StylePreset:    generateStylePreset,
	}, settings.GenerationDefaults())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := bedrock.New(ctx, settings, bedrock.WithLogger(newLogger()))
	if err != nil {
		return err
	}

	res, err := client.Submit(ctx, req)
	if err != nil {
		return err
	}
	infoStyle.Printf("Job submitted: %s\n", res.InvocationARN)

	if generateNoWait {
		waitHint(res.InvocationARN)
		return nil
	}

	res, err = client.Wait(ctx, res.InvocationARN)
	if err != nil {
		return err
	}
	return finishResult(ctx, client, settings, res, generateNoDownload)
}

// finishResult handles a terminal generation result: report failures,
// and download the video unless downloading was disabled.
func finishResult(ctx context.Context, client *bedrock.Client, settings *config.Settings, res *novareel.GenerationResult, noDownload bool) error {
	if res.Status == novareel.StatusFailed {
		if res.ErrorDetail == "timeout" {
			return &novareel.RemoteError{
				Code:    novareel.CodeTimeout,
				Message: fmt.Sprintf("job %s did not finish in time", res.JobID),
			}
		}
		return fmt.Errorf("video generation failed: %s", res.ErrorDetail)
	}

	successStyle.Printf("%s Video generated: %s\n", checkmark, res.VideoURI)
	if noDownload {
		return nil
	}
	path, err := client.SaveVideo(ctx, res, settings.OutputDir)
	if err != nil {
		return err
	}
	successStyle.Printf("%s Saved to %s\n", checkmark, path)
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generatePrompt, "prompt", "p", defaultPrompt, "Text description of the desired video")
	generateCmd.Flags().StringVarP(&generateModelID, "model-id", "m", "", "Bedrock video model id (defaults to the configured model)")
	generateCmd.Flags().IntVarP(&generateDuration, "duration", "d", 0, "Video duration in milliseconds (defaults to the configured duration)")
	generateCmd.Flags().StringVarP(&generateQuality, "quality", "q", "", "Image quality: standard or premium")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Generation seed (0 picks a random seed)")
	generateCmd.Flags().StringVar(&generateNegativePrompt, "negative-prompt", "", "What the video should avoid")
	generateCmd.Flags().StringVar(&generateStylePreset, "style-preset", "", "Style preset (e.g. photographic)")
	generateCmd.Flags().BoolVar(&generateNoWait, "no-wait", false, "Submit the job without waiting for completion")
	generateCmd.Flags().BoolVar(&generateNoDownload, "no-download", false, "Skip downloading the finished video")
}
