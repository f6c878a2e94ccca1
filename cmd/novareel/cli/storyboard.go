package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jaehyun-dev/novareel"
	"github.com/jaehyun-dev/novareel/bedrock"
	"github.com/jaehyun-dev/novareel/storyboard"
)

// Default shot prompts used when no storyboard input is given.
var defaultShotPrompts = []string{
	"A cat waking up in a sunny room",
	"The cat stretches and yawns",
	"The cat walks to the window",
	"The cat looks outside at birds flying",
}

var (
	storyboardDir      string
	storyboardManifest string
	storyboardPrompts  []string
	storyboardModelID  string
	storyboardDuration int
	storyboardQuality  string
	storyboardSeed     int64
	storyboardNoWait   bool
)

var storyboardCmd = &cobra.Command{
	Use:   "storyboard",
	Short: "Generate a multi-shot video from a storyboard",
	Long: `Generate a multi-shot video from a storyboard.

The storyboard comes from a directory of reference images (--dir,
sorted by filename), a YAML manifest (--manifest), or a list of shot
prompts (--shot, repeatable). With prompts alone, reference frames are
first rendered with the configured text-to-image model.`,
	RunE: runStoryboard,
}

func runStoryboard(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(true)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := bedrock.New(ctx, settings, bedrock.WithLogger(newLogger()))
	if err != nil {
		return err
	}

	var shots []novareel.Shot
	switch {
	case storyboardDir != "":
		shots, err = storyboard.LoadDir(storyboardDir)
	case storyboardManifest != "":
		shots, err = storyboard.LoadManifest(storyboardManifest)
	default:
		infoStyle.Printf("Rendering %d storyboard frames...\n", len(storyboardPrompts))
		shots, err = client.GenerateFrames(ctx, storyboardPrompts,
			filepath.Join(settings.OutputDir, "storyboard"))
	}
	if err != nil {
		return err
	}
	infoStyle.Printf("Storyboard ready: %d shots\n", len(shots))

	req, err := novareel.BuildRequest(novareel.RequestInput{
		Storyboard: shots,
		ModelID:    storyboardModelID,
		DurationMS: storyboardDuration,
		Quality:    storyboardQuality,
		Seed:       storyboardSeed,
	}, settings.GenerationDefaults())
	if err != nil {
		return err
	}

	res, err := client.Submit(ctx, req)
	if err != nil {
		return err
	}
	infoStyle.Printf("Job submitted: %s\n", res.InvocationARN)

	if storyboardNoWait {
		waitHint(res.InvocationARN)
		return nil
	}

	res, err = client.Wait(ctx, res.InvocationARN)
	if err != nil {
		return err
	}
	return finishResult(ctx, client, settings, res, false)
}

func init() {
	rootCmd.AddCommand(storyboardCmd)

	storyboardCmd.Flags().StringVar(&storyboardDir, "dir", "", "Directory of storyboard images, used in filename order")
	storyboardCmd.Flags().StringVar(&storyboardManifest, "manifest", "", "YAML storyboard manifest")
	storyboardCmd.Flags().StringArrayVar(&storyboardPrompts, "shot", defaultShotPrompts, "Shot prompt (repeatable)")
	storyboardCmd.Flags().StringVarP(&storyboardModelID, "model-id", "m", "", "Bedrock video model id (defaults to the configured model)")
	storyboardCmd.Flags().IntVarP(&storyboardDuration, "duration", "d", 0, "Video duration in milliseconds (defaults to the configured duration)")
	storyboardCmd.Flags().StringVarP(&storyboardQuality, "quality", "q", "", "Image quality: standard or premium")
	storyboardCmd.Flags().Int64Var(&storyboardSeed, "seed", 0, "Generation seed (0 picks a random seed)")
	storyboardCmd.Flags().BoolVar(&storyboardNoWait, "no-wait", false, "Submit the job without waiting for completion")
}
