// Package cli implements the novareel command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jaehyun-dev/novareel"
	"github.com/jaehyun-dev/novareel/config"
	"github.com/jaehyun-dev/novareel/slogger"
)

var (
	flagRegion       string
	flagEnvFile      string
	flagSettingsFile string
	flagOutputDir    string
	flagLogLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "novareel",
	Short: "Generate videos with Amazon Bedrock",
	Long: `novareel generates videos with Amazon Bedrock's video models.

Credentials and defaults are read from the environment, an optional
.env file and an optional novareel.yaml settings file. Run
'novareel check' to inspect the effective configuration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Errors surface here with guidance text and a
// non-zero exit code. An interrupt cancels the context, aborting any
// in-flight wait; the remote job keeps running.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errorStyle.Fprintln(os.Stderr, novareel.Describe(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRegion, "region", "", "AWS region (overrides AWS_REGION)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Path to the .env file")
	rootCmd.PersistentFlags().StringVar(&flagSettingsFile, "settings", "novareel.yaml", "Path to the YAML settings file")
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output-dir", "", "Directory for downloaded videos and frames")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// loadSettings builds Settings from the configured sources and
// applies flag overrides.
func loadSettings(validate bool) (*config.Settings, error) {
	opts := []config.Option{
		config.WithEnvFile(flagEnvFile),
		config.WithFile(flagSettingsFile),
	}
	if !validate {
		opts = append(opts, config.WithoutValidation())
	}
	settings, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}
	if flagRegion != "" {
		settings.Region = flagRegion
	}
	if flagOutputDir != "" {
		settings.OutputDir = flagOutputDir
	}
	return settings, nil
}

func newLogger() slogger.Logger {
	return slogger.New(slogger.LevelFromString(flagLogLevel))
}

// waitHint tells the user how to check on a job later.
func waitHint(invocationARN string) {
	mutedStyle.Println(fmt.Sprintf(
		"Check it later with: novareel status --invocation-arn %s", invocationARN))
}
