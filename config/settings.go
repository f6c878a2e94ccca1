// Package config loads runtime settings for video generation from,
// in order of increasing precedence: built-in defaults, an optional
// YAML settings file, a .env file, and the process environment.
// Values already present in the environment always win; the .env file
// never overrides them.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/jaehyun-dev/novareel"
)

// Built-in defaults, matching the .env.example shipped with the
// project.
const (
	DefaultRegion       = "us-east-1"
	DefaultModelID      = "amazon.nova-reel-v1:1"
	DefaultImageModelID = "stability.stable-diffusion-xl-v1"
	DefaultDurationMS   = 5000
	DefaultQuality      = novareel.QualityStandard
	DefaultAspectRatio  = "16:9"
	DefaultOutputDir    = "output"
	DefaultPollInterval = 5 * time.Second
	DefaultMaxWait      = 5 * time.Minute
)

// Settings holds everything needed to talk to Bedrock and to shape
// generation requests. Loaded once at startup and treated as
// immutable afterwards.
type Settings struct {
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Region          string `yaml:"region"`

	// ModelID is the default video model
	ModelID string `yaml:"model_id"`

	// ImageModelID is the text-to-image model used to render
	// storyboard frames from prompts
	ImageModelID string `yaml:"image_model_id"`

	DurationMS  int    `yaml:"duration_ms"`
	Quality     string `yaml:"quality"`
	AspectRatio string `yaml:"aspect_ratio"`

	// OutputDir is where downloaded videos and frames are written
	OutputDir string `yaml:"output_dir"`

	// OutputS3URI is the S3 destination Bedrock writes generated
	// videos to (s3://bucket[/prefix]). Required for generation.
	OutputS3URI string `yaml:"output_s3_uri"`

	PollInterval time.Duration `yaml:"poll_interval"`
	MaxWait      time.Duration `yaml:"max_wait"`

	// AllowDefaultCredentials permits falling back to the SDK's
	// default credential provider chain when no static keys are set
	AllowDefaultCredentials bool `yaml:"allow_default_credentials"`
}

// GenerationDefaults returns the request defaults derived from the
// settings, for use with novareel.BuildRequest.
func (s *Settings) GenerationDefaults() novareel.Defaults {
	return novareel.Defaults{
		ModelID:     s.ModelID,
		DurationMS:  s.DurationMS,
		Quality:     s.Quality,
		AspectRatio: s.AspectRatio,
	}
}

// HasCredentials indicates whether static credentials are configured.
func (s *Settings) HasCredentials() bool {
	return s.AccessKeyID != "" && s.SecretAccessKey != ""
}

// Validate confirms that required fields are present. It returns a
// *novareel.ConfigError naming the first missing field.
func (s *Settings) Validate() error {
	if !s.HasCredentials() && !s.AllowDefaultCredentials {
		if s.AccessKeyID == "" {
			return &novareel.ConfigError{Field: "AWS_ACCESS_KEY_ID"}
		}
		return &novareel.ConfigError{Field: "AWS_SECRET_ACCESS_KEY"}
	}
	if s.Region == "" {
		return &novareel.ConfigError{Field: "AWS_REGION"}
	}
	return nil
}

// Option customizes Load.
type Option func(*loadOptions)

type loadOptions struct {
	envFile        string
	file           string
	skipValidation bool
}

// WithEnvFile sets the .env file path. Defaults to ".env" in the
// working directory.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) { o.envFile = path }
}

// WithFile sets the YAML settings file path. By default
// "novareel.yaml" is read if it exists.
func WithFile(path string) Option {
	return func(o *loadOptions) { o.file = path }
}

// WithoutValidation loads settings without requiring credentials.
// Used by the configuration checker, which reports missing values
// instead of failing on them.
func WithoutValidation() Option {
	return func(o *loadOptions) { o.skipValidation = true }
}

// Load builds Settings from defaults, the optional settings file, the
// optional .env file and the process environment.
func Load(opts ...Option) (*Settings, error) {
	options := &loadOptions{envFile: ".env", file: "novareel.yaml"}
	for _, opt := range opts {
		opt(options)
	}

	s := &Settings{
		Region:       DefaultRegion,
		ModelID:      DefaultModelID,
		ImageModelID: DefaultImageModelID,
		DurationMS:   DefaultDurationMS,
		Quality:      DefaultQuality,
		AspectRatio:  DefaultAspectRatio,
		OutputDir:    DefaultOutputDir,
		PollInterval: DefaultPollInterval,
		MaxWait:      DefaultMaxWait,
	}

	if options.file != "" {
		if data, err := os.ReadFile(options.file); err == nil {
			if err := yaml.Unmarshal(data, s); err != nil {
				return nil, &novareel.ConfigError{Field: options.file, Reason: err.Error()}
			}
		}
	}

	// Existing environment variables are never overridden by the
	// .env file (godotenv.Load semantics).
	if options.envFile != "" {
		if _, err := os.Stat(options.envFile); err == nil {
			if err := godotenv.Load(options.envFile); err != nil {
				return nil, &novareel.ConfigError{Field: options.envFile, Reason: err.Error()}
			}
		}
	}

	readEnv(&s.AccessKeyID, "AWS_ACCESS_KEY_ID")
	readEnv(&s.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	readEnv(&s.Region, "AWS_REGION")
	readEnv(&s.ModelID, "DEFAULT_MODEL_ID")
	readEnv(&s.ImageModelID, "IMAGE_MODEL_ID")
	readEnv(&s.Quality, "DEFAULT_IMAGE_QUALITY")
	readEnv(&s.OutputDir, "OUTPUT_DIR")
	readEnv(&s.OutputS3URI, "OUTPUT_S3_URI")
	if err := readEnvInt(&s.DurationMS, "DEFAULT_DURATION"); err != nil {
		return nil, err
	}

	if !options.skipValidation {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func readEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func readEnvInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return &novareel.ConfigError{Field: key, Reason: "must be an integer"}
	}
	*dst = n
	return nil
}
