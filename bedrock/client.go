// Package bedrock wraps the Amazon Bedrock runtime API for video
// generation: submitting async video jobs, polling them to a terminal
// state, rendering storyboard frames, and downloading the produced
// assets from S3.
package bedrock

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jaehyun-dev/novareel/config"
	"github.com/jaehyun-dev/novareel/slogger"
)

// runtimeAPI is the subset of the Bedrock runtime client used by this
// package, extracted so tests can substitute a fake.
type runtimeAPI interface {
	StartAsyncInvoke(ctx context.Context, params *bedrockruntime.StartAsyncInvokeInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.StartAsyncInvokeOutput, error)
	GetAsyncInvoke(ctx context.Context, params *bedrockruntime.GetAsyncInvokeInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.GetAsyncInvokeOutput, error)
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// objectGetter is the subset of the S3 client used for downloads.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Client is a synchronous, single-caller wrapper around the Bedrock
// video generation API. Each CLI run constructs one Client and uses
// it for a single job; there is no shared mutable state.
type Client struct {
	runtime  runtimeAPI
	objects  objectGetter
	settings *config.Settings
	logger   slogger.Logger

	// framePause spaces out storyboard frame invocations to stay
	// under the image model's request rate limit
	framePause time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger slogger.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a Client from the given settings. Static credentials
// from the settings are used when present; otherwise the SDK's
// default credential provider chain applies. Retries for transient
// failures are left to the SDK's built-in retryer.
func New(ctx context.Context, settings *config.Settings, opts ...Option) (*Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(settings.Region),
	}
	if settings.HasCredentials() {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS configuration: %w", err)
	}

	c := &Client{
		runtime:    bedrockruntime.NewFromConfig(cfg),
		objects:    s3.NewFromConfig(cfg),
		settings:   settings,
		logger:     slogger.DevNull{},
		framePause: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}
