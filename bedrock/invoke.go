package bedrock

import (
	"context"
	"encoding/binary"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/google/uuid"

	"github.com/jaehyun-dev/novareel"
	"github.com/jaehyun-dev/novareel/config"
)

// Submit starts an async video generation job and returns immediately
// with an in-progress result carrying the invocation ARN.
func (c *Client) Submit(ctx context.Context, req *novareel.GenerationRequest) (*novareel.GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if c.settings.OutputS3URI == "" {
		return nil, &novareel.ConfigError{Field: "OUTPUT_S3_URI"}
	}

	seed := req.Seed
	if seed == 0 {
		seed = randomSeed()
	}

	c.logger.Info("submitting video generation job",
		"model_id", req.ModelID,
		"task_type", req.TaskType(),
		"duration_ms", req.DurationMS,
		"seed", seed)

	out, err := c.runtime.StartAsyncInvoke(ctx, &bedrockruntime.StartAsyncInvokeInput{
		ModelId:            aws.String(req.ModelID),
		ModelInput:         document.NewLazyDocument(modelInput(req, seed)),
		ClientRequestToken: aws.String(uuid.NewString()),
		OutputDataConfig: &types.AsyncInvokeOutputDataConfigMemberS3OutputDataConfig{
			Value: types.AsyncInvokeS3OutputDataConfig{
				S3Uri: aws.String(c.settings.OutputS3URI),
			},
		},
	})
	if err != nil {
		return nil, mapError(err)
	}

	arn := aws.ToString(out.InvocationArn)
	c.logger.Info("job submitted", "invocation_arn", arn)
	return &novareel.GenerationResult{
		Status:        novareel.StatusInProgress,
		InvocationARN: arn,
		JobID:         jobID(arn),
	}, nil
}

// Status performs a single poll of the job identified by the
// invocation ARN.
func (c *Client) Status(ctx context.Context, invocationARN string) (*novareel.GenerationResult, error) {
	out, err := c.runtime.GetAsyncInvoke(ctx, &bedrockruntime.GetAsyncInvokeInput{
		InvocationArn: aws.String(invocationARN),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resultFromInvoke(out), nil
}

// Wait polls the job at the configured interval until it reaches a
// terminal state or the configured maximum wait elapses. A job still
// running at the deadline yields a failed result with detail
// "timeout"; the remote job is left running. Context cancellation
// aborts the wait.
func (c *Client) Wait(ctx context.Context, invocationARN string) (*novareel.GenerationResult, error) {
	interval := c.settings.PollInterval
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}
	maxWait := c.settings.MaxWait
	if maxWait <= 0 {
		maxWait = config.DefaultMaxWait
	}
	deadline := time.Now().Add(maxWait)

	for {
		res, err := c.Status(ctx, invocationARN)
		if err != nil {
			return nil, err
		}
		if res.Terminal() {
			return res, nil
		}
		c.logger.Info("job in progress", "job_id", res.JobID)

		if time.Until(deadline) < interval {
			return &novareel.GenerationResult{
				Status:        novareel.StatusFailed,
				InvocationARN: invocationARN,
				JobID:         jobID(invocationARN),
				ErrorDetail:   "timeout",
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}

// SubmitAndWait submits the request and blocks until the job reaches
// a terminal state or the bounded wait elapses.
func (c *Client) SubmitAndWait(ctx context.Context, req *novareel.GenerationRequest) (*novareel.GenerationResult, error) {
	res, err := c.Submit(ctx, req)
	if err != nil {
		return nil, err
	}
	return c.Wait(ctx, res.InvocationARN)
}

// modelInput builds the model input document for the video model.
func modelInput(req *novareel.GenerationRequest, seed int64) map[string]any {
	body := map[string]any{
		"jobType":      "video-generation",
		"taskType":     req.TaskType(),
		"seed":         seed,
		"duration":     req.DurationMS,
		"aspectRatio":  req.AspectRatio,
		"imageQuality": req.Quality,
	}
	if len(req.Storyboard) > 0 {
		shots := make([]map[string]any, 0, len(req.Storyboard))
		for _, s := range req.Storyboard {
			shot := map[string]any{}
			if s.Prompt != "" {
				shot["prompt"] = s.Prompt
			}
			if s.ImageB64 != "" {
				shot["base64EncodedImage"] = s.ImageB64
			}
			if s.DurationMS > 0 {
				shot["duration"] = s.DurationMS
			}
			shots = append(shots, shot)
		}
		body["storyboard"] = shots
	} else {
		body["prompt"] = req.Prompt
	}
	if req.NegativePrompt != "" {
		body["negativePrompt"] = req.NegativePrompt
	}
	if req.StylePreset != "" {
		body["stylePreset"] = req.StylePreset
	}
	return body
}

func resultFromInvoke(out *bedrockruntime.GetAsyncInvokeOutput) *novareel.GenerationResult {
	arn := aws.ToString(out.InvocationArn)
	res := &novareel.GenerationResult{
		InvocationARN: arn,
		JobID:         jobID(arn),
	}
	switch out.Status {
	case types.AsyncInvokeStatusCompleted:
		res.Status = novareel.StatusSucceeded
		res.VideoURI = videoURI(out.OutputDataConfig, res.JobID)
	case types.AsyncInvokeStatusFailed:
		res.Status = novareel.StatusFailed
		res.ErrorDetail = aws.ToString(out.FailureMessage)
	default:
		res.Status = novareel.StatusInProgress
	}
	return res
}

// videoURI resolves the S3 location of the finished video. Bedrock
// writes async invoke output under <configured-uri>/<job-id>/.
func videoURI(cfg types.AsyncInvokeOutputDataConfig, jobID string) string {
	s3cfg, ok := cfg.(*types.AsyncInvokeOutputDataConfigMemberS3OutputDataConfig)
	if !ok {
		return ""
	}
	base := strings.TrimSuffix(aws.ToString(s3cfg.Value.S3Uri), "/")
	if base == "" {
		return ""
	}
	return base + "/" + jobID + "/output.mp4"
}

// jobID extracts the trailing segment of an invocation ARN.
func jobID(invocationARN string) string {
	if i := strings.LastIndex(invocationARN, "/"); i >= 0 {
		return invocationARN[i+1:]
	}
	return invocationARN
}

// randomSeed derives a 32-bit seed from a random UUID.
func randomSeed() int64 {
	id := uuid.New()
	return int64(binary.BigEndian.Uint32(id[:4]))
}
