package bedrock

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/jaehyun-dev/novareel"
)

// Request/response shapes for the Stable Diffusion XL text-to-image
// model used to render storyboard frames.
type sdxlRequest struct {
	TextPrompts []sdxlPrompt `json:"text_prompts"`
	CFGScale    int          `json:"cfg_scale"`
	Steps       int          `json:"steps"`
	Seed        int64        `json:"seed"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
}

type sdxlPrompt struct {
	Text string `json:"text"`
}

type sdxlResponse struct {
	Artifacts []struct {
		Base64       string `json:"base64"`
		FinishReason string `json:"finishReason"`
	} `json:"artifacts"`
}

// GenerateFrames renders one reference image per prompt with the
// configured text-to-image model, saves each frame under dir, and
// returns the resulting storyboard shots in prompt order.
func (c *Client) GenerateFrames(ctx context.Context, prompts []string, dir string) ([]novareel.Shot, error) {
	if len(prompts) == 0 {
		return nil, &novareel.ValidationError{Reason: "storyboard must contain at least one shot"}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storyboard directory: %w", err)
	}

	shots := make([]novareel.Shot, 0, len(prompts))
	for i, prompt := range prompts {
		c.logger.Info("generating storyboard frame",
			"frame", i+1, "total", len(prompts), "prompt", prompt)

		// 16:9, matching the video aspect ratio
		body, err := json.Marshal(sdxlRequest{
			TextPrompts: []sdxlPrompt{{Text: prompt}},
			CFGScale:    7,
			Steps:       30,
			Seed:        randomSeed(),
			Width:       1024,
			Height:      576,
		})
		if err != nil {
			return nil, fmt.Errorf("encoding image request: %w", err)
		}

		out, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
			ModelId:     aws.String(c.settings.ImageModelID),
			ContentType: aws.String("application/json"),
			Accept:      aws.String("application/json"),
			Body:        body,
		})
		if err != nil {
			return nil, mapError(err)
		}

		var resp sdxlResponse
		if err := json.Unmarshal(out.Body, &resp); err != nil {
			return nil, fmt.Errorf("decoding image response: %w", err)
		}
		if len(resp.Artifacts) == 0 {
			return nil, fmt.Errorf("image model returned no artifacts for frame %d", i+1)
		}

		data, err := base64.StdEncoding.DecodeString(resp.Artifacts[0].Base64)
		if err != nil {
			return nil, fmt.Errorf("decoding frame %d image data: %w", i+1, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("storyboard_%02d.png", i+1))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("saving storyboard frame: %w", err)
		}
		c.logger.Info("storyboard frame saved", "path", path)

		shots = append(shots, novareel.Shot{
			Prompt:      prompt,
			ImagePath:   path,
			ImageB64:    resp.Artifacts[0].Base64,
			ImageFormat: "png",
		})

		if c.framePause > 0 && i < len(prompts)-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.framePause):
			}
		}
	}
	return shots, nil
}
