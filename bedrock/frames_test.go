package bedrock

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/stretchr/testify/require"

	"github.com/jaehyun-dev/novareel"
)

func frameResponse(t *testing.T, imageData string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"artifacts": []map[string]any{
			{"base64": base64.StdEncoding.EncodeToString([]byte(imageData)), "finishReason": "SUCCESS"},
		},
	})
	require.NoError(t, err)
	return body
}

func TestGenerateFrames(t *testing.T) {
	var requests []sdxlRequest
	rt := &mockRuntime{
		InvokeModelFunc: func(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
			var req sdxlRequest
			require.NoError(t, json.Unmarshal(params.Body, &req))
			requests = append(requests, req)
			require.Equal(t, "stability.stable-diffusion-xl-v1", aws.ToString(params.ModelId))
			return &bedrockruntime.InvokeModelOutput{Body: frameResponse(t, "frame")}, nil
		},
	}
	c := newTestClient(testSettings(), rt)
	dir := filepath.Join(t.TempDir(), "storyboard")

	shots, err := c.GenerateFrames(context.Background(), []string{
		"a cat waking up in a sunny room",
		"the cat stretches and yawns",
	}, dir)
	require.NoError(t, err)
	require.Len(t, shots, 2)
	require.Equal(t, 2, rt.invokeCalls)

	require.Equal(t, "a cat waking up in a sunny room", requests[0].TextPrompts[0].Text)
	require.Equal(t, 1024, requests[0].Width)
	require.Equal(t, 576, requests[0].Height)

	require.Equal(t, filepath.Join(dir, "storyboard_01.png"), shots[0].ImagePath)
	require.Equal(t, "png", shots[0].ImageFormat)
	require.FileExists(t, shots[0].ImagePath)
	require.FileExists(t, filepath.Join(dir, "storyboard_02.png"))
}

func TestGenerateFramesEmpty(t *testing.T) {
	c := newTestClient(testSettings(), &mockRuntime{})
	_, err := c.GenerateFrames(context.Background(), nil, t.TempDir())
	var ve *novareel.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestGenerateFramesNoArtifacts(t *testing.T) {
	rt := &mockRuntime{
		InvokeModelFunc: func(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
			return &bedrockruntime.InvokeModelOutput{Body: []byte(`{"artifacts": []}`)}, nil
		},
	}
	c := newTestClient(testSettings(), rt)
	_, err := c.GenerateFrames(context.Background(), []string{"a prompt"}, t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no artifacts")
}
