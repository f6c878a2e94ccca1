package novareel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testDefaults = Defaults{
	ModelID:     "amazon.nova-reel-v1:1",
	DurationMS:  5000,
	Quality:     QualityStandard,
	AspectRatio: "16:9",
}

func TestBuildRequestAppliesDefaults(t *testing.T) {
	req, err := BuildRequest(RequestInput{Prompt: "a cat on a skateboard"}, testDefaults)
	require.NoError(t, err)
	require.Equal(t, "a cat on a skateboard", req.Prompt)
	require.Equal(t, "amazon.nova-reel-v1:1", req.ModelID)
	require.Equal(t, 5000, req.DurationMS)
	require.Equal(t, QualityStandard, req.Quality)
	require.Equal(t, "16:9", req.AspectRatio)
	require.Equal(t, TaskTextToVideo, req.TaskType())
}

func TestBuildRequestExplicitOverrides(t *testing.T) {
	req, err := BuildRequest(RequestInput{
		Prompt:     "a storm over the sea",
		ModelID:    "amazon.nova-reel-v1:0",
		DurationMS: 6000,
		Quality:    QualityPremium,
		Seed:       42,
	}, testDefaults)
	require.NoError(t, err)
	require.Equal(t, "amazon.nova-reel-v1:0", req.ModelID)
	require.Equal(t, 6000, req.DurationMS)
	require.Equal(t, QualityPremium, req.Quality)
	require.Equal(t, int64(42), req.Seed)
}

func TestBuildRequestIsPure(t *testing.T) {
	in := RequestInput{Prompt: "a cat on a skateboard", Seed: 7}
	first, err := BuildRequest(in, testDefaults)
	require.NoError(t, err)
	second, err := BuildRequest(in, testDefaults)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestBuildRequestEmptyStoryboard(t *testing.T) {
	_, err := BuildRequest(RequestInput{Storyboard: []Shot{}}, testDefaults)
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Reason, "at least one shot")
}

func TestBuildRequestStoryboard(t *testing.T) {
	req, err := BuildRequest(RequestInput{
		Storyboard: []Shot{
			{Prompt: "a cat waking up in a sunny room"},
			{Prompt: "the cat stretches and yawns", DurationMS: 3000},
			{ImageB64: "aW1n", ImageFormat: "png"},
		},
	}, testDefaults)
	require.NoError(t, err)
	require.Equal(t, TaskImageToVideo, req.TaskType())
	require.Len(t, req.Storyboard, 3)
	require.Equal(t, 3000, req.Storyboard[1].DurationMS)
	require.Zero(t, req.Storyboard[0].DurationMS)
}

func TestValidateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		in   RequestInput
		want string
	}{
		{
			name: "missing prompt",
			in:   RequestInput{},
			want: "prompt is required",
		},
		{
			name: "empty shot",
			in:   RequestInput{Storyboard: []Shot{{}}},
			want: "neither a prompt nor a reference image",
		},
		{
			name: "negative shot duration",
			in: RequestInput{Storyboard: []Shot{
				{Prompt: "ok", DurationMS: -1},
			}},
			want: "negative duration",
		},
		{
			name: "negative duration",
			in:   RequestInput{Prompt: "ok", DurationMS: -5},
			want: "duration must be positive",
		},
		{
			name: "excessive duration",
			in:   RequestInput{Prompt: "ok", DurationMS: 500000},
			want: "cannot exceed",
		},
		{
			name: "bad quality",
			in:   RequestInput{Prompt: "ok", Quality: "ultra"},
			want: "quality must be",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRequest(tt.in, testDefaults)
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Contains(t, ve.Reason, tt.want)
		})
	}
}

func TestResultTerminal(t *testing.T) {
	require.True(t, (&GenerationResult{Status: StatusSucceeded}).Terminal())
	require.True(t, (&GenerationResult{Status: StatusFailed}).Terminal())
	require.False(t, (&GenerationResult{Status: StatusInProgress}).Terminal())
}
