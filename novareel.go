// Package novareel provides types and helpers for generating videos
// with Amazon Bedrock's video models. The heavy lifting happens on the
// Bedrock side; this package models the request and result shapes and
// validates inputs before they are submitted.
package novareel

import (
	"fmt"
	"strings"
)

// Status describes a generation job as observed from the remote
// service. Succeeded and failed are terminal.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// Task types understood by the video models.
const (
	TaskTextToVideo  = "text-to-video"
	TaskImageToVideo = "image-to-video"
)

// Recognized image quality levels.
const (
	QualityStandard = "standard"
	QualityPremium  = "premium"
)

// Shot is a single entry in a storyboard: a prompt, an optional
// reference image, and an optional per-shot duration that overrides
// the request-level default.
type Shot struct {
	// Prompt describes this shot
	Prompt string `json:"prompt,omitempty" yaml:"prompt,omitempty"`

	// ImagePath is the local path the reference image was read from
	ImagePath string `json:"image_path,omitempty" yaml:"image,omitempty"`

	// ImageB64 is the base64-encoded reference image
	ImageB64 string `json:"image_b64,omitempty" yaml:"-"`

	// ImageFormat is the image format (png, jpeg, ...)
	ImageFormat string `json:"image_format,omitempty" yaml:"-"`

	// DurationMS overrides the request duration for this shot
	DurationMS int `json:"duration_ms,omitempty" yaml:"duration_ms,omitempty"`
}

// HasImage indicates whether the shot carries a reference image.
func (s *Shot) HasImage() bool {
	return s.ImageB64 != "" || s.ImagePath != ""
}

// GenerationRequest represents one video generation request. Build one
// with BuildRequest so that defaults and validation are applied
// consistently.
type GenerationRequest struct {
	// Prompt is the text description of the desired video
	Prompt string `json:"prompt,omitempty"`

	// Storyboard is an ordered sequence of shots for multi-shot
	// videos. When present, the request is an image-to-video task and
	// Prompt is ignored by the remote model.
	Storyboard []Shot `json:"storyboard,omitempty"`

	// ModelID selects the Bedrock video model
	ModelID string `json:"model_id"`

	// DurationMS is the requested video duration in milliseconds.
	// Shots that carry their own duration take precedence.
	DurationMS int `json:"duration_ms"`

	// Quality is the image quality level (standard or premium)
	Quality string `json:"quality"`

	// AspectRatio of the output video (e.g. "16:9")
	AspectRatio string `json:"aspect_ratio"`

	// Seed for reproducible generation. Zero means the client picks a
	// random seed at submit time.
	Seed int64 `json:"seed,omitempty"`

	// NegativePrompt describes what the video should avoid
	NegativePrompt string `json:"negative_prompt,omitempty"`

	// StylePreset is an optional style hint (e.g. "photographic")
	StylePreset string `json:"style_preset,omitempty"`
}

// TaskType returns the remote task type implied by the request.
func (r *GenerationRequest) TaskType() string {
	if len(r.Storyboard) > 0 {
		return TaskImageToVideo
	}
	return TaskTextToVideo
}

// Validate checks that the request is well-formed. It returns a
// *ValidationError describing the first problem found.
func (r *GenerationRequest) Validate() error {
	if r == nil {
		return &ValidationError{Reason: "request cannot be nil"}
	}
	if r.Storyboard == nil && strings.TrimSpace(r.Prompt) == "" {
		return &ValidationError{Reason: "prompt is required"}
	}
	if r.Storyboard != nil && len(r.Storyboard) == 0 {
		return &ValidationError{Reason: "storyboard must contain at least one shot"}
	}
	for i, shot := range r.Storyboard {
		if strings.TrimSpace(shot.Prompt) == "" && !shot.HasImage() {
			return &ValidationError{
				Reason: fmt.Sprintf("storyboard shot %d has neither a prompt nor a reference image", i+1),
			}
		}
		if shot.DurationMS < 0 {
			return &ValidationError{
				Reason: fmt.Sprintf("storyboard shot %d has a negative duration", i+1),
			}
		}
	}
	if r.ModelID == "" {
		return &ValidationError{Reason: "model id is required"}
	}
	if r.DurationMS <= 0 {
		return &ValidationError{Reason: "duration must be positive"}
	}
	if r.DurationMS > 120000 {
		return &ValidationError{Reason: "duration cannot exceed 120000 ms"}
	}
	switch r.Quality {
	case QualityStandard, QualityPremium:
	default:
		return &ValidationError{
			Reason: fmt.Sprintf("quality must be %q or %q", QualityStandard, QualityPremium),
		}
	}
	return nil
}

// GenerationResult is the outcome of a video generation job.
type GenerationResult struct {
	// Status of the job. Succeeded and failed are terminal.
	Status Status `json:"status"`

	// JobID identifies the job (the trailing segment of the ARN)
	JobID string `json:"job_id,omitempty"`

	// InvocationARN identifies the async invocation on Bedrock
	InvocationARN string `json:"invocation_arn,omitempty"`

	// VideoURI points at the generated video (an S3 URI)
	VideoURI string `json:"video_uri,omitempty"`

	// LocalPath is set once the video has been downloaded
	LocalPath string `json:"local_path,omitempty"`

	// ErrorDetail carries the failure reason for failed jobs
	ErrorDetail string `json:"error_detail,omitempty"`
}

// Terminal indicates whether the job has finished, in either
// direction.
func (r *GenerationResult) Terminal() bool {
	return r.Status == StatusSucceeded || r.Status == StatusFailed
}
