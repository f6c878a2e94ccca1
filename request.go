package novareel

// Defaults carries the configured fallback values applied when a
// request does not specify them explicitly.
type Defaults struct {
	ModelID     string
	DurationMS  int
	Quality     string
	AspectRatio string
}

// RequestInput is the raw, possibly incomplete input to BuildRequest,
// typically assembled from CLI flags.
type RequestInput struct {
	Prompt         string
	Storyboard     []Shot
	ModelID        string
	DurationMS     int
	Quality        string
	AspectRatio    string
	Seed           int64
	NegativePrompt string
	StylePreset    string
}

// BuildRequest assembles a validated GenerationRequest from the given
// input, filling in defaults for model id, duration, quality and
// aspect ratio where the input leaves them unset. It is a pure
// function: identical inputs produce identical requests.
func BuildRequest(in RequestInput, d Defaults) (*GenerationRequest, error) {
	req := &GenerationRequest{
		Prompt:         in.Prompt,
		Storyboard:     in.Storyboard,
		ModelID:        in.ModelID,
		DurationMS:     in.DurationMS,
		Quality:        in.Quality,
		AspectRatio:    in.AspectRatio,
		Seed:           in.Seed,
		NegativePrompt: in.NegativePrompt,
		StylePreset:    in.StylePreset,
	}
	if req.ModelID == "" {
		req.ModelID = d.ModelID
	}
	if req.DurationMS == 0 {
		req.DurationMS = d.DurationMS
	}
	if req.Quality == "" {
		req.Quality = d.Quality
	}
	if req.AspectRatio == "" {
		req.AspectRatio = d.AspectRatio
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}
