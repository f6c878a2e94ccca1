// Package storyboard loads multi-shot storyboards for video
// generation, either from a directory of reference images or from a
// YAML manifest describing each shot.
package storyboard

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jaehyun-dev/novareel"
)

// Image extensions recognized when scanning a storyboard directory.
var imageExtensions = map[string]string{
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".png":  "png",
	".bmp":  "bmp",
	".gif":  "gif",
	".webp": "webp",
}

// LoadDir reads every image file in dir, sorted by filename, and
// returns one shot per image. Non-image files are ignored. An empty
// or image-free directory is a validation error.
func LoadDir(dir string) ([]novareel.Shot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading storyboard directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := imageExtensions[ext]; ok {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, &novareel.ValidationError{
			Reason: fmt.Sprintf("no image files found in %s", dir),
		}
	}
	sort.Strings(paths)

	shots := make([]novareel.Shot, 0, len(paths))
	for _, path := range paths {
		shot, err := shotFromImage(path)
		if err != nil {
			return nil, err
		}
		shots = append(shots, shot)
	}
	return shots, nil
}

// Manifest is the YAML shape of a storyboard file.
type Manifest struct {
	Shots []novareel.Shot `yaml:"shots"`
}

// LoadManifest reads a YAML storyboard manifest. Shot image paths are
// resolved relative to the manifest's directory and inlined as
// base64.
func LoadManifest(path string) ([]novareel.Shot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading storyboard manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &novareel.ValidationError{
			Reason: fmt.Sprintf("malformed storyboard manifest %s: %v", path, err),
		}
	}
	if len(m.Shots) == 0 {
		return nil, &novareel.ValidationError{
			Reason: fmt.Sprintf("storyboard manifest %s contains no shots", path),
		}
	}

	base := filepath.Dir(path)
	for i := range m.Shots {
		shot := &m.Shots[i]
		if shot.ImagePath == "" {
			continue
		}
		imgPath := shot.ImagePath
		if !filepath.IsAbs(imgPath) {
			imgPath = filepath.Join(base, imgPath)
		}
		loaded, err := shotFromImage(imgPath)
		if err != nil {
			return nil, err
		}
		shot.ImagePath = loaded.ImagePath
		shot.ImageB64 = loaded.ImageB64
		shot.ImageFormat = loaded.ImageFormat
	}
	return m.Shots, nil
}

// FromPrompts builds an image-free storyboard, one shot per prompt.
func FromPrompts(prompts []string) []novareel.Shot {
	shots := make([]novareel.Shot, 0, len(prompts))
	for _, prompt := range prompts {
		shots = append(shots, novareel.Shot{Prompt: prompt})
	}
	return shots
}

func shotFromImage(path string) (novareel.Shot, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := imageExtensions[ext]
	if !ok {
		return novareel.Shot{}, &novareel.ValidationError{
			Reason: fmt.Sprintf("unsupported image format: %s", path),
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return novareel.Shot{}, fmt.Errorf("reading storyboard image: %w", err)
	}
	return novareel.Shot{
		ImagePath:   path,
		ImageB64:    base64.StdEncoding.EncodeToString(data),
		ImageFormat: format,
	}, nil
}
