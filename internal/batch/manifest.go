package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered image in the output manifest.
type ManifestEntry struct {
	Name      string  `json:"name"`
	Scene     string  `json:"scene"`
	Image     string  `json:"image"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Error     string  `json:"error,omitempty"`
}

// WriteManifest writes the results as JSON. Image paths are made relative to
// the manifest's directory when possible.
func WriteManifest(path string, results []Result) error {
	base := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		img := r.Output
		if rel, err := filepath.Rel(base, r.Output); err == nil {
			img = filepath.ToSlash(rel)
		}
		entries[i] = ManifestEntry{
			Name:      r.Name,
			Scene:     r.Scene,
			Image:     img,
			Width:     r.Width,
			Height:    r.Height,
			ElapsedMS: float64(r.Elapsed.Microseconds()) / 1000,
			Error:     r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(base, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
