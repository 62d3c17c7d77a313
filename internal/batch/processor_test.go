package batch

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sphere-tracer/internal/camera"
	"sphere-tracer/internal/scene"
)

func smallCamera(w int) camera.Config {
	c := camera.Default()
	c.Width = w
	return c
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	jobs := []Job{
		{Name: "sphere", SceneName: "sphere", Camera: smallCamera(32), Shader: scene.Default(), Output: filepath.Join(dir, "sphere.png"), Scale: 2},
		{Name: "sky", SceneName: "sky", Camera: smallCamera(16), Shader: scene.Sky{}, Output: filepath.Join(dir, "sky.ppm")},
		{Name: "uv", SceneName: "uv", Camera: smallCamera(16), Shader: scene.UVPattern{Blue: 0.25}, Output: filepath.Join(dir, "out", "uv.webp")},
		{Name: "bad", SceneName: "sky", Camera: smallCamera(16), Shader: scene.Sky{}, Output: filepath.Join(dir, "bad.gif")},
	}

	results := Run(Config{Workers: 3}, jobs)
	require.Len(t, results, len(jobs))

	for i, r := range results[:3] {
		assert.True(t, r.Success, "%s: %s", r.Name, r.Error)
		assert.Equal(t, jobs[i].Name, r.Name)
		_, err := os.Stat(jobs[i].Output)
		assert.NoError(t, err)
	}
	assert.Equal(t, 18, results[0].Height)

	assert.False(t, results[3].Success)
	assert.Contains(t, results[3].Error, "unsupported extension")

	ppm, err := os.ReadFile(jobs[1].Output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(ppm), "P3\n16 9\n255\n"))
	assert.Equal(t, 3+16*9, strings.Count(string(ppm), "\n"))
}

func TestRunMissingShader(t *testing.T) {
	results := Run(Config{Workers: 1, Progress: &bytes.Buffer{}}, []Job{
		{Name: "empty", Camera: smallCamera(8), Output: filepath.Join(t.TempDir(), "x.png")},
	})
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Error, "has no shader")
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	results := []Result{
		{Name: "a", Scene: "sphere", Output: filepath.Join(dir, "img", "a.png"), Width: 400, Height: 225, Success: true},
		{Name: "b", Scene: "sky", Output: filepath.Join(dir, "b.gif"), Error: "unsupported"},
	}
	require.NoError(t, WriteManifest(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "img/a.png", entries[0].Image)
	assert.Equal(t, 225, entries[0].Height)
	assert.Empty(t, entries[0].Error)
	assert.Equal(t, "unsupported", entries[1].Error)
}
