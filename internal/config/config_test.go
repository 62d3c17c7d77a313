package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sphere-tracer/internal/mathutil"
	"sphere-tracer/internal/scene"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFormats(t *testing.T) {
	files := map[string]string{
		"render.json": `{"width": 256, "height": 256, "aspect_ratio": "1:1", "scene": "uv",
			"sphere_center": [0, 0.5, -2], "jobs": [{"name": "a", "output": "a.png"}]}`,
		"render.toml": `
width = 256
height = 256
aspect_ratio = "1:1"
scene = "uv"
sphere_center = [0.0, 0.5, -2.0]

[[jobs]]
name = "a"
output = "a.png"
`,
		"render.yaml": `
width: 256
height: 256
aspect_ratio: "1:1"
scene: uv
sphere_center: [0, 0.5, -2]
jobs:
  - name: a
    output: a.png
`,
	}

	for name, body := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, name, body))
			require.NoError(t, err)

			assert.Equal(t, 256, cfg.Width)
			assert.Equal(t, 256, cfg.Height)
			assert.Equal(t, "1:1", cfg.AspectRatio)
			assert.Equal(t, "uv", cfg.Scene)
			require.NotNil(t, cfg.SphereCenter)
			assert.Equal(t, [3]float64{0, 0.5, -2}, *cfg.SphereCenter)
			require.Len(t, cfg.Jobs, 1)
			assert.Equal(t, Job{Name: "a", Output: "a.png"}, cfg.Jobs[0])
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "config: read")

	_, err = Load(writeFile(t, "bad.json", `{"width": "wide"}`))
	assert.ErrorContains(t, err, "config: parse")

	_, err = Load(writeFile(t, "render.ini", `width=1`))
	assert.ErrorContains(t, err, "unsupported format")
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 0, cfg.Height)
	assert.Equal(t, "16:9", cfg.AspectRatio)
	assert.Equal(t, 2.0, cfg.ViewportHeight)
	assert.Equal(t, 1.0, cfg.FocalLength)
	assert.Equal(t, "sphere", cfg.Scene)
	assert.Equal(t, 1, cfg.Scale)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)

	cc, err := cfg.Camera()
	require.NoError(t, err)
	assert.Equal(t, 225, cc.ImageHeight())
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	cfg := Config{Width: 800, Scene: "sky", Output: "file.png", Workers: 2}
	cfg.Resolve(Flags{Width: 256, Height: 256, AspectRatio: "1", Output: "flag.webp"})

	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 256, cfg.Height)
	assert.Equal(t, "1", cfg.AspectRatio)
	assert.Equal(t, "sky", cfg.Scene)
	assert.Equal(t, "flag.webp", cfg.Output)
	assert.Equal(t, 2, cfg.Workers)
}

func TestCameraRejectsBadAspect(t *testing.T) {
	cfg := Config{AspectRatio: "wide"}
	cfg.Resolve(Flags{})
	_, err := cfg.Camera()
	assert.Error(t, err)
}

func TestShaderOverrides(t *testing.T) {
	center := [3]float64{0, 0, -3}
	green := [3]float64{0, 1, 0}
	cfg := Config{SphereCenter: &center, SphereRadius: 2, HitColor: &green}
	cfg.Resolve(Flags{})

	sh, err := cfg.Shader("sphere")
	require.NoError(t, err)
	ss, ok := sh.(scene.SphereScene)
	require.True(t, ok)
	assert.Equal(t, mathutil.Point3{0, 0, -3}, ss.Sphere.Center)
	assert.Equal(t, 2.0, ss.Sphere.Radius)
	assert.Equal(t, mathutil.Color{0, 1, 0}, ss.HitColor)

	sh, err = cfg.Shader("uv")
	require.NoError(t, err)
	assert.IsType(t, scene.UVPattern{}, sh)

	_, err = cfg.Shader("nope")
	assert.Error(t, err)
}

func TestExpandJobs(t *testing.T) {
	cfg := Config{Output: "out.png"}
	cfg.Resolve(Flags{})
	jobs := cfg.ExpandJobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, Job{Name: "frame", Scene: "sphere", Width: 400, Output: "out.png", Scale: 1}, jobs[0])

	cfg.Jobs = []Job{
		{Output: "a.png"},
		{Name: "small", Scene: "uv", Width: 64, Height: 64, Output: "b.tga", Scale: 4},
	}
	jobs = cfg.ExpandJobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, Job{Name: "job1", Scene: "sphere", Width: 400, Output: "a.png", Scale: 1}, jobs[0])
	assert.Equal(t, cfg.Jobs[1], jobs[1])

	cc, err := cfg.JobCamera(jobs[1])
	require.NoError(t, err)
	assert.Equal(t, 64, cc.ImageHeight())
}
