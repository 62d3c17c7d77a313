package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"sphere-tracer/internal/camera"
	"sphere-tracer/internal/mathutil"
	"sphere-tracer/internal/scene"
)

// Config holds the image, camera and output settings.
type Config struct {
	// Image
	Width       int    `json:"width" toml:"width" yaml:"width"`
	Height      int    `json:"height" toml:"height" yaml:"height"`
	AspectRatio string `json:"aspect_ratio" toml:"aspect_ratio" yaml:"aspect_ratio"`

	// Camera
	ViewportHeight float64    `json:"viewport_height" toml:"viewport_height" yaml:"viewport_height"`
	FocalLength    float64    `json:"focal_length" toml:"focal_length" yaml:"focal_length"`
	Origin         [3]float64 `json:"origin" toml:"origin" yaml:"origin"`

	// Scene
	Scene        string      `json:"scene" toml:"scene" yaml:"scene"`
	SphereCenter *[3]float64 `json:"sphere_center,omitempty" toml:"sphere_center,omitempty" yaml:"sphere_center,omitempty"`
	SphereRadius float64     `json:"sphere_radius" toml:"sphere_radius" yaml:"sphere_radius"`
	HitColor     *[3]float64 `json:"hit_color,omitempty" toml:"hit_color,omitempty" yaml:"hit_color,omitempty"`

	// Output
	Output   string `json:"output" toml:"output" yaml:"output"`
	Scale    int    `json:"scale" toml:"scale" yaml:"scale"`
	Workers  int    `json:"workers" toml:"workers" yaml:"workers"`
	Manifest string `json:"manifest" toml:"manifest" yaml:"manifest"`
	Jobs     []Job  `json:"jobs" toml:"jobs" yaml:"jobs"`
}

// Job is one image of a batch run. Zero fields inherit from Config.
type Job struct {
	Name   string `json:"name" toml:"name" yaml:"name"`
	Scene  string `json:"scene" toml:"scene" yaml:"scene"`
	Width  int    `json:"width" toml:"width" yaml:"width"`
	Height int    `json:"height" toml:"height" yaml:"height"`
	Output string `json:"output" toml:"output" yaml:"output"`
	Scale  int    `json:"scale" toml:"scale" yaml:"scale"`
}

// Load reads a config file; the decoder is chosen by extension
// (.json, .toml, .yaml/.yml). Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: unsupported format %q: %s", ext, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width       int
	Height      int
	AspectRatio string
	Scene       string
	Output      string
	Scale       int
	Workers     int
}

// Resolve applies non-zero flags over the file values, then fills defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.AspectRatio != "" {
		c.AspectRatio = flags.AspectRatio
	}
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	def := camera.Default()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.AspectRatio == "" {
		c.AspectRatio = "16:9"
	}
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = def.ViewportHeight
	}
	if c.FocalLength <= 0 {
		c.FocalLength = def.FocalLength
	}
	if c.Scene == "" {
		c.Scene = scene.NameSphere
	}
	if c.SphereRadius <= 0 {
		c.SphereRadius = scene.DefaultSphere.Radius
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Camera builds the immutable camera configuration.
func (c *Config) Camera() (camera.Config, error) {
	return c.cameraFor(c.Width, c.Height)
}

func (c *Config) cameraFor(width, height int) (camera.Config, error) {
	aspect, err := camera.ParseAspect(c.AspectRatio)
	if err != nil {
		return camera.Config{}, err
	}
	cc := camera.Config{
		AspectRatio:    aspect,
		Width:          width,
		Height:         height,
		ViewportHeight: c.ViewportHeight,
		FocalLength:    c.FocalLength,
		Origin:         mathutil.Point3(c.Origin),
	}
	if err := cc.Validate(); err != nil {
		return camera.Config{}, err
	}
	return cc, nil
}

// Shader resolves a scene name. The sphere preset picks up the configured
// sphere and hit color.
func (c *Config) Shader(name string) (scene.Shader, error) {
	sh, err := scene.ByName(name)
	if err != nil {
		return nil, err
	}
	ss, ok := sh.(scene.SphereScene)
	if !ok {
		return sh, nil
	}
	if c.SphereCenter != nil {
		ss.Sphere.Center = mathutil.Point3(*c.SphereCenter)
	}
	if c.SphereRadius > 0 {
		ss.Sphere.Radius = c.SphereRadius
	}
	if c.HitColor != nil {
		ss.HitColor = mathutil.Color(*c.HitColor)
	}
	return ss, nil
}

// ExpandJobs expands the job list. Without configured jobs a single job is built
// from the top-level settings.
func (c *Config) ExpandJobs() []Job {
	if len(c.Jobs) == 0 {
		return []Job{{
			Name:   "frame",
			Scene:  c.Scene,
			Width:  c.Width,
			Height: c.Height,
			Output: c.Output,
			Scale:  c.Scale,
		}}
	}

	jobs := make([]Job, len(c.Jobs))
	for i, j := range c.Jobs {
		if j.Name == "" {
			j.Name = fmt.Sprintf("job%d", i+1)
		}
		if j.Scene == "" {
			j.Scene = c.Scene
		}
		if j.Width <= 0 {
			j.Width = c.Width
			if j.Height <= 0 {
				j.Height = c.Height
			}
		}
		if j.Scale <= 0 {
			j.Scale = c.Scale
		}
		jobs[i] = j
	}
	return jobs
}

// JobCamera builds the camera configuration for one job.
func (c *Config) JobCamera(j Job) (camera.Config, error) {
	return c.cameraFor(j.Width, j.Height)
}
