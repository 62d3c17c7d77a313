package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sphere-tracer/internal/batch"
	"sphere-tracer/internal/config"
	"sphere-tracer/internal/raster"
	"sphere-tracer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .toml, .yaml)")
	width := flag.Int("width", 0, "Image width in pixels (default: 400)")
	height := flag.Int("height", 0, "Image height in pixels (default: width / aspect)")
	aspect := flag.String("aspect", "", "Aspect ratio, e.g. 16:9 (default: 16:9)")
	sceneName := flag.String("scene", "", "Scene: "+strings.Join(scene.Names(), ", ")+" (default: sphere)")
	outputPath := flag.String("output", "", "Output file (.ppm .png .webp .tga .bmp .tiff); empty writes PPM to stdout")
	scale := flag.Int("scale", 0, "Integer upscale factor for raster outputs (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines for batch jobs (default: NumCPU)")
	manifest := flag.String("manifest", "", "Write a JSON manifest of rendered jobs to this path")
	quiet := flag.Bool("quiet", false, "Suppress progress output")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:       *width,
		Height:      *height,
		AspectRatio: *aspect,
		Scene:       *sceneName,
		Output:      *outputPath,
		Scale:       *scale,
		Workers:     *workers,
	})
	if *manifest != "" {
		cfg.Manifest = *manifest
	}

	if len(cfg.Jobs) == 0 && (cfg.Output == "" || cfg.Output == "-") {
		if err := renderStdout(&cfg, *quiet); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	jobs, err := buildJobs(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sphere tracer → %d image(s), Workers: %d\n", len(jobs), cfg.Workers)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	var progress io.Writer = os.Stdout
	if *quiet {
		progress = nil
	}
	results := batch.Run(batch.Config{Workers: cfg.Workers, Progress: progress}, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("  %s: %dx%d %s\n", r.Name, r.Width, r.Height, r.Output)
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(jobs))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	if cfg.Manifest != "" {
		if err := batch.WriteManifest(cfg.Manifest, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", cfg.Manifest)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// renderStdout streams a single PPM image to stdout with per-row progress on stderr.
func renderStdout(cfg *config.Config, quiet bool) error {
	cc, err := cfg.Camera()
	if err != nil {
		return err
	}
	sh, err := cfg.Shader(cfg.Scene)
	if err != nil {
		return err
	}

	var progress io.Writer = os.Stderr
	if quiet {
		progress = nil
	}
	if err := raster.Render(cc, sh, raster.NewPPMSink(os.Stdout), progress); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintln(os.Stderr, "Done.")
	}
	return nil
}

func buildJobs(cfg *config.Config) ([]batch.Job, error) {
	var jobs []batch.Job
	for _, j := range cfg.ExpandJobs() {
		if j.Output == "" {
			return nil, fmt.Errorf("job %s: no output path", j.Name)
		}
		cc, err := cfg.JobCamera(j)
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", j.Name, err)
		}
		sh, err := cfg.Shader(j.Scene)
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", j.Name, err)
		}
		jobs = append(jobs, batch.Job{
			Name:      j.Name,
			SceneName: j.Scene,
			Camera:    cc,
			Shader:    sh,
			Output:    filepath.Clean(j.Output),
			Scale:     j.Scale,
		})
	}
	return jobs, nil
}
