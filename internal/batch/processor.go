package batch

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"sphere-tracer/internal/camera"
	"sphere-tracer/internal/output"
	"sphere-tracer/internal/postprocess"
	"sphere-tracer/internal/raster"
	"sphere-tracer/internal/scene"
)

// Job is one fully resolved image to render.
type Job struct {
	Name      string
	SceneName string
	Camera    camera.Config
	Shader    scene.Shader
	Output    string
	Scale     int // ignored for .ppm
}

// Config holds the shared settings for a batch run.
type Config struct {
	Workers  int
	Progress io.Writer // nil disables the progress ticker
}

// Result holds the outcome of rendering one job.
type Result struct {
	Name    string
	Scene   string
	Output  string
	Width   int
	Height  int
	Elapsed time.Duration
	Success bool
	Error   string
}

// Run renders all jobs using a worker pool. Each frame is still one
// single-threaded sweep; only whole jobs run in parallel. Results keep job order.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	if cfg.Progress != nil {
		reporter.Add(1)
		go func() {
			defer reporter.Done()
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)
	reporter.Wait()

	return results
}

func processJob(job Job) (res Result) {
	res = Result{
		Name:   job.Name,
		Scene:  job.SceneName,
		Output: job.Output,
		Width:  job.Camera.Width,
		Height: job.Camera.ImageHeight(),
	}
	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()

	if err := renderJob(job); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}

func renderJob(job Job) error {
	if job.Shader == nil {
		return fmt.Errorf("batch: job %s has no shader", job.Name)
	}
	format, err := output.FormatFromPath(job.Output)
	if err != nil {
		return err
	}

	if format == output.PPM {
		return output.Create(job.Output, func(w io.Writer) error {
			return raster.Render(job.Camera, job.Shader, raster.NewPPMSink(w), nil)
		})
	}

	fb, err := raster.RenderFrame(job.Camera, job.Shader, nil)
	if err != nil {
		return err
	}
	img := postprocess.Upscale(fb.NRGBA(), job.Scale)
	return output.WriteFile(job.Output, img)
}
