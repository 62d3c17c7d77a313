package main

import (
	"flag"
	"fmt"
	"os"

	"sphere-tracer/internal/config"
	"sphere-tracer/internal/viewer"
)

func main() {
	configFile := flag.String("config", "", "Path to config file (.json, .toml, .yaml)")
	width := flag.Int("width", 0, "Image width in pixels (default: 400)")
	aspect := flag.String("aspect", "", "Aspect ratio, e.g. 16:9 (default: 16:9)")
	sceneName := flag.String("scene", "", "Scene name (default: sphere)")
	zoom := flag.Int("zoom", 2, "Window size multiplier")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Width:       *width,
		AspectRatio: *aspect,
		Scene:       *sceneName,
	})

	cc, err := cfg.Camera()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sh, err := cfg.Shader(cfg.Scene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := viewer.Run("Ray Tracing", cc, sh, *zoom); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
