package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/soocke/image-label-go/app"
	"github.com/soocke/image-label-go/config"
	"github.com/soocke/image-label-go/debug"
	"github.com/soocke/image-label-go/domain/dataset"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to the config file")
	dirFlag := flag.String("dir", "", "dataset directory, overrides the config")
	screenFlag := flag.Bool("screen", false, "annotate a screen capture instead of files")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime metrics")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	level := slog.LevelInfo
	if cfg.Debug || *debugFlag {
		cfg.Debug = true
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Error("config load failed, using defaults", "path", *cfgPath, "error", err)
	}
	if *dirFlag != "" {
		cfg.DatasetDir = *dirFlag
	}
	if *screenFlag {
		cfg.CaptureScreen = true
	}
	// Positional arguments are individual image files.
	if args := flag.Args(); len(args) > 0 {
		cfg.Paths = args
	}

	if cfg.Debug {
		debug.StartGoroutineLogger(5*time.Second, logger)
		startMemLogger(5*time.Second, logger)
	}

	provider, err := buildProvider(cfg, logger)
	if err != nil {
		logger.Error("dataset init failed", "error", err)
		os.Exit(1)
	}
	if provider.Len() == 0 {
		logger.Error("dataset is empty", "dir", cfg.DatasetDir)
		os.Exit(1)
	}

	application := app.NewApp("Image Labeler", cfg, *cfgPath, provider, logger)
	application.Start()
}

// buildProvider selects the dataset source: explicit paths win over a
// directory scan; a screen capture replaces both.
func buildProvider(cfg *config.Config, logger *slog.Logger) (*dataset.Provider, error) {
	switch {
	case cfg.CaptureScreen:
		return dataset.FromScreen(cfg.CaptureRegion(), logger)
	case len(cfg.Paths) > 0:
		return dataset.FromPaths(cfg.Paths, logger), nil
	default:
		return dataset.FromDir(cfg.DatasetDir, logger)
	}
}
