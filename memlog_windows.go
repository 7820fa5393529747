//go:build windows

package main

import (
	"log/slog"
	"time"

	"github.com/soocke/image-label-go/debug"
)

func startMemLogger(interval time.Duration, logger *slog.Logger) {
	debug.StartMemLogger(interval, logger)
}
