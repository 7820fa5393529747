//go:build !windows

package main

import (
	"log/slog"
	"time"
)

// RSS sampling needs the psapi working set query; other platforms rely on the
// goroutine logger alone.
func startMemLogger(interval time.Duration, logger *slog.Logger) {}
