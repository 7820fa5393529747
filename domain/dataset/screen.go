package dataset

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/vova616/screenshot"
)

// FromScreen grabs the screen once and returns a single-item provider over
// the capture, so a screenshot can be annotated like any file. A non-nil
// region constrains the grab to that rectangle. The item src embeds the
// capture time for persistence keys.
func FromScreen(region *image.Rectangle, logger *slog.Logger) (*Provider, error) {
	var (
		img *image.RGBA
		err error
	)
	if region != nil {
		img, err = screenshot.CaptureRect(*region)
	} else {
		img, err = screenshot.CaptureScreen()
	}
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	src := fmt.Sprintf("screen-%s", time.Now().Format("20060102-150405"))
	if logger != nil {
		b := img.Bounds()
		logger.Info("screen captured", "src", src, "w", b.Dx(), "h", b.Dy())
	}
	p := &Provider{logger: logger}
	p.items = append(p.items, Item{Src: src, Image: img})
	return p, nil
}
