package dataset

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/soocke/image-label-go/domain/geometry"
)

// Item is one labelable image. Decoding is lazy: Image and Dims are populated
// on first access, and a decode failure flips the item into a per-item error
// state (Err set) that disables drawing on it without affecting other items.
type Item struct {
	Src    string
	Image  image.Image
	Dims   geometry.Dims
	Err    error
	loaded bool
}

// Failed reports whether the item is in the load-error state.
func (it *Item) Failed() bool { return it != nil && it.Err != nil }

// Provider supplies the ordered list of items to label plus the class list.
type Provider struct {
	items  []Item
	logger *slog.Logger
}

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true,
}

// FromPaths builds a provider over explicit file paths, in the given order.
func FromPaths(paths []string, logger *slog.Logger) *Provider {
	p := &Provider{logger: logger}
	for _, path := range paths {
		p.items = append(p.items, Item{Src: path})
	}
	return p
}

// FromImages builds a provider over pre-decoded images, e.g. when embedding
// the widget in another program. srcs and imgs must be the same length.
func FromImages(srcs []string, imgs []image.Image, logger *slog.Logger) *Provider {
	p := &Provider{logger: logger}
	for i, src := range srcs {
		var img image.Image
		if i < len(imgs) {
			img = imgs[i]
		}
		p.items = append(p.items, Item{Src: src, Image: img})
	}
	return p
}

// FromDir scans a directory (non-recursive) for image files, sorted by name.
func FromDir(dir string, logger *slog.Logger) (*Provider, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan dataset dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	if logger != nil {
		logger.Info("dataset scanned", "dir", dir, "items", len(paths))
	}
	return FromPaths(paths, logger), nil
}

// Len reports the number of items.
func (p *Provider) Len() int {
	if p == nil {
		return 0
	}
	return len(p.items)
}

// Srcs returns the ordered item source identifiers.
func (p *Provider) Srcs() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.items))
	for i := range p.items {
		out[i] = p.items[i].Src
	}
	return out
}

// Item returns the item at index i, decoding it on first access. Out-of-range
// indices return nil.
func (p *Provider) Item(i int) *Item {
	if p == nil || i < 0 || i >= len(p.items) {
		return nil
	}
	it := &p.items[i]
	if it.loaded {
		return it
	}
	it.loaded = true
	if it.Image != nil { // pre-decoded source (e.g. screen grab)
		b := it.Image.Bounds()
		it.Dims = geometry.Dims{Width: b.Dx(), Height: b.Dy()}
		return it
	}
	img, err := imaging.Open(it.Src)
	if err != nil {
		it.Err = err
		if p.logger != nil {
			p.logger.Error("item load failed", "src", it.Src, "error", err)
		}
		return it
	}
	it.Image = img
	b := img.Bounds()
	it.Dims = geometry.Dims{Width: b.Dx(), Height: b.Dy()}
	return it
}
