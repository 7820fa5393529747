// Package export converts stored relative annotations into downstream
// formats with absolute pixel coordinates.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/soocke/image-label-go/domain/annotation"
	"github.com/soocke/image-label-go/domain/geometry"
	"github.com/soocke/image-label-go/store"
)

// Element is one exported shape in absolute pixel coordinates.
type Element struct {
	Type   string           `json:"type"`
	Label  string           `json:"label,omitempty"`
	Color  string           `json:"color"`
	Points []geometry.Point `json:"points"`
}

// ItemExport is one item's annotations converted to pixels.
type ItemExport struct {
	Src      string    `json:"src"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Elements []Element `json:"elements"`
}

// Absolute converts a record to pixel coordinates against the caller-supplied
// target size. Non-positive dimensions fall back per element to the source
// dimensions recorded at creation, so a plain export needs no arguments. The
// conversion is the exact inverse of the storage transform; using any other
// formula here would drift against round-tripped coordinates.
func Absolute(rec store.Record, width, height int) ItemExport {
	out := ItemExport{Src: rec.Src, Width: width, Height: height}
	for _, el := range rec.Elements {
		w, h := width, height
		if w <= 0 || h <= 0 {
			w, h = el.ImageDims.Width, el.ImageDims.Height
		}
		pts := make([]geometry.Point, len(el.Points))
		for i, p := range el.Points {
			pts[i] = geometry.ToAbsolute(p, float64(w), float64(h))
		}
		out.Elements = append(out.Elements, Element{
			Type:   el.Kind.String(),
			Label:  el.Label,
			Color:  el.Color,
			Points: pts,
		})
	}
	return out
}

// WriteJSON exports all records as absolute-coordinate JSON.
func WriteJSON(path string, recs []store.Record, width, height int) error {
	items := make([]ItemExport, 0, len(recs))
	for _, rec := range recs {
		if len(rec.Elements) == 0 {
			continue
		}
		items = append(items, Absolute(rec, width, height))
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// YOLOLines renders the box annotations of one record as YOLO training lines:
// "<class-index> <cx> <cy> <w> <h>" with center and size normalized to [0,1].
// Labels missing from the class list, and non-box shapes, are skipped.
func YOLOLines(rec store.Record, classes []string) []string {
	idx := make(map[string]int, len(classes))
	for i, c := range classes {
		idx[c] = i
	}
	var lines []string
	for _, el := range rec.Elements {
		if el.Kind != annotation.KindBox || len(el.Points) != 2 {
			continue
		}
		ci, ok := idx[el.Label]
		if !ok {
			continue
		}
		tl, br := el.Points[0], el.Points[1]
		cx := (tl.X + br.X) / 2
		cy := (tl.Y + br.Y) / 2
		lines = append(lines, fmt.Sprintf("%d %.6f %.6f %.6f %.6f", ci, cx, cy, br.X-tl.X, br.Y-tl.Y))
	}
	return lines
}

// WriteYOLO writes one record's box annotations as a YOLO label file.
func WriteYOLO(path string, rec store.Record, classes []string) error {
	lines := YOLOLines(rec, classes)
	if len(lines) == 0 {
		return nil
	}
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write yolo labels: %w", err)
	}
	return nil
}
