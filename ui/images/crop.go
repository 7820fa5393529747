package images

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"

	"github.com/soocke/image-label-go/domain/annotation"
	"github.com/soocke/image-label-go/domain/geometry"
)

// ShapeRect returns the pixel bounding rectangle of an annotation against the
// given render size, clamped to the surface and at least 1x1. Point shapes
// get a square window of 2*pad around the point.
func ShapeRect(a *annotation.Annotation, w, h int, pad int) image.Rectangle {
	if a == nil || len(a.Points) == 0 || w < 1 || h < 1 {
		return image.Rect(0, 0, 1, 1)
	}
	minX, minY := 1.0, 1.0
	maxX, maxY := 0.0, 0.0
	for _, p := range a.Points {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	tl := geometry.ToAbsolute(geometry.Point{X: minX, Y: minY}, float64(w), float64(h))
	br := geometry.ToAbsolute(geometry.Point{X: maxX, Y: maxY}, float64(w), float64(h))
	r := image.Rect(int(tl.X)-pad, int(tl.Y)-pad, int(br.X)+pad, int(br.Y)+pad)
	r = r.Intersect(image.Rect(0, 0, w, h))
	if r.Dx() < 1 || r.Dy() < 1 {
		r = image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Min.Y+1)
	}
	return r
}

// CropShape extracts the region of the rendered frame covered by the given
// annotation, padded for context. Used for the selected-shape preview panel.
func CropShape(frame image.Image, a *annotation.Annotation, pad int) (image.Image, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	b := frame.Bounds()
	r := ShapeRect(a, b.Dx(), b.Dy(), pad)
	return imaging.Crop(frame, r), r, nil
}
