package interaction

import (
	"github.com/soocke/image-label-go/domain/annotation"
	"github.com/soocke/image-label-go/domain/geometry"
)

// Hit describes what a pointer-down landed on.
type Hit struct {
	ID     string
	Kind   annotation.Kind
	Handle int // handle index, or -1 for a body hit
}

// Box corner handle indices, clockwise from top-left.
const (
	HandleTopLeft = iota
	HandleTopRight
	HandleBottomRight
	HandleBottomLeft
)

// displayPoints converts an annotation's relative points to display space.
func displayPoints(a *annotation.Annotation, w, h float64) []geometry.Point {
	out := make([]geometry.Point, len(a.Points))
	for i, p := range a.Points {
		out[i] = geometry.ToAbsolute(p, w, h)
	}
	return out
}

// boxCorners expands a two-point box into its four display corners, indexed
// by the Handle* constants.
func boxCorners(tl, br geometry.Point) [4]geometry.Point {
	return [4]geometry.Point{
		{X: tl.X, Y: tl.Y},
		{X: br.X, Y: tl.Y},
		{X: br.X, Y: br.Y},
		{X: tl.X, Y: br.Y},
	}
}

// hitHandle tests the editable handles of one annotation: box corners,
// polygon vertices, or the point itself. Returns the handle index or -1.
func hitHandle(a *annotation.Annotation, p geometry.Point, w, h, radius float64) int {
	pts := displayPoints(a, w, h)
	switch a.Kind {
	case annotation.KindBox:
		if len(pts) != 2 {
			return -1
		}
		for i, c := range boxCorners(pts[0], pts[1]) {
			if geometry.Dist(p, c) <= radius {
				return i
			}
		}
	case annotation.KindPolygon, annotation.KindPoint:
		for i, v := range pts {
			if geometry.Dist(p, v) <= radius {
				return i
			}
		}
	}
	return -1
}

// hitBody tests the shape body: box interior, polygon interior (even-odd), or
// the point grab radius.
func hitBody(a *annotation.Annotation, p geometry.Point, w, h, radius float64) bool {
	pts := displayPoints(a, w, h)
	switch a.Kind {
	case annotation.KindBox:
		return len(pts) == 2 && geometry.InRect(p, pts[0], pts[1])
	case annotation.KindPolygon:
		return geometry.InPolygon(p, pts)
	case annotation.KindPoint:
		return len(pts) == 1 && geometry.Dist(p, pts[0]) <= radius
	}
	return false
}
