package geometry

import "math"

// Point is a 2D coordinate. Depending on context it holds either display-space
// pixels or relative [0,1] coordinates; the two never mix inside one shape.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dims holds the pixel dimensions of a source image.
type Dims struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ToRelative converts a display-space point to relative [0,1] coordinates.
// Returns the zero Point when either dimension is non-positive; that only
// happens transiently before an item has finished loading, so it degrades
// silently instead of erroring.
func ToRelative(p Point, w, h float64) Point {
	if w <= 0 || h <= 0 {
		return Point{}
	}
	return Point{X: p.X / w, Y: p.Y / h}
}

// ToAbsolute is the inverse of ToRelative. Export must use this exact formula
// so stored coordinates round-trip without drift.
func ToAbsolute(p Point, w, h float64) Point {
	return Point{X: p.X * w, Y: p.Y * h}
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// NormalizeRect orders two arbitrary corners into (top-left, bottom-right).
func NormalizeRect(a, b Point) (tl, br Point) {
	tl = Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
	br = Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
	return tl, br
}

// Translate returns a copy of pts with d added to every point.
func Translate(pts []Point, d Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X + d.X, Y: p.Y + d.Y}
	}
	return out
}

// InPolygon reports whether p lies inside the polygon described by verts,
// using the even-odd ray casting rule.
func InPolygon(p Point, verts []Point) bool {
	if len(verts) < 3 {
		return false
	}
	inside := false
	j := len(verts) - 1
	for i := 0; i < len(verts); i++ {
		vi, vj := verts[i], verts[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// InRect reports whether p lies inside the rectangle spanned by tl and br
// (inclusive edges).
func InRect(p, tl, br Point) bool {
	return p.X >= tl.X && p.X <= br.X && p.Y >= tl.Y && p.Y <= br.Y
}
