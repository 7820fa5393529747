package annotation

import (
	"encoding/json"
	"fmt"

	"github.com/soocke/image-label-go/domain/geometry"
)

// Kind enumerates the supported shape variants.
type Kind int

const (
	KindBox Kind = iota
	KindPoint
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindPoint:
		return "point"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind as its wire string ("box", "point", "polygon").
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes the wire string form.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "box":
		*k = KindBox
	case "point":
		*k = KindPoint
	case "polygon":
		*k = KindPolygon
	default:
		return fmt.Errorf("unknown annotation kind %q", s)
	}
	return nil
}

// Annotation is one committed shape. Points are stored in relative [0,1]
// coordinates scaled against ImageDims, the source dimensions recorded at
// creation time. For a box Points is exactly {top-left, bottom-right}; for a
// point exactly one coordinate; for a polygon three or more vertices.
type Annotation struct {
	ID        string           `json:"id"`
	Kind      Kind             `json:"type"`
	Label     string           `json:"label,omitempty"`
	Color     string           `json:"color"`
	Points    []geometry.Point `json:"points"`
	ImageDims geometry.Dims    `json:"imageDimensions"`
}

// validGeometry checks the per-kind point invariants. Boxes must already be
// normalized to top-left/bottom-right order.
func validGeometry(kind Kind, pts []geometry.Point) bool {
	switch kind {
	case KindBox:
		return len(pts) == 2 && pts[0].X <= pts[1].X && pts[0].Y <= pts[1].Y
	case KindPoint:
		return len(pts) == 1
	case KindPolygon:
		return len(pts) >= 3
	default:
		return false
	}
}

// clonePoints copies a point slice so stored geometry never aliases caller
// buffers that gesture code keeps mutating.
func clonePoints(pts []geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(pts))
	copy(out, pts)
	return out
}
