package export

import (
	"strings"
	"testing"

	"github.com/soocke/image-label-go/domain/annotation"
	"github.com/soocke/image-label-go/domain/geometry"
	"github.com/soocke/image-label-go/store"
)

func pt(x, y float64) geometry.Point { return geometry.Point{X: x, Y: y} }

func sampleRecord() store.Record {
	dims := geometry.Dims{Width: 400, Height: 200}
	return store.Record{
		Src: "a.png",
		Elements: []annotation.Annotation{
			{
				ID: "1", Kind: annotation.KindBox, Label: "cat", Color: "#FF6B6B",
				Points: []geometry.Point{pt(0.25, 0.25), pt(0.75, 0.75)}, ImageDims: dims,
			},
			{
				ID: "2", Kind: annotation.KindPoint, Color: "#4ECDC4",
				Points: []geometry.Point{pt(0.5, 0.5)}, ImageDims: dims,
			},
		},
	}
}

func TestAbsolute_CallerDims(t *testing.T) {
	got := Absolute(sampleRecord(), 800, 400)
	box := got.Elements[0]
	if box.Type != "box" {
		t.Fatalf("unexpected type %q", box.Type)
	}
	if box.Points[0] != pt(200, 100) || box.Points[1] != pt(600, 300) {
		t.Fatalf("unexpected box pixels: %v", box.Points)
	}
	if got.Elements[1].Points[0] != pt(400, 200) {
		t.Fatalf("unexpected point pixels: %v", got.Elements[1].Points)
	}
}

func TestAbsolute_FallsBackToCreationDims(t *testing.T) {
	got := Absolute(sampleRecord(), 0, 0)
	box := got.Elements[0]
	if box.Points[0] != pt(100, 50) || box.Points[1] != pt(300, 150) {
		t.Fatalf("expected creation-dims conversion, got %v", box.Points)
	}
}

// Export must invert the storage transform exactly.
func TestAbsolute_RoundTripsAgainstToRelative(t *testing.T) {
	rec := sampleRecord()
	got := Absolute(rec, 400, 200)
	for i, el := range got.Elements {
		for j, p := range el.Points {
			back := geometry.ToRelative(p, 400, 200)
			want := rec.Elements[i].Points[j]
			if back != want {
				t.Fatalf("element %d point %d drifted: %v vs %v", i, j, back, want)
			}
		}
	}
}

func TestYOLOLines(t *testing.T) {
	lines := YOLOLines(sampleRecord(), []string{"dog", "cat"})
	if len(lines) != 1 {
		t.Fatalf("expected one box line, got %v", lines)
	}
	if !strings.HasPrefix(lines[0], "1 0.500000 0.500000 0.500000 0.500000") {
		t.Fatalf("unexpected yolo line: %q", lines[0])
	}
}

func TestYOLOLines_SkipsUnknownLabels(t *testing.T) {
	lines := YOLOLines(sampleRecord(), []string{"dog"})
	if len(lines) != 0 {
		t.Fatalf("unknown label should be skipped, got %v", lines)
	}
}
