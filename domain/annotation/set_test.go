package annotation

import (
	"log/slog"
	"testing"

	"github.com/soocke/image-label-go/domain/geometry"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

var testDims = geometry.Dims{Width: 640, Height: 480}

func boxPoints(x1, y1, x2, y2 float64) []geometry.Point {
	return []geometry.Point{{X: x1, Y: y1}, {X: x2, Y: y2}}
}

func TestSetAdd_AssignsUniqueIDs(t *testing.T) {
	s := NewSet(nil, discardLogger)
	a := s.Add(KindBox, "cat", boxPoints(0.1, 0.1, 0.5, 0.5), testDims)
	b := s.Add(KindBox, "cat", boxPoints(0.2, 0.2, 0.6, 0.6), testDims)
	if a == nil || b == nil {
		t.Fatal("valid adds rejected")
	}
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("ids not unique: %q vs %q", a.ID, b.ID)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 annotations, got %d", s.Len())
	}
}

func TestSetAdd_RejectsInvalidGeometry(t *testing.T) {
	s := NewSet(nil, discardLogger)
	cases := []struct {
		name string
		kind Kind
		pts  []geometry.Point
	}{
		{"box one point", KindBox, []geometry.Point{{X: 0.1, Y: 0.1}}},
		{"box unordered", KindBox, boxPoints(0.5, 0.5, 0.1, 0.1)},
		{"point two points", KindPoint, boxPoints(0.1, 0.1, 0.2, 0.2)},
		{"polygon two vertices", KindPolygon, boxPoints(0.1, 0.1, 0.2, 0.2)},
		{"polygon empty", KindPolygon, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Add(tc.kind, "", tc.pts, testDims); got != nil {
				t.Fatalf("expected rejection, got %+v", got)
			}
		})
	}
	if s.Len() != 0 {
		t.Fatalf("rejected adds mutated the set: len=%d", s.Len())
	}
}

func TestSetAdd_PaletteCyclesByCreationIndex(t *testing.T) {
	s := NewSet(NewPalette(nil), discardLogger)
	var colors []string
	for i := 0; i < len(defaultPalette)+2; i++ {
		a := s.Add(KindPoint, "", []geometry.Point{{X: 0.5, Y: 0.5}}, testDims)
		colors = append(colors, a.Color)
	}
	for i, c := range colors {
		want := defaultPalette[i%len(defaultPalette)]
		if c != want {
			t.Fatalf("creation %d: expected %s, got %s", i, want, c)
		}
	}
}

func TestSetAdd_LabelMappingWins(t *testing.T) {
	p := NewPalette(map[string]string{"dog": "#123456"})
	s := NewSet(p, discardLogger)
	a := s.Add(KindPoint, "dog", []geometry.Point{{X: 0.5, Y: 0.5}}, testDims)
	if a.Color != "#123456" {
		t.Fatalf("expected mapped color, got %s", a.Color)
	}
	b := s.Add(KindPoint, "cat", []geometry.Point{{X: 0.5, Y: 0.5}}, testDims)
	if b.Color != defaultPalette[1] {
		t.Fatalf("unmapped label should cycle palette by creation index, got %s", b.Color)
	}
}

func TestSetUpdate(t *testing.T) {
	s := NewSet(nil, discardLogger)
	a := s.Add(KindBox, "cat", boxPoints(0.1, 0.1, 0.5, 0.5), testDims)
	if !s.Update(a.ID, boxPoints(0.2, 0.2, 0.7, 0.7)) {
		t.Fatal("update of existing id failed")
	}
	got := s.Find(a.ID)
	if got.Points[0] != (geometry.Point{X: 0.2, Y: 0.2}) {
		t.Fatalf("points not replaced: %v", got.Points)
	}
	if got.Kind != KindBox || got.Label != "cat" || got.Color != a.Color {
		t.Fatal("update must preserve kind, label and color")
	}
	if s.Update("missing", boxPoints(0, 0, 1, 1)) {
		t.Fatal("update of unknown id should be a no-op")
	}
}

func TestSetRemoveAndClear(t *testing.T) {
	s := NewSet(nil, discardLogger)
	a := s.Add(KindPoint, "", []geometry.Point{{X: 0.5, Y: 0.5}}, testDims)
	if !s.Remove(a.ID) {
		t.Fatal("remove of existing id failed")
	}
	if s.Remove(a.ID) {
		t.Fatal("second remove should be a no-op")
	}
	s.Add(KindPoint, "", []geometry.Point{{X: 0.5, Y: 0.5}}, testDims)
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("clear left %d annotations", s.Len())
	}
}

func TestSetItems_SnapshotDoesNotAlias(t *testing.T) {
	s := NewSet(nil, discardLogger)
	s.Add(KindPoint, "", []geometry.Point{{X: 0.5, Y: 0.5}}, testDims)
	snap := s.Items()
	snap[0].Points[0].X = 0.9
	if s.Items()[0].Points[0].X != 0.5 {
		t.Fatal("snapshot mutation leaked into the set")
	}
}

func TestCollection_IndependentPerItem(t *testing.T) {
	c := NewCollection(NewPalette(nil), discardLogger)
	c.Set("a.png").Add(KindPoint, "", []geometry.Point{{X: 0.5, Y: 0.5}}, testDims)
	if c.Set("b.png").Len() != 0 {
		t.Fatal("items must not share annotation sets")
	}
	if got := c.AnnotatedCount([]string{"a.png", "b.png"}); got != 1 {
		t.Fatalf("expected 1 annotated item, got %d", got)
	}
}

func TestKindJSONRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindBox, KindPoint, KindPolygon} {
		data, err := k.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal %v: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalJSON(data); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != k {
			t.Fatalf("round trip changed %v to %v", k, back)
		}
	}
	var k Kind
	if err := k.UnmarshalJSON([]byte(`"blob"`)); err == nil {
		t.Fatal("unknown kind string should error")
	}
}
