package presenter

import (
	"image"
	"log/slog"
	"testing"

	"github.com/soocke/image-label-go/domain/annotation"
	"github.com/soocke/image-label-go/domain/dataset"
	"github.com/soocke/image-label-go/domain/interaction"
	"github.com/soocke/image-label-go/domain/tool"
	"github.com/soocke/image-label-go/store"
	"github.com/soocke/image-label-go/ui/model"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// persistRecorder counts snapshot saves.
type persistRecorder struct {
	saves int
	last  []store.Record
}

func (r *persistRecorder) Save(recs []store.Record) error {
	r.saves++
	r.last = recs
	return nil
}

// fixture assembles the full drawing pipeline over two 800x500 items, so the
// canvas maps 1:1 to image pixels and test coordinates stay readable.
type fixture struct {
	p       *CanvasPresenter
	coll    *annotation.Collection
	nav     *model.NavigationModel
	sel     *model.SelectionModel
	persist *persistRecorder
	srcs    []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	srcs := []string{"a.png", "b.png"}
	img := image.NewRGBA(image.Rect(0, 0, 800, 500))
	provider := dataset.FromImages(srcs, []image.Image{img, img}, discardLogger)
	coll := annotation.NewCollection(annotation.NewPalette(nil), discardLogger)
	machine := tool.NewMachine(tool.ModeBox, discardLogger)
	ctrl := interaction.NewController(discardLogger)
	sel := &model.SelectionModel{}
	nav := model.NewNavigationModel(provider.Len())
	persist := &persistRecorder{}
	p := NewCanvasPresenter(discardLogger, provider, coll, machine, ctrl, sel, nav, persist)
	return &fixture{p: p, coll: coll, nav: nav, sel: sel, persist: persist, srcs: srcs}
}

func (f *fixture) set() *annotation.Set { return f.coll.Set(f.srcs[f.nav.Index()]) }

func (f *fixture) drawBox(x1, y1, x2, y2 float64) {
	f.p.SetMode(tool.ModeBox)
	f.p.PointerDown(x1, y1)
	f.p.PointerMove(x2, y2)
	f.p.PointerUp(x2, y2)
}

func TestDrawBox_CommitsAndPersists(t *testing.T) {
	f := newFixture(t)
	f.drawBox(100, 100, 400, 300)
	if f.set().Len() != 1 {
		t.Fatalf("expected 1 annotation, got %d", f.set().Len())
	}
	if f.persist.saves != 1 {
		t.Fatalf("expected 1 persistence write, got %d", f.persist.saves)
	}
	// The snapshot carries records for every item, annotated or not.
	if len(f.persist.last) != 2 {
		t.Fatalf("snapshot should cover all items, got %d records", len(f.persist.last))
	}
}

func TestDegenerateDrag_NoCommitNoPersist(t *testing.T) {
	f := newFixture(t)
	f.drawBox(100, 100, 102, 101)
	if f.set().Len() != 0 || f.persist.saves != 0 {
		t.Fatalf("degenerate drag must not commit: len=%d saves=%d", f.set().Len(), f.persist.saves)
	}
}

func TestSelectMoveDeselect(t *testing.T) {
	f := newFixture(t)
	f.drawBox(100, 100, 400, 300)
	// Press inside the box selects it and starts a move.
	f.p.PointerDown(200, 200)
	if !f.sel.Has() {
		t.Fatal("press on shape body should select it")
	}
	f.p.PointerUp(200, 200)
	// Empty-canvas press clears the selection.
	f.p.PointerDown(700, 450)
	if f.sel.Has() {
		t.Fatal("empty canvas press should clear selection")
	}
	f.p.PointerUp(700, 450)
}

// Deleting with no selection is a no-op; deleting twice is a no-op the
// second time.
func TestDelete_NoSelectionIsNoop(t *testing.T) {
	f := newFixture(t)
	f.p.Delete()
	if f.persist.saves != 0 {
		t.Fatal("delete with no selection must not persist")
	}
	f.drawBox(100, 100, 400, 300)
	f.p.PointerDown(200, 200)
	f.p.PointerUp(200, 200)
	saves := f.persist.saves
	f.p.Delete()
	if f.set().Len() != 0 {
		t.Fatal("selected shape should be deleted")
	}
	if f.persist.saves != saves+1 {
		t.Fatal("delete should persist once")
	}
	f.p.Delete() // selection is gone now
	if f.persist.saves != saves+1 {
		t.Fatal("second delete must be a no-op")
	}
}

func TestUndo_RemovesMostRecentAdd(t *testing.T) {
	f := newFixture(t)
	f.drawBox(100, 100, 400, 300)
	f.drawBox(150, 150, 450, 350)
	items := f.set().Items()
	last := items[1].ID
	f.p.Undo()
	if f.set().Len() != 1 {
		t.Fatalf("expected 1 annotation after undo, got %d", f.set().Len())
	}
	if f.set().Find(last) != nil {
		t.Fatal("undo must remove the most recent add")
	}
	f.p.Undo()
	if f.set().Len() != 0 {
		t.Fatal("second undo should remove the first add")
	}
	f.p.Undo() // empty stack
	if f.set().Len() != 0 {
		t.Fatal("undo on empty history must be a no-op")
	}
}

func TestUndo_ClearsMatchingSelection(t *testing.T) {
	f := newFixture(t)
	f.drawBox(100, 100, 400, 300)
	f.p.PointerDown(200, 200)
	f.p.PointerUp(200, 200)
	if !f.sel.Has() {
		t.Fatal("setup: selection expected")
	}
	f.p.Undo()
	if f.sel.Has() {
		t.Fatal("undoing the selected shape must clear selection")
	}
}

func TestDeletedShape_NotResurrectedByUndo(t *testing.T) {
	f := newFixture(t)
	f.drawBox(100, 100, 400, 300)
	f.drawBox(500, 100, 700, 300)
	// Select and delete the second shape.
	f.p.PointerDown(600, 200)
	f.p.PointerUp(600, 200)
	f.p.Delete()
	// Undo now reverses the first add, not the deleted one.
	f.p.Undo()
	if f.set().Len() != 0 {
		t.Fatalf("expected empty set, got %d", f.set().Len())
	}
}

func TestNavigation_PreservesPerItemSetsAndDiscardsDrawing(t *testing.T) {
	f := newFixture(t)
	f.drawBox(100, 100, 400, 300)
	// Start a polygon, leave it open, then navigate away.
	f.p.SetMode(tool.ModePolygon)
	f.p.PointerDown(100, 100)
	f.p.PointerUp(100, 100)
	f.p.PointerDown(300, 100)
	f.p.PointerUp(300, 100)
	f.nav.Next()
	f.p.ItemChanged()
	if f.set().Len() != 0 {
		t.Fatal("second item should start empty")
	}
	f.nav.Prev()
	f.p.ItemChanged()
	if f.set().Len() != 1 {
		t.Fatalf("first item's annotations should survive navigation, got %d", f.set().Len())
	}
	// The open polygon was discarded, so a fresh one starts from zero.
	if f.p.Annotating() {
		t.Fatal("no drawing should be in progress after navigation")
	}
}

func TestPolygonOwnsPressesWhileOpen(t *testing.T) {
	f := newFixture(t)
	f.drawBox(100, 100, 400, 300)
	f.p.SetMode(tool.ModePolygon)
	// The first press goes through normal routing, so open the polygon on
	// empty canvas. Later presses must extend it even over existing shapes.
	f.p.PointerDown(500, 400)
	f.p.PointerUp(500, 400)
	// Now presses inside the box extend the polygon.
	f.p.PointerDown(200, 200)
	f.p.PointerUp(200, 200)
	if f.sel.Has() {
		t.Fatal("open polygon must own presses over existing shapes")
	}
	f.p.PointerDown(600, 200)
	f.p.PointerUp(600, 200)
	f.p.KeyEnter()
	if f.set().Len() != 2 {
		t.Fatalf("expected box + polygon, got %d", f.set().Len())
	}
}

func TestClearItem(t *testing.T) {
	f := newFixture(t)
	f.drawBox(100, 100, 400, 300)
	f.drawBox(150, 150, 450, 350)
	f.p.ClearItem()
	if f.set().Len() != 0 {
		t.Fatal("clear should empty the current item")
	}
	f.p.Undo()
	if f.set().Len() != 0 {
		t.Fatal("clear should also drop undo history")
	}
}

func TestCommit_UsesActiveClassLabel(t *testing.T) {
	f := newFixture(t)
	f.p.SetClass("cat")
	f.drawBox(100, 100, 400, 300)
	if got := f.set().Items()[0].Label; got != "cat" {
		t.Fatalf("expected label cat, got %q", got)
	}
}
