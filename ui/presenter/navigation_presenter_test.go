package presenter

import (
	"testing"
	"time"

	"github.com/soocke/image-label-go/ui/model"
)

type fakeCounter struct{ n int }

func (f *fakeCounter) AnnotatedCount(srcs []string) int { return f.n }

type fakeSwitcher struct{ calls int }

func (f *fakeSwitcher) ItemChanged() { f.calls++ }

type navViewRecorder struct {
	canPrev, canNext bool
	annotated, total int
	fraction         float64
	index            int
	src              string
	refreshes        int
}

func (r *navViewRecorder) SetNavState(canPrev, canNext bool) {
	r.canPrev, r.canNext = canPrev, canNext
}

func (r *navViewRecorder) SetProgress(annotated, total int, fraction float64) {
	r.annotated, r.total, r.fraction = annotated, total, fraction
	r.refreshes++
}

func (r *navViewRecorder) SetItemLabel(index, total int, src string) {
	r.index, r.src = index, src
}

func newNavFixture(total int) (*NavigationPresenter, *fakeSwitcher, *navViewRecorder) {
	srcs := make([]string, total)
	for i := range srcs {
		srcs[i] = string(rune('a'+i)) + ".png"
	}
	sw := &fakeSwitcher{}
	view := &navViewRecorder{}
	p := NewNavigationPresenter(model.NewNavigationModel(total), &fakeCounter{n: 1}, srcs, sw, view)
	return p, sw, view
}

func TestNavigationPresenter_NextNotifiesSwitcher(t *testing.T) {
	p, sw, view := newNavFixture(3)
	p.Next()
	if sw.calls != 1 {
		t.Fatalf("expected 1 item switch, got %d", sw.calls)
	}
	if view.index != 1 || view.src != "b.png" {
		t.Fatalf("unexpected item label: index=%d src=%q", view.index, view.src)
	}
	if !view.canPrev || !view.canNext {
		t.Fatal("both directions should be enabled on the middle item")
	}
}

func TestNavigationPresenter_ClampedAtBounds(t *testing.T) {
	p, sw, view := newNavFixture(2)
	p.Prev() // already at the first item
	if sw.calls != 0 {
		t.Fatal("prev at first item must not switch")
	}
	p.Next()
	p.Next() // already at the last item
	if sw.calls != 1 {
		t.Fatalf("expected 1 switch, got %d", sw.calls)
	}
	p.Refresh()
	if view.canNext {
		t.Fatal("next should be disabled on the last item")
	}
	if !view.canPrev {
		t.Fatal("prev should be enabled on the last item")
	}
}

func TestNavigationPresenter_Progress(t *testing.T) {
	p, _, view := newNavFixture(4)
	p.Refresh()
	if view.annotated != 1 || view.total != 4 {
		t.Fatalf("unexpected progress: %d/%d", view.annotated, view.total)
	}
	if view.fraction != 0.25 {
		t.Fatalf("unexpected fraction %v", view.fraction)
	}
}

func TestNavigationPresenter_ResetReturnsToFirst(t *testing.T) {
	p, sw, view := newNavFixture(3)
	p.Next()
	p.Next()
	p.Reset()
	if view.index != 0 {
		t.Fatalf("expected index 0 after reset, got %d", view.index)
	}
	if sw.calls != 3 {
		t.Fatalf("expected 3 switches, got %d", sw.calls)
	}
}

type sessionViewRecorder struct {
	burst, total time.Duration
}

func (r *sessionViewRecorder) SetSession(burst, total time.Duration) {
	r.burst, r.total = burst, total
}

type fakeActivity struct{ on bool }

func (f *fakeActivity) Annotating() bool { return f.on }

func TestSessionPresenter_AccumulatesActiveTime(t *testing.T) {
	src := &fakeActivity{}
	view := &sessionViewRecorder{}
	p := NewSessionPresenter(model.NewSessionModel(), src, view)

	t0 := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	p.Tick(t0)
	src.on = true
	p.Tick(t0.Add(1 * time.Second))
	p.Tick(t0.Add(4 * time.Second))
	if view.burst != 3*time.Second || view.total != 3*time.Second {
		t.Fatalf("unexpected durations during burst: burst=%v total=%v", view.burst, view.total)
	}
	src.on = false
	p.Tick(t0.Add(5 * time.Second))
	// Second burst adds on top of the accumulated time.
	src.on = true
	p.Tick(t0.Add(10 * time.Second))
	p.Tick(t0.Add(12 * time.Second))
	if view.burst != 2*time.Second || view.total != 6*time.Second {
		t.Fatalf("unexpected durations after second burst: burst=%v total=%v", view.burst, view.total)
	}
}
