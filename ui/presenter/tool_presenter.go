package presenter

import (
	"strconv"
	"time"

	"github.com/soocke/image-label-go/domain/tool"
)

// ToolSource provides the tool machine methods the presenter requires.
type ToolSource interface {
	Mode() tool.Mode
	State() tool.State
	VertexCount() int
}

// StateView sets the status label in the view.
type StateView interface{ SetStateLabel(string) }

// ToolPresenter receives tool transitions and reflects mode and drawing
// state in the view on the next tick.
type ToolPresenter struct {
	eng     ToolSource
	view    StateView
	latest  string
	pending []tool.State
}

func NewToolPresenter(eng ToolSource, view StateView) *ToolPresenter {
	return &ToolPresenter{eng: eng, view: view}
}

// OnState queues a transitioned state from the machine listener.
//
// The view is refreshed once on the next Tick regardless of how many
// transitions happened in between.
func (p *ToolPresenter) OnState(s tool.State) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, s)
}

// Tick flushes pending transitions and updates the view when the composed
// status text changed.
func (p *ToolPresenter) Tick(now time.Time) {
	if p == nil || p.eng == nil || p.view == nil {
		return
	}
	p.pending = p.pending[:0]
	text := "Mode: " + p.eng.Mode().String()
	switch p.eng.State() {
	case tool.StateDrawingBox:
		text += " | drawing"
	case tool.StateDrawingPolygon:
		text += " | polygon: " + strconv.Itoa(p.eng.VertexCount()) + " vertices (Enter closes)"
	}
	if text != p.latest {
		p.latest = text
		p.view.SetStateLabel(text)
	}
}
