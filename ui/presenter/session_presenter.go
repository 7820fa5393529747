package presenter

import (
	"time"

	"github.com/soocke/image-label-go/ui/model"
)

// ActivitySource reports whether the user is actively annotating.
type ActivitySource interface{ Annotating() bool }

// SessionView displays formatted burst and total durations.
type SessionView interface {
	SetSession(burst, total time.Duration)
}

// SessionPresenter feeds the session model from the activity source and
// pushes the durations to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	src  ActivitySource
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, src ActivitySource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, src: src, view: view}
}

// Tick updates the presenter: advance the session model and push values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.src == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.src.Annotating(), now)
	b, t := p.sess.Values()
	p.view.SetSession(b, t)
}
