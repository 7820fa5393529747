package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It ticks the sub-presenters and invokes a scheduler callback so the UI
// shell can re-arm its timer. The zero value is usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	Tool     *ToolPresenter
	Nav      *NavigationPresenter
	Schedule func()
}

func NewLoop(sess *SessionPresenter, tp *ToolPresenter, nav *NavigationPresenter, schedule func()) *Loop {
	return &Loop{Session: sess, Tool: tp, Nav: nav, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Tool presenter first so pending transitions reach the view promptly.
	if l.Tool != nil {
		l.Tool.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Nav != nil {
		l.Nav.Refresh()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
