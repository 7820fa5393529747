package model

import (
	"time"
)

// SessionModel tracks how long the current labeling burst has run and the
// accumulated active annotating time. A burst is open while the user is
// actively drawing or editing; presenters poll Values() and update views.
// The zero value is ready to use.
type SessionModel struct {
	active            bool
	burstStart        time.Time
	lastBurstDuration time.Duration
	accumulated       time.Duration
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates the model with whether the user is annotating right now.
// Call periodically (for example, from a presenter tick).
func (m *SessionModel) OnTick(annotating bool, now time.Time) {
	if m == nil {
		return
	}
	if annotating {
		if !m.active { // transition off -> on
			m.active = true
			m.burstStart = now
			m.lastBurstDuration = 0
		}
		m.lastBurstDuration = now.Sub(m.burstStart)
	} else if m.active { // transition on -> off
		m.lastBurstDuration = now.Sub(m.burstStart)
		m.accumulated += m.lastBurstDuration
		m.active = false
	}
}

// Values returns the current burst duration and the total accumulated active
// time. The total includes the ongoing burst when active.
func (m *SessionModel) Values() (burst, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	burst = m.lastBurstDuration
	total = m.accumulated
	if m.active {
		total += burst
	}
	return
}
