package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats displays the current annotating burst and the accumulated
// active time.
type SessionStats interface {
	SetSession(burst, total time.Duration)
}

type sessionStats struct {
	burstLbl *LabelWidget
	totalLbl *LabelWidget
}

// NewSessionStats creates the burst and total labels at (row, startCol) and
// (row, startCol+1).
func NewSessionStats(row, startCol int) SessionStats {
	s := &sessionStats{burstLbl: Label(Width(14)), totalLbl: Label(Width(14))}
	Grid(s.burstLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.totalLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	s.burstLbl.Configure(Txt("Burst: 00:00"))
	s.totalLbl.Configure(Txt("Active: 00:00"))
	return s
}

func (s *sessionStats) SetSession(burst, total time.Duration) {
	if s == nil {
		return
	}
	if s.burstLbl != nil {
		s.burstLbl.Configure(Txt("Burst: " + clock(burst)))
	}
	if s.totalLbl != nil {
		s.totalLbl.Configure(Txt("Active: " + clock(total)))
	}
}

func clock(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
