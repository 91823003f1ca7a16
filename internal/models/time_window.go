package models

import (
	"fmt"
	"time"
)

// TimeWindow is the half-open interval [Start, End) in epoch milliseconds.
type TimeWindow struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// NewTimeWindow builds a window from two instants.
func NewTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{Start: start.UnixMilli(), End: end.UnixMilli()}
}

// Contains reports whether ts falls inside the window.
func (w TimeWindow) Contains(ts int64) bool {
	return w.Start <= ts && ts < w.End
}

// IsInverted reports whether Start is after End. Such a window matches nothing.
func (w TimeWindow) IsInverted() bool {
	return w.Start > w.End
}

// WindowPeriod selects how far back a "current stats" window reaches.
type WindowPeriod string

const (
	PeriodDay  WindowPeriod = "day"
	PeriodWeek WindowPeriod = "week"
	PeriodAll  WindowPeriod = "all"
)

const Day = 24 * time.Hour

// NewWindowPeriodFromString parses a period selector.
func NewWindowPeriodFromString(s string) (WindowPeriod, error) {
	switch p := WindowPeriod(s); p {
	case PeriodDay, PeriodWeek, PeriodAll:
		return p, nil
	default:
		return "", fmt.Errorf("invalid window period: %q", s)
	}
}

// Duration is the length of the period. PeriodAll has no fixed length and returns 0.
func (p WindowPeriod) Duration() time.Duration {
	switch p {
	case PeriodDay:
		return Day
	case PeriodWeek:
		return 7 * Day
	case PeriodAll:
		return 0
	default:
		panic(fmt.Sprintf("invalid WindowPeriod: %q", p))
	}
}

// Window resolves the period to [now-duration, now). PeriodAll starts at the epoch.
func (p WindowPeriod) Window(now time.Time) TimeWindow {
	d := p.Duration()
	if d == 0 {
		return TimeWindow{Start: 0, End: now.UnixMilli()}
	}
	return NewTimeWindow(now.Add(-d), now)
}
