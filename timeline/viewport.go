package timeline

import "time"

const (
	// DaysToShow is the fixed width of the sliding window.
	DaysToShow = 40
	// StepDays is how far one navigation click moves the window.
	StepDays = 7
	// DefaultOffsetDays places the window start relative to today.
	DefaultOffsetDays = -10
)

// Viewport is the visible date window of the timeline.
type Viewport struct {
	Start time.Time
}

// DefaultViewport opens the window 10 days before today.
func DefaultViewport(today time.Time) Viewport {
	return Viewport{Start: Normalize(today).AddDate(0, 0, DefaultOffsetDays)}
}

func (v Viewport) End() time.Time {
	return v.Start.AddDate(0, 0, DaysToShow)
}

func (v Viewport) Back() Viewport {
	return Viewport{Start: v.Start.AddDate(0, 0, -StepDays)}
}

func (v Viewport) Forward() Viewport {
	return Viewport{Start: v.Start.AddDate(0, 0, StepDays)}
}

// Days enumerates every day in the window, in order.
func (v Viewport) Days() []time.Time {
	days := make([]time.Time, 0, DaysToShow)
	current := v.Start
	for i := 0; i < DaysToShow; i++ {
		days = append(days, current)
		current = current.AddDate(0, 0, 1)
	}
	return days
}
