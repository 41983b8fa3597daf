package timeline

import "time"

const inputLayout = "2006-01-02"

// Normalize truncates t to midnight UTC. Zero values stay zero.
func Normalize(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseInput parses a calendar-only field value. An unparsable or empty
// value falls back to the current day, so the result is always valid.
func ParseInput(s string) time.Time {
	t, err := time.Parse(inputLayout, s)
	if err != nil {
		return Normalize(time.Now())
	}
	return Normalize(t)
}

// ParseInputOr parses a calendar-only field value, falling back to the
// given default instead of today.
func ParseInputOr(s string, fallback time.Time) time.Time {
	t, err := time.Parse(inputLayout, s)
	if err != nil {
		return Normalize(fallback)
	}
	return Normalize(t)
}

// FormatInput renders a date for an editable field, empty when unset.
func FormatInput(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(inputLayout)
}

// Span is a rendered interval expressed as percentages of the viewport.
type Span struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// PositionInWindow maps [start,end] onto the viewport [viewStart,viewEnd]
// as left/width percentages. The second return value is false when the
// interval lies entirely outside the viewport. Intervals beginning before
// the viewport are clipped at the left edge with the elapsed duration
// removed from the visible width; width never goes negative.
func PositionInWindow(start, end, viewStart, viewEnd time.Time) (Span, bool) {
	s := Normalize(start)
	e := Normalize(end)
	vs := Normalize(viewStart)
	ve := Normalize(viewEnd)

	total := ve.Sub(vs).Seconds()
	if total <= 0 {
		return Span{}, false
	}

	relStart := s.Sub(vs).Seconds() / total
	relDur := e.Sub(s).Seconds() / total

	if relStart > 1 || relStart+relDur < 0 {
		return Span{}, false
	}

	if relStart < 0 {
		relDur += relStart
		relStart = 0
	}

	width := relDur * 100
	if width < 0 {
		width = 0
	}

	return Span{Left: relStart * 100, Width: width}, true
}
