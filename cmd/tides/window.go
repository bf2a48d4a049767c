package tides

import (
	"fmt"
	"strings"
	"time"
)

// Window is an inclusive time range. A zero From or To leaves that side open.
type Window struct {
	From time.Time
	To   time.Time
}

// All is the unbounded window.
var All = Window{}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && t.After(w.To) {
		return false
	}
	return true
}

func (w Window) String() string {
	bound := func(t time.Time) string {
		if t.IsZero() {
			return "*"
		}
		return t.Format(time.RFC3339)
	}
	return "[" + bound(w.From) + ", " + bound(w.To) + "]"
}

// ParseWindow builds a window from two optional bounds. Each bound is an
// RFC 3339 timestamp or a plain date; a plain-date upper bound covers the
// whole of that day. Empty strings leave the side open.
func ParseWindow(from, to string) (Window, error) {
	var w Window
	var err error
	if from = strings.TrimSpace(from); from != "" {
		if w.From, _, err = parseBound(from); err != nil {
			return Window{}, fmt.Errorf("from %q: %w", from, err)
		}
	}
	if to = strings.TrimSpace(to); to != "" {
		var dateOnly bool
		if w.To, dateOnly, err = parseBound(to); err != nil {
			return Window{}, fmt.Errorf("to %q: %w", to, err)
		}
		if dateOnly {
			w.To = w.To.Add(24*time.Hour - time.Nanosecond)
		}
	}
	if !w.From.IsZero() && !w.To.IsZero() && w.To.Before(w.From) {
		return Window{}, fmt.Errorf("window ends before it starts: %s", w)
	}
	return w, nil
}

func parseBound(s string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.DateOnly, s); err == nil {
		return t, true, nil
	}
	t, err = parseTime(s)
	return t, false, err
}
