package tides

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Reading is a single tide observation. Fields hold the text exactly as it was
// read so that an export writes back what was loaded; use Time and Height for
// typed access.
type Reading struct {
	DateTime string
	Station  string
	Value    string
}

// timeLayouts are tried in order when parsing a reading timestamp.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Time parses the reading timestamp. Timestamps without a zone are read as UTC.
func (r Reading) Time() (time.Time, error) {
	return parseTime(r.DateTime)
}

// Height returns the tide value in metres. Values that are not numeric, NaN
// included, count as 0; ok reports whether the value parsed.
func (r Reading) Height() (h float64, ok bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.Value), 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// Point is one sample of a station series.
type Point struct {
	Time   time.Time
	Height float64
}

// Table is an ordered, append-only collection of readings. It is not safe for
// concurrent use.
type Table struct {
	path     string
	readings []Reading
}

// New returns a table holding readings in the given order.
func New(readings []Reading) *Table {
	t := &Table{readings: make([]Reading, len(readings))}
	copy(t.readings, readings)
	return t
}

// Path is the file the table was loaded from, if any.
func (t *Table) Path() string { return t.path }

// Len is the number of readings in the table.
func (t *Table) Len() int { return len(t.readings) }

// Readings returns a copy of the readings in table order.
func (t *Table) Readings() []Reading {
	out := make([]Reading, len(t.readings))
	copy(out, t.readings)
	return out
}

// Stations lists the distinct station names, sorted.
func (t *Table) Stations() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range t.readings {
		if _, ok := seen[r.Station]; ok {
			continue
		}
		seen[r.Station] = struct{}{}
		names = append(names, r.Station)
	}
	sort.Strings(names)
	return names
}

// Span returns the earliest and latest parsable timestamps. ok is false when no
// reading has a valid timestamp.
func (t *Table) Span() (first, last time.Time, ok bool) {
	for _, r := range t.readings {
		ts, err := r.Time()
		if err != nil {
			continue
		}
		if !ok || ts.Before(first) {
			first = ts
		}
		if !ok || ts.After(last) {
			last = ts
		}
		ok = true
	}
	return first, last, ok
}

// Append adds a raw reading to the end of the table.
func (t *Table) Append(r Reading) {
	t.readings = append(t.readings, r)
}

// AddReading appends a reading to the table in place. The timestamp is stored
// in RFC 3339 form and the height with the shortest exact decimal.
func (t *Table) AddReading(at time.Time, station string, height float64) {
	t.Append(Reading{
		DateTime: at.Format(time.RFC3339),
		Station:  station,
		Value:    strconv.FormatFloat(height, 'f', -1, 64),
	})
}
