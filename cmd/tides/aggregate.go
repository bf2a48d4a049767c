package tides

import (
	"fmt"
	"strings"
)

// Kind selects a per-station statistic.
type Kind int

const (
	Max Kind = iota
	Min
	Mean
)

var kindNames = map[Kind]string{Max: "max", Min: "min", Mean: "mean"}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts "max", "min" or "mean", case-insensitively.
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want max, min or mean)", ErrUnknownKind, s)
}

// Stats summarises one station over a window.
type Stats struct {
	Count   int // readings in the window
	Coerced int // non-numeric values taken as 0
	Max     float64
	Min     float64
	Mean    float64
}

// Get returns the statistic selected by k.
func (s Stats) Get(k Kind) float64 {
	switch k {
	case Min:
		return s.Min
	case Mean:
		return s.Mean
	default:
		return s.Max
	}
}

// Summary computes max, min and mean tide height per station over w. Values
// that are not numeric are counted as 0 and reported in Stats.Coerced. Only
// stations with at least one reading in w appear in the result.
func (t *Table) Summary(w Window) (map[string]Stats, error) {
	out := make(map[string]Stats)
	sums := make(map[string]float64)
	for i, r := range t.readings {
		ts, err := r.Time()
		if err != nil {
			return nil, &TimeError{Row: i, Value: r.DateTime, Err: err}
		}
		if !w.Contains(ts) {
			continue
		}
		h, ok := r.Height()
		s, seen := out[r.Station]
		if !seen || h > s.Max {
			s.Max = h
		}
		if !seen || h < s.Min {
			s.Min = h
		}
		if !ok {
			s.Coerced++
		}
		s.Count++
		sums[r.Station] += h
		out[r.Station] = s
	}
	for name, s := range out {
		s.Mean = sums[name] / float64(s.Count)
		out[name] = s
	}
	return out, nil
}

// Aggregate returns the statistic k of tide height per station over w. An
// empty table or window yields an empty map.
func (t *Table) Aggregate(k Kind, w Window) (map[string]float64, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownKind, k)
	}
	summary, err := t.Summary(w)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(summary))
	for name, s := range summary {
		out[name] = s.Get(k)
	}
	return out, nil
}
