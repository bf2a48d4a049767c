package tides

import (
	"sort"
	"time"
)

// Pivot is a timestamp-indexed view of one or more station series. It is
// derived from a Table on each query and never stored.
type Pivot struct {
	times    []time.Time
	stations []string
	cells    map[instant]map[string]float64
}

// instant identifies a point in time independent of its location. Unlike
// UnixNano it is defined for every year time.Time can hold.
type instant struct {
	sec  int64
	nsec int
}

func instantOf(t time.Time) instant {
	return instant{sec: t.Unix(), nsec: t.Nanosecond()}
}

// Times returns the distinct timestamps in ascending order.
func (p *Pivot) Times() []time.Time {
	return append([]time.Time(nil), p.times...)
}

// Stations returns the stations present in the pivot, in request order.
func (p *Pivot) Stations() []string {
	return append([]string(nil), p.stations...)
}

// At returns the height for station at t.
func (p *Pivot) At(t time.Time, station string) (float64, bool) {
	row, ok := p.cells[instantOf(t)]
	if !ok {
		return 0, false
	}
	h, ok := row[station]
	return h, ok
}

// Series returns the time-ordered points for one station.
func (p *Pivot) Series(station string) []Point {
	var pts []Point
	for _, t := range p.times {
		if h, ok := p.At(t, station); ok {
			pts = append(pts, Point{Time: t, Height: h})
		}
	}
	return pts
}

// Len is the number of timestamps in the pivot.
func (p *Pivot) Len() int { return len(p.times) }

type cellKey struct {
	at      instant
	station string
}

// StationSeries pivots the readings of the named stations inside w into a
// timestamp-indexed table. Stations with no readings in w are left out of the
// result. Non-numeric heights become 0.
func (t *Table) StationSeries(stations []string, w Window) (*Pivot, error) {
	wanted := make(map[string]bool, len(stations))
	for _, s := range stations {
		wanted[s] = true
	}

	p := &Pivot{cells: make(map[instant]map[string]float64)}
	present := make(map[string]bool)
	firstRow := make(map[cellKey]int)
	for i, r := range t.readings {
		if !wanted[r.Station] {
			continue
		}
		ts, err := r.Time()
		if err != nil {
			return nil, &TimeError{Row: i, Value: r.DateTime, Err: err}
		}
		if !w.Contains(ts) {
			continue
		}
		key := cellKey{at: instantOf(ts), station: r.Station}
		if prev, dup := firstRow[key]; dup {
			return nil, &DataConflictError{Time: ts, Station: r.Station, Rows: [2]int{prev, i}}
		}
		firstRow[key] = i

		row, ok := p.cells[key.at]
		if !ok {
			row = make(map[string]float64)
			p.cells[key.at] = row
			p.times = append(p.times, ts)
		}
		row[r.Station], _ = r.Height()
		present[r.Station] = true
	}

	sort.Slice(p.times, func(i, j int) bool { return p.times[i].Before(p.times[j]) })
	for _, s := range stations {
		if present[s] {
			p.stations = append(p.stations, s)
			present[s] = false // drop repeats in the request
		}
	}
	return p, nil
}
