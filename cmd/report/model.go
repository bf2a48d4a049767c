package report

import (
	"sort"
	"time"

	"github.com/sumwatshade/tidetable/cmd/tides"
)

// Report is a saved per-station statistic over a time window.
// ID is assigned by the report service on Create.
type Report struct {
	ID        string             `json:"id"`
	Source    string             `json:"source"` // data file the table came from
	Kind      string             `json:"kind"`
	From      time.Time          `json:"from"`
	To        time.Time          `json:"to"`
	Values    map[string]float64 `json:"values"`
	Coerced   map[string]int     `json:"coerced,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// New builds an unsaved report of kind k from a table summary.
func New(source string, k tides.Kind, w tides.Window, summary map[string]tides.Stats) Report {
	r := Report{
		Source: source,
		Kind:   k.String(),
		From:   w.From,
		To:     w.To,
		Values: make(map[string]float64, len(summary)),
	}
	for name, s := range summary {
		r.Values[name] = s.Get(k)
		if s.Coerced > 0 {
			if r.Coerced == nil {
				r.Coerced = make(map[string]int)
			}
			r.Coerced[name] = s.Coerced
		}
	}
	return r
}

// Window returns the time window the report covers.
func (r Report) Window() tides.Window {
	return tides.Window{From: r.From, To: r.To}
}

// Stations lists the stations in the report, sorted.
func (r Report) Stations() []string {
	names := make([]string, 0, len(r.Values))
	for n := range r.Values {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
