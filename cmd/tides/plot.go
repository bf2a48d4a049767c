package tides

import "fmt"

// Chart describes a labelled line chart of one station series.
type Chart struct {
	Title         string
	XLabel        string
	YLabel        string
	XTickRotation int // tick label angle in degrees; 90 reads bottom-up
	Points        []Point
}

// Renderer draws a chart. Display and window semantics belong to the renderer.
type Renderer interface {
	Render(c Chart) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(c Chart) error

func (f RendererFunc) Render(c Chart) error { return f(c) }

// PlotSeries renders the series of one station inside w. The series is shaped
// exactly as StationSeries shapes it.
func (t *Table) PlotSeries(station string, w Window, r Renderer) error {
	p, err := t.StationSeries([]string{station}, w)
	if err != nil {
		return err
	}
	pts := p.Series(station)
	if len(pts) == 0 {
		return fmt.Errorf("station %q in %s: %w", station, w, ErrNoData)
	}
	return r.Render(Chart{
		Title:         station,
		XLabel:        "Time & Date",
		YLabel:        "Tide Height(m)",
		XTickRotation: 90,
		Points:        pts,
	})
}
