// Package chart draws tide series as braille line charts in the terminal.
package chart

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/tidetable/cmd/tides"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	axisStyle  = lipgloss.NewStyle().Faint(true)
	lineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
)

const (
	tickLayout  = "01-02 15:04"
	tickSpacing = 8 // columns between x ticks
)

// Terminal renders charts as text. Width and Height size the plot area
// including the y axis.
type Terminal struct {
	Width  int
	Height int
	Out    io.Writer
}

var _ tides.Renderer = (*Terminal)(nil)

// NewTerminal returns a renderer writing to out.
func NewTerminal(out io.Writer, width, height int) *Terminal {
	return &Terminal{Width: width, Height: height, Out: out}
}

// Render writes the chart to t.Out.
func (t *Terminal) Render(c tides.Chart) error {
	s, err := t.String(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(t.Out, s)
	return err
}

// String renders the chart and returns it.
func (t *Terminal) String(c tides.Chart) (string, error) {
	if len(c.Points) == 0 {
		return "", fmt.Errorf("chart %q: %w", c.Title, tides.ErrNoData)
	}
	width, height := t.Width, t.Height
	if width < 20 {
		width = 20
	}
	if height < 6 {
		height = 6
	}

	minT, maxT := c.Points[0].Time, c.Points[0].Time
	minV, maxV := c.Points[0].Height, c.Points[0].Height
	for _, p := range c.Points[1:] {
		if p.Time.Before(minT) {
			minT = p.Time
		}
		if p.Time.After(maxT) {
			maxT = p.Time
		}
		minV = math.Min(minV, p.Height)
		maxV = math.Max(maxV, p.Height)
	}
	if minV == maxV { // add small padding
		maxV += 0.1
		minV -= 0.1
	}
	if minT.Equal(maxT) {
		minT = minT.Add(-time.Hour)
		maxT = maxT.Add(time.Hour)
	}

	lc := timeserieslinechart.New(width, height)
	lc.SetTimeRange(minT, maxT)
	lc.SetViewTimeAndYRange(minT, maxT, minV, maxV)
	lc.SetStyle(lineStyle)
	// x labels are drawn below the canvas so they can be rotated
	lc.SetXStep(0)
	lc.Model.YLabelFormatter = func(i int, v float64) string {
		return fmt.Sprintf("%.2f", v)
	}
	for _, p := range c.Points {
		lc.Push(timeserieslinechart.TimePoint{Time: p.Time, Value: p.Height})
	}
	lc.DrawBraille()

	// tick columns relative to the canvas
	origin := lc.Model.Origin().X
	if lc.Model.YStep() > 0 {
		origin++
	}
	graphW := lc.GraphWidth()
	n := graphW/tickSpacing + 1
	if n < 2 {
		n = 2
	}
	labels := make([]string, n)
	cols := make([]int, n)
	span := maxT.Sub(minT)
	for i := 0; i < n; i++ {
		frac := float64(i) / float64(n-1)
		labels[i] = minT.Add(time.Duration(frac * float64(span))).UTC().Format(tickLayout)
		cols[i] = origin + int(math.Round(frac*float64(graphW-1)))
	}

	b := &strings.Builder{}
	if c.Title != "" {
		b.WriteString(titleStyle.Render(c.Title))
		b.WriteString("\n")
	}
	if c.YLabel != "" {
		b.WriteString(axisStyle.Render(c.YLabel))
		b.WriteString("\n")
	}
	b.WriteString(lc.View())
	b.WriteString("\n")
	b.WriteString(axisStyle.Render(Ticks(labels, cols, c.XTickRotation)))
	if c.XLabel != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(lc.Canvas.Width(), lipgloss.Center, axisStyle.Render(c.XLabel)))
	}
	return b.String(), nil
}

// Ticks lays out x-axis tick labels so that label i starts at column cols[i].
// A rotation of 90 prints each label vertically reading bottom-up, -90 or 270
// top-down; anything else prints labels horizontally, dropping labels that
// would overlap their left neighbour.
func Ticks(labels []string, cols []int, rotation int) string {
	width := 0
	for i, l := range labels {
		if w := cols[i] + len(l); w > width {
			width = w
		}
	}

	switch rotation {
	case 90, -90, 270:
		depth := 0
		for _, l := range labels {
			if len(l) > depth {
				depth = len(l)
			}
		}
		rows := make([][]byte, depth)
		for r := range rows {
			rows[r] = []byte(strings.Repeat(" ", width))
		}
		for i, l := range labels {
			for j := 0; j < len(l); j++ {
				r := j
				if rotation == 90 {
					// bottom-up: the label ends on the top row
					r = len(l) - 1 - j
				}
				rows[r][cols[i]] = l[j]
			}
		}
		lines := make([]string, depth)
		for r, row := range rows {
			lines[r] = strings.TrimRight(string(row), " ")
		}
		return strings.Join(lines, "\n")
	default:
		row := []byte(strings.Repeat(" ", width))
		next := 0
		for i, l := range labels {
			if cols[i] < next {
				continue
			}
			copy(row[cols[i]:], l)
			next = cols[i] + len(l) + 1
		}
		return strings.TrimRight(string(row), " ")
	}
}
