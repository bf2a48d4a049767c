package chart

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sumwatshade/tidetable/cmd/tides"
)

func TestTicks(t *testing.T) {
	table := []struct {
		name     string
		labels   []string
		cols     []int
		rotation int
		want     string
	}{{
		name:     "bottom-up",
		labels:   []string{"ab", "xyz"},
		cols:     []int{1, 4},
		rotation: 90,
		want:     " b  z\n a  y\n    x",
	}, {
		name:     "top-down",
		labels:   []string{"ab", "xyz"},
		cols:     []int{1, 4},
		rotation: 270,
		want:     " a  x\n b  y\n    z",
	}, {
		name:     "horizontal drops overlaps",
		labels:   []string{"abc", "def", "ghi"},
		cols:     []int{0, 2, 5},
		rotation: 0,
		want:     "abc  ghi",
	}}

	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			got := Ticks(test.labels, test.cols, test.rotation)
			if diff := cmp.Diff(got, test.want); diff != "" {
				t.Errorf("(-got,+want): %s", diff)
			}
		})
	}
}

func TestTerminalRender(t *testing.T) {
	start := time.Date(2021, time.September, 20, 0, 0, 0, 0, time.UTC)
	var pts []tides.Point
	for i, h := range []float64{1.5, 0.2, 0.937, 2.376, -2.231} {
		pts = append(pts, tides.Point{Time: start.Add(time.Duration(i) * time.Hour), Height: h})
	}
	c := tides.Chart{
		Title:         "Newlyn",
		XLabel:        "Time & Date",
		YLabel:        "Tide Height(m)",
		XTickRotation: 90,
		Points:        pts,
	}

	var buf bytes.Buffer
	if err := NewTerminal(&buf, 60, 12).Render(c); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	out := buf.String()
	for _, want := range []string{"Newlyn", "Tide Height(m)", "Time & Date"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// the first tick label is printed vertically, so its month digits
	// never appear side by side
	if strings.Contains(out, "09-20") {
		t.Errorf("tick labels were not rotated:\n%s", out)
	}
}

func TestTerminalNoPoints(t *testing.T) {
	_, err := NewTerminal(nil, 60, 12).String(tides.Chart{Title: "empty"})
	if !errors.Is(err, tides.ErrNoData) {
		t.Errorf("got %v, want ErrNoData", err)
	}
}
