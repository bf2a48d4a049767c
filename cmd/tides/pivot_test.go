package tides

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func sampleTable(t *testing.T) *Table {
	t.Helper()
	readings, err := Decode(strings.NewReader(sampleCSV), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	return New(readings)
}

func TestStationSeriesScenario(t *testing.T) {
	table := New([]Reading{
		{DateTime: "2021-09-20T02:00:00Z", Station: "Newlyn", Value: "0.937"},
		{DateTime: "2021-09-20T02:00:00Z", Station: "Bangor", Value: "1.2"},
	})
	p, err := table.StationSeries([]string{"Newlyn", "Bangor"}, All)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	at := mustTime(t, "2021-09-20T02:00:00Z")
	for station, want := range map[string]float64{"Newlyn": 0.937, "Bangor": 1.2} {
		if got, ok := p.At(at, station); !ok || got != want {
			t.Errorf("At(%s) = %v, %v; want %v", station, got, ok, want)
		}
	}
	if diff := cmp.Diff(p.Stations(), []string{"Newlyn", "Bangor"}); diff != "" {
		t.Errorf("Stations (-got,+want): %s", diff)
	}
}

func TestStationSeriesWindow(t *testing.T) {
	table := sampleTable(t)
	table.Append(Reading{DateTime: "2021-09-19T23:00:00Z", Station: "Newlyn", Value: "2.376"})

	table2 := []struct {
		name   string
		window Window
		want   []Point
	}{{
		name:   "unbounded",
		window: All,
		want: []Point{
			{mustTime(t, "2021-09-19T23:00:00Z"), 2.376},
			{mustTime(t, "2021-09-20T00:00:00Z"), 1.5},
			{mustTime(t, "2021-09-20T01:00:00Z"), 0.2},
			{mustTime(t, "2021-09-20T02:00:00Z"), 0.937},
		},
	}, {
		name:   "inclusive bounds",
		window: Window{From: mustTime(t, "2021-09-20T00:00:00Z"), To: mustTime(t, "2021-09-20T01:00:00Z")},
		want: []Point{
			{mustTime(t, "2021-09-20T00:00:00Z"), 1.5},
			{mustTime(t, "2021-09-20T01:00:00Z"), 0.2},
		},
	}, {
		name:   "open start",
		window: Window{To: mustTime(t, "2021-09-20T00:00:00Z")},
		want: []Point{
			{mustTime(t, "2021-09-19T23:00:00Z"), 2.376},
			{mustTime(t, "2021-09-20T00:00:00Z"), 1.5},
		},
	}, {
		name:   "open end",
		window: Window{From: mustTime(t, "2021-09-20T01:30:00Z")},
		want: []Point{
			{mustTime(t, "2021-09-20T02:00:00Z"), 0.937},
		},
	}}

	for _, test := range table2 {
		t.Run(test.name, func(t *testing.T) {
			p, err := table.StationSeries([]string{"Newlyn"}, test.window)
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if diff := cmp.Diff(p.Series("Newlyn"), test.want); diff != "" {
				t.Errorf("(-got,+want): %s", diff)
			}
		})
	}
}

func TestStationSeriesMissingStation(t *testing.T) {
	p, err := sampleTable(t).StationSeries([]string{"Newlyn", "Whitby"}, All)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if diff := cmp.Diff(p.Stations(), []string{"Newlyn"}); diff != "" {
		t.Errorf("Stations (-got,+want): %s", diff)
	}
	if got := p.Series("Whitby"); len(got) != 0 {
		t.Errorf("Series(Whitby) = %v, want empty", got)
	}
}

func TestStationSeriesCoercesBadValues(t *testing.T) {
	p, err := sampleTable(t).StationSeries([]string{"Bangor"}, All)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if got, ok := p.At(mustTime(t, "2021-09-20T01:00:00Z"), "Bangor"); !ok || got != 0 {
		t.Errorf("At() = %v, %v; want 0, true", got, ok)
	}
}

func TestStationSeriesConflict(t *testing.T) {
	table := sampleTable(t)
	table.Append(Reading{DateTime: "2021-09-20T03:00:00+01:00", Station: "Newlyn", Value: "0.9"})

	_, err := table.StationSeries([]string{"Newlyn"}, All)
	var conflict *DataConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("got %v, want *DataConflictError", err)
	}
	if conflict.Station != "Newlyn" || conflict.Rows != [2]int{4, 6} {
		t.Errorf("got conflict %+v", conflict)
	}

	// Outside the window, or for another station, the duplicate is not pivoted.
	if _, err := table.StationSeries([]string{"Bangor"}, All); err != nil {
		t.Errorf("Bangor: unexpected error: %v", err)
	}
	w := Window{To: mustTime(t, "2021-09-20T01:00:00Z")}
	if _, err := table.StationSeries([]string{"Newlyn"}, w); err != nil {
		t.Errorf("windowed: unexpected error: %v", err)
	}
}

func TestStationSeriesBadTimestamp(t *testing.T) {
	table := sampleTable(t)
	table.Append(Reading{DateTime: "soon", Station: "Newlyn", Value: "1"})
	_, err := table.StationSeries([]string{"Newlyn"}, All)
	var te *TimeError
	if !errors.As(err, &te) || te.Row != 6 {
		t.Errorf("got %v, want *TimeError for row 6", err)
	}
}

func TestStationSeriesFarInstants(t *testing.T) {
	// 2^64ns apart, so the two instants agree modulo the int64 nanosecond range.
	early := time.Date(1700, time.January, 1, 0, 0, 0, 0, time.UTC)
	late := time.Unix(early.Unix()+18446744073, 709551616).UTC()

	tests := []struct {
		name  string
		times []time.Time
	}{
		{name: "wrapped nanoseconds", times: []time.Time{early, late}},
		{name: "before 1678", times: []time.Time{time.Date(1500, time.June, 1, 12, 0, 0, 0, time.UTC)}},
		{name: "after 2262", times: []time.Time{time.Date(2500, time.June, 1, 12, 0, 0, 0, time.UTC)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var readings []Reading
			var want []Point
			for i, ts := range tt.times {
				h := float64(i + 1)
				readings = append(readings, Reading{
					DateTime: ts.Format(time.RFC3339Nano),
					Station:  "Newlyn",
					Value:    strconv.FormatFloat(h, 'f', -1, 64),
				})
				want = append(want, Point{Time: ts, Height: h})
			}
			p, err := New(readings).StationSeries([]string{"Newlyn"}, All)
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if diff := cmp.Diff(p.Series("Newlyn"), want); diff != "" {
				t.Errorf("Series (-got,+want): %s", diff)
			}
			for _, pt := range want {
				if got, ok := p.At(pt.Time, "Newlyn"); !ok || got != pt.Height {
					t.Errorf("At(%s) = %v, %v; want %v", pt.Time, got, ok, pt.Height)
				}
			}
		})
	}
}

func TestPivotAccessorsReturnCopies(t *testing.T) {
	p, err := sampleTable(t).StationSeries([]string{"Newlyn", "Bangor"}, All)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	want := p.Series("Newlyn")

	times := p.Times()
	for i := range times {
		times[i] = times[i].Add(time.Hour)
	}
	stations := p.Stations()
	stations[0] = "Whitby"

	if diff := cmp.Diff(p.Series("Newlyn"), want); diff != "" {
		t.Errorf("Series after mutating Times (-got,+want): %s", diff)
	}
	if diff := cmp.Diff(p.Stations(), []string{"Newlyn", "Bangor"}); diff != "" {
		t.Errorf("Stations (-got,+want): %s", diff)
	}
}
