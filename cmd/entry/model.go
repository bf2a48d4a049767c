// Package entry collects a new tide reading interactively.
package entry

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

const timeLayout = time.RFC3339

// Entry is a reading typed in by the user.
type Entry struct {
	Time    time.Time
	Station string
	Height  float64
}

// Model holds the form and the raw field values bound to it.
type Model struct {
	form       *huh.Form
	timeStr    string
	stationStr string
	heightStr  string
}

// NewModel builds the form. stations are offered as completions and now
// pre-fills the timestamp.
func NewModel(stations []string, now time.Time) *Model {
	m := &Model{timeStr: now.UTC().Truncate(time.Minute).Format(timeLayout)}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Time (ISO 8601)").Value(&m.timeStr).Validate(validateTime),
			huh.NewInput().Title("Station").Suggestions(stations).Value(&m.stationStr).Validate(validateStation),
			huh.NewInput().Title("Tide height (m)").Value(&m.heightStr).Validate(validateHeight),
		),
	).WithShowHelp(false)
	return m
}

// Run shows the form and returns the completed entry.
func (m *Model) Run() (Entry, error) {
	if err := m.form.Run(); err != nil {
		return Entry{}, err
	}
	return m.Entry()
}

// Entry converts the current field values.
func (m *Model) Entry() (Entry, error) {
	t, err := time.Parse(timeLayout, strings.TrimSpace(m.timeStr))
	if err != nil {
		return Entry{}, err
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(m.heightStr), 64)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Time: t, Station: strings.TrimSpace(m.stationStr), Height: h}, nil
}

func validateTime(s string) error {
	if _, err := time.Parse(timeLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("use a timestamp like 2021-09-20T02:00:00Z")
	}
	return nil
}

func validateStation(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("station required")
	}
	return nil
}

func validateHeight(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("height must be a number")
	}
	return nil
}
