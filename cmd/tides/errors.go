package tides

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMissingColumn is wrapped by LoadError when a required header is absent.
	ErrMissingColumn = errors.New("missing required column")
	// ErrNoData is returned when a query has nothing to work on, e.g. plotting a
	// station with no readings in the window.
	ErrNoData = errors.New("no data")
	// ErrUnknownKind is returned by ParseKind.
	ErrUnknownKind = errors.New("unknown aggregate")
)

// LoadError reports a table that could not be loaded from Path.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DataConflictError reports two readings for the same station at the same
// instant, which a pivot cannot hold.
type DataConflictError struct {
	Time    time.Time
	Station string
	Rows    [2]int // zero-based table positions of the two readings
}

func (e *DataConflictError) Error() string {
	return fmt.Sprintf("duplicate reading for %q at %s (rows %d and %d)",
		e.Station, e.Time.Format(time.RFC3339), e.Rows[0], e.Rows[1])
}

// TimeError reports a reading whose timestamp could not be parsed.
type TimeError struct {
	Row   int
	Value string
	Err   error
}

func (e *TimeError) Error() string {
	return fmt.Sprintf("row %d: bad timestamp %q: %v", e.Row, e.Value, e.Err)
}

func (e *TimeError) Unwrap() error { return e.Err }
