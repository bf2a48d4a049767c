package tides

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names of the tide file format.
const (
	ColDateTime = "dateTime"
	ColStation  = "stationName"
	ColValue    = "tideValue"
)

// Options controls how tide files are read and written.
type Options struct {
	Delimiter rune // field delimiter (default ',')
	// Index writes a leading, unnamed row-index column on export, the layout
	// pandas' to_csv produces. Ignored on load.
	Index     bool
}

// DefaultOptions returns comma-delimited options with the index column on.
func DefaultOptions() Options {
	return Options{Delimiter: ',', Index: true}
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// Load reads a tide table from a comma-delimited file.
func Load(path string) (*Table, error) {
	return LoadWithOptions(path, DefaultOptions())
}

// LoadWithOptions reads a tide table from path. Any failure is a *LoadError.
func LoadWithOptions(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	readings, err := Decode(f, opts)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return &Table{path: path, readings: readings}, nil
}

// Decode parses delimited rows with a header naming the dateTime, stationName
// and tideValue columns. Other columns are ignored and row values are not
// validated.
func Decode(r io.Reader, opts Options) ([]Reading, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.delimiter()
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, err
	}

	idx := map[string]int{ColDateTime: -1, ColStation: -1, ColValue: -1}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if j, ok := idx[h]; ok && j == -1 {
			idx[h] = i
		}
	}
	for _, col := range []string{ColDateTime, ColStation, ColValue} {
		if idx[col] < 0 {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
	}

	field := func(rec []string, col string) string {
		if i := idx[col]; i < len(rec) {
			return rec[i]
		}
		return ""
	}

	var readings []Reading
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		readings = append(readings, Reading{
			DateTime: field(rec, ColDateTime),
			Station:  field(rec, ColStation),
			Value:    field(rec, ColValue),
		})
	}
	return readings, nil
}

// Export writes the table to path, replacing any existing file.
func (t *Table) Export(path string) error {
	return t.ExportWithOptions(path, DefaultOptions())
}

// ExportWithOptions writes the table to path, replacing any existing file.
func (t *Table) ExportWithOptions(path string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := Encode(w, t.readings, opts); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes readings as delimited rows under a dateTime, stationName,
// tideValue header, optionally preceded by a row-index column.
func Encode(w io.Writer, readings []Reading, opts Options) error {
	cw := csv.NewWriter(w)
	cw.Comma = opts.delimiter()

	header := []string{ColDateTime, ColStation, ColValue}
	if opts.Index {
		header = append([]string{""}, header...)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, r := range readings {
		rec := []string{r.DateTime, r.Station, r.Value}
		if opts.Index {
			rec = append([]string{strconv.Itoa(i)}, rec...)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
