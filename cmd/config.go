package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sumwatshade/tidetable/cmd/report"
	"github.com/sumwatshade/tidetable/cmd/tides"
)

// csvOptions builds codec options from configuration.
func csvOptions() (tides.Options, error) {
	opts := tides.Options{Delimiter: ',', Index: viper.GetBool("export.index")}
	if d := viper.GetString("csv.delimiter"); d != "" {
		if d == `\t` {
			d = "\t"
		}
		r, size := utf8.DecodeRuneInString(d)
		if size != len(d) {
			return tides.Options{}, fmt.Errorf("delimiter %q must be a single character", d)
		}
		opts.Delimiter = r
	}
	return opts, nil
}

// loadTable loads the configured readings file.
func loadTable() (*tides.Table, error) {
	opts, err := csvOptions()
	if err != nil {
		return nil, err
	}
	path := viper.GetString("data.file")
	t, err := tides.LoadWithOptions(path, opts)
	if err != nil {
		return nil, err
	}
	logger.Printf("loaded %d readings from %s", t.Len(), path)
	return t, nil
}

// exportTable writes t to path with the configured codec options.
func exportTable(t *tides.Table, path string) error {
	opts, err := csvOptions()
	if err != nil {
		return err
	}
	if err := t.ExportWithOptions(path, opts); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	logger.Printf("wrote %d readings to %s", t.Len(), path)
	return nil
}

// reportService opens the report store, or returns nil when it cannot be
// created; callers treat a nil service as "reports unavailable".
func reportService() report.Service {
	svc, err := report.NewFileService(viper.GetString("reports.dir"))
	if err != nil {
		logger.Printf("reports unavailable: %v", err)
		return nil
	}
	return svc
}

// windowFlags registers --from/--to on cmd and returns a parser for them.
func windowFlags(cmd *cobra.Command) func() (tides.Window, error) {
	var from, to string
	cmd.Flags().StringVar(&from, "from", "", "start of the time window, inclusive (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end of the time window, inclusive (RFC 3339 or YYYY-MM-DD)")
	return func() (tides.Window, error) {
		return tides.ParseWindow(from, to)
	}
}
