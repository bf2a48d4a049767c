package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show reading count, stations and time span of the readings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "file:     %s\n", t.Path())
		fmt.Fprintf(out, "readings: %d\n", t.Len())
		stations := t.Stations()
		fmt.Fprintf(out, "stations: %d (%s)\n", len(stations), strings.Join(stations, ", "))
		if first, last, ok := t.Span(); ok {
			fmt.Fprintf(out, "span:     %s to %s\n", first.Format(time.RFC3339), last.Format(time.RFC3339))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
