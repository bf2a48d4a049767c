package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sumwatshade/tidetable/cmd/entry"
)

var addCmd = &cobra.Command{
	Use:   "add [TIME STATION HEIGHT]",
	Short: "Append a reading and write the table back",
	Long: `Appends one reading to the table and writes it back to the readings file,
or to --out when given. Without arguments a form asks for the reading.
Arguments are not validated beyond parsing: TIME is RFC 3339 and HEIGHT a
number.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return fmt.Errorf("want no arguments or TIME STATION HEIGHT, got %d arguments", len(args))
		}
		return nil
	},
}

func init() {
	out := addCmd.Flags().StringP("out", "o", "", "write the updated table here instead of the readings file")
	addCmd.RunE = func(cmd *cobra.Command, args []string) error {
		t, err := loadTable()
		if err != nil {
			return err
		}

		var e entry.Entry
		if len(args) == 0 {
			if e, err = entry.NewModel(t.Stations(), time.Now()).Run(); err != nil {
				return err
			}
		} else {
			if e.Time, err = time.Parse(time.RFC3339, args[0]); err != nil {
				return fmt.Errorf("time %q: %w", args[0], err)
			}
			e.Station = args[1]
			if e.Height, err = strconv.ParseFloat(args[2], 64); err != nil {
				return fmt.Errorf("height %q: %w", args[2], err)
			}
		}

		t.AddReading(e.Time, e.Station, e.Height)
		dest := *out
		if dest == "" {
			dest = t.Path()
		}
		if err := exportTable(t, dest); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s %s %g (%d readings)\n", e.Time.Format(time.RFC3339), e.Station, e.Height, t.Len())
		return nil
	}
	rootCmd.AddCommand(addCmd)
}
