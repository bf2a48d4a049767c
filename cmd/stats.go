package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/sumwatshade/tidetable/cmd/report"
	"github.com/sumwatshade/tidetable/cmd/tides"
)

var statsCmd = &cobra.Command{
	Use:   "stats [max|min|mean]",
	Short: "Per-station tide statistics over a time window",
	Long: `Prints the maximum, minimum or mean tide height of every station with
readings in the window. Without a statistic all three are shown, with the
number of non-numeric values that were counted as 0.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"max", "min", "mean"},
}

func init() {
	window := windowFlags(statsCmd)
	save := statsCmd.Flags().Bool("save", false, "save the result as a report (requires a statistic)")
	statsCmd.RunE = func(cmd *cobra.Command, args []string) error {
		w, err := window()
		if err != nil {
			return err
		}
		t, err := loadTable()
		if err != nil {
			return err
		}
		summary, err := t.Summary(w)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			if *save {
				return fmt.Errorf("--save needs a statistic: max, min or mean")
			}
			fmt.Fprintln(cmd.OutOrStdout(), summaryTable(summary))
			return nil
		}

		kind, err := tides.ParseKind(args[0])
		if err != nil {
			return err
		}
		r := report.New(t.Path(), kind, w, summary)
		if *save {
			svc := reportService()
			if svc == nil {
				return fmt.Errorf("report store unavailable")
			}
			if r, err = svc.Create(r); err != nil {
				return fmt.Errorf("save report: %w", err)
			}
			logger.Printf("saved report %s", r.ID)
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.Detail(r))
		return nil
	}
	rootCmd.AddCommand(statsCmd)
}

func summaryTable(summary map[string]tides.Stats) string {
	names := make([]string, 0, len(summary))
	for n := range summary {
		names = append(names, n)
	}
	sort.Strings(names)

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("station", "readings", "max", "min", "mean", "coerced").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	for _, n := range names {
		s := summary[n]
		tbl.Row(n, strconv.Itoa(s.Count), f(s.Max), f(s.Min), f(s.Mean), strconv.Itoa(s.Coerced))
	}
	return tbl.Render()
}
