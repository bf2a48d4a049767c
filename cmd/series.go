package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/sumwatshade/tidetable/cmd/tides"
)

var seriesCmd = &cobra.Command{
	Use:   "series STATION...",
	Short: "Print the tide series of one or more stations, one column per station",
	Args:  cobra.MinimumNArgs(1),
}

func init() {
	window := windowFlags(seriesCmd)
	seriesCmd.RunE = func(cmd *cobra.Command, args []string) error {
		w, err := window()
		if err != nil {
			return err
		}
		t, err := loadTable()
		if err != nil {
			return err
		}
		p, err := t.StationSeries(args, w)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), pivotTable(p))
		return nil
	}
	rootCmd.AddCommand(seriesCmd)
}

// pivotTable renders a pivot with one row per timestamp. Missing cells are
// left blank.
func pivotTable(p *tides.Pivot) string {
	headers := append([]string{"dateTime"}, p.Stations()...)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	for _, ts := range p.Times() {
		row := []string{ts.Format(time.RFC3339)}
		for _, s := range p.Stations() {
			cell := ""
			if h, ok := p.At(ts, s); ok {
				cell = strconv.FormatFloat(h, 'f', -1, 64)
			}
			row = append(row, cell)
		}
		tbl.Row(row...)
	}
	return tbl.Render()
}
