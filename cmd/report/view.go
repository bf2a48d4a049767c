package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Detail renders a single report: header line plus a station/value table.
func Detail(r Report) string {
	b := &strings.Builder{}
	fmt.Fprintln(b, metaStyle.Render(fmt.Sprintf("%s  %s tide over %s", r.ID, r.Kind, r.Window())))
	if r.Source != "" {
		fmt.Fprintln(b, metaStyle.Render("source: "+r.Source))
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("station", r.Kind, "coerced").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, name := range r.Stations() {
		t.Row(name, strconv.FormatFloat(r.Values[name], 'f', -1, 64), strconv.Itoa(r.Coerced[name]))
	}
	b.WriteString(t.Render())
	return b.String()
}

// Summary renders a one-line-per-report listing, newest first.
func Summary(reports []Report) string {
	if len(reports) == 0 {
		return metaStyle.Render("No saved reports. Run `tidetable stats <kind> --save` to create one.")
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("id", "kind", "window", "stations", "created").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range reports {
		t.Row(r.ID, r.Kind, r.Window().String(), strconv.Itoa(len(r.Values)), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return t.Render()
}
