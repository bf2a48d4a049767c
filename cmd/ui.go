package cmd

import (
	"fmt"
	"strings"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sumwatshade/tidetable/cmd/chart"
	"github.com/sumwatshade/tidetable/cmd/report"
	"github.com/sumwatshade/tidetable/cmd/tides"
)

// stationItem is a station entry in the left-hand list.
type stationItem struct {
	name  string
	stats tides.Stats
}

func (i stationItem) Title() string { return i.name }
func (i stationItem) Description() string {
	return fmt.Sprintf("max %.3f  min %.3f  mean %.3f", i.stats.Max, i.stats.Min, i.stats.Mean)
}
func (i stationItem) FilterValue() string { return strings.ToLower(i.name) }

type model struct {
	rightView string // "chart" or "reports"
	table     *tides.Table
	tableErr  error
	stations  list.Model
	reports   list.Model
	reportSvc report.Service
	reportErr error
	width     int
	height    int
	// help / key bindings
	keys keyMap
	help bhelp.Model
}

func initialModel(t *tides.Table, svc report.Service) model {
	m := model{rightView: "chart", table: t, reportSvc: svc, keys: keys, help: bhelp.New()}

	summary, err := t.Summary(tides.All)
	m.tableErr = err
	var items []list.Item
	for _, name := range t.Stations() {
		items = append(items, stationItem{name: name, stats: summary[name]})
	}
	m.stations = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.stations.Title = "Stations"
	m.stations.SetShowHelp(false)

	var saved []report.Report
	if svc != nil {
		saved, m.reportErr = svc.List()
	}
	m.reports = list.New(report.Items(saved), report.Delegate{}, 0, 0)
	m.reports.Title = "Saved reports"
	m.reports.SetShowHelp(false)
	return m
}

func (m model) Init() tea.Cmd {
	// Just return `nil`, which means "no I/O right now, please."
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		bodyH := max(5, m.height-4) // header, two separators, help
		m.stations.SetSize(leftPaneWidth(m.width)-4, bodyH-2)
		m.reports.SetSize(rightPaneWidth(m.width)-4, bodyH-2)
		return m, nil
	case tea.KeyMsg:
		filtering := m.stations.FilterState() == list.Filtering
		if !filtering {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Chart):
				m.rightView = "chart"
				return m, nil
			case key.Matches(msg, m.keys.Reports):
				m.rightView = "reports"
				return m, nil
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.rightView == "reports" {
		m.reports, cmd = m.reports.Update(msg)
	} else {
		m.stations, cmd = m.stations.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	left := m.stations.View()
	if m.tableErr != nil {
		left = errStyle.Render(m.tableErr.Error())
	}

	var right string
	switch m.rightView {
	case "chart":
		right = m.chartView()
	case "reports":
		right = m.reportsView()
	default:
		right = "unknown"
	}

	leftW := leftPaneWidth(m.width)
	rightW := rightPaneWidth(m.width)
	leftRendered := lipgloss.NewStyle().Width(leftW).Render(contentStyle.Render(left))
	rightRendered := lipgloss.NewStyle().Width(rightW).Render(contentStyle.Render(right))
	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, dividerStyle.Render("│"), rightRendered)

	header := headerStyle.Render(appTitle) + " " + infoStyle.Render(m.table.Path()) + " " + tabs(m.rightView, max(0, m.width-10))
	sep := dividerStyle.Render(strings.Repeat("─", max(0, m.width)))
	foot := m.help.View(m.keys)
	layout := lipgloss.JoinVertical(lipgloss.Left, header, sep, columns, sep, foot)
	if m.width > 0 {
		layout = lipgloss.NewStyle().Width(m.width).Render(layout)
	}
	return layout
}

// chartView plots the selected station across the whole table.
func (m model) chartView() string {
	sel, ok := m.stations.SelectedItem().(stationItem)
	if !ok {
		return infoStyle.Render("No stations loaded")
	}
	term := chart.NewTerminal(nil, rightPaneWidth(m.width)-6, max(6, m.height-20))
	var out string
	err := m.table.PlotSeries(sel.name, tides.All, tides.RendererFunc(func(c tides.Chart) error {
		s, err := term.String(c)
		out = s
		return err
	}))
	if err != nil {
		return errStyle.Render(err.Error())
	}
	s := sel.stats
	stats := infoStyle.Render(fmt.Sprintf("%d readings | max %.3f m / min %.3f m / mean %.3f m", s.Count, s.Max, s.Min, s.Mean))
	if s.Coerced > 0 {
		stats += "\n" + errStyle.Render(fmt.Sprintf("%d non-numeric values counted as 0", s.Coerced))
	}
	return out + "\n" + stats
}

func (m model) reportsView() string {
	if m.reportSvc == nil {
		return infoStyle.Render("Report store unavailable. Set reports.dir in $HOME/.tidetable.yaml")
	}
	if m.reportErr != nil {
		return errStyle.Render("reports: " + m.reportErr.Error())
	}
	if len(m.reports.Items()) == 0 {
		return report.Summary(nil)
	}
	body := m.reports.View()
	if sel, ok := m.reports.SelectedItem().(report.Item); ok {
		body = lipgloss.JoinVertical(lipgloss.Left, body, report.Detail(sel.Report))
	}
	return body
}

// leftPaneWidth is 30% of the terminal, at least 24 columns.
func leftPaneWidth(total int) int {
	return max(24, int(float64(total)*0.3))
}

// rightPaneWidth is what remains after the left pane and divider.
func rightPaneWidth(total int) int {
	return max(20, total-leftPaneWidth(total)-1)
}
