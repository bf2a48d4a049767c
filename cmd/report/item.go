package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	itemTitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true)
	itemDescStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedTitleStyle = itemTitleStyle.Foreground(lipgloss.Color("51"))
	selectedDescStyle  = itemDescStyle.Foreground(lipgloss.Color("245"))
)

// Item adapts a Report to bubbles/list.
type Item struct{ Report }

func (i Item) Title() string {
	return fmt.Sprintf("%s tide, %d stations", i.Kind, len(i.Values))
}

func (i Item) Description() string {
	return i.CreatedAt.Local().Format("2006-01-02 15:04") + " | " + i.Window().String()
}

func (i Item) FilterValue() string {
	return strings.ToLower(strings.Join(append([]string{i.Kind, i.Source}, i.Stations()...), " "))
}

// Delegate renders report items as two lines.
type Delegate struct{}

func (d Delegate) Height() int                               { return 2 }
func (d Delegate) Spacing() int                              { return 1 }
func (d Delegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d Delegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(Item)
	if !ok {
		io.WriteString(w, "?")
		return
	}
	title := itemTitleStyle.Render(it.Title())
	desc := itemDescStyle.Render(it.Description())
	if index == m.Index() {
		title = selectedTitleStyle.Render(it.Title())
		desc = selectedDescStyle.Render(it.Description())
	}
	io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, title, desc))
}

// Items converts reports to list items, keeping order.
func Items(reports []Report) []list.Item {
	items := make([]list.Item, 0, len(reports))
	for _, r := range reports {
		items = append(items, Item{r})
	}
	return items
}
