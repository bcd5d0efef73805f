package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hwfetch/hwfetch/model"
)

var (
	tabStyle       = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model for the interactive report browser: one
// page per category, keyboard navigation, no live refresh.
type Model struct {
	rep    *model.Report
	page   int
	width  int
	height int
}

// NewModel wraps an already-collected report.
func NewModel(rep *model.Report) Model {
	return Model{rep: rep}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h", "shift+tab":
			if m.page > 0 {
				m.page--
			}
		case "right", "l", "tab":
			if m.page < len(m.rep.Categories)-1 {
				m.page++
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.rep.Categories) == 0 {
		return warnStyle.Render("No data collected") + "\n"
	}

	var tabs []string
	for i, cat := range m.rep.Categories {
		style := tabStyle
		if i == m.page {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(cat.Name))
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(tabs, " ") + "\n\n")
	sb.WriteString(RenderCategory(m.rep.Categories[m.page]))
	sb.WriteString(helpStyle.Render(fmt.Sprintf("←/→ switch category (%d/%d) · q quit",
		m.page+1, len(m.rep.Categories))))
	return sb.String()
}

// Browse opens the full-screen interactive browser over a report.
func Browse(rep *model.Report) error {
	p := tea.NewProgram(NewModel(rep), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
