package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesim/internal/scramble"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var levelHints = map[scramble.Level]string{
	scramble.Simple:   "5-6 moves",
	scramble.Standard: "10-20 moves",
	scramble.Deep:     "25+ moves",
}

type pickerModel struct {
	levels   []scramble.Level
	counts   map[scramble.Level]int
	cursor   int
	chosen   scramble.Level
	quitting bool
}

func newPickerModel(list *scramble.List) *pickerModel {
	m := &pickerModel{
		levels: scramble.Levels,
		counts: make(map[scramble.Level]int),
	}
	for _, level := range m.levels {
		m.counts[level] = len(list.Scrambles(level))
	}
	return m
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}

	case "1", "2", "3":
		i := int(key.String()[0] - '1')
		if i < len(m.levels) {
			m.chosen = m.levels[i]
			return m, tea.Quit
		}

	case "enter", " ":
		m.chosen = m.levels[m.cursor]
		return m, tea.Quit
	}

	return m, nil
}

func (m *pickerModel) View() string {
	if m.quitting || m.chosen != "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Select scramble type") + "\n\n")
	for i, level := range m.levels {
		line := fmt.Sprintf("%d) %s scramble (%s) - %d available",
			i+1, level.Title(), levelHints[level], m.counts[level])
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}
	sb.WriteString("\n" + helpStyle.Render("up/down: move  enter/1-3: select  q: quit") + "\n")
	return sb.String()
}

// pickLevel asks the user for a scramble level.
func pickLevel(list *scramble.List) (scramble.Level, error) {
	p := tea.NewProgram(newPickerModel(list))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("level picker: %w", err)
	}

	m := final.(*pickerModel)
	if m.chosen == "" {
		return "", errCancelled
	}
	return m.chosen, nil
}
