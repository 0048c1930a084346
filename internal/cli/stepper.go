package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/render"
	"github.com/SeamusWaldron/cubesim/internal/solver"
)

const (
	minStepInterval = 125 * time.Millisecond
	maxStepInterval = 4 * time.Second
)

type stepTickMsg time.Time

// stepperModel walks through a recorded solution. index -1 shows the
// scrambled cube before the first move.
type stepperModel struct {
	start    *cube.Cube
	steps    []solver.Step
	index    int
	playing  bool
	interval time.Duration
	quitting bool
}

func newStepperModel(start *cube.Cube, steps []solver.Step) *stepperModel {
	return &stepperModel{
		start:    start,
		steps:    steps,
		index:    -1,
		interval: 500 * time.Millisecond,
	}
}

func (m *stepperModel) Init() tea.Cmd {
	return nil
}

func (m *stepperModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return stepTickMsg(t)
	})
}

func (m *stepperModel) atEnd() bool {
	return m.index >= len(m.steps)-1
}

func (m *stepperModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right":
			m.playing = false
			if !m.atEnd() {
				m.index++
			}

		case "b", "left":
			m.playing = false
			if m.index >= 0 {
				m.index--
			}

		case "p":
			m.playing = !m.playing
			if m.playing {
				if m.atEnd() {
					m.index = -1
				}
				return m, m.tick()
			}

		case "r":
			m.playing = false
			m.index = -1

		case "+", "=":
			m.interval /= 2
			if m.interval < minStepInterval {
				m.interval = minStepInterval
			}

		case "-":
			m.interval *= 2
			if m.interval > maxStepInterval {
				m.interval = maxStepInterval
			}
		}

	case stepTickMsg:
		if !m.playing {
			return m, nil
		}
		if !m.atEnd() {
			m.index++
		}
		if m.atEnd() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *stepperModel) current() *cube.Cube {
	if m.index < 0 {
		return m.start
	}
	return m.steps[m.index].State
}

func (m *stepperModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Solution replay") + "\n\n")

	if m.index < 0 {
		sb.WriteString(statusStyle.Render(fmt.Sprintf("Scrambled (0/%d)", len(m.steps))) + "\n")
	} else {
		st := m.steps[m.index]
		sb.WriteString(fmt.Sprintf("Step %d/%d: %s\n", st.Index+1, len(m.steps), moveStyle.Render(st.Move.Notation())))
	}
	sb.WriteString("\n" + render.Styled(m.current()) + "\n")

	c := m.current()
	if c.IsSolved() {
		sb.WriteString(selectedStyle.Render("SOLVED") + "\n")
	}

	state := "paused"
	if m.playing {
		state = fmt.Sprintf("playing every %s", m.interval)
	}
	sb.WriteString(statusStyle.Render(state) + "\n\n")
	sb.WriteString(helpStyle.Render("n/space: next  b: back  p: play/pause  +/-: speed  r: reset  q: quit") + "\n")

	return sb.String()
}

// runStepper opens the solution replay TUI.
func runStepper(start *cube.Cube, steps []solver.Step) error {
	p := tea.NewProgram(newStepperModel(start, steps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}
