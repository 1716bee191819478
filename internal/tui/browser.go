// Package tui is the interactive lesson browser.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clobos/statlab/internal/lesson"
	"github.com/clobos/statlab/internal/viz"
)

const (
	stateMenu = iota
	stateLesson
)

type model struct {
	state   int
	cursor  int
	lessons []lesson.Lesson
	output  string
	scroll  int
	width   int
	height  int
}

func newModel(reg *lesson.Registry) model {
	return model{
		state:   stateMenu,
		lessons: reg.List(),
		width:   80,
		height:  24,
	}
}

// Browse runs the lesson browser until the user quits.
func Browse(reg *lesson.Registry) error {
	p := tea.NewProgram(newModel(reg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.lessons)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.output = m.runLesson(m.lessons[m.cursor])
			m.scroll = 0
			m.state = stateLesson
		}
	case stateLesson:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "backspace":
			m.state = stateMenu
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			m.scroll++
		}
	}
	return m, nil
}

func (m model) runLesson(l lesson.Lesson) string {
	var buf bytes.Buffer
	if err := l.Run(&buf); err != nil {
		return fmt.Sprintf("lesson failed: %v", err)
	}
	return buf.String()
}

func (m model) View() string {
	switch m.state {
	case stateLesson:
		return m.lessonView()
	default:
		return m.menuView()
	}
}

func (m model) menuView() string {
	var sb strings.Builder
	sb.WriteString(viz.HeaderStyle.Render("statlab lessons"))
	sb.WriteString("\n\n")
	for i, l := range m.lessons {
		marker := "  "
		line := fmt.Sprintf("%-22s %s", l.Name, viz.Subtle.Render(l.Summary))
		if i == m.cursor {
			marker = viz.GoodStyle.Render("> ")
			line = viz.ValueStyle.Render(fmt.Sprintf("%-22s ", l.Name)) + viz.Subtle.Render(l.Summary)
		}
		sb.WriteString(marker + line + "\n")
	}
	sb.WriteString(viz.HelpStyle.Render("\n↑/↓ move · enter run · q quit"))
	return sb.String()
}

func (m model) lessonView() string {
	l := m.lessons[m.cursor]
	lines := strings.Split(m.output, "\n")

	visible := m.height - 4
	if visible < 1 {
		visible = 1
	}
	start := m.scroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}

	var sb strings.Builder
	sb.WriteString(viz.HeaderStyle.Render(l.Title))
	sb.WriteString("\n")
	sb.WriteString(strings.Join(lines[start:end], "\n"))
	sb.WriteString(viz.HelpStyle.Render("\n↑/↓ scroll · esc back · q quit"))
	return sb.String()
}
