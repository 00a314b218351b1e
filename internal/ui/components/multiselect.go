package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pathx/internal/quiz"
	"pathx/internal/ui/theme"
)

// MultiSelect is a checkbox list with an optional selection cap. Space
// toggles, enter submits. Selection order is preserved in Values.
type MultiSelect struct {
	Question  string
	Options   []quiz.Option
	MaxSelect int
	Cursor    int
	Submitted bool

	chosen []string
}

// NewMultiSelect creates a multi-select, restoring any previously chosen
// values.
func NewMultiSelect(question string, options []quiz.Option, maxSelect int, current []string) MultiSelect {
	return MultiSelect{
		Question:  question,
		Options:   options,
		MaxSelect: maxSelect,
		chosen:    append([]string{}, current...),
	}
}

func (m MultiSelect) Init() tea.Cmd {
	return nil
}

func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ":
		m.toggle(m.Options[m.Cursor].Value)
	case "enter":
		if len(m.chosen) > 0 {
			m.Submitted = true
		}
	}

	return m, nil
}

func (m *MultiSelect) toggle(value string) {
	for i, v := range m.chosen {
		if v == value {
			m.chosen = append(m.chosen[:i], m.chosen[i+1:]...)
			return
		}
	}
	if m.MaxSelect > 0 && len(m.chosen) >= m.MaxSelect {
		return
	}
	m.chosen = append(m.chosen, value)
}

func (m MultiSelect) isChosen(value string) bool {
	for _, v := range m.chosen {
		if v == value {
			return true
		}
	}
	return false
}

// Values returns the chosen option values in selection order.
func (m MultiSelect) Values() []string {
	return append([]string{}, m.chosen...)
}

func (m MultiSelect) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question) + "\n"
	if m.MaxSelect > 0 {
		s += theme.Hint.Render(fmt.Sprintf("  (đã chọn %d/%d)", len(m.chosen), m.MaxSelect)) + "\n"
	}
	s += "\n"

	for i, opt := range m.Options {
		box := "[ ]"
		if m.isChosen(opt.Value) {
			box = "[✓]"
		}

		prefix := "    "
		if i == m.Cursor {
			prefix = "  ▸ "
		}
		line := prefix + box + " " + opt.Label

		switch {
		case i == m.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case m.isChosen(opt.Value):
			s += theme.Checked.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
