package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pathx/internal/quiz"
	"pathx/internal/ui/theme"
)

// ChoiceList is a single-select option list for one question. Unlike a
// graded quiz widget it never reveals an answer key; the chosen value is
// simply recorded.
type ChoiceList struct {
	Question  string
	Options   []quiz.Option
	Selected  int
	Submitted bool
}

// NewChoiceList creates a choice list, preselecting the option matching
// current (the previously saved answer), if any.
func NewChoiceList(question string, options []quiz.Option, current string) ChoiceList {
	selected := 0
	for i, opt := range options {
		if opt.Value == current {
			selected = i
			break
		}
	}
	return ChoiceList{Question: question, Options: options, Selected: selected}
}

func (c ChoiceList) Init() tea.Cmd {
	return nil
}

func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
	}

	return c, nil
}

// Value returns the selected option value.
func (c ChoiceList) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected].Value
}

func (c ChoiceList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Question) + "\n\n"

	for i, opt := range c.Options {
		prefix := "    "
		if i == c.Selected {
			prefix = "  ▸ "
		}
		line := prefix + opt.Label

		if i == c.Selected {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// Scale is a 1-5 agreement selector rendered horizontally.
type Scale struct {
	Question  string
	Options   []quiz.Option
	Selected  int
	Submitted bool
}

// NewScale creates a scale selector. current preselects the saved answer;
// otherwise the middle option is the starting point.
func NewScale(question string, options []quiz.Option, current string) Scale {
	selected := len(options) / 2
	for i, opt := range options {
		if opt.Value == current {
			selected = i
			break
		}
	}
	return Scale{Question: question, Options: options, Selected: selected}
}

func (s Scale) Init() tea.Cmd {
	return nil
}

func (s Scale) Update(msg tea.Msg) (Scale, tea.Cmd) {
	if s.Submitted {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.Selected > 0 {
			s.Selected--
		}
	case "right", "l":
		if s.Selected < len(s.Options)-1 {
			s.Selected++
		}
	case "1", "2", "3", "4", "5":
		idx := int(kmsg.String()[0]-'0') - 1
		if idx >= 0 && idx < len(s.Options) {
			s.Selected = idx
		}
	case "enter":
		s.Submitted = true
	}

	return s, nil
}

// Value returns the selected scale value as its numeric weight.
func (s Scale) Value() float64 {
	return float64(s.Selected + 1)
}

func (s Scale) View() string {
	out := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.Question) + "\n\n  "

	for i := range s.Options {
		cell := fmt.Sprintf(" %d ", i+1)
		if i == s.Selected {
			out += theme.ButtonActive.Render(cell)
		} else {
			out += theme.ButtonInactive.Render(cell)
		}
		out += " "
	}

	if s.Selected >= 0 && s.Selected < len(s.Options) {
		out += "\n\n  " + theme.Hint.Render(s.Options[s.Selected].Label)
	}

	return out
}
