package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pathx/internal/report"
	"pathx/internal/router"
	"pathx/internal/screen"
	"pathx/internal/screens/welcome"
	"pathx/internal/session"
	"pathx/internal/ui/layout"
)

// Deps carries the wired services the UI runs on.
type Deps struct {
	Manager      *session.Manager
	Orchestrator *report.Orchestrator
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the welcome screen.
func newAppModel(deps Deps) AppModel {
	return AppModel{
		deps:   deps,
		router: router.New(welcome.New(deps.Manager, deps.Orchestrator)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.deps.Manager.ProgressPercent(), m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return append(hints, layout.KeyHint{Key: "ctrl+c", Description: "thoát"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "esc", Description: "quay lại"},
			{Key: "ctrl+c", Description: "thoát"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "chọn"},
		{Key: "enter", Description: "xác nhận"},
		{Key: "ctrl+c", Description: "thoát"},
	}
}

// Run starts the Bubble Tea program and flushes the session on exit.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	deps.Manager.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
