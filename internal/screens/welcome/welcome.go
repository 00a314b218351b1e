package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pathx/internal/report"
	"pathx/internal/router"
	"pathx/internal/screen"
	"pathx/internal/screens/quiz"
	"pathx/internal/screens/result"
	"pathx/internal/session"
	"pathx/internal/ui/components"
	"pathx/internal/ui/theme"
)

// WelcomeScreen is the entry menu: start or continue the questionnaire,
// open a stored report, or start over.
type WelcomeScreen struct {
	manager *session.Manager
	orch    *report.Orchestrator
	menu    components.Menu
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the welcome screen.
func New(manager *session.Manager, orch *report.Orchestrator) *WelcomeScreen {
	w := &WelcomeScreen{manager: manager, orch: orch}
	w.menu = components.NewMenu(w.menuItems())
	return w
}

func (w *WelcomeScreen) menuItems() []components.MenuItem {
	started := w.manager.Snapshot().Progress.AnsweredQuestions > 0
	hasReport := w.orch.HasResult(w.manager.SessionID())

	startLabel := "Bắt đầu trắc nghiệm"
	if started {
		startLabel = "Tiếp tục trắc nghiệm"
	}

	items := []components.MenuItem{
		{Label: startLabel, Action: w.startQuiz},
	}
	if hasReport {
		items = append(items, components.MenuItem{Label: "Xem báo cáo của bạn", Action: w.openReport})
	}
	if started {
		items = append(items, components.MenuItem{Label: "Làm lại từ đầu", Action: w.restart})
	}
	items = append(items, components.MenuItem{Label: "Thoát", Action: func() tea.Cmd { return tea.Quit }})
	return items
}

func (w *WelcomeScreen) startQuiz() tea.Cmd {
	s := quiz.New(w.manager, w.orch)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (w *WelcomeScreen) openReport() tea.Cmd {
	rec, err := w.orch.Result(w.manager.SessionID())
	if err != nil {
		return nil
	}
	s := result.New(rec)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (w *WelcomeScreen) restart() tea.Cmd {
	w.manager.Reset()
	w.menu = components.NewMenu(w.menuItems())
	return nil
}

func (w *WelcomeScreen) Title() string {
	return "Hướng nghiệp Gen Z"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	// Rebuild in case a report or progress appeared while away.
	w.menu = components.NewMenu(w.menuItems())
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Khám phá bản thân, định hướng tương lai")
	sections = append(sections, tagline)

	snap := w.manager.Snapshot()
	if snap.Progress.AnsweredQuestions > 0 {
		progress := theme.Hint.Render(fmt.Sprintf(
			"Đã trả lời %d/%d câu hỏi",
			snap.Progress.AnsweredQuestions, snap.Progress.TotalQuestions,
		))
		sections = append(sections, "", progress)
	}

	sections = append(sections, "", w.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
