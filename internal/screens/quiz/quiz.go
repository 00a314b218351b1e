package quiz

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pathx/internal/quiz"
	"pathx/internal/report"
	"pathx/internal/router"
	"pathx/internal/scoring"
	"pathx/internal/screen"
	"pathx/internal/screens/loading"
	"pathx/internal/session"
	"pathx/internal/ui/components"
	"pathx/internal/ui/layout"
	"pathx/internal/ui/theme"
)

// QuizScreen walks the learner through the question sequence, one widget
// per question, resuming wherever the session left off.
type QuizScreen struct {
	manager *session.Manager
	orch    *report.Orchestrator

	moduleID  string
	index     int
	flash     string
	showIntro bool

	question quiz.Question
	choice   components.ChoiceList
	scale    components.Scale
	multi    components.MultiSelect
	text     components.TextInput
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates the quiz screen positioned at the session's resume point.
func New(manager *session.Manager, orch *report.Orchestrator) *QuizScreen {
	q := &QuizScreen{manager: manager, orch: orch}
	q.moduleID = manager.CurrentModule()
	q.index = manager.QuestionIndex(q.moduleID)
	q.showIntro = q.index == 0
	q.loadQuestion()
	return q
}

func (q *QuizScreen) Title() string {
	if mod, ok := quiz.ModuleByID(q.moduleID); ok {
		return mod.Icon + " " + mod.Name
	}
	return ""
}

func (q *QuizScreen) Init() tea.Cmd {
	if q.question.Type == quiz.TypeText {
		return q.text.Init()
	}
	return nil
}

// loadQuestion builds the widget for the current cursor, restoring any
// saved answer so going back over a question keeps its value.
func (q *QuizScreen) loadQuestion() {
	mod, ok := quiz.ModuleByID(q.moduleID)
	if !ok || q.index >= mod.QuestionCount() {
		return
	}
	q.question = mod.Questions[q.index]

	saved, _ := q.savedAnswer()

	switch q.question.Type {
	case quiz.TypeScale:
		// Scale answers persist as numbers; option values are "1".."5".
		current := ""
		if n := saved.AsNumber(); n > 0 {
			current = strconv.Itoa(int(n))
		}
		q.scale = components.NewScale(q.question.Text, q.question.Options, current)
	case quiz.TypeMulti:
		q.multi = components.NewMultiSelect(q.question.Text, q.question.Options, q.question.MaxSelect, saved.AsChoices())
	case quiz.TypeText:
		q.text = components.NewTextInput("Nhập câu trả lời...", false, 120)
		if saved.AsText() != "" {
			q.text.Model.SetValue(saved.AsText())
		}
	default:
		q.choice = components.NewChoiceList(q.question.Text, q.question.Options, saved.AsText())
	}
}

func (q *QuizScreen) savedAnswer() (quiz.AnswerValue, bool) {
	snap := q.manager.Snapshot()
	v, ok := snap.Answers[q.moduleID][q.question.ID]
	return v, ok
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	q.flash = ""

	if q.showIntro {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			q.showIntro = false
			return q, q.Init()
		}
		return q, nil
	}

	switch q.question.Type {
	case quiz.TypeScale:
		var cmd tea.Cmd
		q.scale, cmd = q.scale.Update(msg)
		if q.scale.Submitted {
			return q.submit(quiz.Number(q.scale.Value()))
		}
		return q, cmd

	case quiz.TypeMulti:
		var cmd tea.Cmd
		q.multi, cmd = q.multi.Update(msg)
		if q.multi.Submitted {
			return q.submit(quiz.MultiChoice(q.multi.Values()...))
		}
		return q, cmd

	case quiz.TypeText:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			if strings.TrimSpace(q.text.Value()) == "" {
				q.flash = "Hãy nhập câu trả lời trước khi tiếp tục"
				return q, nil
			}
			return q.submit(quiz.Text(strings.TrimSpace(q.text.Value())))
		}
		var cmd tea.Cmd
		q.text, cmd = q.text.Update(msg)
		return q, cmd

	default:
		var cmd tea.Cmd
		q.choice, cmd = q.choice.Update(msg)
		if q.choice.Submitted {
			return q.submit(quiz.Choice(q.choice.Value()))
		}
		return q, cmd
	}
}

// submit records the answer and moves the cursor, finishing the
// questionnaire when the last question of the last module closes.
func (q *QuizScreen) submit(value quiz.AnswerValue) (screen.Screen, tea.Cmd) {
	q.manager.SaveAnswer(q.moduleID, q.question.ID, value)
	step := q.manager.AdvanceQuestion(q.moduleID)

	if step.AllDone {
		return q, q.finish()
	}

	if step.ModuleDone {
		q.moduleID = step.Module
		q.index = q.manager.QuestionIndex(q.moduleID)
		q.showIntro = true
	} else {
		q.index = step.QuestionIndex
	}

	q.loadQuestion()
	return q, q.Init()
}

// finish scores the session, persists the prompt, and hands off to the
// loading screen. The prompt write happens here, before any network call.
func (q *QuizScreen) finish() tea.Cmd {
	q.manager.Flush()
	snap := q.manager.Snapshot()
	answers := scoring.Answers(snap.Answers)
	profile := scoring.Build(answers)

	if _, err := q.orch.Submit(snap.SessionID, profile, answers); err != nil {
		q.flash = "Không lưu được dữ liệu, thử lại nhé"
		return nil
	}

	s := loading.New(q.orch, snap.SessionID)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s}
	}
}

func (q *QuizScreen) widgetView() string {
	switch q.question.Type {
	case quiz.TypeScale:
		return q.scale.View()
	case quiz.TypeMulti:
		return q.multi.View()
	case quiz.TypeText:
		return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.question.Text) +
			"\n\n  " + q.text.View()
	default:
		return q.choice.View()
	}
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.showIntro {
		return []layout.KeyHint{
			{Key: "enter", Description: "bắt đầu"},
			{Key: "esc", Description: "quay lại"},
		}
	}
	switch q.question.Type {
	case quiz.TypeScale:
		return []layout.KeyHint{
			{Key: "←/→", Description: "chọn"},
			{Key: "enter", Description: "xác nhận"},
			{Key: "esc", Description: "quay lại"},
		}
	case quiz.TypeMulti:
		return []layout.KeyHint{
			{Key: "space", Description: "chọn"},
			{Key: "enter", Description: "xác nhận"},
			{Key: "esc", Description: "quay lại"},
		}
	case quiz.TypeText:
		return []layout.KeyHint{
			{Key: "enter", Description: "xác nhận"},
			{Key: "esc", Description: "quay lại"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "chọn"},
			{Key: "enter", Description: "xác nhận"},
			{Key: "esc", Description: "quay lại"},
		}
	}
}

func (q *QuizScreen) View(width, height int) string {
	mod, ok := quiz.ModuleByID(q.moduleID)
	if !ok {
		return ""
	}

	if q.showIntro {
		return q.renderIntro(mod, width, height)
	}

	var sections []string

	counter := theme.Subtitle.Render(fmt.Sprintf("Câu %d/%d", q.index+1, mod.QuestionCount()))
	sections = append(sections, counter, "")

	barWidth := width - 20
	if barWidth > 60 {
		barWidth = 60
	}
	bar := components.NewProgressBar("", float64(q.manager.ProgressPercent())/100, true, barWidth)
	sections = append(sections, bar.View(), "")

	sections = append(sections, q.widgetView())

	if q.flash != "" {
		sections = append(sections, "", theme.Warning.Render(q.flash))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderIntro shows the module card before its first question.
func (q *QuizScreen) renderIntro(mod quiz.Module, width, height int) string {
	stepper := theme.Hint.Render(fmt.Sprintf("Phần %d/%d", quiz.ModuleIndex(mod.ID)+1, len(quiz.Modules())))
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%s  %s", mod.Icon, mod.Name))
	count := theme.Subtitle.Render(fmt.Sprintf("%d câu hỏi", mod.QuestionCount()))
	hint := theme.Hint.Render("Nhấn Enter để bắt đầu")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(stepper + "\n\n" + title + "\n" + count + "\n\n" + hint)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
