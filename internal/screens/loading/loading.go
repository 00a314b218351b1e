package loading

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pathx/internal/llm"
	"pathx/internal/report"
	"pathx/internal/router"
	"pathx/internal/screen"
	"pathx/internal/screens/result"
	"pathx/internal/ui/components"
	"pathx/internal/ui/layout"
	"pathx/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// statusLines cycle while the model is generating.
var statusLines = []string{
	"Đang phân tích câu trả lời của bạn...",
	"Đang giải mã tính cách...",
	"Đang tính toán thần số học...",
	"Đang tìm những nghề hợp với bạn...",
	"Đang viết lộ trình học tập...",
	"Sắp xong rồi, chờ chút nhé...",
}

// tickMsg advances the spinner and the status line.
type tickMsg time.Time

// generatedMsg carries the outcome of one generation attempt.
type generatedMsg struct {
	rec report.ResultRecord
	err error
}

// LoadingScreen runs report generation and shows progress. On failure it
// offers retry, the demo report, or a way back home.
type LoadingScreen struct {
	orch      *report.Orchestrator
	sessionID string

	frame      int
	status     int
	generating bool

	errMsg string
	menu   components.Menu
}

var _ screen.Screen = (*LoadingScreen)(nil)

// New creates the loading screen for a submitted session.
func New(orch *report.Orchestrator, sessionID string) *LoadingScreen {
	return &LoadingScreen{orch: orch, sessionID: sessionID}
}

func (l *LoadingScreen) Title() string {
	return "Đang tạo báo cáo"
}

func (l *LoadingScreen) Init() tea.Cmd {
	l.generating = true
	return tea.Batch(l.generate(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (l *LoadingScreen) generate() tea.Cmd {
	orch, sessionID := l.orch, l.sessionID
	return func() tea.Msg {
		rec, err := orch.Generate(context.Background(), sessionID)
		return generatedMsg{rec: rec, err: err}
	}
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !l.generating {
			return l, nil
		}
		l.frame = (l.frame + 1) % len(spinnerFrames)
		// One status line roughly every two seconds.
		if l.frame == 0 {
			l.status = (l.status + 1) % len(statusLines)
		}
		return l, tick()

	case generatedMsg:
		l.generating = false
		if msg.err == nil {
			s := result.New(msg.rec)
			return l, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: s}
			}
		}
		l.errMsg = friendlyError(msg.err)
		l.menu = components.NewMenu(l.recoveryItems())
		return l, nil
	}

	if l.errMsg != "" {
		var cmd tea.Cmd
		l.menu, cmd = l.menu.Update(msg)
		return l, cmd
	}
	return l, nil
}

func (l *LoadingScreen) recoveryItems() []components.MenuItem {
	return []components.MenuItem{
		{Label: "Thử lại", Action: l.retry},
		{Label: "Xem báo cáo mẫu", Action: l.useFallback},
		{Label: "Về màn hình chính", Action: goHome},
	}
}

func (l *LoadingScreen) retry() tea.Cmd {
	l.errMsg = ""
	l.generating = true
	l.frame = 0
	l.status = 0
	return tea.Batch(l.generate(), tick())
}

func (l *LoadingScreen) useFallback() tea.Cmd {
	rec, err := l.orch.UseFallback(l.sessionID)
	if err != nil {
		l.errMsg = friendlyError(err)
		return nil
	}
	s := result.New(rec)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s}
	}
}

func goHome() tea.Cmd {
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

// friendlyError maps pipeline errors to short Vietnamese messages.
func friendlyError(err error) string {
	var config *llm.ErrConfig
	var timeout *llm.ErrTimeout
	var rateLimit *llm.ErrRateLimit
	var malformed *llm.ErrMalformedResponse
	var invalid *llm.ErrInvalidResponse
	var schema *report.ErrSchema
	var unavailable *llm.ErrProviderUnavailable

	switch {
	case errors.As(err, &config):
		return "Chưa có API key cho AI. Đặt biến môi trường GEMINI_API_KEY (hoặc PATHX_LLM_PROVIDER và key tương ứng) rồi mở lại ứng dụng nhé!"
	case errors.As(err, &timeout), errors.Is(err, context.DeadlineExceeded):
		return "Mất nhiều thời gian hơn dự kiến. Thử lại nhé!"
	case errors.As(err, &rateLimit):
		return "Hệ thống đang bận, chờ một chút rồi thử lại nhé!"
	case errors.As(err, &malformed), errors.As(err, &invalid), errors.As(err, &schema):
		return "AI trả kết quả không đúng format. Thử lại hoặc xem báo cáo mẫu nhé!"
	case errors.As(err, &unavailable):
		return "Không kết nối được. Kiểm tra WiFi rồi thử lại nhé!"
	case errors.Is(err, report.ErrNoPrompt):
		return "Chưa có dữ liệu trắc nghiệm. Hãy hoàn thành bài trắc nghiệm trước nhé!"
	default:
		return "Có lỗi xảy ra. Thử lại nhé!"
	}
}

func (l *LoadingScreen) KeyHints() []layout.KeyHint {
	if l.errMsg != "" {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "chọn"},
			{Key: "enter", Description: "xác nhận"},
		}
	}
	return nil
}

func (l *LoadingScreen) View(width, height int) string {
	var sections []string

	if l.errMsg != "" {
		sections = append(sections,
			theme.Warning.Render("✗ "+l.errMsg),
			"",
			l.menu.View(),
		)
	} else {
		spin := lipgloss.NewStyle().Foreground(theme.Primary).Render(spinnerFrames[l.frame])
		sections = append(sections,
			spin+"  "+theme.Subtitle.Render(statusLines[l.status]),
			"",
			theme.Hint.Render("AI đang viết báo cáo hướng nghiệp cho riêng bạn"),
		)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
