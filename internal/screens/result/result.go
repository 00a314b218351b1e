package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pathx/internal/report"
	"pathx/internal/router"
	"pathx/internal/screen"
	"pathx/internal/ui/layout"
	"pathx/internal/ui/theme"
)

// ResultScreen renders a stored career report as a scrollable document.
type ResultScreen struct {
	record report.ResultRecord
	rep    report.Report
	broken bool

	lines     []string
	lineWidth int
	offset    int
}

var _ screen.Screen = (*ResultScreen)(nil)

// New creates the result screen for a stored report.
func New(rec report.ResultRecord) *ResultScreen {
	s := &ResultScreen{record: rec}
	rep, err := rec.Parse()
	if err != nil {
		s.broken = true
		return s
	}
	s.rep = rep
	return s
}

func (s *ResultScreen) Title() string {
	if s.record.Source == report.SourceFallback {
		return "Báo cáo mẫu"
	}
	return "Báo cáo hướng nghiệp"
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.scroll(-1)
	case "down", "j":
		s.scroll(1)
	case "pgup", "b":
		s.scroll(-10)
	case "pgdown", "f", "space":
		s.scroll(10)
	case "home", "g":
		s.offset = 0
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ResultScreen) scroll(delta int) {
	s.offset += delta
	if s.offset < 0 {
		s.offset = 0
	}
	if max := len(s.lines) - 1; s.offset > max {
		s.offset = max
	}
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "cuộn"},
		{Key: "esc", Description: "quay lại"},
	}
}

func (s *ResultScreen) View(width, height int) string {
	if s.broken {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Warning.Render("Không đọc được báo cáo đã lưu"))
	}

	contentWidth := width - 8
	if contentWidth > 76 {
		contentWidth = 76
	}
	if contentWidth < 30 {
		contentWidth = 30
	}
	if s.lines == nil || s.lineWidth != contentWidth {
		s.lines = s.render(contentWidth)
		s.lineWidth = contentWidth
		s.offset = 0
	}

	end := s.offset + height
	if end > len(s.lines) {
		end = len(s.lines)
	}
	body := strings.Join(s.lines[s.offset:end], "\n")
	return lipgloss.NewStyle().PaddingLeft(4).Render(body)
}

// render lays the whole report out as wrapped lines at the given width.
func (s *ResultScreen) render(width int) []string {
	var b builder
	b.width = width
	rep := s.rep

	if s.record.Source == report.SourceFallback {
		b.line(theme.Hint.Render("Đây là báo cáo mẫu, không dựa trên câu trả lời của bạn."))
		b.blank()
	}

	// Personality.
	b.header(rep.Personality.Emoji + " " + rep.Personality.Title)
	b.para(rep.Personality.Summary)
	b.blank()
	b.sub("Điểm mạnh")
	b.bullets(rep.Personality.Strengths)
	b.sub("Cần phát triển")
	b.bullets(rep.Personality.GrowthAreas)
	if rep.Personality.FunDescription != "" {
		b.blank()
		b.line(theme.Hint.Render(wrap(rep.Personality.FunDescription, width)))
	}

	// Scores.
	ur := rep.UserResults
	b.header("📊 Kết quả của bạn")
	b.kv("IQ", fmt.Sprintf("%d/%d (%s)", ur.IQScore, ur.IQOutOf, ur.IQLevel))
	b.kv("EQ", ur.EQLevel)
	b.kv("  Tự nhận thức", fmt.Sprintf("%.1f/5", ur.EQScores.SelfAwareness))
	b.kv("  Kiểm soát cảm xúc", fmt.Sprintf("%.1f/5", ur.EQScores.EmotionalControl))
	b.kv("  Đồng cảm", fmt.Sprintf("%.1f/5", ur.EQScores.Empathy))
	if ur.EQScores.ConflictStyle != "" {
		b.kv("  Xử lý mâu thuẫn", ur.EQScores.ConflictStyle)
	}
	if len(ur.CareerInterests) > 0 {
		b.kv("Lĩnh vực quan tâm", strings.Join(ur.CareerInterests, ", "))
	}
	if ur.WorkStyle != "" {
		b.kv("Phong cách làm việc", ur.WorkStyle)
	}
	if ur.WorkEnvironment != "" {
		b.kv("Môi trường mong muốn", ur.WorkEnvironment)
	}
	if len(ur.CoreValues) > 0 {
		b.kv("Giá trị cốt lõi", strings.Join(ur.CoreValues, ", "))
	}

	// Assessment.
	a := rep.ObjectiveAssessment
	b.header("🔍 Đánh giá tổng quan")
	b.para(a.IQAnalysis)
	b.blank()
	b.para(a.EQAnalysis)
	b.blank()
	b.para(a.CareerFit)
	b.blank()
	b.para(a.OverallProfile)

	// Careers.
	b.header("💼 Nghề nghiệp phù hợp")
	for i, c := range rep.CareerRecommendations {
		if i > 0 {
			b.blank()
		}
		match := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("%d%%", c.MatchPercent))
		b.line(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(c.Emoji+" "+c.Title) + "  " + match)
		b.para(c.Reason)
		b.kv("Mức lương", c.SalaryRange)
		b.kv("Nhu cầu", c.DemandLevel)
		if len(c.Skills) > 0 {
			b.kv("Kỹ năng", strings.Join(c.Skills, ", "))
		}
	}

	// Numerology.
	n := rep.Numerology
	b.header("🔮 Thần số học")
	b.kv("Số chủ đạo", fmt.Sprintf("%d", n.LifePathNumber))
	b.para(n.LifePathMeaning)
	b.blank()
	b.kv("Số tính cách", fmt.Sprintf("%d", n.PersonalityNumber))
	b.para(n.PersonalityMeaning)
	b.blank()
	b.para(n.CareerAlignment)

	// Roadmap.
	b.header("🗺️ Lộ trình học tập")
	for i, r := range rep.LearningRoadmap {
		if i > 0 {
			b.blank()
		}
		b.sub(r.Career)
		for _, p := range r.Phases {
			b.line(theme.Subtitle.Render("  " + p.Phase))
			b.bullets(p.Tasks)
			if len(p.Resources) > 0 {
				b.line(theme.Hint.Render(wrap("    Tài nguyên: "+strings.Join(p.Resources, ", "), b.width)))
			}
		}
	}

	// Fun facts.
	b.header("✨ Có thể bạn chưa biết")
	for _, f := range rep.FunFacts {
		b.para(f.Emoji + " " + f.Fact)
	}
	b.blank()

	return b.lines
}

// builder accumulates wrapped, styled lines.
type builder struct {
	width int
	lines []string
}

func (b *builder) line(rendered string) {
	b.lines = append(b.lines, strings.Split(rendered, "\n")...)
}

func (b *builder) blank() {
	b.lines = append(b.lines, "")
}

func (b *builder) header(title string) {
	if len(b.lines) > 0 {
		b.blank()
	}
	b.line(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title))
	b.line(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", b.width)))
}

func (b *builder) sub(title string) {
	b.line(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title))
}

func (b *builder) para(text string) {
	if text == "" {
		return
	}
	b.line(lipgloss.NewStyle().Foreground(theme.Text).Render(wrap(text, b.width)))
}

func (b *builder) bullets(items []string) {
	for _, it := range items {
		b.line(lipgloss.NewStyle().Foreground(theme.Text).Render(wrap("  • "+it, b.width)))
	}
}

func (b *builder) kv(key, value string) {
	b.line(lipgloss.NewStyle().Foreground(theme.TextDim).Render(key+": ") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(value))
}

// wrap word-wraps text to the given width.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var out strings.Builder
	lineLen := 0
	for i, w := range words {
		wl := lipgloss.Width(w)
		if lineLen > 0 && lineLen+1+wl > width {
			out.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			out.WriteString(" ")
			lineLen++
		}
		out.WriteString(w)
		lineLen += wl
	}
	return out.String()
}
