package report

import (
	"fmt"
	"strings"

	"pathx/internal/quiz"
	"pathx/internal/scoring"
)

// traitLabels localizes trait keys for the prompt. Traits missing here fall
// back to their raw key, which the model still understands.
var traitLabels = map[string]string{
	"openness":         "Cởi mở với cái mới",
	"creativity":       "Sáng tạo",
	"social":           "Hướng ngoại",
	"discipline":       "Kỷ luật",
	"selfAwareness":    "Tự nhận thức",
	"emotionalControl": "Kiểm soát cảm xúc",
	"empathy":          "Đồng cảm",
	"conflictStyle":    "Cách xử lý mâu thuẫn",
	"decisionStyle":    "Cách ra quyết định",
	"learningStyle":    "Cách học",
	"teamRole":         "Vai trò trong nhóm",
	"pressureResponse": "Phản ứng dưới áp lực",
	"planning":         "Cách lập kế hoạch",
	"riskAppetite":     "Mức chấp nhận rủi ro",
	"careerInterests":  "Lĩnh vực yêu thích",
	"coreValues":       "Giá trị cốt lõi",
	"passionVsMoney":   "Đam mê so với tiền lương",
	"worldNeed":        "Vấn đề xã hội muốn giải quyết",
	"naturalTalent":    "Điểm mạnh tự nhiên",
	"workStyle":        "Hình thức làm việc",
	"workEnvironment":  "Môi trường làm việc",
	"industries":       "Ngành quan tâm",
	"salaryPriority":   "Ưu tiên mức lương",
	"teamSize":         "Quy mô nhóm phù hợp",
	"name":             "Tên",
	"birthDate":        "Ngày sinh",
	"grade":            "Lớp",
	"favoriteSubject":  "Môn học yêu thích",
	"hobby":            "Sở thích",
	"dream":            "Ước mơ",
}

// BuildPrompt renders the full generation prompt from a scored profile. The
// walk follows the static question bank, so the same profile always yields
// byte-identical output.
func BuildPrompt(profile scoring.Profile) string {
	var b strings.Builder

	b.WriteString("Bạn là chuyên gia hướng nghiệp cho học sinh Gen Z Việt Nam. ")
	b.WriteString("Dựa trên kết quả trắc nghiệm dưới đây, hãy viết một báo cáo hướng nghiệp ")
	b.WriteString("cá nhân hóa, giọng văn trẻ trung, tích cực, bằng tiếng Việt.\n\n")

	b.WriteString("## KẾT QUẢ TRẮC NGHIỆM\n\n")

	for _, mod := range quiz.Modules() {
		section := moduleSection(profile, mod)
		if section == "" {
			continue
		}
		fmt.Fprintf(&b, "### %s\n%s\n", mod.Name, section)
	}

	b.WriteString("\n## YÊU CẦU ĐẦU RA\n")
	b.WriteString("Trả về DUY NHẤT một object JSON (không markdown, không giải thích) với đúng các khóa sau:\n")
	b.WriteString("- \"userResults\": object tóm tắt điểm số (iqScore, iqOutOf, iqLevel, eqScores, eqLevel, careerInterests, workStyle, passionVsMoney, workEnvironment, coreValues)\n")
	b.WriteString("- \"personality\": object (title, emoji, summary, strengths, growthAreas, funDescription)\n")
	b.WriteString("- \"objectiveAssessment\": object (iqAnalysis, eqAnalysis, careerFit, overallProfile)\n")
	b.WriteString("- \"careerRecommendations\": mảng 5 nghề (title, emoji, matchPercent, reason, salaryRange, demandLevel, skills), KHÔNG được rỗng\n")
	b.WriteString("- \"numerology\": object thần số học từ ngày sinh (lifePathNumber, lifePathMeaning, personalityNumber, personalityMeaning, careerAlignment)\n")
	b.WriteString("- \"learningRoadmap\": mảng lộ trình học cho từng nghề đề xuất (career, phases với phase/tasks/resources), KHÔNG được rỗng\n")
	b.WriteString("- \"funFacts\": mảng 5 sự thật thú vị (emoji, fact), KHÔNG được rỗng\n")

	return b.String()
}

// moduleSection renders one module's scored data as prompt lines.
func moduleSection(profile scoring.Profile, mod quiz.Module) string {
	var b strings.Builder

	if mod.ID == quiz.ModuleIQ {
		fmt.Fprintf(&b, "- Điểm IQ: %d/%d câu đúng (%d%%)\n",
			profile.IQ.Correct, profile.IQ.Total, profile.IQ.Percent())
		return b.String()
	}

	seen := make(map[string]bool)
	for _, q := range mod.Questions {
		if q.Trait == "" || seen[q.Trait] {
			continue
		}
		seen[q.Trait] = true

		label := traitLabels[q.Trait]
		if label == "" {
			label = q.Trait
		}

		if q.Type == quiz.TypeScale {
			if mean := profile.Trait(mod.ID, q.Trait); mean > 0 {
				fmt.Fprintf(&b, "- %s: %.1f/5\n", label, mean)
			}
			continue
		}

		val, ok := profile.Selection(mod.ID, q.Trait)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", label, renderValue(q, val))
	}

	return b.String()
}

// renderValue localizes an answer using the question's option labels,
// falling back to the raw value for free text or unknown options.
func renderValue(q quiz.Question, val quiz.AnswerValue) string {
	if val.Kind == quiz.KindMultiChoice {
		parts := make([]string, 0, len(val.AsChoices()))
		for _, c := range val.AsChoices() {
			parts = append(parts, optionLabel(q, c))
		}
		return strings.Join(parts, ", ")
	}
	return optionLabel(q, val.AsText())
}

func optionLabel(q quiz.Question, value string) string {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
