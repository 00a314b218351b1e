package quiz

// QuestionType selects the widget and the scoring rule for a question.
type QuestionType int

const (
	// TypeChoice is a single-select question. Objective questions carry an
	// answer key; subjective ones pass the chosen value through to scoring.
	TypeChoice QuestionType = iota
	// TypeScale is a 1-5 agreement scale.
	TypeScale
	// TypeMulti is a multi-select question (ordered by selection).
	TypeMulti
	// TypeText is a free-text question.
	TypeText
)

// Option is one selectable answer.
type Option struct {
	Value string
	Label string
}

// Question is one item in a module's bank.
type Question struct {
	ID   string
	Type QuestionType
	Text string

	// Trait groups scale answers for averaging and names pass-through
	// values in the scored profile (e.g. "selfAwareness", "workStyle").
	Trait string

	Options []Option

	// Answer is the correct option value for objective (IQ) questions.
	Answer string

	// MaxSelect caps selections for TypeMulti questions (0 = no cap).
	MaxSelect int
}

// Module is one named section of the questionnaire.
type Module struct {
	ID        string
	Name      string
	Icon      string
	Questions []Question
}

// QuestionCount returns the number of questions in the module.
func (m Module) QuestionCount() int { return len(m.Questions) }

// Module ids, in traversal order.
const (
	ModulePersonality = "personality"
	ModuleBehavior    = "behavior"
	ModuleIQ          = "iq"
	ModuleEQ          = "eq"
	ModuleIkigai      = "ikigai"
	ModuleCareer      = "career"
	ModulePersonal    = "personal"
)

// Modules returns the static module sequence. The order is fixed at build
// time and defines the traversal order of the session state machine.
func Modules() []Module { return modules }

// ModuleByID returns the module with the given id, or false.
func ModuleByID(id string) (Module, bool) {
	for _, m := range modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// ModuleIndex returns the position of id in the sequence, or -1.
func ModuleIndex(id string) int {
	for i, m := range modules {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// FirstModuleID returns the id of the first module in the sequence.
func FirstModuleID() string { return modules[0].ID }

// TotalQuestions returns the question count across all modules.
func TotalQuestions() int {
	n := 0
	for _, m := range modules {
		n += len(m.Questions)
	}
	return n
}

// scaleOptions are the shared 1-5 agreement labels.
var scaleOptions = []Option{
	{Value: "1", Label: "Hoàn toàn không đúng"},
	{Value: "2", Label: "Không đúng lắm"},
	{Value: "3", Label: "Bình thường"},
	{Value: "4", Label: "Khá đúng"},
	{Value: "5", Label: "Hoàn toàn đúng"},
}

func scaleQ(id, trait, text string) Question {
	return Question{ID: id, Type: TypeScale, Trait: trait, Text: text, Options: scaleOptions}
}

var modules = []Module{
	{
		ID: ModulePersonality, Name: "Tính Cách", Icon: "🎭",
		Questions: []Question{
			scaleQ("pe_001", "openness", "Tôi thích thử những điều mới mẻ và khác biệt"),
			scaleQ("pe_002", "creativity", "Tôi thường nghĩ ra ý tưởng mà ít ai nghĩ tới"),
			scaleQ("pe_003", "social", "Tôi thấy tràn đầy năng lượng khi ở giữa đám đông"),
			scaleQ("pe_004", "discipline", "Tôi lập kế hoạch trước khi bắt đầu việc gì đó"),
			scaleQ("pe_005", "openness", "Tôi sẵn sàng thay đổi quan điểm khi có thông tin mới"),
			scaleQ("pe_006", "social", "Tôi dễ dàng bắt chuyện với người lạ"),
			scaleQ("pe_007", "discipline", "Tôi hoàn thành việc đúng hạn kể cả khi không ai nhắc"),
			scaleQ("pe_008", "creativity", "Tôi thích tự làm ra thứ gì đó hơn là dùng đồ có sẵn"),
		},
	},
	{
		ID: ModuleBehavior, Name: "Hành Vi", Icon: "🎯",
		Questions: []Question{
			{ID: "bh_001", Type: TypeChoice, Trait: "decisionStyle", Text: "Khi phải quyết định nhanh, bạn thường...", Options: []Option{
				{Value: "logic", Label: "Phân tích ưu nhược điểm"},
				{Value: "intuition", Label: "Làm theo cảm giác"},
				{Value: "consult", Label: "Hỏi ý kiến người khác"},
			}},
			{ID: "bh_002", Type: TypeChoice, Trait: "learningStyle", Text: "Bạn học hiệu quả nhất bằng cách nào?", Options: []Option{
				{Value: "reading", Label: "Đọc tài liệu, ghi chép"},
				{Value: "visual", Label: "Xem video, hình ảnh"},
				{Value: "handson", Label: "Bắt tay vào làm thử"},
			}},
			{ID: "bh_003", Type: TypeChoice, Trait: "teamRole", Text: "Trong nhóm, bạn thường là người...", Options: []Option{
				{Value: "leader", Label: "Dẫn dắt và phân công"},
				{Value: "supporter", Label: "Hỗ trợ và kết nối mọi người"},
				{Value: "idea", Label: "Đưa ra ý tưởng mới"},
			}},
			{ID: "bh_004", Type: TypeChoice, Trait: "pressureResponse", Text: "Khi deadline dí sát, bạn...", Options: []Option{
				{Value: "calm", Label: "Bình tĩnh làm từng việc một"},
				{Value: "push", Label: "Tăng tốc, chạy nước rút"},
				{Value: "pause", Label: "Dừng lại sắp xếp rồi mới làm tiếp"},
			}},
			{ID: "bh_005", Type: TypeChoice, Trait: "planning", Text: "Trước một chuyến đi xa, bạn...", Options: []Option{
				{Value: "detailed", Label: "Lên lịch trình chi tiết từng ngày"},
				{Value: "outline", Label: "Chỉ định hướng những điểm chính"},
				{Value: "improvise", Label: "Tới đâu tính tới đó"},
			}},
			{ID: "bh_006", Type: TypeChoice, Trait: "riskAppetite", Text: "Với cơ hội mới nhưng rủi ro, bạn...", Options: []Option{
				{Value: "safe", Label: "Chọn phương án an toàn"},
				{Value: "calculated", Label: "Cân nhắc kỹ rồi thử"},
				{Value: "bold", Label: "Thử ngay, sai thì sửa"},
			}},
		},
	},
	{
		ID: ModuleIQ, Name: "IQ", Icon: "🧠",
		Questions: []Question{
			{ID: "iq_001", Type: TypeChoice, Text: "Tìm số tiếp theo trong dãy: 2, 4, 8, 16, 32, ?", Answer: "64", Options: []Option{
				{Value: "48", Label: "48"}, {Value: "64", Label: "64"}, {Value: "52", Label: "52"}, {Value: "128", Label: "128"},
			}},
			{ID: "iq_002", Type: TypeChoice, Text: "Số nào không cùng nhóm? 3, 6, 9, 12, 14, 18", Answer: "14", Options: []Option{
				{Value: "3", Label: "3"}, {Value: "14", Label: "14"}, {Value: "12", Label: "12"}, {Value: "18", Label: "18"},
			}},
			{ID: "iq_003", Type: TypeChoice, Text: `Nếu A = 1, B = 2, C = 3... thì "CAT" = ?`, Answer: "24", Options: []Option{
				{Value: "24", Label: "24"}, {Value: "25", Label: "25"}, {Value: "23", Label: "23"}, {Value: "26", Label: "26"},
			}},
			{ID: "iq_004", Type: TypeChoice, Text: "3 con mèo bắt 3 con chuột trong 3 phút. 100 con mèo bắt 100 con chuột mất bao lâu?", Answer: "3", Options: []Option{
				{Value: "3", Label: "3 phút"}, {Value: "100", Label: "100 phút"}, {Value: "33", Label: "33 phút"}, {Value: "300", Label: "300 phút"},
			}},
			{ID: "iq_005", Type: TypeChoice, Text: "△ □ ○ △ □ ? Hình nào tiếp theo?", Answer: "c", Options: []Option{
				{Value: "a", Label: "△"}, {Value: "b", Label: "□"}, {Value: "c", Label: "○"}, {Value: "d", Label: "◇"},
			}},
			{ID: "iq_006", Type: TypeChoice, Text: "25% của 80 = ?", Answer: "20", Options: []Option{
				{Value: "15", Label: "15"}, {Value: "20", Label: "20"}, {Value: "25", Label: "25"}, {Value: "30", Label: "30"},
			}},
			{ID: "iq_007", Type: TypeChoice, Text: "7 × 8 + 12 = ?", Answer: "68", Options: []Option{
				{Value: "68", Label: "68"}, {Value: "62", Label: "62"}, {Value: "56", Label: "56"}, {Value: "70", Label: "70"},
			}},
			{ID: "iq_008", Type: TypeChoice, Text: "LISTEN có cùng chữ cái với từ nào?", Answer: "SILENT", Options: []Option{
				{Value: "SILENT", Label: "SILENT"}, {Value: "LISTEN", Label: "LISTEN"}, {Value: "TALKING", Label: "TALKING"}, {Value: "SOUND", Label: "SOUND"},
			}},
			{ID: "iq_009", Type: TypeChoice, Text: "Nếu gấp hình vuông theo đường chéo 2 lần, ta được hình gì?", Answer: "triangle", Options: []Option{
				{Value: "triangle", Label: "△ Tam giác"}, {Value: "rectangle", Label: "▭ Chữ nhật"}, {Value: "circle", Label: "○ Tròn"}, {Value: "square_small", Label: "□ Vuông nhỏ"},
			}},
			{ID: "iq_010", Type: TypeChoice, Text: "Tìm số tiếp theo: 1, 1, 2, 3, 5, 8, ?", Answer: "13", Options: []Option{
				{Value: "11", Label: "11"}, {Value: "12", Label: "12"}, {Value: "13", Label: "13"}, {Value: "16", Label: "16"},
			}},
			{ID: "iq_011", Type: TypeChoice, Text: "Từ nào không cùng nhóm?", Answer: "ghe", Options: []Option{
				{Value: "tao", Label: "Táo"}, {Value: "cam", Label: "Cam"}, {Value: "ghe", Label: "Ghế"}, {Value: "xoai", Label: "Xoài"},
			}},
			{ID: "iq_012", Type: TypeChoice, Text: "Kim giờ và kim phút tạo góc bao nhiêu độ lúc 3:00?", Answer: "90", Options: []Option{
				{Value: "60", Label: "60°"}, {Value: "90", Label: "90°"}, {Value: "120", Label: "120°"}, {Value: "180", Label: "180°"},
			}},
		},
	},
	{
		ID: ModuleEQ, Name: "EQ", Icon: "💝",
		Questions: []Question{
			scaleQ("eq_001", "selfAwareness", "Tôi nhận ra cảm xúc của mình ngay khi nó xuất hiện"),
			scaleQ("eq_002", "selfAwareness", "Tôi hiểu vì sao mình phản ứng như vậy trong từng tình huống"),
			scaleQ("eq_003", "emotionalControl", "Tôi giữ được bình tĩnh khi bị chỉ trích"),
			scaleQ("eq_004", "emotionalControl", "Tôi hiếm khi nói điều khiến mình hối hận lúc nóng giận"),
			scaleQ("eq_005", "empathy", "Tôi dễ nhận ra khi bạn bè đang buồn dù họ không nói"),
			scaleQ("eq_006", "empathy", "Mọi người thường tìm tôi để tâm sự"),
			{ID: "eq_007", Type: TypeChoice, Trait: "conflictStyle", Text: "Khi mâu thuẫn với bạn bè, bạn thường...", Options: []Option{
				{Value: "process", Label: "Ngồi lại nói chuyện rõ ràng"},
				{Value: "avoid", Label: "Tránh đi, để thời gian giải quyết"},
				{Value: "confront", Label: "Nói thẳng ngay lập tức"},
			}},
		},
	},
	{
		ID: ModuleIkigai, Name: "Ikigai", Icon: "🌟",
		Questions: []Question{
			{ID: "ik_001", Type: TypeMulti, Trait: "careerInterests", MaxSelect: 3, Text: "Lĩnh vực nào khiến bạn hứng thú nhất? (chọn tối đa 3)", Options: []Option{
				{Value: "tech", Label: "Công nghệ"}, {Value: "creative", Label: "Sáng tạo, thiết kế"},
				{Value: "media", Label: "Truyền thông, nội dung"}, {Value: "business", Label: "Kinh doanh"},
				{Value: "science", Label: "Khoa học, nghiên cứu"}, {Value: "education", Label: "Giáo dục"},
				{Value: "health", Label: "Sức khỏe, y tế"}, {Value: "social", Label: "Hoạt động xã hội"},
			}},
			{ID: "ik_002", Type: TypeMulti, Trait: "coreValues", MaxSelect: 3, Text: "Điều gì quan trọng nhất với bạn trong công việc? (chọn tối đa 3)", Options: []Option{
				{Value: "growth", Label: "Phát triển bản thân"}, {Value: "innovation", Label: "Đổi mới, sáng tạo"},
				{Value: "autonomy", Label: "Tự do, tự chủ"}, {Value: "stability", Label: "Ổn định"},
				{Value: "impact", Label: "Tạo ảnh hưởng tích cực"}, {Value: "wealth", Label: "Thu nhập cao"},
			}},
			scaleQ("ik_003", "passionVsMoney", "Với tôi, đam mê quan trọng hơn tiền lương"),
			{ID: "ik_004", Type: TypeChoice, Trait: "worldNeed", Text: "Bạn muốn góp phần giải quyết vấn đề nào của xã hội?", Options: []Option{
				{Value: "environment", Label: "Môi trường"}, {Value: "technology", Label: "Khoảng cách công nghệ"},
				{Value: "education", Label: "Giáo dục"}, {Value: "health", Label: "Sức khỏe cộng đồng"},
			}},
			{ID: "ik_005", Type: TypeChoice, Trait: "naturalTalent", Text: "Bạn bè thường khen bạn giỏi về...", Options: []Option{
				{Value: "analysis", Label: "Phân tích, giải quyết vấn đề"}, {Value: "creation", Label: "Sáng tạo, thẩm mỹ"},
				{Value: "communication", Label: "Giao tiếp, thuyết phục"}, {Value: "organization", Label: "Tổ chức, sắp xếp"},
			}},
		},
	},
	{
		ID: ModuleCareer, Name: "Nghề Nghiệp", Icon: "💼",
		Questions: []Question{
			{ID: "ca_001", Type: TypeChoice, Trait: "workStyle", Text: "Bạn thích làm việc ở đâu?", Options: []Option{
				{Value: "remote", Label: "Từ xa, ở bất cứ đâu"}, {Value: "office", Label: "Văn phòng cố định"}, {Value: "hybrid", Label: "Kết hợp cả hai"},
			}},
			{ID: "ca_002", Type: TypeChoice, Trait: "workEnvironment", Text: "Môi trường nào hợp với bạn?", Options: []Option{
				{Value: "startup", Label: "Startup năng động"}, {Value: "corporate", Label: "Tập đoàn lớn, bài bản"},
				{Value: "freelance", Label: "Tự do, làm cho chính mình"}, {Value: "government", Label: "Nhà nước, ổn định"},
			}},
			{ID: "ca_003", Type: TypeMulti, Trait: "industries", MaxSelect: 3, Text: "Ngành nào bạn từng nghĩ tới? (chọn tối đa 3)", Options: []Option{
				{Value: "it", Label: "IT, phần mềm"}, {Value: "design", Label: "Thiết kế"},
				{Value: "marketing", Label: "Marketing"}, {Value: "finance", Label: "Tài chính"},
				{Value: "engineering", Label: "Kỹ thuật"}, {Value: "arts", Label: "Nghệ thuật"},
			}},
			scaleQ("ca_004", "salaryPriority", "Mức lương là yếu tố quyết định khi tôi chọn việc"),
			{ID: "ca_005", Type: TypeChoice, Trait: "teamSize", Text: "Bạn làm việc tốt nhất khi...", Options: []Option{
				{Value: "solo", Label: "Làm một mình"}, {Value: "small", Label: "Nhóm nhỏ 3-5 người"}, {Value: "large", Label: "Đội lớn, nhiều bộ phận"},
			}},
		},
	},
	{
		ID: ModulePersonal, Name: "Cá Nhân", Icon: "👤",
		Questions: []Question{
			{ID: "ps_001", Type: TypeText, Trait: "name", Text: "Tên của bạn là gì?"},
			{ID: "ps_002", Type: TypeText, Trait: "birthDate", Text: "Ngày sinh của bạn? (dd/mm/yyyy)"},
			{ID: "ps_003", Type: TypeChoice, Trait: "grade", Text: "Bạn đang học...", Options: []Option{
				{Value: "grade10", Label: "Lớp 10"}, {Value: "grade11", Label: "Lớp 11"},
				{Value: "grade12", Label: "Lớp 12"}, {Value: "university", Label: "Đại học / khác"},
			}},
			{ID: "ps_004", Type: TypeText, Trait: "favoriteSubject", Text: "Môn học bạn thích nhất?"},
			{ID: "ps_005", Type: TypeText, Trait: "hobby", Text: "Bạn thường làm gì lúc rảnh?"},
			{ID: "ps_006", Type: TypeText, Trait: "dream", Text: "Nếu không phải lo về tiền, bạn sẽ làm gì?"},
		},
	},
}
