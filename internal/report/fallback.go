package report

import "encoding/json"

// Fallback returns the canned demo report shown when generation cannot
// complete. It carries every section a real report has so the renderer and
// validator treat it exactly like model output.
func Fallback() Report {
	return Report{
		UserResults: UserResults{
			IQScore: 3,
			IQOutOf: 5,
			IQLevel: "Khá",
			EQScores: EQScores{
				SelfAwareness:    4,
				EmotionalControl: 3,
				Empathy:          4,
				ConflictStyle:    "process",
			},
			EQLevel:         "Khá",
			CareerInterests: []string{"tech", "creative", "media"},
			WorkStyle:       "remote",
			PassionVsMoney:  4,
			WorkEnvironment: "startup",
			CoreValues:      []string{"growth", "innovation", "autonomy"},
		},
		Personality: Personality{
			Title:   "Nhà Sáng Tạo Số",
			Emoji:   "🎨",
			Summary: "Bạn là người kết hợp tuyệt vời giữa tư duy logic và sáng tạo. Bạn thích khám phá những điều mới, không ngại thử thách, và luôn có ý tưởng độc đáo.",
			Strengths: []string{
				"Tư duy sáng tạo, luôn có ý tưởng mới",
				"Khả năng thích nghi tốt với thay đổi",
				"Đồng cảm và thấu hiểu người khác",
			},
			GrowthAreas: []string{
				"Cần kiên nhẫn hơn khi gặp khó khăn",
				"Học cách quản lý thời gian tốt hơn",
				"Tập trung hoàn thành việc trước khi bắt đầu việc mới",
			},
			FunDescription: "Nếu là nhân vật anime, bạn sẽ là kiểu protagonist sáng tạo, luôn tìm ra cách giải quyết bất ngờ mà không ai nghĩ tới! 🌟",
		},
		ObjectiveAssessment: Assessment{
			IQAnalysis:     "Bạn có khả năng tư duy logic ở mức khá. Bạn xử lý các bài toán pattern và logic nhanh, nhưng đôi khi cần thêm thời gian cho những câu phức tạp. Điểm mạnh của bạn là nhận diện quy luật.",
			EQAnalysis:     "EQ của bạn ở mức tốt! Bạn có khả năng đồng cảm cao, dễ nhận ra cảm xúc người khác. Bạn thích suy nghĩ kỹ trước khi phản ứng - đây là dấu hiệu của sự trưởng thành cảm xúc.",
			CareerFit:      "Với sự kết hợp giữa công nghệ, sáng tạo và media, bạn phù hợp với các ngành ở giao điểm giữa tech và nghệ thuật. Bạn thích tự do, năng động và tạo ra giá trị.",
			OverallProfile: "Bạn là Gen Z điển hình: đa tài, yêu tự do, có ý thức xã hội. Bạn không chỉ muốn kiếm tiền mà còn muốn làm điều có ý nghĩa. Đây là mindset tuyệt vời cho thời đại AI!",
		},
		CareerRecommendations: []Career{
			{
				Title:        "UX/UI Designer",
				Emoji:        "🎨",
				MatchPercent: 92,
				Reason:       "Kết hợp hoàn hảo giữa sáng tạo và tech. Bạn được thiết kế trải nghiệm cho hàng triệu người dùng!",
				SalaryRange:  "15-40 triệu/tháng",
				DemandLevel:  "Rất cao",
				Skills:       []string{"Figma", "Design Thinking", "User Research", "Prototyping"},
			},
			{
				Title:        "Content Creator / YouTuber",
				Emoji:        "🎬",
				MatchPercent: 88,
				Reason:       "Bạn sáng tạo + thích media = combo hoàn hảo! Tự do sáng tạo nội dung theo cách của mình.",
				SalaryRange:  "10-100+ triệu/tháng",
				DemandLevel:  "Cao",
				Skills:       []string{"Video Editing", "Storytelling", "Social Media", "Branding"},
			},
			{
				Title:        "Frontend Developer",
				Emoji:        "💻",
				MatchPercent: 85,
				Reason:       "Logic + sáng tạo = code giao diện web đẹp. Lương cao, remote được, cầu lớn!",
				SalaryRange:  "15-50 triệu/tháng",
				DemandLevel:  "Rất cao",
				Skills:       []string{"React", "JavaScript", "CSS", "TypeScript"},
			},
		},
		Numerology: Numerology{
			LifePathNumber:     7,
			LifePathMeaning:    "Số 7 là con số của người tìm kiếm chân lý! Bạn có trí tuệ sâu sắc, thích phân tích và khám phá. Bạn cần thời gian riêng để suy nghĩ và sáng tạo.",
			PersonalityNumber:  3,
			PersonalityMeaning: "Số 3 đại diện cho sự sáng tạo và giao tiếp! Bạn tỏa ra năng lượng tích cực, biết cách truyền cảm hứng cho người khác.",
			CareerAlignment:    "Với số chủ đạo 7 kết hợp số tính cách 3, bạn phù hợp nhất với các nghề đòi hỏi cả tư duy sâu VÀ sáng tạo: Designer, Developer, Researcher, Content Creator.",
		},
		LearningRoadmap: []Roadmap{
			{
				Career: "UX/UI Designer",
				Phases: []RoadmapPhase{
					{
						Phase:     "Nền tảng (0-6 tháng)",
						Tasks:     []string{"Học Figma cơ bản qua YouTube/Coursera", "Tìm hiểu Design Thinking", "Redesign 3 app yêu thích"},
						Resources: []string{"Figma Official Tutorial", "Google UX Design Certificate (Coursera)", "Dribbble cho inspiration"},
					},
					{
						Phase:     "Nâng cao (6-18 tháng)",
						Tasks:     []string{"Học User Research & Usability Testing", "Xây dựng portfolio 5-7 projects", "Freelance đầu tiên"},
						Resources: []string{"UX Design Institute", "Behance portfolio", "Design community trên Discord"},
					},
					{
						Phase:     "Chuyên nghiệp (18-36 tháng)",
						Tasks:     []string{"Intern hoặc Junior Designer tại startup", "Học Design System", "Thi chứng chỉ Google UX"},
						Resources: []string{"LinkedIn Jobs", "TopCV", "Design conferences"},
					},
				},
			},
			{
				Career: "Content Creator / YouTuber",
				Phases: []RoadmapPhase{
					{
						Phase:     "Nền tảng (0-6 tháng)",
						Tasks:     []string{"Chọn niche và target audience", "Học edit video cơ bản (CapCut/Premiere)", "Đăng 20 video/content đầu tiên"},
						Resources: []string{"YouTube Creator Academy", "CapCut tutorials", "Ali Abdaal channel"},
					},
					{
						Phase:     "Nâng cao (6-18 tháng)",
						Tasks:     []string{"Xây dựng brand cá nhân", "Đạt 1000 subscribers/followers", "Monetize đầu tiên"},
						Resources: []string{"Canva cho thumbnail", "VidIQ/TubeBuddy", "Creator communities"},
					},
					{
						Phase:     "Chuyên nghiệp (18-36 tháng)",
						Tasks:     []string{"Scale lên multi-platform", "Nhận brand deals", "Xây dựng sản phẩm riêng"},
						Resources: []string{"Sponsorship platforms", "Email marketing tools", "Merchandise platforms"},
					},
				},
			},
			{
				Career: "Frontend Developer",
				Phases: []RoadmapPhase{
					{
						Phase:     "Nền tảng (0-6 tháng)",
						Tasks:     []string{"Học HTML, CSS, JavaScript cơ bản", "Làm 5 mini projects", "Học Git & GitHub"},
						Resources: []string{"freeCodeCamp", "The Odin Project", "JavaScript.info"},
					},
					{
						Phase:     "Nâng cao (6-18 tháng)",
						Tasks:     []string{"Học React/Vue framework", "Build 3 full projects có deploy", "Học TypeScript"},
						Resources: []string{"React Official Docs", "Vercel/Netlify deploy", "GitHub open source projects"},
					},
					{
						Phase:     "Chuyên nghiệp (18-36 tháng)",
						Tasks:     []string{"Intern tại tech company", "Học system design cơ bản", "Chuẩn bị phỏng vấn tech"},
						Resources: []string{"LeetCode (Easy-Medium)", "TopDev/ITviec", "Tech interview handbook"},
					},
				},
			},
		},
		FunFacts: []FunFact{
			{Emoji: "🔮", Fact: "Số 7 được gọi là \"con số thần bí\" - những người số 7 thường có trực giác rất mạnh và hay đúng khi \"cảm thấy\" điều gì đó!"},
			{Emoji: "🧠", Fact: "Người có EQ cao thường thành công hơn 58% so với người chỉ có IQ cao. Bạn đang đi đúng hướng!"},
			{Emoji: "🌟", Fact: "Theo thần số học, năm nay là năm \"sáng tạo\" của bạn - thời điểm tuyệt vời để bắt đầu những dự án mới!"},
			{Emoji: "🎯", Fact: "73% Gen Z tin rằng đam mê quan trọng hơn lương cao khi chọn nghề. Bạn không đơn độc trong suy nghĩ này!"},
		},
	}
}

// FallbackJSON returns the demo report as the raw JSON a generation would
// have produced.
func FallbackJSON() json.RawMessage {
	raw, err := json.Marshal(Fallback())
	if err != nil {
		// Fallback marshals static data; failure here is a programming error.
		panic(err)
	}
	return raw
}
