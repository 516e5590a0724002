package pages

// StudentLife is the content of /content/pages/student-life.json.
type StudentLife struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Activities  []Item `json:"activities"`
}

func DefaultStudentLife() StudentLife {
	return StudentLife{
		Title:       "Student Life",
		Description: "Experience a vibrant campus life filled with opportunities for growth, friendship, and discovery.",
		Activities: []Item{
			{Icon: "Music", Title: "Cultural Programs", Description: "Dance, music, drama, and art competitions throughout the year"},
			{Icon: "Trophy", Title: "Sports & Athletics", Description: "Various sports activities and inter-school competitions"},
			{Icon: "Users", Title: "Clubs & Societies", Description: "Science club, literary society, environmental club, and more"},
			{Icon: "Heart", Title: "Community Service", Description: "Social service activities and community outreach programs"},
			{Icon: "Palette", Title: "Art & Craft", Description: "Creative workshops and artistic expression opportunities"},
			{Icon: "Camera", Title: "Photography Club", Description: "Capture memories and develop photography skills"},
		},
	}
}
