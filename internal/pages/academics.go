package pages

type Subject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Grades      string `json:"grades"`
}

type Curriculum struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Subjects    []Subject `json:"subjects"`
}

// Academics is the content of /content/pages/academics.json.
type Academics struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Curriculum   Curriculum `json:"curriculum"`
	Programs     []Item     `json:"programs"`
	Achievements []Item     `json:"achievements"`
}

func DefaultAcademics() Academics {
	return Academics{
		Title:       "Academics",
		Description: "Comprehensive education programs designed to nurture academic excellence and critical thinking.",
		Curriculum: Curriculum{
			Title:       "Our Curriculum",
			Description: "Our comprehensive curriculum is designed to provide students with a strong foundation in core subjects while encouraging critical thinking, creativity, and practical application of knowledge.",
			Subjects: []Subject{
				{Name: "Mathematics", Description: "Advanced mathematical concepts and problem-solving skills", Grades: "6-12"},
				{Name: "Science", Description: "Physics, Chemistry, and Biology with hands-on laboratory experience", Grades: "6-12"},
				{Name: "Languages", Description: "English and Kiswahili language and literature", Grades: "6-12"},
				{Name: "Social Studies", Description: "History, Geography, Civics, and Economics", Grades: "6-12"},
				{Name: "Computer Science", Description: "Programming, digital literacy, and technology skills", Grades: "8-12"},
				{Name: "Arts & Crafts", Description: "Creative expression through various art forms", Grades: "6-12"},
			},
		},
		Programs: []Item{
			{Title: "Science Laboratory", Description: "Well-equipped laboratories for Physics, Chemistry, and Biology practical sessions."},
			{Title: "Computer Lab", Description: "Modern computer laboratory with current software and internet connectivity."},
			{Title: "Library", Description: "Extensive collection of books, journals, and digital resources for research and reading."},
		},
		Achievements: []Item{
			{Title: "Examination Results", Description: "Consistently achieving 95%+ pass rates in national examinations"},
			{Title: "Academic Awards", Description: "Multiple students receiving regional recognition for academic excellence"},
		},
	}
}
