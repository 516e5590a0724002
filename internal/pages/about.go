package pages

type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// About is the content of /content/pages/about.json.
type About struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	History      Section `json:"history"`
	Mission      Section `json:"mission"`
	Vision       Section `json:"vision"`
	Values       []Item  `json:"values"`
	Achievements []Item  `json:"achievements"`
}

func DefaultAbout() About {
	return About{
		Title:       "About Sengani Girls School",
		Description: "Learn about our history, mission, and commitment to excellence in education.",
		History: Section{
			Title:   "Our History",
			Content: "Established in 1985, Sengani Girls School has been a beacon of educational excellence for nearly four decades. Founded with the vision of empowering young women through quality education, our school has grown from a small institution to one of the most respected educational establishments in the region.",
		},
		Mission: Section{
			Title:   "Our Mission",
			Content: "To provide comprehensive education that nurtures academic excellence, character development, and leadership skills, preparing young women to become confident, capable, and compassionate leaders of tomorrow.",
		},
		Vision: Section{
			Title:   "Our Vision",
			Content: "To be the premier educational institution that empowers young women to achieve their full potential and make meaningful contributions to society through knowledge, values, and service.",
		},
		Values: []Item{
			{Title: "Excellence", Description: "We strive for the highest standards in all aspects of education and personal development."},
			{Title: "Integrity", Description: "We uphold honesty, transparency, and ethical behavior in all our interactions."},
			{Title: "Respect", Description: "We value diversity and treat every individual with dignity and respect."},
			{Title: "Innovation", Description: "We embrace new ideas and methods to enhance learning and growth."},
		},
		Achievements: []Item{
			{Title: "Academic Excellence", Description: "Consistently achieving 95%+ pass rates in national examinations"},
			{Title: "Regional Recognition", Description: "Recognized as one of the top schools in the county"},
			{Title: "Alumni Success", Description: "Our graduates excel in various fields including medicine, engineering, and public service"},
		},
	}
}
