package pages

// Item is a titled blurb used by feature grids, value lists and achievements.
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

type Introduction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// Home is the content of /content/pages/home.json.
type Home struct {
	Hero         Hero          `json:"hero"`
	Introduction Introduction  `json:"introduction"`
	Features     []Item        `json:"features"`
	Testimonials []Testimonial `json:"testimonials"`
}

func DefaultHome() Home {
	return Home{
		Hero: Hero{
			Title:    "Welcome to SENGANI GIRLS SCHOOL",
			Subtitle: "Empowering young women through quality education and holistic development",
			CTA:      "Learn More",
		},
		Introduction: Introduction{
			Title:       "Nurturing Excellence",
			Description: "Sengani Girls School is dedicated to providing a supportive and enriching environment where young women can develop their academic abilities, character, and leadership skills.",
		},
		Features: []Item{
			{Icon: "Star", Title: "Academic Excellence", Description: "Comprehensive curriculum designed to foster critical thinking and academic achievement."},
			{Icon: "BookOpen", Title: "Holistic Education", Description: "Balanced approach combining academics with character development and life skills."},
			{Icon: "Users", Title: "Supportive Community", Description: "Nurturing environment where every student feels valued and supported."},
			{Icon: "Award", Title: "Leadership Development", Description: "Opportunities to develop leadership skills and confidence for future success."},
		},
		Testimonials: []Testimonial{
			{
				Quote:  "Sengani Girls School provided me with the foundation I needed to succeed in life. The teachers are dedicated and the environment is truly nurturing.",
				Author: "Fyza Wangari",
				Role:   "Alumni, Class of 2024",
			},
			{
				Quote:  "My daughter has grown tremendously since joining this school. The focus on both academics and character development is exceptional.",
				Author: "Mr. Nelson Mutuku",
				Role:   "Parent",
			},
		},
	}
}
