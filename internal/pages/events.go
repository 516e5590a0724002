package pages

type Event struct {
	Title            string `json:"title"`
	Date             string `json:"date"`
	EndDate          string `json:"end_date,omitempty"`
	Location         string `json:"location"`
	Description      string `json:"description"`
	Body             string `json:"body,omitempty"`
	Category         string `json:"category"`
	Image            string `json:"image,omitempty"`
	Registration     bool   `json:"registration"`
	RegistrationLink string `json:"registration_link,omitempty"`
	Contact          string `json:"contact,omitempty"`
	ContactPhone     string `json:"contact_phone,omitempty"`
}

// Events is the content of /content/pages/events.json. Entries come from the
// /content/events/ collection.
type Events struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

// maxHighlighted bounds the upcoming events shown above the full list.
const maxHighlighted = 2

func DefaultEvents() Events {
	return Events{
		Title:       "School Events",
		Description: "Stay informed about upcoming school events, activities, and important dates.",
		Categories:  []string{"Academic", "Cultural", "Sports", "Social", "Other"},
	}
}

func DefaultEventList() []Event {
	return []Event{
		{
			Title: "Winter Break", Date: "2024-12-20T00:00:00", EndDate: "2025-01-05T00:00:00",
			Location:    "School Campus",
			Description: "Winter break for all students and staff. Classes will resume on January 6th, 2025.",
			Body:        "The school will be closed for winter break. We wish all our students and families a wonderful holiday season. Classes will resume on January 6th, 2025 with the new semester.",
			Category:    "Academic", Image: "/images/uploads/winter-break.jpg",
			Contact: "School Office", ContactPhone: "+254 723 324518",
		},
		{
			Title: "Science Exhibition", Date: "2025-01-15T09:00:00", EndDate: "2025-01-15T16:00:00",
			Location:    "School Auditorium",
			Description: "Annual science exhibition showcasing student projects and innovations.",
			Body:        "Students from all grades will present their science projects. Parents and guests are invited to witness the creativity and scientific thinking of our students. Awards will be given for outstanding projects.",
			Category:    "Academic", Image: "/images/uploads/science-exhibition.jpg",
			Registration: true, RegistrationLink: "/contact",
			Contact: "Science Department", ContactPhone: "+254 723 324518",
		},
		{
			Title: "Inter-House Sports Competition", Date: "2025-02-10T08:00:00", EndDate: "2025-02-12T17:00:00",
			Location:    "School Sports Ground",
			Description: "Three-day inter-house sports competition featuring various athletic events.",
			Body:        "The annual inter-house sports competition will feature track and field events, team sports, and individual competitions. Students will compete for their respective houses in a spirit of healthy competition.",
			Category:    "Sports", Image: "/images/uploads/sports-competition.jpg",
			Registration: true, RegistrationLink: "/contact",
			Contact: "Sports Department", ContactPhone: "+254 723 324518",
		},
		{
			Title: "Parent-Teacher Meeting", Date: "2025-02-20T10:00:00", EndDate: "2025-02-20T16:00:00",
			Location:    "Individual Classrooms",
			Description: "Quarterly parent-teacher meeting to discuss student progress.",
			Body:        "Parents are invited to meet with teachers to discuss their child's academic progress, behavior, and development. Individual time slots will be allocated for meaningful discussions.",
			Category:    "Academic",
			Registration: true, RegistrationLink: "/contact",
			Contact: "Academic Office", ContactPhone: "+254 723 324518",
		},
	}
}
