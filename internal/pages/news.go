package pages

// Article is one news item. Body is markdown.
type Article struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	Summary  string `json:"summary,omitempty"`
	Body     string `json:"body"`
	Category string `json:"category"`
	Featured bool   `json:"featured"`
	Image    string `json:"image,omitempty"`
}

// News is the content of /content/pages/news.json. When Articles names files,
// those are loaded from /content/news/; otherwise the collection index is used.
type News struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Articles    []string `json:"articles,omitempty"`
}

// maxFeatured bounds the highlighted articles at the top of the news page.
const maxFeatured = 2

func DefaultNews() News {
	return News{
		Title:       "Latest News",
		Description: "Stay updated with the latest news and announcements from Sengani Girls School.",
		Categories:  []string{"School News", "Academic Updates", "Events", "Achievements", "Announcements"},
	}
}

func DefaultArticles() []Article {
	return []Article{
		{
			Title: "Annual Day Celebration 2024", Date: "2024-12-10T10:00:00", Author: "Sengani Girls School",
			Summary:  "Our annual day celebration was a grand success with outstanding performances by students from all grades. The event showcased the diverse talents of our students.",
			Body:     "The annual day celebration showcased the talents of our students through various cultural programs, academic achievements, and sports accomplishments. Parents and guests were delighted by the performances. The event featured dance performances, musical presentations, drama, and recognition of academic achievers.",
			Category: "Events", Featured: true, Image: "/images/uploads/annual-day.jpg",
		},
		{
			Title: "Science Fair Winners Announced", Date: "2024-12-08T14:00:00", Author: "Science Department",
			Summary:  "Congratulations to all participants and winners of our inter-house science fair. The projects demonstrated exceptional creativity and scientific understanding.",
			Body:     "The science fair demonstrated innovative projects by students across all grades. The winning projects will represent our school at the district level competition. Topics ranged from environmental science to robotics and renewable energy.",
			Category: "Academic Updates", Image: "/images/uploads/science-fair.jpg",
		},
		{
			Title: "New Library Books Added", Date: "2024-12-05T09:00:00", Author: "Library Department",
			Summary:  "Over 200 new books have been added to our school library collection, enriching our students' reading resources.",
			Body:     "The library has been enriched with new fiction, non-fiction, and reference books to support student learning and reading habits. The collection includes latest publications in science, literature, and general knowledge.",
			Category: "School News",
		},
		{
			Title: "Sports Day Achievements", Date: "2024-11-28T16:00:00", Author: "Sports Department",
			Summary:  "Our students excelled in the annual sports day, breaking several school records and demonstrating exceptional athletic abilities.",
			Body:     "The annual sports day was filled with excitement as students participated in various track and field events. Several school records were broken, and the spirit of healthy competition was evident throughout the day.",
			Category: "Achievements", Featured: true, Image: "/images/uploads/sports-day.jpg",
		},
		{
			Title: "Parent-Teacher Meeting Schedule", Date: "2024-11-25T10:00:00", Author: "Academic Office",
			Summary:  "The next parent-teacher meeting is scheduled for December 15th, 2024. All parents are requested to attend.",
			Body:     "The parent-teacher meeting will provide an opportunity for parents to discuss their child's academic progress and development with teachers. Individual time slots will be allocated to ensure meaningful discussions.",
			Category: "Announcements",
		},
	}
}
