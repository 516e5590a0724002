package pages

type Photo struct {
	Title    string `json:"title"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

type Video struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Video     string `json:"video"`
	Category  string `json:"category"`
	Date      string `json:"date"`
}

// Gallery is the content of /content/pages/gallery.json. Media come from the
// /content/gallery/photos/ and /content/gallery/videos/ collections.
type Gallery struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

func DefaultGallery() Gallery {
	return Gallery{
		Title:       "Gallery",
		Description: "Explore our vibrant school life through photos and videos.",
		Categories:  []string{"Events", "Academic", "Sports", "Campus", "Cultural"},
	}
}

func DefaultPhotos() []Photo {
	return []Photo{
		{Title: "Annual Day 2024", Image: "/images/gallery/annual-day-2024.jpg", Category: "Events", Date: "2024-12-10"},
		{Title: "Science Fair", Image: "/images/gallery/science-fair.jpg", Category: "Academic", Date: "2024-12-08"},
		{Title: "Sports Day", Image: "/images/gallery/sports-day.jpg", Category: "Sports", Date: "2024-11-15"},
	}
}

func DefaultVideos() []Video {
	return []Video{
		{
			Title:     "School Tour 2024",
			Thumbnail: "/images/gallery/school-tour-thumb.jpg",
			Video:     "/videos/school-tour-2024.mp4",
			Category:  "Campus",
			Date:      "2024-12-01",
		},
	}
}
