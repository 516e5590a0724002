package pages

// Page describes one routed page: where it lives and what it reads.
type Page struct {
	Name        string   `json:"name"`
	Route       string   `json:"route"`
	Title       string   `json:"title"`
	Document    string   `json:"document"`
	Collections []string `json:"collections,omitempty"`
}

const (
	contactDocument = "/content/pages/contact.json"

	facultyCollection   = "/content/faculty/"
	newsCollection      = "/content/news/"
	eventsCollection    = "/content/events/"
	photosCollection    = "/content/gallery/photos/"
	videosCollection    = "/content/gallery/videos/"
	downloadsCollection = "/content/downloads/"
)

var registry = []Page{
	{Name: "home", Route: "/", Title: "Home", Document: "/content/pages/home.json"},
	{Name: "about", Route: "/about", Title: "About", Document: "/content/pages/about.json"},
	{Name: "academics", Route: "/academics", Title: "Academics", Document: "/content/pages/academics.json"},
	{Name: "student-life", Route: "/student-life", Title: "Student Life", Document: "/content/pages/student-life.json"},
	{Name: "faculty", Route: "/faculty", Title: "Faculty", Document: "/content/pages/faculty.json",
		Collections: []string{facultyCollection}},
	{Name: "admissions", Route: "/admissions", Title: "Admissions", Document: "/content/pages/admissions.json"},
	{Name: "news", Route: "/news", Title: "News", Document: "/content/pages/news.json",
		Collections: []string{newsCollection}},
	{Name: "events", Route: "/events", Title: "Events", Document: "/content/pages/events.json",
		Collections: []string{eventsCollection}},
	{Name: "gallery", Route: "/gallery", Title: "Gallery", Document: "/content/pages/gallery.json",
		Collections: []string{photosCollection, videosCollection}},
	{Name: "downloads", Route: "/downloads", Title: "Downloads", Document: "/content/pages/downloads.json",
		Collections: []string{downloadsCollection}},
	{Name: "contact", Route: "/contact", Title: "Contact", Document: contactDocument},
}

// All returns the routed pages in navigation order.
func All() []Page {
	out := make([]Page, len(registry))
	for i, p := range registry {
		out[i] = p
		out[i].Collections = append([]string(nil), p.Collections...)
	}
	return out
}

// Lookup finds a page by name.
func Lookup(name string) (Page, bool) {
	for _, p := range registry {
		if p.Name == name {
			return p, true
		}
	}
	return Page{}, false
}

// Paths lists every document and collection path the site reads, in
// registry order without duplicates.
func Paths() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range registry {
		add(p.Document)
		for _, c := range p.Collections {
			add(c)
		}
	}
	return out
}
