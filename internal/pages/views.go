package pages

import (
	"cmp"
	"context"
	"html/template"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dgallion1/schoolsite/internal/docmeta"
	"github.com/dgallion1/schoolsite/internal/richtext"
)

// summaryLimit bounds derived article summaries, in characters.
const summaryLimit = 200

type FacultyView struct {
	Faculty
	Members []Member `json:"members"`
	// MemberDepartments lists the departments members belong to, in first-seen order.
	MemberDepartments []string `json:"member_departments"`
}

func (b *Builder) buildFaculty(ctx context.Context, doc any) any {
	v := FacultyView{
		Faculty: resolvePage(b, "faculty", doc, DefaultFaculty()),
		Members: resolveItems(b, facultyCollection, b.loadItems(ctx, facultyCollection), DefaultMembers()),
	}
	seen := make(map[string]bool)
	for _, m := range v.Members {
		if m.Department != "" && !seen[m.Department] {
			seen[m.Department] = true
			v.MemberDepartments = append(v.MemberDepartments, m.Department)
		}
	}
	return v
}

type ArticleView struct {
	Article
	Published Date          `json:"published"`
	BodyHTML  template.HTML `json:"body_html"`
}

type NewsView struct {
	News
	Featured []ArticleView `json:"featured"`
	Items    []ArticleView `json:"items"`
}

func (b *Builder) buildNews(ctx context.Context, doc any) any {
	page := resolvePage(b, "news", doc, DefaultNews())

	var loaded any
	if len(page.Articles) > 0 {
		res := b.loader.LoadMany(ctx, newsCollection, page.Articles)
		if res.Err != nil {
			b.log.Warn("news articles not loaded", "error", res.Err)
		}
		loaded = res.Content
	} else {
		loaded = b.loadItems(ctx, newsCollection)
	}
	articles := resolveItems(b, newsCollection, loaded, DefaultArticles())

	v := NewsView{News: page, Items: make([]ArticleView, 0, len(articles))}
	for _, a := range articles {
		v.Items = append(v.Items, b.articleView(a))
	}
	slices.SortStableFunc(v.Items, func(x, y ArticleView) int {
		return compareNewestFirst(x.Published, y.Published)
	})
	for _, a := range v.Items {
		if a.Featured && len(v.Featured) < maxFeatured {
			v.Featured = append(v.Featured, a)
		}
	}
	return v
}

func (b *Builder) articleView(a Article) ArticleView {
	body, err := richtext.Markdown(a.Body)
	if err != nil {
		b.log.Warn("article body not rendered", "title", a.Title, "error", err)
		body = template.HTML(template.HTMLEscapeString(a.Body))
	}
	if strings.TrimSpace(a.Summary) == "" {
		a.Summary = richtext.Excerpt(string(body), summaryLimit)
	}
	return ArticleView{Article: a, Published: newDate(a.Date), BodyHTML: body}
}

// compareNewestFirst orders parsed dates descending, unparsed dates last.
func compareNewestFirst(x, y Date) int {
	switch {
	case x.OK && y.OK:
		return y.Time.Compare(x.Time)
	case x.OK:
		return -1
	case y.OK:
		return 1
	}
	return 0
}

type EventView struct {
	Event
	Start    Date `json:"start"`
	End      Date `json:"end"`
	Upcoming bool `json:"upcoming"`
	MultiDay bool `json:"multi_day"`
}

type EventsView struct {
	Events
	Highlighted []EventView `json:"highlighted"`
	Upcoming    []EventView `json:"upcoming"`
	Past        []EventView `json:"past"`
}

func (b *Builder) buildEvents(ctx context.Context, doc any) any {
	page := resolvePage(b, "events", doc, DefaultEvents())
	events := resolveItems(b, eventsCollection, b.loadItems(ctx, eventsCollection), DefaultEventList())

	now := b.now()
	v := EventsView{Events: page, Upcoming: []EventView{}, Past: []EventView{}}
	for _, e := range events {
		ev := EventView{Event: e, Start: newDate(e.Date), End: newDate(e.EndDate)}
		ev.Upcoming = ev.Start.OK && ev.Start.Time.After(now)
		ev.MultiDay = ev.Start.OK && ev.End.OK &&
			ev.End.Time.Format(dayLayout) != ev.Start.Time.Format(dayLayout)
		if ev.Upcoming {
			v.Upcoming = append(v.Upcoming, ev)
		} else {
			v.Past = append(v.Past, ev)
		}
	}
	slices.SortStableFunc(v.Upcoming, func(x, y EventView) int {
		return x.Start.Time.Compare(y.Start.Time)
	})
	slices.SortStableFunc(v.Past, func(x, y EventView) int {
		return compareNewestFirst(x.Start, y.Start)
	})
	v.Highlighted = v.Upcoming[:min(len(v.Upcoming), maxHighlighted)]
	return v
}

const dayLayout = "2006-01-02"

type GalleryView struct {
	Gallery
	Photos []Photo `json:"photos"`
	Videos []Video `json:"videos"`
}

func (b *Builder) buildGallery(ctx context.Context, doc any) any {
	return GalleryView{
		Gallery: resolvePage(b, "gallery", doc, DefaultGallery()),
		Photos:  resolveItems(b, photosCollection, b.loadItems(ctx, photosCollection), DefaultPhotos()),
		Videos:  resolveItems(b, videosCollection, b.loadItems(ctx, videosCollection), DefaultVideos()),
	}
}

type DownloadView struct {
	Download
	Published Date `json:"published"`
}

type DownloadsView struct {
	Downloads
	Files []DownloadView `json:"files"`
	// Years lists academic years present in Files, newest first.
	Years  []string       `json:"years"`
	Counts map[string]int `json:"counts"`
}

func (b *Builder) buildDownloads(ctx context.Context, doc any) any {
	page := resolvePage(b, "downloads", doc, DefaultDownloads())
	files := resolveItems(b, downloadsCollection, b.loadItems(ctx, downloadsCollection), DefaultDownloadList())

	v := DownloadsView{
		Downloads: page,
		Files:     make([]DownloadView, 0, len(files)),
		Years:     []string{},
		Counts:    make(map[string]int),
	}
	for _, d := range files {
		b.describeFile(&d)
		v.Files = append(v.Files, DownloadView{Download: d, Published: newDate(d.Date)})
		v.Counts[d.Category]++
		if d.AcademicYear != "" && !slices.Contains(v.Years, d.AcademicYear) {
			v.Years = append(v.Years, d.AcademicYear)
		}
	}
	slices.SortFunc(v.Years, func(x, y string) int { return cmp.Compare(y, x) })
	return v
}

// describeFile fills in size, page count and title for files published under
// the public dir when the document does not state them. A file that exists
// but cannot be parsed still gets its size.
func (b *Builder) describeFile(d *Download) {
	ext := strings.ToLower(path.Ext(d.File))
	hasMeta := ext == ".pdf" || ext == ".docx"
	needsPages := ext == ".pdf" && d.Pages == 0
	needsTitle := hasMeta && strings.TrimSpace(d.Title) == ""
	if d.FileSize != "" && !needsPages && !needsTitle {
		return
	}
	local, ok := b.localPath(d.File)
	if !ok {
		return
	}
	meta, err := docmeta.Inspect(local)
	if err != nil {
		b.log.Debug("download not fully inspected", "file", d.File, "error", err)
		if meta.Size == 0 {
			return
		}
	}
	if d.FileSize == "" {
		d.FileSize = meta.HumanSize()
	}
	if d.Pages == 0 {
		d.Pages = meta.Pages
	}
	if needsTitle && meta.Title != "" {
		d.Title = meta.Title
	}
}

func (b *Builder) localPath(file string) (string, bool) {
	if b.publicDir == "" || !strings.HasPrefix(file, "/") || strings.HasPrefix(file, "//") {
		return "", false
	}
	rel := strings.TrimPrefix(path.Clean(file), "/")
	if rel == "" {
		return "", false
	}
	return filepath.Join(b.publicDir, filepath.FromSlash(rel)), true
}
