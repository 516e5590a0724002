package pages

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/dgallion1/schoolsite/internal/content"
	"github.com/fumiama/go-docx"
	"github.com/google/go-cmp/cmp"
)

var testNow = time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)

func newTestBuilder(t *testing.T, fsys fstest.MapFS) *Builder {
	t.Helper()
	loader := content.NewLoader(content.NewDirFetcher(fsys), nil, content.Options{})
	return NewBuilder(loader, nil, Config{Now: func() time.Time { return testNow }})
}

func file(s string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(s)}
}

func TestBuild_DefaultsWhenNothingPublished(t *testing.T) {
	b := newTestBuilder(t, fstest.MapFS{})

	for _, p := range All() {
		view, err := b.Build(context.Background(), p.Name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", p.Name, err)
		}
		if view.Data == nil {
			t.Fatalf("%s: expected content, got nil", p.Name)
		}
		if view.Footer != DefaultContact().ContactInfo {
			t.Fatalf("%s: expected default footer, got %+v", p.Name, view.Footer)
		}
	}

	view, _ := b.Build(context.Background(), "home")
	if diff := cmp.Diff(DefaultHome(), view.Data); diff != "" {
		t.Fatalf("home differs from default (-want +got):\n%s", diff)
	}
}

func TestBuild_PublishedContent(t *testing.T) {
	b := newTestBuilder(t, fstest.MapFS{
		"content/pages/home.json":    file(`{"hero": {"title": "Karibu Sengani"}}`),
		"content/pages/contact.json": file(`{"contact_info": {"phone": "+254 700 000000"}}`),
	})

	view, err := b.Build(context.Background(), "home")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	home := view.Data.(Home)
	if home.Hero.Title != "Karibu Sengani" {
		t.Fatalf("expected published title, got %q", home.Hero.Title)
	}
	if home.Hero.Subtitle != DefaultHome().Hero.Subtitle {
		t.Fatalf("expected default subtitle, got %q", home.Hero.Subtitle)
	}
	if view.Footer.Phone != "+254 700 000000" {
		t.Fatalf("expected published phone in footer, got %q", view.Footer.Phone)
	}
	if view.Footer.Email != DefaultContact().ContactInfo.Email {
		t.Fatalf("expected default email in footer, got %q", view.Footer.Email)
	}
}

func TestBuild_MalformedDocumentFallsBack(t *testing.T) {
	b := newTestBuilder(t, fstest.MapFS{
		"content/pages/about.json": file(`{"title": `),
	})

	view, err := b.Build(context.Background(), "about")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(DefaultAbout(), view.Data); diff != "" {
		t.Fatalf("expected default about (-want +got):\n%s", diff)
	}
}

func TestBuild_UnknownPage(t *testing.T) {
	b := newTestBuilder(t, fstest.MapFS{})

	_, err := b.Build(context.Background(), "alumni")
	if !errors.Is(err, ErrUnknownPage) {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
}

func TestBuild_ContactPageFeedsFooter(t *testing.T) {
	b := newTestBuilder(t, fstest.MapFS{
		"content/pages/contact.json": file(`{"title": "Reach us", "contact_info": {"email": "office@example.org"}}`),
	})

	view, err := b.Build(context.Background(), "contact")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := view.Data.(Contact); got.Title != "Reach us" || got.ContactInfo.Email != "office@example.org" {
		t.Fatalf("unexpected contact content: %+v", got)
	}
	if view.Footer.Email != "office@example.org" {
		t.Fatalf("expected footer email from contact page, got %q", view.Footer.Email)
	}
}

func TestBuildNews_NamedArticles(t *testing.T) {
	b := newTestBuilder(t, fstest.MapFS{
		"content/pages/news.json": file(`{"articles": ["older.json", "missing.json", "newer.json"]}`),
		"content/news/older.json": file(`{"title": "Older", "date": "2024-01-05T10:00:00", "body": "**Hello** world", "featured": true}`),
		"content/news/newer.json": file(`{"title": "Newer", "date": "2024-02-01", "body": "Second", "summary": "Given"}`),
	})

	view, err := b.Build(context.Background(), "news")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	news := view.Data.(NewsView)

	var titles []string
	for _, a := range news.Items {
		titles = append(titles, a.Title)
	}
	if diff := cmp.Diff([]string{"Newer", "Older"}, titles); diff != "" {
		t.Fatalf("unexpected article order (-want +got):\n%s", diff)
	}

	older := news.Items[1]
	if !strings.Contains(string(older.BodyHTML), "<strong>Hello</strong>") {
		t.Fatalf("expected rendered markdown, got %q", older.BodyHTML)
	}
	if older.Summary != "Hello world" {
		t.Fatalf("expected derived summary, got %q", older.Summary)
	}
	if news.Items[0].Summary != "Given" {
		t.Fatalf("expected published summary kept, got %q", news.Items[0].Summary)
	}
	if len(news.Featured) != 1 || news.Featured[0].Title != "Older" {
		t.Fatalf("expected Older featured, got %+v", news.Featured)
	}
	if news.Title != DefaultNews().Title {
		t.Fatalf("expected default title, got %q", news.Title)
	}
}

func TestBuildNews_CollectionIndex(t *testing.T) {
	b := newTestBuilder(t, fstest.MapFS{
		"content/news/index.json": file(`[{"title": "Only", "date": "2025-01-01", "body": "Text"}]`),
	})

	view, err := b.Build(context.Background(), "news")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	news := view.Data.(NewsView)
	if len(news.Items) != 1 || news.Items[0].Title != "Only" {
		t.Fatalf("expected indexed article, got %+v", news.Items)
	}
	if len(news.Featured) != 0 {
		t.Fatalf("expected no featured articles, got %d", len(news.Featured))
	}
}

func TestBuildNews_Defaults(t *testing.T) {
	b := newTestBuilder(t, fstest.MapFS{})

	view, err := b.Build(context.Background(), "news")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	news := view.Data.(NewsView)
	if len(news.Items) != len(DefaultArticles()) {
		t.Fatalf("expected %d articles, got %d", len(DefaultArticles()), len(news.Items))
	}
	if news.Items[0].Title != "Annual Day Celebration 2024" {
		t.Fatalf("expected newest article first, got %q", news.Items[0].Title)
	}
	if len(news.Featured) != 2 {
		t.Fatalf("expected 2 featured, got %d", len(news.Featured))
	}
	if news.Featured[1].Title != "Sports Day Achievements" {
		t.Fatalf("unexpected second featured %q", news.Featured[1].Title)
	}
}

func TestBuildEvents_SplitsByClock(t *testing.T) {
	b := newTestBuilder(t, fstest.MapFS{})

	view, err := b.Build(context.Background(), "events")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events := view.Data.(EventsView)

	titles := func(evs []EventView) []string {
		var out []string
		for _, e := range evs {
			out = append(out, e.Title)
		}
		return out
	}
	if diff := cmp.Diff([]string{"Inter-House Sports Competition", "Parent-Teacher Meeting"}, titles(events.Upcoming)); diff != "" {
		t.Fatalf("unexpected upcoming (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Science Exhibition", "Winter Break"}, titles(events.Past)); diff != "" {
		t.Fatalf("unexpected past (-want +got):\n%s", diff)
	}
	if len(events.Highlighted) != 2 {
		t.Fatalf("expected 2 highlighted, got %d", len(events.Highlighted))
	}
	if !events.Past[1].MultiDay {
		t.Fatal("expected winter break to span multiple days")
	}
	if events.Past[0].MultiDay {
		t.Fatal("expected science exhibition to be a single day")
	}
	if events.Upcoming[0].Start.Long() != "February 10, 2025" {
		t.Fatalf("unexpected start date %q", events.Upcoming[0].Start.Long())
	}
}

func TestBuildEvents_UnparsedDateIsPast(t *testing.T) {
	b := newTestBuilder(t, fstest.MapFS{
		"content/events/index.json": file(`[{"title": "Someday", "date": "soon"}]`),
	})

	view, err := b.Build(context.Background(), "events")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events := view.Data.(EventsView)
	if len(events.Upcoming) != 0 || len(events.Past) != 1 {
		t.Fatalf("expected one past event, got upcoming=%d past=%d", len(events.Upcoming), len(events.Past))
	}
	if events.Past[0].Start.Long() != "soon" {
		t.Fatalf("expected raw date, got %q", events.Past[0].Start.Long())
	}
}

func TestBuildGallery_EmptyCollectionsUseSamples(t *testing.T) {
	b := newTestBuilder(t, fstest.MapFS{
		"content/gallery/photos/index.json": file(`[]`),
		"content/gallery/videos/index.json": file(`{"items": [{"title": "Drama", "video": "/videos/drama.mp4", "category": "Cultural", "date": "2025-01-02"}]}`),
	})

	view, err := b.Build(context.Background(), "gallery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gallery := view.Data.(GalleryView)
	if diff := cmp.Diff(DefaultPhotos(), gallery.Photos); diff != "" {
		t.Fatalf("expected sample photos (-want +got):\n%s", diff)
	}
	if len(gallery.Videos) != 1 || gallery.Videos[0].Title != "Drama" {
		t.Fatalf("expected published video, got %+v", gallery.Videos)
	}
}

func TestBuildFaculty_MemberDepartments(t *testing.T) {
	b := newTestBuilder(t, fstest.MapFS{})

	view, err := b.Build(context.Background(), "faculty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	faculty := view.Data.(FacultyView)
	want := []string{"Administration", "Mathematics", "Science", "Tamil", "Physical Education"}
	if diff := cmp.Diff(want, faculty.MemberDepartments); diff != "" {
		t.Fatalf("unexpected departments (-want +got):\n%s", diff)
	}
	if faculty.Principal.Name != "Dr. Priya Sharma" {
		t.Fatalf("unexpected principal %q", faculty.Principal.Name)
	}
}

func TestBuildDownloads_DescribesLocalFiles(t *testing.T) {
	dir := t.TempDir()
	writePublic(t, dir, "downloads/notes.txt", strings.Repeat("x", 2048))
	writePublic(t, dir, "content/downloads/index.json", `[
		{"title": "Notes", "date": "2024-09-01", "file": "/downloads/notes.txt", "category": "Forms", "academic_year": "2023-24"},
		{"title": "Remote", "file": "https://example.org/form.pdf", "category": "Forms", "academic_year": "2024-25"},
		{"title": "Gone", "file": "/downloads/gone.pdf", "category": "Policies", "academic_year": "2024-25", "file_size": "1 MB"}
	]`)

	loader := content.NewLoader(content.NewDirFetcher(os.DirFS(dir)), nil, content.Options{})
	b := NewBuilder(loader, nil, Config{PublicDir: dir, Now: func() time.Time { return testNow }})

	view, err := b.Build(context.Background(), "downloads")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	downloads := view.Data.(DownloadsView)
	if len(downloads.Files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(downloads.Files))
	}
	if got := downloads.Files[0].FileSize; got != "2.0 kB" {
		t.Fatalf("expected derived size 2.0 kB, got %q", got)
	}
	if got := downloads.Files[1].FileSize; got != "" {
		t.Fatalf("expected remote file left alone, got %q", got)
	}
	if got := downloads.Files[2].FileSize; got != "1 MB" {
		t.Fatalf("expected stated size kept, got %q", got)
	}
	if downloads.Counts["Forms"] != 2 || downloads.Counts["Policies"] != 1 {
		t.Fatalf("unexpected counts %v", downloads.Counts)
	}
	if diff := cmp.Diff([]string{"2024-25", "2023-24"}, downloads.Years); diff != "" {
		t.Fatalf("unexpected years (-want +got):\n%s", diff)
	}
	if downloads.Files[0].Published.Short() != "Sep 1, 2024" {
		t.Fatalf("unexpected date %q", downloads.Files[0].Published.Short())
	}
}

func buildDownloads(t *testing.T, dir string) DownloadsView {
	t.Helper()
	loader := content.NewLoader(content.NewDirFetcher(os.DirFS(dir)), nil, content.Options{})
	b := NewBuilder(loader, nil, Config{PublicDir: dir, Now: func() time.Time { return testNow }})
	view, err := b.Build(context.Background(), "downloads")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return view.Data.(DownloadsView)
}

func TestBuildDownloads_UnparsableFileKeepsSize(t *testing.T) {
	dir := t.TempDir()
	writePublic(t, dir, "downloads/fees.pdf", strings.Repeat("\x00", 4096))
	writePublic(t, dir, "content/downloads/index.json", `[{"title": "Fees", "file": "/downloads/fees.pdf", "category": "Fee Structure"}]`)

	downloads := buildDownloads(t, dir)
	if len(downloads.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(downloads.Files))
	}
	f := downloads.Files[0]
	if f.FileSize != "4.1 kB" {
		t.Fatalf("expected size 4.1 kB for unparsable pdf, got %q", f.FileSize)
	}
	if f.Pages != 0 {
		t.Fatalf("expected unknown page count, got %d", f.Pages)
	}
	if f.Title != "Fees" {
		t.Fatalf("expected stated title kept, got %q", f.Title)
	}
}

func TestBuildDownloads_TitleFromDocument(t *testing.T) {
	dir := t.TempDir()
	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText("Prepared by the bursar")
	doc.AddParagraph().Style("Title").AddText("Boarding Requirements")

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("write docx: %v", err)
	}
	writePublic(t, dir, "downloads/boarding.docx", buf.String())
	writePublic(t, dir, "content/downloads/index.json", `[
		{"title": "", "file": "/downloads/boarding.docx", "category": "Forms", "file_size": "20 kB"},
		{"title": "Named", "file": "/downloads/boarding.docx", "category": "Forms", "file_size": "20 kB"}
	]`)

	downloads := buildDownloads(t, dir)
	if got := downloads.Files[0].Title; got != "Boarding Requirements" {
		t.Fatalf("expected title from document, got %q", got)
	}
	if got := downloads.Files[0].FileSize; got != "20 kB" {
		t.Fatalf("expected stated size kept, got %q", got)
	}
	if got := downloads.Files[1].Title; got != "Named" {
		t.Fatalf("expected stated title kept, got %q", got)
	}
}

func writePublic(t *testing.T, dir, name, data string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLocalPath(t *testing.T) {
	b := &Builder{publicDir: "/srv/public"}
	tests := []struct {
		file string
		want string
		ok   bool
	}{
		{"/downloads/form.pdf", filepath.Join("/srv/public", "downloads", "form.pdf"), true},
		{"/../etc/passwd", filepath.Join("/srv/public", "etc", "passwd"), true},
		{"https://example.org/form.pdf", "", false},
		{"//cdn.example.org/form.pdf", "", false},
		{"downloads/form.pdf", "", false},
		{"/", "", false},
	}
	for _, tt := range tests {
		got, ok := b.localPath(tt.file)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("localPath(%q): expected (%q, %v), got (%q, %v)", tt.file, tt.want, tt.ok, got, ok)
		}
	}
}

func TestRegistry(t *testing.T) {
	paths := Paths()
	if len(paths) != 17 {
		t.Fatalf("expected 17 content paths, got %d: %v", len(paths), paths)
	}
	if n := strings.Count(strings.Join(paths, " "), contactDocument); n != 1 {
		t.Fatalf("expected contact document once, got %d", n)
	}
	for _, p := range All() {
		if _, ok := builders[p.Name]; !ok {
			t.Fatalf("page %q has no builder", p.Name)
		}
		if !slices.Contains(paths, p.Document) {
			t.Fatalf("page %q document missing from paths", p.Name)
		}
	}
	if _, ok := Lookup("student-life"); !ok {
		t.Fatal("expected student-life to be routed")
	}
}
