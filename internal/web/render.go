package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/dgallion1/schoolsite/internal/pages"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// layoutData is what every template receives.
type layoutData struct {
	SiteName string
	Nav      []pages.Page
	Current  string
	Title    string
	Footer   pages.ContactInfo
	Year     int
	Content  any
}

type renderer struct {
	siteName string
	nav      []pages.Page
	pages    map[string]*template.Template
}

var funcs = template.FuncMap{
	"join": strings.Join,
	"telLink": func(phone string) template.URL {
		digits := strings.Map(func(r rune) rune {
			if r == '+' || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, phone)
		return template.URL("tel:" + digits)
	},
}

func newRenderer(siteName string) (*renderer, error) {
	r := &renderer{
		siteName: siteName,
		nav:      pages.All(),
		pages:    make(map[string]*template.Template),
	}
	names := []string{"notfound"}
	for _, p := range r.nav {
		names = append(names, p.Name)
	}
	for _, name := range names {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// render executes into a buffer first so a template failure never sends a
// half-written page.
func (r *renderer) render(w http.ResponseWriter, status int, name, title string, footer pages.ContactInfo, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("no template for %q", name)
	}
	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, "layout", layoutData{
		SiteName: r.siteName,
		Nav:      r.nav,
		Current:  name,
		Title:    title,
		Footer:   footer,
		Year:     time.Now().Year(),
		Content:  data,
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}

// publishedFiles serves the public dir without directory listings.
func publishedFiles(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
