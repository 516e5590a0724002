package pages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/schoolsite/internal/content"
)

// ErrUnknownPage is returned by Build for a name that is not routed.
var ErrUnknownPage = errors.New("unknown page")

// View is everything needed to render one page.
type View struct {
	Page   Page        `json:"page"`
	Footer ContactInfo `json:"footer"`
	Data   any         `json:"content"`
}

type Config struct {
	// PublicDir is the published site root, used to inspect downloadable files.
	PublicDir string
	Now       func() time.Time
}

// Builder loads a page's documents and collections and resolves them over
// the page defaults. Content problems never fail a build; they are logged
// and the defaults are rendered instead.
type Builder struct {
	loader    *content.Loader
	log       *slog.Logger
	publicDir string
	now       func() time.Time
}

func NewBuilder(l *content.Loader, log *slog.Logger, cfg Config) *Builder {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Builder{
		loader:    l,
		log:       log.With("component", "pages"),
		publicDir: cfg.PublicDir,
		now:       cfg.Now,
	}
}

type buildFunc func(b *Builder, ctx context.Context, doc any) any

var builders = map[string]buildFunc{
	"home": func(b *Builder, _ context.Context, doc any) any {
		return resolvePage(b, "home", doc, DefaultHome())
	},
	"about": func(b *Builder, _ context.Context, doc any) any {
		return resolvePage(b, "about", doc, DefaultAbout())
	},
	"academics": func(b *Builder, _ context.Context, doc any) any {
		return resolvePage(b, "academics", doc, DefaultAcademics())
	},
	"student-life": func(b *Builder, _ context.Context, doc any) any {
		return resolvePage(b, "student-life", doc, DefaultStudentLife())
	},
	"admissions": func(b *Builder, _ context.Context, doc any) any {
		return resolvePage(b, "admissions", doc, DefaultAdmissions())
	},
	"contact": func(b *Builder, _ context.Context, doc any) any {
		return resolvePage(b, "contact", doc, DefaultContact())
	},
	"faculty":   (*Builder).buildFaculty,
	"news":      (*Builder).buildNews,
	"events":    (*Builder).buildEvents,
	"gallery":   (*Builder).buildGallery,
	"downloads": (*Builder).buildDownloads,
}

// Build loads and resolves the named page.
func (b *Builder) Build(ctx context.Context, name string) (*View, error) {
	page, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	build := builders[name]

	var doc, contact content.Result
	var wg sync.WaitGroup
	wg.Go(func() {
		doc = b.loader.Load(ctx, page.Document)
	})
	if page.Document != contactDocument {
		wg.Go(func() {
			contact = b.loader.Load(ctx, contactDocument)
		})
	}
	wg.Wait()
	if page.Document == contactDocument {
		contact = doc
	}

	return &View{
		Page:   page,
		Footer: b.Footer(contact.Content),
		Data:   build(b, ctx, doc.Content),
	}, nil
}

// Footer resolves the site-wide contact block from a loaded contact document.
func (b *Builder) Footer(doc any) ContactInfo {
	return resolvePage(b, "footer", doc, DefaultContact()).ContactInfo
}

func resolvePage[T any](b *Builder, name string, doc any, def T) T {
	out, err := Resolve(doc, def)
	if err != nil {
		b.log.Warn("page content ignored", "page", name, "error", err)
	}
	return out
}

func resolveItems[T any](b *Builder, path string, doc any, def []T) []T {
	out, err := ResolveList(doc, def)
	if err != nil {
		b.log.Warn("collection content ignored", "path", path, "error", err)
	}
	return out
}

func (b *Builder) loadItems(ctx context.Context, path string) any {
	return b.loader.Load(ctx, path).Content
}

// LoadFooter loads the contact document and resolves the footer from it.
func (b *Builder) LoadFooter(ctx context.Context) ContactInfo {
	return b.Footer(b.loader.Load(ctx, contactDocument).Content)
}
