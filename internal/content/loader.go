package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// IndexName is the document that stands in for a directory listing.
const IndexName = "index.json"

// Result is the settled outcome of loading one content path.
//
// Content is nil when the resource is absent or failed to load. Directory
// paths never settle to nil: a missing index yields an empty []any.
// Err is set only for transport and parse failures; absence is not an error.
type Result struct {
	Path    string
	Content any
	Err     error
}

// Options tune a Loader. The zero value is usable.
type Options struct {
	Retries       int
	MaxConcurrent int
	Stats         *FetchStats

	// Backoff overrides the wait between retries.
	Backoff func(attempt int) time.Duration
}

// Loader resolves content paths against a Fetcher. It holds no per-path
// state, so every call fetches again.
type Loader struct {
	fetcher Fetcher
	log     *slog.Logger
	stats   *FetchStats

	retries       int
	maxConcurrent int
	backoff       func(int) time.Duration
}

func NewLoader(f Fetcher, log *slog.Logger, opts Options) *Loader {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	l := &Loader{
		fetcher:       f,
		log:           log.With("component", "content"),
		stats:         opts.Stats,
		retries:       min(max(opts.Retries, 0), MaxRetries),
		maxConcurrent: opts.MaxConcurrent,
		backoff:       opts.Backoff,
	}
	if l.maxConcurrent <= 0 {
		l.maxConcurrent = 8
	}
	if l.backoff == nil {
		l.backoff = Backoff
	}
	return l
}

// IsDirectory reports whether p names a collection rather than a document.
func IsDirectory(p string) bool {
	return strings.HasSuffix(p, "/")
}

// Load resolves a single content path.
func (l *Loader) Load(ctx context.Context, p string) Result {
	if p == "" {
		return Result{}
	}

	if IsDirectory(p) {
		doc, found, err := l.fetch(ctx, p+IndexName)
		if err != nil {
			l.log.Debug("collection index unavailable", "path", p, "error", err)
		}
		if err != nil || !found || doc == nil {
			return Result{Path: p, Content: []any{}}
		}
		return Result{Path: p, Content: doc}
	}

	doc, found, err := l.fetch(ctx, p)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			l.log.Debug("content load cancelled", "path", p)
		} else {
			l.log.Warn("content not loaded", "path", p, "error", err)
		}
		return Result{Path: p, Err: err}
	}
	if !found {
		l.log.Debug("content not published", "path", p)
		return Result{Path: p}
	}
	return Result{Path: p, Content: doc}
}

// LoadMany fetches base+name for every name concurrently and returns the
// documents that loaded, in the order of names. Failed or missing names are
// dropped. Err reports only a failure of the aggregation itself.
func (l *Loader) LoadMany(ctx context.Context, base string, names []string) Result {
	if len(names) == 0 {
		return Result{Path: base, Content: []any{}}
	}

	docs := make([]any, len(names))

	g := new(errgroup.Group)
	g.SetLimit(l.maxConcurrent)
	for i, name := range names {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("load %s: panic: %v", name, r)
				}
			}()
			doc, found, ferr := l.fetch(ctx, base+name)
			if ferr != nil {
				l.log.Debug("collection item not loaded", "base", base, "name", name, "error", ferr)
				return nil
			}
			if found {
				docs[i] = doc
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		l.log.Error("aggregate load failed", "base", base, "error", err)
		return Result{Path: base, Content: []any{}, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return Result{Path: base, Content: []any{}, Err: err}
	}

	out := make([]any, 0, len(names))
	for _, doc := range docs {
		if doc != nil {
			out = append(out, doc)
		}
	}
	return Result{Path: base, Content: out}
}

// fetch retrieves and decodes one document. found is false for a non-success
// status; err is a *FetchError for transport and parse failures.
func (l *Loader) fetch(ctx context.Context, p string) (doc any, found bool, err error) {
	start := time.Now()
	outcome := OutcomeFailed
	defer func() {
		l.stats.Record(outcome, time.Since(start).Milliseconds())
	}()

	var resp *Response
	for attempt := 0; ; attempt++ {
		resp, err = l.fetcher.Fetch(ctx, p)
		if !shouldRetry(ctx, err, attempt, l.retries) {
			break
		}
		wait := l.backoff(attempt)
		l.log.Warn("retryable content fetch error", "path", p, "attempt", attempt, "wait", wait, "error", err)
		if !sleep(ctx, wait) {
			err = ctx.Err()
			break
		}
	}
	if err != nil {
		return nil, false, &FetchError{Kind: KindTransport, Path: p, Err: err}
	}
	if !resp.OK() {
		outcome = OutcomeAbsent
		return nil, false, nil
	}

	doc, err = decode(p, resp.Body)
	if err != nil {
		return nil, false, &FetchError{Kind: KindParse, Path: p, Err: err}
	}
	outcome = OutcomeLoaded
	return doc, true, nil
}
