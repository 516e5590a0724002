package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dgallion1/schoolsite/internal/config"
	"github.com/dgallion1/schoolsite/internal/content"
	"github.com/dgallion1/schoolsite/internal/pages"
	"github.com/spf13/cobra"
)

// errFailures makes the process exit non-zero after the report is printed.
var errFailures = errors.New("some content failed to load")

const (
	statusLoaded = "loaded"
	statusAbsent = "absent"
	statusEmpty  = "empty"
	statusFailed = "failed"
)

type report struct {
	Path   string `json:"path"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type options struct {
	baseURL string
	dir     string
	paths   []string
	json    bool
	timeout time.Duration
	retries int
	verbose bool
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := options{
		baseURL: cfg.ContentBaseURL,
		dir:     cfg.PublicDir,
		timeout: cfg.FetchTimeout,
		retries: cfg.FetchRetries,
	}

	cmd := &cobra.Command{
		Use:   "contentcheck",
		Short: "Check that site content loads",
		Long: `Loads every page document and collection the site reads, one at a time,
and prints loaded, absent, empty or failed for each. Exits 1 if any failed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.baseURL, "base-url", opts.baseURL, "fetch content from this static host instead of --dir")
	f.StringVar(&opts.dir, "dir", opts.dir, "published site directory")
	f.StringArrayVar(&opts.paths, "path", nil, "content path to check (repeatable; default every site path)")
	f.BoolVar(&opts.json, "json", false, "emit a JSON array")
	f.DurationVar(&opts.timeout, "timeout", opts.timeout, "per-request timeout for --base-url")
	f.IntVar(&opts.retries, "retries", opts.retries, "retries for transport failures")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every fetch")
	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))

	var fetcher content.Fetcher
	switch {
	case opts.baseURL != "":
		hf := content.NewHTTPFetcher(opts.baseURL, opts.timeout)
		defer hf.Close()
		fetcher = hf
	case opts.dir != "":
		fetcher = content.NewDirFetcher(os.DirFS(opts.dir))
	default:
		return fmt.Errorf("one of --base-url or --dir is required")
	}

	paths := opts.paths
	if len(paths) == 0 {
		paths = pages.Paths()
	}

	loader := content.NewLoader(fetcher, log, content.Options{Retries: opts.retries})
	tracker := content.NewTracker(loader)
	defer tracker.Close()

	reports := check(ctx, tracker, paths)
	if err := write(stdout, reports, opts.json); err != nil {
		return err
	}
	for _, r := range reports {
		if r.Status == statusFailed {
			return errFailures
		}
	}
	return nil
}

// check points one tracker at each path in turn and classifies the settled state.
func check(ctx context.Context, tracker *content.Tracker, paths []string) []report {
	out := make([]report, 0, len(paths))
	for _, p := range paths {
		<-tracker.Watch(ctx, p)
		out = append(out, classify(tracker.State()))
	}
	return out
}

func classify(st content.State) report {
	r := report{Path: st.Path}
	switch {
	case st.Err != nil:
		r.Status = statusFailed
		r.Error = st.Err.Error()
	case st.Content == nil:
		r.Status = statusAbsent
	case isEmpty(st.Content):
		r.Status = statusEmpty
	default:
		r.Status = statusLoaded
	}
	return r
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case map[string]any:
		if items, ok := t["items"].([]any); ok {
			return len(items) == 0
		}
		return len(t) == 0
	}
	return false
}

func write(w io.Writer, reports []report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range reports {
		status := r.Status
		if r.Error != "" {
			status += ": " + r.Error
		}
		fmt.Fprintf(tw, "%s\t%s\n", r.Path, status)
	}
	return tw.Flush()
}
