package content

import (
	"context"
	"sync"
)

// State is the observable view of a tracked content path.
type State struct {
	Path    string
	Content any
	Loading bool
	Err     error
}

// Tracker follows one content path at a time. Pointing it at a new path
// cancels the previous load, and a superseded load never commits its result,
// even when its response arrives after the newer one.
type Tracker struct {
	loader *Loader

	mu     sync.Mutex
	gen    uint64
	state  State
	cancel context.CancelFunc
	closed bool

	wg sync.WaitGroup
}

func NewTracker(l *Loader) *Tracker {
	return &Tracker{loader: l}
}

// Watch starts loading path and returns a channel that is closed once that
// load has settled, whether or not it was superseded.
func (t *Tracker) Watch(ctx context.Context, path string) <-chan struct{} {
	done := make(chan struct{})

	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.gen++
	gen := t.gen

	if t.closed || path == "" {
		t.state = State{Path: path}
		t.mu.Unlock()
		close(done)
		return done
	}

	loadCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.state = State{Path: path, Loading: true}
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		defer close(done)
		defer cancel()

		res := t.loader.Load(loadCtx, path)

		t.mu.Lock()
		defer t.mu.Unlock()
		if gen != t.gen {
			return
		}
		t.state = State{Path: path, Content: res.Content, Err: res.Err}
	}()
	return done
}

// State returns the current snapshot.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Close cancels any in-flight load and waits for it to return. Later calls
// to Watch settle immediately without fetching.
func (t *Tracker) Close() {
	t.mu.Lock()
	t.closed = true
	t.gen++
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if t.state.Loading {
		t.state.Loading = false
	}
	t.mu.Unlock()
	t.wg.Wait()
}
