package content

import (
	"math"
	"slices"
	"sync"
	"time"
)

// Outcome is how a single fetch ended.
type Outcome string

const (
	OutcomeLoaded Outcome = "loaded"
	OutcomeAbsent Outcome = "absent"
	OutcomeFailed Outcome = "failed"
)

type sample struct {
	timestamp  time.Time
	durationMs int64
	outcome    Outcome
}

// StatsSnapshot is a point-in-time aggregate of fetch samples.
type StatsSnapshot struct {
	Count  int     `json:"count"`
	Loaded int     `json:"loaded"`
	Absent int     `json:"absent"`
	Failed int     `json:"failed"`
	MinMs  int64   `json:"min_ms"`
	MaxMs  int64   `json:"max_ms"`
	AvgMs  float64 `json:"avg_ms"`
	P50Ms  float64 `json:"p50_ms"`
	P95Ms  float64 `json:"p95_ms"`
	P99Ms  float64 `json:"p99_ms"`
}

// FetchStats tracks recent content fetches within a rolling window.
type FetchStats struct {
	mu      sync.Mutex
	samples []sample
	maxAge  time.Duration
}

func NewFetchStats(maxAge time.Duration) *FetchStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &FetchStats{
		samples: make([]sample, 0, 256),
		maxAge:  maxAge,
	}
}

func (s *FetchStats) Record(outcome Outcome, durationMs int64) {
	if s == nil {
		return
	}
	if durationMs < 0 {
		durationMs = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.samples = append(s.samples, sample{
		timestamp:  now,
		durationMs: durationMs,
		outcome:    outcome,
	})
}

func (s *FetchStats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	if len(s.samples) == 0 {
		return StatsSnapshot{}
	}

	var snap StatsSnapshot
	values := make([]int64, 0, len(s.samples))
	var sum int64
	for _, sm := range s.samples {
		values = append(values, sm.durationMs)
		sum += sm.durationMs
		switch sm.outcome {
		case OutcomeLoaded:
			snap.Loaded++
		case OutcomeAbsent:
			snap.Absent++
		case OutcomeFailed:
			snap.Failed++
		}
	}
	slices.Sort(values)

	snap.Count = len(values)
	snap.MinMs = values[0]
	snap.MaxMs = values[len(values)-1]
	snap.AvgMs = float64(sum) / float64(len(values))
	snap.P50Ms = percentile(values, 50)
	snap.P95Ms = percentile(values, 95)
	snap.P99Ms = percentile(values, 99)
	return snap
}

// pruneLocked drops samples older than the window. Samples arrive in time
// order, so everything before the first fresh one is stale.
func (s *FetchStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	fresh := slices.IndexFunc(s.samples, func(sm sample) bool {
		return !sm.timestamp.Before(cutoff)
	})
	if fresh < 0 {
		s.samples = s.samples[:0]
		return
	}
	s.samples = slices.Delete(s.samples, 0, fresh)
}

// percentile interpolates linearly between the two ranks around pct.
func percentile(sorted []int64, pct float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	rank := float64(n-1) * math.Max(0, math.Min(pct, 100)) / 100
	i, frac := math.Modf(rank)
	lo := int(i)
	if lo+1 >= n || frac == 0 {
		return float64(sorted[lo])
	}
	return float64(sorted[lo]) + frac*float64(sorted[lo+1]-sorted[lo])
}
