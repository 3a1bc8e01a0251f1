package stats

import (
	"sync"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/trace"
)

// Tracker follows a session through its OnChange hook and keeps the latest
// stats plus the counter history of the current run. The history always
// holds one sample per step from the first step to the cursor.
type Tracker struct {
	mu      sync.Mutex
	src     interface{ Trace() *trace.Trace }
	current Stats
	history Series
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Follow registers t on s. Steps skipped by a forward jump are read off the
// trace of s.
func (t *Tracker) Follow(s *playback.Session) {
	t.mu.Lock()
	t.src = s
	t.mu.Unlock()
	s.OnChange(t.Observe)
}

func (t *Tracker) Observe(snap playback.Snapshot) {
	info, _ := algorithms.Lookup(snap.Algorithm)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = Of(snap, info)
	if !snap.HasTrace {
		t.history = Series{}
		return
	}

	n := len(t.history.Comparisons)
	switch {
	case snap.Index < n:
		t.history.Comparisons = t.history.Comparisons[:snap.Index+1]
		t.history.Swaps = t.history.Swaps[:snap.Index+1]
		t.history.Comparisons[snap.Index] = float64(snap.Step.Comparisons)
		t.history.Swaps[snap.Index] = float64(snap.Step.Swaps)
	case snap.Index == n:
		t.history.Comparisons = append(t.history.Comparisons, float64(snap.Step.Comparisons))
		t.history.Swaps = append(t.history.Swaps, float64(snap.Step.Swaps))
	default:
		t.history = t.backfillLocked(snap)
	}
}

// backfillLocked rebuilds the history up to the cursor after a forward jump.
// Without a matching trace the gap is filled with the cursor's counters.
func (t *Tracker) backfillLocked(snap playback.Snapshot) Series {
	if t.src != nil {
		if tr := t.src.Trace(); tr != nil && tr.Len() == snap.Len {
			full := SeriesOf(tr)
			return Series{
				Comparisons: full.Comparisons[:snap.Index+1],
				Swaps:       full.Swaps[:snap.Index+1],
			}
		}
	}
	h := t.history
	for len(h.Comparisons) <= snap.Index {
		h.Comparisons = append(h.Comparisons, float64(snap.Step.Comparisons))
		h.Swaps = append(h.Swaps, float64(snap.Step.Swaps))
	}
	return h
}

func (t *Tracker) Value() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// History returns a copy of the observed counter series.
func (t *Tracker) History() Series {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Series{
		Comparisons: append([]float64(nil), t.history.Comparisons...),
		Swaps:       append([]float64(nil), t.history.Swaps...),
	}
}
