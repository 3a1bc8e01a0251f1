// Package stats derives the displayed counters of a run from the step under
// the playback cursor.
package stats

import (
	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/trace"
)

type Stats struct {
	Comparisons int    `json:"comparisons"`
	Swaps       int    `json:"swaps"`
	Complexity  string `json:"complexity"`
	// Step is the 1-based position of the cursor, 0 when idle.
	Step  int `json:"step"`
	Total int `json:"total"`
}

// Progress is the fraction of the trace already shown, in [0, 1].
func (s Stats) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Step) / float64(s.Total)
}

// Of reads the counters off snap. An idle session reports zero counters and
// the algorithm's complexity label.
func Of(snap playback.Snapshot, info algorithms.Info) Stats {
	st := Stats{Complexity: info.Complexity}
	if !snap.HasTrace {
		return st
	}
	st.Comparisons = snap.Step.Comparisons
	st.Swaps = snap.Step.Swaps
	st.Step = snap.Index + 1
	st.Total = snap.Len
	return st
}

// Final reads the counters of the last step of t.
func Final(t *trace.Trace, info algorithms.Info) Stats {
	last := t.Last()
	return Stats{
		Comparisons: last.Comparisons,
		Swaps:       last.Swaps,
		Complexity:  info.Complexity,
		Step:        t.Len(),
		Total:       t.Len(),
	}
}

// Series holds one value per step for plotting.
type Series struct {
	Comparisons []float64
	Swaps       []float64
}

func SeriesOf(t *trace.Trace) Series {
	s := Series{
		Comparisons: make([]float64, t.Len()),
		Swaps:       make([]float64, t.Len()),
	}
	for i := 0; i < t.Len(); i++ {
		step := t.At(i)
		s.Comparisons[i] = float64(step.Comparisons)
		s.Swaps[i] = float64(step.Swaps)
	}
	return s
}
