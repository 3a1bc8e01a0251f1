package stats

import (
	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/trace"
)

// Summary is the one-shot report of a finished run.
type Summary struct {
	Algorithm  string         `json:"algorithm"`
	Name       string         `json:"name"`
	Complexity string         `json:"complexity"`
	Steps      int            `json:"steps"`
	Message    string         `json:"message"`
	Result     map[string]any `json:"result"`
}

// Summarize reports the outcome read off the last step of t. Sorting runs
// report the sorted array; searching runs report the searched array, the
// target and the found position, -1 when absent.
func Summarize(t *trace.Trace, info algorithms.Info) Summary {
	last := t.Last()
	s := Summary{
		Algorithm:  string(info.ID),
		Name:       info.Name,
		Complexity: info.Complexity,
		Steps:      t.Len(),
		Message:    last.Description,
		Result: map[string]any{
			"comparisons": last.Comparisons,
			"swaps":       last.Swaps,
		},
	}

	if !info.IsSearch() {
		s.Result["sorted_array"] = last.Values()
		return s
	}

	target, _ := t.Target()
	position := -1
	if found := last.Flagged(trace.Found); len(found) == 1 {
		position = found[0]
	}
	s.Result["array"] = last.Values()
	s.Result["target"] = target
	s.Result["found"] = position >= 0
	s.Result["position"] = position
	return s
}
