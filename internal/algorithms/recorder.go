package algorithms

import "github.com/san-kum/algoviz/internal/trace"

// marker decides the highlight set of index i for one step.
type marker func(i int) trace.Flag

func none(int) trace.Flag { return trace.None }

func all(f trace.Flag) marker {
	return func(int) trace.Flag { return f }
}

func at(f trace.Flag, idx ...int) marker {
	return func(i int) trace.Flag {
		for _, k := range idx {
			if k == i {
				return f
			}
		}
		return trace.None
	}
}

// span flags every index in [lo, hi].
func span(f trace.Flag, lo, hi int) marker {
	return func(i int) trace.Flag {
		if i >= lo && i <= hi {
			return f
		}
		return trace.None
	}
}

func combine(ms ...marker) marker {
	return func(i int) trace.Flag {
		f := trace.None
		for _, m := range ms {
			f = f.With(m(i))
		}
		return f
	}
}

// recorder owns the working copy of an array and the steps taken so far.
// Elements in work never carry flags; flags exist only in recorded steps.
type recorder struct {
	work        []trace.Element
	comparisons int
	swaps       int
	steps       []trace.Step
}

func newRecorder(values []int) *recorder {
	return &recorder{work: trace.Elements(values)}
}

func (r *recorder) swap(i, j int) {
	r.work[i], r.work[j] = r.work[j], r.work[i]
	r.swaps++
}

func (r *recorder) value(i int) int { return r.work[i].Value }

func (r *recorder) record(desc string, mark marker) {
	snap := make([]trace.Element, len(r.work))
	for i, e := range r.work {
		e.Flags = mark(i)
		snap[i] = e
	}
	r.steps = append(r.steps, trace.Step{
		Elements:    snap,
		Comparisons: r.comparisons,
		Swaps:       r.swaps,
		Description: desc,
	})
}

func (r *recorder) finish(id ID, target *int) *trace.Trace {
	t, err := trace.New(string(id), target, r.steps)
	if err != nil {
		// every generator records a terminal step
		panic(err)
	}
	return t
}
