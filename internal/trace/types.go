package trace

import "strings"

// Flag is a set of highlight annotations on an element.
type Flag uint8

const (
	Comparing Flag = 1 << iota
	Swapping
	Pivot
	Sorted
	Found

	// None is the empty highlight set.
	None Flag = 0
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{Comparing, "comparing"},
	{Swapping, "swapping"},
	{Pivot, "pivot"},
	{Sorted, "sorted"},
	{Found, "found"},
}

func (f Flag) Has(o Flag) bool  { return o != None && f&o == o }
func (f Flag) With(o Flag) Flag { return f | o }

// Names lists the flags in declaration order.
func (f Flag) Names() []string {
	names := make([]string, 0, len(flagNames))
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return names
}

func (f Flag) String() string {
	if f == None {
		return "none"
	}
	return strings.Join(f.Names(), "|")
}

// Element is one array slot inside a step.
type Element struct {
	Value int  `json:"value"`
	ID    int  `json:"id"`
	Flags Flag `json:"flags"`
}

// Elements builds unflagged elements with ids assigned by position.
func Elements(values []int) []Element {
	out := make([]Element, len(values))
	for i, v := range values {
		out[i] = Element{Value: v, ID: i}
	}
	return out
}

// Step is one recorded moment of a run.
type Step struct {
	Elements    []Element `json:"elements"`
	Comparisons int       `json:"comparisons"`
	Swaps       int       `json:"swaps"`
	Description string    `json:"description"`
}

func (s Step) Clone() Step {
	c := s
	c.Elements = make([]Element, len(s.Elements))
	copy(c.Elements, s.Elements)
	return c
}

func (s Step) Values() []int {
	out := make([]int, len(s.Elements))
	for i, e := range s.Elements {
		out[i] = e.Value
	}
	return out
}

// Flagged returns the indices whose flags contain f.
func (s Step) Flagged(f Flag) []int {
	var idx []int
	for i, e := range s.Elements {
		if e.Flags.Has(f) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Trace is the immutable record of a single algorithm run.
type Trace struct {
	algorithm string
	target    *int
	steps     []Step
}

// New takes ownership of steps. It fails when steps is empty.
func New(algorithm string, target *int, steps []Step) (*Trace, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyTrace
	}
	t := &Trace{algorithm: algorithm, steps: steps}
	if target != nil {
		v := *target
		t.target = &v
	}
	return t, nil
}

func (t *Trace) Algorithm() string { return t.algorithm }
func (t *Trace) Len() int          { return len(t.steps) }

// Target reports the search target, if the run had one.
func (t *Trace) Target() (int, bool) {
	if t.target == nil {
		return 0, false
	}
	return *t.target, true
}

// At returns a copy of step i. i must be within [0, Len()).
func (t *Trace) At(i int) Step { return t.steps[i].Clone() }

func (t *Trace) Last() Step { return t.At(len(t.steps) - 1) }

// Steps returns copies of every step in order.
func (t *Trace) Steps() []Step {
	out := make([]Step, len(t.steps))
	for i := range t.steps {
		out[i] = t.steps[i].Clone()
	}
	return out
}

// Clamp maps i into the valid index range.
func (t *Trace) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(t.steps) {
		return len(t.steps) - 1
	}
	return i
}
