package algorithms

import (
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/trace"
)

type ID string

const (
	Bubble    ID = "bubble"
	Quick     ID = "quick"
	Merge     ID = "merge"
	Selection ID = "selection"
	Insertion ID = "insertion"
	Linear    ID = "linear"
	Binary    ID = "binary"
)

type Kind string

const (
	Sorting   Kind = "sorting"
	Searching Kind = "searching"
)

// Info describes an algorithm for catalogues and stats displays.
type Info struct {
	ID          ID     `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Kind        Kind   `json:"kind" yaml:"kind"`
	Complexity  string `json:"complexity" yaml:"complexity"`
	Description string `json:"description" yaml:"description"`
}

func (i Info) IsSearch() bool { return i.Kind == Searching }

var catalogue = []Info{
	{Bubble, "Bubble Sort", Sorting, "O(n²)", "Repeatedly swaps adjacent out-of-order pairs"},
	{Quick, "Quick Sort", Sorting, "O(n log n)", "Lomuto partition around the last element"},
	{Merge, "Merge Sort", Sorting, "O(n log n)", "Stable divide and conquer with a merge pass"},
	{Selection, "Selection Sort", Sorting, "O(n²)", "Moves the minimum of the unsorted suffix forward"},
	{Insertion, "Insertion Sort", Sorting, "O(n²)", "Sinks each element into the sorted prefix"},
	{Linear, "Linear Search", Searching, "O(n)", "Scans every position until the target is found"},
	{Binary, "Binary Search", Searching, "O(log n)", "Halves a sorted search window on every probe"},
}

// Registry maps algorithm ids to their generators.
type Registry struct {
	sorters   map[ID]func([]int) *trace.Trace
	searchers map[ID]func([]int, int) *trace.Trace
	info      map[ID]Info
}

func NewRegistry() *Registry {
	r := &Registry{
		sorters:   make(map[ID]func([]int) *trace.Trace),
		searchers: make(map[ID]func([]int, int) *trace.Trace),
		info:      make(map[ID]Info),
	}

	r.sorters[Bubble] = BubbleSort
	r.sorters[Quick] = QuickSort
	r.sorters[Merge] = MergeSort
	r.sorters[Selection] = SelectionSort
	r.sorters[Insertion] = InsertionSort

	r.searchers[Linear] = LinearSearch
	r.searchers[Binary] = BinarySearch

	for _, in := range catalogue {
		r.info[in.ID] = in
	}
	return r
}

var defaultRegistry = NewRegistry()

// Run generates the trace of algorithm id over values. A nil target for a
// search algorithm falls back to the first value, or zero when values is
// empty. Sorting algorithms ignore target.
func Run(id ID, values []int, target *int) (*trace.Trace, error) {
	return defaultRegistry.Run(id, values, target)
}

func (r *Registry) Run(id ID, values []int, target *int) (*trace.Trace, error) {
	if fn, ok := r.sorters[id]; ok {
		return fn(values), nil
	}
	if fn, ok := r.searchers[id]; ok {
		t := DefaultTarget(values)
		if target != nil {
			t = *target
		}
		return fn(values, t), nil
	}
	return nil, trace.Invalid("unknown algorithm " + strconv.Quote(string(id)))
}

func (r *Registry) Lookup(id ID) (Info, bool) {
	in, ok := r.info[id]
	return in, ok
}

// List returns the registered algorithms in catalogue order.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.info))
	for _, in := range r.info {
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool { return catalogueIndex(out[i].ID) < catalogueIndex(out[j].ID) })
	return out
}

func catalogueIndex(id ID) int {
	for i, in := range catalogue {
		if in.ID == id {
			return i
		}
	}
	return len(catalogue)
}

func Lookup(id ID) (Info, bool) { return defaultRegistry.Lookup(id) }
func List() []Info              { return defaultRegistry.List() }

// ParseID accepts the short id, the snake_case name used by the HTTP
// collaborator ("bubble_sort") and the display name ("Bubble Sort").
func ParseID(name string) (ID, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	s = strings.TrimSuffix(strings.TrimSuffix(s, " sort"), " search")
	id := ID(strings.TrimSpace(s))
	if _, ok := Lookup(id); !ok {
		return "", trace.Invalid("unknown algorithm " + strconv.Quote(name))
	}
	return id, nil
}

// DefaultTarget is the fallback search target: the first value, or zero.
func DefaultTarget(values []int) int {
	if len(values) == 0 {
		return 0
	}
	return values[0]
}

// ParseTarget reads a user-supplied target with the same leading-integer
// rule as custom input, so "15" and "15.0" both mean 15. Text without one
// yields nil, which [Run] replaces with [DefaultTarget].
func ParseTarget(text string) *int {
	v, ok := input.ParseInt(text)
	if !ok {
		return nil
	}
	return &v
}
