package algorithms

import (
	"fmt"
	"sort"

	"github.com/san-kum/algoviz/internal/trace"
)

// LinearSearch scans left to right and stops at the first match. An empty
// input records a single not-found step.
func LinearSearch(values []int, target int) *trace.Trace {
	r := newRecorder(values)

	for i, e := range r.work {
		r.comparisons++
		if e.Value == target {
			r.record(fmt.Sprintf("Found target %d at position %d!", target, i),
				at(trace.Comparing.With(trace.Found), i))
			return r.finish(Linear, &target)
		}
		r.record(fmt.Sprintf("Checking position %d: %d ≠ %d", i, e.Value, target),
			at(trace.Comparing, i))
	}

	if len(r.work) == 0 {
		r.record(fmt.Sprintf("Target %d not found in array", target), none)
	}
	return r.finish(Linear, &target)
}

// BinarySearch sorts a private copy ascending before halving, so callers may
// pass unsorted input. Element ids keep their pre-sort positions.
func BinarySearch(values []int, target int) *trace.Trace {
	r := newRecorder(values)
	sort.SliceStable(r.work, func(i, j int) bool { return r.work[i].Value < r.work[j].Value })
	r.record("Array sorted for binary search", all(trace.Sorted))

	left, right := 0, len(r.work)-1
	for left <= right {
		mid := left + (right-left)/2
		r.comparisons++
		probe := combine(span(trace.Pivot, left, right), at(trace.Comparing, mid))
		v := r.value(mid)

		switch {
		case v == target:
			r.record(fmt.Sprintf("Checking middle element at position %d: %d", mid, v), probe)
			r.record(fmt.Sprintf("Found target %d at position %d!", target, mid), at(trace.Found, mid))
			return r.finish(Binary, &target)
		case v < target:
			r.record(fmt.Sprintf("Checking middle element at position %d: %d < %d, searching right half", mid, v, target), probe)
			left = mid + 1
		default:
			r.record(fmt.Sprintf("Checking middle element at position %d: %d > %d, searching left half", mid, v, target), probe)
			right = mid - 1
		}
	}

	r.record(fmt.Sprintf("Target %d not found in array", target), none)
	return r.finish(Binary, &target)
}
