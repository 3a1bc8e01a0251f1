package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// BubbleSort records adjacent-pair passes with a strict > comparison, so
// equal values keep their relative order.
func BubbleSort(values []int) *trace.Trace {
	r := newRecorder(values)
	n := len(r.work)

	for i := 0; i < n-1; i++ {
		settled := span(trace.Sorted, n-i, n-1)
		for j := 0; j < n-i-1; j++ {
			r.comparisons++
			r.record(fmt.Sprintf("Comparing elements at positions %d and %d", j, j+1),
				combine(at(trace.Comparing, j, j+1), settled))

			if r.value(j) > r.value(j+1) {
				r.swap(j, j+1)
				r.record(fmt.Sprintf("Swapped elements at positions %d and %d", j, j+1),
					combine(at(trace.Swapping, j, j+1), settled))
			}
		}
	}

	r.record("Sorting completed!", all(trace.Sorted))
	return r.finish(Bubble, nil)
}

// QuickSort uses Lomuto partitioning with the last element of each subrange
// as pivot. The left subrange is processed before the right one.
func QuickSort(values []int) *trace.Trace {
	r := newRecorder(values)

	var sortRange func(lo, hi int)
	sortRange = func(lo, hi int) {
		if lo < hi {
			p := r.partition(lo, hi)
			sortRange(lo, p-1)
			sortRange(p+1, hi)
		}
	}
	sortRange(0, len(r.work)-1)

	r.record("Quick sort completed!", all(trace.Sorted))
	return r.finish(Quick, nil)
}

func (r *recorder) partition(lo, hi int) int {
	pivot := r.value(hi)
	r.record(fmt.Sprintf("Selected pivot: %d at position %d", pivot, hi), at(trace.Pivot, hi))

	i := lo - 1
	for j := lo; j < hi; j++ {
		r.comparisons++
		r.record(fmt.Sprintf("Comparing %d with pivot %d", r.value(j), pivot),
			combine(at(trace.Pivot, hi), at(trace.Comparing, j)))

		if r.value(j) < pivot {
			i++
			if i != j {
				r.swap(i, j)
				r.record(fmt.Sprintf("Swapped %d and %d", r.value(j), r.value(i)),
					combine(at(trace.Pivot, hi), at(trace.Swapping, i, j)))
			}
		}
	}

	r.swap(i+1, hi)
	r.record(fmt.Sprintf("Placed pivot in correct position: %d", i+1),
		combine(at(trace.Swapping, i+1, hi), at(trace.Sorted, i+1)))
	return i + 1
}

// SelectionSort moves the minimum of the unsorted suffix to its front on
// each pass.
func SelectionSort(values []int) *trace.Trace {
	r := newRecorder(values)
	n := len(r.work)

	for i := 0; i < n-1; i++ {
		settled := span(trace.Sorted, 0, i-1)
		minIdx := i
		for j := i + 1; j < n; j++ {
			r.comparisons++
			r.record(fmt.Sprintf("Comparing %d with current minimum %d", r.value(j), r.value(minIdx)),
				combine(at(trace.Comparing, j), at(trace.Pivot, minIdx), settled))
			if r.value(j) < r.value(minIdx) {
				minIdx = j
			}
		}
		if minIdx != i {
			r.swap(i, minIdx)
			r.record(fmt.Sprintf("Swapped elements at positions %d and %d", i, minIdx),
				combine(at(trace.Swapping, i, minIdx), settled))
		}
	}

	r.record("Selection sort completed!", all(trace.Sorted))
	return r.finish(Selection, nil)
}

// InsertionSort sinks each element into the sorted prefix by adjacent
// exchanges. Equal values are never exchanged.
func InsertionSort(values []int) *trace.Trace {
	r := newRecorder(values)

	for i := 1; i < len(r.work); i++ {
		for j := i; j > 0; j-- {
			r.comparisons++
			r.record(fmt.Sprintf("Comparing %d and %d", r.value(j-1), r.value(j)),
				combine(at(trace.Comparing, j-1, j), span(trace.Pivot, 0, i)))
			if r.value(j-1) <= r.value(j) {
				break
			}
			r.swap(j-1, j)
			r.record(fmt.Sprintf("Swapped elements at positions %d and %d", j-1, j),
				combine(at(trace.Swapping, j-1, j), span(trace.Pivot, 0, i)))
		}
	}

	r.record("Insertion sort completed!", all(trace.Sorted))
	return r.finish(Insertion, nil)
}

// MergeSort is the top-down variant. While a range is merged the working
// array holds the merged prefix followed by what is left of both halves, so
// every step is a permutation of the input. Moving a right-half element in
// front of the remaining left half counts as one swap.
func MergeSort(values []int) *trace.Trace {
	r := newRecorder(values)

	var sortRange func(lo, hi int)
	sortRange = func(lo, hi int) {
		if lo >= hi {
			return
		}
		mid := lo + (hi-lo)/2
		sortRange(lo, mid)
		sortRange(mid+1, hi)
		r.merge(lo, mid, hi)
	}
	sortRange(0, len(r.work)-1)

	r.record("Merge sort completed!", all(trace.Sorted))
	return r.finish(Merge, nil)
}

func (r *recorder) merge(lo, mid, hi int) {
	window := span(trace.Pivot, lo, hi)

	// the next left element sits at k and the next right element at
	// j == k+pending
	k, pending, j := lo, mid-lo+1, mid+1
	for pending > 0 && j <= hi {
		r.comparisons++
		r.record(fmt.Sprintf("Comparing %d and %d", r.value(k), r.value(j)),
			combine(window, at(trace.Comparing, k, j)))
		if r.value(k) <= r.value(j) {
			pending--
		} else {
			r.rotateIn(k, j, window)
			j++
		}
		k++
	}
}

// rotateIn moves the element at from down to k and shifts k..from-1 up by
// one slot.
func (r *recorder) rotateIn(k, from int, window marker) {
	e := r.work[from]
	copy(r.work[k+1:from+1], r.work[k:from])
	r.work[k] = e
	r.swaps++
	r.record(fmt.Sprintf("Placed %d at position %d", e.Value, k),
		combine(window, at(trace.Swapping, k)))
}
