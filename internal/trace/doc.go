// Package trace defines the recorded form of an algorithm run.
//
// A run is captured as a [Trace]: an ordered, immutable sequence of [Step]
// values. Every Step owns a full snapshot of the array as [Element] values
// together with cumulative counters and a human readable description.
//
//   - [Flag]: highlight set carried by an Element within one Step
//   - [Element]: value, stable id and flags
//   - [Step]: snapshot plus comparisons/swaps counters
//   - [Trace]: the whole run, safe to share and scrub
//
// # Value Semantics
//
// Steps never alias each other or the array they were produced from. [Trace.At]
// hands out deep copies so a caller cannot alter recorded history.
package trace
