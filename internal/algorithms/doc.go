// Package algorithms turns an input array into a [trace.Trace].
//
// Each generator is a pure function: it copies its input, runs the textbook
// algorithm on the copy and records a [trace.Step] at every comparison and
// exchange. Generators are total; any finite input yields a non-empty trace.
//
// [Run] is the single entry point used by the playback session, the CLI and
// storage. It resolves an [ID] through the [Registry] and falls back to
// [DefaultTarget] when a search is given no target. [ParseTarget] is the one
// parser for user-typed targets.
package algorithms
