// Package playback drives a [trace.Trace] through time.
//
// A [Session] owns the trace of the current run, a cursor into it and the
// playback state:
//
//	Idle --Play--> Running --Play/Pause--> Paused --Play--> Running
//	Running --last step reached--> Completed
//	any --JumpTo--> Paused
//	any --Reset--> Idle
//
// While Running exactly one timer is armed through the session's
// [Scheduler]. Every transition that leaves Running, or changes the tick
// interval, stops that timer before arming another one, and a generation
// counter discards callbacks that were already in flight when the timer was
// stopped.
//
// # Thread Safety
//
// Session methods may be called from any goroutine; transitions are
// serialized by an internal mutex. Observers run after the mutex is released.
package playback
