// Package viz provides the interactive terminal player for algorithm traces.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: drives a playback session from keys and timer messages
//   - [Canvas]: colored cell grid the array bars are drawn on
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space   - Play/Pause
//	N/→     - Step forward
//	[ ]/←   - Jump one step back or forward
//	Home/End- Jump to the first or last step
//	+/-     - Change speed
//	R       - Reset to the original array
//	G       - Generate a new random array
//	A/Tab   - Cycle algorithms
//	C       - Enter custom input
//	F       - Enter search target
//	T       - Cycle color themes
//	?       - Show help overlay
//
// # Timers
//
// Session timers never touch the model directly. [Run] wires the session to
// a scheduler that posts each due callback to the program as a message, so
// every advance happens inside Update.
package viz
