// Package tui renders playback frames as plain ANSI text for non-interactive
// terminals.
package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/stats"
	"github.com/san-kum/algoviz/internal/trace"
)

const (
	width       = 70
	height      = 12
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer draws one frame per session change. Register OnChange as a
// session observer.
type LiveRenderer struct {
	mu     sync.Mutex
	out    io.Writer
	ansi   bool
	canvas [][]rune
	frames int
}

// NewLiveRenderer writes frames to out. With ansi false frames are appended
// without clearing the screen.
func NewLiveRenderer(out io.Writer, ansi bool) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{out: out, ansi: ansi, canvas: canvas}
}

func (r *LiveRenderer) OnChange(snap playback.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clear()
	r.drawBars(snap.Step)
	r.render(snap)
	r.frames++
}

// Frames reports how many frames were drawn.
func (r *LiveRenderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

// glyph marks an element's highlight in monochrome.
func glyph(f trace.Flag) rune {
	switch {
	case f.Has(trace.Found):
		return '@'
	case f.Has(trace.Swapping):
		return 'X'
	case f.Has(trace.Comparing):
		return '?'
	case f.Has(trace.Pivot):
		return 'P'
	case f.Has(trace.Sorted):
		return '='
	default:
		return '#'
	}
}

func (r *LiveRenderer) drawBars(step trace.Step) {
	n := len(step.Elements)
	if n == 0 {
		return
	}

	lo, hi := step.Elements[0].Value, step.Elements[0].Value
	for _, e := range step.Elements {
		if e.Value < lo {
			lo = e.Value
		}
		if e.Value > hi {
			hi = e.Value
		}
	}
	if lo > 0 {
		lo = 0
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	bw := width / n
	if bw < 1 {
		bw = 1
	}
	if bw > 3 {
		bw = 3
	}
	for i, e := range step.Elements {
		bh := (e.Value - lo) * height / span
		if bh < 1 {
			bh = 1
		}
		c := glyph(e.Flags)
		for y := height - 1; y >= height-bh; y-- {
			for dx := 0; dx < bw-1 || dx == 0; dx++ {
				r.set(i*bw+dx, y, c)
			}
		}
	}
}

func (r *LiveRenderer) render(snap playback.Snapshot) {
	info, _ := algorithms.Lookup(snap.Algorithm)
	st := stats.Of(snap, info)

	var b strings.Builder
	if r.ansi {
		b.WriteString(clearScreen)
	}
	b.WriteString(fmt.Sprintf("  %s  [%s]  step %d/%d\n", info.Name, snap.State, st.Step, st.Total))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString(fmt.Sprintf("  %s\n", snap.Step.Description))
	b.WriteString(fmt.Sprintf("  comparisons=%d swaps=%d complexity=%s\n", st.Comparisons, st.Swaps, st.Complexity))

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() {
	if r.ansi {
		fmt.Fprint(r.out, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.ansi {
		fmt.Fprint(r.out, showCursor)
	}
}
