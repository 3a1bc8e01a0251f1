package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/trace"
)

const (
	barRune   = '█'
	emptyRune = ' '
)

type cell struct {
	r     rune
	color lipgloss.Color
}

// Canvas is a grid of colored cells. Row 0 is the top line.
type Canvas struct {
	Width, Height int
	grid          [][]cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]cell, h)}
	for i := range c.grid {
		c.grid[i] = make([]cell, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Set(x, y int, r rune, color lipgloss.Color) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.grid[y][x] = cell{r: r, color: color}
}

func (c *Canvas) Clear() {
	for y := range c.grid {
		for x := range c.grid[y] {
			c.grid[y][x] = cell{r: emptyRune}
		}
	}
}

// String renders the grid, grouping runs of equal color into one style call.
func (c *Canvas) String() string {
	var b strings.Builder
	for y, row := range c.grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].color == row[start].color {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:x] {
				run.WriteRune(cl.r)
			}
			if row[start].color == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(row[start].color).Render(run.String()))
			}
			start = x
		}
	}
	return b.String()
}

// barLayout returns the column width and gap that fit n bars into width.
func barLayout(n, width int) (int, int) {
	if n == 0 {
		return 0, 0
	}
	gap := 1
	bw := (width - (n-1)*gap) / n
	if bw < 1 {
		bw, gap = 1, 0
	}
	if bw > 4 {
		bw = 4
	}
	return bw, gap
}

// DrawBars draws one vertical bar per element of step, heights scaled
// between the smallest and largest value, colored by the element's flags.
func DrawBars(c *Canvas, step trace.Step, t Theme) {
	c.Clear()
	n := len(step.Elements)
	if n == 0 || c.Height == 0 {
		return
	}

	lo, hi := 0, 0
	for i, e := range step.Elements {
		if i == 0 || e.Value < lo {
			lo = e.Value
		}
		if i == 0 || e.Value > hi {
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

	bw, gap := barLayout(n, c.Width)
	for i, e := range step.Elements {
		h := (e.Value - lo) * c.Height / span
		if h < 1 {
			h = 1
		}
		color := t.FlagColor(e.Flags)
		x0 := i * (bw + gap)
		for y := c.Height - 1; y >= c.Height-h; y-- {
			for dx := 0; dx < bw; dx++ {
				c.Set(x0+dx, y, barRune, color)
			}
		}
	}
}
