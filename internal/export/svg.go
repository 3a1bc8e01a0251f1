// Package export renders saved traces as standalone SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/algoviz/internal/trace"
)

// Palette holds the SVG colors for bars and highlights.
type Palette struct {
	Background string
	Text       string
	Bar        string
	Comparing  string
	Swapping   string
	Pivot      string
	Sorted     string
	Found      string
}

var DefaultPalette = Palette{
	Background: "#0a0a0a",
	Text:       "#e0e0e0",
	Bar:        "#00afff",
	Comparing:  "#ffd700",
	Swapping:   "#ff0000",
	Pivot:      "#af5fff",
	Sorted:     "#5fff00",
	Found:      "#00ff00",
}

// Color picks the fill of an element, Found winning over everything else.
func (p Palette) Color(f trace.Flag) string {
	switch {
	case f.Has(trace.Found):
		return p.Found
	case f.Has(trace.Swapping):
		return p.Swapping
	case f.Has(trace.Comparing):
		return p.Comparing
	case f.Has(trace.Pivot):
		return p.Pivot
	case f.Has(trace.Sorted):
		return p.Sorted
	default:
		return p.Bar
	}
}

// StepToSVG draws one bar per element of step with its value underneath.
func StepToSVG(step trace.Step, width, height int, p Palette) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, p.Background))

	n := len(step.Elements)
	if n > 0 {
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
		span := float64(hi - lo)
		if span == 0 {
			span = 1
		}

		const labelH = 16.0
		plotH := float64(height) - labelH
		slot := float64(width) / float64(n)
		bw := slot * 0.8

		for i, e := range step.Elements {
			h := float64(e.Value-lo) / span * plotH
			if h < 1 {
				h = 1
			}
			x := float64(i)*slot + (slot-bw)/2
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, plotH-h, bw, h, p.Color(e.Flags)))
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-size="10" font-family="monospace" text-anchor="middle">%d</text>
`, x+bw/2, float64(height)-4, p.Text, e.Value))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG draws values against their index as a polyline, e.g. the
// comparison counter of every step.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	lo -= span * 0.1
	span *= 1.2
	last := float64(len(values) - 1)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, DefaultPalette.Background, strokeColor))

	for i, v := range values {
		x := float64(i) / last * float64(width)
		y := float64(height) - (v-lo)/span*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
