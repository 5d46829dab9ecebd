// Package plot renders the demos' charts as text: a shaded raster for
// two-class decision boundaries and a sparkline for loss curves. It stands
// in for the plotting library the material usually leans on, since these
// demos only ever draw to a terminal.
package plot

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Point is a labeled sample to overlay on a boundary raster.
type Point struct {
	X, Y  float64
	Class int
}

// Options control the raster size and padding around the samples.
type Options struct {
	Width, Height int     // cells; defaults 60×24
	Pad           float64 // extra space past the sample bounding box; default 0.5
}

var (
	class0Fill = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))  // cyan-ish
	class1Fill = lipgloss.NewStyle().Foreground(lipgloss.Color("208")) // orange
	class0Pt   = lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true)
	class1Pt   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// Boundary rasters the predictor over the padded bounding box of pts.
// Each cell is classified at its center; sample points overdraw their
// cell. Rows run top to bottom with y decreasing, matching the usual
// chart orientation.
func Boundary(predict func(x, y float64) int, pts []Point, opts Options) string {
	if opts.Width <= 0 {
		opts.Width = 60
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	if opts.Pad == 0 {
		opts.Pad = 0.5
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		xMin, xMax = math.Min(xMin, p.X), math.Max(xMax, p.X)
		yMin, yMax = math.Min(yMin, p.Y), math.Max(yMax, p.Y)
	}
	if len(pts) == 0 {
		xMin, xMax, yMin, yMax = 0, 1, 0, 1
	}
	xMin, xMax = xMin-opts.Pad, xMax+opts.Pad
	yMin, yMax = yMin-opts.Pad, yMax+opts.Pad

	cellW := (xMax - xMin) / float64(opts.Width)
	cellH := (yMax - yMin) / float64(opts.Height)

	// sample markers by cell
	type cell struct{ row, col int }
	markers := make(map[cell]int, len(pts))
	for _, p := range pts {
		col := int((p.X - xMin) / cellW)
		row := int((yMax - p.Y) / cellH)
		if col >= 0 && col < opts.Width && row >= 0 && row < opts.Height {
			markers[cell{row, col}] = p.Class
		}
	}

	var b strings.Builder
	for row := 0; row < opts.Height; row++ {
		y := yMax - (float64(row)+0.5)*cellH
		for col := 0; col < opts.Width; col++ {
			x := xMin + (float64(col)+0.5)*cellW

			if class, ok := markers[cell{row, col}]; ok {
				if class == 1 {
					b.WriteString(class1Pt.Render("●"))
				} else {
					b.WriteString(class0Pt.Render("○"))
				}
				continue
			}

			if predict(x, y) == 1 {
				b.WriteString(class1Fill.Render("▒"))
			} else {
				b.WriteString(class0Fill.Render("░"))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

var sparks = []rune("▁▂▃▄▅▆▇█")

// LossCurve compresses a loss history into a one-line sparkline of the
// given width. Values scale against the observed min and max; a flat
// history renders as a flat line.
func LossCurve(losses []float64, width int) string {
	if len(losses) == 0 || width <= 0 {
		return ""
	}
	if width > len(losses) {
		width = len(losses)
	}

	// bucket means
	buckets := make([]float64, width)
	per := float64(len(losses)) / float64(width)
	for i := 0; i < width; i++ {
		lo, hi := int(float64(i)*per), int(float64(i+1)*per)
		if hi <= lo {
			hi = lo + 1
		}
		if hi > len(losses) {
			hi = len(losses)
		}

		var sum float64
		for _, v := range losses[lo:hi] {
			sum += v
		}
		buckets[i] = sum / float64(hi-lo)
	}

	min, max := buckets[0], buckets[0]
	for _, v := range buckets {
		min, max = math.Min(min, v), math.Max(max, v)
	}

	var b strings.Builder
	for _, v := range buckets {
		idx := 0
		if max > min {
			idx = int((v - min) / (max - min) * float64(len(sparks)-1))
		}
		b.WriteRune(sparks[idx])
	}

	return b.String()
}
