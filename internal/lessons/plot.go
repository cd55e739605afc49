package lessons

import (
	"fmt"
	"math"
	"strings"
)

type series struct {
	name  string
	glyph rune
	fn    func(x float64) float64
}

// chart is a text plot of one or more functions over [xmin, xmax]. A zero
// y range is computed from the samples.
type chart struct {
	xmin, xmax float64
	ymin, ymax float64
	series     []series
	vlines     []float64
	ascii      bool
}

const yLabelWidth = 7

func (c chart) render(width, height int) []string {
	plotW := max(8, width-yLabelWidth)
	height = max(3, height)

	xs := make([]float64, plotW)
	for i := range xs {
		xs[i] = c.xmin + (c.xmax-c.xmin)*float64(i)/float64(plotW-1)
	}
	ymin, ymax := c.ymin, c.ymax
	if ymin == ymax {
		ymin, ymax = math.Inf(1), math.Inf(-1)
		for _, s := range c.series {
			for _, x := range xs {
				y := s.fn(x)
				if math.IsNaN(y) || math.IsInf(y, 0) {
					continue
				}
				ymin = math.Min(ymin, y)
				ymax = math.Max(ymax, y)
			}
		}
		if math.IsInf(ymin, 0) {
			ymin, ymax = -1, 1
		}
		if ymax-ymin < 1e-9 {
			ymin, ymax = ymin-1, ymax+1
		}
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", plotW))
	}
	rowOf := func(y float64) int {
		return int(math.Round((ymax - y) / (ymax - ymin) * float64(height-1)))
	}
	colOf := func(x float64) int {
		return int(math.Round((x - c.xmin) / (c.xmax - c.xmin) * float64(plotW-1)))
	}

	hAxis, vAxis, mark := '─', '│', '┊'
	if c.ascii {
		hAxis, vAxis, mark = '-', '|', ':'
	}
	if ymin <= 0 && ymax >= 0 {
		r := rowOf(0)
		for i := range grid[r] {
			grid[r][i] = hAxis
		}
	}
	if c.xmin <= 0 && c.xmax >= 0 {
		col := colOf(0)
		for r := range grid {
			grid[r][col] = vAxis
		}
	}
	for _, vx := range c.vlines {
		if vx < c.xmin || vx > c.xmax {
			continue
		}
		col := colOf(vx)
		for r := range grid {
			grid[r][col] = mark
		}
	}
	for _, s := range c.series {
		g := c.glyph(s)
		for i, x := range xs {
			y := s.fn(x)
			if math.IsNaN(y) || y < ymin || y > ymax {
				continue
			}
			grid[rowOf(y)][i] = g
		}
	}

	out := make([]string, 0, height+2)
	for r, row := range grid {
		label := strings.Repeat(" ", yLabelWidth)
		switch r {
		case 0:
			label = fmt.Sprintf("%6.1f ", ymax)
		case height - 1:
			label = fmt.Sprintf("%6.1f ", ymin)
		}
		out = append(out, label+string(row))
	}
	lo, hi := fmt.Sprintf("%g", round2(c.xmin)), fmt.Sprintf("%g", round2(c.xmax))
	gap := max(1, plotW-len(lo)-len(hi))
	out = append(out, strings.Repeat(" ", yLabelWidth)+lo+strings.Repeat(" ", gap)+hi)
	if len(c.series) > 1 {
		legend := make([]string, 0, len(c.series))
		for _, s := range c.series {
			legend = append(legend, string(c.glyph(s))+" "+s.name)
		}
		out = append(out, strings.Repeat(" ", yLabelWidth)+strings.Join(legend, "  "))
	}
	return out
}

func (c chart) glyph(s series) rune {
	if c.ascii && s.glyph > 127 {
		return 'o'
	}
	return s.glyph
}

// bars is a vertical bar chart. Values above highlight use the alternate
// glyph.
func bars(values []float64, width, height int, highlight float64, ascii bool) []string {
	if len(values) == 0 {
		return nil
	}
	full, alt := '█', '▓'
	if ascii {
		full, alt = '#', '@'
	}
	n := len(values)
	bw := max(1, (width-(n-1))/n)
	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak <= 0 {
		peak = 1
	}
	out := make([]string, 0, height+1)
	for r := 0; r < height; r++ {
		threshold := peak * float64(height-r) / float64(height)
		var b strings.Builder
		for i, v := range values {
			if i > 0 {
				b.WriteByte(' ')
			}
			ch := ' '
			if v >= threshold-peak/float64(2*height) {
				ch = full
				if highlight > 0 && v > highlight {
					ch = alt
				}
			}
			b.WriteString(strings.Repeat(string(ch), bw))
		}
		out = append(out, b.String())
	}
	out = append(out, fmt.Sprintf("max %g", round2(peak)))
	return out
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
