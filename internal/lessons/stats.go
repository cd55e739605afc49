package lessons

import (
	"fmt"
	"math"
	"sort"
)

var meanMedianBase = []float64{4, 7, 13, 16, 21, 9, 3, 18, 5, 11}

const outlierValue = 200

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 0 {
		return (s[n/2-1] + s[n/2]) / 2
	}
	return s[n/2]
}

type meanMedian struct{ outlier bool }

func newMeanMedian() *meanMedian { return &meanMedian{} }

func (l *meanMedian) Controls() string { return "space toggle outlier" }

func (l *meanMedian) HandleKey(key string) bool {
	switch key {
	case "space", "tab":
		l.outlier = !l.outlier
		return true
	case "right":
		if !l.outlier {
			l.outlier = true
			return true
		}
	case "left":
		if l.outlier {
			l.outlier = false
			return true
		}
	}
	return false
}

func (l *meanMedian) values() []float64 {
	if l.outlier {
		return append(append([]float64(nil), meanMedianBase...), outlierValue)
	}
	return meanMedianBase
}

func (l *meanMedian) Render(f Frame) Page {
	w := f.PanelWidth(2)
	nums := l.values()
	m, md := mean(nums), median(nums)
	mode := "Normal data"
	if l.outlier {
		mode = fmt.Sprintf("With outlier (%d)", outlierValue)
	}
	left := []string{mode, ""}
	left = append(left, pairs(w, "Mean", fmt.Sprintf("%.2f", m), "Median", fmt.Sprintf("%.2f", md))...)
	if l.outlier {
		left = append(left, "", fmt.Sprintf("Outlier shifted the mean by %.1f points!", m-mean(meanMedianBase)))
	}
	sorted := append([]float64(nil), nums...)
	sort.Float64s(sorted)
	return Page{
		Title: "Mean, Median & Outliers",
		Intro: "The **mean** is sum / count. The **median** is the middle value once sorted. **Outliers** distort the mean dramatically but barely move the median, which matters for data quality in ML.",
		Blocks: []Block{{Columns: 2, Panels: []Panel{
			{Title: "Summary", Lines: left},
			{Title: "Sorted values", Lines: bars(sorted, w, 8, 100, f.ASCII)},
		}}},
	}
}

type stdDev struct{ ctl controls }

const stdDevMean = 50

func newStdDev() *stdDev {
	return &stdDev{ctl: newControls(newParam("σ (std deviation)", 1, 10, 0.5, 3))}
}

func (l *stdDev) HandleKey(key string) bool { return l.ctl.handle(key) }
func (l *stdDev) Controls() string          { return l.ctl.help() }

func normalPDF(x, mu, sigma float64) float64 {
	return 1 / (sigma * math.Sqrt(2*math.Pi)) * math.Exp(-0.5*math.Pow((x-mu)/sigma, 2))
}

func (l *stdDev) Render(f Frame) Page {
	w := f.PanelWidth(2)
	sigma := l.ctl.params[0].value
	left := l.ctl.lines(w, f.ASCII)
	left = append(left, "")
	left = append(left, pairs(w, "±1σ", "~68% of data", "±2σ", "~95% of data", "±3σ", "~99.7% of data")...)
	left = append(left, "", fmt.Sprintf("μ = %d", stdDevMean), fmt.Sprintf("σ = %g", sigma))
	plot := chart{xmin: 20, xmax: 79.25, ymin: 0, ymax: 0, ascii: f.ASCII,
		vlines: []float64{stdDevMean - sigma, stdDevMean, stdDevMean + sigma},
		series: []series{{name: "density", glyph: '•', fn: func(x float64) float64 {
			return normalPDF(x, stdDevMean, sigma) * 100
		}}},
	}
	return Page{
		Title: "Standard Deviation",
		Intro: "Standard deviation **σ** measures the typical distance from the mean: `σ = √(Σ(xᵢ−μ)²/n)`. Small σ means tightly clustered data, large σ means wide spread. It is central to **feature normalization**.",
		Blocks: []Block{{Columns: 2, Panels: []Panel{
			{Title: "Adjust spread", Lines: left},
			{Title: "Normal curve", Lines: plot.render(w, 11)},
		}}},
		Callout: &Callout{Title: "Z-score normalization", Body: "Models train better on normalized features: z = (x − μ) / σ gives mean 0 and std 1, equalizing scales across features."},
	}
}

var histogramData = []float64{3, 7, 7, 8, 9, 10, 11, 11, 12, 12, 13, 14, 14, 15, 15, 15, 16, 16, 17, 18, 18, 19, 20, 20, 21, 22, 23, 24, 25, 27, 28, 30, 32, 34, 35, 38, 40, 45, 50, 55}

type bin struct {
	lo, hi float64
	count  int
}

// binCounts splits data into n equal-width bins between its min and max.
// The last bin is closed so the maximum is counted.
func binCounts(data []float64, n int) []bin {
	if n <= 0 || len(data) == 0 {
		return nil
	}
	lo, hi := data[0], data[0]
	for _, v := range data {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	size := (hi - lo) / float64(n)
	out := make([]bin, n)
	for i := range out {
		b := bin{lo: lo + float64(i)*size}
		b.hi = lo + float64(i+1)*size
		for _, v := range data {
			if v >= b.lo && (v < b.hi || (i == n-1 && v <= hi)) {
				b.count++
			}
		}
		out[i] = b
	}
	return out
}

type histogram struct{ ctl controls }

func newHistogram() *histogram {
	return &histogram{ctl: newControls(newParam("Bins", 4, 20, 1, 10))}
}

func (l *histogram) HandleKey(key string) bool { return l.ctl.handle(key) }
func (l *histogram) Controls() string          { return l.ctl.help() }

func (l *histogram) Render(f Frame) Page {
	full := f.PanelWidth(1)
	n := int(l.ctl.params[0].value)
	bins := binCounts(histogramData, n)
	counts := make([]float64, len(bins))
	for i, b := range bins {
		counts[i] = float64(b.count)
	}
	lines := l.ctl.lines(full, f.ASCII)
	lines = append(lines, "")
	lines = append(lines, bars(counts, full, 8, 0, f.ASCII)...)
	lines = append(lines, fmt.Sprintf("%.0f … %.0f, bin width %.1f", bins[0].lo, bins[len(bins)-1].hi, bins[0].hi-bins[0].lo))

	nw := f.PanelWidth(3)
	return Page{
		Title: "Reading Histograms",
		Intro: "Histograms show how values are **distributed** across ranges (bins). A taller bar means more values there. They reveal skew, outliers and whether normalization is needed. Try changing the bin count.",
		Blocks: []Block{
			{Columns: 1, Panels: []Panel{{Title: fmt.Sprintf("Bins: %d", n), Lines: lines}}},
			{Columns: 3, Panels: []Panel{
				{Title: "Right-skewed ↗", Lines: wrap("Long tail to the right: most values are low.", nw)},
				{Title: "Fewer bins", Lines: wrap("Loses detail and hides structure.", nw)},
				{Title: "More bins", Lines: wrap("Reveals finer patterns but can be noisy.", nw)},
			}},
		},
	}
}
