package lessons

import (
	"fmt"
	"math"
	"strings"
)

// derivative is the central difference of fn at x.
func derivative(fn func(float64) float64, x float64) float64 {
	const h = 0.001
	return (fn(x+h) - fn(x-h)) / (2 * h)
}

func square(x float64) float64 { return x * x }

type derivatives struct{ ctl controls }

func newDerivatives() *derivatives {
	return &derivatives{ctl: newControls(newParam("x₀", -2.5, 2.5, 0.1, 1.5))}
}

func (l *derivatives) HandleKey(key string) bool { return l.ctl.handle(key) }
func (l *derivatives) Controls() string          { return l.ctl.help() }

func slopeLabel(slope float64) string {
	switch {
	case slope > 0.1:
		return "⬆ Increasing"
	case slope < -0.1:
		return "⬇ Decreasing"
	default:
		return "➡ Near minimum"
	}
}

func (l *derivatives) Render(f Frame) Page {
	w := f.PanelWidth(2)
	x0 := l.ctl.params[0].value
	slope := derivative(square, x0)
	left := l.ctl.lines(w, f.ASCII)
	left = append(left,
		"",
		fmt.Sprintf("f(%.2f)  = %.3f", x0, square(x0)),
		fmt.Sprintf("f'(%.2f) = %.3f", x0, slope),
		slopeLabel(slope),
		"",
		"f'(x) > 0 → increasing",
		"f'(x) < 0 → decreasing",
		"f'(x) = 0 → local min/max",
	)
	plot := chart{xmin: -3, xmax: 2.9, ymin: -2, ymax: 9, vlines: []float64{x0}, ascii: f.ASCII, series: []series{
		{name: "tangent", glyph: '·', fn: func(x float64) float64 { return square(x0) + slope*(x-x0) }},
		{name: "f(x)=x²", glyph: '•', fn: square},
	}}
	return Page{
		Title: "Derivatives & Slopes",
		Intro: "The **derivative** f'(x) is the instantaneous slope at x: the slope of the tangent line. You won't compute them by hand in ML, but you need to know what they *mean*: the direction and speed of change.",
		Blocks: []Block{{Columns: 2, Panels: []Panel{
			{Title: "Move the point on f(x)=x²", Lines: left},
			{Title: "Curve and tangent", Lines: plot.render(w, 11)},
		}}},
	}
}

type gradient struct{ ctl controls }

func newGradient() *gradient {
	return &gradient{ctl: newControls(
		newParam("x", -3, 3, 0.5, 1),
		newParam("y", -3, 3, 0.5, 2),
	)}
}

func (l *gradient) HandleKey(key string) bool { return l.ctl.handle(key) }
func (l *gradient) Controls() string          { return l.ctl.help() }

// gradAt is ∇f for f(x,y) = x² + y².
func gradAt(x, y float64) (float64, float64) { return 2 * x, 2 * y }

var arrowGlyphs = []string{"→", "↗", "↑", "↖", "←", "↙", "↓", "↘"}
var asciiArrows = []string{">", "/", "^", "\\", "<", "/", "v", "\\"}

func arrowFor(dx, dy float64, ascii bool) string {
	if dx == 0 && dy == 0 {
		if ascii {
			return "o"
		}
		return "●"
	}
	angle := math.Atan2(dy, dx)
	idx := int(math.Round(angle/(math.Pi/4))+8) % 8
	if ascii {
		return asciiArrows[idx]
	}
	return arrowGlyphs[idx]
}

// field draws the gradient direction on a grid of sample points around the
// origin, with the probe point marked.
func (l *gradient) field(width int, ascii bool) []string {
	px, py := l.ctl.params[0].value, l.ctl.params[1].value
	cols := min(13, max(5, width/3))
	rows := 7
	out := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		y := 3 - float64(r)
		var b strings.Builder
		for c := 0; c < cols; c++ {
			x := -3 + 6*float64(c)/float64(cols-1)
			gx, gy := gradAt(x, y)
			glyph := arrowFor(gx, gy, ascii)
			if math.Abs(x-px) < 3.0/float64(cols-1) && y == math.Round(py) {
				glyph = "◆"
				if ascii {
					glyph = "#"
				}
			}
			b.WriteString(" " + glyph + " ")
		}
		out = append(out, b.String())
	}
	return out
}

func (l *gradient) Render(f Frame) Page {
	w := f.PanelWidth(2)
	x, y := l.ctl.params[0].value, l.ctl.params[1].value
	gx, gy := gradAt(x, y)
	probe := l.ctl.lines(w, f.ASCII)
	probe = append(probe,
		"",
		fmt.Sprintf("At point (%g, %g):", x, y),
		fmt.Sprintf("∇f = [%g, %g]  ← direction uphill", gx, gy),
		fmt.Sprintf("step: θ ← θ − α·∇f  (%s)", arrowFor(-gx, -gy, f.ASCII)),
	)
	return Page{
		Title: "Gradients",
		Intro: "The **gradient** generalizes the derivative to many variables. It is the vector `∇f = [∂f/∂x₁, ∂f/∂x₂, ...]` that points in the direction of *steepest increase*.",
		Blocks: []Block{
			{Columns: 2, Panels: []Panel{
				{Title: "Partial derivative ∂f/∂x", Lines: []string{
					"Change in f when only x varies.", "",
					"f(x,y) = x² + y²",
					"∂f/∂x  = 2x   (y constant)",
					"∂f/∂y  = 2y   (x constant)",
				}},
				{Title: "Gradient vector ∇f", Lines: []string{
					"All partials in one direction vector.", "",
					"∇f(x,y) = [∂f/∂x, ∂f/∂y]",
					"        = [2x, 2y]",
					"At (1, 2): ∇f = [2, 4]",
				}},
			}},
			{Columns: 2, Panels: []Panel{
				{Title: "Loss surface f = x² + y²", Lines: l.field(w, f.ASCII)},
				{Title: "Probe", Lines: probe},
			}},
		},
		Callout: &Callout{Title: "Gradient descent rule", Body: "Move opposite the gradient to go downhill: θ ← θ − α · ∇L(θ). The arrows point uphill; training steps the other way."},
	}
}

// descentLoss is the bowl minimized in the gradient descent lesson.
func descentLoss(x float64) float64 { return x*x - 4*x + 6 }
func descentGrad(x float64) float64 { return 2*x - 4 }

const (
	descentStart    = -1.5
	descentMaxSteps = 25
	descentTol      = 0.001
)

type descentPoint struct{ x, loss float64 }

// runDescent iterates from descentStart, stopping once the gradient is
// within tolerance or the step budget runs out. The starting point is the
// first entry.
func runDescent(lr float64) []descentPoint {
	x := descentStart
	hist := []descentPoint{{x, descentLoss(x)}}
	for i := 0; i < descentMaxSteps; i++ {
		x -= lr * descentGrad(x)
		hist = append(hist, descentPoint{x, descentLoss(x)})
		if math.Abs(descentGrad(x)) < descentTol {
			break
		}
	}
	return hist
}

func learningRateNote(lr float64) string {
	switch {
	case lr > 0.35:
		return "⚠ Too large: may overshoot or diverge!"
	case lr < 0.06:
		return "Very small: slow convergence"
	default:
		return "✓ Good learning rate"
	}
}

type gradientDescent struct {
	ctl   controls
	steps []descentPoint
}

func newGradientDescent() *gradientDescent {
	return &gradientDescent{ctl: newControls(newParam("Learning rate α", 0.02, 0.5, 0.01, 0.15))}
}

func (l *gradientDescent) Controls() string { return "←/→ learning rate  space run  tab reset" }

func (l *gradientDescent) HandleKey(key string) bool {
	switch key {
	case "space":
		l.steps = runDescent(l.ctl.params[0].value)
		return true
	case "tab":
		changed := l.steps != nil
		l.steps = nil
		return changed
	}
	if l.ctl.handle(key) {
		l.steps = nil
		return true
	}
	return false
}

func (l *gradientDescent) Render(f Frame) Page {
	w := f.PanelWidth(2)
	lr := l.ctl.params[0].value
	left := l.ctl.lines(w, f.ASCII)
	left = append(left, "")
	var marks []float64
	if len(l.steps) > 0 {
		last := l.steps[len(l.steps)-1]
		left = append(left, pairs(w,
			"Steps", fmt.Sprint(len(l.steps)-1),
			"Final x", fmt.Sprintf("%.4f", last.x),
			"Loss", fmt.Sprintf("%.4f", last.loss),
		)...)
		left = append(left, learningRateNote(lr))
		for _, s := range l.steps {
			marks = append(marks, s.x)
		}
	} else {
		left = append(left, "Press space to run descent", "from x = -1.5.")
	}
	plot := chart{xmin: -2, xmax: 7.9, ymin: 0, ymax: 0, vlines: marks, ascii: f.ASCII, series: []series{
		{name: "loss", glyph: '•', fn: descentLoss},
	}}
	return Page{
		Title: "Gradient Descent",
		Intro: "**Gradient descent** is the optimization algorithm that trains ML models. It repeatedly moves parameters in the direction of steepest loss decrease. The **learning rate α** sets the size of each step.",
		Blocks: []Block{{Columns: 2, Panels: []Panel{
			{Title: "Controls", Lines: left},
			{Title: "loss = x² − 4x + 6 (min at x=2)", Lines: plot.render(w, 11)},
		}}},
	}
}

type chainRule struct{}

var chainNodes = []string{"Input x", "Layer 1 g(x)", "Layer 2 f(g(x))", "Loss L"}

func (l *chainRule) diagram(width int, ascii bool) []string {
	arrow := " ──▶ "
	down := "  │\n  ▼"
	if ascii {
		arrow = " --> "
		down = "  |\n  v"
	}
	line := "[" + strings.Join(chainNodes, "]"+arrow+"[") + "]"
	if len([]rune(line)) <= width {
		return []string{line}
	}
	var out []string
	for i, n := range chainNodes {
		out = append(out, "["+n+"]")
		if i < len(chainNodes)-1 {
			out = append(out, strings.Split(down, "\n")...)
		}
	}
	return out
}

func (l *chainRule) Render(f Frame) Page {
	w := f.PanelWidth(1)
	lines := l.diagram(w, f.ASCII)
	lines = append(lines,
		"",
		"Backpropagation (chain rule):",
		"∂L/∂x = ∂L/∂f × ∂f/∂g × ∂g/∂x",
		"",
		"Worked example: g(x) = 3x, f(g) = g², x = 2",
		"g = 6, ∂g/∂x = 3, ∂f/∂g = 2g = 12",
		"∂L/∂x = 12 × 3 = 36",
		"",
	)
	lines = append(lines, wrap("Each layer multiplies in its local gradient. The error propagates backwards through the whole network, so millions of parameters update in one pass.", w)...)
	return Page{
		Title: "Chain Rule",
		Intro: "The **chain rule**: if y = f(g(x)), then `dy/dx = f'(g(x)) · g'(x)`. It differentiates composite functions, and a multi-layer neural network is exactly that.",
		Blocks: []Block{{Columns: 1, Panels: []Panel{
			{Title: "Backpropagation = chain rule applied", Lines: lines},
		}}},
		Callout: &Callout{Title: "Why it's powerful", Body: "Without the chain rule we could not train deep networks: it makes gradient computation linear in network size."},
	}
}
