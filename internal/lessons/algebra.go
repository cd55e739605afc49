package lessons

import (
	"fmt"
	"math"
)

type variables struct{ ctl controls }

func newVariables() *variables {
	return &variables{ctl: newControls(
		newParam("a (slope / coefficient)", -4, 4, 0.1, 2),
		newParam("b (intercept / bias)", -5, 5, 0.1, 3),
	)}
}

func (l *variables) HandleKey(key string) bool { return l.ctl.handle(key) }
func (l *variables) Controls() string          { return l.ctl.help() }

func (l *variables) Render(f Frame) Page {
	w := f.PanelWidth(2)
	a, b := l.ctl.params[0].value, l.ctl.params[1].value
	left := l.ctl.lines(w, f.ASCII)
	left = append(left, "", fmt.Sprintf("f(x) = %.2f·x %s", a, fmtSigned(b)))
	plot := chart{xmin: -5, xmax: 5, ascii: f.ASCII, series: []series{
		{name: "f(x)", glyph: '•', fn: func(x float64) float64 { return a*x + b }},
	}}
	return Page{
		Title: "Variables & Functions",
		Intro: "A **variable** is a named value. In ML, `w` (weight) and `b` (bias) are the model's learnable variables.\n\n" +
			"A **function** maps inputs to outputs: `f(x) = a·x + b`. Adjust the sliders below.",
		Blocks: []Block{{Columns: 2, Panels: []Panel{
			{Title: "f(x) = a·x + b", Lines: left},
			{Title: "Graph", Lines: plot.render(w, 9)},
		}}},
		Callout: &Callout{Title: "ML Connection", Body: "In linear regression the model learns w and b to fit data, exactly like tuning a and b above."},
	}
}

type linearEq struct{ ctl controls }

func newLinearEq() *linearEq {
	return &linearEq{ctl: newControls(
		newParam("w₁ (weight for x₁)", -3, 3, 0.1, 1.5),
		newParam("w₂ (weight for x₂)", -3, 3, 0.1, -0.8),
		newParam("b (bias)", -5, 5, 0.1, 2),
		newParam("x₂ (fixed feature)", -3, 3, 0.1, 1),
	)}
}

func (l *linearEq) HandleKey(key string) bool { return l.ctl.handle(key) }
func (l *linearEq) Controls() string          { return l.ctl.help() }

// predict evaluates y = b + w1*x1 + w2*x2 with the current sliders.
func (l *linearEq) predict(x1 float64) float64 {
	p := l.ctl.params
	return p[2].value + p[0].value*x1 + p[1].value*p[3].value
}

func (l *linearEq) Render(f Frame) Page {
	w := f.PanelWidth(2)
	p := l.ctl.params
	left := l.ctl.lines(w, f.ASCII)
	left = append(left, "", fmt.Sprintf("y = %.1f + %.1f·x₁ + %.1f·%.1f", p[2].value, p[0].value, p[1].value, p[3].value))
	plot := chart{xmin: -5, xmax: 5, ascii: f.ASCII, series: []series{
		{name: "y", glyph: '•', fn: l.predict},
	}}
	return Page{
		Title: "Linear Equations",
		Intro: "The core ML equation is `y = b + w₁x₁ + w₂x₂`, where **x** are features, **w** are weights and **b** is the bias. Every linear model is built on it.",
		Blocks: []Block{{Columns: 2, Panels: []Panel{
			{Title: "y = b + w₁·x₁ + w₂·x₂", Lines: left},
			{Title: "y over x₁", Lines: plot.render(w, 11)},
		}}},
		Callout: &Callout{Title: "Foundation of ML", Body: "Every neural network is stacked linear equations plus nonlinear activations."},
	}
}

type logarithms struct{ ctl controls }

func newLogarithms() *logarithms {
	return &logarithms{ctl: newControls(newParam("x (probe)", 0.1, 10, 0.1, 1))}
}

func (l *logarithms) HandleKey(key string) bool { return l.ctl.handle(key) }
func (l *logarithms) Controls() string          { return l.ctl.help() }

func (l *logarithms) Render(f Frame) Page {
	w := f.PanelWidth(2)
	x := l.ctl.params[0].value
	plot := chart{xmin: 0.1, xmax: 9.9, ymin: -4, ymax: 4, vlines: []float64{x}, ascii: f.ASCII, series: []series{
		{name: "ln", glyph: '•', fn: math.Log},
		{name: "log₁₀", glyph: '+', fn: math.Log10},
		{name: "log₂", glyph: '*', fn: math.Log2},
	}}
	right := l.ctl.lines(w, f.ASCII)
	right = append(right, pairs(w,
		"ln(x)", fmt.Sprintf("%.3f", math.Log(x)),
		"log₁₀(x)", fmt.Sprintf("%.3f", math.Log10(x)),
		"log₂(x)", fmt.Sprintf("%.3f", math.Log2(x)),
	)...)
	right = append(right, "")
	right = append(right, pairs(w,
		"ln(1) = 0", "log of 1 is 0",
		"ln(e) = 1", "natural base",
		"ln(0) → −∞", "undefined at 0",
		"e^ln(x) = x", "log inverts exp",
	)...)
	return Page{
		Title: "Logarithms",
		Intro: "The **natural log** `ln(x)` (base e) appears all over ML: in the logistic regression loss `L = -[y·ln(p) + (1-y)·ln(1-p)]` and in softplus `ln(1 + eᶻ)`.",
		Blocks: []Block{{Columns: 2, Panels: []Panel{
			{Title: "ln, log₁₀, log₂", Lines: plot.render(w, 11)},
			{Title: "Identities", Lines: right},
		}}},
	}
}

func sigmoidFn(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

type sigmoid struct{ ctl controls }

func newSigmoid() *sigmoid {
	return &sigmoid{ctl: newControls(newParam("z (input)", -5, 5, 0.1, 0))}
}

func (l *sigmoid) HandleKey(key string) bool { return l.ctl.handle(key) }
func (l *sigmoid) Controls() string          { return l.ctl.help() }

func (l *sigmoid) Render(f Frame) Page {
	w := f.PanelWidth(2)
	z := l.ctl.params[0].value
	s := sigmoidFn(z)
	left := l.ctl.lines(w, f.ASCII)
	left = append(left,
		"",
		fmt.Sprintf("σ(%.2f) = %.4f", z, s),
		meter(s, w, f.ASCII),
		fmt.Sprintf("%.1f%% probability", s*100),
		"",
		"z ≪ 0 → σ ≈ 0 (unlikely)",
		"z = 0 → σ = 0.5 (uncertain)",
		"z ≫ 0 → σ ≈ 1 (very likely)",
	)
	plot := chart{xmin: -5, xmax: 5, ymin: -1.1, ymax: 1.5, vlines: []float64{z}, ascii: f.ASCII, series: []series{
		{name: "ReLU", glyph: '*', fn: func(x float64) float64 { return math.Max(0, x) }},
		{name: "tanh", glyph: '+', fn: math.Tanh},
		{name: "σ", glyph: '•', fn: sigmoidFn},
	}}
	return Page{
		Title: "Sigmoid Function",
		Intro: "Sigmoid maps any number into (0,1): `σ(z) = 1 / (1 + e⁻ᶻ)`. It turns a raw score into a **probability** and is used in logistic regression and as a neural network activation.",
		Blocks: []Block{{Columns: 2, Panels: []Panel{
			{Title: "Try it live", Lines: left},
			{Title: "σ, tanh and ReLU", Lines: plot.render(w, 12)},
		}}},
	}
}
