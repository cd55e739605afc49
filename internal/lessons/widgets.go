package lessons

import (
	"fmt"
	"math"
	"strings"
)

// param is one slider.
type param struct {
	label    string
	min, max float64
	step     float64
	value    float64
	initial  float64
}

func newParam(label string, min, max, step, value float64) *param {
	return &param{label: label, min: min, max: max, step: step, value: value, initial: value}
}

func (p *param) nudge(dir int) bool {
	v := p.value + float64(dir)*p.step
	v = math.Round(v*1e6) / 1e6
	v = math.Min(p.max, math.Max(p.min, v))
	if v == p.value {
		return false
	}
	p.value = v
	return true
}

func (p *param) reset() { p.value = p.initial }

// controls is a focusable group of sliders.
type controls struct {
	params []*param
	focus  int
}

func newControls(params ...*param) controls {
	return controls{params: params}
}

func (c *controls) handle(key string) bool {
	if len(c.params) == 0 {
		return false
	}
	switch key {
	case "left":
		return c.params[c.focus].nudge(-1)
	case "right":
		return c.params[c.focus].nudge(1)
	case "tab":
		if len(c.params) < 2 {
			return false
		}
		c.focus = (c.focus + 1) % len(c.params)
		return true
	}
	return false
}

func (c *controls) help() string {
	if len(c.params) > 1 {
		return "←/→ adjust  tab next slider"
	}
	return "←/→ adjust"
}

func (c *controls) lines(width int, ascii bool) []string {
	out := make([]string, 0, len(c.params)*2)
	for i, p := range c.params {
		marker := "  "
		if i == c.focus && len(c.params) > 1 {
			marker = "› "
			if ascii {
				marker = "> "
			}
		}
		val := fmt.Sprintf("%.2f", p.value)
		label := marker + p.label
		pad := max(1, width-len([]rune(label))-len(val))
		out = append(out, label+strings.Repeat(" ", pad)+val)
		out = append(out, "  "+slider(p, max(4, width-2), ascii))
	}
	return out
}

func slider(p *param, width int, ascii bool) string {
	track, knob := "─", "●"
	if ascii {
		track, knob = "-", "o"
	}
	span := p.max - p.min
	pos := 0
	if span > 0 {
		pos = int(math.Round((p.value - p.min) / span * float64(width-1)))
	}
	return strings.Repeat(track, pos) + knob + strings.Repeat(track, max(0, width-1-pos))
}

// meter draws a horizontal fill bar for frac in [0,1].
func meter(frac float64, width int, ascii bool) string {
	full, empty := "█", "░"
	if ascii {
		full, empty = "#", "."
	}
	frac = math.Min(1, math.Max(0, frac))
	n := int(math.Round(frac * float64(width)))
	return strings.Repeat(full, n) + strings.Repeat(empty, width-n)
}

// columns lays out label/value pairs on one line each.
func pairs(width int, kv ...string) []string {
	out := make([]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		k, v := kv[i], kv[i+1]
		pad := max(1, width-len([]rune(k))-len([]rune(v)))
		out = append(out, k+strings.Repeat(" ", pad)+v)
	}
	return out
}

// wrap breaks text on spaces to fit width.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len([]rune(line))+1+len([]rune(w)) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	return out
}

func fmtSigned(v float64) string {
	if v < 0 {
		return fmt.Sprintf("− %.2f", -v)
	}
	return fmt.Sprintf("+ %.2f", v)
}
