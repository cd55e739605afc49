package lessons

import (
	"fmt"
	"strings"
)

type tensorRank struct {
	name    string
	shape   string
	example string
	desc    string
	viz     []string
}

var tensorRanks = []tensorRank{
	{name: "Scalar", shape: "()", example: "42.0", desc: "A single number, such as a loss value or one weight.",
		viz: []string{"┌────┐", "│ 42 │", "└────┘"}},
	{name: "Vector", shape: "(3,)", example: "[0.2, 0.8, 1.5]", desc: "A 1D array, such as one sample with 3 features.",
		viz: []string{"[ 0.2 | 0.8 | 1.5 ]"}},
	{name: "Matrix", shape: "(2, 3)", example: "[[1,2,3],[4,5,6]]", desc: "A 2D array, such as 2 samples × 3 features.",
		viz: []string{"┌ 1 2 3 ┐", "└ 4 5 6 ┘"}},
	{name: "3D Tensor", shape: "(2, 3, 3)", example: "Image: (H, W, C)", desc: "A 3D array, such as an image with height × width × color channels.",
		viz: []string{"    ┌─────┐", "  ┌─────┐B│", "┌─────┐G│─┘", "│  R  │─┘", "└─────┘"}},
}

type tensors struct{ rank int }

func newTensors() *tensors { return &tensors{rank: 2} }

func (l *tensors) Controls() string { return "←/→ change rank" }

func (l *tensors) HandleKey(key string) bool {
	switch key {
	case "left":
		if l.rank > 0 {
			l.rank--
			return true
		}
	case "right", "tab":
		if l.rank < len(tensorRanks)-1 {
			l.rank++
			return true
		}
	}
	return false
}

func (l *tensors) Render(f Frame) Page {
	w := f.PanelWidth(2)
	cur := tensorRanks[l.rank]
	tabs := make([]string, len(tensorRanks))
	for i := range tensorRanks {
		if i == l.rank {
			tabs[i] = fmt.Sprintf("[Rank %d]", i)
		} else {
			tabs[i] = fmt.Sprintf(" Rank %d ", i)
		}
	}
	info := []string{strings.Join(tabs, " "), "", cur.name, "Shape: " + cur.shape, "", cur.example, ""}
	info = append(info, wrap(cur.desc, w)...)

	viz := cur.viz
	if f.ASCII {
		viz = make([]string, len(cur.viz))
		for i, line := range cur.viz {
			viz[i] = asciiBoxes.Replace(line)
		}
	}
	return Page{
		Title: "Tensors & Tensor Rank",
		Intro: "A **tensor** is the fundamental data structure in ML frameworks. Its **rank** is the number of dimensions. Step through the ranks to explore.",
		Blocks: []Block{{Columns: 2, Panels: []Panel{
			{Title: cur.name, Lines: info},
			{Title: "Shape " + cur.shape, Lines: viz},
		}}},
		Callout: &Callout{Title: "TensorFlow / NumPy", Body: "A shape like [32, 224, 224, 3] is 32 images, each 224×224 pixels with 3 RGB channels. That is how batches of images are stored."},
	}
}

var asciiBoxes = strings.NewReplacer("┌", "+", "┐", "+", "└", "+", "┘", "+", "─", "-", "│", "|")

var (
	matA = [2][2]int{{1, 2}, {3, 4}}
	matB = [2][2]int{{5, 6}, {7, 8}}
)

type mulStep struct{ row, col int }

var mulSteps = []mulStep{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

// matMul walks through C = A × B one output cell at a time. step is -1
// before the first cell is revealed.
type matMul struct{ step int }

func newMatMul() *matMul { return &matMul{step: -1} }

func (l *matMul) Controls() string { return "→ next step  ← back  space reset" }

func (l *matMul) HandleKey(key string) bool {
	switch key {
	case "right":
		if l.step < len(mulSteps)-1 {
			l.step++
			return true
		}
	case "left":
		if l.step > -1 {
			l.step--
			return true
		}
	case "space":
		changed := l.step != -1
		l.step = -1
		return changed
	}
	return false
}

func product() [2][2]int {
	var c [2][2]int
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			c[i][j] = matA[i][0]*matB[0][j] + matA[i][1]*matB[1][j]
		}
	}
	return c
}

func (l *matMul) revealed(row, col int) bool {
	for i := 0; i <= l.step && i < len(mulSteps); i++ {
		if mulSteps[i].row == row && mulSteps[i].col == col {
			return true
		}
	}
	return false
}

func (l *matMul) calc() string {
	if l.step < 0 {
		return "Press → to compute the first cell."
	}
	s := mulSteps[l.step]
	c := product()
	return fmt.Sprintf("C[%d][%d] = %d×%d + %d×%d = %d", s.row, s.col,
		matA[s.row][0], matB[0][s.col], matA[s.row][1], matB[1][s.col], c[s.row][s.col])
}

func (l *matMul) Render(f Frame) Page {
	c := product()
	var cur *mulStep
	if l.step >= 0 {
		cur = &mulSteps[l.step]
	}
	cell := func(v string, hot bool) string {
		if hot {
			return "[" + fmt.Sprintf("%2s", v) + "]"
		}
		return " " + fmt.Sprintf("%2s", v) + " "
	}
	rows := []string{"    A              B              C"}
	for i := 0; i < 2; i++ {
		var a, b, out string
		for j := 0; j < 2; j++ {
			a += cell(fmt.Sprint(matA[i][j]), cur != nil && cur.row == i)
			b += cell(fmt.Sprint(matB[i][j]), cur != nil && cur.col == j)
			v := "?"
			if l.revealed(i, j) {
				v = fmt.Sprint(c[i][j])
			}
			out += cell(v, cur != nil && cur.row == i && cur.col == j)
		}
		op, eq := "   ", "   "
		if i == 0 {
			op, eq = " × ", " = "
		}
		rows = append(rows, a+op+b+eq+out)
	}
	rows = append(rows, "", l.calc(), fmt.Sprintf("Step %d of %d", l.step+1, len(mulSteps)))
	return Page{
		Title: "Matrix Multiplication",
		Intro: "Each element `C[i][j]` is the dot product of row i of A and column j of B. The **inner dimensions must match**: A is (m×n), B is (n×p), so C is (m×p).",
		Blocks: []Block{{Columns: 1, Panels: []Panel{
			{Title: "A × B = C", Lines: rows},
		}}},
		Callout: &Callout{Title: "Why it matters", Body: "Every neural network layer is a matrix multiply: output = W @ input + b. GPUs are fast at ML because they excel at matrix multiplication."},
	}
}
