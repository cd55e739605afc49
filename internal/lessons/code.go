package lessons

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// highlightPython colors a Python snippet for 256-color terminals. Plain
// text is returned in ASCII mode or when highlighting fails.
func highlightPython(code string, plain bool) []string {
	code = strings.TrimRight(code, "\n")
	if plain {
		return strings.Split(code, "\n")
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, code, "python", "terminal256", "monokai"); err != nil {
		return strings.Split(code, "\n")
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}
