package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML []byte

var (
	builtinOnce sync.Once
	builtinCat  *Catalog
	builtinErr  error
)

// Builtin returns the catalog shipped with the binary. It is parsed once.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtinCat, builtinErr = Parse(builtinYAML)
		if builtinErr != nil {
			builtinErr = fmt.Errorf("builtin catalog: %w", builtinErr)
		}
	})
	return builtinCat, builtinErr
}

// MustBuiltin panics when the embedded catalog is broken.
func MustBuiltin() *Catalog {
	c, err := Builtin()
	if err != nil {
		panic(err)
	}
	return c
}

func Parse(b []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	applyDefaults(&doc)
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return newCatalog(doc), nil
}

func applyDefaults(doc *Document) {
	if doc.Title == "" {
		doc.Title = "Prerequisites Learning Lab"
	}
	for i := range doc.Sections {
		if doc.Sections[i].Color == "" {
			doc.Sections[i].Color = "#94a3b8"
		}
		if doc.Sections[i].Icon == "" {
			doc.Sections[i].Icon = "•"
		}
	}
}
