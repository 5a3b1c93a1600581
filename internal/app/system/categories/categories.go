// Package categories holds the coarse category table used to place catalog
// activities in the dashboard grid.
//
// The table is loaded once at startup (embedded YAML, optionally overridden by
// a file) and injected into the consumers that need it. It is never mutated
// after construction.
//
// Classification rule: an activity belongs to coarse category C when its
// category code starts with any prefix registered under C. When the prefixes
// of two categories both match, the first category in declaration order wins.
package categories

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CodeSeparator separates the main category from the rest of a category code
// ("IH-Op" -> "IH").
const CodeSeparator = "-"

// Category is one coarse category with its ordered prefixes.
type Category struct {
	Name     string   `yaml:"name" json:"name"`
	Main     string   `yaml:"main" json:"main"`
	Prefixes []string `yaml:"prefixes" json:"prefixes"`
}

// Table is the immutable, ordered set of coarse categories.
type Table struct {
	cats []Category
}

type tableFile struct {
	Categories []Category `yaml:"categories"`
}

// Parse decodes a YAML category table and validates it.
func Parse(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode category table: %w", err)
	}
	return New(f.Categories)
}

// LoadFile reads and parses a YAML category table from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category table %q: %w", path, err)
	}
	return Parse(data)
}

// New builds a validated table from the given categories. The slice is copied.
func New(cats []Category) (*Table, error) {
	if len(cats) == 0 {
		return nil, errors.New("category table is empty")
	}

	seen := make(map[string]bool, len(cats))
	out := make([]Category, 0, len(cats))
	for i, c := range cats {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("category %d has no name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate category %q", name)
		}
		seen[name] = true

		prefixes := make([]string, 0, len(c.Prefixes))
		for _, p := range c.Prefixes {
			if p = strings.TrimSpace(p); p != "" {
				prefixes = append(prefixes, p)
			}
		}
		if len(prefixes) == 0 {
			return nil, fmt.Errorf("category %q has no prefixes", name)
		}

		main := strings.TrimSpace(c.Main)
		if main == "" {
			main = MainCategory(prefixes[0])
		}

		out = append(out, Category{Name: name, Main: main, Prefixes: prefixes})
	}

	return &Table{cats: out}, nil
}

// Classify returns the name of the first coarse category whose prefixes match
// the category code. ok is false when none matches.
func (t *Table) Classify(code string) (name string, ok bool) {
	for _, c := range t.cats {
		for _, p := range c.Prefixes {
			if strings.HasPrefix(code, p) {
				return c.Name, true
			}
		}
	}
	return "", false
}

// Names returns the coarse category names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cats))
	for i, c := range t.cats {
		names[i] = c.Name
	}
	return names
}

// Categories returns a copy of the table entries in declaration order.
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.cats))
	for i, c := range t.cats {
		out[i] = Category{
			Name:     c.Name,
			Main:     c.Main,
			Prefixes: append([]string(nil), c.Prefixes...),
		}
	}
	return out
}

// Has reports whether name is a coarse category in the table.
func (t *Table) Has(name string) bool {
	for _, c := range t.cats {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Len returns the number of coarse categories.
func (t *Table) Len() int {
	return len(t.cats)
}

// MainCategory returns the part of a category code before the first
// separator. Codes without a separator are returned unchanged.
func MainCategory(code string) string {
	main, _, _ := strings.Cut(code, CodeSeparator)
	return main
}
