// Package patterns stores named cell patterns that the stamp tool places
// relative to an anchor cell.
package patterns

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrPatternNotFound is returned by Load for names that were never registered.
var ErrPatternNotFound = errors.New("patterns: pattern not found")

// Offset is a cell position relative to the stamp anchor.
type Offset struct {
	DX int `yaml:"dx"`
	DY int `yaml:"dy"`
}

// Pattern is an immutable named list of offsets.
type Pattern struct {
	name  string
	cells []Offset
}

// New builds a pattern from the given offsets. The slice is copied.
func New(name string, cells []Offset) Pattern {
	return Pattern{name: name, cells: slices.Clone(cells)}
}

// Name returns the registered name.
func (p Pattern) Name() string { return p.name }

// Len returns the number of cells in the pattern.
func (p Pattern) Len() int { return len(p.cells) }

// Cells returns a copy of the pattern offsets.
func (p Pattern) Cells() []Offset { return slices.Clone(p.cells) }

// Each calls fn for every offset in order without copying.
func (p Pattern) Each(fn func(Offset)) {
	for _, o := range p.cells {
		fn(o)
	}
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (w, h int) {
	if len(p.cells) == 0 {
		return 0, 0
	}
	minX, minY := p.cells[0].DX, p.cells[0].DY
	maxX, maxY := minX, minY
	for _, o := range p.cells[1:] {
		minX, maxX = min(minX, o.DX), max(maxX, o.DX)
		minY, maxY = min(minY, o.DY), max(maxY, o.DY)
	}
	return maxX - minX + 1, maxY - minY + 1
}

// Catalog maps pattern names to patterns.
type Catalog struct {
	patterns map[string]Pattern
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{patterns: map[string]Pattern{}}
}

// Register adds or replaces a pattern under its name.
func (c *Catalog) Register(p Pattern) error {
	if p.name == "" {
		return errors.New("patterns: empty pattern name")
	}
	if len(p.cells) == 0 {
		return fmt.Errorf("patterns: pattern %q has no cells", p.name)
	}
	c.patterns[p.name] = p
	return nil
}

// Load returns the pattern registered under name.
func (c *Catalog) Load(name string) (Pattern, error) {
	p, ok := c.patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrPatternNotFound, name)
	}
	return p, nil
}

// Names lists the registered pattern names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.patterns))
	for name := range c.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a catalog holding the same patterns.
func (c *Catalog) Clone() *Catalog {
	out := NewCatalog()
	for name, p := range c.patterns {
		out.patterns[name] = p
	}
	return out
}
