package model

import "strings"

// FurnitureKind is a catalog entry: a named fixed footprint.
type FurnitureKind struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the footprint area of the kind.
func (k FurnitureKind) Area() float64 {
	return k.Width * k.Height
}

// Catalog is a read-only table of furniture kinds. It is built once and
// passed to every component that resolves furniture names; it is safe
// for concurrent use because nothing mutates it after construction.
type Catalog struct {
	kinds map[string]FurnitureKind
	order []string
}

// NewCatalog builds a catalog from the given kinds. Later duplicates of a
// name replace earlier ones but keep the first position.
func NewCatalog(kinds ...FurnitureKind) Catalog {
	c := Catalog{kinds: make(map[string]FurnitureKind, len(kinds))}
	for _, k := range kinds {
		if _, ok := c.kinds[k.Name]; !ok {
			c.order = append(c.order, k.Name)
		}
		c.kinds[k.Name] = k
	}
	return c
}

// DefaultCatalog returns the built-in furniture catalog.
func DefaultCatalog() Catalog {
	return NewCatalog(
		FurnitureKind{Name: "Bed", Width: 4, Height: 2},
		FurnitureKind{Name: "Table", Width: 2, Height: 2},
		FurnitureKind{Name: "Chair", Width: 1, Height: 1},
		FurnitureKind{Name: "Sofa", Width: 3, Height: 2},
		FurnitureKind{Name: "Wardrobe", Width: 2, Height: 3},
		FurnitureKind{Name: "Desk", Width: 3, Height: 1},
		FurnitureKind{Name: "Bookshelf", Width: 2, Height: 2},
		FurnitureKind{Name: "Dining Table", Width: 3, Height: 3},
	)
}

// Lookup returns the kind registered under name. Surrounding whitespace is
// ignored; matching is otherwise exact.
func (c Catalog) Lookup(name string) (FurnitureKind, bool) {
	k, ok := c.kinds[strings.TrimSpace(name)]
	return k, ok
}

// Names returns the kind names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Kinds returns all kinds in catalog order.
func (c Catalog) Kinds() []FurnitureKind {
	out := make([]FurnitureKind, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.kinds[name])
	}
	return out
}

// Len returns the number of kinds in the catalog.
func (c Catalog) Len() int {
	return len(c.order)
}

// Resolve maps names to kinds, preserving order and duplicates.
// Names the catalog does not know are returned separately.
func (c Catalog) Resolve(names []string) (kinds []FurnitureKind, unknown []string) {
	for _, n := range names {
		k, ok := c.Lookup(n)
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		kinds = append(kinds, k)
	}
	return kinds, unknown
}
