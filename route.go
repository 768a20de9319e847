package pageroutes

import (
	"iter"
	"slices"

	"github.com/a-h/templ"
)

const (
	// HomeName is the name of the route that is always first in a table.
	HomeName = "Home"
	// HomePath is the path of the Home route.
	HomePath = "/"
)

// RouteDescriptor is one entry of a route table.
type RouteDescriptor struct {
	Path      string
	Name      string
	Component templ.Component
}

// Module is one entry of the discovery mapping: an identifier following the
// page convention and the component it resolves to.
type Module struct {
	Key       string
	Component templ.Component
}

// Table is an ordered, immutable sequence of route descriptors. The Home route
// is always at index 0. A Table must come from Build or New; the zero value
// has no Home and its accessors panic.
type Table struct {
	routes []RouteDescriptor
	byName map[string]int
}

func newTable(routes []RouteDescriptor) *Table {
	t := &Table{routes: routes, byName: make(map[string]int, len(routes))}
	for i, r := range routes {
		// first wins, so the degenerate "" route never shadows anything
		if _, ok := t.byName[r.Name]; !ok {
			t.byName[r.Name] = i
		}
	}
	return t
}

// Len returns the number of routes including Home.
func (t *Table) Len() int { return len(t.routes) }

// At returns the descriptor at index i.
func (t *Table) At(i int) RouteDescriptor { return t.routes[i] }

// Home returns the Home descriptor. It panics on a zero Table.
func (t *Table) Home() RouteDescriptor { return t.routes[0] }

// Routes returns a copy of the descriptors in table order.
func (t *Table) Routes() []RouteDescriptor { return slices.Clone(t.routes) }

// All iterates the descriptors in table order.
func (t *Table) All() iter.Seq[RouteDescriptor] {
	return func(yield func(RouteDescriptor) bool) {
		for _, r := range t.routes {
			if !yield(r) {
				return
			}
		}
	}
}

// Lookup returns the first descriptor with the given name.
func (t *Table) Lookup(name string) (RouteDescriptor, bool) {
	i, ok := t.byName[name]
	if !ok {
		return RouteDescriptor{}, false
	}
	return t.routes[i], true
}

// Equal reports whether both tables hold the same paths and names in the same
// order. Components are not compared: templ components are usually
// templ.ComponentFunc values, which are not comparable.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	return slices.EqualFunc(t.routes, o.routes, func(a, b RouteDescriptor) bool {
		return a.Path == b.Path && a.Name == b.Name
	})
}
