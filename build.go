package pageroutes

import (
	"errors"
	"strings"

	"github.com/a-h/templ"
)

type buildOptions struct {
	conv Convention
}

// BuildOption configures Build and New.
type BuildOption func(*buildOptions)

// WithConvention overrides DefaultConvention.
func WithConvention(c Convention) BuildOption {
	return func(o *buildOptions) {
		o.conv = c
	}
}

func newBuildOptions(opts []BuildOption) buildOptions {
	o := buildOptions{conv: DefaultConvention}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Build produces the route table without validation. A key that does not
// follow the convention gets the empty name, which yields the route "/" and
// collides with Home; Pages.Mount rejects such a table. Use New to reject
// these keys up front.
func Build(home templ.Component, modules []Module, opts ...BuildOption) *Table {
	o := newBuildOptions(opts)
	pattern := o.conv.pattern()
	routes := make([]RouteDescriptor, 0, len(modules)+1)
	routes = append(routes, RouteDescriptor{Path: HomePath, Name: HomeName, Component: home})
	for _, m := range modules {
		var name string
		if match := pattern.FindStringSubmatch(m.Key); match != nil {
			name = match[1]
		}
		routes = append(routes, RouteDescriptor{Path: "/" + name, Name: name, Component: m.Component})
	}
	return newTable(routes)
}

// New produces the route table and rejects every module whose key does not
// follow the convention, whose name is not a single path segment, or whose
// name is already taken by Home or another module. All problems are returned
// together; each is a *ModuleError.
func New(home templ.Component, modules []Module, opts ...BuildOption) (*Table, error) {
	if home == nil {
		return nil, ErrNoHome
	}
	o := newBuildOptions(opts)
	pattern := o.conv.pattern()
	seen := make(map[string]bool, len(modules))
	var errs []error
	for _, m := range modules {
		match := pattern.FindStringSubmatch(m.Key)
		if match == nil {
			errs = append(errs, &ModuleError{Key: m.Key, Err: ErrNonConforming})
			continue
		}
		name := match[1]
		if err := validateName(name); err != nil {
			errs = append(errs, &ModuleError{Key: m.Key, Name: name, Err: err})
			continue
		}
		if name == HomeName {
			errs = append(errs, &ModuleError{Key: m.Key, Name: name, Err: ErrHomeCollision})
			continue
		}
		if seen[name] {
			errs = append(errs, &ModuleError{Key: m.Key, Name: name, Err: ErrDuplicateName})
			continue
		}
		seen[name] = true
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return Build(home, modules, opts...), nil
}

func validateName(name string) error {
	if name == "" {
		// would be mounted at "/"
		return ErrHomeCollision
	}
	if name == "." || name == ".." || strings.ContainsAny(name, "/{}") {
		return ErrInvalidName
	}
	return nil
}
