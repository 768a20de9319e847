package pageroutes

import (
	"errors"
	"fmt"
)

var (
	ErrNonConforming = errors.New("key does not follow the page convention")
	ErrInvalidName   = errors.New("route name must be a single non-empty path segment")
	ErrDuplicateName = errors.New("duplicate route name")
	ErrHomeCollision = errors.New("route collides with Home")
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrNoHome        = errors.New("home component is nil")
)

// ModuleError reports a problem with a single discovered module.
type ModuleError struct {
	Key  string
	Name string
	Err  error
}

func (e *ModuleError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("module %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("module %q (name %q): %v", e.Key, e.Name, e.Err)
}

func (e *ModuleError) Unwrap() error { return e.Err }
