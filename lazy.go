package pageroutes

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"sync"

	"github.com/a-h/templ"
)

type lazy struct {
	load func() (templ.Component, error)
}

// Lazy returns a component that calls load on first render and reuses its
// result afterwards. A load error is returned from every Render.
func Lazy(load func() (templ.Component, error)) templ.Component {
	return &lazy{load: sync.OnceValues(load)}
}

func (l *lazy) Render(ctx context.Context, w io.Writer) error {
	c, err := l.load()
	if err != nil {
		return err
	}
	if c == nil {
		return errors.New("lazy component resolved to nil")
	}
	return c.Render(ctx, w)
}

// Template returns a lazy component that parses the html/template file at
// name in fsys and executes it with the request's RouteData.
func Template(fsys fs.FS, name string) templ.Component {
	return Lazy(func() (templ.Component, error) {
		t, err := template.ParseFS(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return t.Execute(w, routeData(ctx))
		}), nil
	})
}
