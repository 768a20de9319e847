package pageroutes

import (
	"context"
	"errors"
	"io"
)

// page is a comparable component, so tests can check identity with assert.Same.
type page struct {
	body string
	err  error
}

func (p *page) Render(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, p.body); err != nil {
		return err
	}
	return p.err
}

func text(s string) *page { return &page{body: s} }

var errRender = errors.New("render failed")

// failing writes a partial body before failing.
func failing() *page { return &page{body: "partial", err: errRender} }
