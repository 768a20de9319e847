// Package gen writes a checked-in Go registry of page modules, so a pages
// directory can be validated and compiled in instead of discovered at start.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/a-h/templ"
	"github.com/jackielii/pageroutes"
)

// Options controls the generated file.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// PagesImport is the import path of the package holding one component
	// constructor per page, e.g. About() for pages/About.templ.
	PagesImport string
	// PagesName is the local name of PagesImport; defaults to its last element.
	PagesName string
	// Var is the name of the generated slice; defaults to "Modules".
	Var string
	// Convention defaults to {"./pages/", ".templ"}.
	Convention pageroutes.Convention
}

var ErrNotExported = errors.New("page name is not an exported Go identifier")

type entry struct {
	Key  string
	Name string
}

// Names returns the page names of fsys under conv, in fs.Glob order.
func Names(fsys fs.FS, conv pageroutes.Convention) ([]string, error) {
	files, err := fs.Glob(fsys, conv.Glob())
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(path.Base(f), conv.Suffix))
	}
	return names, nil
}

// Generate validates the pages of fsys and writes the registry source to w.
func Generate(w io.Writer, fsys fs.FS, opts Options) error {
	opts.defaults()
	if !token.IsIdentifier(opts.Package) {
		return fmt.Errorf("gen: invalid package name %q", opts.Package)
	}
	if opts.PagesImport == "" {
		return errors.New("gen: pages import path is required")
	}
	names, err := Names(fsys, opts.Convention)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	if len(names) == 0 {
		return fmt.Errorf("gen: no pages match %s", opts.Convention.Glob())
	}
	if err := validate(names, opts.Convention); err != nil {
		return fmt.Errorf("gen: %w", err)
	}

	data := struct {
		Options
		Entries []entry
	}{Options: opts}
	for _, n := range names {
		data.Entries = append(data.Entries, entry{Key: opts.Convention.Key(n), Name: n})
	}

	var buf bytes.Buffer
	if err := registryTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("gen: format: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func (o *Options) defaults() {
	if o.PagesName == "" {
		o.PagesName = path.Base(o.PagesImport)
	}
	if o.Var == "" {
		o.Var = "Modules"
	}
	if o.Convention == (pageroutes.Convention{}) {
		o.Convention = pageroutes.Convention{Prefix: "./pages/", Suffix: ".templ"}
	}
}

// validate applies the rules of pageroutes.New plus the Go identifier rule.
func validate(names []string, conv pageroutes.Convention) error {
	modules := make([]pageroutes.Module, 0, len(names))
	var errs []error
	for _, n := range names {
		key := conv.Key(n)
		modules = append(modules, pageroutes.Module{Key: key})
		if !token.IsIdentifier(n) || !token.IsExported(n) {
			errs = append(errs, &pageroutes.ModuleError{Key: key, Name: n, Err: ErrNotExported})
		}
	}
	if _, err := pageroutes.New(templ.NopComponent, modules, pageroutes.WithConvention(conv)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

var registryTmpl = template.Must(template.New("registry").Parse(`// Code generated by pageroutes -gen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/a-h/templ"
	"github.com/jackielii/pageroutes"

	{{.PagesName}} {{printf "%q" .PagesImport}}
)

var {{.Var}} = []pageroutes.Module{
{{- range .Entries}}
	{Key: {{printf "%q" .Key}}, Component: pageroutes.Lazy(func() (templ.Component, error) { return {{$.PagesName}}.{{.Name}}(), nil })},
{{- end}}
}
`))
