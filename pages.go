package pageroutes

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// MiddlewareFunc wraps the handler of a single route.
type MiddlewareFunc = func(http.Handler, RouteDescriptor) http.Handler

// LayoutFunc wraps a page body into a full document. It is skipped for htmx
// partial requests.
type LayoutFunc func(route RouteDescriptor, body templ.Component) templ.Component

// Pages mounts route tables on a Router.
type Pages struct {
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []MiddlewareFunc
	layout      LayoutFunc
	history     History
	logger      *slog.Logger
}

func NewPages(options ...func(*Pages)) *Pages {
	p := &Pages{
		logger: slog.New(slog.DiscardHandler),
	}
	p.onError = func(w http.ResponseWriter, r *http.Request, err error) {
		p.logger.Error("render page", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) func(*Pages) {
	return func(p *Pages) {
		p.onError = onError
	}
}

// WithMiddlewares appends route middlewares. Later middlewares wrap earlier
// ones, so the last one added runs first.
func WithMiddlewares(middlewares ...MiddlewareFunc) func(*Pages) {
	return func(p *Pages) {
		p.middlewares = append(p.middlewares, middlewares...)
	}
}

func WithLayout(layout LayoutFunc) func(*Pages) {
	return func(p *Pages) {
		p.layout = layout
	}
}

func WithHistory(h History) func(*Pages) {
	return func(p *Pages) {
		p.history = h
	}
}

func WithLogger(logger *slog.Logger) func(*Pages) {
	return func(p *Pages) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Mount registers a GET handler for every route of table the history mode
// lets through. Nothing is registered if the table is rejected.
func (p *Pages) Mount(router Router, table *Table) error {
	if table == nil || table.Len() == 0 {
		return errors.New("mount: empty route table")
	}
	if err := p.checkTable(table); err != nil {
		return fmt.Errorf("mount: %w", err)
	}
	mc := &mountContext{table: table, history: p.history}
	for route := range table.All() {
		if !p.history.mounted(route.Path) {
			continue
		}
		handler := p.buildHandler(route)
		for _, mw := range p.middlewares {
			handler = mw(handler, route)
		}
		handler = withRoute(mc, route, handler)
		router.HandleMethod(http.MethodGet, route.Path, handler)
		p.logger.Debug("mounted route", "name", route.Name, "path", route.Path, "history", p.history.String())
	}
	return nil
}

func (p *Pages) checkTable(table *Table) error {
	paths := make(map[string]string, table.Len())
	var errs []error
	for route := range table.All() {
		if route.Component == nil {
			errs = append(errs, fmt.Errorf("route %q has no component", route.Path))
			continue
		}
		if err := validatePath(route.Path); err != nil {
			errs = append(errs, fmt.Errorf("route %q path %q: %w", route.Name, route.Path, err))
			continue
		}
		if prev, ok := paths[route.Path]; ok {
			errs = append(errs, fmt.Errorf("%w %q: %q and %q", ErrDuplicatePath, route.Path, prev, route.Name))
			continue
		}
		paths[route.Path] = route.Name
	}
	return errors.Join(errs...)
}

// validatePath rejects paths a router would read as anything but literal
// segments: "{id}" is a wildcard in both ServeMux and chi.
func validatePath(path string) error {
	if path == HomePath {
		return nil
	}
	for _, seg := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		if seg == "" {
			continue
		}
		if err := validateName(seg); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pages) buildHandler(route RouteDescriptor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		comp := route.Component
		if p.layout != nil && !isPartial(r) {
			comp = p.layout(route, comp)
		}
		bw := newBuffered(w)
		if err := comp.Render(r.Context(), bw); err != nil {
			bw.discard()
			retargetBody(w, r)
			p.onError(w, r, fmt.Errorf("render %s: %w", route.Name, err))
			return
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
		}
		if err := bw.close(); err != nil {
			p.logger.Warn("write response", "path", r.URL.Path, "error", err)
		}
	})
}

func withRoute(mc *mountContext, route RouteDescriptor, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := mountCtx.WithValue(r.Context(), mc)
		ctx = routeCtx.WithValue(ctx, &route)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
