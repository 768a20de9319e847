package pageroutes

import (
	"net/http"
)

// MethodAll registers a handler for every HTTP method. Mount itself only
// registers GET; the value is for callers sharing the router.
const MethodAll = "ALL"

// Router is an interface for registering HTTP routes.
// This simplified interface allows pageroutes to work with different routing implementations.
// Patterns are literal paths; "/" means the root only, not a catch-all.
type Router interface {
	HandleMethod(method, path string, handler http.Handler)
}

type stdRouter struct {
	router *http.ServeMux
}

// NewRouter creates a new router that wraps http.ServeMux.
// If router is nil, it uses http.DefaultServeMux.
//
// The root pattern "/" is registered as "/{$}" so that Home does not act as a
// catch-all for unknown paths.
func NewRouter(router *http.ServeMux) *stdRouter {
	if router == nil {
		router = http.DefaultServeMux
	}
	return &stdRouter{router: router}
}

func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if pattern == "/" {
		pattern = "/{$}"
	}
	if method != MethodAll && method != "" {
		pattern = method + " " + pattern
	}
	r.router.Handle(pattern, handler)
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
