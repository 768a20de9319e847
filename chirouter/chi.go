// Package chirouter adapts a chi router to pageroutes.Router.
package chirouter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackielii/pageroutes"
)

type chiRouter struct {
	router chi.Router
}

var _ pageroutes.Router = (*chiRouter)(nil)

// NewChiRouter wraps r. chi already treats "/" as the root only, so route
// paths are passed through unchanged.
func NewChiRouter(r chi.Router) *chiRouter {
	return &chiRouter{router: r}
}

// HandleMethod registers handler for method, or for every method when method
// is pageroutes.MethodAll or empty.
func (r *chiRouter) HandleMethod(method, path string, handler http.Handler) {
	if method == pageroutes.MethodAll || method == "" {
		r.router.Handle(path, handler)
		return
	}
	r.router.Method(method, path, handler)
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
