package pageroutes

import (
	"net/http"

	"github.com/angelofallars/htmx-go"
)

// isPartial reports whether the request only wants the page body. Boosted
// links navigate whole pages, so they get the layout.
func isPartial(r *http.Request) bool {
	return htmx.IsHTMX(r) && !htmx.IsBoosted(r)
}

// retargetBody makes htmx replace the whole body with an error page instead of
// swapping it into the element that asked for a partial.
func retargetBody(w http.ResponseWriter, r *http.Request) {
	if !htmx.IsHTMX(r) {
		return
	}
	w.Header().Set("HX-Retarget", "body")
}
