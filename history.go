package pageroutes

import (
	"fmt"
	"strings"
)

// History selects the navigation strategy: which paths reach the server and
// how hrefs are written.
type History int

const (
	// WebHistory mounts every route at its own path.
	WebHistory History = iota
	// HashHistory keeps the route in the URL fragment, so only "/" is served.
	HashHistory
)

// ParseHistory accepts "web" or "hash". The empty string is WebHistory.
func ParseHistory(s string) (History, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "web":
		return WebHistory, nil
	case "hash":
		return HashHistory, nil
	default:
		return 0, fmt.Errorf("unknown history mode %q (must be web or hash)", s)
	}
}

func (h History) String() string {
	switch h {
	case WebHistory:
		return "web"
	case HashHistory:
		return "hash"
	default:
		return fmt.Sprintf("History(%d)", int(h))
	}
}

// Href returns the link for a route path.
func (h History) Href(path string) string {
	if h == HashHistory {
		if path == HomePath {
			return HomePath
		}
		return "/#" + path
	}
	return path
}

// mounted reports whether the server sees requests for path.
func (h History) mounted(path string) bool {
	return h != HashHistory || path == HomePath
}
