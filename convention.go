package pageroutes

import (
	"path"
	"regexp"
	"strings"
	"sync"
)

// Convention describes how page module keys are named: a fixed directory
// prefix and a fixed extension suffix around the route name.
type Convention struct {
	Prefix string
	Suffix string
}

// DefaultConvention matches keys like "./pages/About.html".
var DefaultConvention = Convention{Prefix: "./pages/", Suffix: ".html"}

var patterns sync.Map // Convention -> *regexp.Regexp

// pattern matches the prefix anywhere in the key and the suffix at its end,
// so "src/./pages/About.html" still names About.
func (c Convention) pattern() *regexp.Regexp {
	if re, ok := patterns.Load(c); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(regexp.QuoteMeta(c.Prefix) + "(.*)" + regexp.QuoteMeta(c.Suffix) + "$")
	actual, _ := patterns.LoadOrStore(c, re)
	return actual.(*regexp.Regexp)
}

// Name returns the middle segment of key and whether key follows the
// convention at all. The first occurrence of the prefix starts the name.
func (c Convention) Name(key string) (string, bool) {
	m := c.pattern().FindStringSubmatch(key)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Key is the inverse of Name.
func (c Convention) Key(name string) string {
	return c.Prefix + name + c.Suffix
}

// Glob returns the fs.Glob pattern that enumerates the convention's files in
// an fs.FS. fs.FS paths are unrooted, so a leading "./" is dropped.
func (c Convention) Glob() string {
	dir := strings.TrimPrefix(c.Prefix, "./")
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" || dir == "." {
		return "*" + c.Suffix
	}
	return path.Join(dir, "*"+c.Suffix)
}
