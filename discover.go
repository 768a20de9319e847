package pageroutes

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Discover enumerates the page modules of fsys that follow conv. Keys are
// reported in conv's own form ("./pages/About.html"), in the lexical order of
// fs.Glob. Components are lazy html/template pages; see Template.
func Discover(fsys fs.FS, conv Convention) ([]Module, error) {
	files, err := fs.Glob(fsys, conv.Glob())
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", conv.Glob(), err)
	}
	modules := make([]Module, 0, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), conv.Suffix)
		modules = append(modules, Module{
			Key:       conv.Key(name),
			Component: Template(fsys, file),
		})
	}
	return modules, nil
}
