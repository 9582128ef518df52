package ext

import (
	"github.com/bmatcuk/doublestar/v4"

	tuih "github.com/hfridholm/tui.h"
)

// Search is a filtering name-path lookup over a Root's widget tree: given a
// glob pattern (matched with github.com/bmatcuk/doublestar/v4 against each
// widget's name path, built by joining its own and its named ancestors'
// names with "/"), it returns the matching paths. It walks the tree itself
// and does not use the core space-separated lookup (path.go's Path) — it's
// a bulk search convenience an application might use to build, say, a
// command palette.
type Search struct {
	Root *tuih.Root
}

// NewSearch wraps a root for pattern-based widget lookup.
func NewSearch(root *tuih.Root) *Search {
	return &Search{Root: root}
}

// Match returns the name-path of every widget under root whose path matches
// pattern, e.g. "main/*/status".
func (s *Search) Match(pattern string) []string {
	var matches []string
	var walk func(w *tuih.Widget, prefix string)
	walk = func(w *tuih.Widget, prefix string) {
		path := prefix
		if w.Name != "" {
			if path != "" {
				path += "/"
			}
			path += w.Name
		}
		if ok, _ := doublestar.Match(pattern, path); ok {
			matches = append(matches, path)
		}
		if p, isParent := w.AsParent(); isParent {
			for _, c := range p.Children {
				walk(c, path)
			}
		}
	}

	for _, w := range s.Root.Widgets {
		walk(w, "")
	}
	if s.Root.Active != nil {
		for _, w := range s.Root.Active.Widgets {
			walk(w, "")
		}
	}
	return matches
}
