package tuih

// Menu is a named collection of top-level widgets forming one "page", per
// spec.md §3. A Root may hold several menus; exactly one is active at a
// time, and all of the active menu's top-level widgets participate in
// layout, render, and tab navigation alongside the root's own top-level
// widgets.
type Menu struct {
	Name  string
	Color Pair
	Hooks Hooks

	Widgets []*Widget

	root *Root
}

// MenuConfig configures a Menu (spec.md §6).
type MenuConfig struct {
	Name  string
	Color Pair
	Hooks Hooks
}

// NewMenu creates a menu. Use Root.AddMenu to install it.
func NewMenu(cfg MenuConfig) *Menu {
	return &Menu{Name: cfg.Name, Color: cfg.Color, Hooks: cfg.Hooks}
}

// AddTop appends a top-level widget to the menu, wiring its back-references
// (spec.md invariant I1) and firing its Init hook.
func (m *Menu) AddTop(w *Widget) {
	w.Parent = nil
	w.Menu = m
	w.Root = m.root
	m.Widgets = append(m.Widgets, w)
	fireInit(w)
}

// Find resolves a widget by exact name among this menu's top-level widgets
// and their descendants, depth-first. This differs from a single-token
// path.go Path lookup, which matches top-level widgets only.
func (m *Menu) Find(name string) *Widget {
	for _, w := range m.Widgets {
		if found := findByName(w, name); found != nil {
			return found
		}
	}
	return nil
}

func findByName(w *Widget, name string) *Widget {
	if w.Name == name {
		return w
	}
	if p, ok := w.AsParent(); ok {
		for _, c := range p.Children {
			if found := findByName(c, name); found != nil {
				return found
			}
		}
	}
	return nil
}
