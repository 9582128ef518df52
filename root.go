package tuih

import "fmt"

// Cursor is the terminal cursor's requested position and visibility,
// per spec.md §3. It is set during the render pass by an ANSI "place
// cursor" escape (code 5, see ansi.go) seen while painting the focused
// widget, and consumed by the main loop (app.go) to move the real cursor.
type Cursor struct {
	X, Y   int
	Active bool
}

// Root is the single owner of the whole widget tree, per spec.md §3: screen
// dimensions, top-level widgets (outside any menu), the menu list, the
// active menu, the focused widget, global color, the cursor, global hooks,
// the color-pair cache, and the running flag that the main loop polls.
//
// Root owns its Cache explicitly (spec.md §9's "replace the global color-pair
// cache with an explicit cache owned by the root") — there is no
// process-wide cache anywhere in this package.
type Root struct {
	Width, Height int

	Widgets []*Widget
	Menus   []*Menu
	Active  *Menu

	Focused *Widget

	Color Pair
	Hooks Hooks

	Cursor Cursor

	Cache *Cache
	Log    *LogBuffer

	Running bool
}

// RootConfig configures a Root (spec.md §6).
type RootConfig struct {
	Color Pair
	Hooks Hooks
}

// NewRoot creates a root bound to a color-pair allocator (typically a
// Backend). Per spec.md §7's Fatal error class, the caller is expected to
// have already failed out of terminal initialization before reaching here;
// NewRoot itself cannot fail.
func NewRoot(cfg RootConfig, allocator PairAllocator, width, height int) *Root {
	r := &Root{
		Width:   width,
		Height:  height,
		Color:   cfg.Color,
		Hooks:   cfg.Hooks,
		Cache:   NewCache(allocator),
		Log:     NewLogBuffer(256),
		Running: true,
	}
	return r
}

// AddTop appends a top-level widget to the root (outside any menu), wiring
// its back-references and firing its Init hook.
func (r *Root) AddTop(w *Widget) {
	w.Parent = nil
	w.Menu = nil
	w.Root = r
	r.Widgets = append(r.Widgets, w)
	fireInit(w)
}

// AddMenu installs a menu into the root. The first menu added becomes
// active automatically.
func (r *Root) AddMenu(m *Menu) {
	m.root = r
	for _, w := range m.Widgets {
		w.Root = r
	}
	r.Menus = append(r.Menus, m)
	if r.Active == nil {
		r.Active = m
	}
}

// Logf appends a formatted diagnostic entry to the root's debug ring
// buffer (SPEC_FULL A.1). It never writes to the real terminal.
func (r *Root) Logf(source, level, format string, args ...any) {
	r.Log.Add(source, level, format, args...)
}

// SwitchMenu makes the named menu active, returning false if no such menu
// exists. This is a thin accessor over the Active field spec.md §3 already
// names; it does not itself change focus (focus changes go through
// event.go's setFocus).
func (r *Root) SwitchMenu(name string) bool {
	for _, m := range r.Menus {
		if m.Name == name {
			r.Active = m
			return true
		}
	}
	return false
}

// Stop requests the main loop to exit after the current keypress's
// dispatch completes (spec.md §5's request-based cancellation).
func (r *Root) Stop() {
	r.Running = false
}

// Destroy fires Free hooks bottom-up across the whole tree: the root's
// top-level widgets, then every menu's top-level widgets, per spec.md §3's
// lifecycle.
func (r *Root) Destroy() {
	for _, w := range r.Widgets {
		freeTree(w)
	}
	for _, m := range r.Menus {
		for _, w := range m.Widgets {
			freeTree(w)
		}
	}
}

// Find resolves a widget by exact name across the root's own top-level
// widgets and the active menu's, searching each whole subtree depth-first.
// Unlike path.go's Path, it does not restrict the first name to top-level
// widgets.
func (r *Root) Find(name string) *Widget {
	for _, w := range r.Widgets {
		if found := findByName(w, name); found != nil {
			return found
		}
	}
	if r.Active != nil {
		if found := r.Active.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Describe returns a one-line debug summary of a widget: id/kind/rect/color/
// flags. It is never called from the core render/layout/event path —
// development use only (SPEC_FULL C.4).
func (r *Root) Describe(w *Widget) string {
	if w == nil {
		return "<nil>"
	}
	kind := [...]string{"parent", "text", "grid"}[w.Kind]
	return fmt.Sprintf("name=%q kind=%s rect=%v color=%v hidden=%v atomic=%v interact=%v visible=%v",
		w.Name, kind, w.rect, w.color, w.IsHidden, w.IsAtomic, w.IsInteract, w.isVisible)
}
