package tuih

// Builder is a fluent configuration helper for assembling a widget tree,
// grounded on the teacher's chained-configuration style (e.g. its Style
// builder). It is a thin convenience layer over the plain NewParent/NewText/
// NewGrid constructors — nothing it does cannot be done by calling those
// directly.
type Builder struct {
	root *Root
}

// NewBuilder wraps a Root for fluent construction.
func NewBuilder(root *Root) *Builder {
	return &Builder{root: root}
}

// Parent creates and installs a top-level Parent widget on the root.
func (b *Builder) Parent(cfg ParentConfig) *Widget {
	w := NewParent(cfg)
	b.root.AddTop(w)
	return w
}

// Menu creates and installs a menu, returning it for further AddTop calls.
func (b *Builder) Menu(cfg MenuConfig) *Menu {
	m := NewMenu(cfg)
	b.root.AddMenu(m)
	return m
}

// Child creates a Parent widget and appends it as a child of parent, useful
// for chaining tree construction without naming every intermediate node.
func (b *Builder) Child(parent *Widget, cfg ParentConfig) *Widget {
	w := NewParent(cfg)
	parent.AddChild(w)
	return w
}

// Text creates a Text widget and appends it as a child of parent.
func (b *Builder) Text(parent *Widget, cfg TextConfig) *Widget {
	w := NewText(cfg)
	parent.AddChild(w)
	return w
}

// Grid creates a Grid widget and appends it as a child of parent.
func (b *Builder) Grid(parent *Widget, cfg GridConfig) *Widget {
	w := NewGrid(cfg)
	parent.AddChild(w)
	return w
}

// DebugLog wires the root's diagnostic ring buffer (logbuf.go) into a Text
// widget that is appended as a child of parent: every frame before render,
// the caller should refresh it via RefreshDebugLog. This is the ambient
// logging surface named in SPEC_FULL A.1 and C.2 — there is no other way to
// observe a running tui.h app's internals, since it owns the whole terminal.
func (b *Builder) DebugLog(parent *Widget, name string) *Widget {
	w := NewText(TextConfig{
		WidgetConfig: WidgetConfig{Name: name, HGrow: true, WGrow: true},
	})
	parent.AddChild(w)
	return w
}

// RefreshDebugLog rewrites a DebugLog widget's text from the root's current
// log buffer contents. Call it once per frame, before layout, if the log
// panel is visible.
func RefreshDebugLog(w *Widget, log *LogBuffer) {
	if _, ok := w.AsText(); !ok {
		return
	}
	lines := log.Lines()
	joined := ""
	for i, l := range lines {
		if i > 0 {
			joined += "\n"
		}
		joined += l
	}
	w.SetText(joined)
}
