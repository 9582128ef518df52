package tuih

// Kind tags which variant payload a Widget carries. Per spec.md §9, the tree
// is a tagged sum with a shared header rather than an interface hierarchy:
// every traversal (size, layout, render, free, path lookup) switches on Kind
// instead of relying on a pointer cast.
type Kind int

const (
	KindParent Kind = iota
	KindText
	KindGrid
)

// Align is the main-axis distribution policy of a Parent's children.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignBetween
	AlignAround
	AlignEvenly
)

// Pos is the cross-axis (Parent) or block (Text) alignment policy.
type Pos int

const (
	PosStart Pos = iota
	PosCenter
	PosEnd
)

// Depth is a Parent's border depth, controlling the bevel direction.
type Depth int

const (
	DepthNone Depth = iota
	DepthLow
	DepthHigh
)

// Hooks bundles every event callback a widget, menu, or root may carry, per
// spec.md §3/§6. Any field left nil is simply never invoked. A hook that
// returns false for Key means "not handled", letting the event bubble
// further per spec.md §4.7.
type Hooks struct {
	Init   func(*Widget)
	Free   func(*Widget)
	Key    func(*Widget, Key) bool
	Enter  func(*Widget)
	Exit   func(*Widget)
	Update func(*Widget)
	Render func(*Widget)
}

// Border describes a Parent's border: whether it's drawn, its bevel depth,
// and its own color (independent of the widget's fill color).
type Border struct {
	Active bool
	Depth  Depth
	Color  Pair
}

// ParentData holds the fields specific to the Parent variant (spec.md §3).
type ParentData struct {
	Children   []*Widget
	IsVertical bool
	Border     Border
	HasShadow  bool
	HasPadding bool
	HasGap     bool
	Pos        Pos
	Align      Align
}

// TextData holds the fields specific to the Text variant (spec.md §3).
type TextData struct {
	String   string // source string, may contain ANSI escapes
	textOnly string // derived, escapes stripped; kept consistent with String
	IsSecret bool
	Pos      Pos
	Align    Align
}

// GridCell is one square of a Grid widget: a color and a display symbol.
// The zero value is an empty cell (space, default color).
type GridCell struct {
	Color  Pair
	Symbol rune
}

// GridData holds the fields specific to the Grid variant (spec.md §3).
type GridData struct {
	LogicalW, LogicalH int // configured logical size
	size               Size
	cells              []GridCell // dense, row-major, len == size.W*size.H
}

// Widget is the shared header of every node in the tree (spec.md §3),
// carrying a Kind tag and exactly one non-nil variant payload.
type Widget struct {
	Kind Kind
	Name string

	UserRect Rect
	WGrow    bool
	HGrow    bool

	IsAtomic  bool
	IsHidden  bool
	IsContain bool
	IsInteract bool

	Color Pair
	Hooks Hooks
	Data  any // arbitrary user data pointer

	Parent *Widget
	Menu   *Menu
	Root   *Root

	Parent_  *ParentData
	Text_    *TextData
	Grid_    *GridData

	// Scratch fields, recomputed every frame (spec.md §3).
	rect      Rect
	color     Pair
	isVisible bool

	// cursorSeen/cursorAt record an ANSI "place cursor here" escape (code 5)
	// observed while this widget was painted this frame, per spec.md §4.3/§4.6.
	cursorSeen bool
	cursorAt   struct{ X, Y int }
}

// Rect returns the widget's resolved rectangle from the last layout pass.
func (w *Widget) Rect() Rect { return w.rect }

// ResolvedColor returns the widget's resolved, inherited color from the last
// render pass.
func (w *Widget) ResolvedColor() Pair { return w.color }

// Visible reports whether the widget survived layout this frame
// (spec.md invariant I3).
func (w *Widget) Visible() bool { return w.isVisible }

// AsParent returns the Parent payload and true, or (nil, false) if this
// widget isn't a Parent.
func (w *Widget) AsParent() (*ParentData, bool) {
	if w.Kind != KindParent {
		return nil, false
	}
	return w.Parent_, true
}

// AsText returns the Text payload and true, or (nil, false) if this widget
// isn't a Text.
func (w *Widget) AsText() (*TextData, bool) {
	if w.Kind != KindText {
		return nil, false
	}
	return w.Text_, true
}

// AsGrid returns the Grid payload and true, or (nil, false) if this widget
// isn't a Grid.
func (w *Widget) AsGrid() (*GridData, bool) {
	if w.Kind != KindGrid {
		return nil, false
	}
	return w.Grid_, true
}

// ---- Configuration records (spec.md §6) ------------------------------------

// WidgetConfig bundles the fields every widget variant shares.
type WidgetConfig struct {
	Name       string
	Hooks      Hooks
	Rect       Rect
	WGrow      bool
	HGrow      bool
	Color      Pair
	IsHidden   bool
	IsAtomic   bool
	IsInteract bool
	IsContain  bool
	Data       any
}

// ParentConfig configures a Parent widget.
type ParentConfig struct {
	WidgetConfig
	Border     Border
	HasShadow  bool
	HasPadding bool
	HasGap     bool
	Pos        Pos
	Align      Align
	IsVertical bool
}

// TextConfig configures a Text widget.
type TextConfig struct {
	WidgetConfig
	String   string
	IsSecret bool
	Pos      Pos
	Align    Align
}

// GridConfig configures a Grid widget.
type GridConfig struct {
	WidgetConfig
	W, H int
}

func newHeader(cfg WidgetConfig, kind Kind) *Widget {
	return &Widget{
		Kind:       kind,
		Name:       cfg.Name,
		UserRect:   cfg.Rect,
		WGrow:      cfg.WGrow,
		HGrow:      cfg.HGrow,
		IsAtomic:   cfg.IsAtomic,
		IsHidden:   cfg.IsHidden,
		IsContain:  cfg.IsContain,
		IsInteract: cfg.IsInteract,
		Color:      cfg.Color,
		Hooks:      cfg.Hooks,
		Data:       cfg.Data,
	}
}

// NewParent creates a standalone Parent widget. Use (*Widget).AddChild to
// attach children, and one of Root.AddTop/Menu.AddTop/AddChild to install it
// into the tree (spec.md invariant I1: every widget belongs to exactly one
// container).
func NewParent(cfg ParentConfig) *Widget {
	w := newHeader(cfg.WidgetConfig, KindParent)
	w.Parent_ = &ParentData{
		IsVertical: cfg.IsVertical,
		Border:     cfg.Border,
		HasShadow:  cfg.HasShadow,
		HasPadding: cfg.HasPadding,
		HasGap:     cfg.HasGap,
		Pos:        cfg.Pos,
		Align:      cfg.Align,
	}
	return w
}

// NewText creates a standalone Text widget.
func NewText(cfg TextConfig) *Widget {
	w := newHeader(cfg.WidgetConfig, KindText)
	w.Text_ = &TextData{
		String:   cfg.String,
		textOnly: stripANSI(cfg.String),
		IsSecret: cfg.IsSecret,
		Pos:      cfg.Pos,
		Align:    cfg.Align,
	}
	return w
}

// NewGrid creates a standalone Grid widget with the given logical size.
func NewGrid(cfg GridConfig) *Widget {
	w := newHeader(cfg.WidgetConfig, KindGrid)
	w.Grid_ = &GridData{
		LogicalW: cfg.W,
		LogicalH: cfg.H,
		size:     Size{W: cfg.W, H: cfg.H},
		cells:    make([]GridCell, cfg.W*cfg.H),
	}
	return w
}

// SetText replaces a Text widget's source string, keeping the derived
// text-only string consistent (spec.md §4.3: "the two must stay
// consistent"). It is a no-op on non-Text widgets.
func (w *Widget) SetText(s string) {
	t, ok := w.AsText()
	if !ok {
		return
	}
	t.String = s
	t.textOnly = stripANSI(s)
}

// AddChild appends child to a Parent's children and wires its back-
// references (parent, menu, root), establishing spec.md invariant I1. It
// fires the child's Init hook. It is a no-op if w isn't a Parent.
func (w *Widget) AddChild(child *Widget) {
	p, ok := w.AsParent()
	if !ok {
		return
	}
	child.Parent = w
	child.Menu = w.Menu
	child.Root = w.Root
	p.Children = append(p.Children, child)
	fireInit(child)
}

func fireInit(w *Widget) {
	if w.Hooks.Init != nil {
		w.Hooks.Init(w)
	}
}

// freeTree fires Free hooks bottom-up across w and its descendants, per
// spec.md §3's lifecycle and §5's "every widget is heap-allocated and owned
// by its container" ownership model (there's nothing to release explicitly
// in Go beyond running user teardown hooks).
func freeTree(w *Widget) {
	if w == nil {
		return
	}
	if p, ok := w.AsParent(); ok {
		for _, c := range p.Children {
			freeTree(c)
		}
	}
	if w.Hooks.Free != nil {
		w.Hooks.Free(w)
	}
}

// Get returns the cell at (x,y), or the zero GridCell if out of bounds.
func (g *GridData) Get(x, y int) GridCell {
	if x < 0 || y < 0 || x >= g.size.W || y >= g.size.H {
		return GridCell{}
	}
	return g.cells[y*g.size.W+x]
}

// Set stores the cell at (x,y). Out-of-bounds coordinates are ignored
// (spec.md §7: "invalid grid coordinate" is a programmer error that must
// not crash).
func (g *GridData) Set(x, y int, cell GridCell) {
	if x < 0 || y < 0 || x >= g.size.W || y >= g.size.H {
		return
	}
	g.cells[y*g.size.W+x] = cell
}

// Resize changes the grid's logical size, discarding any out-of-bounds
// cells and zero-filling new ones.
func (g *GridData) Resize(s Size) {
	next := make([]GridCell, s.W*s.H)
	for y := 0; y < min(s.H, g.size.H); y++ {
		for x := 0; x < min(s.W, g.size.W); x++ {
			next[y*s.W+x] = g.Get(x, y)
		}
	}
	g.size = s
	g.LogicalW, g.LogicalH = s.W, s.H
	g.cells = next
}
