package tuih

import "testing"

func layoutRoot(w *Widget, width, height int) {
	w.rect = Rect{W: width, H: height, Valid: true}
	computeSize(w, width, height)
	computeLayout(w)
}

// Grid children are used below instead of Text/Parent children with an
// explicit UserRect: a widget with its own UserRect is placed directly
// (spec.md §3's per-child rect escape hatch) and does not participate in
// the flex distribution layoutChildren otherwise runs. Grid's intrinsic
// size (its logical W/H) gives a predictable, rect-free size to flex.

func TestLayoutAlignStartPacksFromOrigin(t *testing.T) {
	parent := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "row"}, Align: AlignStart})
	a := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "a"}, W: 3, H: 1})
	b := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "b"}, W: 3, H: 1})
	parent.AddChild(a)
	parent.AddChild(b)

	layoutRoot(parent, 20, 5)

	if a.rect.X != 0 {
		t.Errorf("first child under AlignStart should sit at x=0, got %d", a.rect.X)
	}
	if b.rect.X != a.rect.X+a.rect.W {
		t.Errorf("second child should immediately follow the first, got a=%+v b=%+v", a.rect, b.rect)
	}
}

func TestLayoutAlignEndPacksToFarEdge(t *testing.T) {
	parent := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "row", Rect: Rect{W: 20, H: 5, Valid: true}}, Align: AlignEnd})
	a := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "a"}, W: 5, H: 1})
	parent.AddChild(a)

	layoutRoot(parent, 20, 5)

	if a.rect.X+a.rect.W != parent.rect.W {
		t.Errorf("AlignEnd's single child should touch the far edge, got rect=%+v parentW=%d", a.rect, parent.rect.W)
	}
}

func TestLayoutGrowFlagFillsSlack(t *testing.T) {
	parent := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "row", Rect: Rect{W: 20, H: 5, Valid: true}}})
	fixed := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "fixed"}, W: 5, H: 1})
	grow := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "grow", WGrow: true}, W: 3, H: 1})
	parent.AddChild(fixed)
	parent.AddChild(grow)

	layoutRoot(parent, 20, 5)

	if grow.rect.W <= 3 {
		t.Errorf("a WGrow child should absorb leftover width, got %d", grow.rect.W)
	}
	if fixed.rect.W+grow.rect.W != parent.rect.W {
		t.Errorf("children should exactly fill the content box: fixed=%d grow=%d parent=%d", fixed.rect.W, grow.rect.W, parent.rect.W)
	}
}

func TestLayoutZeroDimensionHidesSubtree(t *testing.T) {
	parent := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "p", Rect: Rect{W: 0, H: 0, Valid: true}}})
	child := NewText(TextConfig{WidgetConfig: WidgetConfig{Name: "c", Rect: Rect{W: 5, H: 1, Valid: true}}})
	parent.AddChild(child)

	layoutRoot(parent, 0, 0)

	if parent.isVisible {
		t.Error("a zero-dimension widget should be invisible")
	}
	if child.isVisible {
		t.Error("a hidden parent's children should also be invisible")
	}
}

func TestLayoutHiddenWidgetSkipsChildren(t *testing.T) {
	parent := NewParent(ParentConfig{WidgetConfig: WidgetConfig{
		Name:     "p",
		Rect:     Rect{W: 10, H: 10, Valid: true},
		IsHidden: true,
	}})
	child := NewText(TextConfig{WidgetConfig: WidgetConfig{Name: "c", Rect: Rect{W: 5, H: 1, Valid: true}}})
	parent.AddChild(child)

	layoutRoot(parent, 10, 10)

	if parent.isVisible || child.isVisible {
		t.Error("an explicitly hidden widget and its children should not be visible")
	}
}

func TestLayoutHiddenChildExcludedFromFlex(t *testing.T) {
	parent := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "row", Rect: Rect{W: 10, H: 1, Valid: true}}, Align: AlignStart})
	a := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "a", IsHidden: true}, W: 2, H: 1})
	b := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "b"}, W: 2, H: 1})
	parent.AddChild(a)
	parent.AddChild(b)

	layoutRoot(parent, 10, 1)

	if a.isVisible {
		t.Error("a hidden child should not be visible")
	}
	if b.rect.X != 0 {
		t.Errorf("a hidden sibling should not consume primary-axis space: b.rect.X = %d, want 0", b.rect.X)
	}
}

func TestLayoutAtomicOverflowHidesChild(t *testing.T) {
	parent := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "p", Rect: Rect{W: 3, H: 1, Valid: true}}})
	child := NewText(TextConfig{WidgetConfig: WidgetConfig{Name: "c", IsAtomic: true}, String: "HELLO"})
	parent.AddChild(child)

	layoutRoot(parent, 80, 24)

	if !parent.isVisible {
		t.Error("the parent itself should remain visible")
	}
	if child.isVisible {
		t.Error("an atomic child whose intrinsic extent overflows the content box should be hidden, not clipped")
	}
}

func TestLayoutAlignEvenlySplitsContentEqually(t *testing.T) {
	parent := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "row", Rect: Rect{W: 10, H: 1, Valid: true}}, Align: AlignEvenly})
	a := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "a"}, W: 1, H: 1})
	b := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "b"}, W: 1, H: 1})
	parent.AddChild(a)
	parent.AddChild(b)

	layoutRoot(parent, 10, 1)

	if a.rect != (Rect{X: 0, Y: 0, W: 5, H: 1, Valid: true}) {
		t.Errorf("a.rect = %+v, want {0,0,5,1}", a.rect)
	}
	if b.rect != (Rect{X: 5, Y: 0, W: 5, H: 1, Valid: true}) {
		t.Errorf("b.rect = %+v, want {5,0,5,1}", b.rect)
	}
}

func TestLayoutAlignBetweenGivesRemainderToFirstGaps(t *testing.T) {
	parent := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "row", Rect: Rect{W: 10, H: 1, Valid: true}}, Align: AlignBetween})
	a := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "a"}, W: 1, H: 1})
	b := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "b"}, W: 1, H: 1})
	c := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "c"}, W: 1, H: 1})
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	layoutRoot(parent, 10, 1)

	if a.rect.X != 0 || b.rect.X != 5 || c.rect.X != 9 {
		t.Errorf("positions = (%d,%d,%d), want (0,5,9)", a.rect.X, b.rect.X, c.rect.X)
	}
}

func TestLayoutAlignAroundOffsetsEdgesByHalfRemainder(t *testing.T) {
	parent := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "row", Rect: Rect{W: 10, H: 1, Valid: true}}, Align: AlignAround})
	a := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "a"}, W: 1, H: 1})
	b := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "b"}, W: 1, H: 1})
	parent.AddChild(a)
	parent.AddChild(b)

	layoutRoot(parent, 10, 1)

	if a.rect.X != 3 || b.rect.X != 6 {
		t.Errorf("positions = (%d,%d), want (3,6)", a.rect.X, b.rect.X)
	}
}

func TestContentBoxSubtractsBorderAndPadding(t *testing.T) {
	parent := NewParent(ParentConfig{
		WidgetConfig: WidgetConfig{Rect: Rect{X: 0, Y: 0, W: 20, H: 10, Valid: true}},
		Border:       Border{Active: true},
		HasPadding:   true,
	})
	parent.rect = parent.UserRect
	p, _ := parent.AsParent()

	box := contentBox(parent, p)
	if box.W != 20-borderH-paddingH {
		t.Errorf("content box width = %d, want %d", box.W, 20-borderH-paddingH)
	}
	if box.H != 10-borderV-paddingV {
		t.Errorf("content box height = %d, want %d", box.H, 10-borderV-paddingV)
	}
}
