package tuih

import "testing"

func buildPathFixture() (*Root, *Widget, *Widget) {
	root := NewRoot(RootConfig{}, nil, 80, 24)
	outer := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "outer"}})
	inner := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "inner"}})
	leaf := NewText(TextConfig{WidgetConfig: WidgetConfig{Name: "leaf"}})
	inner.AddChild(leaf)
	outer.AddChild(inner)
	root.AddTop(outer)
	return root, outer, leaf
}

func TestPathResolvesNestedWidget(t *testing.T) {
	root, _, leaf := buildPathFixture()
	got := Path(root, "outer inner leaf")
	if got != leaf {
		t.Errorf("Path should resolve to the leaf widget, got %v", got)
	}
}

func TestPathSingleToken(t *testing.T) {
	root, outer, _ := buildPathFixture()
	if got := Path(root, "outer"); got != outer {
		t.Errorf("Path with a single token should resolve the top-level widget, got %v", got)
	}
}

func TestPathDotStepsToParent(t *testing.T) {
	root, outer, leaf := buildPathFixture()
	got := Path(root, "outer inner leaf . .")
	if got != outer {
		t.Errorf("two '.' tokens should step back up to 'outer', got %v (leaf was %v)", got, leaf)
	}
}

func TestPathRejectsNonParentIntermediate(t *testing.T) {
	root, _, _ := buildPathFixture()
	got := Path(root, "outer inner leaf extra")
	if got != nil {
		t.Errorf("a path through a non-Parent intermediate token should fail to resolve, got %v", got)
	}
}

func TestPathUnknownNameFails(t *testing.T) {
	root, _, _ := buildPathFixture()
	if got := Path(root, "nonexistent"); got != nil {
		t.Errorf("Path should return nil for an unknown name, got %v", got)
	}
}

func TestPathGridTypedAccessor(t *testing.T) {
	root := NewRoot(RootConfig{}, nil, 80, 24)
	grid := NewGrid(GridConfig{WidgetConfig: WidgetConfig{Name: "board"}, W: 4, H: 4})
	root.AddTop(grid)

	w, g, ok := PathGrid(root, "board")
	if !ok || w != grid || g == nil {
		t.Errorf("PathGrid should resolve a Grid widget, ok=%v w=%v g=%v", ok, w, g)
	}

	if _, _, ok := PathText(root, "board"); ok {
		t.Error("PathText should fail when the resolved widget is actually a Grid")
	}
}
