package ext

import (
	"strings"
	"testing"

	tuih "github.com/hfridholm/tui.h"
)

func TestListDownWrapsAtEnd(t *testing.T) {
	parent := tuih.NewParent(tuih.ParentConfig{})
	l := NewList(parent, "items", []string{"a", "b", "c"})

	l.Widget.Hooks.Key(l.Widget, tuih.KeyDown)
	l.Widget.Hooks.Key(l.Widget, tuih.KeyDown)
	if l.Selected != 2 {
		t.Fatalf("Selected = %d, want 2", l.Selected)
	}
	l.Widget.Hooks.Key(l.Widget, tuih.KeyDown)
	if l.Selected != 0 {
		t.Errorf("Down past the last item should wrap to 0, got %d", l.Selected)
	}
}

func TestListUpWrapsAtStart(t *testing.T) {
	parent := tuih.NewParent(tuih.ParentConfig{})
	l := NewList(parent, "items", []string{"a", "b", "c"})

	l.Widget.Hooks.Key(l.Widget, tuih.KeyUp)
	if l.Selected != 2 {
		t.Errorf("Up from 0 should wrap to the last index, got %d", l.Selected)
	}
}

func TestListEnterFiresOnChoose(t *testing.T) {
	parent := tuih.NewParent(tuih.ParentConfig{})
	l := NewList(parent, "items", []string{"a", "b", "c"})

	var gotIndex int
	var gotItem string
	l.OnChoose = func(index int, item string) {
		gotIndex, gotItem = index, item
	}

	l.Widget.Hooks.Key(l.Widget, tuih.KeyDown)
	l.Widget.Hooks.Key(l.Widget, tuih.KeyEnter)

	if gotIndex != 1 || gotItem != "b" {
		t.Errorf("OnChoose(%d, %q), want (1, %q)", gotIndex, gotItem, "b")
	}
}

func TestListSetItemsResetsSelection(t *testing.T) {
	parent := tuih.NewParent(tuih.ParentConfig{})
	l := NewList(parent, "items", []string{"a", "b", "c"})
	l.Widget.Hooks.Key(l.Widget, tuih.KeyDown)

	l.SetItems([]string{"x", "y"})

	if l.Selected != 0 {
		t.Errorf("SetItems should reset Selected to 0, got %d", l.Selected)
	}
	if t2, ok := l.Widget.AsText(); !ok || !strings.Contains(t2.String, "x") {
		t.Error("underlying widget text should reflect the new items")
	}
}
