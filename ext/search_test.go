package ext

import (
	"sort"
	"testing"

	tuih "github.com/hfridholm/tui.h"
)

func buildSearchRoot() *tuih.Root {
	root := tuih.NewRoot(tuih.RootConfig{}, nil, 80, 24)

	main := tuih.NewParent(tuih.ParentConfig{WidgetConfig: tuih.WidgetConfig{Name: "main"}})
	status := tuih.NewText(tuih.TextConfig{WidgetConfig: tuih.WidgetConfig{Name: "status"}})
	title := tuih.NewText(tuih.TextConfig{WidgetConfig: tuih.WidgetConfig{Name: "title"}})
	main.AddChild(status)
	main.AddChild(title)
	root.AddTop(main)

	sidebar := tuih.NewParent(tuih.ParentConfig{WidgetConfig: tuih.WidgetConfig{Name: "sidebar"}})
	sidebarStatus := tuih.NewText(tuih.TextConfig{WidgetConfig: tuih.WidgetConfig{Name: "status"}})
	sidebar.AddChild(sidebarStatus)
	root.AddTop(sidebar)

	return root
}

func TestSearchMatchesExactPath(t *testing.T) {
	s := NewSearch(buildSearchRoot())

	got := s.Match("main/status")
	if len(got) != 1 || got[0] != "main/status" {
		t.Fatalf("Match(main/status) = %v, want [main/status]", got)
	}
}

func TestSearchMatchesGlobAcrossSubtrees(t *testing.T) {
	s := NewSearch(buildSearchRoot())

	got := s.Match("*/status")
	sort.Strings(got)

	want := []string{"main/status", "sidebar/status"}
	if len(got) != len(want) {
		t.Fatalf("Match(*/status) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Match(*/status)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	s := NewSearch(buildSearchRoot())

	if got := s.Match("nope/*"); len(got) != 0 {
		t.Errorf("Match(nope/*) = %v, want empty", got)
	}
}
