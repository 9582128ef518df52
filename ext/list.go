package ext

import (
	"strings"

	tuih "github.com/hfridholm/tui.h"
)

// List is a single-selection list built from a Text widget: items are
// joined into the widget's multi-line string with the selected line
// marked, and Up/Down move the selection (wrapping at both ends, unlike the
// backward tab-navigation policy in the core event dispatcher). Every item
// is written into the text; there is no viewport that scrolls to keep the
// selection in view.
type List struct {
	Widget *tuih.Widget

	Items    []string
	Selected int

	OnChoose func(index int, item string)
}

// NewList creates a List and appends its underlying Text widget to parent.
func NewList(parent *tuih.Widget, name string, items []string) *List {
	l := &List{Items: items}
	l.Widget = tuih.NewText(tuih.TextConfig{
		WidgetConfig: tuih.WidgetConfig{
			Name:       name,
			IsInteract: true,
			WGrow:      true,
			HGrow:      true,
		},
	})
	l.Widget.Hooks.Key = l.handleKey
	parent.AddChild(l.Widget)
	l.sync()
	return l
}

// SetItems replaces the list's items, resetting the selection to the first
// entry, and refreshes the underlying widget's text.
func (l *List) SetItems(items []string) {
	l.Items = items
	l.Selected = 0
	l.sync()
}

func (l *List) handleKey(w *tuih.Widget, key tuih.Key) bool {
	switch key {
	case tuih.KeyUp:
		if len(l.Items) == 0 {
			return true
		}
		l.Selected = (l.Selected - 1 + len(l.Items)) % len(l.Items)
		l.sync()
		return true
	case tuih.KeyDown:
		if len(l.Items) == 0 {
			return true
		}
		l.Selected = (l.Selected + 1) % len(l.Items)
		l.sync()
		return true
	case tuih.KeyEnter:
		if l.OnChoose != nil && l.Selected < len(l.Items) {
			l.OnChoose(l.Selected, l.Items[l.Selected])
		}
		return true
	}
	return false
}

func (l *List) sync() {
	lines := make([]string, len(l.Items))
	for i, item := range l.Items {
		marker := "  "
		if i == l.Selected {
			marker = "> "
		}
		lines[i] = marker + item
	}
	l.Widget.SetText(strings.Join(lines, "\n"))
}
