package tuih

// dispatchKey handles one decoded key event against the current tree,
// per spec.md §4.7: a global Ctrl-C stop, resize handling, tab navigation,
// and otherwise a bubble-up key chain starting at the focused widget.
func dispatchKey(root *Root, key Key) {
	switch key {
	case KeyCtrlC:
		root.Stop()
		return
	case KeyResize:
		return // caller re-measures; its next Frame re-runs size and layout
	case KeyTab:
		focusNext(root, true)
		return
	case KeyShiftTab:
		focusNext(root, false)
		return
	}

	if bubbleKey(root, key) {
		return
	}
}

// bubbleKey walks from the focused widget up through its ancestors, then the
// active menu, then the root, invoking each Key hook in turn until one
// returns true (handled), per spec.md §4.7.
func bubbleKey(root *Root, key Key) bool {
	for w := root.Focused; w != nil; w = w.Parent {
		if w.Hooks.Key != nil && w.Hooks.Key(w, key) {
			return true
		}
	}
	if root.Active != nil && root.Active.Hooks.Key != nil {
		if root.Active.Hooks.Key(nil, key) {
			return true
		}
	}
	if root.Hooks.Key != nil {
		return root.Hooks.Key(nil, key)
	}
	return false
}

// focusableWidgets collects every interactive, visible widget across the
// root's own top-level widgets and the active menu's, in tree order — the
// universe tab navigation walks over.
func focusableWidgets(root *Root) []*Widget {
	var out []*Widget
	var walk func(w *Widget)
	walk = func(w *Widget) {
		if w.IsInteract && w.isVisible {
			out = append(out, w)
		}
		if p, ok := w.AsParent(); ok {
			for _, c := range p.Children {
				walk(c)
			}
		}
	}
	for _, w := range root.Widgets {
		walk(w)
	}
	if root.Active != nil {
		for _, w := range root.Active.Widgets {
			walk(w)
		}
	}
	return out
}

// focusNext advances focus to the next (forward) or previous (backward)
// focusable widget in tree order, per spec.md §4.7. This preserves an
// asymmetric wraparound behavior deliberately left as-is rather than fixed
// (see DESIGN.md's Open Question (a)): forward navigation off the end wraps
// to the first widget, but backward navigation off the start does not wrap
// and instead leaves focus unchanged.
func focusNext(root *Root, forward bool) {
	widgets := focusableWidgets(root)
	if len(widgets) == 0 {
		return
	}

	cur := -1
	for i, w := range widgets {
		if w == root.Focused {
			cur = i
			break
		}
	}

	var next int
	if forward {
		next = (cur + 1) % len(widgets)
	} else {
		if cur <= 0 {
			return
		}
		next = cur - 1
	}

	setFocus(root, widgets[next])
}

// setFocus changes the focused widget, firing Exit on the old one and Enter
// on the new one (spec.md §4.7).
func setFocus(root *Root, w *Widget) {
	if root.Focused == w {
		return
	}
	if root.Focused != nil && root.Focused.Hooks.Exit != nil {
		root.Focused.Hooks.Exit(root.Focused)
	}
	root.Focused = w
	if w != nil {
		if w.Menu != nil {
			root.SwitchMenu(w.Menu.Name)
		}
		if w.Hooks.Enter != nil {
			w.Hooks.Enter(w)
		}
	}
}
