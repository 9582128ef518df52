// Package tuih implements tui.h's core: a tree of widgets rendered onto a
// character-cell terminal, with a responsive layout engine, synchronous event
// dispatch, per-widget event hooks, color-pair caching, and focus/tab
// navigation across multiple pages ("menus").
//
// The package only covers the layout + render + event pipeline described by
// the specification: bottom-up size computation, top-down rect placement
// with six alignment policies, a render pass painting borders, shadows,
// text, and grid cells, synchronous key dispatch that bubbles through the
// focus chain, and tab navigation across the widget tree.
//
// The terminal itself is an external collaborator, named only by the
// Backend interface (backend.go). Two concrete adapters are provided:
// backend_tcell.go (github.com/gdamore/tcell/v2) and backend_term.go
// (golang.org/x/term, raw mode + ANSI escapes), but neither is required by
// the core types.
package tuih
