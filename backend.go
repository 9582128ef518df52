package tuih

// Key is a decoded terminal input event, backend-independent (spec.md §6).
// Printable keys carry their rune value directly (32-126); everything else
// is one of the named constants below.
type Key int

const (
	KeyNone Key = iota
	KeyCtrlC
	KeyTab
	KeyShiftTab
	KeyResize
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBackspace
	KeyEnter Key = 10
	KeyEsc   Key = 27
)

// IsPrintable reports whether k is a plain printable ASCII rune
// (spec.md §6: 32-126).
func (k Key) IsPrintable() bool {
	return k >= 32 && k <= 126
}

// Backend is the sole contract between the library and a real terminal
// (spec.md §6). Two concrete adapters exist: backend_tcell.go (wrapping
// github.com/gdamore/tcell/v2) and backend_term.go (wrapping
// golang.org/x/term raw mode with hand-rolled ANSI escapes) — proof that the
// core layout/render/event pipeline depends on nothing beyond this
// interface.
type Backend interface {
	PairAllocator

	// Size reports the current terminal dimensions in character cells.
	Size() (w, h int)

	// MoveCursor positions the real terminal cursor.
	MoveCursor(x, y int)

	// PutChar writes a single cell at (x, y) using the given interned color
	// pair index.
	PutChar(x, y int, ch rune, pair int)

	// AttrOn/AttrOff toggle a display attribute (bold, reverse, etc.) for
	// subsequent PutChar calls; the attribute set is backend-defined.
	AttrOn(attr int)
	AttrOff(attr int)

	// Flush pushes buffered cell writes to the real screen.
	Flush()

	// ReadKey blocks until the next input event (keypress or resize) and
	// decodes it into a Key.
	ReadKey() (Key, error)

	// Close restores the terminal to its pre-init state.
	Close() error
}
