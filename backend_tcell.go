package tuih

import (
	"github.com/gdamore/tcell/v2"
)

// TcellBackend implements Backend on top of github.com/gdamore/tcell/v2,
// the terminal library the teacher codebase builds its own widget toolkit
// on (see renderer.go's Screen interface, deliberately mirrored there). It
// owns a tcell.Screen and a parallel array of tcell.Style values indexed by
// interned color-pair slot.
type TcellBackend struct {
	screen tcell.Screen
	styles [CacheSize]tcell.Style
	limit  int
}

var tcellPalette = [...]tcell.Color{
	BLACK:      tcell.ColorBlack,
	DARKRED:    tcell.ColorMaroon,
	DARKGREEN:  tcell.ColorGreen,
	DARKYELLOW: tcell.ColorOlive,
	DARKBLUE:   tcell.ColorNavy,
	PURPLE:     tcell.ColorPurple,
	AQUA:       tcell.ColorTeal,
	GRAY:       tcell.ColorSilver,
	DARKGRAY:   tcell.ColorGray,
	RED:        tcell.ColorRed,
	GREEN:      tcell.ColorLime,
	YELLOW:     tcell.ColorYellow,
	BLUE:       tcell.ColorBlue,
	MAGENTA:    tcell.ColorFuchsia,
	CYAN:       tcell.ColorAqua,
	WHITE:      tcell.ColorWhite,
}

// NewTcellBackend initializes tcell and returns a ready-to-use Backend.
// Per spec.md §7's Fatal error class, a failure here is unrecoverable and
// is returned directly rather than retried.
func NewTcellBackend() (*TcellBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	b := &TcellBackend{screen: screen, limit: CacheSize}
	return b, nil
}

func (b *TcellBackend) Size() (int, int) {
	return b.screen.Size()
}

func (b *TcellBackend) MoveCursor(x, y int) {
	b.screen.ShowCursor(x, y)
}

func (b *TcellBackend) PutChar(x, y int, ch rune, pair int) {
	style := tcell.StyleDefault
	if pair >= 0 && pair < len(b.styles) {
		style = b.styles[pair]
	}
	b.screen.SetContent(x, y, ch, nil, style)
}

func (b *TcellBackend) AttrOn(attr int) {
	// Bold is the only attribute spec.md §6 names explicitly; others are
	// reserved for backend-specific extension. This only changes the
	// screen's default style (tcell's SetStyle); cells PutChar writes with
	// an interned pair's style are not made bold.
	if attr == 1 {
		b.screen.SetStyle(tcell.StyleDefault.Bold(true))
	}
}

func (b *TcellBackend) AttrOff(attr int) {
	if attr == 1 {
		b.screen.SetStyle(tcell.StyleDefault.Bold(false))
	}
}

func (b *TcellBackend) Flush() {
	b.screen.Show()
}

func (b *TcellBackend) PairLimit() int {
	return b.limit
}

func (b *TcellBackend) AllocPair(index int, fg, bg Color) bool {
	if index < 0 || index >= len(b.styles) {
		return false
	}
	b.styles[index] = tcell.StyleDefault.
		Foreground(tcellColor(fg)).
		Background(tcellColor(bg))
	return true
}

func tcellColor(c Color) tcell.Color {
	if c == NONE || int(c) >= len(tcellPalette) {
		return tcell.ColorDefault
	}
	return tcellPalette[c]
}

func (b *TcellBackend) ReadKey() (Key, error) {
	for {
		switch ev := b.screen.PollEvent().(type) {
		case *tcell.EventResize:
			b.screen.Sync()
			return KeyResize, nil
		case *tcell.EventKey:
			if k, ok := decodeTcellKey(ev); ok {
				return k, nil
			}
			// Unmapped key: keep polling rather than surfacing a zero Key.
		}
	}
}

func decodeTcellKey(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return KeyCtrlC, true
	case tcell.KeyTab:
		return KeyTab, true
	case tcell.KeyBacktab:
		return KeyShiftTab, true
	case tcell.KeyUp:
		return KeyUp, true
	case tcell.KeyDown:
		return KeyDown, true
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace, true
	case tcell.KeyEnter:
		return KeyEnter, true
	case tcell.KeyEscape:
		return KeyEsc, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 32 && r <= 126 {
			return Key(r), true
		}
		return KeyNone, false
	default:
		return KeyNone, false
	}
}

func (b *TcellBackend) Close() error {
	b.screen.Fini()
	return nil
}
