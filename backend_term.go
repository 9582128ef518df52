package tuih

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// TermBackend implements Backend directly on golang.org/x/term raw mode and
// hand-written ANSI escapes, with no terminal-UI library in between — the
// second of the two Backend adapters, proving the core pipeline is not
// tied to tcell (see backend_tcell.go). Grounded on the raw-mode enable/
// disable pattern of a minimal x/term-based terminal wrapper.
type TermBackend struct {
	in      *os.File
	out     *bufio.Writer
	oldState *term.State
	pairs   [CacheSize]Pair
	width, height int
}

// NewTermBackend puts stdin into raw mode and switches stdout to the
// terminal's alternate screen buffer.
func NewTermBackend() (*TermBackend, error) {
	in := os.Stdin
	old, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, err
	}

	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		term.Restore(int(in.Fd()), old)
		return nil, err
	}

	b := &TermBackend{
		in:       in,
		out:      bufio.NewWriter(os.Stdout),
		oldState: old,
		width:    w,
		height:   h,
	}
	b.pairs[0] = Pair{Fg: WHITE, Bg: BLACK}
	fmt.Fprint(b.out, "\x1b[?1049h\x1b[2J")
	b.out.Flush()
	return b, nil
}

func (b *TermBackend) Size() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		b.width, b.height = w, h
	}
	return b.width, b.height
}

func (b *TermBackend) MoveCursor(x, y int) {
	fmt.Fprintf(b.out, "\x1b[%d;%dH", y+1, x+1)
}

func (b *TermBackend) PutChar(x, y int, ch rune, pair int) {
	fmt.Fprintf(b.out, "\x1b[%d;%dH", y+1, x+1)
	b.writeSGR(pair)
	fmt.Fprintf(b.out, "%c", ch)
}

func (b *TermBackend) writeSGR(pair int) {
	if pair < 0 || pair >= len(b.pairs) {
		pair = 0
	}
	p := b.pairs[pair]
	fg, fgOK := ansiCode(p.Fg, 30)
	bg, bgOK := ansiCode(p.Bg, 40)
	fmt.Fprint(b.out, "\x1b[0m")
	if fgOK {
		fmt.Fprintf(b.out, "\x1b[%dm", fg)
	}
	if bgOK {
		fmt.Fprintf(b.out, "\x1b[%dm", bg)
	}
}

func ansiCode(c Color, base int) (int, bool) {
	if c == NONE || c < BLACK || c > WHITE {
		return 0, false
	}
	n := int(c - BLACK)
	if n >= 8 {
		// DARKGRAY..WHITE are the bright colors: SGR 90-97 / 100-107.
		return base + 60 + n - 8, true
	}
	return base + n, true
}

// AttrOn writes SGR 1 (bold) immediately for attr 1. PutChar resets all
// attributes before every cell it writes, so cells written with PutChar
// are not bold.
func (b *TermBackend) AttrOn(attr int) {
	if attr == 1 {
		fmt.Fprint(b.out, "\x1b[1m")
	}
}

func (b *TermBackend) AttrOff(attr int) {
	if attr == 1 {
		fmt.Fprint(b.out, "\x1b[22m")
	}
}

func (b *TermBackend) Flush() {
	b.out.Flush()
}

func (b *TermBackend) PairLimit() int {
	return CacheSize
}

func (b *TermBackend) AllocPair(index int, fg, bg Color) bool {
	if index < 0 || index >= len(b.pairs) {
		return false
	}
	b.pairs[index] = Pair{Fg: fg, Bg: bg}
	return true
}

// ReadKey decodes a raw byte stream into Key values, recognizing the CSI
// sequences for arrow keys and falling back to single-byte control codes
// and printable runes for everything else. It never returns KeyResize:
// terminal size changes are not detected here, only picked up by the next
// Size call.
func (b *TermBackend) ReadKey() (Key, error) {
	var buf [1]byte
	for {
		n, err := b.in.Read(buf[:])
		if err != nil {
			return KeyNone, err
		}
		if n == 0 {
			continue
		}
		c := buf[0]

		switch c {
		case 0x03:
			return KeyCtrlC, nil
		case '\t':
			return KeyTab, nil
		case 0x7f, 0x08:
			return KeyBackspace, nil
		case '\r', '\n':
			return KeyEnter, nil
		case 0x1b:
			return b.readEscape()
		}
		if c >= 32 && c <= 126 {
			return Key(c), nil
		}
	}
}

func (b *TermBackend) readEscape() (Key, error) {
	var seq [2]byte
	n, err := b.in.Read(seq[:1])
	if err != nil || n == 0 {
		return KeyEsc, nil
	}
	if seq[0] != '[' {
		return KeyEsc, nil
	}
	n, err = b.in.Read(seq[1:2])
	if err != nil || n == 0 {
		return KeyEsc, nil
	}
	switch seq[1] {
	case 'A':
		return KeyUp, nil
	case 'B':
		return KeyDown, nil
	case 'C':
		return KeyRight, nil
	case 'D':
		return KeyLeft, nil
	case 'Z':
		return KeyShiftTab, nil
	default:
		return KeyEsc, nil
	}
}

func (b *TermBackend) Close() error {
	fmt.Fprint(b.out, "\x1b[?1049l")
	b.out.Flush()
	return term.Restore(int(b.in.Fd()), b.oldState)
}
