package tuih

// render paints w and its visible descendants onto backend, in the
// coordinate space backend already expects (absolute screen cells), per
// spec.md §4.6. ancestorColor is the nearest resolved ancestor color, used
// for inheritance of any NONE component in w.Color.
func render(backend Backend, cache *Cache, w *Widget, ancestorColor Pair) {
	if !w.isVisible {
		return
	}

	w.color = w.Color.inherit(ancestorColor)
	w.cursorSeen = false

	switch w.Kind {
	case KindParent:
		renderParent(backend, cache, w)
	case KindText:
		renderText(backend, cache, w)
	case KindGrid:
		renderGrid(backend, cache, w)
	}
}

func paintFill(backend Backend, cache *Cache, r Rect, color Pair) {
	pair := cache.Intern(color.Fg, color.Bg)
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			backend.PutChar(r.X+x, r.Y+y, ' ', pair)
		}
	}
}

func renderParent(backend Backend, cache *Cache, w *Widget) {
	p, _ := w.AsParent()
	r := w.rect

	paintFill(backend, cache, r, w.color)

	if p.Border.Active {
		drawBorder(backend, cache, r, p.Border)
	}
	if p.HasShadow {
		drawShadow(backend, cache, r)
	}

	for i := len(p.Children) - 1; i >= 0; i-- {
		c := p.Children[i]
		render(backend, cache, c, w.color)
		if c.cursorSeen {
			w.cursorSeen = true
			w.cursorAt = c.cursorAt
		}
	}

	if w.Hooks.Render != nil {
		w.Hooks.Render(w)
	}
}

func drawBorder(backend Backend, cache *Cache, r Rect, b Border) {
	color1, color2 := b.Color, b.Color
	if b.Depth == DepthLow {
		color2 = Pair{Fg: WHITE, Bg: b.Color.Bg}
	} else if b.Depth == DepthHigh {
		color1 = Pair{Fg: WHITE, Bg: b.Color.Bg}
	}

	top := cache.Intern(color1.Fg, color1.Bg)
	bottomRight := cache.Intern(color2.Fg, color2.Bg)

	for x := 0; x < r.W; x++ {
		backend.PutChar(r.X+x, r.Y, '-', top)
		backend.PutChar(r.X+x, r.Y+r.H-1, '-', bottomRight)
	}
	for y := 0; y < r.H; y++ {
		backend.PutChar(r.X, r.Y+y, '|', top)
		backend.PutChar(r.X+r.W-1, r.Y+y, '|', bottomRight)
	}
}

func drawShadow(backend Backend, cache *Cache, r Rect) {
	pair := cache.Intern(BLACK, BLACK)
	for y := 1; y < r.H; y++ {
		backend.PutChar(r.X+r.W, r.Y+y, ' ', pair)
		if shadowH > 1 {
			backend.PutChar(r.X+r.W+1, r.Y+y, ' ', pair)
		}
	}
	for x := 1; x < r.W+shadowH; x++ {
		backend.PutChar(r.X+x, r.Y+r.H, ' ', pair)
	}
}

func renderText(backend Backend, cache *Cache, w *Widget) {
	t, _ := w.AsText()
	r := w.rect

	pair := cache.Intern(w.color.Fg, w.color.Bg)
	tokens := scanANSI(t.String)

	lineStarts := alignedLineOrigins(t, r)

	cursorX, cursorY := r.X, r.Y
	curPair := pair
	col, row := 0, 0
	if len(lineStarts) > 0 {
		cursorX, cursorY = lineStarts[0].X, lineStarts[0].Y
	}

	for _, tok := range tokens {
		if tok.IsEvent {
			switch tok.Event.Op {
			case ansiReset:
				curPair = pair
			case ansiForeground:
				curPair = cache.Intern(tok.Event.Color, w.color.Bg)
			case ansiBackground:
				curPair = cache.Intern(w.color.Fg, tok.Event.Color)
			case ansiCursor:
				w.cursorSeen = true
				w.cursorAt = struct{ X, Y int }{cursorX, cursorY}
			}
			continue
		}

		if tok.Rune == '\n' {
			row++
			col = 0
			if row < len(lineStarts) {
				cursorX, cursorY = lineStarts[row].X, lineStarts[row].Y
			}
			continue
		}

		if row >= r.H {
			continue
		}
		display := tok.Rune
		if t.IsSecret {
			display = '*'
		}
		if col < r.W {
			backend.PutChar(cursorX, cursorY, display, curPair)
		}
		col++
		cursorX++
	}

	if w.Hooks.Render != nil {
		w.Hooks.Render(w)
	}
}

type point struct{ X, Y int }

// alignedLineOrigins computes the top-left screen cell of each wrapped line
// of a Text widget's content, honoring Pos (vertical block alignment) and
// Align (horizontal per-line alignment), per spec.md §4.6.
func alignedLineOrigins(t *TextData, r Rect) []point {
	widths := lineWidths(t.textOnly, r.W)
	if len(widths) == 0 {
		return nil
	}

	blockH := len(widths)
	var top int
	switch t.Pos {
	case PosCenter:
		top = maxInt(0, (r.H-blockH)/2)
	case PosEnd:
		top = maxInt(0, r.H-blockH)
	default:
		top = 0
	}

	origins := make([]point, len(widths))
	for i, lw := range widths {
		var left int
		switch t.Align {
		case AlignCenter:
			left = maxInt(0, (r.W-lw)/2)
		case AlignEnd:
			left = maxInt(0, r.W-lw)
		default:
			left = 0
		}
		origins[i] = point{X: r.X + left, Y: r.Y + top + i}
	}
	return origins
}

func renderGrid(backend Backend, cache *Cache, w *Widget) {
	g, _ := w.AsGrid()
	r := w.rect

	offX := maxInt(0, (r.W-g.size.W)/2)
	offY := maxInt(0, (r.H-g.size.H)/2)

	for y := 0; y < g.size.H; y++ {
		for x := 0; x < g.size.W; x++ {
			if offX+x >= r.W || offY+y >= r.H {
				continue
			}
			cell := g.Get(x, y)
			color := cell.Color.inherit(w.color)
			pair := cache.Intern(color.Fg, color.Bg)
			ch := cell.Symbol
			if ch == 0 {
				ch = ' '
			}
			backend.PutChar(r.X+offX+x, r.Y+offY+y, ch, pair)
		}
	}

	if w.Hooks.Render != nil {
		w.Hooks.Render(w)
	}
}
