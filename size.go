package tuih

// Decoration sizes, spec.md §4.4: each contributes a fixed amount to a
// Parent's intrinsic size regardless of configured border/padding detail.
const (
	paddingH = 4
	paddingV = 2
	borderH  = 2
	borderV  = 2
	shadowH  = 2
	shadowV  = 1
	gapV     = 1
	gapH     = 2
)

// computeSize runs the bottom-up size pass for w, writing its intrinsic
// rectangle into w.rect (spec.md §4.4). screenW/screenH are the reference
// dimensions Text widgets wrap against when they have no user rect.
func computeSize(w *Widget, screenW, screenH int) {
	switch w.Kind {
	case KindText:
		computeSizeText(w, screenW)
	case KindGrid:
		computeSizeGrid(w)
	case KindParent:
		computeSizeParent(w, screenW, screenH)
	}
}

func computeSizeText(w *Widget, screenW int) {
	if w.UserRect.Valid {
		w.rect = Rect{W: maxInt(0, w.UserRect.W), H: maxInt(0, w.UserRect.H), Valid: true}
		return
	}

	t, _ := w.AsText()
	if t.textOnly == "" {
		w.rect = Rect{W: 1, H: 1, Valid: true}
		return
	}

	h := heightForWidth(t.textOnly, maxInt(1, screenW))
	if h < 0 {
		// Unwrappable even at the full screen width: fall back to a single
		// line as wide as the text itself, rather than propagating failure
		// up through the whole tree.
		w.rect = Rect{W: len([]rune(t.textOnly)), H: 1, Valid: true}
		return
	}
	width := widthForHeight(t.textOnly, h)
	w.rect = Rect{W: width, H: h, Valid: true}
}

func computeSizeGrid(w *Widget) {
	g, _ := w.AsGrid()
	if w.UserRect.Valid {
		w.rect = Rect{W: maxInt(0, w.UserRect.W), H: maxInt(0, w.UserRect.H), Valid: true}
		return
	}
	w.rect = Rect{W: g.size.W, H: g.size.H, Valid: true}
}

func computeSizeParent(w *Widget, screenW, screenH int) {
	p, _ := w.AsParent()
	for _, c := range p.Children {
		computeSize(c, screenW, screenH)
	}

	if w.UserRect.Valid {
		w.rect = Rect{W: maxInt(0, w.UserRect.W), H: maxInt(0, w.UserRect.H), Valid: true}
		return
	}

	maxW, maxH := 0, 0
	for _, c := range p.Children {
		if !c.IsContain {
			maxW = maxInt(maxW, c.rect.W)
			maxH = maxInt(maxH, c.rect.H)
		}
		if c.UserRect.Valid {
			maxW = maxInt(maxW, c.UserRect.X+c.UserRect.W)
			maxH = maxInt(maxH, c.UserRect.Y+c.UserRect.H)
		}
	}

	primary, cross := 0, 0
	n := 0
	for _, c := range p.Children {
		if c.IsContain {
			continue
		}
		n++
		cw, ch := c.rect.W, c.rect.H
		if p.IsVertical {
			primary += ch
			cross = maxInt(cross, cw)
		} else {
			primary += cw
			cross = maxInt(cross, ch)
		}
	}

	if p.HasGap && n > 1 {
		if p.IsVertical {
			primary += (n - 1) * gapV
		} else {
			primary += (n - 1) * gapH
		}
	}

	var alignW, alignH int
	if p.IsVertical {
		alignW, alignH = cross, primary
	} else {
		alignW, alignH = primary, cross
	}

	if p.HasPadding {
		alignW += paddingH
		alignH += paddingV
	}
	if p.Border.Active {
		alignW += borderH
		alignH += borderV
	}
	if p.HasShadow {
		alignW += shadowH
		alignH += shadowV
	}

	w.rect = Rect{W: maxInt(maxW, alignW), H: maxInt(maxH, alignH), Valid: true}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
