package tuih

// computeLayout runs the top-down layout pass over w, assuming w.rect
// already holds its own placed rectangle (either assigned by the caller for
// a root-level widget, or by a parent's own computeLayout call). It resolves
// w.isVisible and, for a Parent, recurses into content-box placement of its
// children (spec.md §4.5).
func computeLayout(w *Widget) {
	w.isVisible = !w.IsHidden && !w.rect.empty()

	if !w.isVisible {
		hideDescendants(w)
		return
	}

	if p, ok := w.AsParent(); ok {
		layoutChildren(w, p)
	}
}

// hideDescendants marks every descendant of w invisible without touching
// their rects, per spec.md §4.5: "a zero-dimension widget makes its whole
// subtree invisible; descendants keep their last-computed rects, which are
// simply never painted."
func hideDescendants(w *Widget) {
	p, ok := w.AsParent()
	if !ok {
		return
	}
	for _, c := range p.Children {
		c.isVisible = false
		hideDescendants(c)
	}
}

// contentBox returns the rectangle available to a Parent's children after
// subtracting border, padding, and shadow decorations (spec.md §4.5).
func contentBox(w *Widget, p *ParentData) Rect {
	r := w.rect
	x, y, width, height := r.X, r.Y, r.W, r.H

	if p.Border.Active {
		x++
		y++
		width -= borderH
		height -= borderV
	}
	if p.HasPadding {
		x += paddingH / 2
		y += paddingV / 2
		width -= paddingH
		height -= paddingV
	}
	if p.HasShadow {
		width -= shadowH
		height -= shadowV
	}

	return Rect{X: x, Y: y, W: clampNonNeg(width), H: clampNonNeg(height), Valid: true}
}

// hideChild marks c and its whole subtree invisible without disturbing
// sibling layout, used for explicitly hidden children and atomic children
// that overflow (spec.md §4.5's first counting pass).
func hideChild(c *Widget) {
	c.isVisible = false
	hideDescendants(c)
}

// layoutChildren places p's children within w's content box using the six
// alignment policies of spec.md §4.5.
func layoutChildren(w *Widget, p *ParentData) {
	box := contentBox(w, p)

	primary, cross := box.W, box.H
	if p.IsVertical {
		primary, cross = box.H, box.W
	}

	var participants []*Widget
	used := 0
	for _, c := range p.Children {
		if c.IsContain {
			continue
		}
		if c.UserRect.Valid {
			c.rect = resolveRelative(c.UserRect, box.W, box.H)
			c.rect.X += box.X
			c.rect.Y += box.Y
			computeLayout(c)
			continue
		}
		if c.IsHidden {
			hideChild(c)
			continue
		}

		extent, crossExtent := c.rect.W, c.rect.H
		if p.IsVertical {
			extent, crossExtent = c.rect.H, c.rect.W
		}
		if c.IsAtomic && (used+extent > primary || crossExtent > cross) {
			hideChild(c)
			continue
		}

		participants = append(participants, c)
		used += extent
	}

	n := len(participants)
	if n == 0 {
		return
	}

	sizes := make([]int, n)
	total := 0
	growCount := 0
	for i, c := range participants {
		if p.IsVertical {
			sizes[i] = c.rect.H
		} else {
			sizes[i] = c.rect.W
		}
		total += sizes[i]
		if growFlag(c, p.IsVertical) {
			growCount++
		}
	}

	// AlignAround's own computed spacing is authoritative: HasGap adds no
	// extra gap unit under it.
	gap := 0
	if p.HasGap && n > 1 && p.Align != AlignAround {
		gap = gapV
		if !p.IsVertical {
			gap = gapH
		}
	}
	totalGap := gap * (n - 1)

	slack := primary - total - totalGap

	if p.Align == AlignEvenly {
		content := primary - totalGap
		base := content / n
		remainder := content % n
		for i := range sizes {
			sizes[i] = base
			if i < remainder {
				sizes[i]++
			}
		}
		total = content
		slack = 0
	} else if slack > 0 && growCount > 0 {
		share := slack / growCount
		remainder := slack % growCount
		given := 0
		for i, c := range participants {
			if !growFlag(c, p.IsVertical) {
				continue
			}
			extra := share
			if given < remainder {
				extra++
			}
			given++
			sizes[i] += extra
		}
		total = primary - totalGap
		slack = 0
	}

	positions := make([]int, n)
	gapExtras := make([]int, n)
	leading := 0

	switch p.Align {
	case AlignStart, AlignEvenly:
		// handled above (EVENLY already resized sizes; both use plain gaps)
	case AlignCenter:
		if slack > 0 {
			leading = slack / 2
		}
	case AlignEnd:
		if slack > 0 {
			leading = slack
		}
	case AlignBetween:
		if n > 1 && slack > 0 {
			base := slack / (n - 1)
			remainder := slack % (n - 1)
			for i := 0; i < n-1; i++ {
				gapExtras[i] = base
				if i < remainder {
					gapExtras[i]++
				}
			}
		}
	case AlignAround:
		if slack > 0 {
			share := slack / (n + 1)
			remainder := slack % (n + 1)
			leading = share + remainder/2
			for i := 0; i < n-1; i++ {
				gapExtras[i] = share
			}
		}
	}

	cursor := leading
	for i := range participants {
		positions[i] = cursor
		cursor += sizes[i] + gap
		if i < n-1 {
			cursor += gapExtras[i]
		}
	}

	for i, c := range participants {
		var r Rect
		crossSize := sizes2(c, p.IsVertical, cross)
		crossPos := crossPosition(c.rect, p.Pos, cross, crossSize)

		if p.IsVertical {
			r = Rect{X: box.X + crossPos, Y: box.Y + positions[i], W: crossSize, H: sizes[i], Valid: true}
		} else {
			r = Rect{X: box.X + positions[i], Y: box.Y + crossPos, W: sizes[i], H: crossSize, Valid: true}
		}
		c.rect = r
		computeLayout(c)
	}
}

func growFlag(c *Widget, vertical bool) bool {
	if vertical {
		return c.HGrow
	}
	return c.WGrow
}

func sizes2(c *Widget, vertical bool, cross int) int {
	if vertical {
		if c.rect.W > 0 {
			return minInt(c.rect.W, cross)
		}
		return cross
	}
	if c.rect.H > 0 {
		return minInt(c.rect.H, cross)
	}
	return cross
}

func crossPosition(rect Rect, pos Pos, cross, size int) int {
	switch pos {
	case PosCenter:
		return maxInt(0, (cross-size)/2)
	case PosEnd:
		return maxInt(0, cross-size)
	default:
		return 0
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
