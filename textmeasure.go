package tuih

// heightForWidth simulates word-wrapping text into lines no wider than w and
// returns the resulting number of lines, per spec.md §4.2. It scans the
// text-only string (ANSI escapes already stripped by the caller): a space
// records a candidate wrap point, a newline forces one, and when the column
// reaches w a wrap occurs by rewinding to the last recorded space. If no
// space has been seen since the previous wrap, the current word alone is
// wider than w and the function returns -1 (the "text cannot wrap" failure
// signal of spec.md §7).
func heightForWidth(text string, w int) int {
	if w <= 0 {
		return -1
	}
	if len(text) == 0 {
		return 1
	}

	runes := []rune(text)
	lines := 1
	x := 0
	lastSpace := -1 // column of the last space on the current line; reset on every wrap

	for _, r := range runes {
		if r == '\n' {
			lines++
			x = 0
			lastSpace = -1
			continue
		}

		if r == ' ' {
			lastSpace = x
		}

		x++
		if x >= w {
			if lastSpace == -1 {
				return -1
			}
			lines++
			x -= lastSpace + 1
			lastSpace = -1
		}
	}
	return lines
}

// widthForHeight performs a binary search over widths in [1, len(text)] for
// the minimal w such that heightForWidth(text, w) lands in [1, h], per
// spec.md §4.2. Height is monotonically non-increasing in width, which makes
// the search correct. If even the full string width doesn't fit in h lines
// (an overlong single word at every candidate width), the full string length
// is returned as a fallback width.
func widthForHeight(text string, h int) int {
	n := len([]rune(text))
	if n == 0 || h <= 0 {
		return 1
	}

	lo, hi := 1, n
	best := n
	for lo <= hi {
		mid := lo + (hi-lo)/2
		height := heightForWidth(text, mid)
		if height >= 1 && height <= h {
			best = mid
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	return best
}

// lineWidths returns the per-line widths that result from wrapping text at
// width w, per spec.md §4.2. Where heightForWidth(text, w) is positive the
// slice has that many entries; where it is -1, lineWidths does not fail but
// hard-breaks each word wider than w at the width boundary. The number of
// lines is not capped.
func lineWidths(text string, w int) []int {
	if w <= 0 || len(text) == 0 {
		return []int{0}
	}

	runes := []rune(text)
	widths := make([]int, 0, 4)
	x := 0
	lastSpace := -1
	lastWrapSpace := -2
	lineStart := 0

	flush := func(end int) {
		widths = append(widths, end-lineStart)
	}

	for i, r := range runes {
		if r == '\n' {
			flush(i)
			lineStart = i + 1
			x = 0
			lastSpace = -1
			lastWrapSpace = -2
			continue
		}

		if r == ' ' {
			lastSpace = i
		}

		x++
		if x >= w {
			if lastSpace == -1 || lastSpace == lastWrapSpace {
				// Unwrappable word: hard-break at the width boundary.
				flush(i + 1)
				lineStart = i + 1
				x = 0
				lastWrapSpace = -2
				lastSpace = -1
				continue
			}
			flush(lastSpace)
			lineStart = lastSpace + 1
			x = i - lastSpace
			lastWrapSpace = lastSpace
			lastSpace = -1
		}
	}
	flush(len(runes))

	return widths
}
