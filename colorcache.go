package tuih

import (
	"github.com/lucasb-eyer/go-colorful"
)

// CacheSize is the fixed capacity of a Cache: the maximum number of distinct
// (fg,bg) pairs tui.h will intern for a single Root, per spec.md §4.1.
const CacheSize = 64

// PairAllocator is the subset of Backend a Cache needs to turn an interned
// slot into a real terminal color pair. It is satisfied by Backend itself;
// kept separate so a Cache can be tested without a full backend.
type PairAllocator interface {
	// PairLimit returns the maximum number of color pairs the backend can
	// allocate. A Cache never interns past this limit.
	PairLimit() int

	// AllocPair asks the backend to bind color-pair slot index to the given
	// foreground/background. It returns false if the backend refused
	// (resource exhaustion, per spec.md §7).
	AllocPair(index int, fg, bg Color) bool
}

// Cache interns (fg,bg) pairs into backend color-pair slots on demand. It is
// a fixed-size array scanned linearly on lookup; insertion appends. Overflow
// (backend exhaustion) silently returns slot 0, the default pair — rendering
// proceeds without a fatal error, per spec.md §4.1 and §7.
type Cache struct {
	backend PairAllocator
	pairs   [CacheSize]Pair
	count   int
}

// NewCache creates a color-pair cache bound to the given backend. Slot 0 is
// always reserved for the default pair (WHITE on BLACK).
func NewCache(backend PairAllocator) *Cache {
	c := &Cache{backend: backend}
	c.pairs[0] = Pair{Fg: WHITE, Bg: BLACK}
	c.count = 1
	if backend != nil {
		backend.AllocPair(0, WHITE, BLACK)
	}
	return c
}

// Intern returns the backend color-pair index for (fg,bg), allocating a new
// slot if this pair hasn't been seen before. Both components must already be
// resolved (non-NONE); callers are expected to have run color inheritance
// first. If the cache or the backend is exhausted, Intern returns 0.
func (c *Cache) Intern(fg, bg Color) int {
	want := Pair{Fg: fg, Bg: bg}
	for i := 0; i < c.count; i++ {
		if c.pairs[i] == want {
			return i
		}
	}

	if c.count >= CacheSize {
		return 0
	}
	if c.backend != nil {
		if c.count >= c.backend.PairLimit() {
			return 0
		}
		if !c.backend.AllocPair(c.count, fg, bg) {
			return 0
		}
	}

	index := c.count
	c.pairs[index] = want
	c.count++
	return index
}

// Len reports how many pairs have been interned so far, mainly for tests and
// debugging.
func (c *Cache) Len() int {
	return c.count
}

// terminalPalette is the color-cube anchor used to snap an arbitrary color
// down to the nearest of the 17 enum values. Index i holds the colorful.Color
// matching Color(i) for i in [1, WHITE].
var terminalPalette = [...]colorful.Color{
	BLACK:      {R: 0, G: 0, B: 0},
	DARKRED:    {R: 0.5, G: 0, B: 0},
	DARKGREEN:  {R: 0, G: 0.5, B: 0},
	DARKYELLOW: {R: 0.5, G: 0.5, B: 0},
	DARKBLUE:   {R: 0, G: 0, B: 0.5},
	PURPLE:     {R: 0.5, G: 0, B: 0.5},
	AQUA:       {R: 0, G: 0.5, B: 0.5},
	GRAY:       {R: 0.75, G: 0.75, B: 0.75},
	DARKGRAY:   {R: 0.5, G: 0.5, B: 0.5},
	RED:        {R: 1, G: 0, B: 0},
	GREEN:      {R: 0, G: 1, B: 0},
	YELLOW:     {R: 1, G: 1, B: 0},
	BLUE:       {R: 0, G: 0, B: 1},
	MAGENTA:    {R: 1, G: 0, B: 1},
	CYAN:       {R: 0, G: 1, B: 1},
	WHITE:      {R: 1, G: 1, B: 1},
}

// ResolveHex snaps an arbitrary hex color string (e.g. "#3b82f6") to the
// nearest of the 17 spec.md §6 enum values, using perceptual (Lab-space)
// distance. This is a configuration-time convenience only — the core color
// model is still the closed 17-value enum; ResolveHex never produces a
// value outside it. Malformed input resolves to NONE.
func ResolveHex(hex string) Color {
	target, err := colorful.Hex(hex)
	if err != nil {
		return NONE
	}

	best := BLACK
	bestDist := target.DistanceLab(terminalPalette[BLACK])
	for c := BLACK + 1; c <= WHITE; c++ {
		d := target.DistanceLab(terminalPalette[c])
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
