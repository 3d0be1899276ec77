package termscreen

// CharsetIndex selects one of the four character-set slots, G0 through G3
// (spec.md §4.1 "Character-set handling").
type CharsetIndex int

const (
	CharsetIndexG0 CharsetIndex = iota
	CharsetIndexG1
	CharsetIndexG2
	CharsetIndexG3
)

// Charset identifies one of the designatable character sets.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetUK
	CharsetDECSpecialGraphics
	CharsetDECSupplemental
	CharsetDECTechnical
	CharsetUserPreferredSupplemental
)

// charsetState holds the G0-G3 slot assignments plus the currently active slot
// and any pending single-shift override (SS2/SS3), per spec.md §4.1.
type charsetState struct {
	slots        [4]Charset
	active       CharsetIndex
	singleShift  CharsetIndex
	hasSingleShift bool
}

func newCharsetState() charsetState {
	return charsetState{slots: [4]Charset{CharsetASCII, CharsetASCII, CharsetASCII, CharsetASCII}}
}

// effective returns the charset slot to use for the next printable byte,
// consuming any pending single shift.
func (c *charsetState) effective() Charset {
	if c.hasSingleShift {
		idx := c.singleShift
		c.hasSingleShift = false
		return c.slots[idx]
	}
	return c.slots[c.active]
}

func (c *charsetState) singleShift2() { c.singleShift, c.hasSingleShift = CharsetIndexG2, true }
func (c *charsetState) singleShift3() { c.singleShift, c.hasSingleShift = CharsetIndexG3, true }

// translateDECGraphics maps a DEC special-graphics byte to its line-drawing
// glyph. Mirrors the teacher's handler.go translateLineDrawing table.
func translateDECGraphics(r rune) rune {
	switch r {
	case 'j':
		return '┘'
	case 'k':
		return '┐'
	case 'l':
		return '┌'
	case 'm':
		return '└'
	case 'n':
		return '┼'
	case 'q':
		return '─'
	case 't':
		return '├'
	case 'u':
		return '┤'
	case 'v':
		return '┴'
	case 'w':
		return '┬'
	case 'x':
		return '│'
	default:
		return r
	}
}

// translate applies the given charset's mapping to a decoded code point.
func translate(cs Charset, r rune) rune {
	switch cs {
	case CharsetDECSpecialGraphics:
		return translateDECGraphics(r)
	default:
		return r
	}
}
