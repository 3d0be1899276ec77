package termscreen

import "image/color"

// AttrFlags is a bitmask of cell rendition flags (spec.md §3 AttributeWord).
type AttrFlags uint32

const (
	AttrBold AttrFlags = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrDoubleUnderline
	AttrCurlyUnderline
	AttrDottedUnderline
	AttrDashedUnderline
	AttrBlinkSlow
	AttrBlinkFast
	AttrReverse
	AttrConcealed
	AttrStrike
	AttrProtected
	AttrSearchHighlight
	AttrWideCharFirst  // first half of a wide character
	AttrWideCharSecond // continuation half of a wide character (spec.md §8 invariant)
)

// ColorKind distinguishes how a color field should be interpreted.
type ColorKind uint8

const (
	ColorDefault ColorKind = iota
	ColorIndexed
	ColorTrueColor
)

// AttrColor holds either an indexed palette slot or a true-color triplet,
// never both, per spec.md §3's AttributeWord invariant.
type AttrColor struct {
	Kind  ColorKind
	Index uint8 // valid when Kind == ColorIndexed
	RGB   color.RGBA
}

// DefaultColor is the zero-value color: resolved against the screen's
// current default foreground/background at render time.
var DefaultColor = AttrColor{Kind: ColorDefault}

// IndexedAttrColor builds a palette-indexed color reference.
func IndexedAttrColor(index uint8) AttrColor {
	return AttrColor{Kind: ColorIndexed, Index: index}
}

// TrueAttrColor builds a 24-bit true-color reference.
func TrueAttrColor(r, g, b uint8) AttrColor {
	return AttrColor{Kind: ColorTrueColor, RGB: color.RGBA{R: r, G: g, B: b, A: 255}}
}

// AttributeWord is the fixed-width style descriptor attached to every Cell
// (spec.md §3). It is a pure value type: copying it copies the rendition.
type AttributeWord struct {
	Fg            AttrColor
	Bg            AttrColor
	UnderlineColor AttrColor // Kind == ColorDefault means "follow Fg"
	Flags         AttrFlags
	Charset       CharsetIndex // active G-set at the time this rendition was captured
}

// DefaultAttributeWord is the rendition applied to a freshly reset cell.
func DefaultAttributeWord() AttributeWord {
	return AttributeWord{Fg: DefaultColor, Bg: DefaultColor}
}

// HasFlag reports whether flag is set.
func (a AttributeWord) HasFlag(flag AttrFlags) bool { return a.Flags&flag != 0 }

// WithFlag returns a copy with flag set.
func (a AttributeWord) WithFlag(flag AttrFlags) AttributeWord {
	a.Flags |= flag
	return a
}

// WithoutFlag returns a copy with flag cleared.
func (a AttributeWord) WithoutFlag(flag AttrFlags) AttributeWord {
	a.Flags &^= flag
	return a
}

// Equal reports whether two attribute words describe the same rendition.
// Used by for_each_like_attribute_run to detect run boundaries (spec.md §6).
func (a AttributeWord) Equal(b AttributeWord) bool {
	return a.Fg == b.Fg && a.Bg == b.Bg && a.UnderlineColor == b.UnderlineColor &&
		a.Flags == b.Flags && a.Charset == b.Charset
}

// IsDefault reports whether the rendition carries no styling at all.
func (a AttributeWord) IsDefault() bool {
	return a == DefaultAttributeWord()
}
