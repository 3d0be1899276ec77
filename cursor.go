package termscreen

// CursorStyle determines how the cursor is rendered (DECSCUSR).
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// Cursor tracks position, rendering style, and the pending-wrap sentinel
// (spec.md §3 "Cursor", §4.1 autowrap). PendingWrap is set when a glyph
// is written to the last column with autowrap enabled: the wrap itself is
// deferred until the next printable character arrives, so a following
// cursor-motion sequence still sees the cursor at the last column.
type Cursor struct {
	Row         int
	Col         int
	Style       CursorStyle
	Visible     bool
	PendingWrap bool
}

// NewCursor returns a cursor at (0, 0), visible, blinking block.
func NewCursor() *Cursor {
	return &Cursor{Style: CursorStyleBlinkingBlock, Visible: true}
}

// SavedCursor captures everything DECSC/the alternate-screen swap must
// restore: position, pending-wrap state, current attribute template,
// origin mode, and charset slots (spec.md §3 "Cursor" save/restore).
type SavedCursor struct {
	Row         int
	Col         int
	PendingWrap bool
	Attrs       AttributeWord
	OriginMode  bool
	Charsets    charsetState
}

// ScrollRegion is the active top/bottom scroll margin (DECSTBM), inclusive
// of top and exclusive of bottom, i.e. affected rows are [Top, Bottom).
type ScrollRegion struct {
	Top    int
	Bottom int
}

// fullRegion returns the scroll region spanning the entire screen height.
func fullRegion(rows int) ScrollRegion {
	return ScrollRegion{Top: 0, Bottom: rows}
}

// Contains reports whether row falls inside the region.
func (r ScrollRegion) Contains(row int) bool {
	return row >= r.Top && row < r.Bottom
}

// Height returns the number of rows spanned by the region.
func (r ScrollRegion) Height() int {
	return r.Bottom - r.Top
}
