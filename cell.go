package termscreen

// Hyperlink associates a cell with a clickable link (OSC 8).
type Hyperlink struct {
	ID  string
	URI string
}

// Cell is one addressable grid position: a code point plus its rendition
// (spec.md §3). Wide characters occupy two adjacent cells; the second
// carries AttrWideCharSecond and an empty code point.
type Cell struct {
	Rune      rune
	Attrs     AttributeWord
	Hyperlink *Hyperlink
	dirty     bool
}

// NewCell returns a blank cell (space, default rendition).
func NewCell() Cell {
	return Cell{Rune: ' ', Attrs: DefaultAttributeWord()}
}

// Reset clears a cell back to blank/default, preserving nothing.
func (c *Cell) Reset() {
	c.Rune = ' '
	c.Attrs = DefaultAttributeWord()
	c.Hyperlink = nil
	c.dirty = true
}

// ResetWithBackground clears a cell but keeps bg (spec.md §4.1 CSI ED/EL:
// "Erased cells take current background color only, not other attributes").
func (c *Cell) ResetWithBackground(bg AttrColor) {
	c.Rune = ' '
	c.Attrs = AttributeWord{Fg: DefaultColor, Bg: bg}
	c.Hyperlink = nil
	c.dirty = true
}

// Copy returns a value copy of the cell (hyperlink pointer shared).
func (c Cell) Copy() Cell { return c }

// IsWideFirst reports whether this cell is the first half of a wide glyph.
func (c *Cell) IsWideFirst() bool { return c.Attrs.HasFlag(AttrWideCharFirst) }

// IsWideSecond reports whether this cell is the continuation half of a wide glyph.
func (c *Cell) IsWideSecond() bool { return c.Attrs.HasFlag(AttrWideCharSecond) }

// MarkDirty flags the cell as modified since the last dirty-clear.
func (c *Cell) MarkDirty() { c.dirty = true }

// IsDirty reports whether the cell changed since the last clear.
func (c *Cell) IsDirty() bool { return c.dirty }

// ClearDirty resets the dirty flag.
func (c *Cell) ClearDirty() { c.dirty = false }
