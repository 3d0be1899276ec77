package termscreen

import "testing"

func TestNewCell(t *testing.T) {
	c := NewCell()

	if c.Rune != ' ' {
		t.Errorf("expected space, got %q", c.Rune)
	}
	if c.Attrs != DefaultAttributeWord() {
		t.Error("expected default attributes")
	}
	if c.Hyperlink != nil {
		t.Error("expected no hyperlink")
	}
}

func TestCellReset(t *testing.T) {
	c := NewCell()
	c.Rune = 'A'
	c.Attrs = c.Attrs.WithFlag(AttrBold)
	c.Hyperlink = &Hyperlink{URI: "https://example.com"}

	c.Reset()

	if c.Rune != ' ' {
		t.Errorf("expected space after reset, got %q", c.Rune)
	}
	if c.Attrs.HasFlag(AttrBold) {
		t.Error("expected no flags after reset")
	}
	if c.Hyperlink != nil {
		t.Error("expected hyperlink cleared after reset")
	}
}

func TestCellResetWithBackground(t *testing.T) {
	c := NewCell()
	c.Rune = 'A'
	c.Attrs = c.Attrs.WithFlag(AttrBold)
	bg := IndexedAttrColor(4)

	c.ResetWithBackground(bg)

	if c.Rune != ' ' {
		t.Errorf("expected space, got %q", c.Rune)
	}
	if c.Attrs.HasFlag(AttrBold) {
		t.Error("expected bold cleared")
	}
	if c.Attrs.Bg != bg {
		t.Errorf("expected background preserved, got %+v", c.Attrs.Bg)
	}
	if c.Attrs.Fg != DefaultColor {
		t.Error("expected foreground reset to default")
	}
}

func TestCellWideFlags(t *testing.T) {
	first := NewCell()
	first.Attrs = first.Attrs.WithFlag(AttrWideCharFirst)
	if !first.IsWideFirst() {
		t.Error("expected wide-first cell")
	}
	if first.IsWideSecond() {
		t.Error("wide-first cell should not report as wide-second")
	}

	second := NewCell()
	second.Attrs = second.Attrs.WithFlag(AttrWideCharSecond)
	if !second.IsWideSecond() {
		t.Error("expected wide-second cell")
	}
}

func TestCellDirty(t *testing.T) {
	c := NewCell()

	if c.IsDirty() {
		t.Error("expected cell not dirty initially")
	}

	c.MarkDirty()
	if !c.IsDirty() {
		t.Error("expected cell to be dirty")
	}

	c.ClearDirty()
	if c.IsDirty() {
		t.Error("expected cell not dirty after clear")
	}
}

func TestCellCopy(t *testing.T) {
	c := NewCell()
	c.Rune = 'X'
	c.Attrs = c.Attrs.WithFlag(AttrBold).WithFlag(AttrItalic)

	copied := c.Copy()
	if copied.Rune != 'X' {
		t.Errorf("expected 'X', got %q", copied.Rune)
	}
	if !copied.Attrs.HasFlag(AttrBold) || !copied.Attrs.HasFlag(AttrItalic) {
		t.Error("expected flags to be copied")
	}

	c.Rune = 'Y'
	if copied.Rune != 'X' {
		t.Error("copy should be independent")
	}
}
