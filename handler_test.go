package termscreen

import "testing"

func newTestScreen(rows, cols int) *Screen {
	_, s := NewScreen(WithSize(rows, cols))
	return s
}

func lineString(s *Screen, row int) string {
	runes, _ := lineRunesTrimmed(s.Line(row))
	return string(runes)
}

func TestInputPrintsAtCursor(t *testing.T) {
	s := newTestScreen(5, 10)
	s.WriteString("Hi")

	if got := lineString(s, 0); got != "Hi" {
		t.Errorf("row 0 = %q, want %q", got, "Hi")
	}
	row, col := s.CursorPosition()
	if row != 0 || col != 2 {
		t.Errorf("cursor = (%d,%d), want (0,2)", row, col)
	}
}

func TestAutowrapIsDeferred(t *testing.T) {
	s := newTestScreen(3, 5)
	s.WriteString("ABCDE")

	row, col := s.CursorPosition()
	if row != 0 || col != 4 {
		t.Errorf("cursor after filling last column = (%d,%d), want (0,4)", row, col)
	}
	if !s.cursor.PendingWrap {
		t.Error("expected PendingWrap after filling the last column")
	}

	s.WriteString("F")
	row, col = s.CursorPosition()
	if row != 1 || col != 1 {
		t.Errorf("cursor after wrap = (%d,%d), want (1,1)", row, col)
	}
	if got := lineString(s, 0); got != "ABCDE" {
		t.Errorf("row 0 = %q, want %q", got, "ABCDE")
	}
	if got := lineString(s, 1); got != "F" {
		t.Errorf("row 1 = %q, want %q", got, "F")
	}
	if !s.Line(0).IsWrapped() {
		t.Error("expected row 0 to be marked wrapped")
	}
}

func TestPendingWrapClearedByCursorMotion(t *testing.T) {
	s := newTestScreen(3, 5)
	s.WriteString("ABCDE")
	if !s.cursor.PendingWrap {
		t.Fatal("expected PendingWrap to be set")
	}

	s.WriteString("\x1b[1;1H") // CUP to home
	row, col := s.CursorPosition()
	if row != 0 || col != 0 {
		t.Errorf("cursor after CUP = (%d,%d), want (0,0)", row, col)
	}
	if s.cursor.PendingWrap {
		t.Error("expected PendingWrap cleared by cursor motion")
	}
}

func TestCarriageReturnAndLineFeed(t *testing.T) {
	s := newTestScreen(3, 10)
	s.WriteString("abc\r\ndef")

	if got := lineString(s, 0); got != "abc" {
		t.Errorf("row 0 = %q, want %q", got, "abc")
	}
	if got := lineString(s, 1); got != "def" {
		t.Errorf("row 1 = %q, want %q", got, "def")
	}
}

func TestSGRSetsAttributes(t *testing.T) {
	s := newTestScreen(3, 10)
	s.WriteString("\x1b[1;31mX")

	c := s.Cell(0, 0)
	if c == nil {
		t.Fatal("expected a cell")
	}
	if !c.Attrs.HasFlag(AttrBold) {
		t.Error("expected bold flag set")
	}
	if c.Attrs.Fg.Kind != ColorIndexed || c.Attrs.Fg.Index != 1 {
		t.Errorf("expected red foreground (index 1), got %+v", c.Attrs.Fg)
	}
}

func TestSGRResetClearsAttributes(t *testing.T) {
	s := newTestScreen(3, 10)
	s.WriteString("\x1b[1;31mX\x1b[0mY")

	c := s.Cell(0, 1)
	if c.Attrs.HasFlag(AttrBold) {
		t.Error("expected bold cleared after SGR reset")
	}
	if c.Attrs.Fg.Kind != ColorDefault {
		t.Errorf("expected default foreground after SGR reset, got %+v", c.Attrs.Fg)
	}
}

func TestEraseInLine(t *testing.T) {
	s := newTestScreen(3, 10)
	s.WriteString("0123456789\x1b[1;5H\x1b[K")

	if got := lineString(s, 0); got != "0123" {
		t.Errorf("row 0 after EL = %q, want %q", got, "0123")
	}
}

func TestInsertAndDeleteLines(t *testing.T) {
	s := newTestScreen(4, 5)
	s.WriteString("one\r\ntwo\r\nthree")
	s.WriteString("\x1b[1;1H\x1b[2L") // insert 2 blank lines at row 0

	if got := lineString(s, 2); got != "one" {
		t.Errorf("row 2 after insert = %q, want %q", got, "one")
	}

	s.WriteString("\x1b[1;1H\x1b[2M") // delete the 2 blank lines at row 0
	if got := lineString(s, 0); got != "one" {
		t.Errorf("row 0 after delete = %q, want %q", got, "one")
	}
}

func TestAlternateScreenSwap(t *testing.T) {
	s := newTestScreen(3, 10)
	s.WriteString("primary")

	s.WriteString("\x1b[?1049h")
	if !s.OnAlternateScreen() {
		t.Fatal("expected alternate screen active")
	}
	// Entering the alternate screen keeps the cursor where it was (column 7).
	s.WriteString("alt")
	if got := lineString(s, 0); got != "       alt" {
		t.Errorf("alt row 0 = %q, want %q", got, "       alt")
	}

	s.WriteString("\x1b[?1049l")
	if s.OnAlternateScreen() {
		t.Fatal("expected back on primary screen")
	}
	if got := lineString(s, 0); got != "primary" {
		t.Errorf("primary row 0 after restore = %q, want %q", got, "primary")
	}
}

func TestSaveRestoreCursor(t *testing.T) {
	s := newTestScreen(5, 10)
	s.WriteString("\x1b[3;4H\x1b7")
	s.WriteString("\x1b[1;1H")
	s.WriteString("\x1b8")

	row, col := s.CursorPosition()
	if row != 2 || col != 3 {
		t.Errorf("cursor after DECRC = (%d,%d), want (2,3)", row, col)
	}
}

func TestResizeClampsCursor(t *testing.T) {
	s := newTestScreen(5, 10)
	s.WriteString("\x1b[5;10H")
	s.Resize(3, 5)

	row, col := s.CursorPosition()
	if row >= 3 || col >= 5 {
		t.Errorf("cursor after shrink = (%d,%d), expected within 3x5", row, col)
	}
}

func TestHyperlinkAttachesToCells(t *testing.T) {
	s := newTestScreen(3, 20)
	s.WriteString("\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\")

	c := s.Cell(0, 0)
	if c.Hyperlink == nil {
		t.Fatal("expected hyperlink on written cell")
	}
	if c.Hyperlink.URI != "https://example.com" {
		t.Errorf("hyperlink URI = %q, want %q", c.Hyperlink.URI, "https://example.com")
	}

	after := s.Cell(0, 4)
	if after != nil && after.Hyperlink != nil {
		t.Error("expected hyperlink cleared after closing OSC 8")
	}
}

func TestIdentifyTerminalRespondsPerEmulator(t *testing.T) {
	var got []byte
	_, s := NewScreen(WithSize(3, 10), WithEmulator(VT420()), WithTalkback(WriterTalkback{Writer: sinkWriter(&got)}))
	s.WriteString("\x1b[c")

	if string(got) != "\x1b[?62;1;6c" {
		t.Errorf("DA1 reply = %q, want %q", got, "\x1b[?62;1;6c")
	}
}

type sinkWriterFunc func(p []byte) (int, error)

func (f sinkWriterFunc) Write(p []byte) (int, error) { return f(p) }

func sinkWriter(buf *[]byte) sinkWriterFunc {
	return func(p []byte) (int, error) {
		*buf = append(*buf, p...)
		return len(p), nil
	}
}
