package termscreen

import "testing"

func TestSnapshotText(t *testing.T) {
	s := newTestScreen(3, 10)
	s.WriteString("hi\r\nthere")

	snap := s.Snapshot(SnapshotDetailText)
	if len(snap.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(snap.Lines))
	}
	if snap.Lines[0].Text != "hi" {
		t.Errorf("line 0 = %q, want %q", snap.Lines[0].Text, "hi")
	}
	if snap.Lines[1].Text != "there" {
		t.Errorf("line 1 = %q, want %q", snap.Lines[1].Text, "there")
	}
	if snap.Lines[0].Segments != nil || snap.Lines[0].Cells != nil {
		t.Error("text detail should not populate segments or cells")
	}
}

func TestSnapshotTextOutput(t *testing.T) {
	s := newTestScreen(2, 5)
	s.WriteString("ab\r\ncd")

	got := s.Snapshot(SnapshotDetailText).Text()
	want := "ab\ncd\n"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestSnapshotStyledSegments(t *testing.T) {
	s := newTestScreen(2, 10)
	s.WriteString("\x1b[1mAB\x1b[0mCD")

	snap := s.Snapshot(SnapshotDetailStyled)
	segs := snap.Lines[0].Segments
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2 (bold run + plain run)", len(segs))
	}
	if segs[0].Text != "AB" || !segs[0].Attrs.Bold {
		t.Errorf("segment 0 = %+v, want bold \"AB\"", segs[0])
	}
	// The plain run extends through the row's blank padding, which shares its rendition.
	if segs[1].Text != "CD      " || segs[1].Attrs.Bold {
		t.Errorf("segment 1 = %+v, want plain \"CD      \"", segs[1])
	}
}

func TestSnapshotFullCells(t *testing.T) {
	s := newTestScreen(2, 5)
	s.WriteString("AB")

	snap := s.Snapshot(SnapshotDetailFull)
	cells := snap.Lines[0].Cells
	if len(cells) != 5 {
		t.Fatalf("got %d cells, want 5", len(cells))
	}
	if cells[0].Char != "A" || cells[1].Char != "B" {
		t.Errorf("cells[0:2] = %q,%q, want \"A\",\"B\"", cells[0].Char, cells[1].Char)
	}
	if cells[2].Char != " " {
		t.Errorf("cells[2] = %q, want blank", cells[2].Char)
	}
}

func TestSnapshotCursor(t *testing.T) {
	s := newTestScreen(5, 10)
	s.WriteString("\x1b[3;4H")

	snap := s.Snapshot(SnapshotDetailText)
	if snap.Cursor.Row != 2 || snap.Cursor.Col != 3 {
		t.Errorf("cursor = (%d,%d), want (2,3)", snap.Cursor.Row, snap.Cursor.Col)
	}
	if !snap.Cursor.Visible {
		t.Error("expected cursor visible by default")
	}
}

func TestSnapshotJSONRoundTrips(t *testing.T) {
	s := newTestScreen(2, 5)
	s.WriteString("hi")

	data, err := s.Snapshot(SnapshotDetailText).JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty JSON output")
	}
}

func TestColorToHex(t *testing.T) {
	if got := colorToHex(DefaultColor); got != "" {
		t.Errorf("colorToHex(default) = %q, want empty", got)
	}
	if got := colorToHex(IndexedAttrColor(5)); got != "idx:5" {
		t.Errorf("colorToHex(indexed) = %q, want %q", got, "idx:5")
	}
	if got := colorToHex(TrueAttrColor(0xff, 0x00, 0x80)); got != "#ff0080" {
		t.Errorf("colorToHex(truecolor) = %q, want %q", got, "#ff0080")
	}
}
