package termscreen

import (
	"strings"
	"testing"
)

func TestCopyRangeSingleLine(t *testing.T) {
	s := newTestScreen(3, 20)
	s.WriteString("hello world")
	it := s.NewIterator() // no scrollback attached, so position 0 is main row 0

	got := s.CopyRange(it, 0, 0, 0, 10, CopyOptions{EOL: "\n"})
	if got != "hello world" {
		t.Errorf("CopyRange = %q, want %q", got, "hello world")
	}
}

func TestCopyRangeMultiLine(t *testing.T) {
	s := newTestScreen(3, 20)
	s.WriteString("one\r\ntwo\r\nthree")
	it := s.NewIterator()

	got := s.CopyRange(it, 0, 0, 2, 4, CopyOptions{EOL: "\n"})
	// Without NoEndWhitespace, rows taken in full keep their blank padding.
	want := "one" + strings.Repeat(" ", 17) + "\ntwo" + strings.Repeat(" ", 17) + "\nthree"
	if got != want {
		t.Errorf("CopyRange = %q, want %q", got, want)
	}
}

func TestCopyRangeRectangular(t *testing.T) {
	s := newTestScreen(3, 20)
	s.WriteString("abcdef\r\nghijkl\r\nmnopqr")
	it := s.NewIterator()

	got := s.CopyRange(it, 0, 1, 2, 3, CopyOptions{EOL: "\n", Rectangular: true})
	want := "bcd\nhij\nnop"
	if got != want {
		t.Errorf("CopyRange rectangular = %q, want %q", got, want)
	}
}

func TestCopyRangeTabExpansion(t *testing.T) {
	s := newTestScreen(3, 20)
	// Write a literal tab rune directly into the grid: the VT tab handler
	// moves the cursor rather than storing '\t', so exercising extraction's
	// own tab-expansion path means placing the rune by hand.
	s.main.Cell(0, 0).Rune = 'a'
	s.main.Cell(0, 1).Rune = '\t'
	s.main.Cell(0, 2).Rune = 'b'
	it := s.NewIterator()

	got := s.CopyRange(it, 0, 0, 0, 19, CopyOptions{EOL: "\n", SpacesPerTab: 8, NoEndWhitespace: true})
	want := "a" + strings.Repeat(" ", 7) + "b"
	if got != want {
		t.Errorf("CopyRange tab expansion = %q, want %q", got, want)
	}
}

func TestCopyRangeNoEndWhitespace(t *testing.T) {
	s := newTestScreen(3, 10)
	s.WriteString("hi")
	it := s.NewIterator()

	got := s.CopyRange(it, 0, 0, 0, 9, CopyOptions{EOL: "\n", NoEndWhitespace: true})
	if got != "hi" {
		t.Errorf("CopyRange with NoEndWhitespace = %q, want %q", got, "hi")
	}
}

func TestCopyRangeEmptyForReversedRange(t *testing.T) {
	s := newTestScreen(3, 10)
	s.WriteString("hi")
	it := s.NewIterator()

	got := s.CopyRange(it, 2, 0, 0, 0, CopyOptions{EOL: "\n"})
	if got != "" {
		t.Errorf("CopyRange with start after end = %q, want empty", got)
	}
}
