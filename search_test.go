package termscreen

import "testing"

func TestSearchSingleLine(t *testing.T) {
	s := newTestScreen(3, 20)
	s.WriteString("hello world")

	matches := s.Search("world", SearchOptions{})
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	m := matches[0]
	if m.StartCol != 6 || m.EndCol != 10 {
		t.Errorf("match cols = (%d,%d), want (6,10)", m.StartCol, m.EndCol)
	}
	if m.StartLine != m.EndLine {
		t.Errorf("expected single-line match to share a LineID")
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	s := newTestScreen(3, 20)
	s.WriteString("Hello WORLD")

	if got := s.Search("world", SearchOptions{}); len(got) != 0 {
		t.Errorf("expected no case-sensitive match, got %d", len(got))
	}
	got := s.Search("world", SearchOptions{CaseInsensitive: true})
	if len(got) != 1 {
		t.Fatalf("got %d case-insensitive matches, want 1", len(got))
	}
}

func TestSearchAcrossWrappedLine(t *testing.T) {
	s := newTestScreen(3, 10)
	s.WriteString("HelloWorld!") // fills row 0 exactly, wraps '!' to row 1

	if !s.Line(0).IsWrapped() {
		t.Fatal("expected row 0 to be marked wrapped")
	}

	matches := s.Search("ld!", SearchOptions{})
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	m := matches[0]
	if m.StartLine == m.EndLine {
		t.Error("expected match to span the wrap boundary into a different line")
	}
	if m.EndCol != 0 {
		t.Errorf("expected match to end at column 0 of the wrapped continuation, got %d", m.EndCol)
	}
}

func TestSearchNoMatch(t *testing.T) {
	s := newTestScreen(3, 20)
	s.WriteString("hello world")

	if got := s.Search("xyz", SearchOptions{}); got != nil {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	s := newTestScreen(3, 20)
	s.WriteString("hello world")

	if got := s.Search("", SearchOptions{}); got != nil {
		t.Errorf("expected nil for empty query, got %v", got)
	}
}

func TestSearchBackwardOrder(t *testing.T) {
	s := newTestScreen(3, 20)
	s.WriteString("cat\r\ncat\r\ncat")

	fwd := s.Search("cat", SearchOptions{Direction: SearchForward})
	bwd := s.Search("cat", SearchOptions{Direction: SearchBackward})

	if len(fwd) != 3 || len(bwd) != 3 {
		t.Fatalf("got %d forward, %d backward matches, want 3 each", len(fwd), len(bwd))
	}
	if fwd[0].StartLine != bwd[len(bwd)-1].StartLine {
		t.Error("expected backward scan to be the reverse of forward within the main screen")
	}
}
