package termscreen

import (
	"golang.org/x/text/cases"
)

// SearchDirection selects the scan order (spec.md §4.5).
type SearchDirection int

const (
	// SearchForward scans the main screen top-to-bottom, then the
	// scrollback newest-to-oldest.
	SearchForward SearchDirection = iota
	// SearchBackward is the reverse of SearchForward.
	SearchBackward
)

// SearchOptions configures a Search call.
type SearchOptions struct {
	CaseInsensitive bool
	Direction       SearchDirection
}

// SearchMatch identifies a matched span by line identity rather than row
// number, consistent with the Line Iterator's handle-based addressing:
// row numbers shift under scrolling, LineIDs don't (spec.md §4.4's
// RangeDescription uses the same "row id" convention).
type SearchMatch struct {
	StartLine LineID
	StartCol  int
	EndLine   LineID
	EndCol    int // inclusive
}

var foldCaser = cases.Fold()

// foldRune returns r's case-folded form as a single rune, falling back to
// r itself if folding would change its width — this keeps folded text
// column-aligned with the original so match positions stay exact
// (spec.md §4.5 "Unicode simple case folding").
func foldRune(r rune) rune {
	folded := []rune(foldCaser.String(string(r)))
	if len(folded) == 1 {
		return folded[0]
	}
	return r
}

type paraLine struct {
	line   *Line
	region LineRegion
}

// chronologicalLines returns every retained line in true buffer order:
// scrollback oldest-to-newest, then the main screen top-to-bottom.
func (s *Screen) chronologicalLines() []paraLine {
	var out []paraLine
	if s.scrollback != nil {
		n := s.scrollback.Len()
		for i := n - 1; i >= 0; i-- {
			if l := s.scrollback.Line(i); l != nil {
				out = append(out, paraLine{line: l, region: RegionScrollback})
			}
		}
	}
	for row := 0; row < s.main.Rows(); row++ {
		if l := s.main.Line(row); l != nil {
			out = append(out, paraLine{line: l, region: RegionMainScreen})
		}
	}
	return out
}

// paragraph is a maximal run of lines joined by the continued-from-
// previous (wrap) bit: every line but the last has IsWrapped() set
// (spec.md §4.5 "those runs are reassembled logically for matching").
type paragraph struct {
	lines []paraLine
}

func groupParagraphs(ls []paraLine) []paragraph {
	var out []paragraph
	var cur paragraph
	for _, pl := range ls {
		cur.lines = append(cur.lines, pl)
		if !pl.line.IsWrapped() {
			out = append(out, cur)
			cur = paragraph{}
		}
	}
	if len(cur.lines) > 0 {
		out = append(out, cur)
	}
	return out
}

type ownedRune struct {
	r    rune
	line *Line
	col  int
}

// lineRunesFull returns every visible column's rune (space for blank
// cells), skipping wide-character continuation halves, alongside each
// rune's originating column.
func lineRunesFull(l *Line) (runes []rune, cols []int) {
	for i := 0; i < l.visibleColumns; i++ {
		c := &l.cells[i]
		if c.IsWideSecond() {
			continue
		}
		r := c.Rune
		if r == 0 {
			r = ' '
		}
		runes = append(runes, r)
		cols = append(cols, i)
	}
	return runes, cols
}

// lineRunesTrimmed is lineRunesFull with trailing blanks removed, used for
// the last line of a paragraph so matches don't extend into padding.
func lineRunesTrimmed(l *Line) ([]rune, []int) {
	full, fullCols := lineRunesFull(l)
	end := len(full)
	for end > 0 && full[end-1] == ' ' {
		end--
	}
	return full[:end], fullCols[:end]
}

func (p paragraph) ownedRunes() []ownedRune {
	var out []ownedRune
	for i, pl := range p.lines {
		var rs []rune
		var cols []int
		if i == len(p.lines)-1 {
			rs, cols = lineRunesTrimmed(pl.line)
		} else {
			rs, cols = lineRunesFull(pl.line)
		}
		for j, r := range rs {
			out = append(out, ownedRune{r: r, line: pl.line, col: cols[j]})
		}
	}
	return out
}

func reverseParagraphs(ps []paragraph) []paragraph {
	out := make([]paragraph, len(ps))
	for i, p := range ps {
		out[len(ps)-1-i] = p
	}
	return out
}

// Search scans for query and returns every match in scan order
// (spec.md §4.5). An empty query matches nothing.
func (s *Screen) Search(query string, opts SearchOptions) []SearchMatch {
	if query == "" {
		return nil
	}

	s.mu.RLock()
	lines := s.chronologicalLines()
	s.mu.RUnlock()

	all := groupParagraphs(lines)

	var mainParas, scrollParas []paragraph
	for _, p := range all {
		if p.lines[0].region == RegionMainScreen {
			mainParas = append(mainParas, p)
		} else {
			scrollParas = append(scrollParas, p)
		}
	}

	var ordered []paragraph
	if opts.Direction == SearchBackward {
		ordered = append(ordered, scrollParas...)
		ordered = append(ordered, reverseParagraphs(mainParas)...)
	} else {
		ordered = append(ordered, mainParas...)
		ordered = append(ordered, reverseParagraphs(scrollParas)...)
	}

	queryRunes := []rune(query)
	if opts.CaseInsensitive {
		for i, r := range queryRunes {
			queryRunes[i] = foldRune(r)
		}
	}

	var matches []SearchMatch
	for _, p := range ordered {
		owned := p.ownedRunes()
		hay := make([]rune, len(owned))
		for i, o := range owned {
			if opts.CaseInsensitive {
				hay[i] = foldRune(o.r)
			} else {
				hay[i] = o.r
			}
		}
		matches = append(matches, findMatches(hay, owned, queryRunes)...)
	}
	return matches
}

func findMatches(hay []rune, owned []ownedRune, query []rune) []SearchMatch {
	if len(query) == 0 || len(hay) < len(query) {
		return nil
	}
	var out []SearchMatch
	for i := 0; i+len(query) <= len(hay); i++ {
		if runesEqual(hay[i:i+len(query)], query) {
			start := owned[i]
			end := owned[i+len(query)-1]
			out = append(out, SearchMatch{
				StartLine: start.line.ID(),
				StartCol:  start.col,
				EndLine:   end.line.ID(),
				EndCol:    end.col,
			})
		}
	}
	return out
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
