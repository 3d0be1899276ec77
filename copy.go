package termscreen

import "strings"

// CopyOptions configures a CopyRange extraction (spec.md §4.6).
type CopyOptions struct {
	// Rectangular restricts every row to [startCol, endCol] instead of
	// taking intermediate rows in full.
	Rectangular bool
	// SpacesPerTab expands tab characters when > 0; 0 passes them through.
	SpacesPerTab int
	// EOL is inserted between rows, subject to the right-margin
	// suppression rule below.
	EOL string
	// AlwaysNewLineAtRightMargin disables the suppression rule: EOL is
	// always appended between rows regardless of right-margin content.
	AlwaysNewLineAtRightMargin bool
	// NoEndWhitespace trims trailing spaces/tabs from each row's text.
	NoEndWhitespace bool
}

// CopyRange extracts text from a LineIterator snapshot between two cursor
// positions (as returned by NewIterator, addressed by iterator position
// rather than raw row number so the range can span main screen and
// scrollback alike), inclusive of both ends (spec.md §4.6).
func (s *Screen) CopyRange(it *LineIterator, startPos, startCol, endPos, endCol int, opts CopyOptions) string {
	if it == nil {
		return ""
	}
	if startPos > endPos || (startPos == endPos && startCol > endCol) {
		return ""
	}

	var b strings.Builder
	for pos := startPos; pos <= endPos; pos++ {
		l, ok := it.resolve(pos)
		if !ok {
			continue
		}

		colStart, colEnd := 0, l.VisibleColumns()
		if opts.Rectangular {
			colStart, colEnd = startCol, endCol+1
		} else {
			if pos == startPos {
				colStart = startCol
			}
			if pos == endPos {
				colEnd = endCol + 1
			}
		}

		b.WriteString(extractLineText(l, colStart, colEnd, opts))

		if pos != endPos && !shouldSuppressEOL(l, colEnd, opts) {
			b.WriteString(opts.EOL)
		}
	}
	return b.String()
}

// extractLineText renders [colStart, colEnd) of l, expanding tabs if
// configured and skipping wide-character continuation cells.
func extractLineText(l *Line, colStart, colEnd int, opts CopyOptions) string {
	if colStart < 0 {
		colStart = 0
	}
	if colEnd > l.VisibleColumns() {
		colEnd = l.VisibleColumns()
	}

	var out []rune
	col := 0
	for i := colStart; i < colEnd; i++ {
		c := l.Cell(i)
		if c == nil || c.IsWideSecond() {
			continue
		}
		r := c.Rune
		if r == 0 {
			r = ' '
		}
		if r == '\t' && opts.SpacesPerTab > 0 {
			n := opts.SpacesPerTab - (col % opts.SpacesPerTab)
			for k := 0; k < n; k++ {
				out = append(out, ' ')
				col++
			}
			continue
		}
		out = append(out, r)
		col++
	}

	text := string(out)
	if opts.NoEndWhitespace {
		text = strings.TrimRight(text, " \t")
	}
	return text
}

// shouldSuppressEOL implements spec.md §4.6's right-margin rule: a row
// whose rightmost cell is non-whitespace and whose copy reaches the right
// margin suppresses the trailing EOL, since the content likely continues
// visually onto the next row rather than ending a paragraph.
func shouldSuppressEOL(l *Line, colEnd int, opts CopyOptions) bool {
	if opts.AlwaysNewLineAtRightMargin {
		return false
	}
	if colEnd < l.VisibleColumns() {
		return false
	}
	last := l.Cell(l.VisibleColumns() - 1)
	if last == nil {
		return false
	}
	return last.Rune != ' ' && last.Rune != 0 && last.Rune != '\t'
}
