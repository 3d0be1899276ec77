package termscreen

// cellOrigin pairs a cell with the (row, col) it originated from before a
// reflow, so a tracked position (the cursor) can be carried through it.
type cellOrigin struct {
	cell     Cell
	row, col int
}

// lineCellsOrigin returns every visible column's cell, skipping wide-char
// continuation halves, tagged with its source column.
func lineCellsOrigin(l *Line, row int) []cellOrigin {
	out := make([]cellOrigin, 0, l.visibleColumns)
	for col := 0; col < l.visibleColumns; col++ {
		c := l.cells[col]
		if c.IsWideSecond() {
			continue
		}
		out = append(out, cellOrigin{cell: c, row: row, col: col})
	}
	return out
}

// trimTrailingBlanks drops trailing blank cells, the same policy
// lineRunesTrimmed applies for Search/Copy.
func trimTrailingBlanks(cells []cellOrigin) []cellOrigin {
	end := len(cells)
	for end > 0 {
		r := cells[end-1].cell.Rune
		if r != ' ' && r != 0 {
			break
		}
		end--
	}
	return cells[:end]
}

// reflowLines regroups lines into soft-wrap paragraphs — maximal runs
// joined by the continued-from-previous bit — and relays each paragraph's
// content at the new column width, rewrapping greedily the same way
// Input's autowrap does (spec.md §4.2 "soft-wrapped runs ... are
// reflowed"; hard line breaks, i.e. paragraph boundaries, are preserved).
// track names a cell to follow (typically the cursor); if its source
// cell survives the reflow, *track is updated to its new position.
func reflowLines(lines []Line, columns int, idAlloc func() LineID, track *Position) []Line {
	var out []Line
	var para []cellOrigin

	flush := func() {
		out = append(out, layoutParagraph(para, columns, idAlloc, track, len(out))...)
		para = nil
	}

	for row := range lines {
		l := &lines[row]
		cells := lineCellsOrigin(l, row)
		wrapped := l.IsWrapped()
		if !wrapped {
			cells = trimTrailingBlanks(cells)
		}
		para = append(para, cells...)
		if !wrapped {
			flush()
		}
	}
	if len(para) > 0 {
		flush()
	}
	if len(out) == 0 {
		out = append(out, newLine(idAlloc(), columns))
	}
	return out
}

// layoutParagraph lays cells out left to right, starting a new physical
// line (and marking the previous one wrapped) whenever the next cell
// wouldn't fit in the remaining width.
func layoutParagraph(cells []cellOrigin, columns int, idAlloc func() LineID, track *Position, startRow int) []Line {
	if len(cells) == 0 {
		return []Line{newLine(idAlloc(), columns)}
	}

	var out []Line
	cur := newLine(idAlloc(), columns)
	col := 0

	for _, co := range cells {
		width := 1
		if co.cell.IsWideFirst() && columns > 1 {
			width = 2
		}

		if col+width > columns {
			cur.SetWrapped(true)
			out = append(out, cur)
			cur = newLine(idAlloc(), columns)
			col = 0
		}

		cur.cells[col] = co.cell
		cur.cells[col].MarkDirty()
		if track != nil && co.row == track.Row && co.col == track.Col {
			track.Row = startRow + len(out)
			track.Col = col
		}
		col++

		if width == 2 {
			spacer := co.cell.Attrs.WithoutFlag(AttrWideCharFirst).WithFlag(AttrWideCharSecond)
			cur.cells[col] = Cell{Rune: 0, Attrs: spacer}
			cur.cells[col].MarkDirty()
			col++
		}
	}

	out = append(out, cur)
	return out
}
