package termscreen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SnapshotDetail controls how much per-line detail Snapshot captures.
type SnapshotDetail string

const (
	// SnapshotDetailText captures plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled captures text plus runs of uniform rendition.
	SnapshotDetailStyled SnapshotDetail = "styled"
	// SnapshotDetailFull captures every cell individually.
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot is a point-in-time capture of a screen's active rows and cursor
// (spec.md §2 item 12 "Debug Snapshot"). Text() renders it as the textual
// dump the spec calls for; JSON() is an optional structured form for
// embedders that want one.
type Snapshot struct {
	Rows   int
	Cols   int
	Cursor SnapshotCursor
	Lines  []SnapshotLine
}

// SnapshotCursor captures cursor position, visibility, and rendering style.
type SnapshotCursor struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Visible bool   `json:"visible"`
	Style   string `json:"style"`
}

// SnapshotLine captures one row at the requested detail level.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
	Cells    []SnapshotCell    `json:"cells,omitempty"`
}

// SnapshotSegment is a maximal run of cells sharing one rendition.
type SnapshotSegment struct {
	Text      string        `json:"text"`
	Fg        string        `json:"fg,omitempty"`
	Bg        string        `json:"bg,omitempty"`
	Attrs     SnapshotAttrs `json:"attrs,omitempty"`
	Hyperlink *SnapshotLink `json:"hyperlink,omitempty"`
}

// SnapshotCell captures one cell's full rendition.
type SnapshotCell struct {
	Char      string        `json:"char"`
	Fg        string        `json:"fg"`
	Bg        string        `json:"bg"`
	Attrs     SnapshotAttrs `json:"attrs,omitempty"`
	Hyperlink *SnapshotLink `json:"hyperlink,omitempty"`
	Wide      bool          `json:"wide,omitempty"`
}

// SnapshotAttrs is the boolean subset of AttributeWord worth surfacing in
// a debug dump; the various underline styles collapse to one bool.
type SnapshotAttrs struct {
	Bold      bool `json:"bold,omitempty"`
	Dim       bool `json:"dim,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`
	Blink     bool `json:"blink,omitempty"`
	Reverse   bool `json:"reverse,omitempty"`
	Hidden    bool `json:"hidden,omitempty"`
	Strike    bool `json:"strike,omitempty"`
}

// SnapshotLink mirrors a Hyperlink.
type SnapshotLink struct {
	ID  string `json:"id,omitempty"`
	URI string `json:"uri"`
}

func cursorStyleToString(style CursorStyle) string {
	switch style {
	case CursorStyleSteadyBlock:
		return "steady-block"
	case CursorStyleBlinkingUnderline:
		return "blinking-underline"
	case CursorStyleSteadyUnderline:
		return "steady-underline"
	case CursorStyleBlinkingBar:
		return "blinking-bar"
	case CursorStyleSteadyBar:
		return "steady-bar"
	default:
		return "blinking-block"
	}
}

// Snapshot captures the currently active screen (primary or alternate) at
// the given detail level.
func (s *Screen) Snapshot(detail SnapshotDetail) *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		Rows: s.rows,
		Cols: s.columns,
		Cursor: SnapshotCursor{
			Row:     s.cursor.Row,
			Col:     s.cursor.Col,
			Visible: s.cursor.Visible,
			Style:   cursorStyleToString(s.cursor.Style),
		},
		Lines: make([]SnapshotLine, s.rows),
	}
	for row := 0; row < s.rows; row++ {
		snap.Lines[row] = snapshotLine(s.main.Line(row), detail)
	}
	return snap
}

func snapshotLine(l *Line, detail SnapshotDetail) SnapshotLine {
	line := SnapshotLine{Text: lineText(l)}
	switch detail {
	case SnapshotDetailStyled:
		line.Segments = lineSegments(l)
	case SnapshotDetailFull:
		line.Cells = lineCells(l)
	}
	return line
}

func lineText(l *Line) string {
	if l == nil {
		return ""
	}
	runes, _ := lineRunesTrimmed(l)
	return string(runes)
}

func lineSegments(l *Line) []SnapshotSegment {
	if l == nil {
		return nil
	}
	var segs []SnapshotSegment
	var cur *SnapshotSegment
	var chars []rune

	for col := 0; col < l.VisibleColumns(); col++ {
		c := l.Cell(col)
		if c == nil || c.IsWideSecond() {
			continue
		}
		fg := colorToHex(c.Attrs.Fg)
		bg := colorToHex(c.Attrs.Bg)
		attrs := attrsToSnapshot(c.Attrs)
		link := hyperlinkToSnapshot(c.Hyperlink)

		if cur == nil || cur.Fg != fg || cur.Bg != bg || cur.Attrs != attrs || !linkEqual(cur.Hyperlink, link) {
			if cur != nil && len(chars) > 0 {
				cur.Text = string(chars)
				segs = append(segs, *cur)
			}
			cur = &SnapshotSegment{Fg: fg, Bg: bg, Attrs: attrs, Hyperlink: link}
			chars = nil
		}

		r := c.Rune
		if r == 0 {
			r = ' '
		}
		chars = append(chars, r)
	}

	if cur != nil && len(chars) > 0 {
		cur.Text = string(chars)
		segs = append(segs, *cur)
	}
	return segs
}

func lineCells(l *Line) []SnapshotCell {
	if l == nil {
		return nil
	}
	cells := make([]SnapshotCell, 0, l.VisibleColumns())
	for col := 0; col < l.VisibleColumns(); col++ {
		c := l.Cell(col)
		if c == nil {
			continue
		}
		r := c.Rune
		if r == 0 {
			r = ' '
		}
		cells = append(cells, SnapshotCell{
			Char:      string(r),
			Fg:        colorToHex(c.Attrs.Fg),
			Bg:        colorToHex(c.Attrs.Bg),
			Attrs:     attrsToSnapshot(c.Attrs),
			Hyperlink: hyperlinkToSnapshot(c.Hyperlink),
			Wide:      c.IsWideFirst(),
		})
	}
	return cells
}

func colorToHex(c AttrColor) string {
	switch c.Kind {
	case ColorTrueColor:
		return fmt.Sprintf("#%02x%02x%02x", c.RGB.R, c.RGB.G, c.RGB.B)
	case ColorIndexed:
		return fmt.Sprintf("idx:%d", c.Index)
	default:
		return ""
	}
}

func attrsToSnapshot(a AttributeWord) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:   a.HasFlag(AttrBold),
		Dim:    a.HasFlag(AttrDim),
		Italic: a.HasFlag(AttrItalic),
		Underline: a.HasFlag(AttrUnderline) || a.HasFlag(AttrDoubleUnderline) ||
			a.HasFlag(AttrCurlyUnderline) || a.HasFlag(AttrDottedUnderline) || a.HasFlag(AttrDashedUnderline),
		Blink:   a.HasFlag(AttrBlinkSlow) || a.HasFlag(AttrBlinkFast),
		Reverse: a.HasFlag(AttrReverse),
		Hidden:  a.HasFlag(AttrConcealed),
		Strike:  a.HasFlag(AttrStrike),
	}
}

func hyperlinkToSnapshot(h *Hyperlink) *SnapshotLink {
	if h == nil {
		return nil
	}
	return &SnapshotLink{ID: h.ID, URI: h.URI}
}

func linkEqual(a, b *SnapshotLink) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.ID == b.ID && a.URI == b.URI
}

// Text renders the snapshot as one line of plain text per row.
func (snap *Snapshot) Text() string {
	var b strings.Builder
	for _, l := range snap.Lines {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// JSON renders the snapshot as indented JSON.
func (snap *Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}
