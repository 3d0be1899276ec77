package termscreen

import (
	"github.com/danielgatis/go-iterator"
)

// LineRegion identifies which deque a LineIterator handle resolves
// against (spec.md §3 "Line Iterator").
type LineRegion int

const (
	RegionMainScreen LineRegion = iota
	RegionScrollback
)

// lineHandle is a stable (region, LineID) pair. It survives scroll
// mutation: a handle obtained before a scroll still names the same
// logical line afterward, even though its row/index moved.
type lineHandle struct {
	region LineRegion
	id     LineID
}

// LineIterator walks the logical sequence scrollback-oldest → … →
// scrollback-newest → main-screen-top → … → main-screen-bottom, exposing
// a handle that survives scroll mutation (spec.md §3, §8). Internally it
// snapshots the ordered handle sequence through go-iterator and tracks a
// cursor position into that snapshot; Advance re-resolves handles lazily
// against the live screen, so stale handles (a line evicted since the
// snapshot was taken) surface as IteratorCannotAdvance rather than a
// dangling reference.
type LineIterator struct {
	screen  *Screen
	seq     *iterator.SliceIterator[lineHandle]
	handles []lineHandle
	pos     int
}

// newLineIterator builds the ordered handle snapshot for the screen as it
// stands at the moment of the call.
func newLineIterator(s *Screen) *LineIterator {
	handles := make([]lineHandle, 0, s.scrollback.Len()+s.main.Rows())
	if s.scrollback != nil {
		n := s.scrollback.Len()
		for i := n - 1; i >= 0; i-- {
			l := s.scrollback.Line(i)
			if l != nil {
				handles = append(handles, lineHandle{region: RegionScrollback, id: l.ID()})
			}
		}
	}
	for row := 0; row < s.main.Rows(); row++ {
		l := s.main.Line(row)
		if l != nil {
			handles = append(handles, lineHandle{region: RegionMainScreen, id: l.ID()})
		}
	}
	return &LineIterator{
		screen:  s,
		seq:     iterator.NewIterator(handles),
		handles: handles,
		pos:     -1,
	}
}

// Valid reports whether the cursor currently names a resolvable line.
func (it *LineIterator) Valid() bool {
	_, ok := it.resolve(it.pos)
	return ok
}

// Line returns the line currently named by the cursor, or nil if the
// cursor is out of bounds or the handle no longer resolves.
func (it *LineIterator) Line() *Line {
	l, _ := it.resolve(it.pos)
	return l
}

// Region reports which deque the current handle belongs to.
func (it *LineIterator) Region() LineRegion {
	if it.pos < 0 || it.pos >= len(it.handles) {
		return RegionMainScreen
	}
	return it.handles[it.pos].region
}

// Advance moves the cursor by k steps (negative moves backward) and
// returns the resolved line. Returns (nil, IteratorCannotAdvance) if the
// move would leave the sequence bounds or the destination handle's line
// has since been evicted (e.g. scrolled out of a Fixed scrollback).
func (it *LineIterator) Advance(k int) (*Line, Result) {
	target := it.pos + k
	if target < 0 || target >= len(it.handles) {
		return nil, IteratorCannotAdvance
	}
	l, ok := it.resolve(target)
	if !ok {
		return nil, IteratorCannotAdvance
	}
	it.pos = target
	return l, Ok
}

// Reset repositions the cursor before the first element.
func (it *LineIterator) Reset() {
	it.pos = -1
	it.seq = iterator.NewIterator(it.handles)
}

// Len returns the number of handles captured in this iterator's snapshot.
func (it *LineIterator) Len() int { return len(it.handles) }

// Lines drains the snapshot in order, resolving each handle against the
// live screen and skipping any that no longer resolve.
func (it *LineIterator) Lines() []*Line {
	seq := iterator.NewIterator(it.handles)
	out := make([]*Line, 0, len(it.handles))
	for seq.HasNext() {
		h, _ := seq.GetNext()
		if l, ok := it.resolveHandle(h); ok {
			out = append(out, l)
		}
	}
	return out
}

func (it *LineIterator) resolveHandle(h lineHandle) (*Line, bool) {
	switch h.region {
	case RegionScrollback:
		if it.screen.scrollback == nil {
			return nil, false
		}
		_, l := it.screen.scrollback.ByID(h.id)
		return l, l != nil
	default:
		for row := 0; row < it.screen.main.Rows(); row++ {
			l := it.screen.main.Line(row)
			if l != nil && l.ID() == h.id {
				return l, true
			}
		}
		return nil, false
	}
}

func (it *LineIterator) resolve(pos int) (*Line, bool) {
	if pos < 0 || pos >= len(it.handles) {
		return nil, false
	}
	return it.resolveHandle(it.handles[pos])
}
