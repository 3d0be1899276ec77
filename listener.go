package termscreen

import "sync"

// ChangeKind discriminates the topics a Listener can observe
// (spec.md §3 "Listener Bus").
type ChangeKind int

const (
	ChangeTextEdited ChangeKind = iota
	ChangeTextRemoved
	ChangeCursorMoved
	ChangeResized
	ChangeTitleChanged
	ChangeBell
	ChangePalette
	ChangeModeChanged
	ChangeScreenSwapped
	ChangeLED
)

// Change describes one notification published on the bus. Only the
// fields relevant to Kind are populated.
type Change struct {
	Kind ChangeKind

	// ChangeTextEdited / ChangeTextRemoved: coalesced row range, inclusive.
	StartRow int
	EndRow   int

	// ChangeCursorMoved
	Row, Col int

	// ChangeResized
	Rows, Columns int

	// ChangeTitleChanged
	Title string
	Icon  bool

	// ChangePalette
	PaletteIndex uint8

	// ChangeModeChanged
	Mode ModeFlags
	On   bool

	// ChangeLED
	LEDs LEDState
}

// Listener is the capability-object callback a Screen notifies of state
// changes (spec.md §3 "Listener Bus" design note: a single-method
// interface in place of a raw func pointer plus opaque context).
type Listener interface {
	OnChange(c Change)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(Change)

func (f ListenerFunc) OnChange(c Change) { f(c) }

// ListenerBus is a synchronous, snapshot-iterated pub/sub dispatcher.
// Subscribe/Unsubscribe may be called from inside an OnChange callback
// without deadlocking or corrupting an in-flight publish, because publish
// iterates a snapshot slice taken under lock rather than the live map.
type ListenerBus struct {
	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int

	pendingEdit    *Change
	pendingRemoved *Change
}

// NewListenerBus returns an empty bus.
func NewListenerBus() *ListenerBus {
	return &ListenerBus{listeners: make(map[int]Listener)}
}

// Subscribe registers a listener and returns a token for Unsubscribe.
func (b *ListenerBus) Subscribe(l Listener) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.listeners[b.nextID] = l
	return b.nextID
}

// Unsubscribe removes a previously subscribed listener.
func (b *ListenerBus) Unsubscribe(token int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.listeners, token)
}

func (b *ListenerBus) snapshot() []Listener {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Listener, 0, len(b.listeners))
	for _, l := range b.listeners {
		out = append(out, l)
	}
	return out
}

// publish dispatches c synchronously to every currently subscribed
// listener, in no particular order.
func (b *ListenerBus) publish(c Change) {
	for _, l := range b.snapshot() {
		l.OnChange(c)
	}
}

// noteEdited coalesces adjacent/overlapping edited-row notifications into
// a single range instead of firing once per row, flushing the previous
// pending range first if the new one doesn't touch it.
func (b *ListenerBus) noteEdited(row int) {
	b.coalesce(&b.pendingEdit, ChangeTextEdited, row, row)
}

// noteEditedRange coalesces a whole span of edited rows in one call. Use
// this instead of calling noteEdited row-by-row for an operation that
// touches a known contiguous range (a full clear, a scroll, an insert or
// delete of several lines) — two noteEdited calls for the span's
// endpoints only merge into one range when every row between them is
// also noted, which a bulk operation never does.
func (b *ListenerBus) noteEditedRange(start, end int) {
	b.coalesce(&b.pendingEdit, ChangeTextEdited, start, end)
}

// noteRemoved coalesces removed-row notifications the same way.
func (b *ListenerBus) noteRemoved(row int) {
	b.coalesce(&b.pendingRemoved, ChangeTextRemoved, row, row)
}

func (b *ListenerBus) coalesce(pending **Change, kind ChangeKind, start, end int) {
	if *pending != nil && start <= (*pending).EndRow+1 && end >= (*pending).StartRow-1 {
		if start < (*pending).StartRow {
			(*pending).StartRow = start
		}
		if end > (*pending).EndRow {
			(*pending).EndRow = end
		}
		return
	}
	b.flushPending(pending)
	*pending = &Change{Kind: kind, StartRow: start, EndRow: end}
}

// FlushPending publishes and clears any coalesced edit/removal ranges.
// Call at the end of each Write batch so observers see one notification
// per logical update rather than one per cell mutation.
func (b *ListenerBus) FlushPending() {
	b.flushPending(&b.pendingEdit)
	b.flushPending(&b.pendingRemoved)
}

func (b *ListenerBus) flushPending(pending **Change) {
	if *pending == nil {
		return
	}
	c := **pending
	*pending = nil
	b.publish(c)
}
