package termscreen

import (
	"sync"

	"github.com/danielgatis/go-ansicode"
)

var _ ansicode.Handler = (*Screen)(nil)

const (
	DefaultRows    = 24
	DefaultColumns = 80
)

// Screen is a single terminal's complete state: a primary MainScreen with
// its Scrollback, an alternate MainScreen with none, the cursor, current
// drawing attributes, charset slots, active mode bits, the 256-entry
// palette, title/icon-title stack, LED state, and the listener bus that
// observers subscribe to (spec.md §2 OVERVIEW, §3).
type Screen struct {
	mu sync.RWMutex

	id ScreenID

	rows, columns int

	primary     *MainScreen
	alternate   *MainScreen
	main        *MainScreen // active screen: primary or alternate
	scrollback  *Scrollback
	onAlternate bool

	cursor      *Cursor
	savedMain   *SavedCursor
	savedAlt    *SavedCursor
	template    AttributeWord
	charsets    charsetState
	region      ScrollRegion
	mode        ModeState
	leds        LEDState

	palette  *Palette
	titles   *titleState
	talkback Talkback
	bus      *ListenerBus
	emulator Emulator

	colors           map[int]AttrColor
	keyboardModes    []ansicode.KeyboardMode
	modifyOtherKeys  ansicode.ModifyOtherKeys
	currentHyperlink *Hyperlink
	workingDir       string

	nextLineID LineID

	bellProvider      BellProvider
	apcProvider       APCProvider
	pmProvider        PMProvider
	sosProvider       SOSProvider
	clipboardProvider ClipboardProvider
	recordingProvider RecordingProvider

	decoder *ansicode.Decoder
}

// Option configures a Screen at construction time.
type Option func(*Screen)

// WithSize sets the initial screen dimensions. Non-positive values fall
// back to DefaultRows/DefaultColumns.
func WithSize(rows, columns int) Option {
	if rows <= 0 {
		rows = DefaultRows
	}
	if columns <= 0 {
		columns = DefaultColumns
	}
	return func(s *Screen) {
		s.rows = rows
		s.columns = columns
	}
}

// WithScrollbackPolicy configures the primary screen's off-screen history
// retention (spec.md §3 "Scrollback").
func WithScrollbackPolicy(policy ScrollbackPolicy) Option {
	return func(s *Screen) {
		s.scrollback = newScrollback(policy)
	}
}

// WithTalkback sets the single outbound sink a screen uses to answer
// device-status and similar queries (spec.md §3 "Talkback Adapter").
func WithTalkback(t Talkback) Option {
	return func(s *Screen) { s.talkback = t }
}

// WithBellProvider sets the bell/beep handler.
func WithBellProvider(p BellProvider) Option {
	return func(s *Screen) { s.bellProvider = p }
}

// WithClipboardProvider sets the OSC 52 clipboard handler.
func WithClipboardProvider(p ClipboardProvider) Option {
	return func(s *Screen) { s.clipboardProvider = p }
}

// WithRecordingProvider sets the raw-input recorder.
func WithRecordingProvider(p RecordingProvider) Option {
	return func(s *Screen) { s.recordingProvider = p }
}

// WithAPCProvider sets the Application Program Command sink.
func WithAPCProvider(p APCProvider) Option {
	return func(s *Screen) { s.apcProvider = p }
}

// WithPMProvider sets the Privacy Message sink.
func WithPMProvider(p PMProvider) Option {
	return func(s *Screen) { s.pmProvider = p }
}

// WithSOSProvider sets the Start-of-String sink.
func WithSOSProvider(p SOSProvider) Option {
	return func(s *Screen) { s.sosProvider = p }
}

// WithEmulator selects the terminal personality (XTerm256Color, VT420,
// ANSIBBS, ANSISCO, Dumb) gating DECSCUSR, OSC 4 palette mutation, and
// the DA1 identification reply (spec.md §4.1, §6).
func WithEmulator(e Emulator) Option {
	return func(s *Screen) { s.emulator = e }
}

// NewScreen constructs a Screen and registers it, returning its handle.
// Defaults to 24x80, disabled scrollback, and no-op providers.
func NewScreen(opts ...Option) (ScreenID, *Screen) {
	s := &Screen{
		rows:              DefaultRows,
		columns:           DefaultColumns,
		bellProvider:      NoopBell{},
		apcProvider:       NoopAPC{},
		pmProvider:        NoopPM{},
		sosProvider:       NoopSOS{},
		clipboardProvider: NoopClipboard{},
		recordingProvider: NoopRecording{},
		talkback:          NoListeningTalkback{},
		emulator:          XTerm256Color(),
		colors:            make(map[int]AttrColor),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.scrollback == nil {
		s.scrollback = newScrollback(DisabledScrollback())
	}

	idAlloc := func() LineID {
		s.nextLineID++
		return s.nextLineID
	}

	s.primary = newMainScreen(s.rows, s.columns, idAlloc, s.scrollback)
	s.alternate = newMainScreen(s.rows, s.columns, idAlloc, nil)
	s.main = s.primary

	s.cursor = NewCursor()
	s.template = DefaultAttributeWord()
	s.charsets = newCharsetState()
	s.region = fullRegion(s.rows)
	s.mode = defaultModeState()
	s.palette = NewPalette()
	s.titles = newTitleState()
	s.bus = NewListenerBus()
	s.palette.attach(s.bus)

	s.decoder = ansicode.NewDecoder(s)

	id := registry.add(s)
	s.id = id
	return id, s
}

// ID returns the handle this screen is registered under.
func (s *Screen) ID() ScreenID { return s.id }

// Dispose unregisters the screen and releases its distributed-scrollback
// budget membership, if any.
func (s *Screen) Dispose() {
	s.scrollback.Close()
	registry.remove(s.id)
}

// Rows returns the active screen's row count.
func (s *Screen) Rows() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows
}

// Columns returns the active screen's column count.
func (s *Screen) Columns() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.columns
}

// Cell returns the cell at (row, col) in the currently active screen.
func (s *Screen) Cell(row, col int) *Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.main.Cell(row, col)
}

// Line returns the row-th line of the currently active screen.
func (s *Screen) Line(row int) *Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.main.Line(row)
}

// CursorPosition returns the cursor's current (row, col).
func (s *Screen) CursorPosition() (row, col int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor.Row, s.cursor.Col
}

// CursorVisible reports whether the cursor should currently be drawn.
func (s *Screen) CursorVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor.Visible && s.mode.Has(ModeCursorVisible)
}

// OnAlternateScreen reports whether the alternate screen is active.
func (s *Screen) OnAlternateScreen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.onAlternate
}

// Mode returns a snapshot of the current mode bitset.
func (s *Screen) Mode() ModeState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// LEDs returns the current indicator-LED state.
func (s *Screen) LEDs() LEDState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leds
}

// Palette returns the screen's mutable 256-entry color table.
func (s *Screen) Palette() *Palette { return s.palette }

// Listeners returns the screen's pub/sub bus for Change notifications.
func (s *Screen) Listeners() *ListenerBus { return s.bus }

// NewIterator returns a LineIterator snapshotting the current
// scrollback+main-screen line sequence.
func (s *Screen) NewIterator() *LineIterator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newLineIterator(s)
}

// Write feeds raw bytes through the VT parser, mutating screen state and
// firing listener notifications and talkback responses along the way.
// Implements io.Writer. Each Handler method locks s.mu itself for the
// duration of its own state change, rather than Write holding it for the
// whole decode — the decoder dispatches back into those same methods
// synchronously, and a single outer lock here would deadlock against them.
func (s *Screen) Write(data []byte) (int, error) {
	s.recordingProvider.Record(data)
	n, err := s.decoder.Write(data)
	s.bus.FlushPending()
	return n, err
}

// WriteString is a convenience wrapper around Write.
func (s *Screen) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// Resize changes the screen's dimensions. Shrinking rows pushes lines
// above the cursor into scrollback when the cursor would otherwise be
// pushed off screen. A column-width change reflows the active screen's
// soft-wrapped paragraphs at the new width (spec.md §4.2 Resize reflow,
// §9 Open Question: logical-paragraph unit), carrying the cursor's
// logical position through the relayout; only the active screen's
// content is reflowed eagerly (see DESIGN.md on why scrollback isn't).
func (s *Screen) Resize(rows, columns int) {
	if rows <= 0 || columns <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	oldRows := s.rows
	if rows < oldRows && s.main == s.primary {
		if s.cursor.Row >= rows {
			drop := oldRows - rows
			s.primary.ScrollUp(0, oldRows, drop, s.template.Bg)
			s.cursor.Row -= drop
			if s.cursor.Row < 0 {
				s.cursor.Row = 0
			}
		}
	}

	track := Position{Row: s.cursor.Row, Col: s.cursor.Col}
	if s.main == s.primary {
		s.primary.ResizeTracking(rows, columns, &track)
		s.alternate.Resize(rows, columns)
	} else {
		s.alternate.ResizeTracking(rows, columns, &track)
		s.primary.Resize(rows, columns)
	}

	s.rows = rows
	s.columns = columns
	s.cursor.Row = clampInt(track.Row, 0, rows-1)
	s.cursor.Col = clampInt(track.Col, 0, columns-1)
	s.cursor.PendingWrap = false
	s.region = fullRegion(rows)

	s.bus.publish(Change{Kind: ChangeResized, Rows: rows, Columns: columns})
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// effectiveRow applies origin mode to a requested row.
func (s *Screen) effectiveRow(row int) int {
	if s.mode.Has(ModeOrigin) {
		return row + s.region.Top
	}
	return row
}

// writeResponse routes a terminal reply through the attached Talkback sink
// (spec.md §3 "Talkback Adapter" — the single outbound channel, distinct
// from the Listener Bus's many observers).
func (s *Screen) writeResponse(data []byte) {
	s.respond(data)
}

func (s *Screen) writeResponseString(str string) {
	s.writeResponse([]byte(str))
}

// scrollIfNeeded brings the cursor back inside the active scroll region,
// scrolling content as needed.
func (s *Screen) scrollIfNeeded() {
	if s.cursor.Row >= s.region.Bottom {
		n := s.cursor.Row - s.region.Bottom + 1
		s.main.ScrollUp(s.region.Top, s.region.Bottom, n, s.template.Bg)
		s.cursor.Row = s.region.Bottom - 1
	} else if s.cursor.Row < s.region.Top {
		n := s.region.Top - s.cursor.Row
		s.main.ScrollDown(s.region.Top, s.region.Bottom, n, s.template.Bg)
		s.cursor.Row = s.region.Top
	}
}
