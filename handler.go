package termscreen

import (
	"encoding/base64"
	"fmt"
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// ApplicationCommandReceived forwards an APC sequence to the configured provider.
func (s *Screen) ApplicationCommandReceived(data []byte) {
	s.mu.Lock()
	p := s.apcProvider
	s.mu.Unlock()
	if p != nil {
		p.Receive(data)
	}
}

// Backspace moves the cursor left one column, stopping at column 0.
func (s *Screen) Backspace() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.PendingWrap = false
	if s.cursor.Col > 0 {
		s.cursor.Col--
	}
}

// Bell rings the configured bell provider and fires a ChangeBell notification.
func (s *Screen) Bell() {
	s.mu.Lock()
	p := s.bellProvider
	s.mu.Unlock()
	if p != nil {
		p.Ring()
	}
	s.bus.publish(Change{Kind: ChangeBell})
}

// CarriageReturn moves the cursor to column 0 of the current row.
func (s *Screen) CarriageReturn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Col = 0
	s.cursor.PendingWrap = false
}

// ClearLine clears portions of the current row (CSI K).
func (s *Screen) ClearLine(mode ansicode.LineClearMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bg := s.template.Bg
	switch mode {
	case ansicode.LineClearModeRight:
		s.main.ClearRowRange(s.cursor.Row, s.cursor.Col, s.columns, bg)
	case ansicode.LineClearModeLeft:
		s.main.ClearRowRange(s.cursor.Row, 0, s.cursor.Col+1, bg)
	case ansicode.LineClearModeAll:
		s.main.ClearRow(s.cursor.Row, bg)
	}
	s.bus.noteEdited(s.cursor.Row)
}

// ClearScreen clears screen regions relative to the cursor (CSI J).
func (s *Screen) ClearScreen(mode ansicode.ClearMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bg := s.template.Bg
	switch mode {
	case ansicode.ClearModeBelow:
		s.main.ClearRowRange(s.cursor.Row, s.cursor.Col, s.columns, bg)
		for row := s.cursor.Row + 1; row < s.rows; row++ {
			s.main.ClearRow(row, bg)
		}
	case ansicode.ClearModeAbove:
		for row := 0; row < s.cursor.Row; row++ {
			s.main.ClearRow(row, bg)
		}
		s.main.ClearRowRange(s.cursor.Row, 0, s.cursor.Col+1, bg)
	case ansicode.ClearModeAll:
		s.main.ClearAll(bg)
	case ansicode.ClearModeSaved:
		if s.main == s.primary {
			s.scrollback.Clear()
		}
	}
	s.bus.noteEditedRange(0, s.rows-1)
}

// ClearTabs clears tab stops at the cursor column or across the row (TBC).
func (s *Screen) ClearTabs(mode ansicode.TabulationClearMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch mode {
	case ansicode.TabulationClearModeCurrent:
		s.main.ClearTabStop(s.cursor.Col)
	case ansicode.TabulationClearModeAll:
		s.main.ClearAllTabStops()
	}
}

// ClipboardLoad reads the clipboard provider and answers with an OSC 52 reply.
func (s *Screen) ClipboardLoad(clipboard byte, terminator string) {
	s.mu.Lock()
	p := s.clipboardProvider
	s.mu.Unlock()
	if p == nil {
		return
	}
	content := p.Read(clipboard)
	if content == "" {
		return
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	s.writeResponseString("\x1b]52;" + string(clipboard) + ";" + encoded + terminator)
}

// ClipboardStore writes data to the clipboard provider (OSC 52 set).
func (s *Screen) ClipboardStore(clipboard byte, data []byte) {
	s.mu.Lock()
	p := s.clipboardProvider
	s.mu.Unlock()
	if p != nil {
		p.Write(clipboard, data)
	}
}

// ConfigureCharset designates a charset into one of the four G-set slots.
func (s *Screen) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := CharsetIndex(index)
	if idx >= CharsetIndexG0 && idx <= CharsetIndexG3 {
		s.charsets.slots[idx] = Charset(charset)
	}
}

// Decaln fills the active screen with 'E' (DEC screen alignment test).
func (s *Screen) Decaln() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.main.FillWithE()
	s.cursor.PendingWrap = false
}

// DeleteChars removes n characters at the cursor, shifting the row's tail left.
func (s *Screen) DeleteChars(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.main.DeleteChars(s.cursor.Row, s.cursor.Col, n, s.template.Bg)
	s.bus.noteEdited(s.cursor.Row)
}

// DeleteLines removes n lines at the cursor row within the scroll region.
func (s *Screen) DeleteLines(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.region.Contains(s.cursor.Row) {
		s.main.DeleteLines(s.cursor.Row, n, s.region.Bottom, s.template.Bg)
		s.bus.noteEditedRange(s.cursor.Row, s.region.Bottom-1)
	}
}

// DeviceStatus answers a DSR request: terminal-ready (5) or cursor position (6).
func (s *Screen) DeviceStatus(n int) {
	s.mu.RLock()
	row, col := s.cursor.Row, s.cursor.Col
	s.mu.RUnlock()

	switch n {
	case 5:
		s.writeResponseString("\x1b[0n")
	case 6:
		s.writeResponseString(fmt.Sprintf("\x1b[%d;%dR", row+1, col+1))
	}
}

// EraseChars resets n cells at the cursor to the background color without shifting.
func (s *Screen) EraseChars(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bg := s.template.Bg
	end := s.cursor.Col + n
	if end > s.columns {
		end = s.columns
	}
	s.main.ClearRowRange(s.cursor.Row, s.cursor.Col, end, bg)
	s.bus.noteEdited(s.cursor.Row)
}

// Goto moves the cursor to (row, col), honoring origin mode for row.
func (s *Screen) Goto(row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row = s.effectiveRow(row)
	s.cursor.Row = clampInt(row, 0, s.rows-1)
	s.cursor.Col = clampInt(col, 0, s.columns-1)
	s.cursor.PendingWrap = false
}

// GotoCol moves the cursor to col, keeping the current row.
func (s *Screen) GotoCol(col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Col = clampInt(col, 0, s.columns-1)
	s.cursor.PendingWrap = false
}

// GotoLine moves the cursor to row, honoring origin mode.
func (s *Screen) GotoLine(row int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row = s.effectiveRow(row)
	s.cursor.Row = clampInt(row, 0, s.rows-1)
	s.cursor.PendingWrap = false
}

// HorizontalTabSet enables a tab stop at the cursor column.
func (s *Screen) HorizontalTabSet() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.main.SetTabStop(s.cursor.Col)
}

// IdentifyTerminal answers a DA1/DA2 query with the active emulator's identity.
func (s *Screen) IdentifyTerminal(b byte) {
	s.mu.RLock()
	resp := s.emulator.deviceAttributesResponse()
	s.mu.RUnlock()
	if resp != "" {
		s.writeResponseString(resp)
	}
}

// Input writes a printable character at the cursor, applying charset
// translation, wide-character spacing, insert mode, and deferred autowrap.
//
// Autowrap is deferred rather than eager: filling the last column sets
// cursor.PendingWrap instead of moving the cursor immediately, so a
// cursor-motion sequence arriving before the next printable character still
// observes the cursor at the last column (spec.md §4.1 autowrap invariant).
func (s *Screen) Input(r rune) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r = translate(s.charsets.effective(), r)

	width := runeWidth(r)
	if width == 0 {
		return
	}

	if s.cursor.PendingWrap {
		s.wrapLocked()
	}

	wide := isWideRune(r)

	if s.cursor.Col+width > s.columns {
		if s.mode.Has(ModeAutowrap) {
			s.wrapLocked()
		} else if wide {
			return
		} else {
			s.cursor.Col = s.columns - 1
		}
	}

	if s.mode.Has(ModeInsert) {
		s.main.InsertBlanks(s.cursor.Row, s.cursor.Col, width, s.template.Bg)
	}

	attrs := s.template
	attrs.Charset = s.charsets.active
	if wide {
		attrs = attrs.WithFlag(AttrWideCharFirst)
	}
	s.main.SetCell(s.cursor.Row, s.cursor.Col, Cell{Rune: r, Attrs: attrs, Hyperlink: s.currentHyperlink})
	s.bus.noteEdited(s.cursor.Row)

	s.cursor.Col++

	if wide && s.cursor.Col < s.columns {
		spacer := s.template.WithFlag(AttrWideCharSecond)
		s.main.SetCell(s.cursor.Row, s.cursor.Col, Cell{Rune: 0, Attrs: spacer})
		s.cursor.Col++
	}

	if s.cursor.Col >= s.columns {
		s.cursor.Col = s.columns - 1
		if s.mode.Has(ModeAutowrap) {
			s.cursor.PendingWrap = true
		}
	}
}

// wrapLocked performs a deferred autowrap: marks the current line as
// soft-wrapped, moves to column 0 of the next row, and scrolls if that row
// falls off the bottom of the scroll region. Caller must hold s.mu.
func (s *Screen) wrapLocked() {
	if l := s.main.Line(s.cursor.Row); l != nil {
		l.SetWrapped(true)
	}
	s.cursor.Col = 0
	s.cursor.Row++
	s.cursor.PendingWrap = false
	s.scrollIfNeeded()
}

// InsertBlank inserts n blank cells at the cursor, shifting the row's tail right.
func (s *Screen) InsertBlank(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.main.InsertBlanks(s.cursor.Row, s.cursor.Col, n, s.template.Bg)
	s.bus.noteEdited(s.cursor.Row)
}

// InsertBlankLines inserts n blank lines at the cursor row within the scroll region.
func (s *Screen) InsertBlankLines(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.region.Contains(s.cursor.Row) {
		s.main.InsertLines(s.cursor.Row, n, s.region.Bottom, s.template.Bg)
		s.bus.noteEditedRange(s.cursor.Row, s.region.Bottom-1)
	}
}

// LineFeed moves the cursor down one row, scrolling if needed, clearing the
// soft-wrap flag on the current line (an explicit newline is not a wrap).
func (s *Screen) LineFeed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l := s.main.Line(s.cursor.Row); l != nil {
		l.SetWrapped(false)
	}
	if s.mode.Has(ModeLinefeedNewline) {
		s.cursor.Col = 0
	}
	s.cursor.Row++
	s.cursor.PendingWrap = false
	s.scrollIfNeeded()
}

// MoveBackward moves the cursor left n columns, stopping at column 0.
func (s *Screen) MoveBackward(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Col = clampInt(s.cursor.Col-n, 0, s.columns-1)
	s.cursor.PendingWrap = false
}

// MoveBackwardTabs moves the cursor left to the previous n tab stops.
func (s *Screen) MoveBackwardTabs(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.cursor.Col = s.main.PrevTabStop(s.cursor.Col)
	}
	s.cursor.PendingWrap = false
}

// MoveDown moves the cursor down n rows, stopping at the last row.
func (s *Screen) MoveDown(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Row = clampInt(s.cursor.Row+n, 0, s.rows-1)
	s.cursor.PendingWrap = false
}

// MoveDownCr moves the cursor down n rows and to column 0.
func (s *Screen) MoveDownCr(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Row = clampInt(s.cursor.Row+n, 0, s.rows-1)
	s.cursor.Col = 0
	s.cursor.PendingWrap = false
}

// MoveForward moves the cursor right n columns, stopping at the last column.
func (s *Screen) MoveForward(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Col = clampInt(s.cursor.Col+n, 0, s.columns-1)
	s.cursor.PendingWrap = false
}

// MoveForwardTabs moves the cursor right to the next n tab stops.
func (s *Screen) MoveForwardTabs(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.cursor.Col = s.main.NextTabStop(s.cursor.Col)
	}
	s.cursor.PendingWrap = false
}

// MoveUp moves the cursor up n rows, stopping at row 0.
func (s *Screen) MoveUp(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Row = clampInt(s.cursor.Row-n, 0, s.rows-1)
	s.cursor.PendingWrap = false
}

// MoveUpCr moves the cursor up n rows and to column 0.
func (s *Screen) MoveUpCr(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Row = clampInt(s.cursor.Row-n, 0, s.rows-1)
	s.cursor.Col = 0
	s.cursor.PendingWrap = false
}

// PopKeyboardMode removes n entries from the Kitty keyboard-protocol mode stack.
func (s *Screen) PopKeyboardMode(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n && len(s.keyboardModes) > 0; i++ {
		s.keyboardModes = s.keyboardModes[:len(s.keyboardModes)-1]
	}
}

// PopTitle restores the previous title/icon-title frame from the stack.
func (s *Screen) PopTitle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.titles.Pop()
	s.bus.publish(Change{Kind: ChangeTitleChanged, Title: s.titles.Title()})
}

// PrivacyMessageReceived forwards a PM sequence to the configured provider.
func (s *Screen) PrivacyMessageReceived(data []byte) {
	s.mu.Lock()
	p := s.pmProvider
	s.mu.Unlock()
	if p != nil {
		p.Receive(data)
	}
}

// PushKeyboardMode pushes a mode onto the Kitty keyboard-protocol mode stack.
func (s *Screen) PushKeyboardMode(mode ansicode.KeyboardMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyboardModes = append(s.keyboardModes, mode)
}

// PushTitle saves the current title/icon-title frame onto the stack.
func (s *Screen) PushTitle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.titles.Push()
}

// ReportKeyboardMode answers with the top of the Kitty keyboard-protocol mode stack.
func (s *Screen) ReportKeyboardMode() {
	s.mu.RLock()
	var mode ansicode.KeyboardMode
	if len(s.keyboardModes) > 0 {
		mode = s.keyboardModes[len(s.keyboardModes)-1]
	}
	s.mu.RUnlock()
	s.writeResponseString(fmt.Sprintf("\x1b[?%du", mode))
}

// ReportModifyOtherKeys answers with the current modifyOtherKeys setting.
func (s *Screen) ReportModifyOtherKeys() {
	s.mu.RLock()
	modify := s.modifyOtherKeys
	s.mu.RUnlock()
	s.writeResponseString(fmt.Sprintf("\x1b[>4;%dm", modify))
}

// ResetColor reverts a dynamic-color index to its default (OSC 104/110/111/112).
// Indices 0-255 are palette slots and reset through the Palette itself,
// firing ChangePalette; anything outside that range is a standalone
// foreground/background/cursor override with no palette slot to fall
// back to, so it is simply dropped.
func (s *Screen) ResetColor(i int) {
	if i >= 0 && i < 256 {
		s.palette.Reset(uint8(i))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.colors, i)
}

// ResetState clears the screen and restores power-on cursor, mode, charset,
// and attribute defaults (RIS).
func (s *Screen) ResetState() {
	s.mu.Lock()

	s.main.ClearAll(DefaultColor)
	s.cursor = NewCursor()
	s.template = DefaultAttributeWord()
	s.region = fullRegion(s.rows)
	s.mode = defaultModeState()
	s.charsets = newCharsetState()
	s.colors = make(map[int]AttrColor)
	s.keyboardModes = nil
	s.currentHyperlink = nil

	s.mu.Unlock()
	s.palette.ResetAll()
}

// RestoreCursorPosition restores the cursor, attribute template, origin mode,
// and charset state saved by SaveCursorPosition (DECRC).
func (s *Screen) RestoreCursorPosition() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreCursorLocked()
}

func (s *Screen) restoreCursorLocked() {
	saved := s.savedMain
	if s.onAlternate {
		saved = s.savedAlt
	}
	if saved == nil {
		return
	}
	s.cursor.Row = saved.Row
	s.cursor.Col = saved.Col
	s.cursor.PendingWrap = saved.PendingWrap
	s.template = saved.Attrs
	s.charsets = saved.Charsets
	s.mode.Assign(ModeOrigin, saved.OriginMode)
}

// ReverseIndex moves the cursor up one row, scrolling the region down if the
// cursor sits at its top (RI).
func (s *Screen) ReverseIndex() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor.Row == s.region.Top {
		s.main.ScrollDown(s.region.Top, s.region.Bottom, 1, s.template.Bg)
	} else if s.cursor.Row > 0 {
		s.cursor.Row--
	}
	s.cursor.PendingWrap = false
}

// SaveCursorPosition saves the cursor, attribute template, origin mode, and
// charset state for a later RestoreCursorPosition (DECSC).
func (s *Screen) SaveCursorPosition() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveCursorLocked()
}

func (s *Screen) saveCursorLocked() {
	saved := &SavedCursor{
		Row:         s.cursor.Row,
		Col:         s.cursor.Col,
		PendingWrap: s.cursor.PendingWrap,
		Attrs:       s.template,
		OriginMode:  s.mode.Has(ModeOrigin),
		Charsets:    s.charsets,
	}
	if s.onAlternate {
		s.savedAlt = saved
	} else {
		s.savedMain = saved
	}
}

// ScrollDown shifts the scroll region's lines down by n (SD).
func (s *Screen) ScrollDown(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.main.ScrollDown(s.region.Top, s.region.Bottom, n, s.template.Bg)
}

// ScrollUp shifts the scroll region's lines up by n (SU), scrolling the
// displaced lines into the Scrollback when the region's top is row 0.
func (s *Screen) ScrollUp(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.main.ScrollUp(s.region.Top, s.region.Bottom, n, s.template.Bg)
}

// SetActiveCharset selects which G-set slot (0-3) is active for Input.
func (s *Screen) SetActiveCharset(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n >= 0 && n <= int(CharsetIndexG3) {
		s.charsets.active = CharsetIndex(n)
	}
}

// SetColor installs a dynamic color (OSC 4/10/11/12). Indices 0-255 are
// XTerm Palette slots and go straight into the Palette via SetEntry,
// firing ChangePalette, when the active emulator supports palette
// mutation (otherwise they are ignored); anything outside that range (the
// OSC 10/11/12 foreground/background/cursor colors, which have no palette
// slot) is tracked as a standalone override.
func (s *Screen) SetColor(index int, c color.Color) {
	r, g, b, _ := c.RGBA() // color.Color.RGBA already returns 16-bit channels

	if index >= 0 && index < 256 {
		s.mu.RLock()
		allowed := s.emulator.supportsPaletteMutation()
		s.mu.RUnlock()
		if allowed {
			s.palette.SetEntryFromXTermSpec(uint8(index), uint16(r), uint16(g), uint16(b))
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.colors[index] = TrueAttrColor(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// SetCursorStyle changes the cursor's rendering style (DECSCUSR), when the
// active emulator recognizes it.
func (s *Screen) SetCursorStyle(style ansicode.CursorStyle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emulator.supportsCursorStyle() {
		s.cursor.Style = CursorStyle(style)
	}
}

// SetDynamicColor answers an OSC 10/11/12 query with the current value of a
// dynamic color: palette-range indices resolve straight from the Palette
// (kept current by SetColor/ResetColor), anything outside that range falls
// back to whatever override SetColor recorded, if any.
func (s *Screen) SetDynamicColor(prefix string, index int, terminator string) {
	s.mu.RLock()
	c, ok := s.colors[index]
	pal := s.palette
	s.mu.RUnlock()

	var rgb color.RGBA
	switch {
	case ok && c.Kind == ColorTrueColor:
		rgb = c.RGB
	case index >= 0 && index < 256:
		rgb = pal.Entry(uint8(index))
	default:
		return
	}
	s.writeResponseString(fmt.Sprintf("\x1b]%s;rgb:%02x/%02x/%02x%s", prefix, rgb.R, rgb.G, rgb.B, terminator))
}

// SetHyperlink sets (or, given nil, clears) the hyperlink attached to
// subsequently written cells (OSC 8).
func (s *Screen) SetHyperlink(hyperlink *ansicode.Hyperlink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if hyperlink == nil {
		s.currentHyperlink = nil
		return
	}
	s.currentHyperlink = &Hyperlink{ID: hyperlink.ID, URI: hyperlink.URI}
}

// SetKeyboardMode updates the top Kitty keyboard-protocol mode stack entry
// per the given combine behavior (replace/union/difference).
func (s *Screen) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current ansicode.KeyboardMode
	if len(s.keyboardModes) > 0 {
		current = s.keyboardModes[len(s.keyboardModes)-1]
	}

	var next ansicode.KeyboardMode
	switch behavior {
	case ansicode.KeyboardModeBehaviorReplace:
		next = mode
	case ansicode.KeyboardModeBehaviorUnion:
		next = current | mode
	case ansicode.KeyboardModeBehaviorDifference:
		next = current &^ mode
	}

	if len(s.keyboardModes) > 0 {
		s.keyboardModes[len(s.keyboardModes)-1] = next
	} else {
		s.keyboardModes = append(s.keyboardModes, next)
	}
}

// SetKeypadApplicationMode enables application keypad mode (DECKPAM).
func (s *Screen) SetKeypadApplicationMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode.Set(ModeAppKeypad)
}

// SetLEDs replaces the indicator-LED state wholesale (DECLL, CSI Ps q),
// firing ChangeLED when the new state differs from the current one.
func (s *Screen) SetLEDs(leds LEDState) {
	s.mu.Lock()
	if leds == s.leds {
		s.mu.Unlock()
		return
	}
	s.leds = leds
	s.mu.Unlock()
	s.bus.publish(Change{Kind: ChangeLED, LEDs: leds})
}

// SetLED toggles a single indicator LED by its DECLL parameter: 0 turns
// every LED off, 1-3 select NumLock/CapsLock/ScrollLock, anything else
// selects the vendor-defined fourth LED.
func (s *Screen) SetLED(param int, on bool) {
	s.mu.RLock()
	leds := s.leds
	s.mu.RUnlock()

	switch param {
	case 0:
		leds = LEDState{}
	case 1:
		leds.NumLock = on
	case 2:
		leds.CapsLock = on
	case 3:
		leds.ScrollLock = on
	default:
		leds.LED4 = on
	}
	s.SetLEDs(leds)
}

// SetMode enables a mode flag (SM/DECSET), applying side effects for modes
// that aren't pure bits: origin-mode homes the cursor, show-cursor toggles
// Cursor.Visible, and alternate-screen swap swaps the active MainScreen and
// saves/restores the cursor.
func (s *Screen) SetMode(mode ansicode.TerminalMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setModeLocked(mode, true)
}

// UnsetMode disables a mode flag (RM/DECRST).
func (s *Screen) UnsetMode(mode ansicode.TerminalMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setModeLocked(mode, false)
}

func (s *Screen) setModeLocked(mode ansicode.TerminalMode, set bool) {
	var m ModeFlags

	switch mode {
	case ansicode.TerminalModeCursorKeys:
		m = ModeAppCursorKeys
	case ansicode.TerminalModeColumnMode:
		// 132-column mode: width changes are handled by Resize; recognized for
		// protocol completeness, no bit of its own.
		return
	case ansicode.TerminalModeInsert:
		m = ModeInsert
	case ansicode.TerminalModeOrigin:
		m = ModeOrigin
		if set {
			s.cursor.Row = s.region.Top
			s.cursor.Col = 0
		}
	case ansicode.TerminalModeLineWrap:
		m = ModeAutowrap
	case ansicode.TerminalModeBlinkingCursor:
		// cursor-blink is a rendering concern (non-goal); recognized, not stored.
		return
	case ansicode.TerminalModeLineFeedNewLine:
		m = ModeLinefeedNewline
	case ansicode.TerminalModeShowCursor:
		m = ModeCursorVisible
		s.cursor.Visible = set
	case ansicode.TerminalModeReportMouseClicks:
		m = ModeMouseNormal
	case ansicode.TerminalModeReportCellMouseMotion:
		m = ModeMouseButtonEvent
	case ansicode.TerminalModeReportAllMouseMotion:
		m = ModeMouseAnyEvent
	case ansicode.TerminalModeReportFocusInOut:
		m = ModeFocusReporting
	case ansicode.TerminalModeUTF8Mouse:
		m = ModeMouseX10
	case ansicode.TerminalModeSGRMouse:
		m = ModeMouseSGR
	case ansicode.TerminalModeAlternateScroll:
		m = ModeSaveLinesOnClear
	case ansicode.TerminalModeUrgencyHints:
		// urgency-hint (window manager bell flash) is a non-goal; recognized,
		// not stored.
		return
	case ansicode.TerminalModeSwapScreenAndSetRestoreCursor:
		m = ModeAlternateScreen
		if set && !s.onAlternate {
			s.saveCursorLocked()
			s.onAlternate = true
			s.main = s.alternate
			s.main.ClearAll(DefaultColor)
			s.restoreCursorLocked()
		} else if !set && s.onAlternate {
			s.onAlternate = false
			s.main = s.primary
			s.restoreCursorLocked()
		}
		s.bus.publish(Change{Kind: ChangeScreenSwapped})
	case ansicode.TerminalModeBracketedPaste:
		m = ModeBracketedPaste
	default:
		return
	}

	s.mode.Assign(m, set)
	s.bus.publish(Change{Kind: ChangeModeChanged, Mode: m, On: set})
}

// SetModifyOtherKeys sets how modifier+key combinations are reported (xterm modifyOtherKeys).
func (s *Screen) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modifyOtherKeys = modify
}

// SetScrollingRegion sets the scroll margins (1-based inclusive on input,
// converted to the [Top, Bottom) convention internally) and homes the
// cursor (DECSTBM).
func (s *Screen) SetScrollingRegion(top, bottom int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	top--
	if top < 0 {
		top = 0
	}
	if bottom <= 0 || bottom > s.rows {
		bottom = s.rows
	}
	if top >= bottom {
		return
	}

	s.region = ScrollRegion{Top: top, Bottom: bottom}

	if s.mode.Has(ModeOrigin) {
		s.cursor.Row = s.region.Top
	} else {
		s.cursor.Row = 0
	}
	s.cursor.Col = 0
	s.cursor.PendingWrap = false
}

// StartOfStringReceived forwards an SOS sequence to the configured provider.
func (s *Screen) StartOfStringReceived(data []byte) {
	s.mu.Lock()
	p := s.sosProvider
	s.mu.Unlock()
	if p != nil {
		p.Receive(data)
	}
}

// SetTerminalCharAttribute applies one SGR attribute to the drawing template
// used by subsequent Input calls.
func (s *Screen) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch attr.Attr {
	case ansicode.CharAttributeReset:
		s.template = DefaultAttributeWord()
	case ansicode.CharAttributeBold:
		s.template = s.template.WithFlag(AttrBold)
	case ansicode.CharAttributeDim:
		s.template = s.template.WithFlag(AttrDim)
	case ansicode.CharAttributeItalic:
		s.template = s.template.WithFlag(AttrItalic)
	case ansicode.CharAttributeUnderline:
		s.template = s.template.WithFlag(AttrUnderline).
			WithoutFlag(AttrDoubleUnderline | AttrCurlyUnderline | AttrDottedUnderline | AttrDashedUnderline)
	case ansicode.CharAttributeDoubleUnderline:
		s.template = s.template.WithFlag(AttrDoubleUnderline).
			WithoutFlag(AttrUnderline | AttrCurlyUnderline | AttrDottedUnderline | AttrDashedUnderline)
	case ansicode.CharAttributeCurlyUnderline:
		s.template = s.template.WithFlag(AttrCurlyUnderline).
			WithoutFlag(AttrUnderline | AttrDoubleUnderline | AttrDottedUnderline | AttrDashedUnderline)
	case ansicode.CharAttributeDottedUnderline:
		s.template = s.template.WithFlag(AttrDottedUnderline).
			WithoutFlag(AttrUnderline | AttrDoubleUnderline | AttrCurlyUnderline | AttrDashedUnderline)
	case ansicode.CharAttributeDashedUnderline:
		s.template = s.template.WithFlag(AttrDashedUnderline).
			WithoutFlag(AttrUnderline | AttrDoubleUnderline | AttrCurlyUnderline | AttrDottedUnderline)
	case ansicode.CharAttributeBlinkSlow:
		s.template = s.template.WithFlag(AttrBlinkSlow)
	case ansicode.CharAttributeBlinkFast:
		s.template = s.template.WithFlag(AttrBlinkFast)
	case ansicode.CharAttributeReverse:
		s.template = s.template.WithFlag(AttrReverse)
	case ansicode.CharAttributeHidden:
		s.template = s.template.WithFlag(AttrConcealed)
	case ansicode.CharAttributeStrike:
		s.template = s.template.WithFlag(AttrStrike)
	case ansicode.CharAttributeCancelBold:
		s.template = s.template.WithoutFlag(AttrBold)
	case ansicode.CharAttributeCancelBoldDim:
		s.template = s.template.WithoutFlag(AttrBold | AttrDim)
	case ansicode.CharAttributeCancelItalic:
		s.template = s.template.WithoutFlag(AttrItalic)
	case ansicode.CharAttributeCancelUnderline:
		s.template = s.template.WithoutFlag(AttrUnderline | AttrDoubleUnderline | AttrCurlyUnderline | AttrDottedUnderline | AttrDashedUnderline)
	case ansicode.CharAttributeCancelBlink:
		s.template = s.template.WithoutFlag(AttrBlinkSlow | AttrBlinkFast)
	case ansicode.CharAttributeCancelReverse:
		s.template = s.template.WithoutFlag(AttrReverse)
	case ansicode.CharAttributeCancelHidden:
		s.template = s.template.WithoutFlag(AttrConcealed)
	case ansicode.CharAttributeCancelStrike:
		s.template = s.template.WithoutFlag(AttrStrike)
	case ansicode.CharAttributeForeground:
		s.template.Fg = s.resolveColorLocked(attr)
	case ansicode.CharAttributeBackground:
		s.template.Bg = s.resolveColorLocked(attr)
	case ansicode.CharAttributeUnderlineColor:
		if attr.RGBColor == nil && attr.IndexedColor == nil && attr.NamedColor == nil {
			s.template.UnderlineColor = DefaultColor
		} else {
			s.template.UnderlineColor = s.resolveColorLocked(attr)
		}
	}
}

// resolveColorLocked converts an SGR color payload to an AttrColor. Caller
// must hold s.mu. Emulators that predate truecolor SGR get an RGB request
// downgraded to its nearest palette slot rather than dropping it.
func (s *Screen) resolveColorLocked(attr ansicode.TerminalCharAttribute) AttrColor {
	if attr.RGBColor != nil {
		if !s.emulator.supportsTruecolor() {
			rgb := color.RGBA{R: attr.RGBColor.R, G: attr.RGBColor.G, B: attr.RGBColor.B, A: 255}
			return IndexedAttrColor(s.palette.Nearest(rgb))
		}
		return TrueAttrColor(attr.RGBColor.R, attr.RGBColor.G, attr.RGBColor.B)
	}
	if attr.IndexedColor != nil {
		return IndexedAttrColor(uint8(attr.IndexedColor.Index))
	}
	if attr.NamedColor != nil {
		// Named ANSI colors 0-15 (SGR 30-37/40-47/90-97/100-107) are palette
		// slots; the named foreground/background defaults stay ColorDefault.
		if n := int(*attr.NamedColor); n >= 0 && n < 16 {
			return IndexedAttrColor(uint8(n))
		}
	}
	return DefaultColor
}

// SetTitle updates the window title (OSC 0/2).
func (s *Screen) SetTitle(title string) {
	s.mu.Lock()
	s.titles.SetTitle(title)
	s.mu.Unlock()
	s.bus.publish(Change{Kind: ChangeTitleChanged, Title: title})
}

// Substitute replaces the cell at the cursor with '?' (error indication, SUB).
func (s *Screen) Substitute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.main.Cell(s.cursor.Row, s.cursor.Col); c != nil {
		c.Rune = '?'
		c.MarkDirty()
	}
}

// Tab moves the cursor right to the next n tab stops (HT).
func (s *Screen) Tab(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.cursor.Col = s.main.NextTabStop(s.cursor.Col)
	}
	s.cursor.PendingWrap = false
}

// TextAreaSizeChars answers the screen dimensions in character cells (CSI 18 t).
func (s *Screen) TextAreaSizeChars() {
	s.mu.RLock()
	rows, cols := s.rows, s.columns
	s.mu.RUnlock()
	s.writeResponseString(fmt.Sprintf("\x1b[8;%d;%dt", rows, cols))
}

// TextAreaSizePixels answers the screen dimensions in pixels (CSI 14 t),
// assuming a fixed 10x20 cell size — no real rendering backend is in scope.
func (s *Screen) TextAreaSizePixels() {
	s.mu.RLock()
	rows, cols := s.rows, s.columns
	s.mu.RUnlock()
	s.writeResponseString(fmt.Sprintf("\x1b[4;%d;%dt", rows*20, cols*10))
}

// UnsetKeypadApplicationMode disables application keypad mode (DECKPNM).
func (s *Screen) UnsetKeypadApplicationMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode.Clear(ModeAppKeypad)
}

// SetWorkingDirectory records the session's working directory (OSC 7).
func (s *Screen) SetWorkingDirectory(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workingDir = uri
}

// WorkingDirectory returns the working directory URI last set via OSC 7.
func (s *Screen) WorkingDirectory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workingDir
}

// WorkingDirectoryPath extracts the filesystem path from the file:// URI
// set via OSC 7, or "" if none was set or the URI isn't a file:// URI.
func (s *Screen) WorkingDirectoryPath() string {
	s.mu.RLock()
	uri := s.workingDir
	s.mu.RUnlock()

	const prefix = "file://"
	if len(uri) <= len(prefix) || uri[:len(prefix)] != prefix {
		return ""
	}
	rest := uri[len(prefix):]
	for i := 0; i < len(rest); i++ {
		if rest[i] == '/' {
			return rest[i:]
		}
	}
	return ""
}

// CellSizePixels answers a fixed placeholder cell size (CSI 16 t). Pixel
// rendering is out of scope; this exists only so DA-style size queries get
// a well-formed reply instead of silence.
func (s *Screen) CellSizePixels() {
	s.writeResponseString("\x1b[6;20;10t")
}

// SixelReceived is a no-op: Sixel/pixel graphics are excluded (spec.md
// Non-goal "graphical rendering decisions ... beyond the indexed palette").
func (s *Screen) SixelReceived(params [][]uint16, data []byte) {}
