package termscreen

// ModeFlags is the bitset of terminal modes toggled by SM/RM and the
// DEC private-mode variants (DECSET/DECRST) (spec.md §3 "Mode").
type ModeFlags uint32

const (
	ModeInsert ModeFlags = 1 << iota
	ModeOrigin
	ModeAutowrap
	ModeReverseVideo
	ModeAppCursorKeys
	ModeAppKeypad
	ModeCursorVisible
	ModeLinefeedNewline // LNM: \n also returns to column 0
	ModeSaveLinesOnClear
	ModeBracketedPaste
	ModeMouseX10
	ModeMouseNormal
	ModeMouseButtonEvent
	ModeMouseAnyEvent
	ModeMouseSGR
	ModeFocusReporting
	ModeAlternateScreen
)

// ModeState tracks the live mode bitset. The four indicator LEDs are kept
// separately, in LEDState.
type ModeState struct {
	flags ModeFlags
}

// defaultModeState returns the power-on mode state: autowrap and cursor
// visibility on, everything else off.
func defaultModeState() ModeState {
	return ModeState{flags: ModeAutowrap | ModeCursorVisible}
}

// Has reports whether every bit in mask is set.
func (m ModeState) Has(mask ModeFlags) bool { return m.flags&mask == mask }

// Set turns on every bit in mask.
func (m *ModeState) Set(mask ModeFlags) { m.flags |= mask }

// Clear turns off every bit in mask.
func (m *ModeState) Clear(mask ModeFlags) { m.flags &^= mask }

// Assign sets or clears mask according to on.
func (m *ModeState) Assign(mask ModeFlags, on bool) {
	if on {
		m.Set(mask)
	} else {
		m.Clear(mask)
	}
}

// MouseTrackingVariant reports which mouse-reporting mode (if any) is
// active, in priority order X10 < Normal < ButtonEvent < AnyEvent.
type MouseTrackingVariant int

const (
	MouseTrackingNone MouseTrackingVariant = iota
	MouseTrackingX10
	MouseTrackingNormal
	MouseTrackingButtonEvent
	MouseTrackingAnyEvent
)

// MouseTracking resolves the active variant from the mode bitset.
func (m ModeState) MouseTracking() MouseTrackingVariant {
	switch {
	case m.Has(ModeMouseAnyEvent):
		return MouseTrackingAnyEvent
	case m.Has(ModeMouseButtonEvent):
		return MouseTrackingButtonEvent
	case m.Has(ModeMouseNormal):
		return MouseTrackingNormal
	case m.Has(ModeMouseX10):
		return MouseTrackingX10
	default:
		return MouseTrackingNone
	}
}

// LEDState tracks the four indicator LEDs toggled by DECLL.
type LEDState struct {
	NumLock    bool
	CapsLock   bool
	ScrollLock bool
	LED4       bool
}
