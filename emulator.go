package termscreen

// EmulatorFamily groups variants that share the same control-sequence
// dialect (spec.md §4.1, §6 emulator_for_name/default_name_for).
type EmulatorFamily int

const (
	FamilyXTerm EmulatorFamily = iota
	FamilyVT
	FamilyANSIBBS
	FamilyANSISCO
	FamilyDumb
)

// Emulator names a specific terminal personality: the family gates which
// control sequences are recognized meaningfully (DECSCUSR cursor styles,
// OSC 4 palette mutation, SGR truecolor) and selects the DA1 reply that
// IdentifyTerminal sends over Talkback. Name is the $TERM-style name of the
// personality; no Talkback reply includes it.
type Emulator struct {
	Family EmulatorFamily
	Name   string
}

// XTerm256Color is the default emulator: full XTerm feature set, 256-color
// palette, DECSCUSR, OSC 4/8/52.
func XTerm256Color() Emulator { return Emulator{Family: FamilyXTerm, Name: "xterm-256color"} }

// VT420 restricts to the DEC VT420 dialect: no OSC palette mutation, no
// SGR truecolor, DECSCUSR still recognized (VT420 defines it).
func VT420() Emulator { return Emulator{Family: FamilyVT, Name: "vt420"} }

// ANSIBBS is the historical ANSI.SYS/BBS dialect: no palette mutation, no
// DECSCUSR, no truecolor (RGB SGR requests map to the nearest palette entry).
// Indexed SGR colors are not limited to the first 16 slots.
func ANSIBBS() Emulator { return Emulator{Family: FamilyANSIBBS, Name: "ansi"} }

// ANSISCO is the SCO console dialect: like ANSIBBS with a different
// function-key escape table (not modeled here beyond the Name/Family tag).
func ANSISCO() Emulator { return Emulator{Family: FamilyANSISCO, Name: "ansi-sco"} }

// Dumb is a minimal fallback personality: it sends no DA1 reply and
// recognizes neither DECSCUSR nor palette mutation. Every other control
// sequence, including cursor addressing and SGR color, is still interpreted
// as for the other families.
func Dumb() Emulator { return Emulator{Family: FamilyDumb, Name: "dumb"} }

// emulatorForName resolves a $TERM-style name to an Emulator, falling back
// to XTerm256Color for anything unrecognized (spec.md §6).
func emulatorForName(name string) Emulator {
	switch name {
	case "vt420", "vt320", "vt220", "vt102", "vt100":
		return VT420()
	case "ansi", "ansi-bbs":
		return ANSIBBS()
	case "ansi-sco", "scoansi":
		return ANSISCO()
	case "dumb":
		return Dumb()
	default:
		return XTerm256Color()
	}
}

// defaultNameForFamily returns the canonical $TERM value for a family
// (spec.md §6).
func defaultNameForFamily(f EmulatorFamily) string {
	switch f {
	case FamilyVT:
		return "vt420"
	case FamilyANSIBBS:
		return "ansi"
	case FamilyANSISCO:
		return "ansi-sco"
	case FamilyDumb:
		return "dumb"
	default:
		return "xterm-256color"
	}
}

// supportsPaletteMutation reports whether OSC 4 dynamic palette rewrites
// are meaningful for this emulator (spec.md §4.7).
func (e Emulator) supportsPaletteMutation() bool {
	return e.Family == FamilyXTerm
}

// supportsCursorStyle reports whether DECSCUSR is recognized.
func (e Emulator) supportsCursorStyle() bool {
	return e.Family == FamilyXTerm || e.Family == FamilyVT
}

// supportsTruecolor reports whether 24-bit SGR colors are rendered as-is.
// Emulators outside the XTerm family predate truecolor SGR and only know
// the 256-slot indexed palette, so an RGB request must be downgraded to
// its nearest palette entry.
func (e Emulator) supportsTruecolor() bool {
	return e.Family == FamilyXTerm
}

// deviceAttributesResponse returns the DA1 (CSI c) reply body for this
// emulator's family.
func (e Emulator) deviceAttributesResponse() string {
	switch e.Family {
	case FamilyVT:
		return "\x1b[?62;1;6c"
	case FamilyANSIBBS, FamilyANSISCO:
		return "\x1b[?1;0c"
	case FamilyDumb:
		return ""
	default:
		return "\x1b[?62;c"
	}
}
