package termscreen

import "testing"

func TestEmulatorForName(t *testing.T) {
	tests := []struct {
		name   string
		family EmulatorFamily
	}{
		{"vt420", FamilyVT},
		{"vt220", FamilyVT},
		{"ansi", FamilyANSIBBS},
		{"ansi-sco", FamilyANSISCO},
		{"dumb", FamilyDumb},
		{"xterm-256color", FamilyXTerm},
		{"something-unknown", FamilyXTerm},
	}

	for _, tt := range tests {
		got := emulatorForName(tt.name)
		if got.Family != tt.family {
			t.Errorf("emulatorForName(%q).Family = %v, want %v", tt.name, got.Family, tt.family)
		}
	}
}

func TestDefaultNameForFamily(t *testing.T) {
	tests := []struct {
		family EmulatorFamily
		name   string
	}{
		{FamilyXTerm, "xterm-256color"},
		{FamilyVT, "vt420"},
		{FamilyANSIBBS, "ansi"},
		{FamilyANSISCO, "ansi-sco"},
		{FamilyDumb, "dumb"},
	}

	for _, tt := range tests {
		if got := defaultNameForFamily(tt.family); got != tt.name {
			t.Errorf("defaultNameForFamily(%v) = %q, want %q", tt.family, got, tt.name)
		}
	}
}

func TestSupportsPaletteMutation(t *testing.T) {
	if !XTerm256Color().supportsPaletteMutation() {
		t.Error("expected xterm to support palette mutation")
	}
	if VT420().supportsPaletteMutation() {
		t.Error("expected vt420 not to support palette mutation")
	}
	if ANSIBBS().supportsPaletteMutation() {
		t.Error("expected ansi-bbs not to support palette mutation")
	}
}

func TestSupportsCursorStyle(t *testing.T) {
	if !XTerm256Color().supportsCursorStyle() {
		t.Error("expected xterm to support DECSCUSR")
	}
	if !VT420().supportsCursorStyle() {
		t.Error("expected vt420 to support DECSCUSR")
	}
	if ANSIBBS().supportsCursorStyle() {
		t.Error("expected ansi-bbs not to support DECSCUSR")
	}
	if Dumb().supportsCursorStyle() {
		t.Error("expected dumb not to support DECSCUSR")
	}
}

func TestDeviceAttributesResponse(t *testing.T) {
	tests := []struct {
		emu  Emulator
		want string
	}{
		{XTerm256Color(), "\x1b[?62;c"},
		{VT420(), "\x1b[?62;1;6c"},
		{ANSIBBS(), "\x1b[?1;0c"},
		{ANSISCO(), "\x1b[?1;0c"},
		{Dumb(), ""},
	}

	for _, tt := range tests {
		if got := tt.emu.deviceAttributesResponse(); got != tt.want {
			t.Errorf("%+v.deviceAttributesResponse() = %q, want %q", tt.emu, got, tt.want)
		}
	}
}
