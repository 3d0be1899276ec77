package termscreen

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is a mutable, per-screen 256-entry XTerm color table: 16 named
// ANSI colors, a 6x6x6 color cube, and a 24-step grayscale ramp
// (spec.md §3 "XTerm Palette"). OSC 4 rewrites entries at runtime.
type Palette struct {
	entries [256]color.RGBA
	bus     *ListenerBus
}

// NewPalette returns a palette preloaded with the standard XTerm 256-color
// defaults.
func NewPalette() *Palette {
	p := &Palette{}
	copy(p.entries[:], defaultPaletteEntries[:])
	return p
}

func (p *Palette) attach(bus *ListenerBus) { p.bus = bus }

// Entry returns the RGBA color stored at index.
func (p *Palette) Entry(index uint8) color.RGBA {
	return p.entries[index]
}

// SetEntry overwrites index with an RGBA color, firing a ChangePalette
// notification on the attached bus.
func (p *Palette) SetEntry(index uint8, c color.RGBA) {
	p.entries[index] = c
	if p.bus != nil {
		p.bus.publish(Change{Kind: ChangePalette, PaletteIndex: index})
	}
}

// SetEntryFromXTermSpec installs at index a color given as the three
// 16-bit channels of an OSC 4 "rgb:RRRR/GGGG/BBBB" spec, scaling each
// channel down to 8 bits by keeping its high byte.
func (p *Palette) SetEntryFromXTermSpec(index uint8, r16, g16, b16 uint16) {
	p.SetEntry(index, color.RGBA{
		R: uint8(r16 >> 8),
		G: uint8(g16 >> 8),
		B: uint8(b16 >> 8),
		A: 255,
	})
}

// Reset restores index to its power-on default.
func (p *Palette) Reset(index uint8) {
	p.SetEntry(index, defaultPaletteEntries[index])
}

// ResetAll restores every entry to its power-on default.
func (p *Palette) ResetAll() {
	for i := 0; i < 256; i++ {
		p.Reset(uint8(i))
	}
}

// Nearest returns the palette index whose color is closest to target in
// CIE76 Lab distance, via go-colorful (spec.md §3 "XTerm Palette":
// truecolor-to-indexed fallback for limited-color consumers).
func (p *Palette) Nearest(target color.RGBA) uint8 {
	goal, _ := colorful.MakeColor(target)
	best := uint8(0)
	bestDist := -1.0
	for i, c := range p.entries {
		cand, ok := colorful.MakeColor(c)
		if !ok {
			continue
		}
		d := goal.DistanceLab(cand)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}

// Blend returns the color at fraction t between two palette entries
// (t=0 gives a, t=1 gives b), blended in Lab space via go-colorful.
func (p *Palette) Blend(a, b uint8, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(p.entries[a])
	cb, _ := colorful.MakeColor(p.entries[b])
	blended := ca.BlendLab(cb, t)
	r, g, b2, alpha := blended.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b2 >> 8), A: uint8(alpha >> 8)}
}

// defaultPaletteEntries is the standard XTerm 256-color table: 16 named
// colors (0-15), a 216-entry color cube (16-231), and a 24-step grayscale
// ramp (232-255).
var defaultPaletteEntries = func() [256]color.RGBA {
	var p [256]color.RGBA

	named := [16]color.RGBA{
		{0, 0, 0, 255}, {205, 49, 49, 255}, {13, 188, 121, 255}, {229, 229, 16, 255},
		{36, 114, 200, 255}, {188, 63, 188, 255}, {17, 168, 205, 255}, {229, 229, 229, 255},
		{102, 102, 102, 255}, {241, 76, 76, 255}, {35, 209, 139, 255}, {245, 245, 67, 255},
		{59, 142, 234, 255}, {214, 112, 214, 255}, {41, 184, 219, 255}, {255, 255, 255, 255},
	}
	copy(p[0:16], named[:])

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		p[232+j] = color.RGBA{R: gray, G: gray, B: gray, A: 255}
	}

	return p
}()
