package rgb666

import "image/color"

// Color is an 18-bit RGB666 color word as transmitted on the bus: red in
// bits 17-12, green in bits 11-6, blue in bits 5-0. The driver masks the
// word to 18 bits, so bits above the low 18 are never transmitted.
type Color uint32

// Predefined colors.
const (
	Black   Color = 0x00000
	White   Color = 0x3FFFF
	Red     Color = 0x3F000
	Green   Color = 0x00FC0
	Blue    Color = 0x0003F
	Yellow  Color = 0x3FFC0
	Cyan    Color = 0x00FFF
	Magenta Color = 0x3F03F
)

// New packs three 6-bit channels into a Color. Channel values above 63
// are masked to their low 6 bits.
func New(r, g, b uint8) Color {
	return Color(uint32(r&0x3F)<<12 | uint32(g&0x3F)<<6 | uint32(b&0x3F))
}

// RGB returns the three 6-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 12 & 0x3F), uint8(c >> 6 & 0x3F), uint8(c & 0x3F)
}

// RGBA implements color.Color. Each 6-bit channel is expanded to 16 bits
// by bit replication, so 0x3F maps to 0xFFFF.
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb := c.RGB()
	return expand(cr), expand(cg), expand(cb), 0xFFFF
}

// toColor converts any color.Color to Color.
func toColor(c color.Color) color.Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit channels; keep the top 6 bits of each.
	return New(uint8(r>>10), uint8(g>>10), uint8(b>>10))
}

// Model converts colors to Color.
var Model = color.ModelFunc(toColor)

// expand replicates a 6-bit value across 16 bits.
func expand(v uint8) uint32 {
	w := uint32(v)
	return w<<10 | w<<4 | w>>2
}
