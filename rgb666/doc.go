// Package rgb666 provides the 18-bit RGB666 color format used by the
// ILI9488 parallel bus.
//
// A color is one 18-bit word, transmitted on the bus as-is: 6 bits per
// channel packed contiguously, red in the high bits.
//
//	bit 17    12 11     6 5      0
//	    R R R R R R G G G G G G B B B B B B
//
// This package provides:
//
// - Color: the 18-bit color word, implementing image/color.Color
// - New: packing three 6-bit channels into a Color
// - Model: a color.Model converting standard Go colors to Color
// - Predefined constants for the eight primary and secondary colors
//
// Example usage:
//
//	// Pack a 6-bit-per-channel orange.
//	orange := rgb666.New(63, 31, 0)
//
//	// Convert a standard Go color.
//	c := rgb666.Model.Convert(color.RGBA{R: 0xFF, A: 0xFF}).(rgb666.Color)
//	// c == rgb666.Red
package rgb666
