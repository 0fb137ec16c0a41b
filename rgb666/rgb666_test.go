package rgb666

import (
	"image/color"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Color
	}{
		{"black", 0, 0, 0, Black},
		{"white", 63, 63, 63, White},
		{"red", 63, 0, 0, Red},
		{"green", 0, 63, 0, Green},
		{"blue", 0, 0, 63, Blue},
		{"yellow", 63, 63, 0, Yellow},
		{"cyan", 0, 63, 63, Cyan},
		{"magenta", 63, 0, 63, Magenta},
		{"mixed", 5, 10, 20, 0x5294},
		{"channels masked to 6 bits", 0xFF, 0xC0, 0x40, Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("New(%d, %d, %d) = %#05x, want %#05x", tt.r, tt.g, tt.b, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestConstants(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want uint32
	}{
		{"black", Black, 0x00000},
		{"white", White, 0x3FFFF},
		{"red", Red, 0x3F000},
		{"green", Green, 0x00FC0},
		{"blue", Blue, 0x0003F},
		{"yellow", Yellow, 0x3FFC0},
		{"cyan", Cyan, 0x00FFF},
		{"magenta", Magenta, 0x3F03F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint32(tt.c) != tt.want {
				t.Errorf("%s = %#05x, want %#05x", tt.name, uint32(tt.c), tt.want)
			}
		})
	}
}

func TestRGB(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		r, g, b uint8
	}{
		{"black", Black, 0, 0, 0},
		{"white", White, 63, 63, 63},
		{"red", Red, 63, 0, 0},
		{"mixed", New(5, 10, 20), 5, 10, 20},
		{"bits above 18 ignored", Color(0xFFF00000) | Blue, 0, 0, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.c.RGB()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("RGB() = (%d, %d, %d), want (%d, %d, %d)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		r, g, b uint32
	}{
		{"black", Black, 0x0000, 0x0000, 0x0000},
		{"white", White, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", Red, 0xFFFF, 0x0000, 0x0000},
		{"mid gray", New(0x20, 0x20, 0x20), 0x8208, 0x8208, 0x8208},
		{"one", New(1, 1, 1), 0x0410, 0x0410, 0x0410},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != 0xFFFF {
				t.Errorf("RGBA() = (%#04x, %#04x, %#04x, %#04x), want (%#04x, %#04x, %#04x, 0xffff)",
					r, g, b, a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Color
	}{
		{"passthrough", New(5, 10, 20), New(5, 10, 20)},
		{"black", color.Black, Black},
		{"white", color.White, White},
		{"red", color.RGBA{R: 0xFF, A: 0xFF}, Red},
		{"gray", color.RGBA{0x88, 0x88, 0x88, 0xFF}, New(34, 34, 34)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Model.Convert(tt.input).(Color)
			if got != tt.want {
				t.Errorf("Model.Convert(%v) = %#05x, want %#05x", tt.input, uint32(got), uint32(tt.want))
			}
		})
	}
}
