package ili9488

// Command opcodes understood by the ILI9488, DBI Type B. Only the subset
// used by this driver is listed; Interface-Mode is part of the documented
// register map but is left at its power-on default.
const (
	cmdSleepIn          = 0x10
	cmdSleepOut         = 0x11
	cmdDisplayOff       = 0x28
	cmdDisplayOn        = 0x29
	cmdColumnAddressSet = 0x2A
	cmdPageAddressSet   = 0x2B
	cmdMemoryWrite      = 0x2C
	cmdMemoryAccessCtl  = 0x36
	cmdPixelFormatSet   = 0x3A
	cmdInterfaceMode    = 0xB0
)

// pixelFormat18bpp selects 18 bits per pixel (RGB666) for both the DBI and
// DPI paths of the Pixel-Format-Set command.
const pixelFormat18bpp = 0x66

// Memory-Access-Control (MADCTL) bits.
const (
	madctlMY  = 0x80 // row address order
	madctlMX  = 0x40 // column address order
	madctlMV  = 0x20 // row/column exchange
	madctlML  = 0x10 // vertical refresh order
	madctlBGR = 0x08 // BGR subpixel order
	madctlMH  = 0x04 // horizontal refresh order
)

// rotationMadctl maps each Rotation to its orientation control byte:
// 0x48, 0x28, 0x88, 0xE8.
var rotationMadctl = [4]byte{
	Portrait:          madctlMX | madctlBGR,
	Landscape:         madctlMV | madctlBGR,
	PortraitInverted:  madctlMY | madctlBGR,
	LandscapeInverted: madctlMY | madctlMX | madctlMV | madctlBGR,
}

// Panel geometry. The portrait canvas is 320x480; the landscape canvas is
// the same panel with the axes exchanged.
const (
	PortraitWidth   = 320
	PortraitHeight  = 480
	LandscapeWidth  = PortraitHeight
	LandscapeHeight = PortraitWidth
)

// The parallel bus carries one pixel (or one command byte) per write cycle
// on its 18 data lines.
const (
	busWidth = 18
	wordMask = 1<<busWidth - 1
)
