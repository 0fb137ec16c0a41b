package ili9488

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"

	"periph.io/x/devices/v3/ili9488/rgb666"
)

// Rotation selects the logical orientation of the canvas.
type Rotation uint8

// The four orientations, in orientation-register order. The drawing
// operations interpret coordinates in the active orientation: 320x480 for
// the portrait pair, 480x320 for the landscape pair.
const (
	Portrait Rotation = iota
	Landscape
	PortraitInverted
	LandscapeInverted
)

// powerState tracks where the controller is in its lifecycle.
type powerState uint8

const (
	powerReset powerState = iota
	powerDisplaying
	powerBlanked
	powerAsleep
)

// errHalted is returned by every operation after Halt.
var errHalted = errors.New("ili9488: halted")

// Opts holds the configuration for the device.
type Opts struct {
	// Rotation is the initial canvas orientation. Values outside the four
	// defined rotations select Portrait.
	Rotation Rotation

	// RST is the reset pin. Can be nil: the driver then skips the hardware
	// reset pulse and relies on the controller's power-on reset.
	RST gpio.PinIO
}

// Dev is an open handle to an ILI9488 controller wired in 18-bit (RGB666)
// parallel bus mode.
//
// Dev is not safe for concurrent use. The controller has no way to report
// faults, so the only errors returned are from the GPIO lines themselves
// or from misuse of a halted device.
type Dev struct {
	bus Bus
	cs  gpio.PinOut
	dc  gpio.PinOut
	rst gpio.PinIO

	rotation Rotation
	power    powerState
	halted   bool
}

var _ conn.Resource = &Dev{}

// New opens a handle to a controller reached over b, resets it and leaves
// it awake and displaying.
//
// cs is the chip-select line and dc the data/command-select line; both are
// driven around every transmitted word. The init sequence wakes the
// controller, programs the 18-bit pixel format and the requested
// orientation, and turns the display on. It blocks for the controller's
// settle times, roughly 300ms.
func New(b Bus, cs gpio.PinOut, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, errors.New("ili9488: a data bus is required")
	}
	if cs == nil {
		return nil, errors.New("ili9488: a chip select pin is required")
	}
	if dc == nil {
		return nil, errors.New("ili9488: a data/command pin is required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	d := &Dev{
		bus: b,
		cs:  cs,
		dc:  dc,
		rst: opts.RST,
	}
	if err := d.init(opts.Rotation); err != nil {
		return nil, err
	}
	return d, nil
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("ili9488.Dev{%dx%d}", d.width(), d.height())
}

// Halt blanks the panel and invalidates the device. It implements
// conn.Resource; every further operation returns an error. Halting an
// already halted device is a no-op.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	if err := d.writeCommand(cmdDisplayOff); err != nil {
		return err
	}
	time.Sleep(20 * time.Millisecond)
	d.power = powerBlanked
	d.halted = true
	return nil
}

// Bounds returns the drawable area in the active orientation.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(d.width()), int(d.height()))
}

// ColorModel returns the RGB666 color model.
func (d *Dev) ColorModel() color.Model {
	return rgb666.Model
}

// Rotation returns the active canvas orientation.
func (d *Dev) Rotation() Rotation {
	return d.rotation
}

// SetRotation reprograms the controller's orientation register and the
// logical axis mapping used by all subsequent drawing operations. Values
// outside the four defined rotations select Portrait; the call never fails
// on the input value.
func (d *Dev) SetRotation(r Rotation) error {
	if d.halted {
		return errHalted
	}
	if r > LandscapeInverted {
		r = Portrait
	}
	if err := d.writeCommand(cmdMemoryAccessCtl); err != nil {
		return err
	}
	if err := d.writeData(uint32(rotationMadctl[r])); err != nil {
		return err
	}
	d.rotation = r
	return nil
}

// Sleep blanks the panel and puts the controller into its low-power sleep
// mode. The controller keeps its memory contents; use WakeUp to resume.
func (d *Dev) Sleep() error {
	if d.halted {
		return errHalted
	}
	if err := d.writeCommand(cmdDisplayOff); err != nil {
		return err
	}
	time.Sleep(20 * time.Millisecond)
	if err := d.writeCommand(cmdSleepIn); err != nil {
		return err
	}
	time.Sleep(120 * time.Millisecond)
	d.power = powerAsleep
	return nil
}

// WakeUp brings the controller out of sleep mode and turns the panel back
// on.
func (d *Dev) WakeUp() error {
	if d.halted {
		return errHalted
	}
	if err := d.writeCommand(cmdDisplayOn); err != nil {
		return err
	}
	time.Sleep(20 * time.Millisecond)
	if err := d.writeCommand(cmdSleepOut); err != nil {
		return err
	}
	time.Sleep(20 * time.Millisecond)
	d.power = powerDisplaying
	return nil
}

// Display turns the panel output on or off without leaving the awake
// state. While off the controller keeps accepting memory writes, so a
// caller can draw blind and reveal the result with Display(true).
func (d *Dev) Display(on bool) error {
	if d.halted {
		return errHalted
	}
	cmd := byte(cmdDisplayOff)
	if on {
		cmd = cmdDisplayOn
	}
	if err := d.writeCommand(cmd); err != nil {
		return err
	}
	time.Sleep(20 * time.Millisecond)
	if on {
		d.power = powerDisplaying
	} else {
		d.power = powerBlanked
	}
	return nil
}

// init brings the controller from reset to awake and displaying.
func (d *Dev) init(r Rotation) error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ili9488: failed to pull RST low: %w", err)
		}
		time.Sleep(20 * time.Millisecond)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ili9488: failed to pull RST high: %w", err)
		}
		time.Sleep(120 * time.Millisecond)
	}

	if err := d.writeCommand(cmdSleepOut); err != nil {
		return err
	}
	time.Sleep(120 * time.Millisecond)

	if err := d.writeCommand(cmdPixelFormatSet); err != nil {
		return err
	}
	if err := d.writeData(pixelFormat18bpp); err != nil {
		return err
	}
	if err := d.SetRotation(r); err != nil {
		return err
	}

	if err := d.writeCommand(cmdDisplayOn); err != nil {
		return err
	}
	time.Sleep(20 * time.Millisecond)
	d.power = powerDisplaying
	return nil
}

// writeCommand transmits one command opcode: chip-select asserted, the
// data/command line at command level, one bus word, chip-select released.
func (d *Dev) writeCommand(cmd byte) error {
	if err := d.cs.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.bus.WriteWord(uint32(cmd)); err != nil {
		return err
	}
	return d.cs.Out(gpio.High)
}

// writeData transmits one data word with the same framing as writeCommand
// but the data/command line at data level. The word is masked to the bus
// width; bits above the low 18 never reach the bus.
func (d *Dev) writeData(w uint32) error {
	if err := d.cs.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	if err := d.bus.WriteWord(w & wordMask); err != nil {
		return err
	}
	return d.cs.Out(gpio.High)
}

// writeAddress programs one 16-bit address pair, each component sent as
// two 8-bit data words, high byte first.
func (d *Dev) writeAddress(cmd byte, a0, a1 uint16) error {
	if err := d.writeCommand(cmd); err != nil {
		return err
	}
	for _, w := range [4]uint32{uint32(a0 >> 8), uint32(a0 & 0xFF), uint32(a1 >> 8), uint32(a1 & 0xFF)} {
		if err := d.writeData(w); err != nil {
			return err
		}
	}
	return nil
}

// setAddressWindow programs the column and page address registers to the
// given rectangle and issues the memory-write command, leaving the
// controller ready to accept a stream of pixel words for the window.
//
// In the landscape orientations the logical axes are exchanged: logical y
// is routed to the column registers and logical x to the page registers.
// This is the only place the exchange happens; every drawing operation
// passes logical coordinates straight through.
func (d *Dev) setAddressWindow(x0, y0, x1, y1 uint16) error {
	var c0, c1, p0, p1 uint16
	switch d.rotation {
	case Landscape, LandscapeInverted:
		c0, c1 = y0, y1
		p0, p1 = x0, x1
	default:
		c0, c1 = x0, x1
		p0, p1 = y0, y1
	}
	if err := d.writeAddress(cmdColumnAddressSet, c0, c1); err != nil {
		return err
	}
	if err := d.writeAddress(cmdPageAddressSet, p0, p1); err != nil {
		return err
	}
	return d.writeCommand(cmdMemoryWrite)
}

func (d *Dev) width() uint16 {
	if d.rotation == Landscape || d.rotation == LandscapeInverted {
		return LandscapeWidth
	}
	return PortraitWidth
}

func (d *Dev) height() uint16 {
	if d.rotation == Landscape || d.rotation == LandscapeInverted {
		return LandscapeHeight
	}
	return PortraitHeight
}
