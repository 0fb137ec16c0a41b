// Package ili9488 controls an ILI9488 TFT controller over an 18-bit
// parallel bus.
//
// The ILI9488 is a 320x480 TFT driver. This package operates it in DBI
// Type B (8080-style) mode with all 18 data lines wired, so every bus
// cycle carries one full RGB666 pixel and no pixel ever spans two
// transfers. Pixel data is streamed straight to the controller's memory;
// there is no frame buffer on the host side.
//
// # Display Characteristics
//
// - 18-bit color, 6 bits per channel (RGB666), 262144 colors
// - 320x480 portrait canvas, 480x320 landscape canvas
// - Four orientations via the memory-access-control register
// - Sleep mode and display blanking with the panel memory retained
//
// # Hardware Connection
//
// Wire the display module's parallel interface to GPIO lines:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	DB0-DB17    → 18 GPIOs (data bus, DB0 = least significant bit)
//	WR          → GPIO (write strobe)
//	CS          → GPIO (chip select)
//	DC/RS       → GPIO (data/command select)
//	RST         → Optional: GPIO for hardware reset
//	RD          → 3.3V (the driver never reads back)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"periph.io/x/conn/v3/gpio"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/devices/v3/ili9488"
//		"periph.io/x/devices/v3/ili9488/rgb666"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io.
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//
//		// Gather the 18 data lines, bit 0 first.
//		var data [18]gpio.PinOut
//		for i := range data {
//			data[i] = gpioreg.ByName(fmt.Sprintf("GPIO%d", i))
//		}
//		bus, err := ili9488.NewParallelBus(data, gpioreg.ByName("GPIO22"))
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		// Open the device: CS, DC and the optional RST pin.
//		dev, err := ili9488.New(bus, gpioreg.ByName("GPIO23"), gpioreg.ByName("GPIO24"), &ili9488.Opts{
//			Rotation: ili9488.Landscape,
//			RST:      gpioreg.ByName("GPIO25"),
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		// Draw.
//		dev.FillBackground(rgb666.Black)
//		dev.FillRect(20, 20, 100, 60, rgb666.Red)
//		dev.DrawLine(0, 0, 479, 319, rgb666.White)
//	}
//
// # Buses
//
// Two Bus implementations ship with the package. ParallelBus drives 18
// discrete gpio.PinOut lines and works on any host. GroupBus drives a
// gpio.Group, such as a port expander bank, and needs only three group
// operations per word. Any other transport can be used by implementing
// the one-method Bus interface.
//
// # Orientation
//
// SetRotation reprograms the controller's axis mapping; the logical
// canvas follows it (320x480 portrait, 480x320 landscape). Values outside
// the four defined rotations select Portrait. Coordinates are never range
// checked: the controller receives them as-is, and out-of-canvas writes
// corrupt the picture silently, exactly as the bare-metal wiring does.
//
// # Colors
//
// Colors are 18-bit RGB666 words from the rgb666 subpackage:
//
//	red := rgb666.Red               // predefined
//	teal := rgb666.New(0, 40, 40)   // packed from 6-bit channels
//
// Every data word is masked to 18 bits before it reaches the bus.
//
// # Performance
//
// Each pixel costs one framed bus transaction; with ParallelBus that is
// up to 20 pin writes. A full-canvas fill therefore takes seconds on
// sysfs-class GPIO and is meant for static screens, not animation. Use
// FillRect over per-pixel loops wherever possible: the window is
// programmed once and pixels stream without re-addressing.
//
// # Datasheet
//
// https://www.hpinfotech.ro/ILI9488.pdf
package ili9488
