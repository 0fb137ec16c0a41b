package ili9488

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Bus transmits single 18-bit words to the controller over a DBI Type B
// (8080-style) parallel interface.
//
// Implementations own the 18 data lines and the write-strobe line; the
// chip-select and data/command-select lines stay with Dev, which frames
// every word. WriteWord must leave the word latched: data lines driven to
// the word's bit pattern and one low-then-high pulse issued on the write
// strobe. Implementations are not safe for concurrent use.
type Bus interface {
	// WriteWord transmits one 18-bit word. Bits above the low 18 are
	// ignored.
	WriteWord(w uint32) error
}

var (
	_ Bus = &ParallelBus{}
	_ Bus = &GroupBus{}
)

// ParallelBus drives the controller through 18 discrete GPIO data lines
// and a write-strobe line. data[0] carries bit 0 (B0) through data[17]
// carrying bit 17 (R5).
//
// It works with any host that can hand out 18 gpio.PinOut lines. Each word
// costs up to 20 pin writes, so a full-canvas fill is slow; this matches
// the reference wiring for this controller, which is meant for setup
// screens and status panels rather than video.
type ParallelBus struct {
	data [18]gpio.PinOut
	wr   gpio.PinOut
}

// NewParallelBus returns a Bus driving the 18 data lines in data, ordered
// from bit 0 to bit 17, with wr as the write strobe.
func NewParallelBus(data [18]gpio.PinOut, wr gpio.PinOut) (*ParallelBus, error) {
	for i, p := range data {
		if p == nil {
			return nil, fmt.Errorf("ili9488: data line D%d is nil", i)
		}
	}
	if wr == nil {
		return nil, errors.New("ili9488: a write strobe pin is required")
	}
	return &ParallelBus{data: data, wr: wr}, nil
}

// WriteWord drives every data line low, raises the lines whose bit in w is
// set, then pulses the write strobe low-then-high. The controller latches
// the data lines on the strobe's rising edge.
//
// The strobe-low time is bounded below by two full pin writes through the
// periph.io pin stack, which exceeds the controller's minimum write-cycle
// timing on every supported host.
func (b *ParallelBus) WriteWord(w uint32) error {
	w &= wordMask
	for _, p := range b.data {
		if err := p.Out(gpio.Low); err != nil {
			return err
		}
	}
	for i, p := range b.data {
		if w&(1<<uint(i)) != 0 {
			if err := p.Out(gpio.High); err != nil {
				return err
			}
		}
	}
	if err := b.wr.Out(gpio.Low); err != nil {
		return err
	}
	return b.wr.Out(gpio.High)
}

// String implements fmt.Stringer.
func (b *ParallelBus) String() string {
	return fmt.Sprintf("ParallelBus{%s..%s, WR:%s}", b.data[0], b.data[17], b.wr)
}

// GroupBus drives the controller through a gpio.Group of at least 18
// lines, such as a port expander bank or a memory-mapped pin bank, plus a
// discrete write-strobe line. Group line 0 carries bit 0 through line 17
// carrying bit 17; extra lines in the group are never driven.
//
// A group write updates all lines in one operation, so this variant needs
// three pin operations per word instead of up to twenty.
type GroupBus struct {
	g  gpio.Group
	wr gpio.PinOut
}

// NewGroupBus returns a Bus driving the first 18 lines of g, with wr as
// the write strobe.
func NewGroupBus(g gpio.Group, wr gpio.PinOut) (*GroupBus, error) {
	if g == nil {
		return nil, errors.New("ili9488: a pin group is required")
	}
	if n := len(g.Pins()); n < busWidth {
		return nil, fmt.Errorf("ili9488: pin group has %d lines, need %d", n, busWidth)
	}
	if wr == nil {
		return nil, errors.New("ili9488: a write strobe pin is required")
	}
	return &GroupBus{g: g, wr: wr}, nil
}

// WriteWord clears the 18 bus lines, raises the lines whose bit in w is
// set, then pulses the write strobe low-then-high.
func (b *GroupBus) WriteWord(w uint32) error {
	w &= wordMask
	if err := b.g.Out(0, wordMask); err != nil {
		return err
	}
	if v := gpio.GPIOValue(w); v != 0 {
		if err := b.g.Out(v, v); err != nil {
			return err
		}
	}
	if err := b.wr.Out(gpio.Low); err != nil {
		return err
	}
	return b.wr.Out(gpio.High)
}

// String implements fmt.Stringer.
func (b *GroupBus) String() string {
	return fmt.Sprintf("GroupBus{%s, WR:%s}", b.g, b.wr)
}
