package ili9488

import (
	"math"

	"periph.io/x/devices/v3/ili9488/rgb666"
)

// DrawPixel writes one pixel at (x, y) in the active orientation.
//
// Coordinates are not validated; out-of-canvas values are handed to the
// controller unchanged.
func (d *Dev) DrawPixel(x, y uint16, c rgb666.Color) error {
	if d.halted {
		return errHalted
	}
	if err := d.setAddressWindow(x, y, x, y); err != nil {
		return err
	}
	return d.writeData(uint32(c))
}

// FillRect fills the w by h rectangle whose top-left corner is at (x, y).
//
// The window is programmed to (x, y)-(x+w-1, y+h-1) and exactly w*h color
// words are streamed. Dimensions are not validated; the corner arithmetic
// wraps in uint16 exactly as the controller sees it.
func (d *Dev) FillRect(x, y, w, h uint16, c rgb666.Color) error {
	if d.halted {
		return errHalted
	}
	if err := d.setAddressWindow(x, y, x+w-1, y+h-1); err != nil {
		return err
	}
	return d.fill(uint32(w)*uint32(h), c)
}

// DrawRect draws a solid w by h rectangle at (x, y). It behaves exactly
// like FillRect.
func (d *Dev) DrawRect(x, y, w, h uint16, c rgb666.Color) error {
	return d.FillRect(x, y, w, h, c)
}

// FillBackground floods the whole canvas in the active orientation with c.
func (d *Dev) FillBackground(c rgb666.Color) error {
	if d.halted {
		return errHalted
	}
	w, h := d.width(), d.height()
	if err := d.setAddressWindow(0, 0, w-1, h-1); err != nil {
		return err
	}
	return d.fill(uint32(w)*uint32(h), c)
}

// DrawLine draws the straight line from (x0, y0) to (x1, y1), writing
// exactly the pixels on the locus.
func (d *Dev) DrawLine(x0, y0, x1, y1 uint16, c rgb666.Color) error {
	if d.halted {
		return errHalted
	}
	cx, cy := int(x0), int(y0)
	ex, ey := int(x1), int(y1)
	dx := abs(ex - cx)
	dy := -abs(ey - cy)
	sx := 1
	if cx > ex {
		sx = -1
	}
	sy := 1
	if cy > ey {
		sy = -1
	}
	e := dx + dy
	for {
		if err := d.DrawPixel(uint16(cx), uint16(cy), c); err != nil {
			return err
		}
		if cx == ex && cy == ey {
			return nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			cx += sx
		}
		if e2 <= dx {
			e += dx
			cy += sy
		}
	}
}

// DrawCircle draws the circle of radius r centered at (x, y), writing
// exactly the pixels on the locus. Locus points that fall outside the
// uint16 coordinate space are dropped.
func (d *Dev) DrawCircle(x, y, r uint16, c rgb666.Color) error {
	if d.halted {
		return errHalted
	}
	cx, cy := int(x), int(y)
	dx, dy := 0, int(r)
	e := 1 - int(r)
	if err := d.plotOctants(cx, cy, dx, dy, c); err != nil {
		return err
	}
	for dx < dy {
		dx++
		if e < 0 {
			e += 2*dx + 1
		} else {
			dy--
			e += 2*(dx-dy) + 1
		}
		if err := d.plotOctants(cx, cy, dx, dy, c); err != nil {
			return err
		}
	}
	return nil
}

// FillCircle fills the disc of radius r centered at (x, y), one horizontal
// span per scanline. Spans are clipped to the uint16 coordinate space;
// scanlines entirely outside it are skipped.
func (d *Dev) FillCircle(x, y, r uint16, c rgb666.Color) error {
	if d.halted {
		return errHalted
	}
	cx, cy := int(x), int(y)
	rr := int(r) * int(r)
	for dy := -int(r); dy <= int(r); dy++ {
		py := cy + dy
		if py < 0 || py > 0xFFFF {
			continue
		}
		half := isqrt(rr - dy*dy)
		x0, x1 := cx-half, cx+half
		if x1 < 0 || x0 > 0xFFFF {
			continue
		}
		if x0 < 0 {
			x0 = 0
		}
		if x1 > 0xFFFF {
			x1 = 0xFFFF
		}
		if err := d.FillRect(uint16(x0), uint16(py), uint16(x1-x0+1), 1, c); err != nil {
			return err
		}
	}
	return nil
}

// fill streams n copies of c into the current address window.
func (d *Dev) fill(n uint32, c rgb666.Color) error {
	for i := uint32(0); i < n; i++ {
		if err := d.writeData(uint32(c)); err != nil {
			return err
		}
	}
	return nil
}

// plotOctants writes the eight symmetric circle points for octant offsets
// (dx, dy) around (cx, cy), dropping points outside the uint16 coordinate
// space.
func (d *Dev) plotOctants(cx, cy, dx, dy int, c rgb666.Color) error {
	pts := [8][2]int{
		{cx + dx, cy + dy},
		{cx - dx, cy + dy},
		{cx + dx, cy - dy},
		{cx - dx, cy - dy},
		{cx + dy, cy + dx},
		{cx - dy, cy + dx},
		{cx + dy, cy - dx},
		{cx - dy, cy - dx},
	}
	for _, p := range pts {
		if p[0] < 0 || p[0] > 0xFFFF || p[1] < 0 || p[1] > 0xFFFF {
			continue
		}
		if err := d.DrawPixel(uint16(p[0]), uint16(p[1]), c); err != nil {
			return err
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// isqrt returns the integer square root of v, 0 for negative v.
func isqrt(v int) int {
	if v <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(v)))
	for r*r > v {
		r--
	}
	for (r+1)*(r+1) <= v {
		r++
	}
	return r
}
