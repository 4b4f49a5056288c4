package morph

import (
	"fmt"
)

type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{
		X: sz.Width,
		Y: sz.Height,
	}
}

// Max returns the component-wise maximum of two sizes.
func (sz Size) Max(o Size) Size {
	return Size{
		Width:  max(sz.Width, o.Width),
		Height: max(sz.Height, o.Height),
	}
}
