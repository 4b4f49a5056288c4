package morph

// Line represents a line segment.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

var _ Arclener = Line{}

// Line control point placement used by [Line.Raise]. These are deliberately
// not 1/3 and 2/3; every line-like command is elevated the same way, so that
// lines morph into lines with identical parametrization on both sides.
const (
	lineControl1 = 0.33
	lineControl2 = 0.66
)

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Arclen returns the length of the line
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Raise returns a cubic Bézier tracing the line, with its control points on
// the line at t = 0.33 and t = 0.66.
func (l Line) Raise() CubicBez {
	return CubicBez{
		l.P0,
		l.Eval(lineControl1),
		l.Eval(lineControl2),
		l.P1,
	}
}
