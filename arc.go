package morph

import (
	"math"
)

const τ = math.Pi * 2

// Arc is an elliptical arc in center parametrization.
type Arc struct {
	Center Point
	Radii  Vec2
	// StartAngle and SweepAngle are in radians, measured in the ellipse's
	// own (unrotated) frame. A positive sweep runs towards positive angles.
	StartAngle float64
	SweepAngle float64
	// XRotation is the rotation of the ellipse's X axis, in radians.
	XRotation float64
}

// ArcFromEndpoints converts an SVG style endpoint arc into center
// parametrization. xRotation is in degrees. Radii that are too small to span
// the two points are scaled up uniformly until they do.
//
// It reports false when the arc is degenerate: a zero or non-finite radius,
// or coincident endpoints. Callers should treat an arc with such radii as a
// straight line, see [FlatRadii], and an arc between coincident points as
// nothing at all.
func ArcFromEndpoints(from, to Point, radii Vec2, xRotation float64, largeArc, sweep bool) (Arc, bool) {
	if FlatRadii(radii) {
		return Arc{}, false
	}
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)

	φ := xRotation * τ / 360
	sinφ, cosφ := math.Sincos(φ)

	pxp := cosφ*(from.X-to.X)/2 + sinφ*(from.Y-to.Y)/2
	pyp := -sinφ*(from.X-to.X)/2 + cosφ*(from.Y-to.Y)/2
	if pxp == 0 && pyp == 0 {
		return Arc{}, false
	}

	λ := sq(pxp)/sq(rx) + sq(pyp)/sq(ry)
	if λ > 1 {
		sqrtλ := math.Sqrt(λ)
		rx *= sqrtλ
		ry *= sqrtλ
	}

	rxsq, rysq := sq(rx), sq(ry)
	pxpsq, pypsq := sq(pxp), sq(pyp)
	radicand := rxsq*rysq - rxsq*pypsq - rysq*pxpsq
	if radicand < 0 {
		radicand = 0
	} else {
		radicand = math.Sqrt(radicand / (rxsq*pypsq + rysq*pxpsq))
	}
	if largeArc == sweep {
		radicand = -radicand
	}

	centerxp := radicand * rx / ry * pyp
	centeryp := radicand * -ry / rx * pxp
	center := Pt(
		cosφ*centerxp-sinφ*centeryp+(from.X+to.X)/2,
		sinφ*centerxp+cosφ*centeryp+(from.Y+to.Y)/2,
	)

	u := Vec((pxp-centerxp)/rx, (pyp-centeryp)/ry)
	v := Vec((-pxp-centerxp)/rx, (-pyp-centeryp)/ry)
	θ1 := vectorAngle(Vec(1, 0), u)
	dθ := vectorAngle(u, v)
	if !sweep && dθ > 0 {
		dθ -= τ
	}
	if sweep && dθ < 0 {
		dθ += τ
	}

	return Arc{
		Center:     center,
		Radii:      Vec(rx, ry),
		StartAngle: θ1,
		SweepAngle: dθ,
		XRotation:  φ,
	}, true
}

// Cubics approximates the arc with one cubic Bézier per started quarter
// turn.
func (a Arc) Cubics() []CubicBez {
	// Round ratios within rounding error of a whole number of quarter turns
	// so that exactly 90° does not produce a needless second segment.
	ratio := math.Abs(a.SweepAngle) / (τ / 4)
	if r := math.Round(ratio); r != 0 && math.Abs(r-ratio) < 1e-7 {
		ratio = r
	}
	n := max(int(math.Ceil(ratio)), 1)

	sinφ, cosφ := math.Sincos(a.XRotation)
	mapPt := func(x, y float64) Point {
		x *= a.Radii.X
		y *= a.Radii.Y
		return Pt(cosφ*x-sinφ*y+a.Center.X, sinφ*x+cosφ*y+a.Center.Y)
	}

	dθ := a.SweepAngle / float64(n)
	arm := unitArcArm(dθ)
	θ := a.StartAngle
	out := make([]CubicBez, 0, n)
	for range n {
		y1, x1 := math.Sincos(θ)
		y2, x2 := math.Sincos(θ + dθ)
		out = append(out, CubicBez{
			mapPt(x1, y1),
			mapPt(x1-y1*arm, y1+x1*arm),
			mapPt(x2+y2*arm, y2-x2*arm),
			mapPt(x2, y2),
		})
		θ += dθ
	}
	return out
}

// unitArcArm returns the control arm length, relative to the radius, of a
// cubic approximating a unit circle arc spanning dθ.
func unitArcArm(dθ float64) float64 {
	// Best fit for a quarter circle, see
	// http://spencermortensen.com/articles/bezier-circle
	const quarter = 0.551915024494
	switch dθ {
	case math.Pi / 2:
		return quarter
	case -math.Pi / 2:
		return -quarter
	}
	t := math.Tan(dθ / 2)
	return math.Sin(dθ) * (math.Sqrt(4+3*t*t) - 1) / 3
}

// arcCubics converts an endpoint arc into cubics whose endpoints are exactly
// from and to. It returns nil for degenerate arcs.
func arcCubics(from, to Point, radii Vec2, xRotation float64, largeArc, sweep bool) []CubicBez {
	a, ok := ArcFromEndpoints(from, to, radii, xRotation, largeArc, sweep)
	if !ok {
		return nil
	}
	cs := a.Cubics()
	cs[0].P0 = from
	cs[len(cs)-1].P3 = to
	return cs
}

// FlatRadii reports whether an arc with the given radii degenerates to a
// straight line. That is the case if either radius is zero, infinite or NaN.
func FlatRadii(radii Vec2) bool {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	return radii.X == 0 || radii.Y == 0 || !finite(radii.X) || !finite(radii.Y)
}

// vectorAngle returns the signed angle from u to v, which must be unit
// vectors.
func vectorAngle(u, v Vec2) float64 {
	sign := 1.0
	if u.Cross(v) < 0 {
		sign = -1
	}
	dot := max(min(u.Dot(v), 1), -1)
	return sign * math.Acos(dot)
}

func sq(v float64) float64 {
	return v * v
}
