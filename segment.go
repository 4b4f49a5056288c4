package morph

// Segment is a command in canonical form: either an absolute MoveTo or an
// absolute CurveTo, together with the positions it starts and ends at.
type Segment struct {
	Start   Point
	End     Point
	Command Command
}

// IsMove reports whether the segment is a move.
func (seg Segment) IsMove() bool {
	return seg.Command.Kind == MoveToKind
}

// Cubic returns the segment as a cubic Bézier. For a move, the result is
// the degenerate cubic at the move's target.
func (seg Segment) Cubic() CubicBez {
	if seg.IsMove() {
		return CubicBez{seg.End, seg.End, seg.End, seg.End}
	}
	return CubicBez{seg.Start, seg.Command.P0, seg.Command.P1, seg.Command.P2}
}

func cubicSegment(c CubicBez) Segment {
	return Segment{
		Start:   c.P0,
		End:     c.P3,
		Command: CurveTo(c.P1, c.P2, c.P3),
	}
}

// canonState is the accumulator threaded through [Canonicalize]: the current
// position and the previously emitted segment's command.
type canonState struct {
	pos  Point
	prev Command
}

// Canonicalize converts commands into canonical segments, in which every
// drawing command is a cubic Bézier.
//
// Lines are raised with control points at t = 0.33 and t = 0.66, quadratics
// are raised exactly, and arcs are approximated by one cubic per started
// quarter turn. A reflected curve reflects the previous segment's control
// point only if that segment is a cubic, and uses the current position
// otherwise. Close produces no segment and does not move the position.
func Canonicalize(cmds []Command) []Segment {
	var (
		st  canonState
		out = make([]Segment, 0, len(cmds))
	)
	for _, cmd := range cmds {
		var segs []Segment
		st, segs = st.step(cmd)
		out = append(out, segs...)
	}
	return out
}

func (st canonState) step(cmd Command) (canonState, []Segment) {
	pos := st.pos
	abs := cmd.Abs(pos)

	var cubics []CubicBez
	switch abs.Kind {
	case MoveToKind:
		seg := Segment{Start: pos, End: abs.P0, Command: abs}
		return canonState{pos: abs.P0, prev: abs}, []Segment{seg}
	case LineToKind, HorizontalToKind, VerticalToKind:
		cubics = []CubicBez{Line{pos, abs.Advance(pos)}.Raise()}
	case CurveToKind:
		cubics = []CubicBez{{pos, abs.P0, abs.P1, abs.P2}}
	case QuadToKind:
		cubics = []CubicBez{QuadBez{pos, abs.P0, abs.P1}.Raise()}
	case ReflectedCurveToKind:
		c1 := pos
		if st.prev.Kind == CurveToKind {
			c1 = st.prev.P1.ReflectAbout(pos)
		}
		cubics = []CubicBez{{pos, c1, abs.P0, abs.P1}}
	case ReflectedQuadToKind:
		ctrl := pos
		if st.prev.Kind == CurveToKind {
			ctrl = st.prev.P0.Midpoint(st.prev.P1).ReflectAbout(pos)
		}
		cubics = []CubicBez{QuadBez{pos, ctrl, abs.P0}.Raise()}
	case ArcToKind:
		if FlatRadii(abs.Radii) {
			cubics = []CubicBez{Line{pos, abs.P0}.Raise()}
		} else {
			cubics = arcCubics(pos, abs.P0, abs.Radii, abs.XRotation, abs.LargeArc, abs.Sweep)
		}
	default:
		// Close and invalid kinds
		return st, nil
	}

	if len(cubics) == 0 {
		return st, nil
	}
	segs := make([]Segment, len(cubics))
	for i, c := range cubics {
		segs[i] = cubicSegment(c)
	}
	last := segs[len(segs)-1]
	return canonState{pos: last.End, prev: last.Command}, segs
}
