package morph

import (
	"slices"
)

// PairedSubpath morphs one subpath of the start shape into one subpath of
// the end shape. Both sides are held as equally long lists of cubics, so
// that interpolation is a per control point lerp.
type PairedSubpath struct {
	startMove, endMove Point
	start, end         []CubicBez
	closed             bool
}

// NewPairedSubpath canonicalizes both subpaths and aligns them.
//
// If both subpaths are closed but wind in opposite directions, the end side
// is reversed. The side with fewer segments then has its longest segment
// halved until both sides have the same number of segments; halving is
// exact, so the geometry of either side does not change.
func NewPairedSubpath(start, end Subpath) *PairedSubpath {
	ps := &PairedSubpath{closed: start.Closed() && end.Closed()}
	ps.startMove, ps.start = subpathCubics(start)
	ps.endMove, ps.end = subpathCubics(end)

	if ps.closed && windingSign(ps.start)*windingSign(ps.end) < 0 {
		ps.endMove, ps.end = reverseCubics(ps.endMove, ps.end)
	}

	switch {
	case len(ps.start) < len(ps.end):
		ps.start = alignCubics(ps.startMove, ps.start, len(ps.end))
	case len(ps.end) < len(ps.start):
		ps.end = alignCubics(ps.endMove, ps.end, len(ps.start))
	}
	return ps
}

// Closed reports whether the morphed subpath is closed. It is closed only if
// both sides are.
func (ps *PairedSubpath) Closed() bool { return ps.closed }

// Len returns the number of aligned cubic segments.
func (ps *PairedSubpath) Len() int { return len(ps.start) }

// Segments returns the aligned segments of both sides, starting with their
// moves.
func (ps *PairedSubpath) Segments() (start, end []Segment) {
	return cubicsSegments(ps.startMove, ps.start), cubicsSegments(ps.endMove, ps.end)
}

// Commands returns the subpath interpolated at fraction: a MoveTo, one
// CurveTo per aligned segment and a Close if the subpath is closed.
func (ps *PairedSubpath) Commands(fraction float64) []Command {
	return ps.AppendCommands(nil, fraction)
}

// AppendCommands is like [PairedSubpath.Commands] but appends to dst.
func (ps *PairedSubpath) AppendCommands(dst []Command, fraction float64) []Command {
	dst = slices.Grow(dst, len(ps.start)+2)
	dst = append(dst, MoveTo(ps.startMove.Lerp(ps.endMove, fraction)))
	for i, c := range ps.start {
		l := c.Lerp(ps.end[i], fraction)
		dst = append(dst, CurveTo(l.P1, l.P2, l.P3))
	}
	if ps.closed {
		dst = append(dst, Close())
	}
	return dst
}

// UnpairedSubpath is a subpath without a counterpart in the other shape. It
// does not morph; it is faded by the renderer instead.
type UnpairedSubpath struct {
	cmds []Command
}

// NewUnpairedSubpath canonicalizes sp.
func NewUnpairedSubpath(sp Subpath) *UnpairedSubpath {
	move, cubics := subpathCubics(sp)
	cmds := make([]Command, 0, len(cubics)+2)
	cmds = append(cmds, MoveTo(move))
	for _, c := range cubics {
		cmds = append(cmds, CurveTo(c.P1, c.P2, c.P3))
	}
	if sp.Closed() {
		cmds = append(cmds, Close())
	}
	return &UnpairedSubpath{cmds: cmds}
}

// Closed reports whether the subpath is closed.
func (us *UnpairedSubpath) Closed() bool {
	return us.cmds[len(us.cmds)-1].Kind == CloseKind
}

// Commands returns the subpath's fixed geometry while progress is below 1,
// and nothing once it has fully faded at progress 1.
func (us *UnpairedSubpath) Commands(progress float64) []Command {
	return us.AppendCommands(nil, progress)
}

// AppendCommands is like [UnpairedSubpath.Commands] but appends to dst.
func (us *UnpairedSubpath) AppendCommands(dst []Command, progress float64) []Command {
	if progress >= 1 {
		return dst
	}
	return append(dst, us.cmds...)
}

// subpathCubics returns the start point and drawing segments of sp in
// canonical form.
func subpathCubics(sp Subpath) (Point, []CubicBez) {
	segs := Canonicalize(sp)
	move := sp.Start()
	cubics := make([]CubicBez, 0, len(segs))
	for _, seg := range segs {
		if seg.IsMove() {
			move = seg.End
			continue
		}
		cubics = append(cubics, seg.Cubic())
	}
	return move, cubics
}

func cubicsSegments(move Point, cubics []CubicBez) []Segment {
	segs := make([]Segment, 0, len(cubics)+1)
	segs = append(segs, Segment{Start: move, End: move, Command: MoveTo(move)})
	for _, c := range cubics {
		segs = append(segs, cubicSegment(c))
	}
	return segs
}

// windingSign returns the sign of the signed area enclosed by the cubics.
func windingSign(cubics []CubicBez) int {
	var area float64
	for _, c := range cubics {
		area += c.SignedArea()
	}
	switch {
	case area > 0:
		return 1
	case area < 0:
		return -1
	default:
		return 0
	}
}

// reverseCubics returns the same contour traversed backwards, starting at the
// end of the last cubic.
func reverseCubics(move Point, cubics []CubicBez) (Point, []CubicBez) {
	if len(cubics) == 0 {
		return move, cubics
	}
	out := make([]CubicBez, len(cubics))
	for i, c := range cubics {
		out[len(cubics)-1-i] = c.Reverse()
	}
	return out[0].P0, out
}

// alignCubics halves the longest cubic until there are n cubics. A side
// without any cubics is padded with zero-length cubics at move.
func alignCubics(move Point, cubics []CubicBez, n int) []CubicBez {
	if len(cubics) == 0 {
		out := make([]CubicBez, n)
		for i := range out {
			out[i] = CubicBez{move, move, move, move}
		}
		return out
	}
	out := make([]CubicBez, len(cubics), n)
	copy(out, cubics)
	lengths := make([]float64, len(out), n)
	for i, c := range out {
		lengths[i] = c.Arclen(MeasureAccuracy)
	}
	for len(out) < n {
		// first index wins ties, keeping the result deterministic
		longest := 0
		for i, l := range lengths {
			if l > lengths[longest] {
				longest = i
			}
		}
		c0, c1 := out[longest].Subdivide()
		out = slices.Replace(out, longest, longest+1, c0, c1)
		lengths = slices.Replace(lengths, longest, longest+1,
			c0.Arclen(MeasureAccuracy), c1.Arclen(MeasureAccuracy))
	}
	return out
}
