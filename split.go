package morph

// Subpath is one independent contour of a shape. Its first command is always
// an absolute MoveTo and it contains at least one drawing command. A closed
// subpath ends in a Close.
type Subpath []Command

// Start returns the subpath's starting point.
func (sp Subpath) Start() Point {
	if len(sp) == 0 {
		return Point{}
	}
	return sp[0].P0
}

// Closed reports whether the subpath ends in a Close.
func (sp Subpath) Closed() bool {
	return len(sp) > 0 && sp[len(sp)-1].Kind == CloseKind
}

// Segments returns the subpath in canonical form; see [Canonicalize].
func (sp Subpath) Segments() []Segment {
	return Canonicalize(sp)
}

// Length returns the arc length of the subpath.
func (sp Subpath) Length(accuracy float64) float64 {
	return SegmentsLength(sp.Segments(), accuracy)
}

// splitState is the accumulator of [Split].
type splitState struct {
	cur   Point
	start Point
	buf   Subpath
	out   []Subpath
}

// Split partitions a command sequence into subpaths.
//
// A drawing command without a preceding move gets a MoveTo at the current
// position. Each move starts a new subpath; consecutive moves collapse into
// the last one, and relative moves are made absolute. A Close whose subpath
// does not end at its start is preceded by an explicit LineTo back to the
// start, and ends the subpath. A subpath that ends where it started without
// an explicit Close gets one. Subpaths without any drawing command are
// dropped. Order is preserved.
func Split(cmds []Command) []Subpath {
	var st splitState
	for _, cmd := range cmds {
		st = st.step(cmd)
	}
	return st.flush().out
}

func (st splitState) step(cmd Command) splitState {
	switch {
	case cmd.Kind.IsMove():
		st = st.flush()
		abs := cmd.Abs(st.cur)
		st.cur, st.start = abs.P0, abs.P0
		st.buf = Subpath{abs}
	case cmd.Kind == CloseKind:
		if len(st.buf) == 0 {
			break
		}
		if st.cur != st.start {
			st.buf = append(st.buf, LineTo(st.start))
			st.cur = st.start
		}
		st.buf = append(st.buf, cmd)
		st = st.flush()
	default:
		if len(st.buf) == 0 {
			st.start = st.cur
			st.buf = Subpath{MoveTo(st.cur)}
		}
		st.buf = append(st.buf, cmd)
		st.cur = cmd.Advance(st.cur)
	}
	return st
}

func (st splitState) flush() splitState {
	buf := st.buf
	st.buf = nil
	drawing := false
	for _, cmd := range buf {
		if cmd.IsDrawing() {
			drawing = true
			break
		}
	}
	if !drawing {
		return st
	}
	if !buf.Closed() && st.cur == st.start {
		buf = append(buf, Close())
	}
	st.out = append(st.out, buf)
	return st
}
