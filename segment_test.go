package morph

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCanonicalizeLines(t *testing.T) {
	cmds := []Command{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(3, 0)),
		RelLineTo(Vec(0, 3)),
		HorizontalTo(0),
		RelHorizontalTo(6),
		VerticalTo(-3),
		RelVerticalTo(3),
	}
	segs := Canonicalize(cmds)
	if len(segs) != len(cmds) {
		t.Fatalf("got %d segments, want %d", len(segs), len(cmds))
	}
	wantEnds := []Point{Pt(0, 0), Pt(3, 0), Pt(3, 3), Pt(0, 3), Pt(6, 3), Pt(6, -3), Pt(6, 0)}
	for i, seg := range segs {
		if seg.End != wantEnds[i] {
			t.Errorf("segment %d: got end %v, want %v", i, seg.End, wantEnds[i])
		}
		if i == 0 {
			if !seg.IsMove() {
				t.Errorf("segment 0 should be a move, got %v", seg.Command)
			}
			continue
		}
		if seg.Command.Kind != CurveToKind {
			t.Fatalf("segment %d: got %v, want CurveTo", i, seg.Command.Kind)
		}
		if seg.Start != segs[i-1].End {
			t.Errorf("segment %d does not start where %d ended", i, i-1)
		}
		l := Line{seg.Start, seg.End}
		if seg.Command.P0 != l.Eval(0.33) || seg.Command.P1 != l.Eval(0.66) {
			t.Errorf("segment %d: control points %v, %v not at 0.33 and 0.66", i, seg.Command.P0, seg.Command.P1)
		}
		if seg.Command.P2 != seg.End {
			t.Errorf("segment %d: end point %v differs from %v", i, seg.Command.P2, seg.End)
		}
	}
}

func TestCanonicalizeQuadIsExact(t *testing.T) {
	q := QuadBez{Pt(1, 1), Pt(4, 7), Pt(9, 2)}
	for _, cmd := range []Command{
		QuadTo(q.P1, q.P2),
		RelQuadTo(q.P1.Sub(q.P0), q.P2.Sub(q.P0)),
	} {
		segs := Canonicalize([]Command{MoveTo(q.P0), cmd})
		c := segs[1].Cubic()
		for i := range 7 {
			tt := float64(i) / 6
			assertNear(t, c.Eval(tt), q.Eval(tt), 1e-12)
		}
	}
}

func TestCanonicalizeRelativeCurve(t *testing.T) {
	segs := Canonicalize([]Command{
		MoveTo(Pt(10, 10)),
		RelCurveTo(Vec(1, 0), Vec(2, 1), Vec(3, 3)),
	})
	diff(t, CubicBez{Pt(10, 10), Pt(11, 10), Pt(12, 11), Pt(13, 13)}, segs[1].Cubic())
}

func TestCanonicalizeReflectedCurve(t *testing.T) {
	segs := Canonicalize([]Command{
		MoveTo(Pt(0, 0)),
		CurveTo(Pt(0, 1), Pt(1, 2), Pt(2, 2)),
		ReflectedCurveTo(Pt(4, 1), Pt(4, 0)),
	})
	diff(t, CubicBez{Pt(2, 2), Pt(3, 2), Pt(4, 1), Pt(4, 0)}, segs[2].Cubic())

	// relative form
	segs = Canonicalize([]Command{
		MoveTo(Pt(0, 0)),
		CurveTo(Pt(0, 1), Pt(1, 2), Pt(2, 2)),
		RelReflectedCurveTo(Vec(2, -1), Vec(2, -2)),
	})
	diff(t, CubicBez{Pt(2, 2), Pt(3, 2), Pt(4, 1), Pt(4, 0)}, segs[2].Cubic())
}

func TestCanonicalizeReflectedCurveAfterMove(t *testing.T) {
	segs := Canonicalize([]Command{
		MoveTo(Pt(5, 5)),
		ReflectedCurveTo(Pt(6, 7), Pt(8, 8)),
	})
	diff(t, CubicBez{Pt(5, 5), Pt(5, 5), Pt(6, 7), Pt(8, 8)}, segs[1].Cubic())
}

func TestCanonicalizeReflectedQuad(t *testing.T) {
	segs := Canonicalize([]Command{
		MoveTo(Pt(0, 0)),
		QuadTo(Pt(3, 3), Pt(6, 0)),
		ReflectedQuadTo(Pt(12, 0)),
	})
	// the raised control points (2, 2) and (4, 2) average to (3, 2), which is
	// reflected through (6, 0)
	q := QuadBez{Pt(6, 0), Pt(9, -2), Pt(12, 0)}
	c := segs[2].Cubic()
	for i := range 5 {
		tt := float64(i) / 4
		assertNear(t, c.Eval(tt), q.Eval(tt), 1e-12)
	}

	// without a previous curve the control point is the current position
	segs = Canonicalize([]Command{MoveTo(Pt(0, 0)), RelReflectedQuadTo(Vec(3, 0))})
	diff(t, QuadBez{Pt(0, 0), Pt(0, 0), Pt(3, 0)}.Raise(), segs[1].Cubic(),
		cmpopts.EquateApprox(0, 1e-12))
}

func TestCanonicalizeArc(t *testing.T) {
	segs := Canonicalize([]Command{
		MoveTo(Pt(0, 0)),
		ArcTo(Vec(1, 1), 0, false, true, Pt(2, 0)),
		RelArcTo(Vec(1, 1), 0, false, true, Vec(-2, 0)),
	})
	if len(segs) != 5 {
		t.Fatalf("got %d segments, want 5", len(segs))
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].Start != segs[i-1].End {
			t.Errorf("segment %d does not start where %d ended", i, i-1)
		}
	}
	diff(t, Pt(2, 0), segs[2].End)
	diff(t, Pt(0, 0), segs[4].End)
}

func TestCanonicalizeDegenerateArc(t *testing.T) {
	segs := Canonicalize([]Command{
		MoveTo(Pt(0, 0)),
		ArcTo(Vec(0, 1), 0, false, true, Pt(3, 0)),
		ArcTo(Vec(1, 1), 0, false, true, Pt(3, 0)),
	})
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	diff(t, Line{Pt(0, 0), Pt(3, 0)}.Raise(), segs[1].Cubic())
}

func TestCanonicalizeNonFiniteArc(t *testing.T) {
	segs := Canonicalize([]Command{
		MoveTo(Pt(0, 0)),
		ArcTo(Vec(math.NaN(), 1), 0, false, true, Pt(3, 0)),
		RelArcTo(Vec(1, math.Inf(1)), 0, false, true, Vec(0, 3)),
	})
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	diff(t, Line{Pt(0, 0), Pt(3, 0)}.Raise(), segs[1].Cubic())
	diff(t, Line{Pt(3, 0), Pt(3, 3)}.Raise(), segs[2].Cubic())
}

func TestCanonicalizeClose(t *testing.T) {
	segs := Canonicalize([]Command{MoveTo(Pt(0, 0)), LineTo(Pt(1, 0)), Close(), LineTo(Pt(1, 1))})
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	// Close does not move the position
	diff(t, Pt(1, 0), segs[2].Start)
}
