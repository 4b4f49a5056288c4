package morph

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAnimatorOptions(t *testing.T) {
	if _, err := NewAnimator(twoSquares(), oneCircle(), &Options{Smoothness: -1}); !errors.Is(err, ErrInvalidSmoothness) {
		t.Errorf("got error %v, want %v", err, ErrInvalidSmoothness)
	}

	a, err := NewAnimator(twoSquares(), oneCircle(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := a.AnimationData().Smoothness(); got != DefaultSmoothness {
		t.Errorf("got smoothness %d, want %d", got, DefaultSmoothness)
	}
	if st := a.AnimationData().Stats().Paired; st.Filled != 2 {
		t.Errorf("lazy animator filled %d slots, want 2", st.Filled)
	}

	a, err = Precompute(twoSquares(), oneCircle(), &Options{Width: 24, Height: 24})
	if err != nil {
		t.Fatal(err)
	}
	if got := a.AnimationData().Smoothness(); got != PrecomputeSmoothness {
		t.Errorf("got smoothness %d, want %d", got, PrecomputeSmoothness)
	}
	if st := a.AnimationData().Stats().Paired; st.Filled != st.Slots {
		t.Errorf("precomputed animator filled %d of %d slots", st.Filled, st.Slots)
	}
	diff(t, Sz(24, 24), a.PathData().Target())

	a, err = NewAnimator(twoSquares(), oneCircle(), &Options{Smoothness: 7, Precompute: true})
	if err != nil {
		t.Fatal(err)
	}
	if st := a.AnimationData().Stats().UnpairedStart; st.Slots != 8 || st.Filled != 8 {
		t.Errorf("unexpected stats: %+v", st)
	}
}

func TestAnimatorSquareToCircle(t *testing.T) {
	start := Source{Bounds: NewRect(0, 0, 10, 10), Commands: square(0, 0, 10)}
	a, err := NewAnimator(start, oneCircle(), &Options{Width: 100, Height: 100})
	if err != nil {
		t.Fatal(err)
	}
	pd := a.PathData()
	if len(pd.Paired()) != 1 || len(pd.UnpairedStart()) != 0 || len(pd.UnpairedEnd()) != 0 {
		t.Fatalf("got %d/%d/%d subpaths, want 1/0/0",
			len(pd.Paired()), len(pd.UnpairedStart()), len(pd.UnpairedEnd()))
	}

	startPts := curvePoints(t, a.PairedShape(0))
	endPts := curvePoints(t, a.PairedShape(1))
	mid := a.PairedShape(0.5)
	if mid[len(mid)-1].Kind != CloseKind {
		t.Error("interpolated shape is not closed")
	}
	midPts := curvePoints(t, mid)
	if len(midPts) != len(startPts) {
		t.Fatalf("got %d points, want %d", len(midPts), len(startPts))
	}
	for i := range midPts {
		assertNear(t, midPts[i], startPts[i].Midpoint(endPts[i]), 1e-12)
	}
}

func TestAnimatorBoundariesAndIdempotence(t *testing.T) {
	a, err := NewAnimator(twoSquares(), oneCircle(), nil)
	if err != nil {
		t.Fatal(err)
	}
	pd := a.PathData()
	diff(t, pd.PairedCommands(0), a.PairedShape(0))
	diff(t, pd.PairedCommands(1), a.PairedShape(1))
	diff(t, a.PairedShape(0.42), a.PairedShape(0.42))
	// out of range fractions are clamped
	diff(t, a.PairedShape(0), a.PairedShape(-3))
	diff(t, a.PairedShape(1), a.PairedShape(math.Inf(1)))
}

func TestAnimatorNonFiniteRadii(t *testing.T) {
	start := Source{
		Bounds:   NewRect(0, 0, 10, 10),
		Commands: []Command{MoveTo(Pt(0, 0)), ArcTo(Vec(math.NaN(), 1), 0, false, true, Pt(10, 0))},
	}
	end := Source{
		Bounds:   NewRect(0, 0, 10, 10),
		Commands: []Command{MoveTo(Pt(0, 10)), LineTo(Pt(10, 10))},
	}
	a, err := NewAnimator(start, end, &Options{Width: 10, Height: 10})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []float64{0, 0.5, 1} {
		for _, cmd := range a.PairedShape(f) {
			if cmd.P0.IsNaN() || cmd.P1.IsNaN() || cmd.P2.IsNaN() {
				t.Errorf("fraction %g: NaN in %v", f, cmd)
			}
		}
	}
	// the arc degrades to the straight line between its endpoints
	diff(t, []Command{MoveTo(Pt(0, 0)), CurveTo(Pt(3.3, 0), Pt(6.6, 0), Pt(10, 0))}, a.PairedShape(0),
		cmpopts.EquateApprox(0, 1e-12))
}

func TestAnimatorUnpairedStart(t *testing.T) {
	a, err := NewAnimator(twoSquares(), oneCircle(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := a.UnpairedStartShape(1); len(got) != 0 {
		t.Errorf("fully faded shape should be empty, got %v", got)
	}
	full := a.UnpairedStartShape(0)
	if len(full) != 6 || full[0].Kind != MoveToKind || full[5].Kind != CloseKind {
		t.Errorf("unexpected unpaired start shape %v", full)
	}
	if got := a.UnpairedEndShape(0); len(got) != 0 {
		t.Errorf("got %v, want nothing", got)
	}
}

func TestAnimatorFrame(t *testing.T) {
	fadeOut, err := NewAnimator(twoSquares(), oneCircle(), nil)
	if err != nil {
		t.Fatal(err)
	}
	fadeIn, err := NewAnimator(oneCircle(), twoSquares(), nil)
	if err != nil {
		t.Fatal(err)
	}

	fr := fadeOut.Frame(0, 0)
	if fr.StartAlpha != 1 || len(fr.UnpairedStart) == 0 {
		t.Errorf("at 0 the unpaired start shape should be fully visible: %+v", fr)
	}
	if fr.EndAlpha != 0 || fr.UnpairedEnd != nil {
		t.Errorf("at 0 the unpaired end shape should be invisible: %+v", fr)
	}
	fr = fadeOut.Frame(0.1, 0.2)
	if math.Abs(fr.StartAlpha-0.5) > 1e-12 || len(fr.UnpairedStart) == 0 {
		t.Errorf("halfway through the fade: %+v", fr)
	}
	fr = fadeOut.Frame(0.5, 0.2)
	if fr.UnpairedStart != nil || fr.StartAlpha != 0 {
		t.Errorf("after the breakpoint the unpaired start shape should be gone: %+v", fr)
	}
	diff(t, fadeOut.PairedShape(0.5), fr.Paired)

	fr = fadeIn.Frame(0.5, 0.2)
	if fr.UnpairedEnd != nil || fr.EndAlpha != 0 {
		t.Errorf("before the end breakpoint the unpaired end shape should be invisible: %+v", fr)
	}
	fr = fadeIn.Frame(0.9, 0.2)
	if math.Abs(fr.EndAlpha-0.5) > 1e-9 || len(fr.UnpairedEnd) == 0 {
		t.Errorf("halfway through the fade in: %+v", fr)
	}
	fr = fadeIn.Frame(1, 0.2)
	if math.Abs(fr.EndAlpha-1) > 1e-9 || len(fr.UnpairedEnd) == 0 {
		t.Errorf("at 1 the unpaired end shape should be fully visible: %+v", fr)
	}
	if fr.Fraction != 1 {
		t.Errorf("got fraction %v, want 1", fr.Fraction)
	}
}
