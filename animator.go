package morph

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultSmoothness is the number of cache steps used by [NewAnimator]
	// when Options.Smoothness is zero.
	DefaultSmoothness = 100
	// PrecomputeSmoothness is the number of cache steps used by [Precompute]
	// when Options.Smoothness is zero.
	PrecomputeSmoothness = 200
	// DefaultBreakpoint is the share of the animation over which unpaired
	// subpaths fade out at the start and fade in at the end.
	DefaultBreakpoint = 0.2
)

var ErrInvalidSmoothness = errors.New("smoothness must not be negative")

// Options configures an [Animator]. The zero value and nil are valid.
type Options struct {
	// Width and Height are the size of the box both shapes are normalized
	// to. A non-positive value uses the larger of the two shapes' extents.
	Width, Height float64
	// Smoothness is the number of steps the animation is cached at. Zero
	// selects a default.
	Smoothness int
	// Precompute fills the whole cache when the animator is created, instead
	// of on demand.
	Precompute bool
}

// Animator morphs between two shapes. It is safe for concurrent use.
type Animator struct {
	pathData *PathData
	anim     *AnimationData
}

// NewAnimator matches the subpaths of start and end and prepares a cache of
// interpolated shapes.
func NewAnimator(start, end Source, opts *Options) (*Animator, error) {
	return newAnimator(start, end, opts, DefaultSmoothness)
}

// Precompute is like [NewAnimator], but fills every cache slot before
// returning, using a finer default smoothness.
func Precompute(start, end Source, opts *Options) (*Animator, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	o.Precompute = true
	return newAnimator(start, end, &o, PrecomputeSmoothness)
}

func newAnimator(start, end Source, opts *Options, defaultSmoothness int) (*Animator, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	switch {
	case o.Smoothness < 0:
		return nil, fmt.Errorf("morph: %w, got %d", ErrInvalidSmoothness, o.Smoothness)
	case o.Smoothness == 0:
		o.Smoothness = defaultSmoothness
	}

	pd := NewPathData(start, end, Sz(o.Width, o.Height))
	anim := NewAnimationData(pd, o.Smoothness)
	if o.Precompute {
		anim.Precompute()
	}
	return &Animator{pathData: pd, anim: anim}, nil
}

func (a *Animator) PathData() *PathData           { return a.pathData }
func (a *Animator) AnimationData() *AnimationData { return a.anim }

// PairedShape returns the morphed shape at fraction. Fractions are clamped to
// [0, 1] and rounded to the nearest cache step. The returned slice is shared
// and must not be modified.
func (a *Animator) PairedShape(fraction float64) []Command {
	return a.anim.Paired(fraction)
}

// UnpairedStartShape returns the start shape's unpaired subpaths, which are
// empty once progress reaches 1. The returned slice is shared and must not
// be modified.
func (a *Animator) UnpairedStartShape(progress float64) []Command {
	return a.anim.UnpairedStart(progress)
}

// UnpairedEndShape returns the end shape's unpaired subpaths, which are
// empty once progress reaches 1. The returned slice is shared and must not
// be modified.
func (a *Animator) UnpairedEndShape(progress float64) []Command {
	return a.anim.UnpairedEnd(progress)
}

// Frame is everything a renderer needs to draw one step of the animation.
type Frame struct {
	Fraction float64
	// Paired is drawn fully opaque.
	Paired []Command
	// UnpairedStart is drawn with StartAlpha, UnpairedEnd with EndAlpha.
	// Either is empty while invisible.
	UnpairedStart []Command
	UnpairedEnd   []Command
	StartAlpha    float64
	EndAlpha      float64
}

// Frame returns the shapes to draw at fraction.
//
// Unpaired start subpaths fade out over [0, breakpoint], unpaired end
// subpaths fade in over [1-breakpoint, 1]. A breakpoint outside of (0, 1]
// selects [DefaultBreakpoint].
func (a *Animator) Frame(fraction, breakpoint float64) Frame {
	fraction = clamp01(fraction)
	if !(breakpoint > 0 && breakpoint <= 1) {
		breakpoint = DefaultBreakpoint
	}

	fr := Frame{
		Fraction: fraction,
		Paired:   a.PairedShape(fraction),
	}

	startProgress := 1.0
	if fraction <= breakpoint {
		startProgress = fraction / breakpoint
	}
	if startProgress < 1 {
		fr.UnpairedStart = a.UnpairedStartShape(startProgress)
		fr.StartAlpha = clamp01(1 - startProgress)
	}

	endBreakpoint := 1 - breakpoint
	endProgress := 0.0
	if fraction >= endBreakpoint {
		endProgress = (fraction - endBreakpoint) / breakpoint
	}
	if endProgress > 0 {
		fr.UnpairedEnd = a.UnpairedEndShape(1 - endProgress)
		fr.EndAlpha = clamp01(endProgress)
	}
	return fr
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return math.Min(v, 1)
}
