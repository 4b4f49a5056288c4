package morph

import (
	"log/slog"
	"math"
)

// Normalize maps a command sequence from its bounding box into a box of the
// target size at the origin, scaling each axis independently.
//
// A MoveTo(0, 0) is prepended before transforming so that a sequence
// opening with a relative move still has an absolute anchor. Absolute
// coordinates are transformed as (v - offset) * scale, relative deltas only
// as delta * scale.
//
// An axis along which bounds or target have no usable extent keeps a scale
// of 1.
func Normalize(cmds []Command, bounds Rect, target Size) []Command {
	aff := normalizeTransform(bounds, target)
	out := make([]Command, 0, len(cmds)+1)
	out = append(out, MoveTo(Point{}).Transform(aff))
	for _, cmd := range cmds {
		out = append(out, cmd.Transform(aff))
	}
	return out
}

func normalizeTransform(bounds Rect, target Size) Affine {
	bounds = bounds.Abs()
	axisScale := func(axis string, want, have float64) float64 {
		s := want / have
		if have <= 0 || want <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			logAttrs(componentPipeline, slog.LevelWarn, "degenerate bounds, not scaling axis",
				slog.String("axis", axis), slog.Float64("extent", have), slog.Float64("target", want))
			return 1
		}
		return s
	}
	sx := axisScale("x", target.Width, bounds.Width())
	sy := axisScale("y", target.Height, bounds.Height())
	return Translate(Vec2(bounds.Origin()).Negate()).ThenScale(sx, sy)
}

// resolveTarget fills in non-positive target dimensions with the larger of
// the two bounding boxes' extents on that axis.
func resolveTarget(target Size, a, b Rect) Size {
	auto := a.Abs().Size().Max(b.Abs().Size())
	if !(target.Width > 0) {
		target.Width = auto.Width
	}
	if !(target.Height > 0) {
		target.Height = auto.Height
	}
	return target
}
