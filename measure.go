package morph

import (
	"cmp"
	"slices"
)

// SegmentsLength returns the total arc length of the drawing segments.
func SegmentsLength(segs []Segment, accuracy float64) float64 {
	var l float64
	for _, seg := range segs {
		if !seg.IsMove() {
			l += seg.Cubic().Arclen(accuracy)
		}
	}
	return l
}

// Bounds returns the tight bounding box of a command sequence, taking curve
// extrema into account. It returns the zero Rect for a sequence without any
// drawing commands.
func Bounds(cmds []Command) Rect {
	var (
		bbox  Rect
		first = true
	)
	add := func(r Rect) {
		if first {
			bbox, first = r, false
		} else {
			bbox = bbox.Union(r)
		}
	}
	for _, sp := range Split(cmds) {
		for _, seg := range sp.Segments() {
			if seg.IsMove() {
				add(NewRectFromPoints(seg.End, seg.End))
			} else {
				add(seg.Cubic().BoundingBox())
			}
		}
	}
	return bbox
}

type measuredSubpath struct {
	subpath Subpath
	length  float64
}

// sortByLength orders subpaths by descending arc length. Subpaths of equal
// length keep their input order.
func sortByLength(sps []Subpath) []Subpath {
	ms := make([]measuredSubpath, len(sps))
	for i, sp := range sps {
		ms[i] = measuredSubpath{sp, sp.Length(MeasureAccuracy)}
	}
	slices.SortStableFunc(ms, func(a, b measuredSubpath) int {
		return cmp.Compare(b.length, a.length)
	})
	out := make([]Subpath, len(ms))
	for i, m := range ms {
		out[i] = m.subpath
	}
	return out
}
