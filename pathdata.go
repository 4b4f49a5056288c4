package morph

import "log/slog"

// Source is a shape to morph from or to: its drawing commands and the
// bounding box they are laid out in.
type Source struct {
	Bounds   Rect
	Commands []Command
}

// PathData is the result of matching the subpaths of two shapes. It is
// immutable and safe for concurrent use.
type PathData struct {
	target        Size
	paired        []*PairedSubpath
	unpairedStart []*UnpairedSubpath
	unpairedEnd   []*UnpairedSubpath
}

// NewPathData normalizes both shapes into a box of the target size, splits
// them into subpaths and pairs those by descending arc length. The longest
// subpath of one shape is paired with the longest of the other, and so on;
// subpaths left over on either side are unpaired.
//
// A non-positive target width or height is replaced by the larger of the
// two shapes' extents on that axis.
func NewPathData(start, end Source, target Size) *PathData {
	target = resolveTarget(target, start.Bounds, end.Bounds)
	starts := sortByLength(Split(Normalize(start.Commands, start.Bounds, target)))
	ends := sortByLength(Split(Normalize(end.Commands, end.Bounds, target)))

	n := min(len(starts), len(ends))
	pd := &PathData{target: target}
	for i := range n {
		pd.paired = append(pd.paired, NewPairedSubpath(starts[i], ends[i]))
	}
	for _, sp := range starts[n:] {
		pd.unpairedStart = append(pd.unpairedStart, NewUnpairedSubpath(sp))
	}
	for _, sp := range ends[n:] {
		pd.unpairedEnd = append(pd.unpairedEnd, NewUnpairedSubpath(sp))
	}

	logAttrs(componentPipeline, slog.LevelDebug, "matched subpaths",
		slog.Any("target", target),
		slog.Int("start", len(starts)),
		slog.Int("end", len(ends)),
		slog.Int("paired", len(pd.paired)),
		slog.Int("unpairedStart", len(pd.unpairedStart)),
		slog.Int("unpairedEnd", len(pd.unpairedEnd)))
	return pd
}

// Target returns the size both shapes were normalized to.
func (pd *PathData) Target() Size { return pd.target }

func (pd *PathData) Paired() []*PairedSubpath          { return pd.paired }
func (pd *PathData) UnpairedStart() []*UnpairedSubpath { return pd.unpairedStart }
func (pd *PathData) UnpairedEnd() []*UnpairedSubpath   { return pd.unpairedEnd }

// PairedCommands returns all paired subpaths interpolated at fraction.
func (pd *PathData) PairedCommands(fraction float64) []Command {
	var out []Command
	for _, ps := range pd.paired {
		out = ps.AppendCommands(out, fraction)
	}
	return out
}

// UnpairedStartCommands returns the unpaired subpaths of the start shape at
// the given fade progress.
func (pd *PathData) UnpairedStartCommands(progress float64) []Command {
	return appendUnpaired(nil, pd.unpairedStart, progress)
}

// UnpairedEndCommands returns the unpaired subpaths of the end shape at the
// given fade progress.
func (pd *PathData) UnpairedEndCommands(progress float64) []Command {
	return appendUnpaired(nil, pd.unpairedEnd, progress)
}

func appendUnpaired(dst []Command, sps []*UnpairedSubpath, progress float64) []Command {
	for _, us := range sps {
		dst = us.AppendCommands(dst, progress)
	}
	return dst
}
