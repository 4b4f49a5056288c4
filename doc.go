// Package morph morphs one vector shape into another. Given two shapes made
// of drawing commands (moves, lines, quadratic and cubic Béziers, their
// reflected forms, elliptical arcs and closes), it produces the in-between
// shape at any fraction in [0, 1]. It is intended for animating transitions
// between icons.
//
// # Pipeline
//
// Building an [Animator] runs the following steps on both shapes:
//
//   - [Normalize] maps each shape from its bounding box into a common target
//     box, scaling the axes independently.
//   - [Split] partitions each shape into [Subpath] values, independent
//     contours that each start with an absolute move.
//   - Subpaths are ordered by descending arc length and paired with each
//     other positionally. Subpaths left over on the side with more of them
//     are unpaired and fade instead of morphing.
//   - [Canonicalize] converts every drawing command into cubic Béziers.
//     Lines are raised to cubics, quadratics are raised exactly, reflected
//     curves are resolved against the preceding segment and arcs are
//     approximated by one cubic per quarter turn.
//   - A [PairedSubpath] aligns its two sides to the same number of cubics and
//     the same winding direction; interpolating is then a per control point
//     lerp.
//
// The result of matching is a [PathData], which is immutable. An
// [AnimationData] caches interpolated shapes at a fixed number of steps, and
// an [Animator] combines the two.
//
// # Rendering
//
// This package does not draw anything. [Animator.Frame] returns the three
// command lists a renderer needs for one frame, the paired shape and the
// unpaired subpaths of either side, with the opacity to draw the latter at.
// [SVG] and [WriteSVG] format commands as SVG path data, and the svgpath
// package parses SVG path data into commands.
//
// # Concurrency
//
// All exported types are safe for concurrent use. Building an animator can
// take a while for complex shapes; [Loader] builds animators in the
// background and publishes the newest one for a render loop to pick up.
//
// # Logging
//
// The package logs through [log/slog]. By default nothing is logged, see
// [SetLogger].
//
// # Literature
//
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [SVG implementation notes on elliptical arcs]
//
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [SVG implementation notes on elliptical arcs]: https://www.w3.org/TR/SVG2/implnote.html#ArcImplementationNotes
package morph
