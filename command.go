package morph

import (
	"fmt"
	"math"
)

type CommandKind int

const (
	// Move to the point without drawing anything, starting a new subpath.
	MoveToKind CommandKind = iota + 1
	RelMoveToKind
	// Draw a line from the current location to the point.
	LineToKind
	RelLineToKind
	// Draw a horizontal line to the X coordinate.
	HorizontalToKind
	RelHorizontalToKind
	// Draw a vertical line to the Y coordinate.
	VerticalToKind
	RelVerticalToKind
	// Draw a cubic Bézier using the current location and three points.
	CurveToKind
	RelCurveToKind
	// Draw a quadratic Bézier using the current location and two points.
	QuadToKind
	RelQuadToKind
	// Draw a cubic Bézier whose first control point continues the previous
	// curve.
	ReflectedCurveToKind
	RelReflectedCurveToKind
	// Draw a quadratic Bézier whose control point continues the previous
	// curve.
	ReflectedQuadToKind
	RelReflectedQuadToKind
	// Draw an elliptical arc.
	ArcToKind
	RelArcToKind
	// Close off the subpath.
	CloseKind
)

var commandKindNames = [...]string{
	MoveToKind:              "MoveTo",
	RelMoveToKind:           "RelMoveTo",
	LineToKind:              "LineTo",
	RelLineToKind:           "RelLineTo",
	HorizontalToKind:        "HorizontalTo",
	RelHorizontalToKind:     "RelHorizontalTo",
	VerticalToKind:          "VerticalTo",
	RelVerticalToKind:       "RelVerticalTo",
	CurveToKind:             "CurveTo",
	RelCurveToKind:          "RelCurveTo",
	QuadToKind:              "QuadTo",
	RelQuadToKind:           "RelQuadTo",
	ReflectedCurveToKind:    "ReflectedCurveTo",
	RelReflectedCurveToKind: "RelReflectedCurveTo",
	ReflectedQuadToKind:     "ReflectedQuadTo",
	RelReflectedQuadToKind:  "RelReflectedQuadTo",
	ArcToKind:               "ArcTo",
	RelArcToKind:            "RelArcTo",
	CloseKind:               "Close",
}

func (k CommandKind) String() string {
	if k > 0 && int(k) < len(commandKindNames) {
		return commandKindNames[k]
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// IsRelative reports whether the kind's coordinates are deltas from the
// current position.
func (k CommandKind) IsRelative() bool {
	switch k {
	case RelMoveToKind, RelLineToKind, RelHorizontalToKind, RelVerticalToKind,
		RelCurveToKind, RelQuadToKind, RelReflectedCurveToKind,
		RelReflectedQuadToKind, RelArcToKind:
		return true
	default:
		return false
	}
}

// IsMove reports whether the kind is an absolute or relative move.
func (k CommandKind) IsMove() bool {
	return k == MoveToKind || k == RelMoveToKind
}

// Command is a single drawing command of a path.
//
// Which fields are used depends on Kind. For relative kinds the points hold
// deltas from the current position.
//
//   - MoveTo, LineTo: P0 is the target.
//   - HorizontalTo: P0.X is the target X coordinate.
//   - VerticalTo: P0.Y is the target Y coordinate.
//   - CurveTo: P0 and P1 are the control points, P2 the end point.
//   - QuadTo: P0 is the control point, P1 the end point.
//   - ReflectedCurveTo: P0 is the second control point, P1 the end point.
//   - ReflectedQuadTo: P0 is the end point.
//   - ArcTo: P0 is the end point, plus Radii, XRotation, LargeArc and Sweep.
//   - Close uses no fields.
type Command struct {
	Kind CommandKind
	P0   Point
	P1   Point
	P2   Point
	// Arc parameters. XRotation is in degrees.
	Radii     Vec2
	XRotation float64
	LargeArc  bool
	Sweep     bool
}

func MoveTo(pt Point) Command  { return Command{Kind: MoveToKind, P0: pt} }
func RelMoveTo(d Vec2) Command { return Command{Kind: RelMoveToKind, P0: Point(d)} }
func LineTo(pt Point) Command  { return Command{Kind: LineToKind, P0: pt} }
func RelLineTo(d Vec2) Command { return Command{Kind: RelLineToKind, P0: Point(d)} }
func HorizontalTo(x float64) Command {
	return Command{Kind: HorizontalToKind, P0: Pt(x, 0)}
}
func RelHorizontalTo(dx float64) Command {
	return Command{Kind: RelHorizontalToKind, P0: Pt(dx, 0)}
}
func VerticalTo(y float64) Command {
	return Command{Kind: VerticalToKind, P0: Pt(0, y)}
}
func RelVerticalTo(dy float64) Command {
	return Command{Kind: RelVerticalToKind, P0: Pt(0, dy)}
}

func CurveTo(c1, c2, end Point) Command {
	return Command{Kind: CurveToKind, P0: c1, P1: c2, P2: end}
}

func RelCurveTo(c1, c2, end Vec2) Command {
	return Command{Kind: RelCurveToKind, P0: Point(c1), P1: Point(c2), P2: Point(end)}
}

func QuadTo(ctrl, end Point) Command {
	return Command{Kind: QuadToKind, P0: ctrl, P1: end}
}

func RelQuadTo(ctrl, end Vec2) Command {
	return Command{Kind: RelQuadToKind, P0: Point(ctrl), P1: Point(end)}
}

func ReflectedCurveTo(c2, end Point) Command {
	return Command{Kind: ReflectedCurveToKind, P0: c2, P1: end}
}

func RelReflectedCurveTo(c2, end Vec2) Command {
	return Command{Kind: RelReflectedCurveToKind, P0: Point(c2), P1: Point(end)}
}

func ReflectedQuadTo(end Point) Command {
	return Command{Kind: ReflectedQuadToKind, P0: end}
}

func RelReflectedQuadTo(end Vec2) Command {
	return Command{Kind: RelReflectedQuadToKind, P0: Point(end)}
}

func ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, end Point) Command {
	return Command{
		Kind:      ArcToKind,
		P0:        end,
		Radii:     radii,
		XRotation: xRotation,
		LargeArc:  largeArc,
		Sweep:     sweep,
	}
}

func RelArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, end Vec2) Command {
	cmd := ArcTo(radii, xRotation, largeArc, sweep, Point(end))
	cmd.Kind = RelArcToKind
	return cmd
}

func Close() Command { return Command{Kind: CloseKind} }

func (cmd Command) String() string {
	switch cmd.Kind {
	case MoveToKind, RelMoveToKind, LineToKind, RelLineToKind,
		ReflectedQuadToKind, RelReflectedQuadToKind:
		return fmt.Sprintf("%s(%s)", cmd.Kind, cmd.P0)
	case HorizontalToKind, RelHorizontalToKind:
		return fmt.Sprintf("%s(%g)", cmd.Kind, cmd.P0.X)
	case VerticalToKind, RelVerticalToKind:
		return fmt.Sprintf("%s(%g)", cmd.Kind, cmd.P0.Y)
	case CurveToKind, RelCurveToKind:
		return fmt.Sprintf("%s(%s, %s, %s)", cmd.Kind, cmd.P0, cmd.P1, cmd.P2)
	case QuadToKind, RelQuadToKind, ReflectedCurveToKind, RelReflectedCurveToKind:
		return fmt.Sprintf("%s(%s, %s)", cmd.Kind, cmd.P0, cmd.P1)
	case ArcToKind, RelArcToKind:
		return fmt.Sprintf("%s(%s, %g, %t, %t, %s)",
			cmd.Kind, cmd.Radii, cmd.XRotation, cmd.LargeArc, cmd.Sweep, cmd.P0)
	case CloseKind:
		return "Close()"
	default:
		return fmt.Sprintf("%s()", cmd.Kind)
	}
}

// IsDrawing reports whether the command draws anything, i.e. whether it is
// neither a move nor a close.
func (cmd Command) IsDrawing() bool {
	switch cmd.Kind {
	case MoveToKind, RelMoveToKind, CloseKind:
		return false
	default:
		return cmd.Kind != 0
	}
}

// Transform applies an axis-aligned affine transformation to the command.
// Absolute coordinates are transformed fully, relative deltas only by the
// linear part, and arc radii are scaled by the magnitude of the respective
// axis factor.
func (cmd Command) Transform(aff Affine) Command {
	pt := func(p Point) Point {
		if cmd.Kind.IsRelative() {
			return Point(aff.Vec(Vec2(p)))
		}
		return p.Transform(aff)
	}
	out := cmd
	switch cmd.Kind {
	case MoveToKind, RelMoveToKind, LineToKind, RelLineToKind,
		ReflectedQuadToKind, RelReflectedQuadToKind:
		out.P0 = pt(cmd.P0)
	case HorizontalToKind, RelHorizontalToKind:
		out.P0 = Pt(pt(Pt(cmd.P0.X, 0)).X, 0)
	case VerticalToKind, RelVerticalToKind:
		out.P0 = Pt(0, pt(Pt(0, cmd.P0.Y)).Y)
	case CurveToKind, RelCurveToKind:
		out.P0, out.P1, out.P2 = pt(cmd.P0), pt(cmd.P1), pt(cmd.P2)
	case QuadToKind, RelQuadToKind, ReflectedCurveToKind, RelReflectedCurveToKind:
		out.P0, out.P1 = pt(cmd.P0), pt(cmd.P1)
	case ArcToKind, RelArcToKind:
		out.P0 = pt(cmd.P0)
		out.Radii = Vec(cmd.Radii.X*math.Abs(aff.N0), cmd.Radii.Y*math.Abs(aff.N3))
	case CloseKind:
	}
	return out
}

// Abs returns the absolute form of the command, given the current position.
// Absolute commands are returned unchanged.
func (cmd Command) Abs(cur Point) Command {
	if !cmd.Kind.IsRelative() {
		return cmd
	}
	off := func(p Point) Point { return cur.Translate(Vec2(p)) }
	out := cmd
	switch cmd.Kind {
	case RelMoveToKind:
		out.Kind, out.P0 = MoveToKind, off(cmd.P0)
	case RelLineToKind:
		out.Kind, out.P0 = LineToKind, off(cmd.P0)
	case RelHorizontalToKind:
		out.Kind, out.P0 = HorizontalToKind, Pt(cur.X+cmd.P0.X, 0)
	case RelVerticalToKind:
		out.Kind, out.P0 = VerticalToKind, Pt(0, cur.Y+cmd.P0.Y)
	case RelCurveToKind:
		out.Kind, out.P0, out.P1, out.P2 = CurveToKind, off(cmd.P0), off(cmd.P1), off(cmd.P2)
	case RelQuadToKind:
		out.Kind, out.P0, out.P1 = QuadToKind, off(cmd.P0), off(cmd.P1)
	case RelReflectedCurveToKind:
		out.Kind, out.P0, out.P1 = ReflectedCurveToKind, off(cmd.P0), off(cmd.P1)
	case RelReflectedQuadToKind:
		out.Kind, out.P0 = ReflectedQuadToKind, off(cmd.P0)
	case RelArcToKind:
		out.Kind, out.P0 = ArcToKind, off(cmd.P0)
	}
	return out
}

// Advance returns the current position after executing the command at cur.
// Close leaves the position unchanged; returning to the subpath's start is
// the caller's business.
func (cmd Command) Advance(cur Point) Point {
	abs := cmd.Abs(cur)
	switch abs.Kind {
	case MoveToKind, LineToKind, ReflectedQuadToKind, ArcToKind:
		return abs.P0
	case HorizontalToKind:
		return Pt(abs.P0.X, cur.Y)
	case VerticalToKind:
		return Pt(cur.X, abs.P0.Y)
	case CurveToKind:
		return abs.P2
	case QuadToKind, ReflectedCurveToKind:
		return abs.P1
	default:
		return cur
	}
}
