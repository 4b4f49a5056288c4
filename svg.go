package morph

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of commands to a string of SVG path data.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(cmds []Command, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, cmds, opts)
	return sb.String()
}

var svgLetters = [...]byte{
	MoveToKind:              'M',
	RelMoveToKind:           'm',
	LineToKind:              'L',
	RelLineToKind:           'l',
	HorizontalToKind:        'H',
	RelHorizontalToKind:     'h',
	VerticalToKind:          'V',
	RelVerticalToKind:       'v',
	CurveToKind:             'C',
	RelCurveToKind:          'c',
	QuadToKind:              'Q',
	RelQuadToKind:           'q',
	ReflectedCurveToKind:    'S',
	RelReflectedCurveToKind: 's',
	ReflectedQuadToKind:     'T',
	RelReflectedQuadToKind:  't',
	ArcToKind:               'A',
	RelArcToKind:            'a',
	CloseKind:               'Z',
}

// WriteSVG converts a sequence of commands to SVG path data and writes it to
// w. Every command is written with its own letter; relative commands use the
// lower-case form.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, cmds []Command, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		if s == "-0" {
			s = "0"
		}
		return s
	}
	pt := func(p Point) string {
		return format(p.X) + "," + format(p.Y)
	}
	flag := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	for i, cmd := range cmds {
		if err != nil {
			return err
		}
		if cmd.Kind <= 0 || int(cmd.Kind) >= len(svgLetters) {
			return fmt.Errorf("invalid command kind %d", int(cmd.Kind))
		}
		sep := " "
		if i == 0 {
			sep = ""
		}
		letter := svgLetters[cmd.Kind]
		switch cmd.Kind {
		case MoveToKind, RelMoveToKind, LineToKind, RelLineToKind,
			ReflectedQuadToKind, RelReflectedQuadToKind:
			writef("%s%c%s", sep, letter, pt(cmd.P0))
		case HorizontalToKind, RelHorizontalToKind:
			writef("%s%c%s", sep, letter, format(cmd.P0.X))
		case VerticalToKind, RelVerticalToKind:
			writef("%s%c%s", sep, letter, format(cmd.P0.Y))
		case CurveToKind, RelCurveToKind:
			writef("%s%c%s %s %s", sep, letter, pt(cmd.P0), pt(cmd.P1), pt(cmd.P2))
		case QuadToKind, RelQuadToKind, ReflectedCurveToKind, RelReflectedCurveToKind:
			writef("%s%c%s %s", sep, letter, pt(cmd.P0), pt(cmd.P1))
		case ArcToKind, RelArcToKind:
			writef("%s%c%s,%s %s %d %d %s", sep, letter,
				format(cmd.Radii.X), format(cmd.Radii.Y), format(cmd.XRotation),
				flag(cmd.LargeArc), flag(cmd.Sweep), pt(cmd.P0))
		case CloseKind:
			writef("%sZ", sep)
		}
	}
	return err
}
