// Package svgpath parses SVG path data into morph commands.
//
// Commands are kept as written: relative commands stay relative and the
// shorthand forms (H, V, S, T) are not expanded, so that formatting the result
// with [morph.SVG] reproduces the input up to number formatting.
package svgpath

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"

	"honnef.co/go/morph"
)

// ParseError describes malformed path data.
type ParseError struct {
	// Offset is the byte offset in the input at which parsing failed.
	Offset int
	Msg    string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("svgpath: offset %d: %s", err.Offset, err.Msg)
}

// Parse parses the value of an SVG path element's d attribute. Parsing stops
// at the first error; the commands parsed up to that point are not returned.
//
// A command letter may be followed by more than one set of arguments, in
// which case the command repeats. Additional coordinate pairs after a move
// are lines, relative if the move was.
func Parse(d string) ([]morph.Command, error) {
	p := parser{data: []byte(d)}
	return p.parse()
}

// MustParse is like [Parse] but panics on error. It is meant for path data
// that is part of the program.
func MustParse(d string) []morph.Command {
	cmds, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return cmds
}

type parser struct {
	data []byte
	off  int
	out  []morph.Command
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	default:
		return false
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Offset: p.off, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.off < len(p.data) && isSpace(p.data[p.off]) {
		p.off++
	}
}

// skipSeparator skips whitespace and at most one comma.
func (p *parser) skipSeparator() {
	p.skipSpace()
	if p.off < len(p.data) && p.data[p.off] == ',' {
		p.off++
		p.skipSpace()
	}
}

// moreArgs reports whether another set of arguments follows the current
// command.
func (p *parser) moreArgs() bool {
	p.skipSeparator()
	if p.off >= len(p.data) {
		return false
	}
	c := p.data[p.off]
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

func (p *parser) number() (float64, error) {
	p.skipSeparator()
	if p.off >= len(p.data) {
		return 0, p.errorf("expected number, got end of input")
	}
	f, n := strconv.ParseFloat(p.data[p.off:])
	if n == 0 {
		return 0, p.errorf("expected number, got %q", p.data[p.off])
	}
	p.off += n
	return f, nil
}

func (p *parser) point() (morph.Point, error) {
	x, err := p.number()
	if err != nil {
		return morph.Point{}, err
	}
	y, err := p.number()
	if err != nil {
		return morph.Point{}, err
	}
	return morph.Pt(x, y), nil
}

func (p *parser) vec() (morph.Vec2, error) {
	pt, err := p.point()
	return morph.Vec2(pt), err
}

// flag parses an arc flag. Flags are single characters and need not be
// separated from what follows.
func (p *parser) flag() (bool, error) {
	p.skipSeparator()
	if p.off >= len(p.data) {
		return false, p.errorf("expected flag, got end of input")
	}
	switch p.data[p.off] {
	case '0':
		p.off++
		return false, nil
	case '1':
		p.off++
		return true, nil
	default:
		return false, p.errorf("expected flag, got %q", p.data[p.off])
	}
}

func (p *parser) arcArgs() (radii morph.Vec2, rot float64, large, sweep bool, err error) {
	if radii, err = p.vec(); err != nil {
		return
	}
	if rot, err = p.number(); err != nil {
		return
	}
	if large, err = p.flag(); err != nil {
		return
	}
	sweep, err = p.flag()
	return
}

func (p *parser) parse() ([]morph.Command, error) {
	p.skipSpace()
	if p.off == len(p.data) {
		return nil, nil
	}
	if c := p.data[p.off]; c != 'M' && c != 'm' {
		return nil, p.errorf("path data must start with a move, got %q", c)
	}
	for {
		p.skipSpace()
		if p.off == len(p.data) {
			return p.out, nil
		}
		c := p.data[p.off]
		if !isCommand(c) {
			return nil, p.errorf("expected command, got %q", c)
		}
		p.off++
		if err := p.command(c); err != nil {
			return nil, err
		}
	}
}

// command parses the arguments of the command letter c, including any
// implicit repetitions.
func (p *parser) command(c byte) error {
	if c == 'Z' || c == 'z' {
		p.out = append(p.out, morph.Close())
		return nil
	}
	for first := true; first || p.moreArgs(); first = false {
		cmd, err := p.args(c, first)
		if err != nil {
			return err
		}
		p.out = append(p.out, cmd)
	}
	return nil
}

func (p *parser) args(c byte, first bool) (morph.Command, error) {
	switch c {
	case 'M', 'L':
		pt, err := p.point()
		if c == 'M' && first {
			return morph.MoveTo(pt), err
		}
		return morph.LineTo(pt), err
	case 'm', 'l':
		v, err := p.vec()
		if c == 'm' && first {
			return morph.RelMoveTo(v), err
		}
		return morph.RelLineTo(v), err
	case 'H', 'h', 'V', 'v':
		f, err := p.number()
		switch c {
		case 'H':
			return morph.HorizontalTo(f), err
		case 'h':
			return morph.RelHorizontalTo(f), err
		case 'V':
			return morph.VerticalTo(f), err
		default:
			return morph.RelVerticalTo(f), err
		}
	case 'C':
		var pts [3]morph.Point
		for i := range pts {
			var err error
			if pts[i], err = p.point(); err != nil {
				return morph.Command{}, err
			}
		}
		return morph.CurveTo(pts[0], pts[1], pts[2]), nil
	case 'c':
		var vs [3]morph.Vec2
		for i := range vs {
			var err error
			if vs[i], err = p.vec(); err != nil {
				return morph.Command{}, err
			}
		}
		return morph.RelCurveTo(vs[0], vs[1], vs[2]), nil
	case 'S', 'Q':
		ctrl, err := p.point()
		if err != nil {
			return morph.Command{}, err
		}
		end, err := p.point()
		if c == 'S' {
			return morph.ReflectedCurveTo(ctrl, end), err
		}
		return morph.QuadTo(ctrl, end), err
	case 's', 'q':
		ctrl, err := p.vec()
		if err != nil {
			return morph.Command{}, err
		}
		end, err := p.vec()
		if c == 's' {
			return morph.RelReflectedCurveTo(ctrl, end), err
		}
		return morph.RelQuadTo(ctrl, end), err
	case 'T':
		end, err := p.point()
		return morph.ReflectedQuadTo(end), err
	case 't':
		end, err := p.vec()
		return morph.RelReflectedQuadTo(end), err
	case 'A':
		radii, rot, large, sweep, err := p.arcArgs()
		if err != nil {
			return morph.Command{}, err
		}
		end, err := p.point()
		return morph.ArcTo(radii, rot, large, sweep, end), err
	case 'a':
		radii, rot, large, sweep, err := p.arcArgs()
		if err != nil {
			return morph.Command{}, err
		}
		end, err := p.vec()
		return morph.RelArcTo(radii, rot, large, sweep, end), err
	default:
		panic(fmt.Sprintf("unreachable: command %q", c))
	}
}
