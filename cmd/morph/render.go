package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"honnef.co/go/morph"
)

var svgOptions = morph.SVGOptions{MaxPrecision: 3}

// fractions returns n evenly spaced fractions from 0 to 1 inclusive.
func fractions(n int) []float64 {
	if n == 1 {
		return []float64{0}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	out[n-1] = 1
	return out
}

func frameName(i int) string {
	return fmt.Sprintf("frame%04d.svg", i)
}

// frameSVG renders one frame as a standalone SVG document.
func frameSVG(fr morph.Frame, size morph.Size) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g" width="%g" height="%g">`+"\n",
		size.Width, size.Height, size.Width, size.Height)
	path := func(cmds []morph.Command, alpha float64) {
		if len(cmds) == 0 {
			return
		}
		buf.WriteString(`<path d="`)
		morph.WriteSVG(&buf, cmds, svgOptions)
		if alpha < 1 {
			fmt.Fprintf(&buf, `" fill-opacity="%.3f"/>`+"\n", alpha)
		} else {
			buf.WriteString(`"/>` + "\n")
		}
	}
	path(fr.Paired, 1)
	path(fr.UnpairedStart, fr.StartAlpha)
	path(fr.UnpairedEnd, fr.EndAlpha)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// writeFrames renders job.Frames frames of a into job.Output, in parallel.
func writeFrames(ctx context.Context, a *morph.Animator, job *Job) error {
	if err := os.MkdirAll(job.Output, 0o755); err != nil {
		return err
	}
	size := a.PathData().Target()
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range fractions(job.Frames) {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			name := filepath.Join(job.Output, frameName(i))
			data := frameSVG(a.Frame(f, job.Breakpoint), size)
			if err := os.WriteFile(name, data, 0o644); err != nil {
				return err
			}
			slog.Debug("wrote frame", "file", name, "fraction", f)
			return nil
		})
	}
	return eg.Wait()
}
