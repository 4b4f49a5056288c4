// Command morph renders the frames of a morph between two SVG paths.
//
// Usage:
//
//	morph [flags] job.toml
//
// The job file, in TOML or YAML, names the start and end shapes and how to
// render them. Flags override the values in the job file. One SVG document is
// written per frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"honnef.co/go/morph"
)

type overrides struct {
	width, height float64
	smoothness    int
	frames        int
	output        string
	precompute    bool
}

// apply copies the flags that were set on the command line into job.
func (o *overrides) apply(fs *flag.FlagSet, job *Job) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			job.Width = o.width
		case "height":
			job.Height = o.height
		case "smoothness":
			job.Smoothness = o.smoothness
		case "frames":
			job.Frames = o.frames
		case "o":
			job.Output = o.output
		case "precompute":
			job.Precompute = o.precompute
		}
	})
}

func main() {
	log.SetFlags(0)

	var o overrides
	fs := flag.CommandLine
	fs.Float64Var(&o.width, "width", 0, "frame width")
	fs.Float64Var(&o.height, "height", 0, "frame height")
	fs.IntVar(&o.smoothness, "smoothness", 0, "number of cache steps")
	fs.IntVar(&o.frames, "frames", defaultFrames, "number of frames")
	fs.StringVar(&o.output, "o", defaultOutput, "output directory")
	fs.BoolVar(&o.precompute, "precompute", false, "fill the cache before rendering")
	verbose := fs.Bool("v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] job.toml\n", os.Args[0])
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	morph.SetLogger(logger)

	job, err := loadJob(fs.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	o.apply(fs, job)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, job); err != nil {
		stop()
		log.Fatal(err)
	}
}

func run(ctx context.Context, job *Job) error {
	job.setDefaults()
	if err := job.validate(); err != nil {
		return err
	}
	start, err := job.Start.source()
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	end, err := job.End.source()
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}

	t := time.Now()
	a, err := morph.NewAnimator(start, end, job.options())
	if err != nil {
		return err
	}
	pd := a.PathData()
	slog.Info("built animator",
		"paired", len(pd.Paired()),
		"unpairedStart", len(pd.UnpairedStart()),
		"unpairedEnd", len(pd.UnpairedEnd()),
		"size", pd.Target(),
		"took", time.Since(t))

	if err := writeFrames(ctx, a, job); err != nil {
		return err
	}
	stats := a.AnimationData().Stats()
	slog.Info("wrote frames", "frames", job.Frames, "dir", job.Output, "cacheHitRate", stats.Paired.HitRate)
	return nil
}
