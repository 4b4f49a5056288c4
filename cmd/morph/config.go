package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/morph"
	"honnef.co/go/morph/svgpath"
)

const (
	defaultFrames = 60
	defaultOutput = "frames"
)

// Job describes one morph: the two shapes and how to render the frames
// between them.
type Job struct {
	Start Shape `toml:"start" yaml:"start"`
	End   Shape `toml:"end" yaml:"end"`

	// Width and Height of the rendered frames. Zero uses the larger of the
	// two shapes' extents.
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`

	Smoothness int     `toml:"smoothness" yaml:"smoothness"`
	Precompute bool    `toml:"precompute" yaml:"precompute"`
	Breakpoint float64 `toml:"breakpoint" yaml:"breakpoint"`

	// Frames is the number of frames to write, including both ends.
	Frames int    `toml:"frames" yaml:"frames"`
	Output string `toml:"output" yaml:"output"`
}

// Shape is a shape given as SVG path data.
type Shape struct {
	Path string `toml:"path" yaml:"path"`
	// ViewBox is min-x, min-y, width, height, as in SVG. If empty, the
	// bounds of the path are used.
	ViewBox []float64 `toml:"viewbox" yaml:"viewbox"`
}

// loadJob reads a job file. The format is chosen by the file extension.
func loadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	job, err := decodeJob(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return job, nil
}

func decodeJob(ext string, data []byte) (*Job, error) {
	var job Job
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&job); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&job); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported job file format %q", ext)
	}
	return &job, nil
}

func (job *Job) setDefaults() {
	if job.Frames == 0 {
		job.Frames = defaultFrames
	}
	if job.Output == "" {
		job.Output = defaultOutput
	}
}

func (job *Job) validate() error {
	var errs []error
	if job.Start.Path == "" {
		errs = append(errs, errors.New("start: missing path"))
	}
	if job.End.Path == "" {
		errs = append(errs, errors.New("end: missing path"))
	}
	if job.Frames < 1 {
		errs = append(errs, fmt.Errorf("frames must be positive, got %d", job.Frames))
	}
	if job.Width < 0 || job.Height < 0 {
		errs = append(errs, fmt.Errorf("size must not be negative, got %gx%g", job.Width, job.Height))
	}
	return errors.Join(errs...)
}

func (job *Job) options() *morph.Options {
	return &morph.Options{
		Width:      job.Width,
		Height:     job.Height,
		Smoothness: job.Smoothness,
		Precompute: job.Precompute,
	}
}

func (s Shape) source() (morph.Source, error) {
	cmds, err := svgpath.Parse(s.Path)
	if err != nil {
		return morph.Source{}, err
	}
	src := morph.Source{Commands: cmds}
	switch len(s.ViewBox) {
	case 0:
		src.Bounds = morph.Bounds(cmds)
	case 4:
		vb := s.ViewBox
		src.Bounds = morph.NewRect(vb[0], vb[1], vb[2], vb[3])
	default:
		return morph.Source{}, fmt.Errorf("viewbox needs 4 numbers, got %d", len(s.ViewBox))
	}
	return src, nil
}
