package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/morph"
)

const tomlJob = `
width = 48.0
height = 24.0
frames = 5
output = "out"

[start]
path = "M0,0 h10 v10 h-10 z"
viewbox = [0.0, 0.0, 20.0, 10.0]

[end]
path = "M5,0 a5,5 0 1 1 0,10 a5,5 0 1 1 0,-10 z"
`

const yamlJob = `
width: 48
height: 24
frames: 5
output: out
start:
  path: "M0,0 h10 v10 h-10 z"
  viewbox: [0, 0, 20, 10]
end:
  path: "M5,0 a5,5 0 1 1 0,10 a5,5 0 1 1 0,-10 z"
`

func TestLoadJob(t *testing.T) {
	want := &Job{
		Start:  Shape{Path: "M0,0 h10 v10 h-10 z", ViewBox: []float64{0, 0, 20, 10}},
		End:    Shape{Path: "M5,0 a5,5 0 1 1 0,10 a5,5 0 1 1 0,-10 z"},
		Width:  48,
		Height: 24,
		Frames: 5,
		Output: "out",
	}
	dir := t.TempDir()
	for name, data := range map[string]string{
		"job.toml": tomlJob,
		"job.yaml": yamlJob,
		"job.yml":  yamlJob,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
		got, err := loadJob(path)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestLoadJobErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
		return path
	}

	_, err := loadJob(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = loadJob(write("job.json", "{}"))
	assert.ErrorContains(t, err, "unsupported job file format")

	_, err = loadJob(write("unknown.toml", "colour = 1\n"))
	assert.Error(t, err)

	_, err = loadJob(write("unknown.yaml", "colour: 1\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	job := &Job{}
	job.setDefaults()
	assert.Equal(t, defaultFrames, job.Frames)
	assert.Equal(t, defaultOutput, job.Output)
	err := job.validate()
	assert.ErrorContains(t, err, "start: missing path")
	assert.ErrorContains(t, err, "end: missing path")

	job = &Job{
		Start:  Shape{Path: "M0,0 L1,1"},
		End:    Shape{Path: "M0,0 L1,1"},
		Frames: -1,
		Width:  -1,
	}
	err = job.validate()
	assert.ErrorContains(t, err, "frames must be positive")
	assert.ErrorContains(t, err, "size must not be negative")
}

func TestShapeSource(t *testing.T) {
	src, err := Shape{Path: "M1,2 L11,7"}.source()
	require.NoError(t, err)
	assert.Equal(t, morph.NewRect(1, 2, 10, 5), src.Bounds)
	assert.Len(t, src.Commands, 2)

	src, err = Shape{Path: "M1,2 L11,7", ViewBox: []float64{0, 0, 24, 24}}.source()
	require.NoError(t, err)
	assert.Equal(t, morph.NewRect(0, 0, 24, 24), src.Bounds)

	_, err = Shape{Path: "M1,2 L11,7", ViewBox: []float64{0, 0, 24}}.source()
	assert.ErrorContains(t, err, "viewbox needs 4 numbers")

	_, err = Shape{Path: "L1,2"}.source()
	assert.Error(t, err)
}

func TestOverrides(t *testing.T) {
	var o overrides
	fs := flag.NewFlagSet("morph", flag.ContinueOnError)
	fs.Float64Var(&o.width, "width", 0, "")
	fs.Float64Var(&o.height, "height", 0, "")
	fs.IntVar(&o.smoothness, "smoothness", 0, "")
	fs.IntVar(&o.frames, "frames", defaultFrames, "")
	fs.StringVar(&o.output, "o", defaultOutput, "")
	fs.BoolVar(&o.precompute, "precompute", false, "")
	require.NoError(t, fs.Parse([]string{"-width", "100", "-o", "elsewhere", "-precompute"}))

	job := &Job{Width: 48, Height: 24, Frames: 5, Output: "out"}
	o.apply(fs, job)
	// only flags given on the command line replace job values
	assert.Equal(t, &Job{Width: 100, Height: 24, Frames: 5, Output: "elsewhere", Precompute: true}, job)
}
