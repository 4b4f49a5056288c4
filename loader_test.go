package morph

import (
	"context"
	"errors"
	"testing"
)

func TestLoaderPublishes(t *testing.T) {
	var l Loader
	if l.Animator() != nil {
		t.Fatal("zero Loader should not have an animator")
	}
	if err := <-l.Load(context.Background(), twoSquares(), oneCircle(), nil); err != nil {
		t.Fatal(err)
	}
	a := l.Animator()
	if a == nil {
		t.Fatal("animator was not published")
	}
	if len(a.PathData().Paired()) != 1 {
		t.Errorf("unexpected path data")
	}
}

func TestLoaderOnlyNewestPublishes(t *testing.T) {
	var l Loader
	stale := l.gen.Add(1)
	l.gen.Add(1)
	if err := l.build(context.Background(), stale, twoSquares(), oneCircle(), nil); !errors.Is(err, ErrSuperseded) {
		t.Errorf("got error %v, want %v", err, ErrSuperseded)
	}
	if l.Animator() != nil {
		t.Error("a superseded build must not publish")
	}
}

func TestLoaderErrors(t *testing.T) {
	var l Loader
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := <-l.Load(ctx, twoSquares(), oneCircle(), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want %v", err, context.Canceled)
	}
	if err := <-l.Load(context.Background(), twoSquares(), oneCircle(), &Options{Smoothness: -5}); !errors.Is(err, ErrInvalidSmoothness) {
		t.Errorf("got error %v, want %v", err, ErrInvalidSmoothness)
	}
	if l.Animator() != nil {
		t.Error("failed loads must not publish")
	}

	// the channel is closed after the result
	ch := l.Load(context.Background(), twoSquares(), oneCircle(), nil)
	<-ch
	if _, ok := <-ch; ok {
		t.Error("channel should be closed")
	}
}
