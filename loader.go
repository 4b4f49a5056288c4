package morph

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
)

// ErrSuperseded is reported by [Loader.Load] when a newer load was started
// before the animator was ready.
var ErrSuperseded = errors.New("morph: superseded by a newer load")

// Loader builds animators in the background and hands them to a render loop.
//
// The render loop calls [Loader.Animator] on every frame; it sees either the
// previous animator or the newly built one, never a partially built one.
// The zero value is ready to use.
type Loader struct {
	current atomic.Pointer[Animator]
	gen     atomic.Uint64
	// mu serializes publishing, so that checking for a newer load and
	// storing the animator happen together.
	mu sync.Mutex
}

// Load builds an animator for start and end in a new goroutine and
// publishes it once it is ready, unless ctx is done or another Load was
// started in the meantime. The returned channel receives the outcome and is
// then closed.
func (l *Loader) Load(ctx context.Context, start, end Source, opts *Options) <-chan error {
	gen := l.gen.Add(1)
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- l.build(ctx, gen, start, end, opts)
	}()
	return done
}

func (l *Loader) build(ctx context.Context, gen uint64, start, end Source, opts *Options) error {
	a, err := NewAnimator(start, end, opts)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen.Load() != gen {
		logAttrs(componentLoader, slog.LevelDebug, "discarding superseded animator", slog.Uint64("generation", gen))
		return ErrSuperseded
	}
	l.current.Store(a)
	return nil
}

// Animator returns the most recently published animator, or nil if none has
// been published yet.
func (l *Loader) Animator() *Animator {
	return l.current.Load()
}
