package tag

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const asyncBuffer = 64

// Producer generates tags by calling emit for each one in order. Emit fails
// only when the consuming side has been cancelled.
type Producer func(ctx context.Context, emit func(Tag) error) error

// AsyncSource is a Source fed by a Producer running on its own goroutine.
// Pulls are ready while tags are buffered and pending otherwise.
type AsyncSource struct {
	ch chan Result
	g  *errgroup.Group
}

// Async starts produce and returns a source over what it emits. A producer
// error is delivered in stream order, after every tag emitted before it.
func Async(ctx context.Context, produce Producer) *AsyncSource {
	g, gctx := errgroup.WithContext(ctx)
	s := &AsyncSource{ch: make(chan Result, asyncBuffer), g: g}
	g.Go(func() error {
		defer close(s.ch)
		err := produce(gctx, func(t Tag) error {
			select {
			case s.ch <- Result{Tag: t}:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
		if err == nil {
			return nil
		}
		select {
		case s.ch <- Result{Err: err}:
		case <-gctx.Done():
		}
		return err
	})
	return s
}

func (s *AsyncSource) Pull() Step {
	select {
	case r, ok := <-s.ch:
		if !ok {
			return Step{Result: Result{Done: true}}
		}
		return Step{Result: r}
	default:
		return Step{Pending: s.ch}
	}
}

// Wait blocks until the producer returns and reports its error.
func (s *AsyncSource) Wait() error {
	return s.g.Wait()
}

// Forward returns a Producer emitting the tags of src, so that a synchronous
// source can be run on a producer goroutine.
func Forward(src Source) Producer {
	return func(ctx context.Context, emit func(Tag) error) error {
		for {
			r := Await(ctx, src.Pull())
			if r.Err != nil {
				return r.Err
			}
			if r.Done {
				return nil
			}
			if err := emit(r.Tag); err != nil {
				return err
			}
		}
	}
}
