package tag

import "context"

// Result is a settled pull: a tag, the end of the stream, or an error.
type Result struct {
	Tag  Tag
	Done bool
	Err  error
}

// Step answers a pull. When Pending is nil the embedded Result is ready.
// Otherwise Pending settles with exactly one Result; a closed Pending means
// the stream is done.
type Step struct {
	Result
	Pending <-chan Result
}

// Ready reports whether s can be used without waiting.
func (s Step) Ready() bool {
	return s.Pending == nil
}

// Source is a lazy, single pass sequence of tags.
type Source interface {
	Pull() Step
}

// Await settles s, blocking on its future if it is pending. This is the
// only point at which a consumer of a Source suspends.
func Await(ctx context.Context, s Step) Result {
	if s.Pending == nil {
		return s.Result
	}
	select {
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	case r, ok := <-s.Pending:
		if !ok {
			return Result{Done: true}
		}
		return r
	}
}

// SliceSource is a synchronous Source over a fixed sequence of tags.
type SliceSource struct {
	tags []Tag
	i    int
}

// FromSlice returns a synchronous source yielding tags in order.
func FromSlice(tags ...Tag) *SliceSource {
	return &SliceSource{tags: tags}
}

// Empty returns a source with no tags.
func Empty() *SliceSource {
	return &SliceSource{}
}

func (s *SliceSource) Pull() Step {
	if s.i >= len(s.tags) {
		return Step{Result: Result{Done: true}}
	}
	t := s.tags[s.i]
	s.i++
	return Step{Result: Result{Tag: t}}
}

// Collect drains src. On error the tags read so far are returned with it.
func Collect(ctx context.Context, src Source) ([]Tag, error) {
	var res []Tag
	for {
		r := Await(ctx, src.Pull())
		if r.Err != nil {
			return res, r.Err
		}
		if r.Done {
			return res, nil
		}
		res = append(res, r.Tag)
	}
}
