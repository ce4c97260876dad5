package picker

import (
	"iter"

	"github.com/fwojciec/rsdoc"
)

// Stream hands batches to a consumer one pull at a time.
//
// Production is cooperative: the underlying sequence only advances while
// the consumer is blocked in Next. Start must be called before Next.
// Close releases the producer; it is safe to call more than once.
type Stream[T any] struct {
	seq  iter.Seq[[]T]
	next func() ([]T, bool)
	stop func()
	done bool
}

// NewStream creates a Stream over seq. Nothing is produced until Start.
func NewStream[T any](seq iter.Seq[[]T]) *Stream[T] {
	return &Stream[T]{seq: seq}
}

// Start begins production. Calling Start again, or after Close, has no
// effect.
func (s *Stream[T]) Start() {
	if s.next != nil || s.done {
		return
	}
	s.next, s.stop = iter.Pull(s.seq)
}

// Next returns the next batch. done is true once the sequence is exhausted
// or the stream was closed. Next returns EINVALID if Start was not called
// on an open stream.
func (s *Stream[T]) Next() (batch []T, done bool, err error) {
	if s.done {
		return nil, true, nil
	}
	if s.next == nil {
		return nil, false, rsdoc.Errorf(rsdoc.EINVALID, "stream not started")
	}
	batch, ok := s.next()
	if !ok {
		s.Close()
		return nil, true, nil
	}
	return batch, false, nil
}

// Close stops production. An unfinished producer runs its cleanup before
// Close returns.
func (s *Stream[T]) Close() {
	s.done = true
	if s.stop != nil {
		s.stop()
	}
}
