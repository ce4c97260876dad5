// Package picker turns located doc roots into batched picker entries.
package picker

import (
	"iter"

	"github.com/fwojciec/rsdoc"
)

// Batches groups seq into slices of size elements. A full batch is yielded
// as soon as it fills; a final partial batch is yielded when seq ends.
// A non-positive size uses rsdoc.BatchSize.
func Batches[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	if size <= 0 {
		size = rsdoc.BatchSize
	}
	return func(yield func([]T) bool) {
		batch := make([]T, 0, size)
		for v := range seq {
			batch = append(batch, v)
			if len(batch) < size {
				continue
			}
			if !yield(batch) {
				return
			}
			batch = make([]T, 0, size)
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}
