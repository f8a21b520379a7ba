// Package enrich runs independent enrichment steps over result items. Steps
// within a stage execute in parallel per item; stages execute sequentially,
// so a later stage can depend on fields an earlier stage filled in.
package enrich

import "context"

// Step mutates the given item in place. Steps in the same stage run
// concurrently against the same item and must not write the same field. A
// failed step returns an error; the pipeline logs it and keeps going.
type Step[T any] func(ctx context.Context, item *T) error

// Stage groups steps that are safe to run in parallel for a single item.
type Stage[T any] struct {
	steps []Step[T]
}

// NewStage constructs a Stage from the provided steps.
func NewStage[T any](steps ...Step[T]) Stage[T] {
	return Stage[T]{steps: steps}
}
