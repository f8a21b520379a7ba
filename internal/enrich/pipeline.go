package enrich

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Pipeline applies a sequence of stages to each item. Within a stage all
// steps run concurrently and the pipeline waits for them before starting the
// next stage (a stage barrier). Step errors are logged and do not stop
// processing.
type Pipeline[T any] struct {
	stages []Stage[T]
	log    *zap.SugaredLogger
}

// NewPipeline constructs a Pipeline from the provided stages.
func NewPipeline[T any](log *zap.SugaredLogger, stages ...Stage[T]) *Pipeline[T] {
	return &Pipeline[T]{stages: stages, log: log}
}

// Run applies all stages to every item in the slice. Items are processed
// concurrently with each other; stages stay sequential per item.
func (p *Pipeline[T]) Run(ctx context.Context, items []*T) {
	var wg sync.WaitGroup
	for _, item := range items {
		wg.Add(1)
		go func(item *T) {
			defer wg.Done()
			p.apply(ctx, item)
		}(item)
	}
	wg.Wait()
}

func (p *Pipeline[T]) apply(ctx context.Context, item *T) {
	for _, stage := range p.stages {
		var wg sync.WaitGroup
		for _, step := range stage.steps {
			wg.Add(1)
			go func(step Step[T]) {
				defer wg.Done()
				if err := step(ctx, item); err != nil {
					p.log.Warnw("enrichment step failed", "error", err)
				}
			}(step)
		}
		wg.Wait()
	}
}
