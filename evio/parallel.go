package evio

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/decibelcooper/higgsplot/fourlep"
)

// Process runs fn over every event of the scanner, fanning events out
// to the given number of worker goroutines. Events carry no ordering
// dependency, so results are collected as they are produced, in no
// particular order. A non-positive worker count uses one worker per
// CPU. Process drains the scanner but does not close it.
func Process(sc Scanner, workers int, fn func(Event) (fourlep.Result, bool)) ([]fourlep.Result, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	events := make(chan Event, 2*workers)
	results := make(chan fourlep.Result, 2*workers)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for evt := range events {
				if res, ok := fn(evt); ok {
					results <- res
				}
			}
			return nil
		})
	}

	go func() {
		for sc.Next() {
			events <- sc.Event()
		}
		close(events)
		g.Wait()
		close(results)
	}()

	var out []fourlep.Result
	for res := range results {
		out = append(out, res)
	}
	return out, sc.Err()
}
