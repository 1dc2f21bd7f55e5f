package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunPartial runs every task concurrently, at most limit at a time, and waits
// for all of them. A failing task never cancels the others. The returned slice
// holds each task's error at the task's index. A limit below 1 means unbounded.
//
// Example:
//
//	errs := RunPartial(ctx, 2,
//	    func(ctx context.Context) error { quote, err = quotes.Hitokoto(ctx); return err },
//	    func(ctx context.Context) error { report, err = weather.AlternateWeather(ctx); return err },
//	)
func RunPartial(ctx context.Context, limit int, tasks ...func(context.Context) error) []error {
	errs := make([]error, len(tasks))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, task := range tasks {
		g.Go(func() error {
			errs[i] = task(ctx)

			// Errors are collected per task; returning nil keeps the group running.
			return nil
		})
	}

	_ = g.Wait()

	return errs
}
