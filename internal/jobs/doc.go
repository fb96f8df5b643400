// Package jobs implements background work for the LearnLedger API.
//
// # Ticker
//
// Ticker runs a function on a fixed interval on its own goroutine. The reading
// tracker starts one per open reading session:
//
//	t := jobs.NewTicker(time.Second, func(ctx context.Context) {
//	    tracker.tick(ctx)
//	})
//	t.Start()
//	defer t.Stop() // joins the goroutine
//
// Stop is synchronous: once it returns no further call is in flight, so the
// last value written by the function is final.
package jobs
