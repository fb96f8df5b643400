// Package fixtures provides a fully wired in-memory LearnLedger API for tests.
//
// NewApp builds every service over a memory cache and mounts the routes with
// the request id, recovery and idempotency middleware:
//
//	app := fixtures.NewApp(t)
//	rr := app.Do(helpers.NewRequest(t, http.MethodPost, "/v1/ledger/stake").
//	    WithBody(map[string]any{"amount": 200}).Build())
//
// # Customization
//
// Option functions replace the defaults:
//
//	app := fixtures.NewApp(t,
//	    fixtures.WithAccount(model.Account{Balance: 10}),
//	    fixtures.WithWallet(ethrpc.Static{"0x..."}),
//	)
//
// # Reading Clock
//
// Reading sessions do not use wall-clock tickers. Advance them explicitly:
//
//	app.Timers.Tick(ctx, 3) // three seconds of reading
//
// Everything is released through t.Cleanup.
package fixtures
