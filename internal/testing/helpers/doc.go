// Package helpers provides HTTP request builders and response assertions for
// handler tests.
//
//	req := helpers.NewRequest(t, http.MethodPost, "/v1/ledger/votes").
//	    WithBody(map[string]any{"sector_id": "ai", "amount": 5}).
//	    WithIdempotencyKey("vote-1").
//	    Build()
//	rr := app.Do(req)
//	helpers.AssertStatus(t, rr, http.StatusOK)
//	result := helpers.DecodeData[model.VoteResult](t, rr)
package helpers
