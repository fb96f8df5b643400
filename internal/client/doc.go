// Package client is a typed Go client for the LearnLedger HTTP API.
//
// Each method unwraps the {"data": ...} envelope. Error responses are
// returned as *model.ProblemDetails so callers can inspect the status and
// the limit extensions:
//
//	c := client.New(client.Config{BaseURL: "http://localhost:8080"})
//	_, err := c.Vote(ctx, "quantum", 60)
//	var problem *model.ProblemDetails
//	if errors.As(err, &problem) && problem.Remaining != nil {
//	    fmt.Printf("only %.0f votes left this round\n", *problem.Remaining)
//	}
//
// POST and PUT requests carry a fresh Idempotency-Key.
package client
