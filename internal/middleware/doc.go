// Package middleware provides HTTP middleware for the LearnLedger API.
//
// # Available Middleware
//
//   - RequestID: propagates or assigns X-Request-ID
//   - Logger: one slog line per request
//   - Metrics: Prometheus request counters and latency
//   - Recovery: panics become RFC 9457 500 responses
//   - CORS: origin allow-list
//   - RateLimit: per client token bucket (golang.org/x/time/rate)
//   - Idempotency: replays POST/PUT responses for a repeated Idempotency-Key
//   - Compress: gzip responses
//
// # Usage
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger(logger),
//	    middleware.Recovery,
//	    middleware.RateLimit(limiter),
//	)
//
// # Context Values
//
//   - GetRequestID(ctx): Returns unique request identifier
//
// The API has a single mock account, so clients are identified by remote IP
// (ClientKey) for rate limiting and idempotency.
package middleware
