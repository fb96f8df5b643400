// Package service implements the business logic layer for the LearnLedger API.
//
// Services sit between HTTP handlers and the ledger/repositories. They own
// concurrency: handlers run on many goroutines, while the ledger and the
// reading tracker each have a single timeline guarded by a mutex.
//
// # Services
//
//   - LedgerService: staking, voting, reward distribution and access checks
//   - CatalogService: paper listing with search and sort
//   - ReadingService: the open paper viewer and its reading clock
//   - WalletService: wallet provider connection
//   - PreferenceService: theme flag
//
// # Service Pattern
//
// Services follow a consistent pattern:
//
//	type LedgerService struct {
//	    mu     sync.Mutex
//	    ledger *ledger.Ledger
//	    logger *slog.Logger
//	}
//
//	func NewLedgerService(cfg LedgerServiceConfig) *LedgerService
//
// # Error Handling
//
// Services return sentinel errors from errors.go or internal/ledger, wrapped
// with context. Request validation failures are returned as
// *model.ProblemDetails. Handlers map errors with handler.MapServiceError.
package service
