// Package handler provides HTTP request handlers for the LearnLedger API.
//
// Each handler struct wraps the service it serves. RegisterRoutes mounts all
// of them on a ServeMux.
//
// # Response Format
//
//   - WriteData: single resource in a {"data": ...} envelope with optional links
//   - WriteCollection: list in a {"data": [...], "count": n} envelope
//   - WriteError: RFC 9457 Problem Details error response
//
// Service errors are converted with MapServiceError, which is the only place
// that knows HTTP status codes for ledger, catalog, reading and wallet errors.
//
// # Example Usage
//
//	mux := http.NewServeMux()
//	handler.RegisterRoutes(mux, handler.Services{
//	    Ledger:  ledgerService,
//	    Catalog: catalogService,
//	    ...
//	})
package handler
