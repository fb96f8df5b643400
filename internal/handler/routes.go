package handler

import (
	"net/http"

	"github.com/forgo/learnledger/api/internal/service"
)

// Services are the dependencies of the API routes
type Services struct {
	Ledger      *service.LedgerService
	Catalog     *service.CatalogService
	Reading     *service.ReadingService
	Wallet      *service.WalletService
	Preferences *service.PreferenceService
}

// RegisterRoutes mounts every API endpoint on mux
func RegisterRoutes(mux *http.ServeMux, svc Services) {
	ledgerHandler := NewLedgerHandler(svc.Ledger)
	paperHandler := NewPaperHandler(svc.Catalog, svc.Reading)
	readingHandler := NewReadingHandler(svc.Reading, svc.Catalog)
	walletHandler := NewWalletHandler(svc.Wallet)
	preferenceHandler := NewPreferenceHandler(svc.Preferences)

	mux.HandleFunc("GET /health", Health)

	// Account and ledger
	mux.HandleFunc("GET /v1/account", ledgerHandler.Account)
	mux.HandleFunc("POST /v1/ledger/stake", ledgerHandler.Stake)
	mux.HandleFunc("POST /v1/ledger/votes", ledgerHandler.Vote)
	mux.HandleFunc("POST /v1/ledger/rewards/distribute", ledgerHandler.DistributeRewards)
	mux.HandleFunc("GET /v1/access/{paperId}", ledgerHandler.CheckAccess)
	mux.HandleFunc("GET /v1/sectors", ledgerHandler.Sectors)
	mux.HandleFunc("GET /v1/round", ledgerHandler.Round)

	// Catalog and viewer
	mux.HandleFunc("GET /v1/papers", paperHandler.List)
	mux.HandleFunc("GET /v1/papers/{paperId}", paperHandler.Get)
	mux.HandleFunc("POST /v1/papers/{paperId}/session", paperHandler.OpenSession)
	mux.HandleFunc("DELETE /v1/papers/{paperId}/session", paperHandler.CloseSession)

	// Reading
	mux.HandleFunc("GET /v1/reading/session", readingHandler.Session)
	mux.HandleFunc("GET /v1/reading/times", readingHandler.Times)

	// Wallet
	mux.HandleFunc("POST /v1/wallet/connect", walletHandler.Connect)
	mux.HandleFunc("GET /v1/wallet", walletHandler.Get)
	mux.HandleFunc("DELETE /v1/wallet", walletHandler.Disconnect)

	// Preferences
	mux.HandleFunc("GET /v1/preferences/theme", preferenceHandler.GetTheme)
	mux.HandleFunc("PUT /v1/preferences/theme", preferenceHandler.SetTheme)
}
