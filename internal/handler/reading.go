package handler

import (
	"net/http"

	"github.com/forgo/learnledger/api/internal/service"
)

// ReadingHandler handles reading session and reading time HTTP requests
type ReadingHandler struct {
	reading *service.ReadingService
	catalog *service.CatalogService
}

// NewReadingHandler creates a new reading handler
func NewReadingHandler(reading *service.ReadingService, catalog *service.CatalogService) *ReadingHandler {
	return &ReadingHandler{reading: reading, catalog: catalog}
}

// Session handles GET /v1/reading/session
func (h *ReadingHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, err := h.reading.Current()
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, session, nil)
}

// Times handles GET /v1/reading/times
func (h *ReadingHandler) Times(w http.ResponseWriter, r *http.Request) {
	times, err := h.catalog.ReadingTimes(r.Context())
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "load reading times"))
		return
	}
	WriteCollection(w, http.StatusOK, times, len(times), nil)
}
