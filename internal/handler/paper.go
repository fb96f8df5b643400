package handler

import (
	"net/http"

	"github.com/forgo/learnledger/api/internal/model"
	"github.com/forgo/learnledger/api/internal/service"
)

// PaperHandler handles catalog and paper viewer HTTP requests
type PaperHandler struct {
	catalog *service.CatalogService
	reading *service.ReadingService
}

// NewPaperHandler creates a new paper handler
func NewPaperHandler(catalog *service.CatalogService, reading *service.ReadingService) *PaperHandler {
	return &PaperHandler{catalog: catalog, reading: reading}
}

// List handles GET /v1/papers?q=&sort=
func (h *PaperHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := &model.ListPapersQuery{
		Query: query.Get("q"),
		Sort:  query.Get("sort"),
	}

	papers, err := h.catalog.List(r.Context(), q)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, papers, len(papers), nil)
}

// Get handles GET /v1/papers/{paperId}
func (h *PaperHandler) Get(w http.ResponseWriter, r *http.Request) {
	paperID := r.PathValue("paperId")

	paper, err := h.catalog.Get(r.Context(), paperID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, paper, map[string]string{
		"self":    "/v1/papers/" + paperID,
		"session": "/v1/papers/" + paperID + "/session",
		"access":  "/v1/access/" + paperID,
	})
}

// OpenSession handles POST /v1/papers/{paperId}/session
func (h *PaperHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.reading.Open(r.Context(), r.PathValue("paperId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, session, map[string]string{
		"current": "/v1/reading/session",
	})
}

// CloseSession handles DELETE /v1/papers/{paperId}/session
func (h *PaperHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.reading.Close(r.Context(), r.PathValue("paperId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, session, nil)
}
