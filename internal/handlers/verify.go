package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/middleware"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/repo"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/verification"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// decodeLenient reads a JSON body, treating an empty body as an empty
// request rather than an error.
func decodeLenient(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// writeServiceError maps orchestrator errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repo.ErrApplicationNotFound), errors.Is(err, repo.ErrDocumentNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"error": err.Error()})
	case errors.Is(err, verification.ErrMissingArgument):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
}

// VerificationHandler exposes the document-verification orchestrator over
// HTTP.
type VerificationHandler struct {
	svc *verification.Service
}

func NewVerificationHandler(svc *verification.Service) *VerificationHandler {
	return &VerificationHandler{svc: svc}
}

// VerifyDocument: POST /api/v1/applications/{id}/documents/{docID}/verify
func (h *VerificationHandler) VerifyDocument(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "id")
	docID := chi.URLParam(r, "docID")
	res, err := h.svc.VerifyDocument(r.Context(), appID, docID, middleware.ActorID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// VerifyAllDocuments: POST /api/v1/applications/{id}/verify
func (h *VerificationHandler) VerifyAllDocuments(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "id")
	res, err := h.svc.VerifyAllDocuments(r.Context(), appID, middleware.ActorID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// VerificationStatus: GET /api/v1/applications/{id}/verification-status
func (h *VerificationHandler) VerificationStatus(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "id")
	summary, err := h.svc.GetVerificationStatus(r.Context(), appID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// RawText: GET /api/v1/applications/{id}/documents/{docID}/raw-text
func (h *VerificationHandler) RawText(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "id")
	docID := chi.URLParam(r, "docID")
	text, err := h.svc.GetRawText(r.Context(), appID, docID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"application_id": appID,
		"document_id":    docID,
		"raw_text":       text,
	})
}
