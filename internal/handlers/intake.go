package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/models"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/repo"
)

// IntakeHandler registers applications and their uploaded documents. The
// blob itself is written by the upload frontend directly against storage;
// this side records the metadata and the storage reference.
type IntakeHandler struct {
	repo *repo.GormRepository
}

func NewIntakeHandler(r *repo.GormRepository) *IntakeHandler {
	return &IntakeHandler{repo: r}
}

type createApplicationReq struct {
	ApplicantID string                   `json:"applicant_id"`
	Scholarship string                   `json:"scholarship"`
	Snapshot    models.ApplicantSnapshot `json:"snapshot"`
}

// CreateApplication: POST /api/v1/applications
// The snapshot is the point-in-time profile copy used as comparison
// ground truth; it is frozen here and never refreshed.
func (h *IntakeHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var body createApplicationReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body"})
		return
	}
	if strings.TrimSpace(body.ApplicantID) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "applicant_id is required"})
		return
	}

	app := &models.Application{
		ID:          uuid.NewString(),
		ApplicantID: body.ApplicantID,
		Scholarship: body.Scholarship,
		Status:      "submitted",
		Snapshot:    body.Snapshot,
	}
	if err := h.repo.CreateApplication(r.Context(), app); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

type registerDocumentReq struct {
	Type             models.DocumentType `json:"type"`
	DisplayName      string              `json:"display_name"`
	OriginalFilename string              `json:"original_filename"`
	MimeType         string              `json:"mime_type"`
	StoragePath      string              `json:"storage_path"`
}

// RegisterDocument: POST /api/v1/applications/{id}/documents
func (h *IntakeHandler) RegisterDocument(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "id")
	if _, err := h.repo.LoadApplication(r.Context(), appID); err != nil {
		writeServiceError(w, err)
		return
	}

	var body registerDocumentReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body"})
		return
	}
	if body.Type == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "type is required"})
		return
	}
	if !models.IsSkipType(body.Type) && strings.TrimSpace(body.StoragePath) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "storage_path is required for file-backed documents"})
		return
	}

	doc := &models.Document{
		ID:               uuid.NewString(),
		ApplicationID:    appID,
		Type:             body.Type,
		DisplayName:      body.DisplayName,
		OriginalFilename: body.OriginalFilename,
		MimeType:         body.MimeType,
		StoragePath:      body.StoragePath,
	}
	if err := h.repo.CreateDocument(r.Context(), doc); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// GetApplication: GET /api/v1/applications/{id}
func (h *IntakeHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "id")
	app, err := h.repo.LoadApplication(r.Context(), appID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}
