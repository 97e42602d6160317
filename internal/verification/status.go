package verification

import (
	"context"
	"fmt"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/models"
)

// Aggregate verification status over an application's documents.
const (
	StatusNotStarted    = "not_started"
	StatusAllVerified   = "all_verified"
	StatusHasMismatches = "has_mismatches"
	StatusIncomplete    = "incomplete"
)

// DocumentStatus is a read-only projection of one document's verification
// state.
type DocumentStatus struct {
	DocumentID   string                         `json:"document_id"`
	Type         models.DocumentType            `json:"type"`
	DisplayName  string                         `json:"display_name"`
	Status       models.OCRStatus               `json:"status"`
	OverallMatch models.OverallMatch            `json:"overall_match,omitempty"`
	Confidence   float64                        `json:"confidence"`
	Comparisons  []models.FieldComparisonResult `json:"comparison_results,omitempty"`
	Error        string                         `json:"error,omitempty"`
}

// VerificationSummary is computed on demand and never persisted.
type VerificationSummary struct {
	ApplicationID string           `json:"application_id"`
	OverallStatus string           `json:"overall_status"`
	Documents     []DocumentStatus `json:"documents"`
}

// GetVerificationStatus projects the stored verification state of every
// document plus an aggregate status for the whole application.
func (s *Service) GetVerificationStatus(ctx context.Context, applicationID string) (*VerificationSummary, error) {
	if applicationID == "" {
		return nil, fmt.Errorf("%w: application id is required", ErrMissingArgument)
	}
	app, err := s.repo.LoadApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	summary := &VerificationSummary{ApplicationID: applicationID}
	pending, failed, mismatches, settled := 0, 0, 0, 0
	for _, doc := range app.Documents {
		ds := DocumentStatus{
			DocumentID:  doc.ID,
			Type:        doc.Type,
			DisplayName: doc.DisplayName,
			Status:      models.OCRPending,
		}
		if doc.OCR != nil {
			ds.Status = doc.OCR.Status
			ds.OverallMatch = doc.OCR.OverallMatch
			ds.Confidence = doc.OCR.Confidence
			ds.Comparisons = doc.OCR.Comparisons
			ds.Error = doc.OCR.Error
		}
		switch ds.Status {
		case models.OCRPending:
			pending++
		case models.OCRFailed:
			failed++
		case models.OCRCompleted, models.OCRSkipped:
			settled++
		}
		if ds.OverallMatch == models.MatchMismatch {
			mismatches++
		}
		summary.Documents = append(summary.Documents, ds)
	}

	total := len(app.Documents)
	switch {
	case total == 0 || pending == total:
		summary.OverallStatus = StatusNotStarted
	case mismatches > 0:
		summary.OverallStatus = StatusHasMismatches
	case pending == 0 && failed == 0 && settled == total:
		summary.OverallStatus = StatusAllVerified
	default:
		summary.OverallStatus = StatusIncomplete
	}
	return summary, nil
}

// GetRawText returns the persisted raw OCR text of a document for audit.
func (s *Service) GetRawText(ctx context.Context, applicationID, documentID string) (string, error) {
	if applicationID == "" || documentID == "" {
		return "", fmt.Errorf("%w: application id and document id are required", ErrMissingArgument)
	}
	doc, err := s.repo.LoadDocument(ctx, applicationID, documentID)
	if err != nil {
		return "", err
	}
	if doc.OCR == nil {
		return "", nil
	}
	return doc.OCR.RawText, nil
}
