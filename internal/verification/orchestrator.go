// Package verification coordinates the per-document pipeline: fetch bytes
// from storage, OCR them, extract fields, compare against the applicant
// snapshot, aggregate a verdict and persist the result. Expected failure
// modes are structured outcomes on the document record, never panics or
// returned errors.
package verification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/compare"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/extract"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/models"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/ocr"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/repo"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/storage"
)

var ErrMissingArgument = errors.New("missing required argument")

// Service is the verification orchestrator. All collaborators are
// injected; the service itself holds no mutable state, so one instance
// serves all requests.
type Service struct {
	repo   repo.ApplicationRepository
	blobs  storage.BlobFetcher
	ocr    ocr.Provider
	engine *compare.Engine
}

func NewService(r repo.ApplicationRepository, blobs storage.BlobFetcher, provider ocr.Provider, engine *compare.Engine) *Service {
	return &Service{repo: r, blobs: blobs, ocr: provider, engine: engine}
}

// DocumentResult is the structured outcome of verifying one document.
type DocumentResult struct {
	DocumentID   string                         `json:"document_id"`
	Type         models.DocumentType            `json:"type"`
	Status       models.OCRStatus               `json:"status"`
	OverallMatch models.OverallMatch            `json:"overall_match,omitempty"`
	Confidence   float64                        `json:"confidence"`
	Comparisons  []models.FieldComparisonResult `json:"comparison_results,omitempty"`
	Error        string                         `json:"error,omitempty"`
}

// VerifyDocument runs the pipeline for a single document. It returns an
// error only for invalid arguments or a missing application/document;
// every expected failure mode (storage error, OCR error, unreadable text,
// unconfigured backend) comes back as a structured result.
//
// State machine: pending -> processing -> {completed, failed, skipped,
// unavailable}. The processing state is persisted before the fetch so
// concurrent observers see progress. There is no mutual exclusion between
// two verify calls on the same document; the last writer wins.
func (s *Service) VerifyDocument(ctx context.Context, applicationID, documentID, actorID string) (*DocumentResult, error) {
	if applicationID == "" || documentID == "" {
		return nil, fmt.Errorf("%w: application id and document id are required", ErrMissingArgument)
	}

	app, err := s.repo.LoadApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	doc, err := s.repo.LoadDocument(ctx, applicationID, documentID)
	if err != nil {
		return nil, err
	}

	// Text-only submissions have no file content to OCR.
	if models.IsSkipType(doc.Type) {
		now := time.Now().UTC()
		doc.OCR = &models.OCRResult{
			Status:      models.OCRSkipped,
			StartedAt:   &now,
			CompletedAt: &now,
			VerifiedBy:  actorID,
		}
		if err := s.repo.SaveDocument(ctx, doc); err != nil {
			log.Printf("verification: persist skipped state for %s: %v", doc.ID, err)
		}
		return resultFrom(doc), nil
	}

	// Backend absence short-circuits before any network call.
	if !s.ocr.Available() {
		now := time.Now().UTC()
		doc.OCR = &models.OCRResult{
			Status:      models.OCRUnavailable,
			StartedAt:   &now,
			CompletedAt: &now,
			VerifiedBy:  actorID,
		}
		if err := s.repo.SaveDocument(ctx, doc); err != nil {
			log.Printf("verification: persist unavailable state for %s: %v", doc.ID, err)
		}
		return resultFrom(doc), nil
	}

	started := time.Now().UTC()
	doc.OCR = &models.OCRResult{
		Status:     models.OCRProcessing,
		StartedAt:  &started,
		VerifiedBy: actorID,
	}
	if err := s.repo.SaveDocument(ctx, doc); err != nil {
		return s.fail(ctx, doc, fmt.Errorf("persist processing state: %w", err)), nil
	}

	content, err := s.blobs.FetchBytes(ctx, doc.StoragePath)
	if err != nil {
		return s.fail(ctx, doc, err), nil
	}

	rawText, err := s.ocr.DetectText(ctx, content, doc.MimeType)
	if err != nil {
		return s.fail(ctx, doc, err), nil
	}

	fields := extract.ExtractFields(rawText, doc.Type)
	comparisons := s.engine.CompareFields(fields, app.Snapshot)
	completed := time.Now().UTC()

	doc.OCR = &models.OCRResult{
		Status:       models.OCRCompleted,
		RawText:      rawText,
		Fields:       fields,
		Comparisons:  comparisons,
		OverallMatch: compare.DetermineOverallMatch(comparisons),
		Confidence:   compare.CalculateConfidence(comparisons),
		StartedAt:    &started,
		CompletedAt:  &completed,
		VerifiedBy:   actorID,
	}
	if err := s.repo.SaveDocument(ctx, doc); err != nil {
		return s.fail(ctx, doc, fmt.Errorf("persist result: %w", err)), nil
	}
	return resultFrom(doc), nil
}

// fail records the error on the document and returns the structured
// failure outcome. Persistence here is best effort.
func (s *Service) fail(ctx context.Context, doc *models.Document, cause error) *DocumentResult {
	log.Printf("verification: document %s failed: %v", doc.ID, cause)
	now := time.Now().UTC()
	started := doc.OCR.StartedAt
	actor := doc.OCR.VerifiedBy
	doc.OCR = &models.OCRResult{
		Status:      models.OCRFailed,
		Error:       cause.Error(),
		StartedAt:   started,
		CompletedAt: &now,
		VerifiedBy:  actor,
	}
	if err := s.repo.SaveDocument(ctx, doc); err != nil {
		log.Printf("verification: persist failed state for %s: %v", doc.ID, err)
	}
	return resultFrom(doc)
}

func resultFrom(doc *models.Document) *DocumentResult {
	res := &DocumentResult{
		DocumentID: doc.ID,
		Type:       doc.Type,
	}
	if doc.OCR != nil {
		res.Status = doc.OCR.Status
		res.OverallMatch = doc.OCR.OverallMatch
		res.Confidence = doc.OCR.Confidence
		res.Comparisons = doc.OCR.Comparisons
		res.Error = doc.OCR.Error
	} else {
		res.Status = models.OCRPending
	}
	return res
}
