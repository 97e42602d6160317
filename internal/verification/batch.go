package verification

import (
	"context"
	"fmt"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/models"
)

// BatchCounts tallies document outcomes across one application.
type BatchCounts struct {
	Completed   int `json:"completed"`
	Skipped     int `json:"skipped"`
	Failed      int `json:"failed"`
	Unavailable int `json:"unavailable"`

	// within completed
	Verified   int `json:"verified"`
	Mismatch   int `json:"mismatch"`
	Partial    int `json:"partial"`
	Unreadable int `json:"unreadable"`
}

// BatchResult is the outcome of verifying every document of an
// application.
type BatchResult struct {
	ApplicationID string           `json:"application_id"`
	Results       []DocumentResult `json:"results"`
	Counts        BatchCounts      `json:"counts"`
}

// VerifyAllDocuments runs VerifyDocument over every document of the
// application, strictly one at a time to bound load on the OCR backend.
// A failure on one document is recorded and the batch continues.
func (s *Service) VerifyAllDocuments(ctx context.Context, applicationID, actorID string) (*BatchResult, error) {
	if applicationID == "" {
		return nil, fmt.Errorf("%w: application id is required", ErrMissingArgument)
	}
	app, err := s.repo.LoadApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	batch := &BatchResult{ApplicationID: applicationID}
	for _, doc := range app.Documents {
		res, err := s.VerifyDocument(ctx, applicationID, doc.ID, actorID)
		if err != nil {
			// a document deleted mid-batch; record and keep going
			res = &DocumentResult{
				DocumentID: doc.ID,
				Type:       doc.Type,
				Status:     models.OCRFailed,
				Error:      err.Error(),
			}
		}
		batch.Results = append(batch.Results, *res)
		batch.Counts.tally(res)
	}
	return batch, nil
}

func (c *BatchCounts) tally(res *DocumentResult) {
	switch res.Status {
	case models.OCRCompleted:
		c.Completed++
		switch res.OverallMatch {
		case models.MatchVerified:
			c.Verified++
		case models.MatchMismatch:
			c.Mismatch++
		case models.MatchPartial:
			c.Partial++
		case models.MatchUnreadable:
			c.Unreadable++
		}
	case models.OCRSkipped:
		c.Skipped++
	case models.OCRFailed:
		c.Failed++
	case models.OCRUnavailable:
		c.Unavailable++
	}
}
