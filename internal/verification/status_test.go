package verification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/models"
)

func statusFixture(ocrs ...*models.OCRResult) *fakeRepo {
	r := &fakeRepo{
		app:  &models.Application{ID: "app-1", Snapshot: snapshot()},
		docs: map[string]*models.Document{},
	}
	for i, o := range ocrs {
		doc := models.Document{
			ID:            string(rune('a' + i)),
			ApplicationID: "app-1",
			Type:          models.DocTranscript,
			OCR:           o,
		}
		r.app.Documents = append(r.app.Documents, doc)
		r.docs[doc.ID] = &doc
	}
	return r
}

func completedWith(match models.OverallMatch, confidence float64) *models.OCRResult {
	return &models.OCRResult{Status: models.OCRCompleted, OverallMatch: match, Confidence: confidence}
}

func statusService(r *fakeRepo) *Service {
	return newTestService(r, &fakeBlobs{}, &fakeOCR{available: true})
}

func TestStatusNotStarted(t *testing.T) {
	r := statusFixture(nil, nil)
	summary, err := statusService(r).GetVerificationStatus(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Equal(t, StatusNotStarted, summary.OverallStatus)
	require.Len(t, summary.Documents, 2)
	assert.Equal(t, models.OCRPending, summary.Documents[0].Status)
}

func TestStatusAllVerified(t *testing.T) {
	r := statusFixture(
		completedWith(models.MatchVerified, 1.0),
		&models.OCRResult{Status: models.OCRSkipped},
	)
	summary, err := statusService(r).GetVerificationStatus(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Equal(t, StatusAllVerified, summary.OverallStatus)
}

func TestStatusHasMismatches(t *testing.T) {
	r := statusFixture(
		completedWith(models.MatchVerified, 1.0),
		completedWith(models.MatchMismatch, 0.5),
		nil,
	)
	summary, err := statusService(r).GetVerificationStatus(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Equal(t, StatusHasMismatches, summary.OverallStatus)
}

func TestStatusIncompleteMixed(t *testing.T) {
	r := statusFixture(
		completedWith(models.MatchVerified, 1.0),
		nil, // still pending
	)
	summary, err := statusService(r).GetVerificationStatus(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Equal(t, StatusIncomplete, summary.OverallStatus)

	// a failed document also keeps the application incomplete
	r = statusFixture(
		completedWith(models.MatchVerified, 1.0),
		&models.OCRResult{Status: models.OCRFailed, Error: "storage down"},
	)
	summary, err = statusService(r).GetVerificationStatus(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Equal(t, StatusIncomplete, summary.OverallStatus)
}

func TestStatusPartialAndUnreadableAreNotMismatches(t *testing.T) {
	r := statusFixture(
		completedWith(models.MatchPartial, 0.75),
		completedWith(models.MatchUnreadable, 0),
	)
	summary, err := statusService(r).GetVerificationStatus(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Equal(t, StatusAllVerified, summary.OverallStatus)
}

func TestGetRawText(t *testing.T) {
	r := statusFixture(&models.OCRResult{
		Status:  models.OCRCompleted,
		RawText: "Student No. 2021-12345",
	})
	svc := statusService(r)

	text, err := svc.GetRawText(context.Background(), "app-1", "a")
	require.NoError(t, err)
	assert.Equal(t, "Student No. 2021-12345", text)

	// document never verified yet
	r = statusFixture(nil)
	text, err = statusService(r).GetRawText(context.Background(), "app-1", "a")
	require.NoError(t, err)
	assert.Empty(t, text)
}
