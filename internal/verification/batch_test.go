package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/models"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/repo"
)

// batchFixture builds an application with a text response, a transcript
// and an income certificate.
func batchFixture() *fakeRepo {
	docs := []*models.Document{
		{ID: "d-essay", ApplicationID: "app-1", Type: models.DocTextResponse},
		{ID: "d-tor", ApplicationID: "app-1", Type: models.DocTranscript, MimeType: "image/png", StoragePath: "uploads/tor.png"},
		{ID: "d-itr", ApplicationID: "app-1", Type: models.DocIncomeCertificate, MimeType: "application/pdf", StoragePath: "uploads/itr.pdf"},
	}
	r := &fakeRepo{
		app:  &models.Application{ID: "app-1", Snapshot: snapshot()},
		docs: map[string]*models.Document{},
	}
	for _, d := range docs {
		r.app.Documents = append(r.app.Documents, *d)
		r.docs[d.ID] = d
	}
	return r
}

func TestVerifyAllDocumentsCountsAndIsolation(t *testing.T) {
	r := batchFixture()
	// OCR succeeds with transcript-shaped text for every file-backed doc
	provider := &fakeOCR{
		available: true,
		text:      "General Weighted Average: 1.75\nStudent No. 2021-12345",
	}
	svc := newTestService(r, &fakeBlobs{data: []byte("img")}, provider)

	batch, err := svc.VerifyAllDocuments(context.Background(), "app-1", "admin")
	require.NoError(t, err)
	require.Len(t, batch.Results, 3)

	assert.Equal(t, 1, batch.Counts.Skipped)
	assert.Equal(t, 2, batch.Counts.Completed)
	assert.Equal(t, 0, batch.Counts.Failed)
	assert.Equal(t, 0, batch.Counts.Unavailable)
	assert.Equal(t, 2, batch.Counts.Verified)

	// strictly sequential: one OCR call per file-backed document
	assert.Equal(t, 2, provider.calls)
}

func TestVerifyAllDocumentsFailureDoesNotAbortBatch(t *testing.T) {
	r := batchFixture()
	// storage is down: both file-backed documents fail, the essay still skips
	svc := newTestService(r, &fakeBlobs{err: errors.New("storage down")}, &fakeOCR{available: true})

	batch, err := svc.VerifyAllDocuments(context.Background(), "app-1", "admin")
	require.NoError(t, err)
	require.Len(t, batch.Results, 3)
	assert.Equal(t, 1, batch.Counts.Skipped)
	assert.Equal(t, 2, batch.Counts.Failed)
}

func TestVerifyAllDocumentsUnavailableBackend(t *testing.T) {
	r := batchFixture()
	svc := newTestService(r, &fakeBlobs{}, &fakeOCR{available: false})

	batch, err := svc.VerifyAllDocuments(context.Background(), "app-1", "admin")
	require.NoError(t, err)
	assert.Equal(t, 2, batch.Counts.Unavailable)
	assert.Equal(t, 1, batch.Counts.Skipped)
}

func TestVerifyAllDocumentsUnknownApplication(t *testing.T) {
	r := batchFixture()
	svc := newTestService(r, &fakeBlobs{}, &fakeOCR{available: true})

	_, err := svc.VerifyAllDocuments(context.Background(), "nope", "admin")
	assert.ErrorIs(t, err, repo.ErrApplicationNotFound)
}
