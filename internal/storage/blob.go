// Package storage resolves stored document references to raw bytes.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// BlobFetcher resolves a document's storage reference (a signed URL or an
// object path under the storage base) to its raw bytes.
type BlobFetcher interface {
	FetchBytes(ctx context.Context, ref string) ([]byte, error)
}

// maxBlobSize bounds a single fetched document at 20MB.
const maxBlobSize = 20 << 20

// SignedURLFetcher fetches document bytes over HTTP. Absolute references
// are treated as signed URLs and used as-is; relative references are
// joined onto the configured storage base URL.
type SignedURLFetcher struct {
	baseURL string
	client  *http.Client
}

func NewSignedURLFetcher(baseURL string) *SignedURLFetcher {
	return &SignedURLFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (f *SignedURLFetcher) resolve(ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return f.baseURL + "/" + strings.TrimLeft(ref, "/")
}

func (f *SignedURLFetcher) FetchBytes(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.resolve(ref), nil)
	if err != nil {
		return nil, fmt.Errorf("build storage request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch document bytes: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch document bytes: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBlobSize))
	if err != nil {
		return nil, fmt.Errorf("read document bytes: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("fetch document bytes: empty response")
	}
	return data, nil
}
