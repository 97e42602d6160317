// Package ocr abstracts the text-detection backend behind a narrow
// interface so the verification core carries no vendor dependency.
// Backend absence is a first-class condition reported by Available, not
// an error path.
package ocr

import "context"

// Provider detects text in uploaded document bytes.
type Provider interface {
	// Available reports whether the backend is configured. It is checked
	// before any per-call work so an unconfigured backend costs nothing.
	Available() bool
	// DetectText runs OCR over the document content. The mimeType selects
	// between paginated detection (PDF/TIFF) and single-shot image
	// detection. An empty string with a nil error means the backend found
	// no text.
	DetectText(ctx context.Context, content []byte, mimeType string) (string, error)
}
