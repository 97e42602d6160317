package ocr

import (
	"context"
	"fmt"
	"os"
	"strings"

	vision "cloud.google.com/go/vision/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// Paginated formats go through file annotation instead of image
// annotation. Google Vision processes the first five pages of a file
// request when no explicit page list is given, which is the cap we want.
var paginatedMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/tiff":      true,
}

// VisionProvider implements Provider on the Google Cloud Vision API.
type VisionProvider struct {
	credentialsFile string
	available       bool
}

// NewVisionProvider checks for credentials once at construction;
// availability is fixed for the life of the process.
func NewVisionProvider(credentialsFile string) *VisionProvider {
	available := credentialsFile != ""
	if !available {
		// fall back to ambient application-default credentials
		available = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != ""
	}
	return &VisionProvider{credentialsFile: credentialsFile, available: available}
}

func (p *VisionProvider) Available() bool { return p.available }

func (p *VisionProvider) newClient(ctx context.Context) (*vision.ImageAnnotatorClient, error) {
	if p.credentialsFile != "" {
		return vision.NewImageAnnotatorClient(ctx, option.WithCredentialsFile(p.credentialsFile))
	}
	return vision.NewImageAnnotatorClient(ctx)
}

// DetectText OCRs document bytes: paginated document text detection for
// PDFs and TIFFs, single-shot document text detection for images.
func (p *VisionProvider) DetectText(ctx context.Context, content []byte, mimeType string) (string, error) {
	client, err := p.newClient(ctx)
	if err != nil {
		return "", fmt.Errorf("init vision client: %w", err)
	}
	defer client.Close()

	if paginatedMimeTypes[strings.ToLower(mimeType)] {
		return p.detectFileText(ctx, client, content, mimeType)
	}

	img := &visionpb.Image{Content: content}
	annotation, err := client.DetectDocumentText(ctx, img, nil)
	if err != nil {
		return "", fmt.Errorf("vision document text detection: %w", err)
	}
	if annotation == nil {
		return "", nil
	}
	return annotation.GetText(), nil
}

func (p *VisionProvider) detectFileText(ctx context.Context, client *vision.ImageAnnotatorClient, content []byte, mimeType string) (string, error) {
	req := &visionpb.BatchAnnotateFilesRequest{
		Requests: []*visionpb.AnnotateFileRequest{{
			InputConfig: &visionpb.InputConfig{
				Content:  content,
				MimeType: mimeType,
			},
			Features: []*visionpb.Feature{
				{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION},
			},
		}},
	}
	resp, err := client.BatchAnnotateFiles(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision file annotation: %w", err)
	}

	var sb strings.Builder
	for _, fileResp := range resp.GetResponses() {
		if e := fileResp.GetError(); e != nil {
			return "", fmt.Errorf("vision file annotation: %s", e.GetMessage())
		}
		for _, pageResp := range fileResp.GetResponses() {
			if text := pageResp.GetFullTextAnnotation().GetText(); text != "" {
				if sb.Len() > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(text)
			}
		}
	}
	return sb.String(), nil
}
