package models

import "time"

// DocumentType tags an uploaded artifact with the kind of supporting
// document the applicant claims it to be.
type DocumentType string

const (
	DocTranscript              DocumentType = "transcript"
	DocGradeReport             DocumentType = "grade_report"
	DocCertificateRegistration DocumentType = "certificate_of_registration"
	DocIncomeCertificate       DocumentType = "income_certificate"
	DocTaxReturn               DocumentType = "tax_return"
	DocBarangayCertificate     DocumentType = "barangay_certificate"
	DocProofOfEnrollment       DocumentType = "proof_of_enrollment"
	DocPhotoID                 DocumentType = "photo_id"
	DocStudentID               DocumentType = "student_id"
	DocEmployeeID              DocumentType = "employee_id"
	DocProofOfEmployment       DocumentType = "proof_of_employment"
	DocAuthorizationLetter     DocumentType = "authorization_letter"
	DocThesisOutline           DocumentType = "thesis_outline"
	DocRecommendationLetter    DocumentType = "recommendation_letter"
	DocOther                   DocumentType = "other"

	// Text-only submissions carry no file to OCR.
	DocTextResponse      DocumentType = "text_response"
	DocPersonalStatement DocumentType = "personal_statement"
)

// OCRStatus is the verification lifecycle state of a single document.
type OCRStatus string

const (
	OCRPending     OCRStatus = "pending"
	OCRProcessing  OCRStatus = "processing"
	OCRCompleted   OCRStatus = "completed"
	OCRFailed      OCRStatus = "failed"
	OCRSkipped     OCRStatus = "skipped"
	OCRUnavailable OCRStatus = "unavailable"
)

// Severity classifies a single field comparison.
type Severity string

const (
	SeverityVerified Severity = "verified"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// OverallMatch is the per-document aggregate verdict.
type OverallMatch string

const (
	MatchVerified   OverallMatch = "verified"
	MatchPartial    OverallMatch = "partial"
	MatchMismatch   OverallMatch = "mismatch"
	MatchUnreadable OverallMatch = "unreadable"
)

// ExtractedFields maps canonical field names to the values one extraction
// pass pulled out of the OCR text. Transient: only ever persisted as part
// of an OCRResult.
type ExtractedFields map[string]string

// FieldComparisonResult records how one extracted field compared against
// the applicant snapshot. Severity is derived from Metric by fixed
// thresholds, never set directly.
type FieldComparisonResult struct {
	Field     string   `json:"field"`
	Extracted string   `json:"extracted"`
	Expected  string   `json:"expected"`
	Match     bool     `json:"match"`
	Metric    float64  `json:"metric"`
	Severity  Severity `json:"severity"`
}

// OCRResult is embedded in a Document and mutated only by the
// verification orchestrator.
type OCRResult struct {
	Status       OCRStatus               `json:"status"`
	RawText      string                  `json:"raw_text,omitempty"`
	Fields       ExtractedFields         `json:"extracted_fields,omitempty"`
	Comparisons  []FieldComparisonResult `json:"comparison_results,omitempty"`
	OverallMatch OverallMatch            `json:"overall_match,omitempty"`
	Confidence   float64                 `json:"confidence"`
	Error        string                  `json:"error,omitempty"`
	StartedAt    *time.Time              `json:"started_at,omitempty"`
	CompletedAt  *time.Time              `json:"completed_at,omitempty"`
	VerifiedBy   string                  `json:"verified_by,omitempty"`
}

// Document is one uploaded artifact belonging to an Application.
// StoragePath is a signed-URL-capable reference into blob storage.
type Document struct {
	ID               string       `gorm:"primaryKey;column:id" json:"id"`
	ApplicationID    string       `gorm:"column:application_id;index" json:"application_id"`
	Type             DocumentType `gorm:"column:doc_type" json:"type"`
	DisplayName      string       `gorm:"column:display_name" json:"display_name"`
	OriginalFilename string       `gorm:"column:original_filename" json:"original_filename"`
	MimeType         string       `gorm:"column:mime_type" json:"mime_type"`
	StoragePath      string       `gorm:"column:storage_path" json:"storage_path"`
	OCR              *OCRResult   `gorm:"column:ocr_result;serializer:json" json:"ocr_result,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// ApplicantSnapshot is a point-in-time copy of the applicant's profile,
// captured when the application was filed. It is the ground truth the
// extracted document fields are checked against and may be partially
// populated; nil pointers mean the applicant never declared the field.
type ApplicantSnapshot struct {
	FirstName     string   `json:"first_name,omitempty"`
	MiddleName    string   `json:"middle_name,omitempty"`
	LastName      string   `json:"last_name,omitempty"`
	StudentNumber string   `json:"student_number,omitempty"`
	GWA           *float64 `json:"gwa,omitempty"`
	College       string   `json:"college,omitempty"`
	Course        string   `json:"course,omitempty"`
	AnnualIncome  *float64 `json:"annual_income,omitempty"`
	Street        string   `json:"street,omitempty"`
	Barangay      string   `json:"barangay,omitempty"`
	City          string   `json:"city,omitempty"`
	Province      string   `json:"province,omitempty"`
}

// FullName joins the declared name parts in First [Middle] Last order.
func (s ApplicantSnapshot) FullName() string {
	out := ""
	for _, part := range []string{s.FirstName, s.MiddleName, s.LastName} {
		if part == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += part
	}
	return out
}

// Application is the aggregate root owning the uploaded documents and the
// profile snapshot taken at filing time.
type Application struct {
	ID          string            `gorm:"primaryKey;column:id" json:"id"`
	ApplicantID string            `gorm:"column:applicant_id;index" json:"applicant_id"`
	Scholarship string            `gorm:"column:scholarship" json:"scholarship"`
	Status      string            `gorm:"column:status" json:"status"`
	Snapshot    ApplicantSnapshot `gorm:"column:snapshot;serializer:json" json:"snapshot"`
	Documents   []Document        `gorm:"foreignKey:ApplicationID" json:"documents,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// IsSkipType reports whether a document type is a text-only submission
// that never goes through OCR.
func IsSkipType(t DocumentType) bool {
	return t == DocTextResponse || t == DocPersonalStatement
}
