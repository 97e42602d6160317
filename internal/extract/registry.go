// Package extract turns preprocessed OCR text into canonical field maps.
// Dispatch is a tagged lookup from document type to a pure extractor
// function; every extractor is total and stateless, so the registry is
// safe to use from concurrent verifications.
package extract

import (
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/models"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/textproc"
)

// Extractor is a pure text -> fields function. It never panics and an
// empty or unusable input yields an empty map.
type Extractor func(text string) models.ExtractedFields

// registry maps document types to their specialized extractor. Types
// whose paperwork shares a layout intentionally share an extractor:
// proof of enrollment is a registration form, tax returns and employment
// proofs carry income figures, photo IDs read like student IDs.
var registry = map[models.DocumentType]Extractor{
	models.DocTranscript:              ExtractTranscript,
	models.DocGradeReport:             ExtractGradeReport,
	models.DocCertificateRegistration: ExtractRegistration,
	models.DocProofOfEnrollment:       ExtractRegistration,
	models.DocIncomeCertificate:       ExtractIncome,
	models.DocTaxReturn:               ExtractIncome,
	models.DocProofOfEmployment:       ExtractIncome,
	models.DocBarangayCertificate:     ExtractBarangay,
	models.DocStudentID:               ExtractStudentID,
	models.DocPhotoID:                 ExtractStudentID,
	models.DocEmployeeID:              ExtractEmployeeID,
}

// GetExtractor returns the extractor for a document type. Text-only types
// return nil, the skip sentinel: there is no file content to OCR. Unknown
// or unstructured types fall back to the generic extractor.
func GetExtractor(t models.DocumentType) Extractor {
	if models.IsSkipType(t) {
		return nil
	}
	if ex, ok := registry[t]; ok {
		return ex
	}
	return ExtractGeneric
}

// usesGeneric reports whether the type's primary extractor already is the
// generic one, in which case the fallback merge below would be redundant.
func usesGeneric(t models.DocumentType) bool {
	if models.IsSkipType(t) {
		return false
	}
	_, ok := registry[t]
	return !ok
}

// ExtractFields preprocesses raw OCR text and runs the type-specific
// extractor, then backfills any field the primary extractor left empty
// from the generic extractor. The primary extractor wins on conflict.
// Skip types yield an empty map.
func ExtractFields(raw string, t models.DocumentType) models.ExtractedFields {
	ex := GetExtractor(t)
	if ex == nil {
		return models.ExtractedFields{}
	}
	text := textproc.Clean(raw)
	if text == "" {
		return models.ExtractedFields{}
	}
	fields := ex(text)
	if fields == nil {
		fields = models.ExtractedFields{}
	}
	if !usesGeneric(t) {
		for k, v := range ExtractGeneric(text) {
			if fields[k] == "" {
				fields[k] = v
			}
		}
	}
	return fields
}
