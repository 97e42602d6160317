package compare

import "github.com/NeilAutriz/ISKOlarship-sub008/internal/models"

// DetermineOverallMatch reduces per-field results to a document verdict:
// nothing comparable means the document was unreadable, any critical
// mismatch condemns the document, any warning downgrades it to partial.
func DetermineOverallMatch(results []models.FieldComparisonResult) models.OverallMatch {
	if len(results) == 0 {
		return models.MatchUnreadable
	}
	hasWarning := false
	for _, r := range results {
		switch r.Severity {
		case models.SeverityCritical:
			return models.MatchMismatch
		case models.SeverityWarning:
			hasWarning = true
		}
	}
	if hasWarning {
		return models.MatchPartial
	}
	return models.MatchVerified
}

// CalculateConfidence is the fraction of compared fields that matched.
func CalculateConfidence(results []models.FieldComparisonResult) float64 {
	if len(results) == 0 {
		return 0
	}
	matched := 0
	for _, r := range results {
		if r.Match {
			matched++
		}
	}
	return float64(matched) / float64(len(results))
}
