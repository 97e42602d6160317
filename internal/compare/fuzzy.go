package compare

import (
	"regexp"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

var (
	rePunct = regexp.MustCompile(`[^a-z0-9\s]+`)
	reWS    = regexp.MustCompile(`\s+`)

	levMetric = metrics.NewLevenshtein()
)

// Normalize lowercases, strips punctuation and collapses whitespace so
// formatting variants compare equal.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = rePunct.ReplaceAllString(s, " ")
	s = reWS.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// FuzzyMatch scores the similarity of two strings in [0,1], tolerant of
// OCR noise and formatting variants. Identical normalized strings score 1,
// substring containment scores 0.9, anything else falls back to
// Levenshtein similarity (1 - editDistance/maxLen). A blank input on
// either side scores 0.
func FuzzyMatch(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 0.9
	}
	return strutil.Similarity(na, nb, levMetric)
}
