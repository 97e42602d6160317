// Package compare checks fields extracted from OCR text against the
// applicant's profile snapshot and reduces the per-field outcomes to an
// overall verdict. Severity tiers are pure functions of the documented
// thresholds so results are reproducible.
package compare

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/models"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/refdata"
)

// Comparison thresholds. Verified means a confident match, warning a
// plausible but divergent value, critical a clear mismatch.
const (
	nameVerifiedMin = 0.85
	nameWarningMin  = 0.60

	gwaVerifiedMax = 0.05
	gwaWarningMax  = 0.25

	incomeVerifiedMax = 0.10
	incomeWarningMax  = 0.25

	collegeVerifiedMin = 0.85
	courseVerifiedMin  = 0.70
	addressVerifiedMin = 0.60
)

// fieldOrder fixes the order of results so output is deterministic.
var fieldOrder = []string{
	"name", "student_number", "gwa", "income", "college", "course", "address",
}

// Engine compares extracted fields against applicant snapshots. The
// abbreviation resolver is shared, immutable state.
type Engine struct {
	resolver *refdata.Resolver
}

func NewEngine(resolver *refdata.Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// CompareFields produces one result per field present on both the
// extracted side and the snapshot; a field missing on either side is
// skipped, not penalized.
func (e *Engine) CompareFields(fields models.ExtractedFields, snap models.ApplicantSnapshot) []models.FieldComparisonResult {
	var out []models.FieldComparisonResult
	for _, field := range fieldOrder {
		extracted, ok := fields[field]
		if !ok || strings.TrimSpace(extracted) == "" {
			continue
		}
		var res *models.FieldComparisonResult
		switch field {
		case "name":
			res = e.compareName(extracted, snap)
		case "student_number":
			res = compareStudentNumber(extracted, snap.StudentNumber)
		case "gwa":
			res = compareGWA(extracted, snap.GWA)
		case "income":
			res = compareIncome(extracted, snap.AnnualIncome)
		case "college":
			res = e.compareInstitutional(field, extracted, snap.College, collegeVerifiedMin)
		case "course":
			res = e.compareInstitutional(field, extracted, snap.Course, courseVerifiedMin)
		case "address":
			res = compareAddress(extracted, snap)
		}
		if res != nil {
			out = append(out, *res)
		}
	}
	return out
}

// compareName scores the extracted name against the best of three
// orderings of the declared name, since documents render names as
// "First Last", "Last First" or "Last, First" interchangeably.
func (e *Engine) compareName(extracted string, snap models.ApplicantSnapshot) *models.FieldComparisonResult {
	full := snap.FullName()
	if full == "" {
		return nil
	}
	first := strings.TrimSpace(snap.FirstName + " " + snap.MiddleName)
	orderings := []string{full}
	if snap.LastName != "" && first != "" {
		orderings = append(orderings,
			snap.LastName+" "+first,
			snap.LastName+", "+first,
		)
	}
	best := 0.0
	for _, o := range orderings {
		if sim := FuzzyMatch(extracted, o); sim > best {
			best = sim
		}
	}
	sev := models.SeverityCritical
	switch {
	case best >= nameVerifiedMin:
		sev = models.SeverityVerified
	case best >= nameWarningMin:
		sev = models.SeverityWarning
	}
	return &models.FieldComparisonResult{
		Field:     "name",
		Extracted: extracted,
		Expected:  full,
		Match:     best >= nameVerifiedMin,
		Metric:    best,
		Severity:  sev,
	}
}

var reIDStrip = regexp.MustCompile(`[\s\-–—−]+`)

// compareStudentNumber is an exact check after stripping whitespace and
// dash variants; a student number either matches or it does not.
func compareStudentNumber(extracted, expected string) *models.FieldComparisonResult {
	if strings.TrimSpace(expected) == "" {
		return nil
	}
	ne := reIDStrip.ReplaceAllString(extracted, "")
	ns := reIDStrip.ReplaceAllString(expected, "")
	match := strings.EqualFold(ne, ns)
	res := &models.FieldComparisonResult{
		Field:     "student_number",
		Extracted: extracted,
		Expected:  expected,
		Match:     match,
		Severity:  models.SeverityCritical,
	}
	if match {
		res.Metric = 1
		res.Severity = models.SeverityVerified
	}
	return res
}

func compareGWA(extracted string, expected *float64) *models.FieldComparisonResult {
	if expected == nil {
		return nil
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(extracted), 64)
	if err != nil {
		return nil
	}
	diff := math.Abs(val - *expected)
	sev := models.SeverityCritical
	switch {
	case diff <= gwaVerifiedMax:
		sev = models.SeverityVerified
	case diff <= gwaWarningMax:
		sev = models.SeverityWarning
	}
	return &models.FieldComparisonResult{
		Field:     "gwa",
		Extracted: extracted,
		Expected:  strconv.FormatFloat(*expected, 'f', 2, 64),
		Match:     diff <= gwaVerifiedMax,
		Metric:    diff,
		Severity:  sev,
	}
}

func compareIncome(extracted string, expected *float64) *models.FieldComparisonResult {
	if expected == nil {
		return nil
	}
	val, err := parseAmount(extracted)
	if err != nil {
		return nil
	}
	var ratio float64
	switch {
	case *expected != 0:
		ratio = math.Abs(val-*expected) / math.Abs(*expected)
	case val != 0:
		ratio = 1
	}
	sev := models.SeverityCritical
	switch {
	case ratio <= incomeVerifiedMax:
		sev = models.SeverityVerified
	case ratio <= incomeWarningMax:
		sev = models.SeverityWarning
	}
	return &models.FieldComparisonResult{
		Field:     "income",
		Extracted: extracted,
		Expected:  strconv.FormatFloat(*expected, 'f', 2, 64),
		Match:     ratio <= incomeVerifiedMax,
		Metric:    ratio,
		Severity:  sev,
	}
}

// compareInstitutional handles college and course: fuzzy match first, then
// abbreviation-table resolution so "COE" on a document bridges to
// "College of Engineering" on the profile. Divergence is at worst a
// warning because letterhead rendering varies too much to call a forgery.
func (e *Engine) compareInstitutional(field, extracted, expected string, verifiedMin float64) *models.FieldComparisonResult {
	if strings.TrimSpace(expected) == "" {
		return nil
	}
	sim := FuzzyMatch(extracted, expected)
	match := sim >= verifiedMin
	if !match && e.resolver.SameEntity(extracted, expected) {
		match = true
		sim = 1
	}
	sev := models.SeverityWarning
	if match {
		sev = models.SeverityVerified
	}
	return &models.FieldComparisonResult{
		Field:     field,
		Extracted: extracted,
		Expected:  expected,
		Match:     match,
		Metric:    sim,
		Severity:  sev,
	}
}

// compareAddress fuzzily matches the reconstructed full address, falling
// back to containment of the locality parts (barangay, city) because
// documents rarely spell out the whole address the way the profile does.
func compareAddress(extracted string, snap models.ApplicantSnapshot) *models.FieldComparisonResult {
	parts := []string{}
	for _, p := range []string{snap.Street, snap.Barangay, snap.City, snap.Province} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	full := strings.Join(parts, ", ")
	sim := FuzzyMatch(extracted, full)
	match := sim >= addressVerifiedMin
	if !match {
		ne := Normalize(extracted)
		for _, locality := range []string{snap.Barangay, snap.City} {
			nl := Normalize(locality)
			if nl != "" && strings.Contains(ne, nl) {
				match = true
				break
			}
		}
	}
	sev := models.SeverityWarning
	if match {
		sev = models.SeverityVerified
	}
	return &models.FieldComparisonResult{
		Field:     "address",
		Extracted: extracted,
		Expected:  full,
		Match:     match,
		Metric:    sim,
		Severity:  sev,
	}
}

var reAmount = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)

// parseAmount pulls a numeric peso amount out of a string like
// "PHP 180,000.00".
func parseAmount(s string) (float64, error) {
	m := reAmount.FindString(s)
	if m == "" {
		return 0, fmt.Errorf("no numeric amount in %q", s)
	}
	return strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
}
