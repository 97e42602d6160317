package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/models"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/refdata"
)

func f64(v float64) *float64 { return &v }

func testEngine() *Engine {
	return NewEngine(refdata.NewResolver())
}

func TestFuzzyMatchIdentity(t *testing.T) {
	for _, s := range []string{"Juan Dela Cruz", "BS Computer Science", "a", "Barangay Krus na Ligas"} {
		assert.Equal(t, 1.0, FuzzyMatch(s, s), s)
	}
}

func TestFuzzyMatchBlankInput(t *testing.T) {
	assert.Equal(t, 0.0, FuzzyMatch("", "anything"))
	assert.Equal(t, 0.0, FuzzyMatch("anything", ""))
	assert.Equal(t, 0.0, FuzzyMatch("  ", "x"))
}

func TestFuzzyMatchContainment(t *testing.T) {
	assert.Equal(t, 0.9, FuzzyMatch("College of Engineering", "Engineering"))
}

func TestFuzzyMatchToleratesFormatting(t *testing.T) {
	// same name, different punctuation and case
	assert.Equal(t, 1.0, FuzzyMatch("DELA CRUZ, JUAN", "dela cruz juan"))
}

func TestCompareFieldsSkipsMissingSides(t *testing.T) {
	e := testEngine()
	// extracted has gwa, snapshot does not declare one; extracted has no
	// name even though the snapshot does
	results := e.CompareFields(
		models.ExtractedFields{"gwa": "1.75"},
		models.ApplicantSnapshot{FirstName: "Juan", LastName: "Dela Cruz"},
	)
	assert.Empty(t, results)
}

func TestCompareNameOrderings(t *testing.T) {
	e := testEngine()
	snap := models.ApplicantSnapshot{FirstName: "Juan", MiddleName: "Santos", LastName: "Dela Cruz"}
	for _, extracted := range []string{
		"Juan Santos Dela Cruz",
		"Dela Cruz Juan Santos",
		"DELA CRUZ, JUAN SANTOS",
	} {
		results := e.CompareFields(models.ExtractedFields{"name": extracted}, snap)
		require.Len(t, results, 1, extracted)
		assert.Equal(t, models.SeverityVerified, results[0].Severity, extracted)
		assert.True(t, results[0].Match, extracted)
	}
}

func TestCompareNameMismatchIsCritical(t *testing.T) {
	e := testEngine()
	snap := models.ApplicantSnapshot{FirstName: "Juan", LastName: "Dela Cruz"}
	results := e.CompareFields(models.ExtractedFields{"name": "Pedro Penduko"}, snap)
	require.Len(t, results, 1)
	assert.Equal(t, models.SeverityCritical, results[0].Severity)
}

func TestCompareStudentNumber(t *testing.T) {
	e := testEngine()
	snap := models.ApplicantSnapshot{StudentNumber: "2021-12345"}

	results := e.CompareFields(models.ExtractedFields{"student_number": "2021 - 12345"}, snap)
	require.Len(t, results, 1)
	assert.Equal(t, models.SeverityVerified, results[0].Severity)
	assert.Equal(t, 1.0, results[0].Metric)

	results = e.CompareFields(models.ExtractedFields{"student_number": "2021-99999"}, snap)
	require.Len(t, results, 1)
	assert.Equal(t, models.SeverityCritical, results[0].Severity)
	assert.False(t, results[0].Match)
}

func TestCompareGWASeverityTiers(t *testing.T) {
	e := testEngine()
	cases := []struct {
		extracted string
		expected  float64
		severity  models.Severity
	}{
		{"1.75", 1.75, models.SeverityVerified},  // exact
		{"1.75", 1.79, models.SeverityVerified},  // within 0.05
		{"1.75", 1.95, models.SeverityWarning},   // within 0.25
		{"1.75", 2.50, models.SeverityCritical},  // beyond 0.25
	}
	for _, tc := range cases {
		results := e.CompareFields(
			models.ExtractedFields{"gwa": tc.extracted},
			models.ApplicantSnapshot{GWA: f64(tc.expected)},
		)
		require.Len(t, results, 1)
		assert.Equal(t, tc.severity, results[0].Severity, "%s vs %.2f", tc.extracted, tc.expected)
	}
}

func TestCompareIncomeSeverityTiers(t *testing.T) {
	e := testEngine()
	cases := []struct {
		extracted string
		expected  float64
		severity  models.Severity
	}{
		{"100,000", 100000, models.SeverityVerified}, // exact
		{"105,000", 100000, models.SeverityVerified}, // 5% off
		{"120,000", 100000, models.SeverityWarning},  // 20% off
		{"150,000", 100000, models.SeverityCritical}, // 50% off
	}
	for _, tc := range cases {
		results := e.CompareFields(
			models.ExtractedFields{"income": tc.extracted},
			models.ApplicantSnapshot{AnnualIncome: f64(tc.expected)},
		)
		require.Len(t, results, 1)
		assert.Equal(t, tc.severity, results[0].Severity, "%s vs %.0f", tc.extracted, tc.expected)
	}
}

func TestCompareIncomeParsesCurrencyDecoration(t *testing.T) {
	e := testEngine()
	results := e.CompareFields(
		models.ExtractedFields{"income": "PHP 100,000.00"},
		models.ApplicantSnapshot{AnnualIncome: f64(100000)},
	)
	require.Len(t, results, 1)
	assert.Equal(t, models.SeverityVerified, results[0].Severity)
}

func TestCompareCollegeAbbreviationBridging(t *testing.T) {
	e := testEngine()
	snap := models.ApplicantSnapshot{College: "College of Engineering"}

	// short code on the document, full name on the profile
	results := e.CompareFields(models.ExtractedFields{"college": "COE"}, snap)
	require.Len(t, results, 1)
	assert.Equal(t, models.SeverityVerified, results[0].Severity)

	// a different college is a warning, never critical
	results = e.CompareFields(models.ExtractedFields{"college": "College of Fine Arts"}, snap)
	require.Len(t, results, 1)
	assert.Equal(t, models.SeverityWarning, results[0].Severity)
}

func TestCompareCourseAbbreviationAndFuzzy(t *testing.T) {
	e := testEngine()
	snap := models.ApplicantSnapshot{Course: "Bachelor of Science in Computer Science"}

	results := e.CompareFields(models.ExtractedFields{"course": "BSCS"}, snap)
	require.Len(t, results, 1)
	assert.Equal(t, models.SeverityVerified, results[0].Severity)

	results = e.CompareFields(models.ExtractedFields{"course": "Bachelor of Laws"}, snap)
	require.Len(t, results, 1)
	assert.Equal(t, models.SeverityWarning, results[0].Severity)
}

func TestCompareAddressLocalityContainment(t *testing.T) {
	e := testEngine()
	snap := models.ApplicantSnapshot{
		Street:   "123 Maginhawa St",
		Barangay: "Krus na Ligas",
		City:     "Quezon City",
		Province: "Metro Manila",
	}

	// the document only carries the locality, which is enough
	results := e.CompareFields(models.ExtractedFields{"address": "Barangay Krus na Ligas, Quezon City"}, snap)
	require.Len(t, results, 1)
	assert.Equal(t, models.SeverityVerified, results[0].Severity)

	// a different locality is at worst a warning
	results = e.CompareFields(models.ExtractedFields{"address": "Barangay Poblacion, Makati"}, snap)
	require.Len(t, results, 1)
	assert.Equal(t, models.SeverityWarning, results[0].Severity)
}

func TestCompareFieldsDeterministicOrder(t *testing.T) {
	e := testEngine()
	fields := models.ExtractedFields{
		"gwa":            "1.75",
		"name":           "Juan Dela Cruz",
		"student_number": "2021-12345",
	}
	snap := models.ApplicantSnapshot{
		FirstName:     "Juan",
		LastName:      "Dela Cruz",
		StudentNumber: "2021-12345",
		GWA:           f64(1.75),
	}
	results := e.CompareFields(fields, snap)
	require.Len(t, results, 3)
	assert.Equal(t, "name", results[0].Field)
	assert.Equal(t, "student_number", results[1].Field)
	assert.Equal(t, "gwa", results[2].Field)
}
