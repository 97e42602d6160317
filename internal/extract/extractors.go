package extract

import (
	"regexp"
	"strings"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/models"
)

// Candidate patterns, ordered most-specific first. The preprocessor has
// already canonicalized "No." labels, "Barangay" and "PHP", so the
// patterns anchor on those spellings.
var (
	reSNLabeled = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bstudent\s+No\.\s*(20\d{2}-\d{4,5})`),
		regexp.MustCompile(`(?i)\bstudent\s+(?:number|id)\s*:?\s*(20\d{2}-\d{4,5})`),
		regexp.MustCompile(`(?i)\bSN\s*:?\s*(20\d{2}-\d{4,5})`),
	}
	reSNBare = regexp.MustCompile(`\b(20\d{2}-\d{4,5})\b`)

	reGWA = []*regexp.Regexp{
		regexp.MustCompile(`(?i)general\s+weighted\s+average\D{0,20}(\d\.\d{1,4})`),
		regexp.MustCompile(`(?i)\bGWA\D{0,20}(\d\.\d{1,4})`),
		regexp.MustCompile(`(?i)weighted\s+average\D{0,20}(\d\.\d{1,4})`),
	}

	reName = []*regexp.Regexp{
		regexp.MustCompile(`(?i)name\s+of\s+(?:student|applicant|taxpayer|employee)\s*:\s*(` + nameChars + `)`),
		regexp.MustCompile(`(?i)(?:^|\n)(?:student\s+|full\s+)?name\s*:\s*(` + nameChars + `)`),
		regexp.MustCompile(`(?i)certify\s+that\s+(?:mr\.|ms\.|mrs\.)?\s*(` + nameChars + `?)(?:,| is\b| has\b| of\b|\n|$)`),
	}

	reCollegeLabeled = regexp.MustCompile(`(?i)college(?:/unit)?\s*:\s*(` + nameChars + `)`)

	reCourse = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:course|program|degree(?:\s+program)?)\s*:\s*(` + nameChars + `)`),
		regexp.MustCompile(`\b(Bachelor of [A-ZÑa-zñ ]{2,60})`),
		regexp.MustCompile(`\b(BS[A-Z]{1,5})\b`),
		regexp.MustCompile(`\b(BS (?:[A-ZÑ][A-Za-zñ]+ ?){1,4})`),
		regexp.MustCompile(`\b(B\.S\.? in [A-ZÑa-zñ ]{2,50})`),
	}

	reIncome = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:annual|yearly)\s+(?:gross\s+|family\s+)?income\D{0,20}?([\d,]+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)gross\s+(?:compensation\s+)?income\D{0,20}?([\d,]+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)(?:total\s+)?taxable\s+income\D{0,20}?([\d,]+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)\bincome\D{0,20}?([\d,]+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?:PHP|₱)\s*([\d,]+(?:\.\d{1,2})?)`),
	}

	reUnits = []*regexp.Regexp{
		regexp.MustCompile(`(?i)total\s+units?\s*(?:enrolled)?\s*:?\s*(\d{1,2})`),
		regexp.MustCompile(`(?i)units?\s+enrolled\s*:?\s*(\d{1,2})`),
		regexp.MustCompile(`(?i)\b(\d{1,2})\s+units?\b`),
	}

	reAddress = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:address|residence)\s*:\s*([^\n]{5,100})`),
		regexp.MustCompile(`(?i)(?:residing\s+at|resident\s+of)\s+([^\n]{5,100})`),
		regexp.MustCompile(`(?i)(Barangay\s+[A-ZÑa-zñ0-9][A-ZÑa-zñ0-9 .\-]{1,40}(?:,\s*[A-ZÑa-zñ][A-ZÑa-zñ .]{1,40})?)`),
	}

	// ID cards print the holder's name as a standalone all-caps line.
	reCapsName = regexp.MustCompile(`(?m)^([A-ZÑ]{2,}(?:[ .,'][A-ZÑ.,']+){1,3})$`)
)

// capsNameLine finds a standalone all-caps line that reads like a person's
// name, skipping letterhead lines.
func capsNameLine(text string) string {
	for _, m := range reCapsName.FindAllStringSubmatch(text, -1) {
		l := m[1]
		ll := strings.ToLower(l)
		if strings.ContainsAny(l, "0123456789") {
			continue
		}
		skip := false
		for _, kw := range []string{"university", "college", "republic", "philippines", "office", "certificate", "identification"} {
			if strings.Contains(ll, kw) {
				skip = true
				break
			}
		}
		if !skip {
			return l
		}
	}
	return ""
}

// ExtractTranscript reads official transcripts of records: GWA, student
// number, name, program and total units.
func ExtractTranscript(text string) models.ExtractedFields {
	f := models.ExtractedFields{}
	set(f, "gwa", firstMatch(text, reGWA, saneGWA))
	set(f, "student_number", firstMatch(text, reSNLabeled, saneStudentNumber))
	set(f, "name", firstMatch(text, reName, nil))
	set(f, "course", firstMatch(text, reCourse, nil))
	set(f, "college", firstMatch(text, []*regexp.Regexp{reCollegeLabeled}, nil))
	set(f, "units", firstMatch(text, reUnits, saneUnits))
	if f["college"] == "" {
		set(f, "college", longestLineWith(text, "college of", "school of", "institute of"))
	}
	return f
}

// ExtractGradeReport reads end-of-term grade reports, which carry the same
// academic figures as a transcript but rarely a program header.
func ExtractGradeReport(text string) models.ExtractedFields {
	f := models.ExtractedFields{}
	set(f, "gwa", firstMatch(text, reGWA, saneGWA))
	set(f, "student_number", firstMatch(text, reSNLabeled, saneStudentNumber))
	set(f, "name", firstMatch(text, reName, nil))
	set(f, "units", firstMatch(text, reUnits, saneUnits))
	return f
}

// ExtractRegistration reads certificates of registration (Form 5) and, by
// reuse, proofs of enrollment.
func ExtractRegistration(text string) models.ExtractedFields {
	f := models.ExtractedFields{}
	set(f, "student_number", firstMatch(text, reSNLabeled, saneStudentNumber))
	if f["student_number"] == "" {
		set(f, "student_number", firstMatch(text, []*regexp.Regexp{reSNBare}, saneStudentNumber))
	}
	set(f, "name", firstMatch(text, reName, nil))
	set(f, "college", firstMatch(text, []*regexp.Regexp{reCollegeLabeled}, nil))
	if f["college"] == "" {
		set(f, "college", longestLineWith(text, "college of", "school of", "institute of"))
	}
	set(f, "course", firstMatch(text, reCourse, nil))
	set(f, "units", firstMatch(text, reUnits, saneUnits))
	return f
}

// ExtractIncome reads BIR income certificates, income tax returns and
// certificates of employment with compensation.
func ExtractIncome(text string) models.ExtractedFields {
	f := models.ExtractedFields{}
	set(f, "income", firstMatch(text, reIncome, saneIncome))
	set(f, "name", firstMatch(text, reName, nil))
	set(f, "address", firstMatch(text, reAddress, nil))
	return f
}

// ExtractBarangay reads barangay certificates (residency, indigency),
// which attest the holder's name, address and sometimes declared income.
func ExtractBarangay(text string) models.ExtractedFields {
	f := models.ExtractedFields{}
	set(f, "name", firstMatch(text, reName, nil))
	set(f, "address", firstMatch(text, reAddress, nil))
	set(f, "income", firstMatch(text, reIncome, saneIncome))
	return f
}

// ExtractStudentID reads university ID cards and, by reuse, generic photo
// IDs: holder name, student number, program.
func ExtractStudentID(text string) models.ExtractedFields {
	f := models.ExtractedFields{}
	set(f, "student_number", firstMatch(text, reSNLabeled, saneStudentNumber))
	if f["student_number"] == "" {
		set(f, "student_number", firstMatch(text, []*regexp.Regexp{reSNBare}, saneStudentNumber))
	}
	set(f, "name", firstMatch(text, reName, nil))
	if f["name"] == "" {
		set(f, "name", capsNameLine(text))
	}
	set(f, "course", firstMatch(text, reCourse, nil))
	set(f, "college", firstMatch(text, []*regexp.Regexp{reCollegeLabeled}, nil))
	return f
}

// ExtractEmployeeID reads company ID cards of a parent or guardian; the
// holder name is usually all that is machine-readable.
func ExtractEmployeeID(text string) models.ExtractedFields {
	f := models.ExtractedFields{}
	set(f, "name", firstMatch(text, reName, nil))
	if f["name"] == "" {
		set(f, "name", capsNameLine(text))
	}
	set(f, "address", firstMatch(text, reAddress, nil))
	return f
}

// ExtractGeneric is the label-driven fallback for unknown or free-form
// document types, and the backfill source for every specialized extractor.
func ExtractGeneric(text string) models.ExtractedFields {
	f := models.ExtractedFields{}
	set(f, "name", firstMatch(text, reName, nil))
	set(f, "student_number", firstMatch(text, reSNLabeled, saneStudentNumber))
	if f["student_number"] == "" {
		set(f, "student_number", firstMatch(text, []*regexp.Regexp{reSNBare}, saneStudentNumber))
	}
	set(f, "gwa", firstMatch(text, reGWA, saneGWA))
	set(f, "income", firstMatch(text, reIncome, saneIncome))
	set(f, "course", firstMatch(text, reCourse, nil))
	set(f, "college", firstMatch(text, []*regexp.Regexp{reCollegeLabeled}, nil))
	set(f, "address", firstMatch(text, reAddress, nil))
	set(f, "units", firstMatch(text, reUnits, saneUnits))
	return f
}
