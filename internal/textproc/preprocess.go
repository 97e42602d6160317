package textproc

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)

	// spacing OCR tends to insert around punctuation: "No ." -> "No.",
	// "1 . 75" -> "1.75", "2021 - 12345" -> "2021-12345"
	reSpaceBeforePunct = regexp.MustCompile(`\s+([.,:;%])`)
	reSpacedDecimal    = regexp.MustCompile(`(\d)\s*\.\s*(\d)`)
	reSpacedDash       = regexp.MustCompile(`(\w)\s*-\s*(\w)`)

	// word broken across lines by a trailing hyphen
	reHyphenBreak = regexp.MustCompile(`([a-z])-\n([a-z])`)

	reNoLabel  = regexp.MustCompile(`(?i)\b(No|N[o0]s?)\s*[.:]`)
	reBrgy     = regexp.MustCompile(`(?i)\bB(?:a?r)?gy\b\.?`)
	rePesoSign = regexp.MustCompile(`(?i)\b(?:Php|PHP)\b\.?`)
)

var unicodeRepl = strings.NewReplacer(
	"‘", "'", "’", "'", // smart single quotes
	"“", `"`, "”", `"`, // smart double quotes
	"–", "-", "—", "-", "−", "-", // en/em dash, minus sign
	" ", " ", " ", " ", " ", " ", // non-breaking spaces
	"\uFEFF", "",
)

// Clean normalizes raw OCR text for field extraction. It is total: any
// input, including the empty string, yields a usable (possibly empty)
// result without panicking. Line breaks are preserved because extractors
// work line by line.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}
	s := unicodeRepl.Replace(raw)
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")

	// rejoin words the OCR broke across lines
	s = reHyphenBreak.ReplaceAllString(s, "$1$2")

	s = reSpaceBeforePunct.ReplaceAllString(s, "$1")
	s = reSpacedDecimal.ReplaceAllString(s, "$1.$2")
	s = reSpacedDash.ReplaceAllString(s, "$1-$2")

	// canonical label spellings used by the extractors
	s = reNoLabel.ReplaceAllString(s, "No.")
	s = reBrgy.ReplaceAllString(s, "Barangay")
	s = rePesoSign.ReplaceAllString(s, "PHP")

	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
