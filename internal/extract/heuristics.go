package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Sanity bounds for extracted values. A heuristic hit outside these is a
// misread, not a fact.
const (
	gwaMin    = 1.0
	gwaMax    = 5.0
	incomeMin = 1_000
	incomeMax = 10_000_000
	unitsMin  = 1
	unitsMax  = 30
)

// firstMatch runs an ordered list of candidate patterns and keeps the
// first captured group that passes the sanity filter. A nil filter
// accepts anything non-blank.
func firstMatch(text string, patterns []*regexp.Regexp, sane func(string) bool) string {
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			v := strings.TrimSpace(m[1])
			if v == "" {
				continue
			}
			if sane == nil || sane(v) {
				return v
			}
		}
	}
	return ""
}

func saneGWA(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v >= gwaMin && v <= gwaMax
}

var reStudentNumberShape = regexp.MustCompile(`^20\d{2}-\d{4,5}$`)

func saneStudentNumber(s string) bool {
	return reStudentNumberShape.MatchString(s)
}

func saneIncome(s string) bool {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	return err == nil && v >= incomeMin && v <= incomeMax
}

func saneUnits(s string) bool {
	v, err := strconv.Atoi(s)
	return err == nil && v >= unitsMin && v <= unitsMax
}

// Name charset covers Filipino names including ñ and common particles.
const nameChars = `[A-ZÑa-zñ][A-ZÑa-zñ .,'\-]{2,60}`

// set stores a value under key if the value is non-empty.
func set(fields map[string]string, key, value string) {
	if value != "" {
		fields[key] = value
	}
}

// longestLineWith returns the longest line containing any of the given
// keywords, a cheap way to find letterhead lines like
// "College of Engineering" without anchoring labels.
func longestLineWith(text string, keywords ...string) string {
	best := ""
	for _, ln := range strings.Split(text, "\n") {
		l := strings.TrimSpace(ln)
		ll := strings.ToLower(l)
		for _, kw := range keywords {
			if strings.Contains(ll, kw) {
				if len(l) > len(best) {
					best = l
				}
				break
			}
		}
	}
	return best
}
