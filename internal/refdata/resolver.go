package refdata

import (
	"regexp"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// fullNameFuzzyThreshold is the minimum Levenshtein similarity for a noisy
// OCR string to be accepted as one of the known full names.
const fullNameFuzzyThreshold = 0.85

var reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

func normKey(s string) string {
	return reNonAlnum.ReplaceAllString(strings.ToLower(s), "")
}

// Resolver is a bidirectional code<->full-name lookup over the static
// institutional tables, with a fuzzy fallback for OCR-mangled full names.
// Build it once at startup and share it freely; it is never mutated.
type Resolver struct {
	codeToName map[string]string // normalized code -> canonical full name
	nameToCode map[string]string // normalized full name -> canonical code
	names      []string          // canonical full names, for fuzzy fallback
	codeOf     map[string]string // canonical full name -> canonical code
	lev        *metrics.Levenshtein
}

// NewResolver builds the resolver from the college, department and unit
// tables.
func NewResolver() *Resolver {
	r := &Resolver{
		codeToName: make(map[string]string),
		nameToCode: make(map[string]string),
		codeOf:     make(map[string]string),
		lev:        metrics.NewLevenshtein(),
	}
	r.lev.CaseSensitive = false
	for _, table := range []map[string]string{Colleges, Departments, Units} {
		for code, name := range table {
			r.codeToName[normKey(code)] = name
			r.nameToCode[normKey(name)] = code
			r.codeOf[name] = code
			r.names = append(r.names, name)
		}
	}
	return r
}

// Resolve maps s, which may be a short code, a full name, or a noisy OCR
// rendering of a full name, to its canonical (code, full name) pair.
func (r *Resolver) Resolve(s string) (code, name string, ok bool) {
	key := normKey(s)
	if key == "" {
		return "", "", false
	}
	if n, found := r.codeToName[key]; found {
		return r.codeOf[n], n, true
	}
	if c, found := r.nameToCode[key]; found {
		return c, r.codeToName[normKey(c)], true
	}
	// fuzzy fallback over all known full names
	best, bestSim := "", 0.0
	for _, n := range r.names {
		if sim := strutil.Similarity(s, n, r.lev); sim > bestSim {
			best, bestSim = n, sim
		}
	}
	if bestSim >= fullNameFuzzyThreshold {
		return r.codeOf[best], best, true
	}
	return "", "", false
}

// SameEntity reports whether a and b resolve to the same institutional
// entity, bridging a short code on one side against a full name on the
// other.
func (r *Resolver) SameEntity(a, b string) bool {
	ca, _, okA := r.Resolve(a)
	cb, _, okB := r.Resolve(b)
	return okA && okB && ca == cb
}
