package menu

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"nutricli/apiclients/nutrislice"
)

// ErrSchoolNotFound is returned when no school matches a query.
var ErrSchoolNotFound = errors.New("school not found")

// maxAmbiguousCandidates caps the number of candidates listed in an
// AmbiguousError message.
const maxAmbiguousCandidates = 10

// AmbiguousError is returned when a query matches more than one school.
// It carries the candidate schools sorted by slug.
type AmbiguousError struct {
	Query      string
	Candidates []nutrislice.School
}

// Error renders the candidate list so the message alone tells the user
// what to try next.
func (e *AmbiguousError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ambiguous school name %q, did you mean one of these?", e.Query)
	for i, school := range e.Candidates {
		if i == maxAmbiguousCandidates {
			break
		}
		fmt.Fprintf(&b, "\n  %-40s (%s)", school.Slug, school.Name)
	}
	return b.String()
}

// Resolve finds the single school intended by a free-text query.
//
// Matching priority:
//  1. exact slug match, or exact case-insensitive name match
//  2. unique slug prefix match
//  3. unique substring match in the slug
//  4. unique case-insensitive substring match in the name
//
// A query matching several schools with no exact winner returns an
// AmbiguousError listing the candidates; a query matching none returns
// ErrSchoolNotFound. Resolution is deterministic for the same inputs.
func Resolve(query string, schools []nutrislice.School) (nutrislice.School, error) {

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nutrislice.School{}, errors.New("school query must not be empty")
	}
	if len(schools) == 0 {
		return nutrislice.School{}, errors.New("no schools to match against")
	}

	for _, s := range schools {
		if s.Slug == q || strings.ToLower(s.Name) == q {
			return s, nil
		}
	}

	// The tiers are inclusive: a prefix match is also a slug substring
	// match, and a school may appear in all three lists. A tier only
	// decides the match when it holds exactly one school, so a query
	// that prefix-matches several slugs stays ambiguous rather than
	// falling through to a single lower-tier school.
	var prefixMatches, slugMatches, nameMatches []nutrislice.School
	for _, s := range schools {
		if strings.HasPrefix(s.Slug, q) {
			prefixMatches = append(prefixMatches, s)
		}
		if strings.Contains(s.Slug, q) {
			slugMatches = append(slugMatches, s)
		}
		if strings.Contains(strings.ToLower(s.Name), q) {
			nameMatches = append(nameMatches, s)
		}
	}

	for _, matches := range [][]nutrislice.School{prefixMatches, slugMatches, nameMatches} {
		if len(matches) == 1 {
			return matches[0], nil
		}
	}

	// Multiple plausible matches: report ambiguity rather than pick the
	// closest, listing the deduplicated union of all match tiers.
	seen := make(map[string]bool)
	var candidates []nutrislice.School
	for _, s := range append(append(prefixMatches, slugMatches...), nameMatches...) {
		if seen[s.Slug] {
			continue
		}
		seen[s.Slug] = true
		candidates = append(candidates, s)
	}
	if len(candidates) > 0 {
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].Slug < candidates[j].Slug
		})
		return nutrislice.School{}, &AmbiguousError{Query: query, Candidates: candidates}
	}

	return nutrislice.School{}, fmt.Errorf("%w: no school matches %q", ErrSchoolNotFound, query)
}
