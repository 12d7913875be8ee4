/* judges.go
 * Contains the judge name suggestion logic used to back judge autocomplete. Matching is fuzzy so
 * partial or slightly misspelled input still finds the intended judge
 */

package logic

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SuggestJudges matches partial input against the known judge names and
// returns the original (correctly cased) names ranked best match first. An
// empty input returns the full known list unchanged
func SuggestJudges(input string, knownJudges []string) []string {
	if strings.TrimSpace(input) == "" {
		return knownJudges
	}

	// Lowercase both sides for better matching, keep a lookup back to the
	// original casings. Names differing only in case share a key, so the
	// lookup holds every original spelling
	lookup := make(map[string][]string)
	var knownLower []string
	for _, name := range knownJudges {
		lower := strings.ToLower(name)
		if _, ok := lookup[lower]; !ok {
			knownLower = append(knownLower, lower)
		}
		lookup[lower] = append(lookup[lower], name)
	}

	ranked := fuzzy.RankFind(strings.ToLower(strings.TrimSpace(input)), knownLower)
	sort.Sort(ranked)

	var suggestions []string
	seen := make(map[string]bool)
	for _, r := range ranked {
		for _, name := range lookup[r.Target] {
			if seen[name] {
				continue
			}
			seen[name] = true
			suggestions = append(suggestions, name)
		}
	}
	return suggestions
}

// MergeJudgeNames combines stored judge names with the default roster,
// dropping duplicates while preserving order (stored names first)
func MergeJudgeNames(stored []string, defaults []string) []string {
	var merged []string
	seen := make(map[string]bool)
	for _, name := range append(append([]string{}, stored...), defaults...) {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		merged = append(merged, name)
	}
	return merged
}
