package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidates within edit distance of input, closest
// first. Used to hint at stage ids when the user mistypes one.
func Suggest(input string, candidates []string) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil
	}

	type match struct {
		id   string
		dist int
	}
	var matches []match
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(input, strings.ToLower(cand))
		if dist > distanceLimit(len(cand)) {
			continue
		}
		matches = append(matches, match{cand, dist})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.id
	}
	return out
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
