package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is one candidate from a fuzzy name lookup.
type Match struct {
	Name  string
	Score float64
}

// Lookup resolves a possibly misspelled item or recipe name against the
// given candidates. Exact matches score 1.0, prefixes 0.9, and anything
// within a length-scaled levenshtein distance decays from 0.72. Results
// come back best-first; ties break alphabetically.
func Lookup(query string, candidates []string) []Match {
	q := Key(query)
	if q == "" || len(candidates) == 0 {
		return nil
	}
	matches := make([]Match, 0, 4)
	for _, cand := range candidates {
		c := Key(cand)
		if c == "" {
			continue
		}
		var score float64
		switch {
		case q == c:
			score = 1.0
		case strings.HasPrefix(c, q) && len(q) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(q, c)
			if dist > distanceLimit(len(c)) {
				continue
			}
			score = 0.72 - 0.08*float64(dist)
		}
		if score <= 0 {
			continue
		}
		matches = append(matches, Match{Name: cand, Score: score})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Name < matches[j].Name
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// Best returns the single best lookup match, or "" when nothing is close
// enough.
func Best(query string, candidates []string) string {
	m := Lookup(query, candidates)
	if len(m) == 0 {
		return ""
	}
	return m[0].Name
}

func distanceLimit(candLen int) int {
	switch {
	case candLen <= 4:
		return 1
	case candLen <= 8:
		return 2
	default:
		return 3
	}
}

// Searchable composes the string substring search runs against, the
// same fields the browse view exposes.
func Searchable(it Item) string {
	parts := []string{it.Name, it.Rarity, it.Category, it.RecyclesTo}
	if it.KeepQuests {
		parts = append(parts, "quests")
	}
	if it.KeepProjects {
		parts = append(parts, "projects")
	}
	if it.KeepWorkshop {
		parts = append(parts, "workshop")
	}
	return strings.ToLower(strings.Join(parts, " "))
}
