package pipeline

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"free-game-tracker/internal/features/giveaway/models"
)

// SplitPlatforms splits a comma-joined platform list into trimmed, non-empty names.
func SplitPlatforms(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DerivePlatforms returns every distinct platform across records, sorted.
// Names differing only in case collapse onto the first spelling seen.
func DerivePlatforms(records []models.Giveaway) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, g := range records {
		for _, p := range SplitPlatforms(g.Platforms) {
			key := strings.ToLower(p)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// Apply keeps records whose raw platform list contains any selected name,
// compared case-insensitively as a substring. An empty selection returns
// records unchanged.
func Apply(records []models.NormalizedGiveaway, selection models.Selection) []models.NormalizedGiveaway {
	if selection.IsEmpty() {
		return records
	}

	needles := lo.Map(selection.Sorted(), func(p string, _ int) string {
		return strings.ToLower(p)
	})
	return lo.Filter(records, func(g models.NormalizedGiveaway, _ int) bool {
		haystack := strings.ToLower(g.Platforms)
		return lo.SomeBy(needles, func(n string) bool {
			return strings.Contains(haystack, n)
		})
	})
}
