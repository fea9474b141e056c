package pipeline

import (
	"sort"

	"github.com/samber/lo"

	"free-game-tracker/internal/features/giveaway/models"
)

// RankLess orders by worth descending, then by sooner expiry.
func RankLess(a, b models.NormalizedGiveaway) bool {
	if a.WorthValue != b.WorthValue {
		return a.WorthValue > b.WorthValue
	}
	return a.Expiry.Before(b.Expiry)
}

// Rank picks the top models.FeaturedCount paid records as featured; the
// rest, in their original order, are regular.
func Rank(paid []models.NormalizedGiveaway) (featured, regular []models.NormalizedGiveaway) {
	sorted := make([]models.NormalizedGiveaway, len(paid))
	copy(sorted, paid)
	sort.SliceStable(sorted, func(i, j int) bool {
		return RankLess(sorted[i], sorted[j])
	})

	n := min(models.FeaturedCount, len(sorted))
	featured = sorted[:n:n]

	featuredIDs := make(map[int]struct{}, n)
	for _, g := range featured {
		featuredIDs[g.ID] = struct{}{}
	}
	regular = lo.Reject(paid, func(g models.NormalizedGiveaway, _ int) bool {
		_, hit := featuredIDs[g.ID]
		return hit
	})
	return featured, regular
}
