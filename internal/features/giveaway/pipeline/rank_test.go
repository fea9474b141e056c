package pipeline

import (
	"fmt"
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"free-game-tracker/internal/features/giveaway/models"
)

func ids(records []models.NormalizedGiveaway) []int {
	return lo.Map(records, func(g models.NormalizedGiveaway, _ int) int { return g.ID })
}

func TestClassify_ByRawSentinel(t *testing.T) {
	records := Normalize([]models.Giveaway{
		{ID: 1, Worth: "N/A"},
		{ID: 2, Worth: "$0.00"},
		{ID: 3, Worth: "$5"},
		{ID: 4, Worth: "N/A"},
	})

	part := Classify(records)

	assert.Equal(t, []int{1, 4}, ids(part.FreeForever))
	assert.Equal(t, []int{2, 3}, ids(part.Paid), "a $0 paid entry is not free-forever")
}

func TestRank_TieBreakOnExpiry(t *testing.T) {
	paid := Normalize([]models.Giveaway{
		{ID: 2, Worth: "$50", EndDate: "N/A"},
		{ID: 3, Worth: "$50", EndDate: "2024-01-01"},
		{ID: 4, Worth: "$10", EndDate: "N/A"},
	})

	featured, regular := Rank(paid)

	assert.Equal(t, []int{3, 2, 4}, ids(featured))
	assert.Empty(t, regular)
}

func TestRank_FeaturedAndRegular(t *testing.T) {
	paid := Normalize([]models.Giveaway{
		{ID: 10, Worth: "$5", EndDate: "2024-06-01"},
		{ID: 11, Worth: "$30", EndDate: "2024-06-01"},
		{ID: 12, Worth: "$5", EndDate: "2024-01-01"},
		{ID: 13, Worth: "$20", EndDate: "N/A"},
		{ID: 14, Worth: "$20", EndDate: "2024-03-01"},
		{ID: 15, Worth: "$1", EndDate: "N/A"},
	})

	featured, regular := Rank(paid)

	assert.Equal(t, []int{11, 14, 13}, ids(featured))
	assert.Equal(t, []int{10, 12, 15}, ids(regular), "regular keeps the paid order")
	assert.Empty(t, lo.Intersect(ids(featured), ids(regular)))
	assert.True(t, sort.SliceIsSorted(featured, func(i, j int) bool {
		return RankLess(featured[i], featured[j])
	}))
}

func TestRank_FewerThanFeaturedCount(t *testing.T) {
	for n := 0; n <= models.FeaturedCount+2; n++ {
		t.Run(fmt.Sprintf("paid=%d", n), func(t *testing.T) {
			raw := make([]models.Giveaway, n)
			for i := range raw {
				raw[i] = models.Giveaway{ID: i + 1, Worth: fmt.Sprintf("$%d", i)}
			}

			featured, regular := Rank(Normalize(raw))

			require.Len(t, featured, min(models.FeaturedCount, n))
			assert.Len(t, regular, n-len(featured))
		})
	}
}

func TestRank_DoesNotReorderInput(t *testing.T) {
	paid := Normalize([]models.Giveaway{
		{ID: 1, Worth: "$1"},
		{ID: 2, Worth: "$2"},
	})

	Rank(paid)

	assert.Equal(t, []int{1, 2}, ids(paid))
}
