package pipeline

import (
	"github.com/samber/lo"

	"free-game-tracker/internal/features/giveaway/models"
)

// Partition splits records by the raw worth sentinel.
type Partition struct {
	FreeForever []models.NormalizedGiveaway
	Paid        []models.NormalizedGiveaway
}

// Classify separates free-forever records from paid ones. It looks at the
// raw worth text, so a paid entry whose worth parses to 0 stays paid.
func Classify(records []models.NormalizedGiveaway) Partition {
	isFree := func(g models.NormalizedGiveaway, _ int) bool {
		return g.IsFreeForever()
	}
	return Partition{
		FreeForever: lo.Filter(records, isFree),
		Paid:        lo.Reject(records, isFree),
	}
}
