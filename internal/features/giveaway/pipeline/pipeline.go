// Package pipeline turns raw giveaway records into ranked, filterable display tiers.
package pipeline

import "free-game-tracker/internal/features/giveaway/models"

// Process runs normalize, classify and rank over a fetched payload. Every
// record ends up in exactly one tier.
func Process(records []models.Giveaway) models.Collections {
	part := Classify(Normalize(records))
	featured, regular := Rank(part.Paid)

	return models.Collections{
		Featured:    featured,
		Regular:     regular,
		FreeForever: part.FreeForever,
	}
}

// Filter applies the platform selection to every tier.
func Filter(c models.Collections, selection models.Selection) models.Collections {
	return models.Collections{
		Featured:    Apply(c.Featured, selection),
		Regular:     Apply(c.Regular, selection),
		FreeForever: Apply(c.FreeForever, selection),
	}
}
