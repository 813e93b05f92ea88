package services

import "github.com/opengrants/hackhub-backend/internal/models"

// MapRankToPrizeAmount resolves the payout amount for a rank from the
// hackathon's tier table. The second return value is false when no tier is
// configured for the rank; callers must treat that as unconfigured, not as a
// zero amount.
func MapRankToPrizeAmount(rank int, tiers []models.PrizeTier) (float64, bool) {
	for _, tier := range tiers {
		if tier.Position == rank {
			return tier.Amount, true
		}
	}
	return 0, false
}
