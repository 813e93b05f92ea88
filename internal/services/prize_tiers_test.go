package services

import (
	"testing"

	"github.com/opengrants/hackhub-backend/internal/models"
)

func TestMapRankToPrizeAmount(t *testing.T) {
	tiers := []models.PrizeTier{
		{Position: 1, Amount: 5000, Currency: "USDC"},
		{Position: 2, Amount: 3000, Currency: "USDC"},
		{Position: 3, Amount: 1000, Currency: "USDC"},
	}

	tests := []struct {
		name       string
		rank       int
		tiers      []models.PrizeTier
		wantAmount float64
		wantOK     bool
	}{
		{"first place", 1, tiers, 5000, true},
		{"third place", 3, tiers, 1000, true},
		{"rank beyond tiers", 4, tiers, 0, false},
		{"zero rank", 0, tiers, 0, false},
		{"negative rank", -1, tiers, 0, false},
		{"no tiers", 1, nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := MapRankToPrizeAmount(tt.rank, tt.tiers)
			if ok != tt.wantOK {
				t.Fatalf("MapRankToPrizeAmount(%d) ok = %v, want %v", tt.rank, ok, tt.wantOK)
			}
			if amount != tt.wantAmount {
				t.Errorf("MapRankToPrizeAmount(%d) = %v, want %v", tt.rank, amount, tt.wantAmount)
			}
		})
	}
}

func TestMapRankToPrizeAmountDoesNotMutateTiers(t *testing.T) {
	tiers := []models.PrizeTier{{Position: 1, Amount: 500, Currency: "XLM"}}
	MapRankToPrizeAmount(1, tiers)
	MapRankToPrizeAmount(2, tiers)
	if tiers[0].Amount != 500 || tiers[0].Position != 1 {
		t.Errorf("tiers mutated: %+v", tiers[0])
	}
}
