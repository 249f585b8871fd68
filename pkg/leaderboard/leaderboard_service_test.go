package leaderboard

import (
	"FoodForAll-Backend/domain"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeaderboardRepository struct {
	aggregates []*DonorAggregate
}

func (s *stubLeaderboardRepository) GetDonorAggregates(_ context.Context, limit int) ([]*DonorAggregate, error) {
	if len(s.aggregates) > limit {
		return s.aggregates[:limit], nil
	}
	return s.aggregates, nil
}

func TestTierForCount(t *testing.T) {
	tests := []struct {
		donations int64
		want      string
	}{
		{0, domain.TierSupporter},
		{5, domain.TierSupporter},
		{9, domain.TierSupporter},
		{10, domain.TierBronze},
		{19, domain.TierBronze},
		{20, domain.TierSilver},
		{25, domain.TierSilver},
		{29, domain.TierSilver},
		{30, domain.TierGold},
		{100, domain.TierGold},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d donations", tt.donations), func(t *testing.T) {
			assert.Equal(t, tt.want, TierForCount(tt.donations))
		})
	}
}

func TestGetLeaderboard(t *testing.T) {
	repo := &stubLeaderboardRepository{aggregates: []*DonorAggregate{
		{UserID: "u1", Name: "Asha", Donations: 30, Impact: 250},
		{UserID: "u2", Name: "Ben", Donations: 25, Impact: 180},
		{UserID: "u3", Name: "Cara", Donations: 5, Impact: 40},
	}}
	service := NewLeaderboardService(repo)

	entries, err := service.GetLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, domain.TierGold, entries[0].Level)
	assert.Equal(t, domain.TierSilver, entries[1].Level)
	assert.Equal(t, domain.TierSupporter, entries[2].Level)

	assert.Equal(t, float64(50), entries[0].Progress, "progress is impact mod 100")
	assert.Equal(t, float64(80), entries[1].Progress)
}

func TestGetLeaderboardTruncatesToTopN(t *testing.T) {
	var aggregates []*DonorAggregate
	for i := 0; i < 35; i++ {
		aggregates = append(aggregates, &DonorAggregate{
			UserID:    fmt.Sprintf("u%d", i),
			Donations: 1,
			Impact:    float64(200 - i),
		})
	}

	service := NewLeaderboardService(&stubLeaderboardRepository{aggregates: aggregates})

	entries, err := service.GetLeaderboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, TopN)
}
