package leaderboard

import (
	"FoodForAll-Backend/domain"
	"context"
	"math"
)

const (
	GoldThreshold   = 30
	SilverThreshold = 20
	BronzeThreshold = 10

	TopN = 20
)

type (
	LeaderboardService interface {
		GetLeaderboard(ctx context.Context) ([]*domain.LeaderboardEntry, error)
	}

	leaderboardService struct {
		leaderboardRepository LeaderboardRepository
	}
)

func NewLeaderboardService(leaderboardRepository LeaderboardRepository) LeaderboardService {
	return &leaderboardService{leaderboardRepository: leaderboardRepository}
}

// TierForCount classifies a donor by donation count, highest tier first.
func TierForCount(donations int64) string {
	switch {
	case donations >= GoldThreshold:
		return domain.TierGold
	case donations >= SilverThreshold:
		return domain.TierSilver
	case donations >= BronzeThreshold:
		return domain.TierBronze
	default:
		return domain.TierSupporter
	}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	aggregates, err := s.leaderboardRepository.GetDonorAggregates(ctx, TopN)
	if err != nil {
		return nil, err
	}

	if len(aggregates) > TopN {
		aggregates = aggregates[:TopN]
	}

	entries := make([]*domain.LeaderboardEntry, 0, len(aggregates))
	for _, aggregate := range aggregates {
		entries = append(entries, &domain.LeaderboardEntry{
			UserID:    aggregate.UserID,
			Name:      aggregate.Name,
			Avatar:    aggregate.ImageURL,
			Level:     TierForCount(aggregate.Donations),
			Donations: aggregate.Donations,
			Impact:    aggregate.Impact,
			// Progress toward the next badge is presentational only
			Progress: math.Mod(aggregate.Impact, 100),
		})
	}

	return entries, nil
}
