package leaderboard

import (
	"FoodForAll-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	// DonorAggregate is one grouped row of the leaderboard query:
	// per-donor donation count and summed quantity, joined to the
	// donor's display fields.
	DonorAggregate struct {
		UserID    string
		Name      string
		ImageURL  string
		Donations int64
		Impact    float64
	}

	LeaderboardRepository interface {
		GetDonorAggregates(ctx context.Context, limit int) ([]*DonorAggregate, error)
	}

	leaderboardRepository struct {
		db *gorm.DB
	}
)

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) GetDonorAggregates(ctx context.Context, limit int) ([]*DonorAggregate, error) {
	var aggregates []*DonorAggregate

	// Ties on impact break deterministically on user id
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Select("donations.user_id as user_id, users.name as name, users.image_url as image_url, COUNT(donations.id) as donations, COALESCE(SUM(donations.quantity), 0) as impact").
		Joins("JOIN users ON users.id = donations.user_id").
		Group("donations.user_id, users.name, users.image_url").
		Order("impact DESC, donations.user_id ASC").
		Limit(limit).
		Scan(&aggregates).Error; err != nil {
		return nil, err
	}

	return aggregates, nil
}
