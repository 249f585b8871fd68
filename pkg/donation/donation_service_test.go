package donation

import (
	"FoodForAll-Backend/domain"
	"FoodForAll-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDonationRepository struct {
	DonationRepository
	donations []*entities.Donation
}

func (s *stubDonationRepository) GetFilteredDonations(_ context.Context, categories []string, sortKey string) ([]*entities.Donation, error) {
	var result []*entities.Donation
	for _, d := range s.donations {
		if MatchesCategories(d.Category, categories) {
			result = append(result, d)
		}
	}
	return result, nil
}

func (s *stubDonationRepository) GetUserDonations(_ context.Context, userID string) ([]*entities.Donation, error) {
	var result []*entities.Donation
	for _, d := range s.donations {
		if d.UserID.String() == userID {
			result = append(result, d)
		}
	}
	return result, nil
}

func listing(category string, prefs []string, expiry time.Time) *entities.Donation {
	return &entities.Donation{
		ID:                 uuid.New(),
		UserID:             uuid.New(),
		Category:           category,
		DietaryPreferences: prefs,
		PreparedDate:       base,
		ExpiryDate:         &expiry,
	}
}

func TestGetFilteredDonationsCategoryFilter(t *testing.T) {
	repo := &stubDonationRepository{donations: []*entities.Donation{
		listing("bakery", nil, base.Add(time.Hour)),
		listing("dairy", nil, base.Add(time.Hour)),
		listing("cooked", nil, base.Add(time.Hour)),
	}}
	service := NewDonationService(repo, nil)

	result, err := service.GetFilteredDonations(context.Background(), domain.ListingQuery{
		Categories: []string{"bakery", "dairy"},
	})
	require.NoError(t, err)

	require.Len(t, result, 2)
	for _, d := range result {
		assert.Contains(t, []string{"bakery", "dairy"}, d.Category)
	}
}

func TestGetFilteredDonationsPreferenceFilter(t *testing.T) {
	veganOnly := listing("cooked", []string{"vegan"}, base.Add(time.Hour))
	veganGF := listing("cooked", []string{"vegan", "gluten-free"}, base.Add(time.Hour))

	repo := &stubDonationRepository{donations: []*entities.Donation{veganOnly, veganGF}}
	service := NewDonationService(repo, nil)

	result, err := service.GetFilteredDonations(context.Background(), domain.ListingQuery{
		Preferences: []string{"vegan", "gluten-free"},
	})
	require.NoError(t, err)

	require.Len(t, result, 1, "a listing tagged only vegan must be excluded")
	assert.Equal(t, veganGF.ID.String(), result[0].ID)
}

func TestGetFilteredDonationsExpirySort(t *testing.T) {
	repo := &stubDonationRepository{donations: []*entities.Donation{
		listing("cooked", nil, base.Add(3*24*time.Hour)),
		listing("cooked", nil, base.Add(24*time.Hour)),
		listing("cooked", nil, base.Add(5*24*time.Hour)),
	}}
	service := NewDonationService(repo, nil)

	result, err := service.GetFilteredDonations(context.Background(), domain.ListingQuery{
		SortKey: domain.SortExpiry,
	})
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.True(t, result[0].ExpiryDate.Before(*result[1].ExpiryDate))
	assert.True(t, result[1].ExpiryDate.Before(*result[2].ExpiryDate))
}

func TestGetDashboardStats(t *testing.T) {
	userID := uuid.New()

	fresh := listing("cooked", nil, time.Now().Add(48*time.Hour))
	fresh.UserID = userID
	fresh.PreparedDate = time.Now()
	fresh.ExpiryDays = 2
	fresh.Quantity = 4

	stale := listing("bakery", nil, time.Now().Add(-time.Hour))
	stale.UserID = userID
	stale.PreparedDate = time.Now().Add(-25 * time.Hour)
	stale.ExpiryDays = 1
	stale.Quantity = 6

	repo := &stubDonationRepository{donations: []*entities.Donation{fresh, stale}}
	service := NewDonationService(repo, nil)

	stats, err := service.GetDashboardStats(context.Background(), userID.String())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalDonations)
	assert.Equal(t, 1, stats.ActiveDonations)
	assert.Equal(t, 1, stats.ExpiredDonations)
	assert.Equal(t, float64(10), stats.TotalQuantity)
	assert.Equal(t, 10, stats.EstimatedMeals)
	assert.Equal(t, float64(25), stats.EstimatedCO2Saved)
}
