package donation

import (
	"FoodForAll-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatchesCategories(t *testing.T) {
	assert.True(t, MatchesCategories("bakery", nil), "empty filter matches everything")
	assert.True(t, MatchesCategories("bakery", []string{"bakery", "dairy"}))
	assert.True(t, MatchesCategories("dairy", []string{"bakery", "dairy"}))
	assert.False(t, MatchesCategories("cooked", []string{"bakery", "dairy"}))
}

func TestHasAllPreferences(t *testing.T) {
	tests := []struct {
		name      string
		listing   []string
		requested []string
		want      bool
	}{
		{"no filter", []string{"vegan"}, nil, true},
		{"all present", []string{"vegan", "gluten-free", "nut-free"}, []string{"vegan", "gluten-free"}, true},
		{"missing one", []string{"vegan"}, []string{"vegan", "gluten-free"}, false},
		{"untagged listing", nil, []string{"vegan"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAllPreferences(tt.listing, tt.requested))
		})
	}
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "expiry_date ASC NULLS LAST", OrderClause(domain.SortExpiry))
	assert.Equal(t, "created_at DESC", OrderClause(domain.SortRecent))
	assert.Equal(t, "created_at DESC", OrderClause(domain.SortDistance), "distance falls back to recent")
	assert.Equal(t, "created_at DESC", OrderClause("bogus"))
}

func listingWithExpiry(id string, expiry time.Time) *domain.Donation {
	return &domain.Donation{ID: id, ExpiryDate: &expiry}
}

func TestSortListingsByExpiry(t *testing.T) {
	listings := []*domain.Donation{
		listingWithExpiry("a", base.Add(3*24*time.Hour)),
		listingWithExpiry("b", base.Add(24*time.Hour)),
		listingWithExpiry("c", base.Add(5*24*time.Hour)),
	}

	SortListings(listings, domain.SortExpiry)

	got := []string{listings[0].ID, listings[1].ID, listings[2].ID}
	assert.Equal(t, []string{"b", "a", "c"}, got, "soonest-expiring first")
}

func TestSortListingsByExpiryNilLast(t *testing.T) {
	listings := []*domain.Donation{
		{ID: "never"},
		listingWithExpiry("soon", base.Add(time.Hour)),
	}

	SortListings(listings, domain.SortExpiry)

	assert.Equal(t, "soon", listings[0].ID)
	assert.Equal(t, "never", listings[1].ID)
}

func TestSortListingsDefaultRecent(t *testing.T) {
	listings := []*domain.Donation{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(time.Hour)},
		{ID: "mid", CreatedAt: base.Add(30 * time.Minute)},
	}

	SortListings(listings, "")

	got := []string{listings[0].ID, listings[1].ID, listings[2].ID}
	assert.Equal(t, []string{"new", "mid", "old"}, got)
}
