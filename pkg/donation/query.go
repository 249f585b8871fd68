package donation

import (
	"FoodForAll-Backend/domain"
	"sort"
)

// MatchesCategories applies the category filter: an empty request
// matches everything, otherwise the listing category must be one of
// the requested values.
func MatchesCategories(category string, requested []string) bool {
	if len(requested) == 0 {
		return true
	}
	for _, c := range requested {
		if c == category {
			return true
		}
	}
	return false
}

// HasAllPreferences applies the dietary-preference filter: the listing
// must carry every requested tag. An empty request matches everything.
func HasAllPreferences(listingPrefs, requested []string) bool {
	if len(requested) == 0 {
		return true
	}
	tags := make(map[string]struct{}, len(listingPrefs))
	for _, p := range listingPrefs {
		tags[p] = struct{}{}
	}
	for _, p := range requested {
		if _, ok := tags[p]; !ok {
			return false
		}
	}
	return true
}

// OrderClause maps a sort key to the SQL ordering. Unknown keys,
// including the unimplemented "distance", fall back to most recent
// first. Listings without an expiry date sort last under "expiry".
func OrderClause(sortKey string) string {
	switch sortKey {
	case domain.SortExpiry:
		return "expiry_date ASC NULLS LAST"
	default:
		return "created_at DESC"
	}
}

// SortListings re-applies the requested ordering in memory so the feed
// ordering holds after filtering, independent of the store. The sort is
// stable; equal keys keep their incoming order.
func SortListings(listings []*domain.Donation, sortKey string) {
	switch sortKey {
	case domain.SortExpiry:
		sort.SliceStable(listings, func(i, j int) bool {
			a, b := listings[i].ExpiryDate, listings[j].ExpiryDate
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.Before(*b)
		})
	default:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.After(listings[j].CreatedAt)
		})
	}
}
