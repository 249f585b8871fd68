package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	SortRecent   = "recent"
	SortExpiry   = "expiry"
	SortDistance = "distance"

	MaxDonationPhotos = 5
)

var (
	MessageSuccessCreateDonation   = "donation submitted successfully"
	MessageSuccessGetDonations     = "donations retrieved successfully"
	MessageSuccessGetDonationStats = "donation stats retrieved successfully"

	MessageFailedCreateDonation   = "failed to submit donation"
	MessageFailedGetDonations     = "failed to retrieve donations"
	MessageFailedGetDonationStats = "failed to retrieve donation stats"

	ErrDonationNotFound           = errors.New("donation not found")
	ErrUnauthorizedDonationAccess = errors.New("unauthorized access to donation")
	ErrTooManyPhotos              = errors.New("too many donation photos")
)

type (
	CreateDonationRequest struct {
		FoodName    string  `json:"food_name" form:"food_name" validate:"required"`
		Category    string  `json:"category" form:"category" validate:"required,oneof=cooked dairy packed bakery produced other"`
		Description string  `json:"description" form:"description" validate:"required"`
		Quantity    float64 `json:"quantity" form:"quantity" validate:"required,gt=0"`
		Unit        string  `json:"unit" form:"unit" validate:"required,oneof=servings kgs litres packs"`

		PreparedDate string `json:"prepared_date" form:"prepared_date" validate:"omitempty"`
		ExpiryDays   int    `json:"expiry_days" form:"expiry_days" validate:"min=0"`
		ExpiryHours  int    `json:"expiry_hours" form:"expiry_hours" validate:"min=0,max=23"`

		ContainsAllergens  bool     `json:"contains_allergens" form:"contains_allergens"`
		DietaryPreferences []string `json:"dietary_preferences" form:"dietary_preferences" validate:"omitempty"`

		PickupAddress     string   `json:"pickup_address" form:"pickup_address" validate:"required"`
		PickupFrom        string   `json:"pickup_from" form:"pickup_from" validate:"required"`
		PickupTo          string   `json:"pickup_to" form:"pickup_to" validate:"required"`
		PickupDays        []string `json:"pickup_days" form:"pickup_days" validate:"omitempty"`
		ContactPreference string   `json:"contact_preference" form:"contact_preference" validate:"required,oneof=app sms"`
		Notes             string   `json:"notes" form:"notes" validate:"omitempty"`

		Photos []*multipart.FileHeader `json:"-" form:"-"`
	}

	// ListingQuery carries the explore-feed filter contract: categories
	// match with OR-semantics, dietary preferences with AND-semantics,
	// and an unknown sort key falls back to most-recent-first.
	ListingQuery struct {
		Categories  []string
		Preferences []string
		SortKey     string
	}

	Donation struct {
		ID          string  `json:"id"`
		UserID      string  `json:"user_id"`
		DonorName   string  `json:"donor_name,omitempty"`
		FoodName    string  `json:"food_name"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
		Quantity    float64 `json:"quantity"`
		Unit        string  `json:"unit"`

		PreparedDate time.Time  `json:"prepared_date"`
		ExpiryDays   int        `json:"expiry_days"`
		ExpiryHours  int        `json:"expiry_hours"`
		ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
		TimeLeft     string     `json:"time_left"`
		Expired      bool       `json:"expired"`

		ContainsAllergens  bool     `json:"contains_allergens"`
		DietaryPreferences []string `json:"dietary_preferences"`

		PickupAddress     string   `json:"pickup_address"`
		PickupFrom        string   `json:"pickup_from"`
		PickupTo          string   `json:"pickup_to"`
		PickupDays        []string `json:"pickup_days"`
		ContactPreference string   `json:"contact_preference"`
		Notes             string   `json:"notes,omitempty"`

		Photos []string `json:"photos"`

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	RecentDonation struct {
		ID          string   `json:"id"`
		FoodName    string   `json:"food_name"`
		Category    string   `json:"category"`
		Description string   `json:"description"`
		Photos      []string `json:"photos"`
		DonatedBy   string   `json:"donated_by"`
	}

	PlatformStats struct {
		TotalDonations   int64 `json:"total_donations"`
		TotalUsers       int64 `json:"total_users"`
		TotalCommunities int64 `json:"total_communities"`
	}

	DashboardStats struct {
		TotalDonations    int     `json:"total_donations"`
		ActiveDonations   int     `json:"active_donations"`
		ExpiredDonations  int     `json:"expired_donations"`
		ExpiringSoon      int     `json:"expiring_soon"`
		TotalQuantity     float64 `json:"total_quantity"`
		EstimatedMeals    int     `json:"estimated_meals"`
		EstimatedCO2Saved float64 `json:"estimated_co2_saved"` // in kg
	}
)
