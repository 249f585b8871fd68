package entities

import (
	"time"

	"github.com/google/uuid"
)

type Donation struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	FoodName    string    `json:"food_name"`
	Category    string    `json:"category"` // cooked, dairy, packed, bakery, produced, other
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"` // servings, kgs, litres, packs

	PreparedDate time.Time  `gorm:"type:timestamp" json:"prepared_date"`
	ExpiryDays   int        `json:"expiry_days"`
	ExpiryHours  int        `json:"expiry_hours"`
	ExpiryDate   *time.Time `gorm:"type:timestamp;index" json:"expiry_date,omitempty"` // derived, kept for sorting

	ContainsAllergens  bool     `json:"contains_allergens"`
	DietaryPreferences []string `gorm:"serializer:json" json:"dietary_preferences"`

	PickupAddress     string   `json:"pickup_address"`
	PickupFrom        string   `json:"pickup_from"`
	PickupTo          string   `json:"pickup_to"`
	PickupDays        []string `gorm:"serializer:json" json:"pickup_days"`
	ContactPreference string   `json:"contact_preference"` // app or sms
	Notes             string   `json:"notes,omitempty"`

	Photos []string `gorm:"serializer:json" json:"photos"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
