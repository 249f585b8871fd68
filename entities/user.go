package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	Role     string    `json:"role"` // consumer, donor, ngo
	Password string    `json:"-"`
	Bio      string    `json:"bio,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
	Verified bool      `json:"verified"`

	Donations []*Donation `gorm:"foreignKey:UserID"`
	Timestamp
}
