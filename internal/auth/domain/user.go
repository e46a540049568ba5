package domain

import "time"

// User is the credential store record. The password hash, the current
// refresh token and the reset-token state never leave the server.
type User struct {
	ID             string `json:"id" gorm:"primaryKey"`
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash   string `json:"-" gorm:"not null"`
	Name           string `json:"name" gorm:"not null"`
	Age            int    `json:"age,omitempty"`
	Location       string `json:"location,omitempty"`
	PhotoURL       string `json:"photo,omitempty"`
	ExteriorPlants bool   `json:"exteriorPlants" gorm:"default:false"`
	InteriorPlants bool   `json:"interiorPlants" gorm:"default:false"`

	// At most one live refresh token per user; empty means logged out.
	RefreshToken string `json:"-"`

	// Set only while a password reset is in flight; cleared on use or expiry.
	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
