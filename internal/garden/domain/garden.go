package domain

import (
	"time"

	plantdomain "virtualgrow-server/internal/plant/domain"
)

// Garden groups plants under a named plot owned by a user.
type Garden struct {
	ID        string              `json:"id" gorm:"primaryKey"`
	Name      string              `json:"name" gorm:"not null"`
	Location  string              `json:"location,omitempty"`
	Size      float64             `json:"size" gorm:"not null"`
	Plants    []plantdomain.Plant `json:"plants" gorm:"many2many:garden_plants"`
	CreatedBy string              `json:"createdBy" gorm:"index"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
