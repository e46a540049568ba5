package domain

import "time"

// Condition is the observed sky state for a record.
type Condition string

const (
	ConditionSunny  Condition = "Sunny"
	ConditionCloudy Condition = "Cloudy"
	ConditionRainy  Condition = "Rainy"
	ConditionSnowy  Condition = "Snowy"
	ConditionWindy  Condition = "Windy"
	ConditionStormy Condition = "Stormy"
	ConditionFoggy  Condition = "Foggy"
	ConditionOther  Condition = "Other"
)

// Valid reports whether c is one of the known conditions.
func (c Condition) Valid() bool {
	switch c {
	case ConditionSunny, ConditionCloudy, ConditionRainy, ConditionSnowy,
		ConditionWindy, ConditionStormy, ConditionFoggy, ConditionOther:
		return true
	}
	return false
}

// Weather is a point-in-time observation for a garden. Temperature is in
// Celsius, humidity in percent, wind speed in m/s, precipitation in mm.
type Weather struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	GardenID      string    `json:"garden" gorm:"index;not null"`
	Temperature   float64   `json:"temperature" gorm:"not null"`
	Humidity      float64   `json:"humidity" gorm:"not null"`
	WindSpeed     float64   `json:"windSpeed,omitempty"`
	Precipitation float64   `json:"precipitation,omitempty"`
	Condition     Condition `json:"condition" gorm:"not null"`
	RecordedAt    time.Time `json:"recordedAt"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
