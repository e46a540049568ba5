package repository

import weatherdomain "virtualgrow-server/internal/weather/domain"

// WeatherRepository defines weather record data access. Lookups that find
// nothing return (nil, nil).
type WeatherRepository interface {
	Create(record *weatherdomain.Weather) error
	FindByID(id string) (*weatherdomain.Weather, error)
	FindAll() ([]*weatherdomain.Weather, error)
	FindByGarden(gardenID string) ([]*weatherdomain.Weather, error)
	Update(record *weatherdomain.Weather) error
	Delete(id string) error
}
