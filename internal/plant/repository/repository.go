package repository

import plantdomain "virtualgrow-server/internal/plant/domain"

// PlantRepository defines plant catalog data access. Lookups that find
// nothing return (nil, nil).
type PlantRepository interface {
	Create(plant *plantdomain.Plant) error
	FindByID(id string) (*plantdomain.Plant, error)
	FindAll() ([]*plantdomain.Plant, error)
	Update(plant *plantdomain.Plant) error
	Delete(id string) error
}
