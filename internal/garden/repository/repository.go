package repository

import gardendomain "virtualgrow-server/internal/garden/domain"

// GardenRepository defines garden data access. Lookups that find nothing
// return (nil, nil).
type GardenRepository interface {
	Create(garden *gardendomain.Garden) error
	FindByID(id string) (*gardendomain.Garden, error)
	FindAll() ([]*gardendomain.Garden, error)
	FindByOwner(userID string) ([]*gardendomain.Garden, error)
	Update(garden *gardendomain.Garden) error
	Delete(id string) error
	AttachPlant(gardenID, plantID string) error
	DetachPlant(gardenID, plantID string) error
}
