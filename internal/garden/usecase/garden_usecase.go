package usecase

import (
	"errors"

	gardendomain "virtualgrow-server/internal/garden/domain"
	"virtualgrow-server/internal/garden/repository"
)

var (
	ErrGardenNotFound = errors.New("garden not found")
	ErrInvalidGarden  = errors.New("missing required fields: name, size and createdBy")
)

// GardenUsecase exposes garden CRUD and plant membership.
type GardenUsecase interface {
	Create(garden *gardendomain.Garden) (*gardendomain.Garden, error)
	GetByID(id string) (*gardendomain.Garden, error)
	GetAll() ([]*gardendomain.Garden, error)
	GetByOwner(userID string) ([]*gardendomain.Garden, error)
	Update(id string, name, location string, size float64) (*gardendomain.Garden, error)
	Delete(id string) error
	AttachPlant(gardenID, plantID string) error
	DetachPlant(gardenID, plantID string) error
}

type gardenUsecase struct {
	gardenRepo repository.GardenRepository
}

func NewGardenUsecase(gardenRepo repository.GardenRepository) GardenUsecase {
	return &gardenUsecase{gardenRepo: gardenRepo}
}

func (u *gardenUsecase) Create(garden *gardendomain.Garden) (*gardendomain.Garden, error) {
	if garden.Name == "" || garden.Size < 1 || garden.CreatedBy == "" {
		return nil, ErrInvalidGarden
	}
	if err := u.gardenRepo.Create(garden); err != nil {
		return nil, err
	}
	return garden, nil
}

func (u *gardenUsecase) GetByID(id string) (*gardendomain.Garden, error) {
	garden, err := u.gardenRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if garden == nil {
		return nil, ErrGardenNotFound
	}
	return garden, nil
}

func (u *gardenUsecase) GetAll() ([]*gardendomain.Garden, error) {
	return u.gardenRepo.FindAll()
}

func (u *gardenUsecase) GetByOwner(userID string) ([]*gardendomain.Garden, error) {
	return u.gardenRepo.FindByOwner(userID)
}

// Update changes name, location and size only; ownership and plant
// membership are managed elsewhere.
func (u *gardenUsecase) Update(id string, name, location string, size float64) (*gardendomain.Garden, error) {
	garden, err := u.gardenRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if garden == nil {
		return nil, ErrGardenNotFound
	}

	if name != "" {
		garden.Name = name
	}
	if location != "" {
		garden.Location = location
	}
	if size != 0 {
		// Zero means "not provided"; anything else must meet the minimum.
		if size < 1 {
			return nil, ErrInvalidGarden
		}
		garden.Size = size
	}

	if err := u.gardenRepo.Update(garden); err != nil {
		return nil, err
	}
	return garden, nil
}

func (u *gardenUsecase) Delete(id string) error {
	garden, err := u.gardenRepo.FindByID(id)
	if err != nil {
		return err
	}
	if garden == nil {
		return ErrGardenNotFound
	}
	return u.gardenRepo.Delete(id)
}

func (u *gardenUsecase) AttachPlant(gardenID, plantID string) error {
	garden, err := u.gardenRepo.FindByID(gardenID)
	if err != nil {
		return err
	}
	if garden == nil {
		return ErrGardenNotFound
	}
	return u.gardenRepo.AttachPlant(gardenID, plantID)
}

func (u *gardenUsecase) DetachPlant(gardenID, plantID string) error {
	garden, err := u.gardenRepo.FindByID(gardenID)
	if err != nil {
		return err
	}
	if garden == nil {
		return ErrGardenNotFound
	}
	return u.gardenRepo.DetachPlant(gardenID, plantID)
}
