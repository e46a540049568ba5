package repository

import (
	"errors"
	"time"

	gardendomain "virtualgrow-server/internal/garden/domain"
	plantdomain "virtualgrow-server/internal/plant/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormGardenRepository implements GardenRepository using GORM
type gormGardenRepository struct {
	db *gorm.DB
}

// NewGardenRepository creates a new GORM-based GardenRepository
func NewGardenRepository(db *gorm.DB) GardenRepository {
	return &gormGardenRepository{db: db}
}

func (r *gormGardenRepository) Create(garden *gardendomain.Garden) error {
	garden.ID = uuid.New().String()
	garden.CreatedAt = time.Now()
	garden.UpdatedAt = time.Now()
	return r.db.Create(garden).Error
}

func (r *gormGardenRepository) FindByID(id string) (*gardendomain.Garden, error) {
	var garden gardendomain.Garden
	err := r.db.Preload("Plants").Where("id = ?", id).First(&garden).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &garden, nil
}

func (r *gormGardenRepository) FindAll() ([]*gardendomain.Garden, error) {
	var gardens []*gardendomain.Garden
	err := r.db.Preload("Plants").Order("created_at DESC").Find(&gardens).Error
	return gardens, err
}

func (r *gormGardenRepository) FindByOwner(userID string) ([]*gardendomain.Garden, error) {
	var gardens []*gardendomain.Garden
	err := r.db.Preload("Plants").Where("created_by = ?", userID).Order("created_at DESC").Find(&gardens).Error
	return gardens, err
}

func (r *gormGardenRepository) Update(garden *gardendomain.Garden) error {
	garden.UpdatedAt = time.Now()
	return r.db.Save(garden).Error
}

func (r *gormGardenRepository) Delete(id string) error {
	return r.db.Delete(&gardendomain.Garden{}, "id = ?", id).Error
}

func (r *gormGardenRepository) AttachPlant(gardenID, plantID string) error {
	garden := gardendomain.Garden{ID: gardenID}
	plant := plantdomain.Plant{ID: plantID}
	return r.db.Model(&garden).Association("Plants").Append(&plant)
}

func (r *gormGardenRepository) DetachPlant(gardenID, plantID string) error {
	garden := gardendomain.Garden{ID: gardenID}
	plant := plantdomain.Plant{ID: plantID}
	return r.db.Model(&garden).Association("Plants").Delete(&plant)
}
