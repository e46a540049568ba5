package repository

import (
	"errors"

	plantdomain "virtualgrow-server/internal/plant/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormPlantRepository implements PlantRepository using GORM
type gormPlantRepository struct {
	db *gorm.DB
}

// NewPlantRepository creates a new GORM-based PlantRepository
func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &gormPlantRepository{db: db}
}

func (r *gormPlantRepository) Create(plant *plantdomain.Plant) error {
	plant.ID = uuid.New().String()
	return r.db.Create(plant).Error
}

func (r *gormPlantRepository) FindByID(id string) (*plantdomain.Plant, error) {
	var plant plantdomain.Plant
	err := r.db.Where("id = ?", id).First(&plant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plant, nil
}

func (r *gormPlantRepository) FindAll() ([]*plantdomain.Plant, error) {
	var plants []*plantdomain.Plant
	err := r.db.Order("common_name ASC").Find(&plants).Error
	return plants, err
}

func (r *gormPlantRepository) Update(plant *plantdomain.Plant) error {
	return r.db.Save(plant).Error
}

func (r *gormPlantRepository) Delete(id string) error {
	return r.db.Delete(&plantdomain.Plant{}, "id = ?", id).Error
}
