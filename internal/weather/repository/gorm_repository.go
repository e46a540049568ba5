package repository

import (
	"errors"
	"time"

	weatherdomain "virtualgrow-server/internal/weather/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormWeatherRepository implements WeatherRepository using GORM
type gormWeatherRepository struct {
	db *gorm.DB
}

// NewWeatherRepository creates a new GORM-based WeatherRepository
func NewWeatherRepository(db *gorm.DB) WeatherRepository {
	return &gormWeatherRepository{db: db}
}

func (r *gormWeatherRepository) Create(record *weatherdomain.Weather) error {
	record.ID = uuid.New().String()
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now()
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()
	return r.db.Create(record).Error
}

func (r *gormWeatherRepository) FindByID(id string) (*weatherdomain.Weather, error) {
	var record weatherdomain.Weather
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *gormWeatherRepository) FindAll() ([]*weatherdomain.Weather, error) {
	var records []*weatherdomain.Weather
	err := r.db.Order("recorded_at DESC").Find(&records).Error
	return records, err
}

func (r *gormWeatherRepository) FindByGarden(gardenID string) ([]*weatherdomain.Weather, error) {
	var records []*weatherdomain.Weather
	err := r.db.Where("garden_id = ?", gardenID).Order("recorded_at DESC").Find(&records).Error
	return records, err
}

func (r *gormWeatherRepository) Update(record *weatherdomain.Weather) error {
	record.UpdatedAt = time.Now()
	return r.db.Save(record).Error
}

func (r *gormWeatherRepository) Delete(id string) error {
	return r.db.Delete(&weatherdomain.Weather{}, "id = ?", id).Error
}
