package usecase

import (
	"errors"
	"time"

	weatherdomain "virtualgrow-server/internal/weather/domain"
	"virtualgrow-server/internal/weather/repository"
)

var (
	ErrWeatherNotFound  = errors.New("weather record not found")
	ErrInvalidWeather   = errors.New("missing required fields: garden, temperature, humidity and condition")
	ErrInvalidCondition = errors.New("unknown weather condition")
)

// WeatherUpdate carries a partial update; nil fields keep their stored
// values.
type WeatherUpdate struct {
	Temperature   *float64                 `json:"temperature"`
	Humidity      *float64                 `json:"humidity"`
	WindSpeed     *float64                 `json:"windSpeed"`
	Precipitation *float64                 `json:"precipitation"`
	Condition     *weatherdomain.Condition `json:"condition"`
	RecordedAt    *time.Time               `json:"recordedAt"`
}

// WeatherUsecase exposes weather record CRUD.
type WeatherUsecase interface {
	Create(record *weatherdomain.Weather) (*weatherdomain.Weather, error)
	GetByID(id string) (*weatherdomain.Weather, error)
	GetAll() ([]*weatherdomain.Weather, error)
	GetByGarden(gardenID string) ([]*weatherdomain.Weather, error)
	Update(id string, upd *WeatherUpdate) (*weatherdomain.Weather, error)
	Delete(id string) error
}

type weatherUsecase struct {
	weatherRepo repository.WeatherRepository
}

func NewWeatherUsecase(weatherRepo repository.WeatherRepository) WeatherUsecase {
	return &weatherUsecase{weatherRepo: weatherRepo}
}

func (u *weatherUsecase) Create(record *weatherdomain.Weather) (*weatherdomain.Weather, error) {
	if record.GardenID == "" || record.Condition == "" {
		return nil, ErrInvalidWeather
	}
	if !record.Condition.Valid() {
		return nil, ErrInvalidCondition
	}
	if err := u.weatherRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (u *weatherUsecase) GetByID(id string) (*weatherdomain.Weather, error) {
	record, err := u.weatherRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrWeatherNotFound
	}
	return record, nil
}

func (u *weatherUsecase) GetAll() ([]*weatherdomain.Weather, error) {
	return u.weatherRepo.FindAll()
}

func (u *weatherUsecase) GetByGarden(gardenID string) ([]*weatherdomain.Weather, error) {
	return u.weatherRepo.FindByGarden(gardenID)
}

func (u *weatherUsecase) Update(id string, upd *WeatherUpdate) (*weatherdomain.Weather, error) {
	record, err := u.weatherRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrWeatherNotFound
	}
	if upd.Condition != nil && !upd.Condition.Valid() {
		return nil, ErrInvalidCondition
	}

	if upd.Temperature != nil {
		record.Temperature = *upd.Temperature
	}
	if upd.Humidity != nil {
		record.Humidity = *upd.Humidity
	}
	if upd.WindSpeed != nil {
		record.WindSpeed = *upd.WindSpeed
	}
	if upd.Precipitation != nil {
		record.Precipitation = *upd.Precipitation
	}
	if upd.Condition != nil {
		record.Condition = *upd.Condition
	}
	if upd.RecordedAt != nil {
		record.RecordedAt = *upd.RecordedAt
	}

	if err := u.weatherRepo.Update(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (u *weatherUsecase) Delete(id string) error {
	record, err := u.weatherRepo.FindByID(id)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrWeatherNotFound
	}
	return u.weatherRepo.Delete(id)
}
