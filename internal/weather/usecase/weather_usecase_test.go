package usecase

import (
	"sync"
	"testing"
	"time"

	weatherdomain "virtualgrow-server/internal/weather/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWeatherRepo struct {
	mu      sync.Mutex
	records map[string]*weatherdomain.Weather
}

func newFakeWeatherRepo() *fakeWeatherRepo {
	return &fakeWeatherRepo{records: make(map[string]*weatherdomain.Weather)}
}

func (r *fakeWeatherRepo) Create(record *weatherdomain.Weather) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	cp := *record
	r.records[record.ID] = &cp
	return nil
}

func (r *fakeWeatherRepo) FindByID(id string) (*weatherdomain.Weather, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[id]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeWeatherRepo) FindAll() ([]*weatherdomain.Weather, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*weatherdomain.Weather, 0, len(r.records))
	for _, rec := range r.records {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeWeatherRepo) FindByGarden(gardenID string) ([]*weatherdomain.Weather, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*weatherdomain.Weather
	for _, rec := range r.records {
		if rec.GardenID == gardenID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeWeatherRepo) Update(record *weatherdomain.Weather) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *record
	r.records[record.ID] = &cp
	return nil
}

func (r *fakeWeatherRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

func TestConditionValid(t *testing.T) {
	for _, c := range []weatherdomain.Condition{
		weatherdomain.ConditionSunny, weatherdomain.ConditionCloudy,
		weatherdomain.ConditionRainy, weatherdomain.ConditionSnowy,
		weatherdomain.ConditionWindy, weatherdomain.ConditionStormy,
		weatherdomain.ConditionFoggy, weatherdomain.ConditionOther,
	} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, weatherdomain.Condition("Drizzly").Valid())
	assert.False(t, weatherdomain.Condition("sunny").Valid(), "conditions are case-sensitive")
}

func TestWeatherCreate(t *testing.T) {
	uc := NewWeatherUsecase(newFakeWeatherRepo())

	_, err := uc.Create(&weatherdomain.Weather{Condition: weatherdomain.ConditionSunny})
	assert.ErrorIs(t, err, ErrInvalidWeather)

	_, err = uc.Create(&weatherdomain.Weather{GardenID: "garden-1", Condition: "Drizzly"})
	assert.ErrorIs(t, err, ErrInvalidCondition)

	rec, err := uc.Create(&weatherdomain.Weather{
		GardenID:    "garden-1",
		Temperature: 28.5,
		Humidity:    70,
		Condition:   weatherdomain.ConditionSunny,
		RecordedAt:  time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
}

func TestWeatherUpdateAndFilter(t *testing.T) {
	repo := newFakeWeatherRepo()
	uc := NewWeatherUsecase(repo)

	rec, err := uc.Create(&weatherdomain.Weather{
		GardenID: "garden-1", Temperature: 20, Humidity: 60,
		Condition: weatherdomain.ConditionCloudy,
	})
	require.NoError(t, err)
	_, err = uc.Create(&weatherdomain.Weather{
		GardenID: "garden-2", Temperature: 5, Humidity: 90,
		Condition: weatherdomain.ConditionRainy,
	})
	require.NoError(t, err)

	temp, humidity := 25.0, 55.0
	sunny := weatherdomain.ConditionSunny
	updated, err := uc.Update(rec.ID, &WeatherUpdate{
		Temperature: &temp, Humidity: &humidity, Condition: &sunny,
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.Temperature)
	assert.Equal(t, weatherdomain.ConditionSunny, updated.Condition)

	// A condition-only update keeps the stored measurements.
	rainy := weatherdomain.ConditionRainy
	updated, err = uc.Update(rec.ID, &WeatherUpdate{Condition: &rainy})
	require.NoError(t, err)
	assert.Equal(t, weatherdomain.ConditionRainy, updated.Condition)
	assert.Equal(t, 25.0, updated.Temperature)
	assert.Equal(t, 55.0, updated.Humidity)

	hailing := weatherdomain.Condition("Hailing")
	_, err = uc.Update(rec.ID, &WeatherUpdate{Condition: &hailing})
	assert.ErrorIs(t, err, ErrInvalidCondition)

	_, err = uc.Update("missing", &WeatherUpdate{})
	assert.ErrorIs(t, err, ErrWeatherNotFound)

	byGarden, err := uc.GetByGarden("garden-1")
	require.NoError(t, err)
	require.Len(t, byGarden, 1)
	assert.Equal(t, rec.ID, byGarden[0].ID)

	require.NoError(t, uc.Delete(rec.ID))
	assert.ErrorIs(t, uc.Delete(rec.ID), ErrWeatherNotFound)
}
