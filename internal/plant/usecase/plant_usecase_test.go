package usecase

import (
	"sync"
	"testing"

	plantdomain "virtualgrow-server/internal/plant/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlantRepo struct {
	mu     sync.Mutex
	plants map[string]*plantdomain.Plant
}

func newFakePlantRepo() *fakePlantRepo {
	return &fakePlantRepo{plants: make(map[string]*plantdomain.Plant)}
}

func (r *fakePlantRepo) Create(plant *plantdomain.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if plant.ID == "" {
		plant.ID = uuid.New().String()
	}
	cp := *plant
	r.plants[plant.ID] = &cp
	return nil
}

func (r *fakePlantRepo) FindByID(id string) (*plantdomain.Plant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.plants[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePlantRepo) FindAll() ([]*plantdomain.Plant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*plantdomain.Plant, 0, len(r.plants))
	for _, p := range r.plants {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePlantRepo) Update(plant *plantdomain.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *plant
	r.plants[plant.ID] = &cp
	return nil
}

func (r *fakePlantRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.plants, id)
	return nil
}

func seedCatalog(t *testing.T, uc PlantUsecase) {
	t.Helper()
	for _, p := range []*plantdomain.Plant{
		{CommonName: "Sweet Basil", ScientificName: "Ocimum basilicum", Family: "Lamiaceae"},
		{CommonName: "Peppermint", ScientificName: "Mentha piperita", Family: "Lamiaceae"},
		{CommonName: "Tomato", ScientificName: "Solanum lycopersicum", Family: "Solanaceae"},
		{CommonName: "Snake Plant", ScientificName: "Dracaena trifasciata", Family: "Asparagaceae"},
	} {
		_, err := uc.Create(p)
		require.NoError(t, err)
	}
}

func TestPlantCRUD(t *testing.T) {
	uc := NewPlantUsecase(newFakePlantRepo())

	created, err := uc.Create(&plantdomain.Plant{CommonName: "Sweet Basil", Watering: "keep moist"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sweet Basil", got.CommonName)

	_, err = uc.GetByID("missing")
	assert.ErrorIs(t, err, ErrPlantNotFound)

	updated, err := uc.Update(created.ID, &plantdomain.Plant{CommonName: "Thai Basil"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Thai Basil", updated.CommonName)

	require.NoError(t, uc.Delete(created.ID))
	assert.ErrorIs(t, uc.Delete(created.ID), ErrPlantNotFound)
}

func TestPlantSearch(t *testing.T) {
	uc := NewPlantUsecase(newFakePlantRepo())
	seedCatalog(t, uc)

	tests := []struct {
		name      string
		query     string
		wantFirst string
		wantEmpty bool
	}{
		{"exact common name", "basil", "Sweet Basil", false},
		{"typo in common name", "bazil", "Sweet Basil", false},
		{"scientific name", "lycopersicum", "Tomato", false},
		{"family name", "lamiaceae", "", false},
		{"no match", "orchid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := uc.Search(tt.query)
			require.NoError(t, err)
			if tt.wantEmpty {
				assert.Empty(t, results)
				return
			}
			require.NotEmpty(t, results)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, results[0].CommonName)
			}
		})
	}

	// Family search reaches both mints.
	results, err := uc.Search("lamiaceae")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestPlantSearch_RanksCommonNameFirst(t *testing.T) {
	repo := newFakePlantRepo()
	uc := NewPlantUsecase(repo)

	_, err := uc.Create(&plantdomain.Plant{CommonName: "Garden Mint", ScientificName: "Mentha spicata", Family: "Lamiaceae"})
	require.NoError(t, err)
	_, err = uc.Create(&plantdomain.Plant{CommonName: "Basil", ScientificName: "Ocimum basilicum", Family: "Mint family"})
	require.NoError(t, err)

	results, err := uc.Search("mint")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Garden Mint", results[0].CommonName)
}
