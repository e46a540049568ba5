package usecase

import (
	"errors"
	"sort"

	plantdomain "virtualgrow-server/internal/plant/domain"
	"virtualgrow-server/internal/plant/repository"
	"virtualgrow-server/pkg/fuzzy"
)

var ErrPlantNotFound = errors.New("plant not found")

// PlantUsecase exposes plant catalog CRUD and typo-tolerant name search.
type PlantUsecase interface {
	Create(plant *plantdomain.Plant) (*plantdomain.Plant, error)
	GetByID(id string) (*plantdomain.Plant, error)
	GetAll() ([]*plantdomain.Plant, error)
	Update(id string, updated *plantdomain.Plant) (*plantdomain.Plant, error)
	Delete(id string) error
	Search(query string) ([]*plantdomain.Plant, error)
}

type plantUsecase struct {
	plantRepo repository.PlantRepository
}

func NewPlantUsecase(plantRepo repository.PlantRepository) PlantUsecase {
	return &plantUsecase{plantRepo: plantRepo}
}

func (u *plantUsecase) Create(plant *plantdomain.Plant) (*plantdomain.Plant, error) {
	if err := u.plantRepo.Create(plant); err != nil {
		return nil, err
	}
	return plant, nil
}

func (u *plantUsecase) GetByID(id string) (*plantdomain.Plant, error) {
	plant, err := u.plantRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, ErrPlantNotFound
	}
	return plant, nil
}

func (u *plantUsecase) GetAll() ([]*plantdomain.Plant, error) {
	return u.plantRepo.FindAll()
}

func (u *plantUsecase) Update(id string, updated *plantdomain.Plant) (*plantdomain.Plant, error) {
	plant, err := u.plantRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, ErrPlantNotFound
	}

	updated.ID = plant.ID
	if err := u.plantRepo.Update(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *plantUsecase) Delete(id string) error {
	plant, err := u.plantRepo.FindByID(id)
	if err != nil {
		return err
	}
	if plant == nil {
		return ErrPlantNotFound
	}
	return u.plantRepo.Delete(id)
}

// Search matches the query against common, scientific and family names with
// typo tolerance, ordered by relevance.
func (u *plantUsecase) Search(query string) ([]*plantdomain.Plant, error) {
	plants, err := u.plantRepo.FindAll()
	if err != nil {
		return nil, err
	}

	threshold := fuzzy.ThresholdFor(query)

	type scored struct {
		plant *plantdomain.Plant
		score float64
	}
	var matches []scored
	for _, p := range plants {
		if fuzzy.Match(query, p.CommonName, threshold) ||
			fuzzy.Match(query, p.ScientificName, threshold) ||
			fuzzy.Match(query, p.Family, threshold) {
			matches = append(matches, scored{
				plant: p,
				score: fuzzy.Score(query, p.CommonName, p.ScientificName, p.Family),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]*plantdomain.Plant, len(matches))
	for i, m := range matches {
		result[i] = m.plant
	}
	return result, nil
}
