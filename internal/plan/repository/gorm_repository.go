package repository

import (
	"errors"
	"time"

	plandomain "virtualgrow-server/internal/plan/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormPlanRepository implements PlanRepository using GORM
type gormPlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new GORM-based PlanRepository
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &gormPlanRepository{db: db}
}

func (r *gormPlanRepository) Create(task *plandomain.PlanTask) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormPlanRepository) FindByID(id string) (*plandomain.PlanTask, error) {
	var task plandomain.PlanTask
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormPlanRepository) FindAll() ([]*plandomain.PlanTask, error) {
	var tasks []*plandomain.PlanTask
	err := r.db.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *gormPlanRepository) FindByUser(userID string) ([]*plandomain.PlanTask, error) {
	var tasks []*plandomain.PlanTask
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *gormPlanRepository) Update(task *plandomain.PlanTask) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormPlanRepository) Delete(id string) error {
	return r.db.Delete(&plandomain.PlanTask{}, "id = ?", id).Error
}
