package repository

import plandomain "virtualgrow-server/internal/plan/domain"

// PlanRepository defines AI plan task data access. Lookups that find nothing
// return (nil, nil).
type PlanRepository interface {
	Create(task *plandomain.PlanTask) error
	FindByID(id string) (*plandomain.PlanTask, error)
	FindAll() ([]*plandomain.PlanTask, error)
	FindByUser(userID string) ([]*plandomain.PlanTask, error)
	Update(task *plandomain.PlanTask) error
	Delete(id string) error
}
