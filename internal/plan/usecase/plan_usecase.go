package usecase

import (
	"errors"

	plandomain "virtualgrow-server/internal/plan/domain"
	"virtualgrow-server/internal/plan/repository"

	"gorm.io/datatypes"
)

var (
	ErrPlanNotFound  = errors.New("plan task not found")
	ErrInvalidPlan   = errors.New("missing required fields: user, task, inputType and inputData")
	ErrInvalidStatus = errors.New("unknown task status")
)

// PlanUsecase exposes AI plan task CRUD plus asynchronous layout generation.
type PlanUsecase interface {
	Create(task *plandomain.PlanTask) (*plandomain.PlanTask, error)
	GetByID(id string) (*plandomain.PlanTask, error)
	GetAll() ([]*plandomain.PlanTask, error)
	GetByUser(userID string) ([]*plandomain.PlanTask, error)
	Update(id string, inputData string, result datatypes.JSON, status plandomain.Status) (*plandomain.PlanTask, error)
	Delete(id string) error
	GenerateLayout(userID, gardenID, inputData string) (*plandomain.PlanTask, error)
}

type planUsecase struct {
	planRepo repository.PlanRepository
	worker   *PlanWorker
}

// NewPlanUsecase wires the repository and the background layout worker.
func NewPlanUsecase(planRepo repository.PlanRepository, worker *PlanWorker) PlanUsecase {
	return &planUsecase{planRepo: planRepo, worker: worker}
}

func (u *planUsecase) Create(task *plandomain.PlanTask) (*plandomain.PlanTask, error) {
	if task.UserID == "" || task.InputData == "" || !task.Task.Valid() || !task.InputType.Valid() {
		return nil, ErrInvalidPlan
	}
	task.Status = plandomain.StatusPending
	if err := u.planRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *planUsecase) GetByID(id string) (*plandomain.PlanTask, error) {
	task, err := u.planRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrPlanNotFound
	}
	return task, nil
}

func (u *planUsecase) GetAll() ([]*plandomain.PlanTask, error) {
	return u.planRepo.FindAll()
}

func (u *planUsecase) GetByUser(userID string) ([]*plandomain.PlanTask, error) {
	return u.planRepo.FindByUser(userID)
}

// Update changes inputData, result and status only; ownership and kind are
// fixed at creation.
func (u *planUsecase) Update(id string, inputData string, result datatypes.JSON, status plandomain.Status) (*plandomain.PlanTask, error) {
	task, err := u.planRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrPlanNotFound
	}
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}

	if inputData != "" {
		task.InputData = inputData
	}
	if result != nil {
		task.Result = result
	}
	if status != "" {
		task.Status = status
	}

	if err := u.planRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *planUsecase) Delete(id string) error {
	task, err := u.planRepo.FindByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrPlanNotFound
	}
	return u.planRepo.Delete(id)
}

// GenerateLayout persists a GardenLayout task and queues it for the worker
// pool; the caller polls the task for the result.
func (u *planUsecase) GenerateLayout(userID, gardenID, inputData string) (*plandomain.PlanTask, error) {
	if userID == "" || inputData == "" {
		return nil, ErrInvalidPlan
	}

	task := &plandomain.PlanTask{
		UserID:    userID,
		GardenID:  gardenID,
		InputType: plandomain.InputText,
		InputData: inputData,
		Task:      plandomain.TaskGardenLayout,
		Status:    plandomain.StatusPending,
	}
	if err := u.planRepo.Create(task); err != nil {
		return nil, err
	}

	u.worker.Enqueue(PlanJob{TaskID: task.ID, Description: inputData})
	return task, nil
}
