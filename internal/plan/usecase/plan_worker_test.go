package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	plandomain "virtualgrow-server/internal/plan/domain"
	"virtualgrow-server/pkg/ai"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlanRepo struct {
	mu    sync.Mutex
	tasks map[string]*plandomain.PlanTask
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{tasks: make(map[string]*plandomain.PlanTask)}
}

func (r *fakePlanRepo) Create(task *plandomain.PlanTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *fakePlanRepo) FindByID(id string) (*plandomain.PlanTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePlanRepo) FindAll() ([]*plandomain.PlanTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*plandomain.PlanTask, 0, len(r.tasks))
	for _, t := range r.tasks {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePlanRepo) FindByUser(userID string) ([]*plandomain.PlanTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*plandomain.PlanTask
	for _, t := range r.tasks {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) Update(task *plandomain.PlanTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *fakePlanRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}

// stubPlanner returns a canned layout or a canned error.
type stubPlanner struct {
	layout *ai.GardenLayout
	err    error
}

func (p *stubPlanner) GenerateGardenPlan(ctx context.Context, description string) (*ai.GardenLayout, error) {
	return p.layout, p.err
}

// waitForStatus polls until the task leaves Pending/Processing or the
// deadline passes.
func waitForStatus(t *testing.T, repo *fakePlanRepo, id string) *plandomain.PlanTask {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		task, err := repo.FindByID(id)
		require.NoError(t, err)
		require.NotNil(t, task)
		if task.Status == plandomain.StatusCompleted || task.Status == plandomain.StatusFailed {
			return task
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("task never settled")
	return nil
}

func TestGenerateLayout_CompletesTask(t *testing.T) {
	repo := newFakePlanRepo()
	planner := &stubPlanner{layout: &ai.GardenLayout{
		GardenZones:    map[string]string{"Bed A": "1m x 2m"},
		PlantPlacement: map[string][]string{"Bed A": {"basil"}},
	}}
	worker := NewPlanWorker(repo, planner, 1)
	worker.Start()
	defer worker.Stop()

	uc := NewPlanUsecase(repo, worker)
	task, err := uc.GenerateLayout("user-1", "garden-1", "herbs on a balcony")
	require.NoError(t, err)
	assert.Equal(t, plandomain.StatusPending, task.Status)
	assert.Equal(t, plandomain.TaskGardenLayout, task.Task)

	done := waitForStatus(t, repo, task.ID)
	assert.Equal(t, plandomain.StatusCompleted, done.Status)
	assert.Empty(t, done.Error)
	assert.Contains(t, string(done.Result), "Bed A")
}

func TestGenerateLayout_ProviderFailure(t *testing.T) {
	repo := newFakePlanRepo()
	planner := &stubPlanner{err: errors.New("model overloaded")}
	worker := NewPlanWorker(repo, planner, 1)
	worker.Start()
	defer worker.Stop()

	uc := NewPlanUsecase(repo, worker)
	task, err := uc.GenerateLayout("user-1", "", "anything")
	require.NoError(t, err)

	done := waitForStatus(t, repo, task.ID)
	assert.Equal(t, plandomain.StatusFailed, done.Status)
	assert.Equal(t, "model overloaded", done.Error)
}

func TestGenerateLayout_NoPlannerConfigured(t *testing.T) {
	repo := newFakePlanRepo()
	worker := NewPlanWorker(repo, nil, 1)
	worker.Start()
	defer worker.Stop()

	uc := NewPlanUsecase(repo, worker)
	task, err := uc.GenerateLayout("user-1", "", "anything")
	require.NoError(t, err)

	done := waitForStatus(t, repo, task.ID)
	assert.Equal(t, plandomain.StatusFailed, done.Status)
	assert.Contains(t, done.Error, "not configured")
}

func TestGenerateLayout_RequiresInput(t *testing.T) {
	repo := newFakePlanRepo()
	worker := NewPlanWorker(repo, nil, 1)
	uc := NewPlanUsecase(repo, worker)

	_, err := uc.GenerateLayout("", "", "desc")
	assert.ErrorIs(t, err, ErrInvalidPlan)
	_, err = uc.GenerateLayout("user-1", "garden-1", "")
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestPlanCRUD(t *testing.T) {
	repo := newFakePlanRepo()
	uc := NewPlanUsecase(repo, NewPlanWorker(repo, nil, 1))

	_, err := uc.Create(&plandomain.PlanTask{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidPlan)

	task, err := uc.Create(&plandomain.PlanTask{
		UserID:    "user-1",
		Task:      plandomain.TaskGardenLayout,
		InputType: plandomain.InputText,
		InputData: "a shade garden",
	})
	require.NoError(t, err)
	assert.Equal(t, plandomain.StatusPending, task.Status)

	got, err := uc.GetByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "a shade garden", got.InputData)

	_, err = uc.GetByID("missing")
	assert.ErrorIs(t, err, ErrPlanNotFound)

	_, err = uc.Update(task.ID, "", nil, plandomain.Status("Bogus"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := uc.Update(task.ID, "a sun garden", nil, plandomain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, "a sun garden", updated.InputData)
	assert.Equal(t, plandomain.StatusCompleted, updated.Status)

	mine, err := uc.GetByUser("user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	require.NoError(t, uc.Delete(task.ID))
	assert.ErrorIs(t, uc.Delete(task.ID), ErrPlanNotFound)
}
