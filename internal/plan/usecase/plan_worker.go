package usecase

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	plandomain "virtualgrow-server/internal/plan/domain"
	"virtualgrow-server/internal/plan/repository"
	"virtualgrow-server/pkg/ai"
)

// PlanJob is a queued layout-generation request.
type PlanJob struct {
	TaskID      string
	Description string
}

// PlanWorker generates garden layouts in the background so plan requests
// return immediately with a Pending task.
type PlanWorker struct {
	planRepo    repository.PlanRepository
	planner     ai.Planner
	jobQueue    chan PlanJob
	workerWg    sync.WaitGroup
	workerCount int
	started     bool
	mu          sync.Mutex
}

// NewPlanWorker creates a worker pool over the given repository and planner.
// The planner may be nil; queued jobs are then marked Failed.
func NewPlanWorker(planRepo repository.PlanRepository, planner ai.Planner, workerCount int) *PlanWorker {
	if workerCount <= 0 {
		workerCount = 3
	}
	return &PlanWorker{
		planRepo:    planRepo,
		planner:     planner,
		jobQueue:    make(chan PlanJob, 100),
		workerCount: workerCount,
	}
}

// Start starts the workers. Safe to call more than once.
func (w *PlanWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return
	}

	for i := 0; i < w.workerCount; i++ {
		w.workerWg.Add(1)
		go w.worker(i)
	}
	w.started = true
	log.Printf("[PlanWorker] Started %d workers", w.workerCount)
}

// Stop drains the queue and waits for all workers to finish.
func (w *PlanWorker) Stop() {
	close(w.jobQueue)
	w.workerWg.Wait()
	log.Println("[PlanWorker] All workers stopped")
}

// Enqueue queues a job. When the queue is full the task is marked Failed
// instead of blocking the request path.
func (w *PlanWorker) Enqueue(job PlanJob) {
	select {
	case w.jobQueue <- job:
	default:
		log.Printf("[PlanWorker] Queue full, failing task %s", job.TaskID)
		w.failTask(job.TaskID, "plan queue is full, try again later")
	}
}

func (w *PlanWorker) worker(id int) {
	defer w.workerWg.Done()

	for job := range w.jobQueue {
		w.processJob(job)
	}

	log.Printf("[PlanWorker] Worker %d stopped", id)
}

func (w *PlanWorker) processJob(job PlanJob) {
	task, err := w.planRepo.FindByID(job.TaskID)
	if err != nil || task == nil {
		log.Printf("[PlanWorker] Task %s no longer exists: %v", job.TaskID, err)
		return
	}

	if w.planner == nil {
		w.failTask(job.TaskID, "AI provider is not configured")
		return
	}

	task.Status = plandomain.StatusProcessing
	if err := w.planRepo.Update(task); err != nil {
		log.Printf("[PlanWorker] Error marking task %s processing: %v", job.TaskID, err)
		return
	}

	layout, err := w.planner.GenerateGardenPlan(context.Background(), job.Description)
	if err != nil {
		log.Printf("[PlanWorker] Generation failed for task %s: %v", job.TaskID, err)
		w.failTask(job.TaskID, err.Error())
		return
	}

	result, err := json.Marshal(layout)
	if err != nil {
		w.failTask(job.TaskID, err.Error())
		return
	}

	task.Result = result
	task.Status = plandomain.StatusCompleted
	task.Error = ""
	if err := w.planRepo.Update(task); err != nil {
		log.Printf("[PlanWorker] Error saving result for task %s: %v", job.TaskID, err)
	}
}

func (w *PlanWorker) failTask(taskID, reason string) {
	task, err := w.planRepo.FindByID(taskID)
	if err != nil || task == nil {
		return
	}
	task.Status = plandomain.StatusFailed
	task.Error = reason
	if err := w.planRepo.Update(task); err != nil {
		log.Printf("[PlanWorker] Error marking task %s failed: %v", taskID, err)
	}
}
