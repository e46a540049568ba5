package delivery

import (
	"errors"
	"log"
	"net/http"

	plandomain "virtualgrow-server/internal/plan/domain"
	"virtualgrow-server/internal/plan/usecase"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// PlanHandler handles AI plan task HTTP requests
type PlanHandler struct {
	planUsecase usecase.PlanUsecase
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planUsecase usecase.PlanUsecase) *PlanHandler {
	return &PlanHandler{planUsecase: planUsecase}
}

// CreatePlanRequest represents the request body for creating a plan task
type CreatePlanRequest struct {
	GardenID  string `json:"garden"`
	Task      string `json:"task" binding:"required"`
	InputType string `json:"inputType" binding:"required"`
	InputData string `json:"inputData" binding:"required"`
}

// UpdatePlanRequest represents the request body for updating a plan task
type UpdatePlanRequest struct {
	InputData string         `json:"inputData"`
	Result    datatypes.JSON `json:"result"`
	Status    string         `json:"status"`
}

// GenerateLayoutRequest represents the request body for layout generation
type GenerateLayoutRequest struct {
	GardenID  string `json:"garden"`
	InputData string `json:"inputData" binding:"required"`
}

// Create stores a plan task for later processing.
// POST /api/plans
func (h *PlanHandler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: task, inputType and inputData"})
		return
	}

	task := &plandomain.PlanTask{
		UserID:    c.GetString("userID"),
		GardenID:  req.GardenID,
		InputType: plandomain.InputType(req.InputType),
		InputData: req.InputData,
		Task:      plandomain.TaskKind(req.Task),
	}

	created, err := h.planUsecase.Create(task)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPlan) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "Error creating AI task", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetAll lists plan tasks; ?mine=true restricts to the caller's tasks.
// GET /api/plans
func (h *PlanHandler) GetAll(c *gin.Context) {
	var (
		tasks []*plandomain.PlanTask
		err   error
	)
	if c.Query("mine") == "true" {
		tasks, err = h.planUsecase.GetByUser(c.GetString("userID"))
	} else {
		tasks, err = h.planUsecase.GetAll()
	}
	if err != nil {
		h.internalError(c, "Error retrieving AI tasks", err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetByID returns a single plan task with its result, if any.
// GET /api/plans/:id
func (h *PlanHandler) GetByID(c *gin.Context) {
	task, err := h.planUsecase.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "AI task not found"})
			return
		}
		h.internalError(c, "Error retrieving AI task", err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Update changes a plan task's input, result or status.
// PUT /api/plans/:id
func (h *PlanHandler) Update(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	task, err := h.planUsecase.Update(c.Param("id"), req.InputData, req.Result, plandomain.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "AI task not found"})
		case errors.Is(err, usecase.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.internalError(c, "Error updating AI task", err)
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// Delete removes a plan task.
// DELETE /api/plans/:id
func (h *PlanHandler) Delete(c *gin.Context) {
	if err := h.planUsecase.Delete(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "AI task not found"})
			return
		}
		h.internalError(c, "Error deleting AI task", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "AI task deleted successfully"})
}

// GenerateLayout queues an AI garden-layout generation and returns the
// pending task; clients poll GET /api/plans/:id for the result.
// POST /api/plans/garden-layout
func (h *PlanHandler) GenerateLayout(c *gin.Context) {
	var req GenerateLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: inputData"})
		return
	}

	task, err := h.planUsecase.GenerateLayout(c.GetString("userID"), req.GardenID, req.InputData)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPlan) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "Error generating garden layout", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Garden layout generation queued", "data": task})
}

func (h *PlanHandler) internalError(c *gin.Context, msg string, err error) {
	log.Printf("[Plan] %s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
