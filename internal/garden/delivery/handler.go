package delivery

import (
	"errors"
	"log"
	"net/http"

	gardendomain "virtualgrow-server/internal/garden/domain"
	"virtualgrow-server/internal/garden/usecase"

	"github.com/gin-gonic/gin"
)

// GardenHandler handles garden-related HTTP requests
type GardenHandler struct {
	gardenUsecase usecase.GardenUsecase
}

// NewGardenHandler creates a new GardenHandler
func NewGardenHandler(gardenUsecase usecase.GardenUsecase) *GardenHandler {
	return &GardenHandler{gardenUsecase: gardenUsecase}
}

// CreateGardenRequest represents the request body for creating a garden
type CreateGardenRequest struct {
	Name     string  `json:"name" binding:"required"`
	Location string  `json:"location"`
	Size     float64 `json:"size" binding:"required,min=1"`
}

// UpdateGardenRequest represents the request body for updating a garden
type UpdateGardenRequest struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Size     float64 `json:"size"`
}

// Create creates a new garden owned by the authenticated user.
// POST /api/gardens
func (h *GardenHandler) Create(c *gin.Context) {
	var req CreateGardenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: name and size"})
		return
	}

	garden := &gardendomain.Garden{
		Name:      req.Name,
		Location:  req.Location,
		Size:      req.Size,
		CreatedBy: c.GetString("userID"),
	}

	created, err := h.gardenUsecase.Create(garden)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidGarden) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "Error creating garden", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetAll lists gardens; ?mine=true restricts to the caller's gardens.
// GET /api/gardens
func (h *GardenHandler) GetAll(c *gin.Context) {
	var (
		gardens []*gardendomain.Garden
		err     error
	)
	if c.Query("mine") == "true" {
		gardens, err = h.gardenUsecase.GetByOwner(c.GetString("userID"))
	} else {
		gardens, err = h.gardenUsecase.GetAll()
	}
	if err != nil {
		h.internalError(c, "Error retrieving gardens", err)
		return
	}

	c.JSON(http.StatusOK, gardens)
}

// GetByID returns a single garden with its plants.
// GET /api/gardens/:id
func (h *GardenHandler) GetByID(c *gin.Context) {
	garden, err := h.gardenUsecase.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrGardenNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Garden not found"})
			return
		}
		h.internalError(c, "Error retrieving garden", err)
		return
	}

	c.JSON(http.StatusOK, garden)
}

// Update changes a garden's name, location or size.
// PUT /api/gardens/:id
func (h *GardenHandler) Update(c *gin.Context) {
	var req UpdateGardenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	garden, err := h.gardenUsecase.Update(c.Param("id"), req.Name, req.Location, req.Size)
	if err != nil {
		if errors.Is(err, usecase.ErrGardenNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Garden not found"})
			return
		}
		h.internalError(c, "Error updating garden", err)
		return
	}

	c.JSON(http.StatusOK, garden)
}

// Delete removes a garden.
// DELETE /api/gardens/:id
func (h *GardenHandler) Delete(c *gin.Context) {
	if err := h.gardenUsecase.Delete(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrGardenNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Garden not found"})
			return
		}
		h.internalError(c, "Error deleting garden", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Garden deleted successfully"})
}

// AttachPlant adds a plant to a garden.
// POST /api/gardens/:id/plants/:plantId
func (h *GardenHandler) AttachPlant(c *gin.Context) {
	if err := h.gardenUsecase.AttachPlant(c.Param("id"), c.Param("plantId")); err != nil {
		if errors.Is(err, usecase.ErrGardenNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Garden not found"})
			return
		}
		h.internalError(c, "Error adding plant to garden", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plant added to garden"})
}

// DetachPlant removes a plant from a garden.
// DELETE /api/gardens/:id/plants/:plantId
func (h *GardenHandler) DetachPlant(c *gin.Context) {
	if err := h.gardenUsecase.DetachPlant(c.Param("id"), c.Param("plantId")); err != nil {
		if errors.Is(err, usecase.ErrGardenNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Garden not found"})
			return
		}
		h.internalError(c, "Error removing plant from garden", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plant removed from garden"})
}

func (h *GardenHandler) internalError(c *gin.Context, msg string, err error) {
	log.Printf("[Garden] %s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
