package delivery

import (
	"errors"
	"log"
	"net/http"

	plantdomain "virtualgrow-server/internal/plant/domain"
	"virtualgrow-server/internal/plant/usecase"

	"github.com/gin-gonic/gin"
)

// PlantHandler handles plant-related HTTP requests
type PlantHandler struct {
	plantUsecase usecase.PlantUsecase
}

// NewPlantHandler creates a new PlantHandler
func NewPlantHandler(plantUsecase usecase.PlantUsecase) *PlantHandler {
	return &PlantHandler{plantUsecase: plantUsecase}
}

// Create adds a plant to the catalog.
// POST /api/plants
func (h *PlantHandler) Create(c *gin.Context) {
	var plant plantdomain.Plant
	if err := c.ShouldBindJSON(&plant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.plantUsecase.Create(&plant)
	if err != nil {
		h.internalError(c, "Error creating plant", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetAll lists the plant catalog.
// GET /api/plants
func (h *PlantHandler) GetAll(c *gin.Context) {
	plants, err := h.plantUsecase.GetAll()
	if err != nil {
		h.internalError(c, "Error retrieving plants", err)
		return
	}

	c.JSON(http.StatusOK, plants)
}

// Search finds plants by name with typo tolerance.
// GET /api/plants/search?q=monstera
func (h *PlantHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	plants, err := h.plantUsecase.Search(query)
	if err != nil {
		h.internalError(c, "Error searching plants", err)
		return
	}

	c.JSON(http.StatusOK, plants)
}

// GetByID returns a single plant.
// GET /api/plants/:id
func (h *PlantHandler) GetByID(c *gin.Context) {
	plant, err := h.plantUsecase.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plant not found"})
			return
		}
		h.internalError(c, "Error retrieving plant", err)
		return
	}

	c.JSON(http.StatusOK, plant)
}

// Update replaces a plant's care profile.
// PUT /api/plants/:id
func (h *PlantHandler) Update(c *gin.Context) {
	var plant plantdomain.Plant
	if err := c.ShouldBindJSON(&plant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.plantUsecase.Update(c.Param("id"), &plant)
	if err != nil {
		if errors.Is(err, usecase.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plant not found"})
			return
		}
		h.internalError(c, "Error updating plant", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete removes a plant from the catalog.
// DELETE /api/plants/:id
func (h *PlantHandler) Delete(c *gin.Context) {
	if err := h.plantUsecase.Delete(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plant not found"})
			return
		}
		h.internalError(c, "Error deleting plant", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plant deleted successfully"})
}

func (h *PlantHandler) internalError(c *gin.Context, msg string, err error) {
	log.Printf("[Plant] %s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
