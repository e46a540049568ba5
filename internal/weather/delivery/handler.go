package delivery

import (
	"errors"
	"log"
	"net/http"

	weatherdomain "virtualgrow-server/internal/weather/domain"
	"virtualgrow-server/internal/weather/usecase"

	"github.com/gin-gonic/gin"
)

// WeatherHandler handles weather-related HTTP requests
type WeatherHandler struct {
	weatherUsecase usecase.WeatherUsecase
}

// NewWeatherHandler creates a new WeatherHandler
func NewWeatherHandler(weatherUsecase usecase.WeatherUsecase) *WeatherHandler {
	return &WeatherHandler{weatherUsecase: weatherUsecase}
}

// Create records a weather observation for a garden.
// POST /api/weather
func (h *WeatherHandler) Create(c *gin.Context) {
	var record weatherdomain.Weather
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.weatherUsecase.Create(&record)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidWeather) || errors.Is(err, usecase.ErrInvalidCondition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "Error creating weather record", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetAll lists weather records; ?garden=<id> restricts to one garden.
// GET /api/weather
func (h *WeatherHandler) GetAll(c *gin.Context) {
	var (
		records []*weatherdomain.Weather
		err     error
	)
	if gardenID := c.Query("garden"); gardenID != "" {
		records, err = h.weatherUsecase.GetByGarden(gardenID)
	} else {
		records, err = h.weatherUsecase.GetAll()
	}
	if err != nil {
		h.internalError(c, "Error retrieving weather records", err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetByID returns a single weather record.
// GET /api/weather/:id
func (h *WeatherHandler) GetByID(c *gin.Context) {
	record, err := h.weatherUsecase.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrWeatherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Weather record not found"})
			return
		}
		h.internalError(c, "Error retrieving weather record", err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Update changes a weather record's measurements. Fields absent from the
// body keep their stored values.
// PUT /api/weather/:id
func (h *WeatherHandler) Update(c *gin.Context) {
	var upd usecase.WeatherUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.weatherUsecase.Update(c.Param("id"), &upd)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrWeatherNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Weather record not found"})
		case errors.Is(err, usecase.ErrInvalidCondition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.internalError(c, "Error updating weather record", err)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete removes a weather record.
// DELETE /api/weather/:id
func (h *WeatherHandler) Delete(c *gin.Context) {
	if err := h.weatherUsecase.Delete(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrWeatherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Weather record not found"})
			return
		}
		h.internalError(c, "Error deleting weather record", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Weather record deleted successfully"})
}

func (h *WeatherHandler) internalError(c *gin.Context, msg string, err error) {
	log.Printf("[Weather] %s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
