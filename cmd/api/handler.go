package api

import (
	authDelivery "virtualgrow-server/internal/auth/delivery"
	authUsecase "virtualgrow-server/internal/auth/usecase"
	gardenDelivery "virtualgrow-server/internal/garden/delivery"
	gardenUsecase "virtualgrow-server/internal/garden/usecase"
	planDelivery "virtualgrow-server/internal/plan/delivery"
	planUsecase "virtualgrow-server/internal/plan/usecase"
	plantDelivery "virtualgrow-server/internal/plant/delivery"
	plantUsecase "virtualgrow-server/internal/plant/usecase"
	weatherDelivery "virtualgrow-server/internal/weather/delivery"
	weatherUsecase "virtualgrow-server/internal/weather/usecase"
	"virtualgrow-server/pkg/config"
	"virtualgrow-server/pkg/token"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authHandler    *authDelivery.AuthHandler
	gardenHandler  *gardenDelivery.GardenHandler
	plantHandler   *plantDelivery.PlantHandler
	weatherHandler *weatherDelivery.WeatherHandler
	planHandler    *planDelivery.PlanHandler
	tokens         *token.Issuer
	config         *config.Config
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	gardenUc gardenUsecase.GardenUsecase,
	plantUc plantUsecase.PlantUsecase,
	weatherUc weatherUsecase.WeatherUsecase,
	planUc planUsecase.PlanUsecase,
	tokens *token.Issuer,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authHandler:    authDelivery.NewAuthHandler(authUc, cfg),
		gardenHandler:  gardenDelivery.NewGardenHandler(gardenUc),
		plantHandler:   plantDelivery.NewPlantHandler(plantUc),
		weatherHandler: weatherDelivery.NewWeatherHandler(weatherUc),
		planHandler:    planDelivery.NewPlanHandler(planUc),
		tokens:         tokens,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", h.config.FrontendURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
