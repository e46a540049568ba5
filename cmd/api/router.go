package api

import (
	"net/http"

	"virtualgrow-server/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authRequired := delivery.AuthMiddleware(h.tokens, h.config)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.authHandler.Signup)
			auth.POST("/login", h.authHandler.Login)
			auth.POST("/refresh-token", h.authHandler.RefreshToken)
			auth.POST("/logout", h.authHandler.Logout)
			auth.POST("/forgot-password", h.authHandler.ForgotPassword)
			auth.POST("/reset-password", h.authHandler.ResetPassword)
			auth.GET("/profile", authRequired, h.authHandler.Profile)
			auth.DELETE("/delete", authRequired, h.authHandler.DeleteAccount)
		}

		// Garden routes (protected)
		gardens := api.Group("/gardens")
		gardens.Use(authRequired)
		{
			gardens.POST("", h.gardenHandler.Create)
			gardens.GET("", h.gardenHandler.GetAll)
			gardens.GET("/:id", h.gardenHandler.GetByID)
			gardens.PUT("/:id", h.gardenHandler.Update)
			gardens.DELETE("/:id", h.gardenHandler.Delete)
			gardens.POST("/:id/plants/:plantId", h.gardenHandler.AttachPlant)
			gardens.DELETE("/:id/plants/:plantId", h.gardenHandler.DetachPlant)
		}

		// Plant catalog routes (protected)
		plants := api.Group("/plants")
		plants.Use(authRequired)
		{
			plants.POST("", h.plantHandler.Create)
			plants.GET("", h.plantHandler.GetAll)
			plants.GET("/search", h.plantHandler.Search)
			plants.GET("/:id", h.plantHandler.GetByID)
			plants.PUT("/:id", h.plantHandler.Update)
			plants.DELETE("/:id", h.plantHandler.Delete)
		}

		// Weather routes (protected)
		weather := api.Group("/weather")
		weather.Use(authRequired)
		{
			weather.POST("", h.weatherHandler.Create)
			weather.GET("", h.weatherHandler.GetAll)
			weather.GET("/:id", h.weatherHandler.GetByID)
			weather.PUT("/:id", h.weatherHandler.Update)
			weather.DELETE("/:id", h.weatherHandler.Delete)
		}

		// AI plan routes (protected)
		plans := api.Group("/plans")
		plans.Use(authRequired)
		{
			plans.POST("", h.planHandler.Create)
			plans.GET("", h.planHandler.GetAll)
			plans.POST("/garden-layout", h.planHandler.GenerateLayout)
			plans.GET("/:id", h.planHandler.GetByID)
			plans.PUT("/:id", h.planHandler.Update)
			plans.DELETE("/:id", h.planHandler.Delete)
		}
	}
}
