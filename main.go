package main

import (
	"log"

	api "virtualgrow-server/cmd/api"
	authdomain "virtualgrow-server/internal/auth/domain"
	authRepo "virtualgrow-server/internal/auth/repository"
	authUsecase "virtualgrow-server/internal/auth/usecase"
	gardendomain "virtualgrow-server/internal/garden/domain"
	gardenRepo "virtualgrow-server/internal/garden/repository"
	gardenUsecase "virtualgrow-server/internal/garden/usecase"
	"virtualgrow-server/internal/notification"
	plandomain "virtualgrow-server/internal/plan/domain"
	planRepo "virtualgrow-server/internal/plan/repository"
	planUsecase "virtualgrow-server/internal/plan/usecase"
	plantdomain "virtualgrow-server/internal/plant/domain"
	plantRepo "virtualgrow-server/internal/plant/repository"
	plantUsecase "virtualgrow-server/internal/plant/usecase"
	weatherdomain "virtualgrow-server/internal/weather/domain"
	weatherRepo "virtualgrow-server/internal/weather/repository"
	weatherUsecase "virtualgrow-server/internal/weather/usecase"
	"virtualgrow-server/pkg/ai"
	"virtualgrow-server/pkg/config"
	"virtualgrow-server/pkg/crypto"
	"virtualgrow-server/pkg/database"
	"virtualgrow-server/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&plantdomain.Plant{},
		&gardendomain.Garden{},
		&weatherdomain.Weather{},
		&plandomain.PlanTask{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	gardenRepository := gardenRepo.NewGardenRepository(db)
	plantRepository := plantRepo.NewPlantRepository(db)
	weatherRepository := weatherRepo.NewWeatherRepository(db)
	planRepository := planRepo.NewPlanRepository(db)

	// Auth building blocks
	hasher := crypto.NewHasher(cfg.BcryptCost)
	tokens := token.NewIssuer(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)
	mailer := notification.NewMailer(cfg)

	// AI planner; layout tasks fail gracefully when no provider is available
	planner, err := ai.NewPlanner(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiAPIKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize AI planner: %v", err)
	} else {
		log.Printf("AI planner initialized with provider: %s", cfg.AIProvider)
	}

	// Background worker for layout generation
	planWorker := planUsecase.NewPlanWorker(planRepository, planner, 3)
	planWorker.Start()
	defer planWorker.Stop()

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepository, hasher, tokens, mailer, cfg)
	gardenUc := gardenUsecase.NewGardenUsecase(gardenRepository)
	plantUc := plantUsecase.NewPlantUsecase(plantRepository)
	weatherUc := weatherUsecase.NewWeatherUsecase(weatherRepository)
	planUc := planUsecase.NewPlanUsecase(planRepository, planWorker)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, gardenUc, plantUc, weatherUc, planUc, tokens, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
