package config

import (
	"FoodForAll-Backend/internal/api/handlers"
	"FoodForAll-Backend/internal/api/routes"
	"FoodForAll-Backend/internal/middleware"
	"FoodForAll-Backend/internal/utils"
	"FoodForAll-Backend/internal/utils/storage"
	"FoodForAll-Backend/pkg/donation"
	"FoodForAll-Backend/pkg/jwt"
	"FoodForAll-Backend/pkg/leaderboard"
	"FoodForAll-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	leaderboardRepository := leaderboard.NewLeaderboardRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	donationService := donation.NewDonationService(donationRepository, s3)
	leaderboardService := leaderboard.NewLeaderboardService(leaderboardRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator, jwtService)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		DonationHandler:    donationHandler,
		LeaderboardHandler: leaderboardHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
