package routes

import (
	"FoodForAll-Backend/internal/api/handlers"
	"FoodForAll-Backend/internal/middleware"
	"FoodForAll-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	DonationHandler    handlers.DonationHandler
	LeaderboardHandler handlers.LeaderboardHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Donations()
	c.Leaderboard()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Post("/profile-image", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadProfileImage)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations")

	// public explore surface
	donations.Get("", c.DonationHandler.GetFilteredDonations)
	donations.Get("/recent", c.DonationHandler.GetRecentDonations)
	donations.Get("/stats", c.DonationHandler.GetPlatformStats)

	// donor surface
	donations.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.DonationHandler.CreateDonation)
	donations.Get("/my", c.Middleware.AuthMiddleware(c.JWTService), c.DonationHandler.GetMyDonations)
	donations.Get("/dashboard", c.Middleware.AuthMiddleware(c.JWTService), c.DonationHandler.GetDashboardStats)
	donations.Get("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.DonationHandler.GetDonationByID)
}

func (c *Config) Leaderboard() {
	c.App.Get("/api/v1/leaderboard", c.LeaderboardHandler.GetLeaderboard)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}
