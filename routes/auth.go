package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sheikhBasit/carRental-sub002/controllers"
	"github.com/sheikhBasit/carRental-sub002/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Email verification
	auth.Post("/otp/send", middleware.Protected(), controllers.SendOTP)
	auth.Post("/otp/verify", middleware.Protected(), controllers.VerifyOTP)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
	auth.Get("/user/:id", middleware.Protected(), controllers.GetUserByID)
}
