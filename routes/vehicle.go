package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sheikhBasit/carRental-sub002/controllers/renter"
	"github.com/sheikhBasit/carRental-sub002/middleware"
)

// SetupVehicleRoutes configures the public vehicle browsing routes
func SetupVehicleRoutes(app *fiber.App) {
	vehicles := app.Group("/vehicles")

	vehicles.Get("/", renter.GetAllVehicles)
	vehicles.Get("/search", renter.SearchVehicles)
	vehicles.Post("/available", renter.GetAvailableVehicles)
	vehicles.Get("/:id", renter.GetVehicleDetails)
	vehicles.Get("/:id/reviews", renter.GetVehicleReviews)

	// Likes need a signed-in user
	vehicles.Post("/:id/like", middleware.Protected(), renter.ToggleLike)
}
