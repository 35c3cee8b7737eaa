package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sheikhBasit/carRental-sub002/controllers/company"
	"github.com/sheikhBasit/carRental-sub002/middleware"
)

// SetupCompanyRoutes configures the rental company surface
func SetupCompanyRoutes(app *fiber.App) {
	co := app.Group("/company", middleware.Protected(), middleware.RequireRole("company"))

	// Company profile
	co.Post("/", company.RegisterCompany)
	co.Get("/", company.GetCompany)
	co.Put("/", company.UpdateCompany)
	co.Post("/logo", company.UploadLogo)
	co.Get("/dashboard", company.GetDashboard)

	// Fleet
	co.Get("/vehicles", company.GetFleet)
	co.Post("/vehicles", company.AddVehicle)
	co.Put("/vehicles/:id", company.UpdateVehicle)
	co.Delete("/vehicles/:id", company.DeleteVehicle)
	co.Post("/vehicles/:id/image", company.UploadVehicleImage)
	co.Post("/vehicles/:id/blackouts", company.AddVehicleBlackout)
	co.Delete("/vehicles/blackouts/:blackoutId", company.RemoveVehicleBlackout)

	// Drivers
	co.Get("/drivers", company.GetDrivers)
	co.Post("/drivers", company.AddDriver)
	co.Put("/drivers/:id", company.UpdateDriver)
	co.Delete("/drivers/:id", company.DeleteDriver)
	co.Post("/drivers/:id/photo", company.UploadDriverPhoto)
	co.Post("/drivers/available", company.GetAvailableDrivers)
	co.Post("/drivers/:id/blackouts", company.AddDriverBlackout)
	co.Delete("/drivers/blackouts/:blackoutId", company.RemoveDriverBlackout)

	// Bookings
	co.Get("/bookings", company.GetCompanyBookings)
	co.Post("/bookings/:id/approve", company.ApproveBooking)
	co.Post("/bookings/:id/reject", company.RejectBooking)
	co.Post("/bookings/:id/complete", company.CompleteBooking)
}
