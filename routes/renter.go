package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sheikhBasit/carRental-sub002/controllers/renter"
	"github.com/sheikhBasit/carRental-sub002/middleware"
)

// SetupRenterRoutes configures the signed-in renter surface
func SetupRenterRoutes(app *fiber.App) {
	r := app.Group("/renter", middleware.Protected())

	// Profile and session
	r.Get("/profile", renter.GetProfile)
	r.Put("/profile", renter.UpdateProfile)
	r.Post("/profile/picture", renter.UploadProfilePicture)
	r.Get("/session", renter.GetSession)
	r.Put("/session", renter.UpdateSession)

	// Likes
	r.Get("/likes", renter.GetLikedVehicles)

	// Bookings
	r.Post("/bookings", middleware.RequirePermission("bookings", "create"), renter.CreateBooking)
	r.Get("/bookings", renter.GetMyBookings)
	r.Get("/bookings/:id", renter.GetBooking)
	r.Post("/bookings/:id/confirm", renter.ConfirmBooking)
	r.Post("/bookings/:id/payment-canceled", renter.PaymentCanceled)
	r.Post("/bookings/:id/cancel", renter.CancelBooking)

	// Reviews
	r.Post("/reviews", renter.CreateReview)
	r.Delete("/reviews/:id", renter.DeleteReview)
}
