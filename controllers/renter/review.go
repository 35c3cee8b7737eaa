package renter

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sheikhBasit/carRental-sub002/db"
	"github.com/sheikhBasit/carRental-sub002/models"
	"github.com/sheikhBasit/carRental-sub002/utils"
)

// CreateReview posts a review for a vehicle. Reviews tied to a completed
// booking of the same vehicle are marked verified.
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	review := new(models.Review)
	if err := c.BodyParser(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	review.RenterID = userID

	var vehicle models.Vehicle
	if err := db.DB.First(&vehicle, review.VehicleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vehicle not found",
		})
	}

	exists, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this vehicle",
		})
	}

	var completed models.Booking
	if db.DB.Where("renter_id = ? AND vehicle_id = ? AND status = ?",
		userID, review.VehicleID, models.StatusCompleted).First(&completed).RowsAffected > 0 {
		review.IsVerified = true
		review.BookingID = &completed.ID
	}

	if err := db.DB.Create(review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetVehicleReviews returns all reviews for a vehicle
func GetVehicleReviews(c *fiber.Ctx) error {
	id := c.Params("id")
	var reviews []models.Review
	if err := db.DB.Preload("Renter").Where("vehicle_id = ?", id).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}
	for i := range reviews {
		reviews[i].Renter.Password = ""
		if reviews[i].IsAnonymous {
			reviews[i].Renter = models.User{}
		}
	}
	return c.JSON(reviews)
}

// DeleteReview removes one of the current user's reviews
func DeleteReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var review models.Review
	if err := db.DB.First(&review, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}
	if review.RenterID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not your review",
		})
	}

	if err := db.DB.Delete(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete review",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
