package company

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/sheikhBasit/carRental-sub002/db"
	"github.com/sheikhBasit/carRental-sub002/models"
	"github.com/sheikhBasit/carRental-sub002/payments"
	"github.com/sheikhBasit/carRental-sub002/utils"
)

// GetCompanyBookings lists bookings against the company's fleet,
// optionally filtered by ?status=
func GetCompanyBookings(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	query := db.DB.Preload("Vehicle").Preload("Driver").Preload("Renter").
		Where("company_id = ?", company.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}
	return c.JSON(bookings)
}

func companyBooking(c *fiber.Ctx) (*models.Booking, error) {
	company, err := currentCompany(c)
	if err != nil {
		return nil, err
	}
	var booking models.Booking
	if err := db.DB.Preload("Vehicle").Preload("Renter").Preload("Company.Owner").
		Where("company_id = ?", company.ID).First(&booking, c.Params("id")).Error; err != nil {
		return nil, fmt.Errorf("booking not found")
	}
	return &booking, nil
}

// ApproveBooking moves a pending booking to confirmed
func ApproveBooking(c *fiber.Ctx) error {
	booking, err := companyBooking(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := booking.UpdateStatus(db.DB, models.StatusConfirmed); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot approve booking",
			Error:   err.Error(),
		})
	}
	notifyRenter(booking, "confirmed")
	return c.JSON(booking)
}

// RejectBooking declines a pending booking and voids its payment intent
func RejectBooking(c *fiber.Ctx) error {
	booking, err := companyBooking(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if booking.Status != models.StatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Only pending bookings can be rejected",
		})
	}

	if booking.PaymentIntentID != "" {
		if err := payments.CancelIntent(booking.PaymentIntentID); err != nil {
			log.Printf("Failed to cancel payment intent %s: %v", booking.PaymentIntentID, err)
		}
	}

	if err := booking.UpdateStatus(db.DB, models.StatusCanceled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot reject booking",
			Error:   err.Error(),
		})
	}
	notifyRenter(booking, "declined by the company")
	return c.JSON(booking)
}

// CompleteBooking marks a confirmed booking completed after drop-off
func CompleteBooking(c *fiber.Ctx) error {
	booking, err := companyBooking(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := booking.UpdateStatus(db.DB, models.StatusCompleted); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot complete booking",
			Error:   err.Error(),
		})
	}
	notifyRenter(booking, "completed")
	return c.JSON(booking)
}

func notifyRenter(booking *models.Booking, status string) {
	body := fmt.Sprintf("<p>Dear %s,</p><p>Your booking %s for %s %s has been %s.</p>",
		booking.Renter.Name, booking.Code,
		booking.Vehicle.Manufacturer, booking.Vehicle.ModelName, status)
	if err := utils.SendEmail(booking.Renter.Email, fmt.Sprintf("Booking %s update", booking.Code), body); err != nil {
		log.Printf("Failed to send booking email to renter %s: %v", booking.Renter.Email, err)
	}
}
