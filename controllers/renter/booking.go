package renter

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sheikhBasit/carRental-sub002/availability"
	"github.com/sheikhBasit/carRental-sub002/db"
	"github.com/sheikhBasit/carRental-sub002/models"
	"github.com/sheikhBasit/carRental-sub002/payments"
	"github.com/sheikhBasit/carRental-sub002/utils"
)

// BookingRequest is the renter's requested interval plus vehicle and
// optional driver selection.
type BookingRequest struct {
	VehicleID uint      `json:"vehicle_id"`
	DriverID  *uint     `json:"driver_id,omitempty"`
	FromDate  time.Time `json:"from_date"`
	ToDate    time.Time `json:"to_date"`
	FromTime  string    `json:"from_time"`
	ToTime    string    `json:"to_time"`
	Intercity bool      `json:"intercity"`
	CityName  string    `json:"city_name"`
}

func (r BookingRequest) interval() availability.Request {
	return availability.Request{
		FromDate: r.FromDate,
		ToDate:   r.ToDate,
		FromTime: r.FromTime,
		ToTime:   r.ToTime,
	}
}

// CreateBooking evaluates admissibility, prices the request, persists a
// pending booking and opens a Stripe PaymentIntent for it. The evaluator's
// verdict here is a UX pre-filter; the booking stays pending until the
// payment succeeds and the client confirms.
func CreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var req BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	interval := req.interval()
	if err := interval.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking interval",
			Error:   err.Error(),
		})
	}

	var vehicle models.Vehicle
	if err := db.DB.Preload("BlackoutPeriods").Preload("Company").First(&vehicle, req.VehicleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vehicle not found",
		})
	}

	if decision := availability.Evaluate(&vehicle, interval); !decision.Admissible {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":    "Vehicle is not available for the requested period",
			"reason":   decision.Reason,
			"detail":   decision.Detail,
			"conflict": decision.Conflict,
		})
	}

	var driver *models.Driver
	if req.DriverID != nil {
		driver = &models.Driver{}
		if err := db.DB.Preload("BlackoutPeriods").First(driver, *req.DriverID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Driver not found",
			})
		}
		if driver.CompanyID != vehicle.CompanyID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Driver does not belong to the vehicle's company",
			})
		}
		if decision := availability.Evaluate(driver, interval); !decision.Admissible {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":    "Driver is not available for the requested period",
				"reason":   decision.Reason,
				"detail":   decision.Detail,
				"conflict": decision.Conflict,
			})
		}
	}

	var rates *availability.DriverRates
	if driver != nil {
		r := driver.Rates()
		rates = &r
	}
	quote := availability.Price(interval, vehicle.DailyRent, rates)

	var renter models.User
	if err := db.DB.First(&renter, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Renter not found",
		})
	}

	booking := models.Booking{
		Code:          utils.GenerateBookingCode(),
		RenterID:      userID,
		VehicleID:     vehicle.ID,
		CompanyID:     vehicle.CompanyID,
		DriverID:      req.DriverID,
		FromDate:      req.FromDate,
		ToDate:        req.ToDate,
		FromTime:      req.FromTime,
		ToTime:        req.ToTime,
		Intercity:     req.Intercity,
		CityName:      req.CityName,
		BookedDays:    quote.Days,
		BookedHours:   quote.Hours,
		VehicleAmount: quote.VehicleAmount,
		DriverAmount:  quote.DriverAmount,
		TotalAmount:   quote.TotalAmount,
		Status:        models.StatusPending,
	}

	if err := db.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&booking).Error
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	intent, err := payments.CreateBookingIntent(booking.TotalAmount, "pkr", booking.Code, renter.Email)
	if err != nil {
		// Compensate: never leave a pending booking without a payment
		// attached to it.
		if delErr := db.DB.Delete(&booking).Error; delErr != nil {
			log.Printf("Failed to delete booking %s after payment error: %v", booking.Code, delErr)
		}
		return c.Status(fiber.StatusBadGateway).JSON(utils.ErrorResponse{
			Message: "Payment could not be initiated, please retry",
			Error:   err.Error(),
		})
	}

	booking.PaymentIntentID = intent.ID
	booking.PaymentStatus = string(intent.Status)
	if err := db.DB.Model(&booking).Updates(map[string]interface{}{
		"payment_intent_id": intent.ID,
		"payment_status":    string(intent.Status),
	}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to record payment intent",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking":       booking,
		"client_secret": intent.ClientSecret,
	})
}

// ConfirmBooking moves a pending booking to confirmed after the client
// reports a successful payment, and notifies both sides.
func ConfirmBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.Preload("Vehicle").Preload("Company.Owner").Preload("Renter").First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}
	if booking.RenterID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not your booking",
		})
	}

	if err := booking.UpdateStatus(db.DB, models.StatusConfirmed); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Booking cannot be confirmed",
			Error:   err.Error(),
		})
	}
	db.DB.Model(&booking).Update("payment_status", "succeeded")

	sendBookingEmails(&booking, "confirmed")

	return c.JSON(booking)
}

// PaymentCanceled is the compensating path for an abandoned payment sheet:
// the PaymentIntent is voided and the pending booking deleted so no
// orphaned pending record remains.
func PaymentCanceled(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}
	if booking.RenterID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not your booking",
		})
	}
	if booking.Status != models.StatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Only pending bookings can be abandoned",
		})
	}

	if booking.PaymentIntentID != "" {
		if err := payments.CancelIntent(booking.PaymentIntentID); err != nil {
			log.Printf("Failed to cancel payment intent %s: %v", booking.PaymentIntentID, err)
		}
	}

	if err := db.DB.Delete(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete pending booking",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CancelBooking cancels a confirmed booking and refunds the payment.
// Cancellations are only accepted more than 12 hours before pick-up.
func CancelBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.Preload("Vehicle").Preload("Company.Owner").Preload("Renter").First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}
	if booking.RenterID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not your booking",
		})
	}

	pickup := availability.At(booking.FromDate, booking.FromTime)
	if time.Until(pickup) < 12*time.Hour {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Bookings can only be canceled more than 12 hours before pick-up",
		})
	}

	if booking.Status == models.StatusConfirmed && booking.PaymentIntentID != "" {
		if err := payments.RefundIntent(booking.PaymentIntentID); err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(utils.ErrorResponse{
				Message: "Refund failed, please retry",
				Error:   err.Error(),
			})
		}
	}

	if err := booking.UpdateStatus(db.DB, models.StatusCanceled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Booking cannot be canceled",
			Error:   err.Error(),
		})
	}

	sendBookingEmails(&booking, "canceled")

	return c.JSON(booking)
}

// GetMyBookings returns the current user's bookings, optionally filtered
// by status.
func GetMyBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	query := db.DB.Preload("Vehicle").Preload("Driver").Preload("Company").
		Where("renter_id = ?", userID).
		Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}
	return c.JSON(bookings)
}

// GetBooking returns one of the current user's bookings
func GetBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.Preload("Vehicle").Preload("Driver").Preload("Company").First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}
	if booking.RenterID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not your booking",
		})
	}
	return c.JSON(booking)
}

func sendBookingEmails(booking *models.Booking, status string) {
	details := fmt.Sprintf(`
		<ul>
			<li><strong>Booking:</strong> %s</li>
			<li><strong>Vehicle:</strong> %s %s</li>
			<li><strong>Pick-up:</strong> %s %s</li>
			<li><strong>Drop-off:</strong> %s %s</li>
			<li><strong>Total:</strong> Rs %d</li>
		</ul>`,
		booking.Code, booking.Vehicle.Manufacturer, booking.Vehicle.ModelName,
		availability.FormatDate(booking.FromDate), booking.FromTime,
		availability.FormatDate(booking.ToDate), booking.ToTime,
		booking.TotalAmount)

	renterBody := fmt.Sprintf("<p>Dear %s,</p><p>Your booking has been %s.</p>%s", booking.Renter.Name, status, details)
	if err := utils.SendEmail(booking.Renter.Email, fmt.Sprintf("Booking %s %s", booking.Code, status), renterBody); err != nil {
		log.Printf("Failed to send booking email to renter %s: %v", booking.Renter.Email, err)
	}

	if booking.Company.Owner.Email != "" {
		ownerBody := fmt.Sprintf("<p>Dear %s,</p><p>Booking %s for your vehicle has been %s.</p>%s",
			booking.Company.Owner.Name, booking.Code, status, details)
		if err := utils.SendEmail(booking.Company.Owner.Email, fmt.Sprintf("Booking %s %s", booking.Code, status), ownerBody); err != nil {
			log.Printf("Failed to send booking email to company %s: %v", booking.Company.Owner.Email, err)
		}
	}
}
