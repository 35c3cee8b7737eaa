package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sheikhBasit/carRental-sub002/availability"
	"github.com/sheikhBasit/carRental-sub002/db"
	"github.com/sheikhBasit/carRental-sub002/models"
	"github.com/sheikhBasit/carRental-sub002/payments"
	"github.com/sheikhBasit/carRental-sub002/utils"
)

// StartCronJobs initializes and starts the scheduler for booking upkeep
func StartCronJobs() {
	c := cron.New()

	// Pick-up reminders, checked hourly
	if _, err := c.AddFunc("0 * * * *", sendPickupReminders); err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	// Past drop-offs roll to completed
	if _, err := c.AddFunc("30 * * * *", completePastBookings); err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	// Abandoned payment sheets leave pending rows behind
	if _, err := c.AddFunc("*/15 * * * *", sweepOrphanedPending); err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started for booking upkeep")
}

// sendPickupReminders emails renters whose pick-up falls within the next day
func sendPickupReminders() {
	var bookings []models.Booking
	now := time.Now()

	err := db.DB.Preload("Renter").Preload("Vehicle").
		Where("status = ? AND from_date BETWEEN ? AND ?",
			models.StatusConfirmed, availability.DateOnly(now), availability.DateOnly(now.AddDate(0, 0, 1))).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		pickup := availability.At(booking.FromDate, booking.FromTime)
		if pickup.Before(now) || pickup.After(now.Add(24*time.Hour)) {
			continue
		}
		if err := sendReminderEmail(&booking, pickup); err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.Code, err)
			continue
		}
		log.Printf("Sent pick-up reminder for booking %s to %s", booking.Code, booking.Renter.Email)
	}
}

func sendReminderEmail(booking *models.Booking, pickup time.Time) error {
	subject := fmt.Sprintf("Reminder: Upcoming Pick-up - %s", booking.Code)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming vehicle pick-up.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Vehicle:</strong> %s %s</li>
			<li><strong>Pick-up:</strong> %s</li>
			<li><strong>Drop-off:</strong> %s %s</li>
		</ul>
		<p>Please arrive on time. If you need to cancel, do so at least 12 hours before pick-up.</p>
	`, booking.Renter.Name, booking.Vehicle.Manufacturer, booking.Vehicle.ModelName,
		pickup.Format("2006-01-02 15:04"),
		availability.FormatDate(booking.ToDate), booking.ToTime)

	return utils.SendEmail(booking.Renter.Email, subject, body)
}

// completePastBookings rolls confirmed bookings past their drop-off to completed
func completePastBookings() {
	var bookings []models.Booking
	err := db.DB.Where("status = ? AND to_date < ?",
		models.StatusConfirmed, availability.DateOnly(time.Now())).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for completion: %v", err)
		return
	}

	now := time.Now()
	for i := range bookings {
		booking := &bookings[i]
		if availability.At(booking.ToDate, booking.ToTime).After(now) {
			continue
		}
		if err := booking.UpdateStatus(db.DB, models.StatusCompleted); err != nil {
			log.Printf("Failed to complete booking %s: %v", booking.Code, err)
			continue
		}
		log.Printf("Completed booking %s", booking.Code)
	}
}

// sweepOrphanedPending deletes pending bookings whose payment sheet was
// never finished, voiding the payment intent first.
func sweepOrphanedPending() {
	var bookings []models.Booking
	cutoff := time.Now().Add(-30 * time.Minute)

	err := db.DB.Where("status = ? AND created_at < ?", models.StatusPending, cutoff).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching orphaned pending bookings: %v", err)
		return
	}

	for _, booking := range bookings {
		if booking.PaymentIntentID != "" {
			if err := payments.CancelIntent(booking.PaymentIntentID); err != nil {
				log.Printf("Failed to cancel payment intent %s: %v", booking.PaymentIntentID, err)
			}
		}
		if err := db.DB.Delete(&booking).Error; err != nil {
			log.Printf("Failed to delete orphaned booking %s: %v", booking.Code, err)
			continue
		}
		log.Printf("Removed orphaned pending booking %s", booking.Code)
	}
}
