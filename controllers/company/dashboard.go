package company

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sheikhBasit/carRental-sub002/db"
	"github.com/sheikhBasit/carRental-sub002/models"
)

// GetDashboard returns booking counts, fleet size and completed revenue
// for the caller's company.
func GetDashboard(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var statistics struct {
		TotalBookings  int64     `json:"total_bookings"`
		PendingCount   int64     `json:"pending_count"`
		ConfirmedCount int64     `json:"confirmed_count"`
		CompletedCount int64     `json:"completed_count"`
		CanceledCount  int64     `json:"canceled_count"`
		TotalVehicles  int64     `json:"total_vehicles"`
		TotalDrivers   int64     `json:"total_drivers"`
		TotalRevenue   int64     `json:"total_revenue"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	bookingQuery := db.DB.Model(&models.Booking{}).Where("company_id = ?", company.ID)
	bookingQuery.Count(&statistics.TotalBookings)

	countByStatus := func(status models.BookingStatus, out *int64) {
		db.DB.Model(&models.Booking{}).
			Where("company_id = ? AND status = ?", company.ID, status).
			Count(out)
	}
	countByStatus(models.StatusPending, &statistics.PendingCount)
	countByStatus(models.StatusConfirmed, &statistics.ConfirmedCount)
	countByStatus(models.StatusCompleted, &statistics.CompletedCount)
	countByStatus(models.StatusCanceled, &statistics.CanceledCount)

	db.DB.Model(&models.Vehicle{}).Where("company_id = ?", company.ID).Count(&statistics.TotalVehicles)
	db.DB.Model(&models.Driver{}).Where("company_id = ?", company.ID).Count(&statistics.TotalDrivers)

	// Revenue counts only completed bookings
	var revenue struct {
		Total int64
	}
	db.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("company_id = ? AND status = ?", company.ID, models.StatusCompleted).
		Scan(&revenue)
	statistics.TotalRevenue = revenue.Total
	statistics.LastUpdated = time.Now()

	var recent []models.Booking
	db.DB.Preload("Vehicle").Preload("Renter").
		Where("company_id = ?", company.ID).
		Order("created_at DESC").Limit(5).Find(&recent)

	return c.JSON(fiber.Map{
		"statistics":      statistics,
		"recent_bookings": recent,
	})
}
