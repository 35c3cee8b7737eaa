package company

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sheikhBasit/carRental-sub002/availability"
	"github.com/sheikhBasit/carRental-sub002/db"
	"github.com/sheikhBasit/carRental-sub002/models"
	"github.com/sheikhBasit/carRental-sub002/utils"
)

// GetDrivers returns all drivers of the caller's company
func GetDrivers(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var drivers []models.Driver
	if err := db.DB.Preload("BlackoutPeriods").Where("company_id = ?", company.ID).Find(&drivers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch drivers",
		})
	}
	return c.JSON(drivers)
}

// AddDriver registers a driver with the company
func AddDriver(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	driver := new(models.Driver)
	if err := c.BodyParser(driver); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if driver.Name == "" || driver.LicenseNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Driver name and license number are required",
		})
	}
	if driver.DailyRate < 0 || driver.HourlyRate < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Driver rates must not be negative",
		})
	}
	if err := availability.ValidateWindow(driver.AvailableDays, driver.StartTime, driver.EndTime); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid weekly availability",
			Error:   err.Error(),
		})
	}
	driver.CompanyID = company.ID

	if err := db.DB.Create(driver).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to add driver",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(driver)
}

// UpdateDriver updates a driver's details, rates or weekly availability
func UpdateDriver(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	id := c.Params("id")
	var driver models.Driver
	if err := db.DB.Where("company_id = ?", company.ID).First(&driver, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Driver not found",
		})
	}

	updates := new(models.Driver)
	if err := c.BodyParser(updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	updates.ID = driver.ID
	updates.CompanyID = driver.CompanyID

	// Updates skips zero-valued fields, so validate the merged window that
	// will actually be stored.
	next := driver
	if updates.AvailableDays != "" {
		next.AvailableDays = updates.AvailableDays
	}
	if updates.StartTime != "" {
		next.StartTime = updates.StartTime
	}
	if updates.EndTime != "" {
		next.EndTime = updates.EndTime
	}
	if err := availability.ValidateWindow(next.AvailableDays, next.StartTime, next.EndTime); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid weekly availability",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&driver).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update driver",
		})
	}
	return c.JSON(driver)
}

// DeleteDriver removes a driver with no active bookings
func DeleteDriver(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	id := c.Params("id")
	var driver models.Driver
	if err := db.DB.Where("company_id = ?", company.ID).First(&driver, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Driver not found",
		})
	}

	var active int64
	db.DB.Model(&models.Booking{}).
		Where("driver_id = ? AND status IN ?", driver.ID, []models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Count(&active)
	if active > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Driver has active bookings and cannot be removed",
		})
	}

	if err := db.DB.Delete(&driver).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete driver",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadDriverPhoto uploads a driver photo to Cloudinary
func UploadDriverPhoto(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	id := c.Params("id")
	var driver models.Driver
	if err := db.DB.Where("company_id = ?", company.ID).First(&driver, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Driver not found",
		})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No photo uploaded",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("driver-%d", driver.ID), utils.FolderDrivers)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload photo",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&driver).Update("image_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save photo URL",
		})
	}
	return c.JSON(fiber.Map{"image_url": url})
}

// GetAvailableDrivers returns company drivers admissible for a requested
// interval, preserving fleet order.
func GetAvailableDrivers(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req availability.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking interval",
			Error:   err.Error(),
		})
	}

	var drivers []models.Driver
	if err := db.DB.Preload("BlackoutPeriods").Where("company_id = ?", company.ID).Find(&drivers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch drivers",
		})
	}

	pool := make([]*models.Driver, 0, len(drivers))
	for i := range drivers {
		pool = append(pool, &drivers[i])
	}
	admissible := availability.FilterAvailable(pool, req)

	return c.JSON(fiber.Map{
		"drivers": admissible,
		"count":   len(admissible),
	})
}

// AddDriverBlackout blocks a driver for an absolute period
func AddDriverBlackout(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	id := c.Params("id")
	var driver models.Driver
	if err := db.DB.Where("company_id = ?", company.ID).First(&driver, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Driver not found",
		})
	}

	type BlackoutInput struct {
		From    time.Time `json:"from"`
		To      time.Time `json:"to"`
		Remarks string    `json:"remarks"`
	}
	input := new(BlackoutInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if input.To.Before(input.From) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Blackout end must not precede its start",
		})
	}

	blackout := models.BlackoutPeriod{
		DriverID: &driver.ID,
		From:     input.From,
		To:       input.To,
		Remarks:  input.Remarks,
	}
	if err := db.DB.Create(&blackout).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add blackout period",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(blackout)
}

// RemoveDriverBlackout lifts a blackout period from a driver
func RemoveDriverBlackout(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var blackout models.BlackoutPeriod
	if err := db.DB.First(&blackout, c.Params("blackoutId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blackout period not found",
		})
	}
	if blackout.DriverID == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blackout period not found",
		})
	}

	var driver models.Driver
	if err := db.DB.Where("company_id = ?", company.ID).First(&driver, *blackout.DriverID).Error; err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Blackout period does not belong to your company",
		})
	}

	if err := db.DB.Delete(&blackout).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove blackout period",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
