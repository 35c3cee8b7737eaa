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

// GetFleet returns all vehicles of the caller's company
func GetFleet(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var vehicles []models.Vehicle
	if err := db.DB.Preload("BlackoutPeriods").Where("company_id = ?", company.ID).Find(&vehicles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch fleet",
		})
	}
	return c.JSON(vehicles)
}

// AddVehicle registers a vehicle in the company's fleet
func AddVehicle(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	vehicle := new(models.Vehicle)
	if err := c.BodyParser(vehicle); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if vehicle.RegistrationNumber == "" || vehicle.DailyRent <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Registration number and a positive daily rent are required",
		})
	}
	if err := availability.ValidateWindow(vehicle.AvailableDays, vehicle.StartTime, vehicle.EndTime); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid weekly availability",
			Error:   err.Error(),
		})
	}
	vehicle.CompanyID = company.ID
	if vehicle.City == "" {
		vehicle.City = company.City
	}

	if err := db.DB.Create(vehicle).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to add vehicle",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

// UpdateVehicle updates a vehicle's details or weekly availability
func UpdateVehicle(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	id := c.Params("id")
	var vehicle models.Vehicle
	if err := db.DB.Where("company_id = ?", company.ID).First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vehicle not found",
		})
	}

	updates := new(models.Vehicle)
	if err := c.BodyParser(updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	updates.ID = vehicle.ID
	updates.CompanyID = vehicle.CompanyID

	// Updates skips zero-valued fields, so validate the merged window that
	// will actually be stored.
	next := vehicle
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

	if err := db.DB.Model(&vehicle).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update vehicle",
		})
	}
	return c.JSON(vehicle)
}

// DeleteVehicle removes a vehicle that has no active bookings
func DeleteVehicle(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	id := c.Params("id")
	var vehicle models.Vehicle
	if err := db.DB.Where("company_id = ?", company.ID).First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vehicle not found",
		})
	}

	var active int64
	db.DB.Model(&models.Booking{}).
		Where("vehicle_id = ? AND status IN ?", vehicle.ID, []models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Count(&active)
	if active > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Vehicle has active bookings and cannot be removed",
		})
	}

	if err := db.DB.Delete(&vehicle).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete vehicle",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadVehicleImage uploads a vehicle photo to Cloudinary
func UploadVehicleImage(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	id := c.Params("id")
	var vehicle models.Vehicle
	if err := db.DB.Where("company_id = ?", company.ID).First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vehicle not found",
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image uploaded",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("vehicle-%d", vehicle.ID), utils.FolderVehicles)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&vehicle).Update("image_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save image URL",
		})
	}
	return c.JSON(fiber.Map{"image_url": url})
}

// AddVehicleBlackout blocks a vehicle for an absolute period
func AddVehicleBlackout(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	id := c.Params("id")
	var vehicle models.Vehicle
	if err := db.DB.Where("company_id = ?", company.ID).First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vehicle not found",
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
		VehicleID: &vehicle.ID,
		From:      input.From,
		To:        input.To,
		Remarks:   input.Remarks,
	}
	if err := db.DB.Create(&blackout).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add blackout period",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(blackout)
}

// RemoveVehicleBlackout lifts a blackout period from a vehicle
func RemoveVehicleBlackout(c *fiber.Ctx) error {
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
	if blackout.VehicleID == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blackout period not found",
		})
	}

	var vehicle models.Vehicle
	if err := db.DB.Where("company_id = ?", company.ID).First(&vehicle, *blackout.VehicleID).Error; err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Blackout does not belong to your fleet",
		})
	}

	if err := db.DB.Delete(&blackout).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove blackout period",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
