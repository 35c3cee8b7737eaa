package renter

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sheikhBasit/carRental-sub002/availability"
	"github.com/sheikhBasit/carRental-sub002/db"
	"github.com/sheikhBasit/carRental-sub002/models"
	"github.com/sheikhBasit/carRental-sub002/store"
	"github.com/sheikhBasit/carRental-sub002/utils"
)

// clampPagination parses page/limit query values, falling back to page 1
// and a 10-row limit for missing, malformed or non-positive values.
func clampPagination(pageStr, limitStr string) (int, int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

// GetAllVehicles returns vehicles, filtered to a city. The city comes from
// the query string, falling back to the caller's session context when
// authenticated.
func GetAllVehicles(c *fiber.Ctx) error {
	page, limit := clampPagination(c.Query("page", "1"), c.Query("limit", "10"))
	offset := (page - 1) * limit

	city := c.Query("city")
	if city == "" {
		if userID, ok := c.Locals("userID").(uint); ok {
			if session, err := store.Sessions.Load(c.Context(), userID); err == nil {
				city = session.City
			}
		}
	}

	query := db.DB.Model(&models.Vehicle{}).Preload("Company")
	if city != "" {
		query = query.Where("city = ?", city)
	}

	var vehicles []models.Vehicle
	if err := query.Limit(limit).Offset(offset).Find(&vehicles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch vehicles",
		})
	}

	var count int64
	countQuery := db.DB.Model(&models.Vehicle{})
	if city != "" {
		countQuery = countQuery.Where("city = ?", city)
	}
	countQuery.Count(&count)

	return c.JSON(fiber.Map{
		"vehicles": vehicles,
		"total":    count,
		"page":     page,
		"limit":    limit,
		"pages":    (int(count) + limit - 1) / limit,
	})
}

// GetVehicleDetails returns a vehicle with its company, schedule, blackout
// periods and reviews.
func GetVehicleDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var vehicle models.Vehicle
	if err := db.DB.Preload("Company").Preload("BlackoutPeriods").Preload("Reviews.Renter").First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vehicle not found",
		})
	}

	liked := false
	if userID, ok := c.Locals("userID").(uint); ok {
		liked, _ = store.Likes.Contains(c.Context(), userID, vehicle.ID)
	}

	return c.JSON(fiber.Map{
		"vehicle": vehicle,
		"liked":   liked,
	})
}

// SearchVehicles searches vehicles by manufacturer, model or company name
func SearchVehicles(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query is required",
		})
	}

	searchQuery := fmt.Sprintf("%%%s%%", query)

	var vehicles []models.Vehicle
	if err := db.DB.Preload("Company").
		Joins("LEFT JOIN companies ON vehicles.company_id = companies.id").
		Where("vehicles.manufacturer ILIKE ? OR vehicles.model_name ILIKE ? OR companies.name ILIKE ?",
			searchQuery, searchQuery, searchQuery).
		Group("vehicles.id").
		Find(&vehicles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search vehicles",
		})
	}

	return c.JSON(fiber.Map{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

// GetAvailableVehicles returns the vehicles admissible for a requested
// interval. The check is a UX pre-filter; booking creation re-evaluates.
func GetAvailableVehicles(c *fiber.Ctx) error {
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

	city := c.Query("city")
	query := db.DB.Preload("Company").Preload("BlackoutPeriods")
	if city != "" {
		query = query.Where("city = ?", city)
	}

	var vehicles []models.Vehicle
	if err := query.Find(&vehicles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch vehicles",
		})
	}

	pool := make([]*models.Vehicle, 0, len(vehicles))
	for i := range vehicles {
		pool = append(pool, &vehicles[i])
	}
	admissible := availability.FilterAvailable(pool, req)

	return c.JSON(fiber.Map{
		"vehicles": admissible,
		"count":    len(admissible),
	})
}

// ToggleLike flips the liked state of a vehicle for the current user
func ToggleLike(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	vehicleID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid vehicle id",
		})
	}

	var vehicle models.Vehicle
	if err := db.DB.First(&vehicle, vehicleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vehicle not found",
		})
	}

	liked, err := store.Likes.Toggle(c.Context(), userID, uint(vehicleID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update liked vehicles",
		})
	}

	return c.JSON(fiber.Map{
		"vehicle_id": vehicleID,
		"liked":      liked,
	})
}

// GetLikedVehicles returns the current user's liked vehicles
func GetLikedVehicles(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	ids, err := store.Likes.All(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch liked vehicles",
		})
	}
	if len(ids) == 0 {
		return c.JSON(fiber.Map{"vehicles": []models.Vehicle{}})
	}

	var vehicles []models.Vehicle
	if err := db.DB.Preload("Company").Where("id IN ?", ids).Find(&vehicles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch liked vehicles",
		})
	}

	return c.JSON(fiber.Map{"vehicles": vehicles})
}
