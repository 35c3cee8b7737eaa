package company

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/sheikhBasit/carRental-sub002/db"
	"github.com/sheikhBasit/carRental-sub002/models"
	"github.com/sheikhBasit/carRental-sub002/store"
	"github.com/sheikhBasit/carRental-sub002/utils"
)

// currentCompany resolves the caller's rental company, preferring the
// session context and falling back to an owner lookup.
func currentCompany(c *fiber.Ctx) (*models.Company, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fmt.Errorf("user ID not found in context")
	}

	var company models.Company
	if session, err := store.Sessions.Load(c.Context(), userID); err == nil && session.CompanyID != 0 {
		if err := db.DB.First(&company, session.CompanyID).Error; err == nil {
			return &company, nil
		}
	}
	if err := db.DB.Where("owner_id = ?", userID).First(&company).Error; err != nil {
		return nil, fmt.Errorf("no company registered for this account")
	}
	return &company, nil
}

// RegisterCompany creates the caller's rental company
func RegisterCompany(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	company := new(models.Company)
	if err := c.BodyParser(company); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if company.Name == "" || company.City == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Company name and city are required",
		})
	}

	var existing models.Company
	if db.DB.Where("owner_id = ?", userID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You already have a registered company",
		})
	}

	company.OwnerID = userID
	if err := db.DB.Create(company).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register company",
		})
	}

	// Keep the session context pointing at the new company.
	if session, err := store.Sessions.Load(c.Context(), userID); err == nil {
		session.CompanyID = company.ID
		store.Sessions.Save(c.Context(), session)
	}

	return c.Status(fiber.StatusCreated).JSON(company)
}

// GetCompany returns the caller's company with fleet and drivers
func GetCompany(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err := db.DB.Preload("Vehicles").Preload("Drivers").First(company, company.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load company",
		})
	}
	return c.JSON(company)
}

// UpdateCompany updates company details
func UpdateCompany(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	updates := new(models.Company)
	if err := c.BodyParser(updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	updates.ID = company.ID
	updates.OwnerID = company.OwnerID

	if err := db.DB.Model(company).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update company",
		})
	}
	return c.JSON(company)
}

// UploadLogo uploads the company logo to Cloudinary
func UploadLogo(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No logo uploaded",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("company-%d", company.ID), utils.FolderLogos)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload logo",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(company).Update("logo_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save logo URL",
		})
	}
	return c.JSON(fiber.Map{"logo_url": url})
}
