package db

import (
	"fmt"
	"log"

	"github.com/sheikhBasit/carRental-sub002/models"
)

// Migrate runs AutoMigrate for every model and seeds the fixed roles.
// Call after Init.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Company{},
		&models.Vehicle{},
		&models.Driver{},
		&models.BlackoutPeriod{},
		&models.Booking{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedRoles()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedRoles makes sure the three marketplace roles exist.
func seedRoles() {
	roles := []models.Role{
		{Name: "admin", Description: "Administrator with full access"},
		{Name: "company", Description: "Rental company managing a fleet and drivers"},
		{Name: "renter", Description: "Renter who books vehicles"},
	}
	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}
}
