package models

import (
	"gorm.io/gorm"
)

// Company is a rental company: the provider side of the marketplace. Every
// vehicle and driver belongs to exactly one company.
type Company struct {
	gorm.Model
	OwnerID     uint      `json:"owner_id"`
	Owner       User      `json:"owner" gorm:"foreignKey:OwnerID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Province    string    `json:"province"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	LogoURL     string    `json:"logo_url"`
	Vehicles    []Vehicle `json:"vehicles,omitempty" gorm:"foreignKey:CompanyID"`
	Drivers     []Driver  `json:"drivers,omitempty" gorm:"foreignKey:CompanyID"`
}
