package models

import (
	"time"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Email          string    `json:"email" gorm:"unique"`
	Password       string    `json:"password,omitempty"`
	Phone          string    `json:"phone"`
	City           string    `json:"city"`
	LicenseNumber  string    `json:"license_number"`
	ProfilePicture string    `json:"profile_picture"`
	IsVerified     bool      `json:"is_verified"`
	RoleID         uint      `json:"role_id"`
	Role           Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Bookings       []Booking `json:"bookings,omitempty" gorm:"foreignKey:RenterID"`
	Reviews        []Review  `json:"reviews,omitempty" gorm:"foreignKey:RenterID"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
