package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email            string         `gorm:"not null;unique"`
	Name             string         `gorm:"not null"`
	Password         string         `gorm:"not null"`
	Permissions      PermissionList `gorm:"type:text;not null;default:'USER'"`
	ResetToken       *string        `gorm:"index"`
	ResetTokenExpiry *time.Time
	Items            []Item         `gorm:"constraint:OnDelete:CASCADE;"`
	CartItems        []CartItem     `gorm:"constraint:OnDelete:CASCADE;"`
}
