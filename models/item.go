package models

import "gorm.io/gorm"

type Item struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Price       int64  `gorm:"not null"` // 最小通貨単位（セント）
	Image       string
	LargeImage  string
	UserID      uint `gorm:"not null;index"`
}
