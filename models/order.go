package models

import "gorm.io/gorm"

type Order struct {
	gorm.Model
	UserID   uint        `gorm:"not null;index"`
	Total    int64       `gorm:"not null"` // ゲートウェイが返した決済額（最小通貨単位）
	ChargeID string      `gorm:"not null"`
	Items    []OrderItem `gorm:"constraint:OnDelete:CASCADE;"`
}

// OrderItem は購入時点のItemのスナップショット
// 元のItemへの参照は持たないため、後のItem編集・削除は過去の注文に影響しない
type OrderItem struct {
	gorm.Model
	OrderID     uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Price       int64  `gorm:"not null"`
	Image       string
	Quantity    int `gorm:"not null"`
}
