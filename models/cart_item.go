package models

import "gorm.io/gorm"

// CartItem は(ユーザー, 商品)ごとに最大1行
// 一意性はDB制約ではなくCartServiceのマージ処理で保証される
type CartItem struct {
	gorm.Model
	UserID   uint `gorm:"not null;index"`
	ItemID   uint `gorm:"not null;index"`
	Quantity int  `gorm:"not null;default:1"`
	Item     Item `gorm:"foreignKey:ItemID"`
}
