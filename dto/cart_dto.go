package dto

type AddToCartInput struct {
	ItemID uint `json:"itemId" binding:"required"`
}
