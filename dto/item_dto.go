package dto

type CreateItemInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Image       string `json:"image"`
	LargeImage  string `json:"largeImage"`
}

type UpdateItemInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" binding:"omitempty,min=1"`
	Image       *string `json:"image"`
	LargeImage  *string `json:"largeImage"`
}
