package controllers

import (
	"gin-storefront/constants"
	"gin-storefront/dto"
	"gin-storefront/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ICartController interface {
	FindAll(ctx *gin.Context)
	Add(ctx *gin.Context)
	Remove(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
}

func NewCartController(service services.ICartService) ICartController {
	return &CartController{service: service}
}

func (c *CartController) FindAll(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	cartItems, err := c.service.FindByUser(user.ID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": cartItems})
}

func (c *CartController) Add(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var input dto.AddToCartInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	cartItem, err := c.service.AddToCart(user.ID, input.ItemID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": cartItem})
}

func (c *CartController) Remove(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	cartItemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	removedCartItem, err := c.service.RemoveFromCart(user.ID, uint(cartItemID))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": removedCartItem})
}
