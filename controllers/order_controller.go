package controllers

import (
	"gin-storefront/constants"
	"gin-storefront/dto"
	"gin-storefront/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type IOrderController interface {
	Create(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
}

type OrderController struct {
	service services.IOrderService
}

func NewOrderController(service services.IOrderService) IOrderController {
	return &OrderController{service: service}
}

func (c *OrderController) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var input dto.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	order, err := c.service.CreateOrder(ctx.Request.Context(), user.ID, input.PaymentToken)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": order})
}

func (c *OrderController) FindAll(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	orders, err := c.service.FindByUser(user.ID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": orders})
}

func (c *OrderController) FindById(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	order, err := c.service.FindById(uint(orderID), user)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": order})
}
