package controllers

import (
	"gin-storefront/constants"
	"gin-storefront/dto"
	"gin-storefront/models"
	"gin-storefront/services"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Signin(ctx *gin.Context)
	Signout(ctx *gin.Context)
	RequestPasswordReset(ctx *gin.Context)
	ResetPassword(ctx *gin.Context)
	Me(ctx *gin.Context)
	UpdatePermissions(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func toUserResponse(user *models.User) dto.UserResponse {
	permissions := make([]string, 0, len(user.Permissions))
	for _, permission := range user.Permissions {
		permissions = append(permissions, string(permission))
	}
	return dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Permissions: permissions,
	}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.service.Signup(input, newCookieCredentialWriter(ctx))
	if err != nil {
		log.Printf("Signup error: %v", err)
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint") {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"data": toUserResponse(user)})
}

func (c *AuthController) Signin(ctx *gin.Context) {
	var input dto.SigninInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.service.Signin(input.Email, input.Password, newCookieCredentialWriter(ctx))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": toUserResponse(user)})
}

func (c *AuthController) Signout(ctx *gin.Context) {
	c.service.Signout(newCookieCredentialWriter(ctx))
	ctx.JSON(http.StatusOK, gin.H{"message": "Goodbye!"})
}

func (c *AuthController) RequestPasswordReset(ctx *gin.Context) {
	var input dto.RequestPasswordResetInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.service.RequestPasswordReset(input.Email); err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Check your email for a reset link"})
}

func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var input dto.ResetPasswordInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.service.ResetPassword(input, newCookieCredentialWriter(ctx))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": toUserResponse(user)})
}

func (c *AuthController) Me(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": toUserResponse(user)})
}

func (c *AuthController) UpdatePermissions(ctx *gin.Context) {
	caller, ok := currentUser(ctx)
	if !ok {
		return
	}

	targetUserID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.UpdatePermissionsInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	updatedUser, err := c.service.UpdatePermissions(caller, uint(targetUserID), input.Permissions)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": toUserResponse(updatedUser)})
}
