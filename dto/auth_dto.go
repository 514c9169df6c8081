package dto

type SignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type SigninInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RequestPasswordResetInput struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordInput struct {
	ResetToken      string `json:"resetToken" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type UpdatePermissionsInput struct {
	Permissions []string `json:"permissions" binding:"required"`
}

type UserResponse struct {
	ID          uint     `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}
