package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"gin-storefront/constants"
	"gin-storefront/dto"
	"gin-storefront/models"
	"gin-storefront/repositories"
	"log"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	resetTokenBytes  = 20
	resetTokenMaxAge = time.Hour
)

// CredentialWriter はトランスポート層のセッション資格情報の書き込み口
// リクエストごとに注入される（gin実装はcontrollersにある）
type CredentialWriter interface {
	SetCredential(token string, maxAge time.Duration)
	ClearCredential()
}

// ResetMailer はパスワードリセットメールの送信を抽象化する
type ResetMailer interface {
	SendPasswordReset(to string, resetToken string) error
}

type IAuthService interface {
	Signup(input dto.SignupInput, credentials CredentialWriter) (*models.User, error)
	Signin(email string, password string, credentials CredentialWriter) (*models.User, error)
	Signout(credentials CredentialWriter)
	RequestPasswordReset(email string) error
	ResetPassword(input dto.ResetPasswordInput, credentials CredentialWriter) (*models.User, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	UpdatePermissions(caller *models.User, targetUserID uint, permissions []string) (*models.User, error)
}

type AuthService struct {
	repository repositories.IUserRepository
	mailer     ResetMailer
}

func NewAuthService(repository repositories.IUserRepository, mailer ResetMailer) IAuthService {
	return &AuthService{
		repository: repository,
		mailer:     mailer,
	}
}

func (s *AuthService) Signup(input dto.SignupInput, credentials CredentialWriter) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:       strings.ToLower(input.Email),
		Name:        input.Name,
		Password:    string(hashedPassword),
		Permissions: models.PermissionList{models.PermissionUser},
	}
	if err := s.repository.Create(&user); err != nil {
		return nil, err
	}

	if err := s.issueCredential(&user, credentials); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Signin(email string, password string, credentials CredentialWriter) (*models.User, error) {
	foundUser, err := s.repository.FindByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no user found for email %s", ErrNotFound, strings.ToLower(email))
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.issueCredential(foundUser, credentials); err != nil {
		return nil, err
	}
	return foundUser, nil
}

// Signout は資格情報を無条件にクリアする（冪等、失敗しない）
func (s *AuthService) Signout(credentials CredentialWriter) {
	credentials.ClearCredential()
}

func (s *AuthService) RequestPasswordReset(email string) error {
	foundUser, err := s.repository.FindByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no user found for email %s", ErrNotFound, strings.ToLower(email))
		}
		return err
	}

	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	resetToken := hex.EncodeToString(buf)
	resetTokenExpiry := time.Now().Add(resetTokenMaxAge)

	// 既存の未使用トークンは上書きされる
	foundUser.ResetToken = &resetToken
	foundUser.ResetTokenExpiry = &resetTokenExpiry
	if err := s.repository.Update(foundUser); err != nil {
		return err
	}

	// 送信失敗は呼び出し元に伝えない（メールアドレスの存在が漏れるのを防ぐ）
	if err := s.mailer.SendPasswordReset(foundUser.Email, resetToken); err != nil {
		log.Printf("Failed to send password reset mail: %v", err)
	}
	return nil
}

func (s *AuthService) ResetPassword(input dto.ResetPasswordInput, credentials CredentialWriter) (*models.User, error) {
	// トークン照合より先に確認パスワードを検証する
	if input.Password != input.ConfirmPassword {
		return nil, fmt.Errorf("%w: your passwords don't match", ErrValidation)
	}

	// 保存された期限は発行時刻+1時間なので、now-1時間以降のものだけが有効
	cutoff := time.Now().Add(-resetTokenMaxAge)
	foundUser, err := s.repository.FindByResetToken(input.ResetToken, cutoff)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidOrExpiredToken
		}
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	foundUser.Password = string(hashedPassword)
	foundUser.ResetToken = nil
	foundUser.ResetTokenExpiry = nil
	if err := s.repository.Update(foundUser); err != nil {
		return nil, err
	}

	if err := s.issueCredential(foundUser, credentials); err != nil {
		return nil, err
	}
	return foundUser, nil
}

func (s *AuthService) issueCredential(user *models.User, credentials CredentialWriter) error {
	token, err := CreateToken(user.ID, user.Email)
	if err != nil {
		return err
	}
	credentials.SetCredential(*token, constants.CredentialMaxAgeInDays*24*time.Hour)
	return nil
}

func CreateToken(userID uint, email string) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(constants.CredentialMaxAgeInDays * 24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthenticated
	}
	if exp, ok := claims["exp"].(float64); ok && float64(time.Now().Unix()) > exp {
		return nil, jwt.ErrTokenExpired
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrUnauthenticated
	}
	user, err := s.repository.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// UpdatePermissions は権限集合を変更できる唯一の操作
// 呼び出し元はADMINまたはPERMISSIONUPDATEを保持していなければならない
func (s *AuthService) UpdatePermissions(caller *models.User, targetUserID uint, permissions []string) (*models.User, error) {
	if err := RequireAnyPermission(caller, models.PermissionAdmin, models.PermissionPermissionUpdate); err != nil {
		return nil, err
	}

	newPermissions := make(models.PermissionList, 0, len(permissions))
	for _, raw := range permissions {
		permission := models.Permission(raw)
		if !permission.IsValid() {
			return nil, fmt.Errorf("%w: unknown permission %s", ErrValidation, raw)
		}
		newPermissions = append(newPermissions, permission)
	}
	if len(newPermissions) == 0 {
		return nil, fmt.Errorf("%w: permission set must not be empty", ErrValidation)
	}

	targetUser, err := s.repository.FindByID(targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	targetUser.Permissions = newPermissions
	if err := s.repository.Update(targetUser); err != nil {
		return nil, err
	}
	return targetUser, nil
}
