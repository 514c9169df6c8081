package controllers

import (
	"bytes"
	"encoding/json"
	"gin-storefront/constants"
	"gin-storefront/middlewares"
	"gin-storefront/models"
	"gin-storefront/repositories"
	"gin-storefront/services"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubMailer struct{}

func (m *stubMailer) SendPasswordReset(to string, resetToken string) error {
	return nil
}

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	authService := services.NewAuthService(repositories.NewUserRepository(db), &stubMailer{})
	authController := NewAuthController(authService)

	r := gin.New()
	authRouter := r.Group("/auth")
	authRouter.POST("/signup", authController.Signup)
	authRouter.POST("/signin", authController.Signin)
	authRouter.POST("/signout", authController.Signout)
	authRouterWithAuth := r.Group("/auth", middlewares.AuthMiddleware(authService))
	authRouterWithAuth.GET("/me", authController.Me)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, cookie := range res.Cookies() {
		if cookie.Name == constants.CredentialCookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthController_SignupSetsCredentialCookie(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/auth/signup", gin.H{
		"email":    "alice@example.com",
		"name":     "Alice",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	cookie := sessionCookie(w.Result())
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int((constants.CredentialMaxAgeInDays * 24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestAuthController_SigninAndMe(t *testing.T) {
	r := setupAuthRouter(t)
	postJSON(t, r, "/auth/signup", gin.H{
		"email":    "bob@example.com",
		"name":     "Bob",
		"password": "password123",
	})

	w := postJSON(t, r, "/auth/signin", gin.H{
		"email":    "bob@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w.Result())
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(cookie)
	meRecorder := httptest.NewRecorder()
	r.ServeHTTP(meRecorder, req)
	assert.Equal(t, http.StatusOK, meRecorder.Code)
	assert.Contains(t, meRecorder.Body.String(), "bob@example.com")
}

func TestAuthController_SigninFailures(t *testing.T) {
	r := setupAuthRouter(t)
	postJSON(t, r, "/auth/signup", gin.H{
		"email":    "carol@example.com",
		"name":     "Carol",
		"password": "password123",
	})

	t.Run("unknown email", func(t *testing.T) {
		w := postJSON(t, r, "/auth/signin", gin.H{
			"email":    "nobody@example.com",
			"password": "password123",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postJSON(t, r, "/auth/signin", gin.H{
			"email":    "carol@example.com",
			"password": "wrongpassword",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthController_SignoutClearsCookie(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/auth/signout", gin.H{})
	assert.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w.Result())
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestAuthController_MeWithoutCredential(t *testing.T) {
	r := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
