package services

import (
	"context"
	"gin-storefront/models"
	"gin-storefront/payments"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, permissions ...models.Permission) *models.User {
	t.Helper()

	if len(permissions) == 0 {
		permissions = models.PermissionList{models.PermissionUser}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	user := models.User{
		Email:       email,
		Name:        "Test User",
		Password:    string(hashed),
		Permissions: permissions,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

// fakeCredentialWriter はCredentialWriterの呼び出しを記録する
type fakeCredentialWriter struct {
	setCalls   int
	clearCalls int
	lastToken  string
	lastMaxAge time.Duration
}

func (w *fakeCredentialWriter) SetCredential(token string, maxAge time.Duration) {
	w.setCalls++
	w.lastToken = token
	w.lastMaxAge = maxAge
}

func (w *fakeCredentialWriter) ClearCredential() {
	w.clearCalls++
}

// fakeMailer はResetMailerの呼び出しを記録する
type fakeMailer struct {
	SendFunc  func(to string, resetToken string) error
	calls     int
	lastTo    string
	lastToken string
}

func (m *fakeMailer) SendPasswordReset(to string, resetToken string) error {
	m.calls++
	m.lastTo = to
	m.lastToken = resetToken
	if m.SendFunc != nil {
		return m.SendFunc(to, resetToken)
	}
	return nil
}

// fakeCharger はpayments.Chargerの呼び出しを記録する
type fakeCharger struct {
	ChargeFunc   func(ctx context.Context, amount int64, currency string, sourceToken string) (*payments.Charge, error)
	calls        int
	lastAmount   int64
	lastCurrency string
}

func (c *fakeCharger) Charge(ctx context.Context, amount int64, currency string, sourceToken string) (*payments.Charge, error) {
	c.calls++
	c.lastAmount = amount
	c.lastCurrency = currency
	if c.ChargeFunc != nil {
		return c.ChargeFunc(ctx, amount, currency, sourceToken)
	}
	return &payments.Charge{ID: "ch_test", Amount: amount}, nil
}
