package constants

// 決済
const (
	OrderCurrency = "usd"
)

// セッションクッキー
const (
	CredentialCookieName   = "token"
	CredentialMaxAgeInDays = 365
)

// エラーメッセージ
const (
	ErrItemNotFound = "Item not found"
	ErrUnexpected   = "Unexpected error"
	ErrInvalidID    = "Invalid id"
	ErrInvalidInput = "Invalid input"
)
