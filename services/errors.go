package services

import "errors"

var (
	// ErrUnauthenticated は有効な呼び出し元アイデンティティが無い場合に返される
	ErrUnauthenticated = errors.New("you must be signed in")

	// ErrForbidden は認証済みだが所有権・権限が不足している場合に返される
	ErrForbidden = errors.New("you don't have permission to do that")

	// ErrNotFound は参照されたエンティティが存在しない場合に返される
	ErrNotFound = errors.New("record not found")

	// ErrValidation は入力不正（パスワード確認不一致など）の場合に返される
	ErrValidation = errors.New("invalid input")

	// ErrInvalidCredentials はパスワード照合に失敗した場合に返される
	ErrInvalidCredentials = errors.New("invalid password")

	// ErrInvalidOrExpiredToken はリセットトークンが無効または期限切れの場合に返される
	ErrInvalidOrExpiredToken = errors.New("this token is either invalid or expired")

	// ErrPaymentFailed は決済ゲートウェイが課金を拒否した場合に返される
	ErrPaymentFailed = errors.New("payment failed")

	// ErrOrderPersistenceAfterCharge は課金成功後の注文永続化失敗を表す
	// 顧客は課金済みで注文が無い状態なので、汎用エラーに落とさず必ずこのエラーで通知する
	ErrOrderPersistenceAfterCharge = errors.New("charge succeeded but order could not be saved")
)
