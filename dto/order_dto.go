package dto

type CreateOrderInput struct {
	// 決済ゲートウェイが発行するワンタイムのカードトークン
	PaymentToken string `json:"paymentToken" binding:"required"`
}
