// Package payments は外部決済ゲートウェイへのクライアントを実装する
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Charge はゲートウェイ側でキャプチャ済みの課金レコード
type Charge struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
}

// Charger は課金処理を抽象化する
// OrderServiceはこのインターフェースにのみ依存する
type Charger interface {
	Charge(ctx context.Context, amount int64, currency string, sourceToken string) (*Charge, error)
}

type Config struct {
	BaseURL   string
	SecretKey string
}

// NewConfigFromEnv は環境変数からゲートウェイ設定を読み込む
func NewConfigFromEnv() Config {
	return Config{
		BaseURL:   os.Getenv("PAYMENT_GATEWAY_URL"),
		SecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
	}
}

// HTTPGateway はCharger のHTTP実装
type HTTPGateway struct {
	cfg    Config
	client *http.Client
}

var _ Charger = (*HTTPGateway)(nil)

func NewHTTPGateway(cfg Config, client *http.Client) *HTTPGateway {
	return &HTTPGateway{cfg: cfg, client: client}
}

type chargeErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Charge はフォームエンコードで課金リクエストを送信する
// 金額は最小通貨単位の整数
func (g *HTTPGateway) Charge(ctx context.Context, amount int64, currency string, sourceToken string) (*Charge, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("source", sourceToken)

	u := fmt.Sprintf("%s/v1/charges", g.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+g.cfg.SecretKey)
	// 同一リクエストのネットワーク再送を重複課金にしないためのキー
	req.Header.Set("Idempotency-Key", uuid.NewString())

	res, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var body chargeErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Error.Message != "" {
			return nil, fmt.Errorf("gateway declined charge: %s", body.Error.Message)
		}
		return nil, fmt.Errorf("gateway http %d", res.StatusCode)
	}

	var charge Charge
	if err := json.NewDecoder(res.Body).Decode(&charge); err != nil {
		return nil, err
	}
	return &charge, nil
}
