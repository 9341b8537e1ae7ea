package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"luxestore/internal/config"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.stripe.com"

// Stripeがエラーを返したとき（通信は成功している）
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stripe: %d: %s", e.StatusCode, e.Message)
}

// usecase側のProviderErrorを満たす
func (e *APIError) ProviderMessage() string {
	return e.Message
}

// PaymentIntents APIの薄いクライアント。
// 通貨と決済手段は設定で固定。リトライはしない（呼び出し側の責務）。
type StripeClient struct {
	apiKey   string
	currency string
	baseURL  string
	http     *http.Client
}

// DI
// タイムアウトは設定から。ハングせず上流エラーとして返す。
func NewStripeClient(cfg config.Config) *StripeClient {
	return &StripeClient{
		apiKey:   cfg.StripeSecretKey,
		currency: cfg.StripeCurrency,
		baseURL:  defaultBaseURL,
		http:     &http.Client{Timeout: cfg.PaymentTimeout},
	}
}

type intentResponse struct {
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// 金額（最小通貨単位）をStripeに転送してclient_secretを返す。
func (c *StripeClient) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", c.currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/payment_intents",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("stripe request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var body intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("stripe response decode failed: %w", err)
	}

	if resp.StatusCode >= 400 {
		msg := "payment intent creation failed"
		if body.Error != nil && body.Error.Message != "" {
			msg = body.Error.Message
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if body.ClientSecret == "" {
		return "", fmt.Errorf("stripe response missing client_secret")
	}

	return body.ClientSecret, nil
}
