package payment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(srv *httptest.Server) *StripeClient {
	return &StripeClient{
		apiKey:   "sk_test_123",
		currency: "usd",
		baseURL:  srv.URL,
		http:     srv.Client(),
	}
}

func TestStripeClient_CreatePaymentIntent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "5000", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)

	secret, err := c.CreatePaymentIntent(context.Background(), 5000)
	assert.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", secret)
}

// Stripeがエラーを返したらメッセージ付きのAPIErrorにする
func TestStripeClient_CreatePaymentIntent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Amount must be at least 50 cents"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)

	_, err := c.CreatePaymentIntent(context.Background(), 1)

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Amount must be at least 50 cents", apiErr.Message)
}

// タイムアウトはAPIErrorではなく通信エラーとして返る（ハングしない）
func TestStripeClient_CreatePaymentIntent_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.http = &http.Client{Timeout: 20 * time.Millisecond}

	_, err := c.CreatePaymentIntent(context.Background(), 5000)
	assert.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestStripeClient_CreatePaymentIntent_MissingSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)

	_, err := c.CreatePaymentIntent(context.Background(), 5000)
	assert.Error(t, err)
}
