package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"luxestore/internal/infra/payment"
	"luxestore/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// StripeのエラーがProviderErrorを満たしていることの確認
var _ usecase.ProviderError = (*payment.APIError)(nil)

type intentCreatorStub struct {
	secret string
	err    error
}

func (s *intentCreatorStub) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.secret, nil
}

// プロバイダのエラー応答を表すスタブ（infraには依存しない）
type providerErrStub struct {
	msg string
}

func (e *providerErrStub) Error() string           { return "provider: " + e.msg }
func (e *providerErrStub) ProviderMessage() string { return e.msg }

func TestPaymentUsecase_CreateIntent_Success(t *testing.T) {
	uc := usecase.NewPaymentUsecase(&intentCreatorStub{secret: "pi_123_secret_abc"})

	out, err := uc.CreateIntent(context.Background(), 5000)
	assert.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", out.ClientSecret)
}

// プロバイダが返したエラーはメッセージごと502で伝える
func TestPaymentUsecase_CreateIntent_ProviderError(t *testing.T) {
	uc := usecase.NewPaymentUsecase(&intentCreatorStub{
		err: &providerErrStub{msg: "Amount must be at least 50 cents"},
	})

	_, err := uc.CreateIntent(context.Background(), 1)
	assertHTTPError(t, err, http.StatusBadGateway, "Amount must be at least 50 cents")
}

// ラップされていてもerrors.Asで拾える
func TestPaymentUsecase_CreateIntent_WrappedProviderError(t *testing.T) {
	wrapped := fmt.Errorf("create intent: %w", &providerErrStub{msg: "card declined"})
	uc := usecase.NewPaymentUsecase(&intentCreatorStub{err: wrapped})

	_, err := uc.CreateIntent(context.Background(), 5000)
	assertHTTPError(t, err, http.StatusBadGateway, "card declined")
}

// タイムアウトなど通信レベルの失敗は一律のメッセージ
func TestPaymentUsecase_CreateIntent_Unavailable(t *testing.T) {
	uc := usecase.NewPaymentUsecase(&intentCreatorStub{err: errors.New("dial tcp: timeout")})

	_, err := uc.CreateIntent(context.Background(), 5000)
	assertHTTPError(t, err, http.StatusBadGateway, "payment provider unavailable")
}
