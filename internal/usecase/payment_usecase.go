package usecase

import (
	"context"
	"errors"
	"net/http"
)

// 決済プロバイダへの約束。infra/paymentのStripeClientが実装する。
type PaymentIntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

// プロバイダがエラー応答を返したこと（通信自体は成功）を表す。
// infra側のクライアントのエラー型がこれを実装する。
type ProviderError interface {
	error
	ProviderMessage() string
}

type PaymentUsecase struct {
	intents PaymentIntentCreator
}

// DI
func NewPaymentUsecase(intents PaymentIntentCreator) *PaymentUsecase {
	return &PaymentUsecase{intents: intents}
}

type PaymentIntentOutput struct {
	ClientSecret string `json:"clientSecret"`
}

// 金額をプロバイダへ転送してclient secretだけを返す。
// 金額の上限下限チェックはしない（プロバイダに任せる）。リトライもしない。
func (u *PaymentUsecase) CreateIntent(ctx context.Context, amount int64) (PaymentIntentOutput, error) {
	secret, err := u.intents.CreatePaymentIntent(ctx, amount)
	if err != nil {
		// プロバイダが返したエラーはメッセージごと上流エラーとして伝える
		var pe ProviderError
		if errors.As(err, &pe) {
			return PaymentIntentOutput{}, NewHTTPError(http.StatusBadGateway, pe.ProviderMessage())
		}
		// タイムアウト・接続失敗など
		return PaymentIntentOutput{}, NewHTTPError(http.StatusBadGateway, "payment provider unavailable")
	}

	return PaymentIntentOutput{ClientSecret: secret}, nil
}
