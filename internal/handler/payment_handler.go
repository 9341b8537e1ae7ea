package handler

import (
	"net/http"

	"luxestore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/paymentのHTTP
type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

// DI
func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// amountは最小通貨単位（セント）
type CreatePaymentIntentRequest struct {
	Amount int64 `json:"amount"`
}

// /api/payment/... を登録
func (h *PaymentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/payment/create-payment-intent", h.createIntent)
}

func (h *PaymentHandler) createIntent(c echo.Context) error {
	var req CreatePaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateIntent(c.Request().Context(), req.Amount)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
