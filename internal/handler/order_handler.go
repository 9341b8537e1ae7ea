package handler

import (
	"net/http"
	"strconv"

	"luxestore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/ordersのHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type PlaceOrderItemRequest struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

// orderDateはリクエストに含まれていても無視する（サーバー時刻が正）
type PlaceOrderRequest struct {
	UserID int64                   `json:"userId"`
	Items  []PlaceOrderItemRequest `json:"items"`
}

// /api/orders/... を登録
func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/orders", h.place)
	g.GET("/orders/:userId", h.byUser)
}

func (h *OrderHandler) place(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	items := make([]usecase.PlaceOrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.PlaceOrderItemInput{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		UserID: req.UserID,
		Items:  items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) byUser(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}

	out, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
