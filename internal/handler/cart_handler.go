package handler

import (
	"net/http"
	"strconv"

	"luxestore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// /api/cart/... を登録
func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/cart/:userId", h.getCart)
	g.POST("/cart", h.addToCart)
	g.PUT("/cart/:id", h.updateQuantity)
	g.DELETE("/cart/:userId/:productId", h.remove)
}

func (h *CartHandler) getCart(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}

	out, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// 追加（同一商品は加算されたものが返る）
func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), usecase.AddCartInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// PUT /api/cart/:id?qty=N → 影響行数（0か1）を返す
func (h *CartHandler) updateQuantity(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	qty, err := strconv.ParseInt(c.QueryParam("qty"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid qty"})
	}

	count, err := h.uc.UpdateQuantity(c.Request().Context(), itemID, qty)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, count)
}

// 複合キー削除。無ければno-opで200。
func (h *CartHandler) remove(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
	}

	if err := h.uc.Remove(c.Request().Context(), userID, productID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusOK)
}
