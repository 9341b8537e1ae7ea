package server

import (
	"github.com/labstack/echo/v4"
)

// /api配下に各ハンドラのルートを登録する
func RegisterRoutes(e *echo.Echo, h Handlers) {
	api := e.Group("/api")

	h.Auth.RegisterRoutes(api)
	h.User.RegisterRoutes(api)
	h.Product.RegisterRoutes(api)
	h.Cart.RegisterRoutes(api)
	h.Wishlist.RegisterRoutes(api)
	h.Order.RegisterRoutes(api)
	h.Payment.RegisterRoutes(api)
}
