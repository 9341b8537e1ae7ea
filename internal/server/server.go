package server

import (
	"net/http"

	"luxestore/internal/config"
	"luxestore/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// 全ハンドラをまとめてDIする入れ物
type Handlers struct {
	Auth     RouteRegistrar
	User     RouteRegistrar
	Product  RouteRegistrar
	Cart     RouteRegistrar
	Wishlist RouteRegistrar
	Order    RouteRegistrar
	Payment  RouteRegistrar
}

type RouteRegistrar interface {
	RegisterRoutes(g *echo.Group)
}

// New はechoを組み立てる（起動はしない。テストでも使う）。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// CORSは設定されたフロントのオリジンだけ許可する
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	// 許可リスト外のルートはBearerトークン必須
	e.Use(middleware.RouteGuard(cfg))

	RegisterRoutes(e, h)
	return e
}

// Start はサーバーを起動する。
func Start(cfg config.Config, h Handlers) error {
	e := New(cfg, h)
	return e.Start(":" + cfg.Port)
}
