package middleware

import (
	"strings"

	"luxestore/internal/config"

	"github.com/labstack/echo/v4"
)

// 公開ルートの許可リスト。
// ここに載っているprefixは認証なしで通し、それ以外はBearerトークン必須。
var publicPrefixes = []string{
	"/api/auth/",
	"/api/users/",
	"/api/products",
	"/api/cart",
	"/api/wishlist",
	"/api/orders",
	"/api/payment/",
}

func isPublicPath(path string) bool {
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RouteGuard はリクエストを許可リストで public / requires-auth に分類する。
// 許可リスト外はAuthJWTでトークン検証してから通す。
func RouteGuard(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		authed := AuthJWT(cfg)(next)

		return func(c echo.Context) error {
			if isPublicPath(c.Request().URL.Path) {
				return next(c)
			}
			return authed(c)
		}
	}
}
