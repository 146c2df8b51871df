package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"arboria/pkg/auth"
)

// Bearer extracts the caller's user ID from an Authorization header when one
// is present. Requests without a valid token pass through anonymously;
// authorization enforcement is out of scope.
func Bearer(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if h := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
				uid = auth.ParseToken(secret, strings.TrimPrefix(h, "Bearer "))
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
