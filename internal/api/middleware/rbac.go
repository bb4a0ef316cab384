package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces access-level control based on the nivel claim injected by Auth.
func RBAC(allowedNiveis ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedNiveis))
	for _, n := range allowedNiveis {
		allowed[n] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nivel, _ := c.Get("nivel").(string)
			if _, ok := allowed[nivel]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "Acesso negado"})
			}
			return next(c)
		}
	}
}
