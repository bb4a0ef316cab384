package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/suprimentos/requisition-system/internal/core/ports"
)

// ctxActor extracts the authenticated identity injected by the Auth
// middleware and performs a fast-fail check before any service call: a zero
// user id means the JWT is structurally valid but operationally unusable.
func ctxActor(c echo.Context) (ports.Actor, error) {
	id, _ := c.Get("user_id").(uint)
	if id == 0 {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Token inválido")
	}

	nome, _ := c.Get("nome").(string)
	nivel, _ := c.Get("nivel").(string)

	return ports.Actor{ID: id, Nome: nome, Nivel: nivel}, nil
}
