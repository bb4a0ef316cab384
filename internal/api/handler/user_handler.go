package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/suprimentos/requisition-system/internal/core/ports"
)

// UserHandler serves the read-only user directory.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// List returns active users, optionally filtered by access level.
//
// @Summary      List active users
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        nivel  query     string  false  "Filter by access level (ADMIN, SOLICITANTE, APROVADOR, COMPRAS)"
// @Success      200    {array}   domain.User
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	nivel := c.QueryParam("nivel")

	users, err := h.authService.ListUsers(c.Request().Context(), nivel)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}
