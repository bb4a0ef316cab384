package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/suprimentos/requisition-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<mensagem>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404/405 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusMethodNotAllowed:
			return he.Code, "Método não permitido"
		case http.StatusNotFound:
			if he.Message == http.StatusText(http.StatusNotFound) {
				return he.Code, "Recurso não encontrado"
			}
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes.
	var mfe *domain.MissingFieldError
	if errors.As(err, &mfe) {
		return http.StatusBadRequest, mfe.Error()
	}

	switch {
	case errors.Is(err, domain.ErrIncompleteData):
		return http.StatusBadRequest, "Dados incompletos"
	case errors.Is(err, domain.ErrRequisitionNotFound):
		return http.StatusNotFound, "Requisição não encontrada"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuário não encontrado"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Usuário ou senha inválidos."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Acesso negado"
	case errors.Is(err, domain.ErrAlreadyDecided):
		return http.StatusConflict, "Requisição já possui decisão registrada"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, "Transição de status inválida"
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusUnprocessableEntity, "Status inválido"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Erro interno do servidor"
}
