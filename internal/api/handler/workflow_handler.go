package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/suprimentos/requisition-system/internal/core/domain"
	"github.com/suprimentos/requisition-system/internal/core/ports"
)

// WorkflowHandler handles approval decisions and fulfillment tracking updates.
type WorkflowHandler struct {
	service ports.WorkflowService
}

func NewWorkflowHandler(service ports.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{service: service}
}

// Decide handles POST /requisicoes_decisao?id=.
//
// @Summary      Approve or reject a pending requisition
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    query     int              true  "Requisition id"
// @Param        body  body      decisionRequest  true  "Decision (APROVADA or REJEITADA) and optional comment"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /requisicoes_decisao [post]
func (h *WorkflowHandler) Decide(c echo.Context) error {
	id, err := requisitionID(c)
	if err != nil {
		return err
	}

	var req decisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados incompletos")
	}
	if req.Decisao == "" || req.UsuarioID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados incompletos")
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	input := ports.DecisionInput{
		RequisitionID: id,
		Decisao:       req.Decisao,
		Comentario:    req.Comentario,
		Actor:         actor,
	}
	if err := h.service.Decide(c.Request().Context(), input); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Decisão registrada com sucesso"})
}

// Track handles POST /requisicoes_acompanhamento?id=.
//
// @Summary      Record a fulfillment tracking update
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    query     int              true  "Requisition id"
// @Param        body  body      trackingRequest  true  "Target status plus optional supplier, PO number and ETA"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /requisicoes_acompanhamento [post]
func (h *WorkflowHandler) Track(c echo.Context) error {
	id, err := requisitionID(c)
	if err != nil {
		return err
	}

	var req trackingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados incompletos")
	}
	if req.Status == "" || req.UsuarioID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados incompletos")
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	input := ports.TrackingInput{
		RequisitionID:       id,
		Status:              req.Status,
		Fornecedor:          req.Fornecedor,
		NumeroPedido:        req.NumeroPedido,
		DataEntregaEstimada: req.DataEntregaEstimada,
		Actor:               actor,
	}
	if err := h.service.Track(c.Request().Context(), input); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Acompanhamento atualizado com sucesso"})
}

// requisitionID reads the mandatory id query parameter shared by both
// workflow endpoints.
func requisitionID(c echo.Context) (uint, error) {
	idParam := c.QueryParam("id")
	if idParam == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "ID da requisição não especificado")
	}
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		return 0, domain.ErrRequisitionNotFound
	}
	return uint(id), nil
}
