package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/suprimentos/requisition-system/internal/core/domain"
	"github.com/suprimentos/requisition-system/internal/core/ports"
)

// RequisitionHandler handles HTTP requests for requisition CRUD operations.
type RequisitionHandler struct {
	service ports.RequisitionService
}

func NewRequisitionHandler(service ports.RequisitionService) *RequisitionHandler {
	return &RequisitionHandler{service: service}
}

// GetOrList dispatches GET /requisicoes. With an id query parameter it
// returns one fully hydrated requisition; without, the filtered list.
//
// @Summary      Fetch one requisition or list requisitions
// @Tags         requisicoes
// @Produce      json
// @Security     BearerAuth
// @Param        id       query     int     false  "Requisition id; when present, filters are ignored"
// @Param        status   query     string  false  "Exact status filter"
// @Param        search   query     string  false  "Substring match on titulo, descricao or requester name"
// @Param        user_id  query     int     false  "Match requisitions where the user is requester, approver or purchaser"
// @Success      200      {object}  requisitionResponse
// @Failure      404      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /requisicoes [get]
func (h *RequisitionHandler) GetOrList(c echo.Context) error {
	if idParam := c.QueryParam("id"); idParam != "" {
		id, err := strconv.ParseUint(idParam, 10, 32)
		if err != nil {
			// A non-numeric id cannot match any row.
			return domain.ErrRequisitionNotFound
		}

		requisition, err := h.service.Get(c.Request().Context(), uint(id))
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, toRequisitionResponse(requisition, true))
	}

	filter := ports.ListRequisitionsFilter{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	}
	if userParam := c.QueryParam("user_id"); userParam != "" {
		userID, err := strconv.ParseUint(userParam, 10, 32)
		if err == nil {
			filter.UserID = uint(userID)
		}
	}

	requisitions, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	out := make([]requisitionResponse, len(requisitions))
	for i, r := range requisitions {
		out[i] = toRequisitionResponse(r, false)
	}

	return c.JSON(http.StatusOK, out)
}

// Create handles POST /requisicoes.
//
// @Summary      Create a requisition
// @Tags         requisicoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRequisitionRequest  true  "Requisition data"
// @Success      201   {object}  createRequisitionResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /requisicoes [post]
func (h *RequisitionHandler) Create(c echo.Context) error {
	var req createRequisitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados incompletos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createRequisitionResponse{
		Message: "Requisição criada com sucesso",
		ID:      result.ID,
		Codigo:  result.Codigo,
	})
}

// Update handles PUT /requisicoes?id=.
//
// @Summary      Update a requisition and replace its item set
// @Tags         requisicoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    query     int                       true  "Requisition id"
// @Param        body  body      updateRequisitionRequest  true  "Requisition data"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /requisicoes [put]
func (h *RequisitionHandler) Update(c echo.Context) error {
	idParam := c.QueryParam("id")
	if idParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ID da requisição não especificado")
	}
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		return domain.ErrRequisitionNotFound
	}

	var req updateRequisitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados incompletos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// History attribution uses the authenticated identity, not the body.
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), uint(id), toUpdateInput(req, actor.ID)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Requisição atualizada com sucesso"})
}
