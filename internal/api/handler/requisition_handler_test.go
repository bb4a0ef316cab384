package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/suprimentos/requisition-system/internal/api/handler"
	"github.com/suprimentos/requisition-system/internal/core/domain"
	"github.com/suprimentos/requisition-system/internal/core/ports"
)

type stubRequisitionService struct {
	createFn func(ctx context.Context, input ports.CreateRequisitionInput) (*ports.CreateRequisitionResult, error)
	updateFn func(ctx context.Context, id uint, input ports.UpdateRequisitionInput) error
	getFn    func(ctx context.Context, id uint) (*domain.Requisition, error)
	listFn   func(ctx context.Context, filter ports.ListRequisitionsFilter) ([]*domain.Requisition, error)
}

func (s *stubRequisitionService) Create(ctx context.Context, input ports.CreateRequisitionInput) (*ports.CreateRequisitionResult, error) {
	return s.createFn(ctx, input)
}

func (s *stubRequisitionService) Update(ctx context.Context, id uint, input ports.UpdateRequisitionInput) error {
	return s.updateFn(ctx, id, input)
}

func (s *stubRequisitionService) Get(ctx context.Context, id uint) (*domain.Requisition, error) {
	return s.getFn(ctx, id)
}

func (s *stubRequisitionService) List(ctx context.Context, filter ports.ListRequisitionsFilter) ([]*domain.Requisition, error) {
	return s.listFn(ctx, filter)
}

func sampleRequisition() *domain.Requisition {
	created := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	return &domain.Requisition{
		ID:            12,
		Codigo:        "RC-0012",
		Titulo:        "Cadeiras de escritório",
		Status:        domain.StatusPendente,
		SolicitanteID: 1,
		AprovadorID:   2,
		CriadaEm:      created,
		AtualizadaEm:  created,
		Solicitante:   &domain.User{ID: 1, Nome: "João Silva"},
		Aprovador:     &domain.User{ID: 2, Nome: "Ana Souza"},
		Itens: []domain.RequisitionItem{
			{
				Descricao:     "Cadeira",
				Quantidade:    decimal.NewFromInt(5),
				PrecoUnitario: decimal.NewFromFloat(120.00),
				UnidadeMedida: "UN",
			},
		},
		Historico: []domain.HistoryEvent{
			{
				ID:           1,
				RequisicaoID: 12,
				UsuarioID:    1,
				Acao:         "Criação",
				Descricao:    "Requisição criada",
				DataAcao:     created,
				Usuario:      &domain.User{ID: 1, Nome: "João Silva"},
			},
		},
	}
}

func TestRequisitionHandler_GetByID(t *testing.T) {
	e := newTestEcho()
	stub := &stubRequisitionService{
		getFn: func(ctx context.Context, id uint) (*domain.Requisition, error) {
			if id != 12 {
				t.Fatalf("unexpected id: %d", id)
			}
			return sampleRequisition(), nil
		},
	}
	h := handler.NewRequisitionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/requisicoes?id=12", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetOrList(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if resp["codigo"] != "RC-0012" {
		t.Fatalf("unexpected codigo: %v", resp["codigo"])
	}
	if resp["solicitante_nome"] != "João Silva" {
		t.Fatalf("unexpected solicitante_nome: %v", resp["solicitante_nome"])
	}
	if resp["total"] != 600.0 {
		t.Fatalf("expected total 600, got %v", resp["total"])
	}

	historico, ok := resp["historico"].([]any)
	if !ok || len(historico) != 1 {
		t.Fatalf("expected one historico entry, got %v", resp["historico"])
	}
	first := historico[0].(map[string]any)
	if first["acao"] != "Criação" || first["usuario_nome"] != "João Silva" {
		t.Fatalf("unexpected historico entry: %+v", first)
	}
}

func TestRequisitionHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubRequisitionService{
		getFn: func(ctx context.Context, id uint) (*domain.Requisition, error) {
			return nil, domain.ErrRequisitionNotFound
		},
	}
	h := handler.NewRequisitionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/requisicoes?id=999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetOrList(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Requisição não encontrada" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestRequisitionHandler_Get_NonNumericID(t *testing.T) {
	e := newTestEcho()
	stub := &stubRequisitionService{
		getFn: func(ctx context.Context, id uint) (*domain.Requisition, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewRequisitionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/requisicoes?id=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetOrList(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRequisitionHandler_List_ForwardsFilters(t *testing.T) {
	e := newTestEcho()
	stub := &stubRequisitionService{
		listFn: func(ctx context.Context, filter ports.ListRequisitionsFilter) ([]*domain.Requisition, error) {
			if filter.Status != "Pendente" || filter.Search != "cadeira" || filter.UserID != 7 {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return []*domain.Requisition{sampleRequisition()}, nil
		},
	}
	h := handler.NewRequisitionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/requisicoes?status=Pendente&search=cadeira&user_id=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetOrList(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected one requisition, got %d", len(resp))
	}
	// List items omit the history to keep payloads small.
	if _, present := resp[0]["historico"]; present {
		t.Fatalf("historico should be omitted from list responses")
	}
}

func TestRequisitionHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubRequisitionService{
		createFn: func(ctx context.Context, input ports.CreateRequisitionInput) (*ports.CreateRequisitionResult, error) {
			if input.Titulo != "Cadeiras de escritório" || input.SolicitanteID != 1 || input.AprovadorID != 2 {
				t.Fatalf("unexpected input: %+v", input)
			}
			if len(input.Itens) != 1 || input.Itens[0].Quantidade != 5 {
				t.Fatalf("unexpected items: %+v", input.Itens)
			}
			return &ports.CreateRequisitionResult{ID: 12, Codigo: "RC-0012"}, nil
		},
	}
	h := handler.NewRequisitionHandler(stub)

	body := strings.NewReader(`{
		"titulo": "Cadeiras de escritório",
		"solicitante_id": 1,
		"aprovador_id": 2,
		"status": "Pendente",
		"itens": [{"descricao": "Cadeira", "quantidade": 5, "preco_unitario": 120.00, "unidade_medida": "UN"}]
	}`)
	req := httptest.NewRequest(http.MethodPost, "/requisicoes", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Requisição criada com sucesso" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["id"] != 12.0 || resp["codigo"] != "RC-0012" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestRequisitionHandler_Create_MissingField(t *testing.T) {
	e := newTestEcho()
	stub := &stubRequisitionService{
		createFn: func(ctx context.Context, input ports.CreateRequisitionInput) (*ports.CreateRequisitionResult, error) {
			return nil, &domain.MissingFieldError{Field: "titulo"}
		},
	}
	h := handler.NewRequisitionHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/requisicoes", strings.NewReader(`{"solicitante_id":1,"aprovador_id":2}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Campo obrigatório faltando: titulo" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestRequisitionHandler_Create_RejectsZeroQuantity(t *testing.T) {
	e := newTestEcho()
	stub := &stubRequisitionService{
		createFn: func(ctx context.Context, input ports.CreateRequisitionInput) (*ports.CreateRequisitionResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewRequisitionHandler(stub)

	body := strings.NewReader(`{"titulo":"Cadeiras","solicitante_id":1,"aprovador_id":2,"itens":[{"descricao":"Cadeira","quantidade":0,"preco_unitario":120.00,"unidade_medida":"UN"}]}`)
	req := httptest.NewRequest(http.MethodPost, "/requisicoes", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "quantidade deve ser maior que 0" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestRequisitionHandler_Update_MissingID(t *testing.T) {
	e := newTestEcho()
	stub := &stubRequisitionService{
		updateFn: func(ctx context.Context, id uint, input ports.UpdateRequisitionInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := handler.NewRequisitionHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/requisicoes", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Update(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "ID da requisição não especificado" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestRequisitionHandler_Update_AttributesActorFromToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubRequisitionService{
		updateFn: func(ctx context.Context, id uint, input ports.UpdateRequisitionInput) error {
			if id != 12 {
				t.Fatalf("unexpected id: %d", id)
			}
			if input.ActorID != 9 {
				t.Fatalf("expected actor from token, got %d", input.ActorID)
			}
			return nil
		},
	}
	h := handler.NewRequisitionHandler(stub)

	// Body carries user_id 1 but the session identity is user 9; the
	// history attribution must follow the session.
	body := strings.NewReader(`{"titulo":"Cadeiras","aprovador_id":2,"status":"Pendente","user_id":1}`)
	req := httptest.NewRequest(http.MethodPut, "/requisicoes?id=12", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(9))
	c.Set("nome", "Maria Lima")
	c.Set("nivel", "SOLICITANTE")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Requisição atualizada com sucesso" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}
