package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/suprimentos/requisition-system/internal/api/metrics"
	"github.com/suprimentos/requisition-system/internal/core/domain"
	"github.com/suprimentos/requisition-system/internal/core/ports"
)

type RequisitionService struct {
	repo   ports.RequisitionRepository
	logger zerolog.Logger
}

func NewRequisitionService(repo ports.RequisitionRepository, logger zerolog.Logger) *RequisitionService {
	return &RequisitionService{repo: repo, logger: logger}
}

// Create validates required fields, builds the aggregate and persists it
// together with its item set and the "Criação" history row. The sequential
// RC-#### code is assigned by the repository inside the transaction.
func (s *RequisitionService) Create(ctx context.Context, input ports.CreateRequisitionInput) (*ports.CreateRequisitionResult, error) {
	if input.Titulo == "" {
		return nil, &domain.MissingFieldError{Field: "titulo"}
	}
	if input.SolicitanteID == 0 {
		return nil, &domain.MissingFieldError{Field: "solicitante_id"}
	}
	if input.AprovadorID == 0 {
		return nil, &domain.MissingFieldError{Field: "aprovador_id"}
	}

	status := domain.RequisitionStatus(input.Status)
	if status == "" {
		status = domain.StatusPendente
	}
	if status != domain.StatusRascunho && status != domain.StatusPendente {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	requisition := &domain.Requisition{
		Titulo:             input.Titulo,
		Descricao:          input.Descricao,
		CentroCusto:        input.CentroCusto,
		DataNecessidade:    input.DataNecessidade,
		FornecedorSugerido: input.FornecedorSugerido,
		Status:             status,
		SolicitanteID:      input.SolicitanteID,
		AprovadorID:        input.AprovadorID,
		CriadaEm:           now,
		AtualizadaEm:       now,
		Itens:              toItems(input.Itens),
	}

	event := &domain.HistoryEvent{
		UsuarioID: input.SolicitanteID,
		Acao:      domain.AcaoCriacao,
		Descricao: "Requisição criada",
		DataAcao:  now,
	}

	if err := s.repo.Create(ctx, requisition, event); err != nil {
		s.logger.Error().Err(err).Msg("failed to create requisition")
		return nil, err
	}

	metrics.RequisitionsCreatedTotal.WithLabelValues(string(status)).Inc()
	s.logger.Info().
		Str("codigo", requisition.Codigo).
		Uint("solicitante_id", input.SolicitanteID).
		Int("itens", len(requisition.Itens)).
		Msg("requisition created")

	return &ports.CreateRequisitionResult{ID: requisition.ID, Codigo: requisition.Codigo}, nil
}

// Update overwrites the editable fields and replaces the item set wholesale.
// Whether the requisition is in an editable state is a client-side rule and
// is deliberately not enforced here. Because the write is a full overwrite,
// status and aprovador_id are mandatory: accepting an absent status would
// persist an empty string outside the enum, and an absent aprovador_id would
// zero a not-null foreign key.
func (s *RequisitionService) Update(ctx context.Context, id uint, input ports.UpdateRequisitionInput) error {
	status := domain.RequisitionStatus(input.Status)
	if status == "" {
		return &domain.MissingFieldError{Field: "status"}
	}
	if !status.IsValid() {
		return domain.ErrInvalidStatus
	}
	if input.AprovadorID == 0 {
		return &domain.MissingFieldError{Field: "aprovador_id"}
	}

	now := time.Now().UTC()
	requisition := &domain.Requisition{
		ID:                 id,
		Titulo:             input.Titulo,
		Descricao:          input.Descricao,
		CentroCusto:        input.CentroCusto,
		DataNecessidade:    input.DataNecessidade,
		FornecedorSugerido: input.FornecedorSugerido,
		Status:             status,
		AprovadorID:        input.AprovadorID,
		AtualizadaEm:       now,
		Itens:              toItems(input.Itens),
	}

	event := &domain.HistoryEvent{
		RequisicaoID: id,
		UsuarioID:    input.ActorID,
		Acao:         domain.AcaoAtualizacao,
		Descricao:    "Requisição atualizada",
		DataAcao:     now,
	}

	if err := s.repo.Update(ctx, requisition, event); err != nil {
		return err
	}

	s.logger.Info().Uint("id", id).Uint("actor_id", input.ActorID).Msg("requisition updated")
	return nil
}

// Get hydrates a single requisition with items and full history.
func (s *RequisitionService) Get(ctx context.Context, id uint) (*domain.Requisition, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns requisitions matching the filter, newest first.
func (s *RequisitionService) List(ctx context.Context, filter ports.ListRequisitionsFilter) ([]*domain.Requisition, error) {
	return s.repo.List(ctx, filter)
}

func toItems(inputs []ports.ItemInput) []domain.RequisitionItem {
	items := make([]domain.RequisitionItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, domain.RequisitionItem{
			Descricao:     in.Descricao,
			Quantidade:    decimal.NewFromFloat(in.Quantidade),
			PrecoUnitario: decimal.NewFromFloat(in.PrecoUnitario),
			UnidadeMedida: in.UnidadeMedida,
		})
	}
	return items
}
