package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/suprimentos/requisition-system/internal/api/metrics"
	"github.com/suprimentos/requisition-system/internal/core/domain"
	"github.com/suprimentos/requisition-system/internal/core/ports"
)

// DedupChecker abstracts the tracking-update idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, requisitionID uint, status string) (bool, error)
	Mark(ctx context.Context, requisitionID uint, status string) error
}

type workflowService struct {
	repo     ports.RequisitionRepository
	userRepo ports.UserRepository
	dedup    DedupChecker
	log      zerolog.Logger
}

// NewWorkflowService returns a WorkflowService implementation.
func NewWorkflowService(
	repo ports.RequisitionRepository,
	userRepo ports.UserRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.WorkflowService {
	return &workflowService{
		repo:     repo,
		userRepo: userRepo,
		dedup:    dedup,
		log:      log,
	}
}

// Decide applies an approval decision. The status update is conditional on
// the requisition still being Pendente, so two approvers racing on the same
// requisition cannot both succeed.
func (s *workflowService) Decide(ctx context.Context, in ports.DecisionInput) error {
	if in.Decisao != domain.DecisionAprovada && in.Decisao != domain.DecisionRejeitada {
		return domain.ErrIncompleteData
	}

	requisition, err := s.repo.FindByID(ctx, in.RequisitionID)
	if err != nil {
		return fmt.Errorf("decide: %w", err)
	}

	// An APROVADOR may only decide requisitions assigned to them; ADMIN may
	// decide any.
	if in.Actor.Nivel != domain.RoleAdmin && requisition.AprovadorID != in.Actor.ID {
		return domain.ErrForbidden
	}

	newStatus := domain.StatusRejeitada
	acao := domain.AcaoRejeicao
	var compradorID *uint
	if in.Decisao == domain.DecisionAprovada {
		newStatus = domain.StatusAprovada
		acao = domain.AcaoAprovacao

		// First active COMPRAS user found gets the requisition; none found
		// leaves comprador_id null, which is not an error.
		comprador, err := s.userRepo.FirstActiveByRole(ctx, domain.RoleCompras)
		switch {
		case err == nil:
			compradorID = &comprador.ID
		case errors.Is(err, domain.ErrUserNotFound):
			s.log.Warn().Uint("requisicao_id", in.RequisitionID).Msg("no active COMPRAS user to assign")
		default:
			return fmt.Errorf("decide: find comprador: %w", err)
		}
	}

	comentario := in.Comentario
	if comentario == "" {
		comentario = "Nenhum comentário"
	}

	now := time.Now().UTC()
	decision := &domain.ApprovalDecision{
		RequisicaoID: in.RequisitionID,
		AprovadorID:  in.Actor.ID,
		Decisao:      in.Decisao,
		Comentario:   in.Comentario,
		DataDecisao:  now,
	}
	event := &domain.HistoryEvent{
		RequisicaoID: in.RequisitionID,
		UsuarioID:    in.Actor.ID,
		Acao:         acao,
		Descricao:    acao + ". Comentário: " + comentario,
		DataAcao:     now,
	}

	if err := s.repo.Decide(ctx, decision, newStatus, compradorID, event); err != nil {
		return fmt.Errorf("decide: %w", err)
	}

	metrics.DecisionsTotal.WithLabelValues(in.Decisao).Inc()
	s.log.Info().
		Uint("requisicao_id", in.RequisitionID).
		Str("decisao", in.Decisao).
		Uint("aprovador_id", in.Actor.ID).
		Msg("decision recorded")

	return nil
}

// Track applies a fulfillment tracking update: validates the transition,
// updates the status column and appends an "Acompanhamento" history row whose
// description folds in whichever of status/fornecedor/pedido/ETA were given.
func (s *workflowService) Track(ctx context.Context, in ports.TrackingInput) error {
	newStatus := domain.RequisitionStatus(in.Status)
	if !newStatus.IsValid() {
		return fmt.Errorf("track: %w: %q", domain.ErrInvalidStatus, in.Status)
	}

	// Idempotency check, non-fatal when Redis is unavailable.
	isDup, err := s.dedup.IsDuplicate(ctx, in.RequisitionID, in.Status)
	if err != nil {
		s.log.Warn().Err(err).Uint("requisicao_id", in.RequisitionID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.TrackingDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Uint("requisicao_id", in.RequisitionID).Str("status", in.Status).Msg("duplicate tracking update skipped")
		return nil
	}
	metrics.TrackingDedupTotal.WithLabelValues("miss").Inc()

	requisition, err := s.repo.FindByID(ctx, in.RequisitionID)
	if err != nil {
		return fmt.Errorf("track: %w", err)
	}

	if !requisition.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("track: %w (from %s to %s)", domain.ErrInvalidTransition, requisition.Status, newStatus)
	}

	event := &domain.HistoryEvent{
		RequisicaoID: in.RequisitionID,
		UsuarioID:    in.Actor.ID,
		Acao:         domain.AcaoAcompanhamento,
		Descricao:    trackingDescription(in),
		DataAcao:     time.Now().UTC(),
	}

	if err := s.repo.UpdateStatus(ctx, in.RequisitionID, newStatus, event); err != nil {
		return fmt.Errorf("track: update status: %w", err)
	}

	if markErr := s.dedup.Mark(ctx, in.RequisitionID, in.Status); markErr != nil {
		s.log.Warn().Err(markErr).Uint("requisicao_id", in.RequisitionID).Msg("failed to set dedup key")
	}

	metrics.TrackingUpdatesTotal.WithLabelValues(in.Status).Inc()
	s.log.Info().
		Uint("requisicao_id", in.RequisitionID).
		Str("status", in.Status).
		Uint("usuario_id", in.Actor.ID).
		Msg("tracking update applied")

	return nil
}

// trackingDescription builds the history text in the fixed order
// status, fornecedor, pedido, ETA, separated by ". " with no trailing
// separator.
func trackingDescription(in ports.TrackingInput) string {
	parts := []string{"Status atualizado para: " + in.Status}
	if in.Fornecedor != "" {
		parts = append(parts, "Fornecedor: "+in.Fornecedor)
	}
	if in.NumeroPedido != "" {
		parts = append(parts, "Pedido: "+in.NumeroPedido)
	}
	if in.DataEntregaEstimada != "" {
		parts = append(parts, "ETA: "+in.DataEntregaEstimada)
	}
	return strings.Join(parts, ". ")
}
