package ports

import (
	"context"

	"github.com/suprimentos/requisition-system/internal/core/domain"
)

// ListRequisitionsFilter carries the query parameters for listing requisitions.
// All filters are independently optional and AND-combined.
type ListRequisitionsFilter struct {
	Status string // exact match on requisicoes.status
	Search string // case-insensitive substring on titulo, descricao or requester nome
	UserID uint   // matches solicitante, aprovador or comprador
}

// RequisitionRepository defines persistence operations for requisitions.
// Every mutating method executes as a single atomic transaction: the
// requisition row, its item set and the history row commit or roll back
// together.
type RequisitionRepository interface {
	// Create persists a new requisition with its item set and the "Criação"
	// history event. The sequential code (RC-####) is generated inside the
	// transaction under a row lock; r.ID and r.Codigo are populated on return.
	Create(ctx context.Context, r *domain.Requisition, event *domain.HistoryEvent) error

	// Update overwrites the requisition's editable fields, replaces the whole
	// item set with r.Itens and appends the history event. Returns
	// domain.ErrRequisitionNotFound when no row with r.ID exists.
	Update(ctx context.Context, r *domain.Requisition, event *domain.HistoryEvent) error

	// Decide appends the approval decision row, conditionally moves the
	// requisition from Pendente to newStatus (setting comprador_id when
	// compradorID is non-nil) and appends the history event. Returns
	// domain.ErrAlreadyDecided when the requisition is no longer Pendente.
	Decide(ctx context.Context, d *domain.ApprovalDecision, newStatus domain.RequisitionStatus, compradorID *uint, event *domain.HistoryEvent) error

	// UpdateStatus sets only the status column and appends the history event.
	UpdateStatus(ctx context.Context, id uint, status domain.RequisitionStatus, event *domain.HistoryEvent) error

	// FindByID hydrates a requisition with items, history (newest first) and
	// the three referenced users.
	FindByID(ctx context.Context, id uint) (*domain.Requisition, error)

	// List returns requisitions matching the filter, newest first, each
	// hydrated with its item set and referenced users in batched queries.
	List(ctx context.Context, filter ListRequisitionsFilter) ([]*domain.Requisition, error)
}
