package ports

import (
	"context"

	"github.com/suprimentos/requisition-system/internal/core/domain"
)

// ItemInput is one requisition line as received from the transport layer.
type ItemInput struct {
	Descricao     string
	Quantidade    float64
	PrecoUnitario float64
	UnidadeMedida string
}

// CreateRequisitionInput carries all data needed to create a requisition.
// Status distinguishes "save draft" (Rascunho) from "submit" (Pendente);
// empty defaults to Pendente.
type CreateRequisitionInput struct {
	Titulo             string
	Descricao          string
	CentroCusto        string
	DataNecessidade    string
	FornecedorSugerido string
	Status             string
	SolicitanteID      uint
	AprovadorID        uint
	Itens              []ItemInput
}

// CreateRequisitionResult is returned after a successful create.
type CreateRequisitionResult struct {
	ID     uint
	Codigo string
}

// UpdateRequisitionInput overwrites the editable fields and replaces the item
// set. ActorID is the authenticated user performing the edit, used for
// history attribution.
type UpdateRequisitionInput struct {
	Titulo             string
	Descricao          string
	CentroCusto        string
	DataNecessidade    string
	FornecedorSugerido string
	Status             string
	AprovadorID        uint
	ActorID            uint
	Itens              []ItemInput
}

// RequisitionService defines the CRUD side of the requisition lifecycle.
type RequisitionService interface {
	Create(ctx context.Context, input CreateRequisitionInput) (*CreateRequisitionResult, error)
	Update(ctx context.Context, id uint, input UpdateRequisitionInput) error
	Get(ctx context.Context, id uint) (*domain.Requisition, error)
	List(ctx context.Context, filter ListRequisitionsFilter) ([]*domain.Requisition, error)
}
