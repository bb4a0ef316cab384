package ports

import "context"

// Actor is the authenticated identity performing a workflow action, extracted
// from the session token by the transport layer. Authorization decisions and
// history attribution use this identity, never a client-supplied id.
type Actor struct {
	ID    uint
	Nome  string
	Nivel string
}

// DecisionInput carries an approve/reject decision on a Pendente requisition.
type DecisionInput struct {
	RequisitionID uint
	Decisao       string // APROVADA | REJEITADA
	Comentario    string
	Actor         Actor
}

// TrackingInput carries a fulfillment tracking update. Only Status is
// persisted as a column; the remaining fields are folded into the history
// description.
type TrackingInput struct {
	RequisitionID       uint
	Status              string
	Fornecedor          string
	NumeroPedido        string
	DataEntregaEstimada string
	Actor               Actor
}

// WorkflowService applies approval decisions and fulfillment tracking updates.
type WorkflowService interface {
	Decide(ctx context.Context, input DecisionInput) error
	Track(ctx context.Context, input TrackingInput) error
}
