package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// RequisitionStatus represents the lifecycle state of a purchase requisition.
// The literal values are the exact strings persisted and exchanged with the
// client and must not be translated.
type RequisitionStatus string

const (
	StatusRascunho      RequisitionStatus = "Rascunho"
	StatusPendente      RequisitionStatus = "Pendente"
	StatusAprovada      RequisitionStatus = "Aprovada"
	StatusRejeitada     RequisitionStatus = "Rejeitada"
	StatusEmCotacao     RequisitionStatus = "Em cotação"
	StatusPedidoEmitido RequisitionStatus = "Pedido Emitido"
	StatusEmEntrega     RequisitionStatus = "Em Entrega"
	StatusConcluida     RequisitionStatus = "Concluída"
	StatusCancelada     RequisitionStatus = "Cancelada"
)

// validTransitions defines the allowed state machine transitions.
// Rejeitada → Pendente models resubmission after an edit; Concluída and
// Cancelada are terminal.
var validTransitions = map[RequisitionStatus][]RequisitionStatus{
	StatusRascunho:      {StatusPendente},
	StatusPendente:      {StatusAprovada, StatusRejeitada},
	StatusRejeitada:     {StatusPendente},
	StatusAprovada:      {StatusEmCotacao, StatusCancelada},
	StatusEmCotacao:     {StatusPedidoEmitido, StatusCancelada},
	StatusPedidoEmitido: {StatusEmEntrega, StatusCancelada},
	StatusEmEntrega:     {StatusConcluida, StatusCancelada},
}

// Decision values accepted on the approval endpoint.
const (
	DecisionAprovada  = "APROVADA"
	DecisionRejeitada = "REJEITADA"
)

// History action labels, persisted verbatim in requisicao_historico.acao.
const (
	AcaoCriacao        = "Criação"
	AcaoAtualizacao    = "Atualização"
	AcaoAprovacao      = "Aprovação"
	AcaoRejeicao       = "Rejeição"
	AcaoAcompanhamento = "Acompanhamento"
)

var (
	ErrRequisitionNotFound = errors.New("requisition not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidStatus       = errors.New("invalid requisition status")
	ErrAlreadyDecided      = errors.New("requisition already decided")
	ErrIncompleteData      = errors.New("incomplete request data")
	ErrForbidden           = errors.New("access forbidden")
)

// MissingFieldError reports which required field was absent on create.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Campo obrigatório faltando: " + e.Field
}

// IsValid reports whether s is a member of the status enum.
func (s RequisitionStatus) IsValid() bool {
	switch s {
	case StatusRascunho, StatusPendente, StatusAprovada, StatusRejeitada,
		StatusEmCotacao, StatusPedidoEmitido, StatusEmEntrega,
		StatusConcluida, StatusCancelada:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s RequisitionStatus) CanTransitionTo(next RequisitionStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RequisitionItem is a single line of a requisition. Items carry no identity
// across edits: an update replaces the whole set.
type RequisitionItem struct {
	ID            uint            `json:"-" gorm:"primaryKey"`
	RequisicaoID  uint            `json:"-" gorm:"column:requisicao_id;not null;index"`
	Descricao     string          `json:"descricao" gorm:"size:255;not null"`
	Quantidade    decimal.Decimal `json:"quantidade" gorm:"type:decimal(20,4);not null"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario" gorm:"column:preco_unitario;type:decimal(20,4);not null"`
	UnidadeMedida string          `json:"unidade_medida" gorm:"column:unidade_medida;size:20"`
}

func (RequisitionItem) TableName() string { return "requisicao_itens" }

// Total returns quantidade × preco_unitario.
func (i RequisitionItem) Total() decimal.Decimal {
	return i.Quantidade.Mul(i.PrecoUnitario)
}

// HistoryEvent is an append-only audit record of an action on a requisition.
type HistoryEvent struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RequisicaoID uint      `json:"requisicao_id" gorm:"column:requisicao_id;not null;index"`
	UsuarioID    uint      `json:"usuario_id" gorm:"column:usuario_id;not null"`
	Acao         string    `json:"acao" gorm:"size:50;not null"`
	Descricao    string    `json:"descricao"`
	DataAcao     time.Time `json:"data_acao" gorm:"column:data_acao;not null"`

	Usuario *User `json:"-" gorm:"foreignKey:UsuarioID"`
}

func (HistoryEvent) TableName() string { return "requisicao_historico" }

// ApprovalDecision is one decision event on a requisition. Append-only: a
// requisition resubmitted after rejection accumulates more than one row.
type ApprovalDecision struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RequisicaoID uint      `json:"requisicao_id" gorm:"column:requisicao_id;not null;index"`
	AprovadorID  uint      `json:"aprovador_id" gorm:"column:aprovador_id;not null"`
	Decisao      string    `json:"decisao" gorm:"size:20;not null"`
	Comentario   string    `json:"comentario"`
	DataDecisao  time.Time `json:"data_decisao" gorm:"column:data_decisao;not null"`
}

func (ApprovalDecision) TableName() string { return "requisicao_aprovacoes" }

// Requisition is the core aggregate root.
type Requisition struct {
	ID                 uint              `json:"id" gorm:"primaryKey"`
	Codigo             string            `json:"codigo" gorm:"size:16;uniqueIndex;not null"`
	Titulo             string            `json:"titulo" gorm:"size:255;not null"`
	Descricao          string            `json:"descricao"`
	CentroCusto        string            `json:"centro_custo" gorm:"column:centro_custo;size:100"`
	DataNecessidade    string            `json:"data_necessidade" gorm:"column:data_necessidade;size:10"`
	FornecedorSugerido string            `json:"fornecedor_sugerido" gorm:"column:fornecedor_sugerido;size:255"`
	Status             RequisitionStatus `json:"status" gorm:"size:32;not null;index"`
	SolicitanteID      uint              `json:"solicitante_id" gorm:"column:solicitante_id;not null;index"`
	AprovadorID        uint              `json:"aprovador_id" gorm:"column:aprovador_id;not null;index"`
	CompradorID        *uint             `json:"comprador_id" gorm:"column:comprador_id;index"`
	CriadaEm           time.Time         `json:"criada_em" gorm:"column:criada_em;not null"`
	AtualizadaEm       time.Time         `json:"atualizada_em" gorm:"column:atualizada_em;not null"`

	Solicitante *User `json:"-" gorm:"foreignKey:SolicitanteID"`
	Aprovador   *User `json:"-" gorm:"foreignKey:AprovadorID"`
	Comprador   *User `json:"-" gorm:"foreignKey:CompradorID"`

	Itens     []RequisitionItem `json:"itens" gorm:"foreignKey:RequisicaoID;constraint:OnDelete:CASCADE"`
	Historico []HistoryEvent    `json:"historico,omitempty" gorm:"foreignKey:RequisicaoID"`
}

func (Requisition) TableName() string { return "requisicoes" }

// Total returns the requisition total, recomputed from the item set.
// Totals are never stored.
func (r *Requisition) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Itens {
		total = total.Add(item.Total())
	}
	return total
}
