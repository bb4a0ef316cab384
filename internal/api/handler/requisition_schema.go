package handler

// messageResponse is the envelope used on simple success responses.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type itemRequest struct {
	Descricao     string  `json:"descricao"`
	Quantidade    float64 `json:"quantidade"     validate:"gt=0"`
	PrecoUnitario float64 `json:"preco_unitario" validate:"gte=0"`
	UnidadeMedida string  `json:"unidade_medida"`
}

type createRequisitionRequest struct {
	Titulo             string        `json:"titulo"`
	Descricao          string        `json:"descricao"`
	CentroCusto        string        `json:"centro_custo"`
	DataNecessidade    string        `json:"data_necessidade"`
	FornecedorSugerido string        `json:"fornecedor_sugerido"`
	Status             string        `json:"status"`
	SolicitanteID      uint          `json:"solicitante_id"`
	AprovadorID        uint          `json:"aprovador_id"`
	Itens              []itemRequest `json:"itens" validate:"omitempty,dive"`
}

type updateRequisitionRequest struct {
	Titulo             string        `json:"titulo"`
	Descricao          string        `json:"descricao"`
	CentroCusto        string        `json:"centro_custo"`
	DataNecessidade    string        `json:"data_necessidade"`
	FornecedorSugerido string        `json:"fornecedor_sugerido"`
	Status             string        `json:"status"`
	AprovadorID        uint          `json:"aprovador_id"`
	UserID             uint          `json:"user_id"`
	Itens              []itemRequest `json:"itens" validate:"omitempty,dive"`
}

type decisionRequest struct {
	Decisao    string `json:"decisao"`
	Comentario string `json:"comentario"`
	UsuarioID  uint   `json:"usuario_id"`
}

type trackingRequest struct {
	Status              string `json:"status"`
	Fornecedor          string `json:"fornecedor"`
	NumeroPedido        string `json:"numero_pedido"`
	DataEntregaEstimada string `json:"data_entrega_estimada"`
	UsuarioID           uint   `json:"usuario_id"`
}

// --- Response types ---
//
// Response shapes are owned by the transport layer so the JSON contract the
// client depends on is not coupled to internal model changes.

type createRequisitionResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
	Codigo  string `json:"codigo"`
}

type itemResponse struct {
	Descricao     string  `json:"descricao"`
	Quantidade    float64 `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
	UnidadeMedida string  `json:"unidade_medida"`
	Total         float64 `json:"total"`
}

type historyEventResponse struct {
	ID           uint   `json:"id"`
	RequisicaoID uint   `json:"requisicao_id"`
	UsuarioID    uint   `json:"usuario_id"`
	UsuarioNome  string `json:"usuario_nome"`
	Acao         string `json:"acao"`
	Descricao    string `json:"descricao"`
	DataAcao     string `json:"data_acao"`
}

type requisitionResponse struct {
	ID                 uint                   `json:"id"`
	Codigo             string                 `json:"codigo"`
	Titulo             string                 `json:"titulo"`
	Descricao          string                 `json:"descricao"`
	CentroCusto        string                 `json:"centro_custo"`
	DataNecessidade    string                 `json:"data_necessidade"`
	FornecedorSugerido string                 `json:"fornecedor_sugerido"`
	Status             string                 `json:"status"`
	SolicitanteID      uint                   `json:"solicitante_id"`
	AprovadorID        uint                   `json:"aprovador_id"`
	CompradorID        *uint                  `json:"comprador_id"`
	SolicitanteNome    string                 `json:"solicitante_nome"`
	AprovadorNome      string                 `json:"aprovador_nome"`
	CompradorNome      string                 `json:"comprador_nome"`
	CriadaEm           string                 `json:"criada_em"`
	AtualizadaEm       string                 `json:"atualizada_em"`
	Total              float64                `json:"total"`
	Itens              []itemResponse         `json:"itens"`
	Historico          []historyEventResponse `json:"historico,omitempty"`
}
