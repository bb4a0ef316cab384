package handler

import (
	"time"

	"github.com/suprimentos/requisition-system/internal/core/domain"
	"github.com/suprimentos/requisition-system/internal/core/ports"
)

// timestampLayout matches the datetime format the browser client already
// parses.
const timestampLayout = "2006-01-02 15:04:05"

// --- Request → Service input ---

func toCreateInput(req createRequisitionRequest) ports.CreateRequisitionInput {
	return ports.CreateRequisitionInput{
		Titulo:             req.Titulo,
		Descricao:          req.Descricao,
		CentroCusto:        req.CentroCusto,
		DataNecessidade:    req.DataNecessidade,
		FornecedorSugerido: req.FornecedorSugerido,
		Status:             req.Status,
		SolicitanteID:      req.SolicitanteID,
		AprovadorID:        req.AprovadorID,
		Itens:              toItemInputs(req.Itens),
	}
}

func toUpdateInput(req updateRequisitionRequest, actorID uint) ports.UpdateRequisitionInput {
	return ports.UpdateRequisitionInput{
		Titulo:             req.Titulo,
		Descricao:          req.Descricao,
		CentroCusto:        req.CentroCusto,
		DataNecessidade:    req.DataNecessidade,
		FornecedorSugerido: req.FornecedorSugerido,
		Status:             req.Status,
		AprovadorID:        req.AprovadorID,
		ActorID:            actorID,
		Itens:              toItemInputs(req.Itens),
	}
}

func toItemInputs(items []itemRequest) []ports.ItemInput {
	out := make([]ports.ItemInput, len(items))
	for i, item := range items {
		out[i] = ports.ItemInput{
			Descricao:     item.Descricao,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			UnidadeMedida: item.UnidadeMedida,
		}
	}
	return out
}

// --- Domain model → HTTP response ---

func toRequisitionResponse(r *domain.Requisition, withHistory bool) requisitionResponse {
	resp := requisitionResponse{
		ID:                 r.ID,
		Codigo:             r.Codigo,
		Titulo:             r.Titulo,
		Descricao:          r.Descricao,
		CentroCusto:        r.CentroCusto,
		DataNecessidade:    r.DataNecessidade,
		FornecedorSugerido: r.FornecedorSugerido,
		Status:             string(r.Status),
		SolicitanteID:      r.SolicitanteID,
		AprovadorID:        r.AprovadorID,
		CompradorID:        r.CompradorID,
		SolicitanteNome:    userName(r.Solicitante),
		AprovadorNome:      userName(r.Aprovador),
		CompradorNome:      userName(r.Comprador),
		CriadaEm:           formatTime(r.CriadaEm),
		AtualizadaEm:       formatTime(r.AtualizadaEm),
		Total:              r.Total().InexactFloat64(),
		Itens:              toItemResponses(r.Itens),
	}
	if withHistory {
		resp.Historico = toHistoryResponses(r.Historico)
	}
	return resp
}

func toItemResponses(items []domain.RequisitionItem) []itemResponse {
	out := make([]itemResponse, len(items))
	for i, item := range items {
		out[i] = itemResponse{
			Descricao:     item.Descricao,
			Quantidade:    item.Quantidade.InexactFloat64(),
			PrecoUnitario: item.PrecoUnitario.InexactFloat64(),
			UnidadeMedida: item.UnidadeMedida,
			Total:         item.Total().InexactFloat64(),
		}
	}
	return out
}

func toHistoryResponses(events []domain.HistoryEvent) []historyEventResponse {
	out := make([]historyEventResponse, len(events))
	for i, ev := range events {
		out[i] = historyEventResponse{
			ID:           ev.ID,
			RequisicaoID: ev.RequisicaoID,
			UsuarioID:    ev.UsuarioID,
			UsuarioNome:  userName(ev.Usuario),
			Acao:         ev.Acao,
			Descricao:    ev.Descricao,
			DataAcao:     formatTime(ev.DataAcao),
		}
	}
	return out
}

func userName(u *domain.User) string {
	if u == nil {
		return ""
	}
	return u.Nome
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timestampLayout)
}
