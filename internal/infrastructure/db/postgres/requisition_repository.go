package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/suprimentos/requisition-system/internal/core/domain"
	"github.com/suprimentos/requisition-system/internal/core/ports"
)

const (
	codePrefix  = "RC-"
	codeRetries = 3
)

type RequisitionRepository struct {
	db *gorm.DB
}

func NewRequisitionRepository(db *gorm.DB) *RequisitionRepository {
	return &RequisitionRepository{db: db}
}

// Create inserts the requisition, its item set and the creation history row
// in one transaction. The newest existing row is locked FOR UPDATE while the
// next sequential code is derived. On an empty table there is no row to
// lock, so two first-ever creates can both derive RC-0001; the unique index
// on codigo rejects the loser, which retries with a fresh sequence read.
func (r *RequisitionRepository) Create(ctx context.Context, req *domain.Requisition, event *domain.HistoryEvent) error {
	var err error
	for attempt := 0; attempt < codeRetries; attempt++ {
		if err = r.createOnce(ctx, req, event); err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		req.ID = 0
	}
	return err
}

func (r *RequisitionRepository) createOnce(ctx context.Context, req *domain.Requisition, event *domain.HistoryEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last domain.Requisition
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Order("id DESC").
			Limit(1).
			Find(&last).Error
		if err != nil {
			return fmt.Errorf("lock last requisition: %w", err)
		}

		req.Codigo = nextCode(last.Codigo)

		if err := tx.Create(req).Error; err != nil {
			return fmt.Errorf("insert requisition: %w", err)
		}

		event.RequisicaoID = req.ID
		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("insert history: %w", err)
		}
		return nil
	})
}

// nextCode increments the numeric suffix of the highest existing code.
// An empty table (or an unparsable code) starts the sequence at RC-0001.
func nextCode(lastCode string) string {
	n := 0
	if s := strings.TrimPrefix(lastCode, codePrefix); s != lastCode {
		if parsed, err := strconv.Atoi(s); err == nil {
			n = parsed
		}
	}
	return fmt.Sprintf("%s%04d", codePrefix, n+1)
}

// Update overwrites the editable columns, replaces the whole item set and
// appends the history row, all in one transaction.
func (r *RequisitionRepository) Update(ctx context.Context, req *domain.Requisition, event *domain.HistoryEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Requisition
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRequisitionNotFound
			}
			return fmt.Errorf("find requisition: %w", err)
		}

		updates := map[string]any{
			"titulo":              req.Titulo,
			"descricao":           req.Descricao,
			"centro_custo":        req.CentroCusto,
			"data_necessidade":    req.DataNecessidade,
			"fornecedor_sugerido": req.FornecedorSugerido,
			"aprovador_id":        req.AprovadorID,
			"status":              req.Status,
			"atualizada_em":       req.AtualizadaEm,
		}
		if err := tx.Model(&domain.Requisition{}).Where("id = ?", req.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("update requisition: %w", err)
		}

		// Cascade-replace: old rows go, the new set comes in as a batch.
		if err := tx.Where("requisicao_id = ?", req.ID).Delete(&domain.RequisitionItem{}).Error; err != nil {
			return fmt.Errorf("delete items: %w", err)
		}
		if len(req.Itens) > 0 {
			for i := range req.Itens {
				req.Itens[i].RequisicaoID = req.ID
			}
			if err := tx.Create(&req.Itens).Error; err != nil {
				return fmt.Errorf("insert items: %w", err)
			}
		}

		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("insert history: %w", err)
		}
		return nil
	})
}

// Decide appends the decision row, conditionally moves the requisition out of
// Pendente and appends the history row. The guarded UPDATE closes the race
// between two concurrent decisions: the loser sees zero affected rows.
func (r *RequisitionRepository) Decide(ctx context.Context, d *domain.ApprovalDecision, newStatus domain.RequisitionStatus, compradorID *uint, event *domain.HistoryEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Requisition
		if err := tx.First(&existing, d.RequisicaoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRequisitionNotFound
			}
			return fmt.Errorf("find requisition: %w", err)
		}

		updates := map[string]any{
			"status":        newStatus,
			"atualizada_em": d.DataDecisao,
		}
		if newStatus == domain.StatusAprovada {
			updates["comprador_id"] = compradorID
		}

		res := tx.Model(&domain.Requisition{}).
			Where("id = ? AND status = ?", d.RequisicaoID, domain.StatusPendente).
			Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("update status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyDecided
		}

		if err := tx.Create(d).Error; err != nil {
			return fmt.Errorf("insert decision: %w", err)
		}
		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("insert history: %w", err)
		}
		return nil
	})
}

// UpdateStatus sets only the status column and appends the history row.
func (r *RequisitionRepository) UpdateStatus(ctx context.Context, id uint, status domain.RequisitionStatus, event *domain.HistoryEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Requisition{}).
			Where("id = ?", id).
			Updates(map[string]any{"status": status, "atualizada_em": event.DataAcao})
		if res.Error != nil {
			return fmt.Errorf("update status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrRequisitionNotFound
		}

		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("insert history: %w", err)
		}
		return nil
	})
}

// FindByID hydrates a requisition with items, history (newest first, with the
// acting user) and the three referenced users.
func (r *RequisitionRepository) FindByID(ctx context.Context, id uint) (*domain.Requisition, error) {
	var req domain.Requisition
	err := r.db.WithContext(ctx).
		Preload("Itens").
		Preload("Historico", func(db *gorm.DB) *gorm.DB {
			return db.Order("data_acao DESC")
		}).
		Preload("Historico.Usuario").
		Preload("Solicitante").
		Preload("Aprovador").
		Preload("Comprador").
		First(&req, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequisitionNotFound
		}
		return nil, fmt.Errorf("find requisition: %w", err)
	}
	return &req, nil
}

// List returns matching requisitions newest first, each hydrated with its
// item set and user names via batched preloads rather than per-row queries.
func (r *RequisitionRepository) List(ctx context.Context, filter ports.ListRequisitionsFilter) ([]*domain.Requisition, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Requisition{}).
		Preload("Itens").
		Preload("Solicitante").
		Preload("Aprovador").
		Preload("Comprador")

	if filter.Status != "" {
		query = query.Where("requisicoes.status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.
			Joins("LEFT JOIN usuarios u_sol ON u_sol.id = requisicoes.solicitante_id").
			Where("requisicoes.titulo ILIKE ? OR requisicoes.descricao ILIKE ? OR u_sol.nome ILIKE ?", like, like, like)
	}
	if filter.UserID != 0 {
		// OR across the three role columns; a requisition matches once even
		// when the user holds several roles on it.
		query = query.Where(
			"requisicoes.solicitante_id = ? OR requisicoes.aprovador_id = ? OR requisicoes.comprador_id = ?",
			filter.UserID, filter.UserID, filter.UserID,
		)
	}

	var requisitions []*domain.Requisition
	if err := query.Order("requisicoes.criada_em DESC").Find(&requisitions).Error; err != nil {
		return nil, fmt.Errorf("list requisitions: %w", err)
	}
	return requisitions, nil
}
