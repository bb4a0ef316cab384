package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/suprimentos/requisition-system/internal/core/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindActiveByUsername retrieves an active user by login handle.
func (r *UserRepository) FindActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND ativo = ?", username, true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// ListActive returns active users, optionally filtered by access level.
func (r *UserRepository) ListActive(ctx context.Context, nivel string) ([]*domain.User, error) {
	query := r.db.WithContext(ctx).Where("ativo = ?", true)
	if nivel != "" {
		query = query.Where("nivel_liberacao = ?", nivel)
	}

	var users []*domain.User
	if err := query.Order("nome").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FirstActiveByRole returns one active user with the given access level.
// Selection is arbitrary (lowest id), mirroring the assignment rule for the
// purchasing role.
func (r *UserRepository) FirstActiveByRole(ctx context.Context, nivel string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Where("nivel_liberacao = ? AND ativo = ?", nivel, true).
		Order("id").
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by role: %w", err)
	}
	return &user, nil
}
