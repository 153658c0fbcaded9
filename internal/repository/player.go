package repository

import (
	"context"

	"afl-predictions-backend/internal/database/models"
	apperrors "afl-predictions-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// Ensure PlayerRepository implements PlayerRepositoryInterface
var _ PlayerRepositoryInterface = (*PlayerRepository)(nil)

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id uint) (*models.Player, error) {
	var player models.Player
	if err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, apperrors.ErrPlayerNotFound)
	}
	return &player, nil
}

// GetByEmail retrieves a player by email
func (r *PlayerRepository) GetByEmail(ctx context.Context, email string) (*models.Player, error) {
	var player models.Player
	if err := r.db.WithContext(ctx).First(&player, "email = ?", email).Error; err != nil {
		return nil, translateNotFound(err, apperrors.ErrPlayerNotFound)
	}
	return &player, nil
}

// FirstOrCreateByEmail inserts a player unless the email is taken, then returns the stored row.
// An existing player keeps the name it registered with.
func (r *PlayerRepository) FirstOrCreateByEmail(ctx context.Context, name, email string) (*models.Player, error) {
	candidate := &models.Player{Name: name, Email: email}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(candidate).Error
	if err != nil {
		return nil, err
	}
	return r.GetByEmail(ctx, email)
}
