package repository

import (
	"context"
	"database/sql"

	"afl-predictions-backend/internal/database/models"
	apperrors "afl-predictions-backend/internal/errors"

	"gorm.io/gorm"
)

// RoundRepository handles database operations for rounds
type RoundRepository struct {
	db *gorm.DB
}

// Ensure RoundRepository implements RoundRepositoryInterface
var _ RoundRepositoryInterface = (*RoundRepository)(nil)

// NewRoundRepository creates a new round repository
func NewRoundRepository(db *gorm.DB) *RoundRepository {
	return &RoundRepository{db: db}
}

// GetCurrentRoundNumber returns MAX(round_number), or ErrNoRounds when the table is empty
func (r *RoundRepository) GetCurrentRoundNumber(ctx context.Context) (int, error) {
	var current sql.NullInt64
	row := r.db.WithContext(ctx).Model(&models.Round{}).Select("MAX(round_number)").Row()
	if err := row.Scan(&current); err != nil {
		return 0, err
	}
	if !current.Valid {
		return 0, apperrors.ErrNoRounds
	}
	return int(current.Int64), nil
}

// GetByNumber retrieves a round by its number
func (r *RoundRepository) GetByNumber(ctx context.Context, roundNumber int) (*models.Round, error) {
	var round models.Round
	if err := r.db.WithContext(ctx).First(&round, "round_number = ?", roundNumber).Error; err != nil {
		return nil, translateNotFound(err, apperrors.ErrRoundNotFound)
	}
	return &round, nil
}

// FirstOrCreateByNumber returns the round with the given number, creating it if needed
func (r *RoundRepository) FirstOrCreateByNumber(ctx context.Context, roundNumber int) (*models.Round, error) {
	round := models.Round{RoundNumber: roundNumber}
	if err := r.db.WithContext(ctx).Where(models.Round{RoundNumber: roundNumber}).FirstOrCreate(&round).Error; err != nil {
		return nil, err
	}
	return &round, nil
}
