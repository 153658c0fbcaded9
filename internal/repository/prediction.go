package repository

import (
	"context"

	"afl-predictions-backend/internal/database/models"
	apperrors "afl-predictions-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// statsQuery counts, per player, tips that matched the recorded winner and tips that missed it.
// Pending games (winner_id IS NULL) count as neither. Players without tips still get a row.
const statsQuery = `
SELECT
	p.id    AS player_id,
	p.name  AS player_name,
	p.email AS player_email,
	COALESCE(SUM(CASE WHEN pr.predicted_winner_id = g.winner_id THEN 1 ELSE 0 END), 0) AS wins,
	COALESCE(SUM(CASE WHEN g.winner_id IS NOT NULL AND pr.predicted_winner_id <> g.winner_id THEN 1 ELSE 0 END), 0) AS losses
FROM players p
LEFT JOIN predictions pr ON pr.player_id = p.id
LEFT JOIN games g ON g.id = pr.game_id
GROUP BY p.id, p.name, p.email
ORDER BY wins DESC, losses ASC, p.id ASC`

// PredictionRepository handles database operations for match-winner predictions
type PredictionRepository struct {
	db *gorm.DB
}

// Ensure PredictionRepository implements PredictionRepositoryInterface
var _ PredictionRepositoryInterface = (*PredictionRepository)(nil)

// NewPredictionRepository creates a new prediction repository
func NewPredictionRepository(db *gorm.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// Upsert inserts the prediction or, when the (player, game) pair already has one,
// replaces its predicted winner in the same statement.
func (r *PredictionRepository) Upsert(ctx context.Context, prediction *models.Prediction) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}, {Name: "game_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"predicted_winner_id", "updated_at"}),
		}).
		Create(prediction).Error
	return translateForeignKey(err,
		fkTarget{fragment: "winner", notFound: apperrors.ErrTeamNotFound},
		fkTarget{fragment: "game", notFound: apperrors.ErrGameNotFound},
		fkTarget{fragment: "player", notFound: apperrors.ErrPlayerNotFound},
	)
}

// GetByPlayerAndGame retrieves the prediction a player made for a game
func (r *PredictionRepository) GetByPlayerAndGame(ctx context.Context, playerID, gameID uint) (*models.Prediction, error) {
	var prediction models.Prediction
	err := r.db.WithContext(ctx).
		First(&prediction, "player_id = ? AND game_id = ?", playerID, gameID).Error
	if err != nil {
		return nil, translateNotFound(err, apperrors.ErrPredictionNotFound)
	}
	return &prediction, nil
}

// CountByPlayerAndRound counts a player's predictions for games in the given round
func (r *PredictionRepository) CountByPlayerAndRound(ctx context.Context, playerID uint, roundNumber int) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Prediction{}).
		Joins("JOIN games ON games.id = predictions.game_id").
		Joins("JOIN rounds ON rounds.id = games.round_id").
		Where("predictions.player_id = ? AND rounds.round_number = ?", playerID, roundNumber).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// GetPlayerStats returns one win/loss row per player, best record first
func (r *PredictionRepository) GetPlayerStats(ctx context.Context) ([]models.PlayerStatsRow, error) {
	rows := []models.PlayerStatsRow{}
	if err := r.db.WithContext(ctx).Raw(statsQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
