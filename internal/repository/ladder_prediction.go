package repository

import (
	"context"

	"afl-predictions-backend/internal/database/models"
	apperrors "afl-predictions-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LadderPredictionRepository handles database operations for ladder predictions
type LadderPredictionRepository struct {
	db *gorm.DB
}

// Ensure LadderPredictionRepository implements LadderPredictionRepositoryInterface
var _ LadderPredictionRepositoryInterface = (*LadderPredictionRepository)(nil)

// NewLadderPredictionRepository creates a new ladder prediction repository
func NewLadderPredictionRepository(db *gorm.DB) *LadderPredictionRepository {
	return &LadderPredictionRepository{db: db}
}

// Upsert inserts the ladder prediction or replaces the position already stored
// for the same (player, round_number, team).
func (r *LadderPredictionRepository) Upsert(ctx context.Context, prediction *models.LadderPrediction) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}, {Name: "round_number"}, {Name: "team_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"predicted_position", "updated_at"}),
		}).
		Create(prediction).Error
	return translateForeignKey(err,
		fkTarget{fragment: "team", notFound: apperrors.ErrTeamNotFound},
		fkTarget{fragment: "player", notFound: apperrors.ErrPlayerNotFound},
	)
}

// GetByPlayerRoundTeam retrieves a single ladder prediction by its natural key
func (r *LadderPredictionRepository) GetByPlayerRoundTeam(ctx context.Context, playerID uint, roundNumber int, teamID uint) (*models.LadderPrediction, error) {
	var prediction models.LadderPrediction
	err := r.db.WithContext(ctx).
		First(&prediction, "player_id = ? AND round_number = ? AND team_id = ?", playerID, roundNumber, teamID).Error
	if err != nil {
		return nil, translateNotFound(err, apperrors.ErrLadderPredictionNotFound)
	}
	return &prediction, nil
}

// GetByRoundNumber retrieves all ladder predictions of a round with their team, top of the ladder first
func (r *LadderPredictionRepository) GetByRoundNumber(ctx context.Context, roundNumber int) ([]models.LadderPrediction, error) {
	predictions := []models.LadderPrediction{}
	err := r.db.WithContext(ctx).
		Preload("Team").
		Where("round_number = ?", roundNumber).
		Order("predicted_position ASC, id ASC").
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	return predictions, nil
}
