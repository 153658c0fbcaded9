package service

import (
	"context"
	"fmt"

	"afl-predictions-backend/internal/database/models"
	apperrors "afl-predictions-backend/internal/errors"
	"afl-predictions-backend/internal/repository"
	"afl-predictions-backend/pkg/types"

	"github.com/go-playground/validator/v10"
)

// PredictionService handles match-winner tips and the leaderboard
type PredictionService struct {
	predictionRepo repository.PredictionRepositoryInterface
	gameRepo       repository.GameRepositoryInterface
	validator      *validator.Validate
}

// Ensure PredictionService implements PredictionServiceInterface
var _ PredictionServiceInterface = (*PredictionService)(nil)

// NewPredictionService creates a new prediction service
func NewPredictionService(predictionRepo repository.PredictionRepositoryInterface, gameRepo repository.GameRepositoryInterface, validator *validator.Validate) *PredictionService {
	return &PredictionService{
		predictionRepo: predictionRepo,
		gameRepo:       gameRepo,
		validator:      validator,
	}
}

// Submit records the player's tip for a game, replacing any earlier tip for the same game.
// The predicted winner must be one of the two teams playing.
func (s *PredictionService) Submit(ctx context.Context, playerID uint, req *types.PredictionRequest) (*types.SuccessResponse, error) {
	if playerID == 0 {
		return nil, apperrors.ErrInvalidPlayerID
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	game, err := s.gameRepo.GetByID(ctx, req.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	if !game.HasTeam(req.PredictedWinnerID) {
		return nil, apperrors.ErrPredictedWinnerNotInGame
	}

	prediction := &models.Prediction{
		PlayerID:          playerID,
		GameID:            req.GameID,
		PredictedWinnerID: req.PredictedWinnerID,
	}
	if err := s.predictionRepo.Upsert(ctx, prediction); err != nil {
		return nil, fmt.Errorf("failed to save prediction: %w", err)
	}

	return &types.SuccessResponse{Success: true}, nil
}

// GetStats returns the leaderboard, best record first
func (s *PredictionService) GetStats(ctx context.Context) ([]types.PlayerStats, error) {
	rows, err := s.predictionRepo.GetPlayerStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	stats := make([]types.PlayerStats, len(rows))
	for i, row := range rows {
		wins, losses := int(row.Wins), int(row.Losses)
		stats[i] = types.PlayerStats{
			Player: types.Player{
				ID:    row.PlayerID,
				Name:  row.PlayerName,
				Email: row.PlayerEmail,
			},
			Wins:   wins,
			Losses: losses,
			Total:  wins - losses,
		}
	}
	return stats, nil
}

// HasSubmitted reports whether the player has tipped at least one game of the round
func (s *PredictionService) HasSubmitted(ctx context.Context, playerID uint, roundNumber int) (bool, error) {
	if playerID == 0 {
		return false, apperrors.ErrInvalidPlayerID
	}
	if roundNumber < 1 {
		return false, apperrors.ErrInvalidRoundNumber
	}

	count, err := s.predictionRepo.CountByPlayerAndRound(ctx, playerID, roundNumber)
	if err != nil {
		return false, fmt.Errorf("failed to check submissions: %w", err)
	}
	return count > 0, nil
}
