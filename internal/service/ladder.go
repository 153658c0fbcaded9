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

// LadderService handles ladder-position predictions
type LadderService struct {
	ladderRepo repository.LadderPredictionRepositoryInterface
	teamRepo   repository.TeamRepositoryInterface
	validator  *validator.Validate
}

// Ensure LadderService implements LadderServiceInterface
var _ LadderServiceInterface = (*LadderService)(nil)

// NewLadderService creates a new ladder service
func NewLadderService(ladderRepo repository.LadderPredictionRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *LadderService {
	return &LadderService{
		ladderRepo: ladderRepo,
		teamRepo:   teamRepo,
		validator:  validator,
	}
}

// Submit records where the player expects a team to sit on the ladder after a round.
// The position must lie within 1..number of teams.
func (s *LadderService) Submit(ctx context.Context, playerID uint, req *types.LadderPredictionRequest) (*types.SuccessResponse, error) {
	if playerID == 0 {
		return nil, apperrors.ErrInvalidPlayerID
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.teamRepo.GetByID(ctx, req.TeamID); err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	teamCount, err := s.teamRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count teams: %w", err)
	}
	if int64(req.PredictedPosition) > teamCount {
		return nil, apperrors.ErrInvalidLadderPosition
	}

	prediction := &models.LadderPrediction{
		PlayerID:          playerID,
		RoundNumber:       req.RoundNumber,
		TeamID:            req.TeamID,
		PredictedPosition: req.PredictedPosition,
	}
	if err := s.ladderRepo.Upsert(ctx, prediction); err != nil {
		return nil, fmt.Errorf("failed to save ladder prediction: %w", err)
	}

	return &types.SuccessResponse{Success: true}, nil
}

// GetForRound returns every ladder prediction of a round, top position first
func (s *LadderService) GetForRound(ctx context.Context, roundNumber int) ([]types.LadderPrediction, error) {
	if roundNumber < 1 {
		return nil, apperrors.ErrInvalidRoundNumber
	}

	predictions, err := s.ladderRepo.GetByRoundNumber(ctx, roundNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get ladder predictions: %w", err)
	}

	resp := make([]types.LadderPrediction, len(predictions))
	for i := range predictions {
		p := &predictions[i]
		resp[i] = types.LadderPrediction{
			ID:                p.ID,
			PlayerID:          p.PlayerID,
			RoundNumber:       p.RoundNumber,
			TeamID:            p.TeamID,
			PredictedPosition: p.PredictedPosition,
			Team:              toTeamRef(p.Team),
		}
	}
	return resp, nil
}
