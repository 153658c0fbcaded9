package repository

import (
	"context"

	"afl-predictions-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	GetByID(ctx context.Context, id uint) (*models.Player, error)
	GetByEmail(ctx context.Context, email string) (*models.Player, error)
	FirstOrCreateByEmail(ctx context.Context, name, email string) (*models.Player, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Team, error)
	GetByID(ctx context.Context, id uint) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	Count(ctx context.Context) (int64, error)
	FirstOrCreateByName(ctx context.Context, name string) (*models.Team, error)
}

// RoundRepositoryInterface defines the interface for round repository operations
type RoundRepositoryInterface interface {
	GetCurrentRoundNumber(ctx context.Context) (int, error)
	GetByNumber(ctx context.Context, roundNumber int) (*models.Round, error)
	FirstOrCreateByNumber(ctx context.Context, roundNumber int) (*models.Round, error)
}

// GameRepositoryInterface defines the interface for game repository operations
type GameRepositoryInterface interface {
	GetByID(ctx context.Context, id uint) (*models.Game, error)
	GetByRoundNumber(ctx context.Context, roundNumber int) ([]models.Game, error)
	FirstOrCreate(ctx context.Context, roundID, team1ID, team2ID uint) (*models.Game, error)
	SetWinner(ctx context.Context, gameID uint, winnerID *uint) error
}

// PredictionRepositoryInterface defines the interface for prediction repository operations
type PredictionRepositoryInterface interface {
	Upsert(ctx context.Context, prediction *models.Prediction) error
	GetByPlayerAndGame(ctx context.Context, playerID, gameID uint) (*models.Prediction, error)
	CountByPlayerAndRound(ctx context.Context, playerID uint, roundNumber int) (int64, error)
	GetPlayerStats(ctx context.Context) ([]models.PlayerStatsRow, error)
}

// LadderPredictionRepositoryInterface defines the interface for ladder prediction repository operations
type LadderPredictionRepositoryInterface interface {
	Upsert(ctx context.Context, prediction *models.LadderPrediction) error
	GetByPlayerRoundTeam(ctx context.Context, playerID uint, roundNumber int, teamID uint) (*models.LadderPrediction, error)
	GetByRoundNumber(ctx context.Context, roundNumber int) ([]models.LadderPrediction, error)
}
