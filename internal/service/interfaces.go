package service

import (
	"context"

	"afl-predictions-backend/pkg/types"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	Login(ctx context.Context, req *types.LoginForm) (*types.Player, error)
	GetByID(ctx context.Context, id uint) (*types.Player, error)
}

// GameServiceInterface defines the interface for game service
type GameServiceInterface interface {
	GetCurrentRound(ctx context.Context) (int, error)
	GetGamesForRound(ctx context.Context, roundNumber int) ([]types.Game, error)
}

// PredictionServiceInterface defines the interface for prediction service
type PredictionServiceInterface interface {
	Submit(ctx context.Context, playerID uint, req *types.PredictionRequest) (*types.SuccessResponse, error)
	GetStats(ctx context.Context) ([]types.PlayerStats, error)
	HasSubmitted(ctx context.Context, playerID uint, roundNumber int) (bool, error)
}

// LadderServiceInterface defines the interface for ladder prediction service
type LadderServiceInterface interface {
	Submit(ctx context.Context, playerID uint, req *types.LadderPredictionRequest) (*types.SuccessResponse, error)
	GetForRound(ctx context.Context, roundNumber int) ([]types.LadderPrediction, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	GetAll(ctx context.Context) ([]types.Team, error)
}
