package service

import (
	"context"
	"fmt"

	"afl-predictions-backend/internal/database/models"
	apperrors "afl-predictions-backend/internal/errors"
	"afl-predictions-backend/internal/repository"
	"afl-predictions-backend/pkg/types"
)

// GameService serves rounds and their fixtures
type GameService struct {
	roundRepo repository.RoundRepositoryInterface
	gameRepo  repository.GameRepositoryInterface
}

// Ensure GameService implements GameServiceInterface
var _ GameServiceInterface = (*GameService)(nil)

// NewGameService creates a new game service
func NewGameService(roundRepo repository.RoundRepositoryInterface, gameRepo repository.GameRepositoryInterface) *GameService {
	return &GameService{
		roundRepo: roundRepo,
		gameRepo:  gameRepo,
	}
}

// GetCurrentRound returns the highest round number. It fails with ErrNoRounds before any round is loaded.
func (s *GameService) GetCurrentRound(ctx context.Context) (int, error) {
	current, err := s.roundRepo.GetCurrentRoundNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get current round: %w", err)
	}
	return current, nil
}

// GetGamesForRound returns the fixtures of a round with both teams nested.
// An unknown round has no games, so the result is empty rather than an error.
func (s *GameService) GetGamesForRound(ctx context.Context, roundNumber int) ([]types.Game, error) {
	if roundNumber < 1 {
		return nil, apperrors.ErrInvalidRoundNumber
	}

	games, err := s.gameRepo.GetByRoundNumber(ctx, roundNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	resp := make([]types.Game, len(games))
	for i := range games {
		resp[i] = toGame(&games[i])
	}
	return resp, nil
}

func toGame(g *models.Game) types.Game {
	return types.Game{
		ID:       g.ID,
		RoundID:  g.RoundID,
		Team1ID:  g.Team1ID,
		Team2ID:  g.Team2ID,
		WinnerID: g.WinnerID,
		Team1:    toTeamRef(g.Team1),
		Team2:    toTeamRef(g.Team2),
		Winner:   toTeamRef(g.Winner),
	}
}
