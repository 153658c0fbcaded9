package repository

import (
	"context"

	"afl-predictions-backend/internal/database/models"
	apperrors "afl-predictions-backend/internal/errors"

	"gorm.io/gorm"
)

// GameRepository handles database operations for games
type GameRepository struct {
	db *gorm.DB
}

// Ensure GameRepository implements GameRepositoryInterface
var _ GameRepositoryInterface = (*GameRepository)(nil)

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).First(&game, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, apperrors.ErrGameNotFound)
	}
	return &game, nil
}

// GetByRoundNumber retrieves the games of a round with both teams loaded, in insertion order.
// An unknown round yields an empty slice.
func (r *GameRepository) GetByRoundNumber(ctx context.Context, roundNumber int) ([]models.Game, error) {
	db := r.db.WithContext(ctx)
	roundIDs := db.Model(&models.Round{}).Select("id").Where("round_number = ?", roundNumber)

	games := []models.Game{}
	err := db.
		Preload("Team1").
		Preload("Team2").
		Where("round_id IN (?)", roundIDs).
		Order("id ASC").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

// FirstOrCreate returns the fixture between two teams in a round, creating it if needed
func (r *GameRepository) FirstOrCreate(ctx context.Context, roundID, team1ID, team2ID uint) (*models.Game, error) {
	game := models.Game{RoundID: roundID, Team1ID: team1ID, Team2ID: team2ID}
	err := r.db.WithContext(ctx).
		Where("round_id = ? AND team1_id = ? AND team2_id = ?", roundID, team1ID, team2ID).
		FirstOrCreate(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// SetWinner records (or clears, with nil) the result of a game
func (r *GameRepository) SetWinner(ctx context.Context, gameID uint, winnerID *uint) error {
	result := r.db.WithContext(ctx).Model(&models.Game{}).Where("id = ?", gameID).Update("winner_id", winnerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrGameNotFound
	}
	return nil
}
