package service

import (
	"context"
	"fmt"
	"strings"

	"afl-predictions-backend/internal/database/models"
	"afl-predictions-backend/internal/repository"
	"afl-predictions-backend/pkg/types"

	"github.com/go-playground/validator/v10"
)

// PlayerService handles player identification
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	validator *validator.Validate
}

// Ensure PlayerService implements PlayerServiceInterface
var _ PlayerServiceInterface = (*PlayerService)(nil)

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:      repo,
		validator: validator,
	}
}

// Login returns the player registered under the email, registering it with the given name first if needed.
// There is no credential check; an existing email keeps its stored name.
func (s *PlayerService) Login(ctx context.Context, req *types.LoginForm) (*types.Player, error) {
	form := types.LoginForm{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
	}
	if err := validateStruct(s.validator, &form); err != nil {
		return nil, err
	}

	player, err := s.repo.FirstOrCreateByEmail(ctx, form.Name, form.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to identify player: %w", err)
	}

	resp := toPlayer(player)
	return &resp, nil
}

// GetByID retrieves a player by ID
func (s *PlayerService) GetByID(ctx context.Context, id uint) (*types.Player, error) {
	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	resp := toPlayer(player)
	return &resp, nil
}

func toPlayer(p *models.Player) types.Player {
	return types.Player{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
	}
}
