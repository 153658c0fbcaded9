package service

import (
	"context"
	"fmt"

	"afl-predictions-backend/internal/database/models"
	"afl-predictions-backend/internal/repository"
	"afl-predictions-backend/pkg/types"
)

// TeamService serves the list of clubs
type TeamService struct {
	repo repository.TeamRepositoryInterface
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface) *TeamService {
	return &TeamService{repo: repo}
}

// GetAll returns every team
func (s *TeamService) GetAll(ctx context.Context) ([]types.Team, error) {
	teams, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	resp := make([]types.Team, len(teams))
	for i := range teams {
		resp[i] = toTeam(&teams[i])
	}
	return resp, nil
}

func toTeam(t *models.Team) types.Team {
	return types.Team{ID: t.ID, Name: t.Name}
}

// toTeamRef converts an optional preloaded association
func toTeamRef(t *models.Team) *types.Team {
	if t == nil {
		return nil
	}
	team := toTeam(t)
	return &team
}
