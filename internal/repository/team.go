package repository

import (
	"context"

	"afl-predictions-backend/internal/database/models"
	apperrors "afl-predictions-backend/internal/errors"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// Ensure TeamRepository implements TeamRepositoryInterface
var _ TeamRepositoryInterface = (*TeamRepository)(nil)

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetAll retrieves every team in insertion order
func (r *TeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	if err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, apperrors.ErrTeamNotFound)
	}
	return &team, nil
}

// GetByName retrieves a team by its exact name
func (r *TeamRepository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	var team models.Team
	if err := r.db.WithContext(ctx).First(&team, "name = ?", name).Error; err != nil {
		return nil, translateNotFound(err, apperrors.ErrTeamNotFound)
	}
	return &team, nil
}

// Count returns the number of teams, which is also the size of the ladder
func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Team{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// FirstOrCreateByName returns the team with the given name, creating it if needed
func (r *TeamRepository) FirstOrCreateByName(ctx context.Context, name string) (*models.Team, error) {
	team := models.Team{Name: name}
	if err := r.db.WithContext(ctx).Where(models.Team{Name: name}).FirstOrCreate(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}
