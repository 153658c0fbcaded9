package testutils

import (
	"fmt"
	"sync/atomic"

	"afl-predictions-backend/internal/database/models"

	"gorm.io/gorm"
)

var factorySeq atomic.Uint64

func nextSeq() uint64 {
	return factorySeq.Add(1)
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with a unique email
func (f *PlayerFactory) Create() *models.Player {
	n := nextSeq()
	return &models.Player{
		Name:  fmt.Sprintf("Player %d", n),
		Email: fmt.Sprintf("player%d@test.com", n),
	}
}

// WithEmail sets a custom name and email for the player
func (f *PlayerFactory) WithEmail(name, email string) *models.Player {
	player := f.Create()
	player.Name = name
	player.Email = email
	return player
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{Name: fmt.Sprintf("Team %d", nextSeq())}
}

// WithName creates a test Team with the given name
func (f *TeamFactory) WithName(name string) *models.Team {
	return &models.Team{Name: name}
}

// GameFactory provides methods to create test Game data
type GameFactory struct{}

// NewGameFactory creates a new GameFactory
func NewGameFactory() *GameFactory {
	return &GameFactory{}
}

// Create creates a pending game between two teams
func (f *GameFactory) Create(roundID, team1ID, team2ID uint) *models.Game {
	return &models.Game{RoundID: roundID, Team1ID: team1ID, Team2ID: team2ID}
}

// WithWinner creates a decided game
func (f *GameFactory) WithWinner(roundID, team1ID, team2ID, winnerID uint) *models.Game {
	game := f.Create(roundID, team1ID, team2ID)
	game.WinnerID = &winnerID
	return game
}

// Fixture is a small league seeded into the database for tests: two rounds of two games each.
// Round 1 is decided (Teams[0] beat Teams[1], Teams[3] beat Teams[2]); round 2 is pending.
type Fixture struct {
	Teams  []*models.Team
	Rounds []*models.Round
	Games  []*models.Game
}

// SeedFixture inserts four teams, rounds 1 and 2, and their games
func SeedFixture(db *gorm.DB) (*Fixture, error) {
	teamFactory := NewTeamFactory()
	gameFactory := NewGameFactory()
	fx := &Fixture{}

	for _, name := range []string{"Geelong", "Collingwood", "Carlton", "Essendon"} {
		team := teamFactory.WithName(name)
		if err := db.Create(team).Error; err != nil {
			return nil, err
		}
		fx.Teams = append(fx.Teams, team)
	}

	for _, number := range []int{1, 2} {
		round := &models.Round{RoundNumber: number}
		if err := db.Create(round).Error; err != nil {
			return nil, err
		}
		fx.Rounds = append(fx.Rounds, round)
	}

	t := fx.Teams
	games := []*models.Game{
		gameFactory.WithWinner(fx.Rounds[0].ID, t[0].ID, t[1].ID, t[0].ID),
		gameFactory.WithWinner(fx.Rounds[0].ID, t[2].ID, t[3].ID, t[3].ID),
		gameFactory.Create(fx.Rounds[1].ID, t[0].ID, t[2].ID),
		gameFactory.Create(fx.Rounds[1].ID, t[1].ID, t[3].ID),
	}
	for _, game := range games {
		if err := db.Create(game).Error; err != nil {
			return nil, err
		}
	}
	fx.Games = games

	return fx, nil
}

// FactorySet bundles every factory for convenient use in suites
type FactorySet struct {
	Player *PlayerFactory
	Team   *TeamFactory
	Game   *GameFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Player: NewPlayerFactory(),
		Team:   NewTeamFactory(),
		Game:   NewGameFactory(),
	}
}
