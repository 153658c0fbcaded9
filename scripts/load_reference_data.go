package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"afl-predictions-backend/internal/config"
	"afl-predictions-backend/internal/database"
	"afl-predictions-backend/internal/logger"
	"afl-predictions-backend/internal/repository"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TeamsFile is the layout of teams.yaml
type TeamsFile struct {
	Teams []string `yaml:"teams"`
}

// GameData is one fixture; Winner stays empty until the result is known
type GameData struct {
	Team1  string `yaml:"team1"`
	Team2  string `yaml:"team2"`
	Winner string `yaml:"winner,omitempty"`
}

// RoundData is one round and its fixtures
type RoundData struct {
	Number int        `yaml:"number"`
	Games  []GameData `yaml:"games"`
}

// RoundsFile is the layout of rounds.yaml
type RoundsFile struct {
	Rounds []RoundData `yaml:"rounds"`
}

// ReferenceData is everything the loader writes
type ReferenceData struct {
	Teams  []string
	Rounds []RoundData
}

func main() {
	dataDir := flag.String("data", "scripts/data", "directory holding teams.yaml and rounds.yaml")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	data, err := loadReferenceData(*dataDir)
	if err != nil {
		logrus.Fatalf("Failed to read reference data: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := apply(context.Background(), db, data); err != nil {
		logrus.Fatalf("Failed to load reference data: %v", err)
	}

	logrus.Info("Reference data loaded")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: gormlogger.Silent}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.WithError(err).Warnf("Database not ready (%d/%d)", attempt, maxAttempts)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadReferenceData reads and checks teams.yaml and rounds.yaml from dataDir
func loadReferenceData(dataDir string) (*ReferenceData, error) {
	var teams TeamsFile
	if err := readYAML(filepath.Join(dataDir, "teams.yaml"), &teams); err != nil {
		return nil, err
	}

	var rounds RoundsFile
	if err := readYAML(filepath.Join(dataDir, "rounds.yaml"), &rounds); err != nil {
		return nil, err
	}

	data := &ReferenceData{Teams: teams.Teams, Rounds: rounds.Rounds}
	if err := data.check(); err != nil {
		return nil, err
	}
	return data, nil
}

func readYAML(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// check rejects files that reference unknown teams or name impossible winners
func (d *ReferenceData) check() error {
	known := make(map[string]struct{}, len(d.Teams))
	for _, name := range d.Teams {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("teams.yaml: empty team name")
		}
		if _, dup := known[name]; dup {
			return fmt.Errorf("teams.yaml: duplicate team %q", name)
		}
		known[name] = struct{}{}
	}

	seen := make(map[int]struct{}, len(d.Rounds))
	for _, round := range d.Rounds {
		if round.Number < 1 {
			return fmt.Errorf("rounds.yaml: round number %d must be positive", round.Number)
		}
		if _, dup := seen[round.Number]; dup {
			return fmt.Errorf("rounds.yaml: duplicate round %d", round.Number)
		}
		seen[round.Number] = struct{}{}

		for i, game := range round.Games {
			for _, name := range []string{game.Team1, game.Team2} {
				if _, ok := known[name]; !ok {
					return fmt.Errorf("round %d game %d: unknown team %q", round.Number, i+1, name)
				}
			}
			if game.Team1 == game.Team2 {
				return fmt.Errorf("round %d game %d: %q cannot play itself", round.Number, i+1, game.Team1)
			}
			if game.Winner != "" && game.Winner != game.Team1 && game.Winner != game.Team2 {
				return fmt.Errorf("round %d game %d: winner %q is not playing", round.Number, i+1, game.Winner)
			}
		}
	}
	return nil
}

// apply writes the reference data idempotently; re-running records newly known results
func apply(ctx context.Context, db *gorm.DB, data *ReferenceData) error {
	teamRepo := repository.NewTeamRepository(db)
	roundRepo := repository.NewRoundRepository(db)
	gameRepo := repository.NewGameRepository(db)

	teamIDs := make(map[string]uint, len(data.Teams))
	for _, name := range data.Teams {
		team, err := teamRepo.FirstOrCreateByName(ctx, strings.TrimSpace(name))
		if err != nil {
			return fmt.Errorf("team %q: %w", name, err)
		}
		teamIDs[team.Name] = team.ID
	}
	logrus.WithField("count", len(teamIDs)).Info("Teams loaded")

	games, decided := 0, 0
	for _, roundData := range data.Rounds {
		round, err := roundRepo.FirstOrCreateByNumber(ctx, roundData.Number)
		if err != nil {
			return fmt.Errorf("round %d: %w", roundData.Number, err)
		}

		for _, gameData := range roundData.Games {
			game, err := gameRepo.FirstOrCreate(ctx, round.ID, teamIDs[gameData.Team1], teamIDs[gameData.Team2])
			if err != nil {
				return fmt.Errorf("round %d %s v %s: %w", roundData.Number, gameData.Team1, gameData.Team2, err)
			}
			games++

			if gameData.Winner == "" {
				continue
			}
			winnerID := teamIDs[gameData.Winner]
			if err := gameRepo.SetWinner(ctx, game.ID, &winnerID); err != nil {
				return fmt.Errorf("round %d result %s v %s: %w", roundData.Number, gameData.Team1, gameData.Team2, err)
			}
			decided++
		}
	}
	logrus.WithFields(logrus.Fields{
		"rounds":  len(data.Rounds),
		"games":   games,
		"decided": decided,
	}).Info("Rounds loaded")

	return nil
}
