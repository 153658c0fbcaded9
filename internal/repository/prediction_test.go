//go:build integration
// +build integration

package repository

import (
	"context"
	"sync"
	"testing"

	"afl-predictions-backend/internal/database/models"
	apperrors "afl-predictions-backend/internal/errors"
	"afl-predictions-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// PredictionRepositoryTestSuite tests the PredictionRepository
type PredictionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PredictionRepository
	factories     *testutils.FactorySet
	fx            *testutils.Fixture
	ctx           context.Context
}

func (suite *PredictionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPredictionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *PredictionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *PredictionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	fx, err := testutils.SeedFixture(suite.baseTestSuite.DB)
	suite.Require().NoError(err)
	suite.fx = fx
}

func (suite *PredictionRepositoryTestSuite) createPlayer(name string) *models.Player {
	player := suite.factories.Player.Create()
	player.Name = name
	suite.Require().NoError(suite.baseTestSuite.DB.Create(player).Error)
	return player
}

func (suite *PredictionRepositoryTestSuite) tip(playerID uint, game *models.Game, winnerID uint) {
	err := suite.repo.Upsert(suite.ctx, &models.Prediction{
		PlayerID:          playerID,
		GameID:            game.ID,
		PredictedWinnerID: winnerID,
	})
	suite.Require().NoError(err)
}

func (suite *PredictionRepositoryTestSuite) countRows(playerID, gameID uint) int64 {
	var count int64
	suite.baseTestSuite.DB.Model(&models.Prediction{}).
		Where("player_id = ? AND game_id = ?", playerID, gameID).
		Count(&count)
	return count
}

// TestUpsertReplacesPrediction keeps one row holding the latest tip
func (suite *PredictionRepositoryTestSuite) TestUpsertReplacesPrediction() {
	player := suite.createPlayer("Alex")
	game := suite.fx.Games[2]

	suite.tip(player.ID, game, game.Team1ID)
	suite.tip(player.ID, game, game.Team2ID)
	suite.tip(player.ID, game, game.Team1ID)

	suite.Equal(int64(1), suite.countRows(player.ID, game.ID))

	stored, err := suite.repo.GetByPlayerAndGame(suite.ctx, player.ID, game.ID)
	suite.Require().NoError(err)
	suite.Equal(game.Team1ID, stored.PredictedWinnerID)
}

// TestUpsertConcurrent never produces two rows for one (player, game)
func (suite *PredictionRepositoryTestSuite) TestUpsertConcurrent() {
	player := suite.createPlayer("Alex")
	game := suite.fx.Games[3]
	choices := []uint{game.Team1ID, game.Team2ID}

	const workers = 10
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = suite.repo.Upsert(suite.ctx, &models.Prediction{
				PlayerID:          player.ID,
				GameID:            game.ID,
				PredictedWinnerID: choices[i%2],
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		suite.NoError(err)
	}
	suite.Equal(int64(1), suite.countRows(player.ID, game.ID))

	stored, err := suite.repo.GetByPlayerAndGame(suite.ctx, player.ID, game.ID)
	suite.Require().NoError(err)
	suite.Contains(choices, stored.PredictedWinnerID)
}

// TestGetByPlayerAndGameNotFound tests a missing tip
func (suite *PredictionRepositoryTestSuite) TestGetByPlayerAndGameNotFound() {
	player := suite.createPlayer("Alex")
	_, err := suite.repo.GetByPlayerAndGame(suite.ctx, player.ID, suite.fx.Games[0].ID)
	suite.ErrorIs(err, apperrors.ErrPredictionNotFound)
}

// TestUpsertMissingReferences reports which referenced row is gone
func (suite *PredictionRepositoryTestSuite) TestUpsertMissingReferences() {
	player := suite.createPlayer("Alex")
	game := suite.fx.Games[2]

	err := suite.repo.Upsert(suite.ctx, &models.Prediction{PlayerID: 999999, GameID: game.ID, PredictedWinnerID: game.Team1ID})
	suite.ErrorIs(err, apperrors.ErrPlayerNotFound)

	err = suite.repo.Upsert(suite.ctx, &models.Prediction{PlayerID: player.ID, GameID: 999999, PredictedWinnerID: game.Team1ID})
	suite.ErrorIs(err, apperrors.ErrGameNotFound)

	err = suite.repo.Upsert(suite.ctx, &models.Prediction{PlayerID: player.ID, GameID: game.ID, PredictedWinnerID: 999999})
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestCountByPlayerAndRound counts only the player's tips in the requested round
func (suite *PredictionRepositoryTestSuite) TestCountByPlayerAndRound() {
	alex := suite.createPlayer("Alex")
	sam := suite.createPlayer("Sam")

	suite.tip(alex.ID, suite.fx.Games[0], suite.fx.Games[0].Team1ID)
	suite.tip(alex.ID, suite.fx.Games[1], suite.fx.Games[1].Team1ID)
	suite.tip(sam.ID, suite.fx.Games[2], suite.fx.Games[2].Team1ID)

	count, err := suite.repo.CountByPlayerAndRound(suite.ctx, alex.ID, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	count, err = suite.repo.CountByPlayerAndRound(suite.ctx, alex.ID, 2)
	suite.Require().NoError(err)
	suite.Zero(count)

	count, err = suite.repo.CountByPlayerAndRound(suite.ctx, sam.ID, 2)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

// TestPlayerStatsOneWinOneLoss: a miss on game 1 and a hit on game 2 give wins=1, losses=1
func (suite *PredictionRepositoryTestSuite) TestPlayerStatsOneWinOneLoss() {
	player := suite.createPlayer("Alex")
	game1 := suite.fx.Games[0] // won by Teams[0]
	game2 := suite.fx.Games[1] // won by Teams[3]

	suite.tip(player.ID, game1, game1.Team2ID)
	suite.tip(player.ID, game2, *game2.WinnerID)

	rows, err := suite.repo.GetPlayerStats(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(player.ID, rows[0].PlayerID)
	suite.Equal("Alex", rows[0].PlayerName)
	suite.Equal(int64(1), rows[0].Wins)
	suite.Equal(int64(1), rows[0].Losses)
}

// TestPlayerStatsPendingAndEmpty ignores pending games and keeps players without tips
func (suite *PredictionRepositoryTestSuite) TestPlayerStatsPendingAndEmpty() {
	tipster := suite.createPlayer("Tipster")
	idle := suite.createPlayer("Idle")

	suite.tip(tipster.ID, suite.fx.Games[2], suite.fx.Games[2].Team1ID)
	suite.tip(tipster.ID, suite.fx.Games[3], suite.fx.Games[3].Team2ID)

	rows, err := suite.repo.GetPlayerStats(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	// all zeros, so the tie falls back to player id
	suite.Equal(tipster.ID, rows[0].PlayerID)
	suite.Equal(idle.ID, rows[1].PlayerID)
	for _, row := range rows {
		suite.Zero(row.Wins)
		suite.Zero(row.Losses)
	}
}

// TestPlayerStatsOrdering sorts by wins descending, then losses ascending
func (suite *PredictionRepositoryTestSuite) TestPlayerStatsOrdering() {
	g1, g2 := suite.fx.Games[0], suite.fx.Games[1]
	loserOfG1, loserOfG2 := g1.Team2ID, g2.Team1ID

	twoLosses := suite.createPlayer("TwoLosses")
	suite.tip(twoLosses.ID, g1, loserOfG1)
	suite.tip(twoLosses.ID, g2, loserOfG2)

	oneWinOneLoss := suite.createPlayer("OneWinOneLoss")
	suite.tip(oneWinOneLoss.ID, g1, *g1.WinnerID)
	suite.tip(oneWinOneLoss.ID, g2, loserOfG2)

	twoWins := suite.createPlayer("TwoWins")
	suite.tip(twoWins.ID, g1, *g1.WinnerID)
	suite.tip(twoWins.ID, g2, *g2.WinnerID)

	oneWin := suite.createPlayer("OneWin")
	suite.tip(oneWin.ID, g1, *g1.WinnerID)

	rows, err := suite.repo.GetPlayerStats(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 4)

	suite.Equal(twoWins.ID, rows[0].PlayerID)
	suite.Equal(oneWin.ID, rows[1].PlayerID)
	suite.Equal(oneWinOneLoss.ID, rows[2].PlayerID)
	suite.Equal(twoLosses.ID, rows[3].PlayerID)
	suite.Equal(int64(2), rows[3].Losses)
}

func TestPredictionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PredictionRepositoryTestSuite))
}
