package service_test

import (
	"context"
	"errors"
	"testing"

	"afl-predictions-backend/internal/database/models"
	apperrors "afl-predictions-backend/internal/errors"
	"afl-predictions-backend/internal/mocks"
	"afl-predictions-backend/internal/service"
	"afl-predictions-backend/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PlayerServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockPlayerRepo *mocks.MockPlayerRepositoryInterface
	playerService  *service.PlayerService
	ctx            context.Context
}

func (suite *PlayerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.playerService = service.NewPlayerService(suite.mockPlayerRepo, service.NewValidator())
	suite.ctx = context.Background()
}

func (suite *PlayerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlayerServiceTestSuite) TestLogin_NewPlayer() {
	stored := &models.Player{Name: "Alex", Email: "alex@example.com"}
	stored.ID = 7
	suite.mockPlayerRepo.EXPECT().
		FirstOrCreateByEmail(gomock.Any(), "Alex", "alex@example.com").
		Return(stored, nil)

	player, err := suite.playerService.Login(suite.ctx, &types.LoginForm{Name: " Alex ", Email: "alex@example.com "})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), &types.Player{ID: 7, Name: "Alex", Email: "alex@example.com"}, player)
}

func (suite *PlayerServiceTestSuite) TestLogin_ExistingPlayerKeepsStoredName() {
	stored := &models.Player{Name: "Alex", Email: "alex@example.com"}
	stored.ID = 7
	suite.mockPlayerRepo.EXPECT().
		FirstOrCreateByEmail(gomock.Any(), "Alexander", "alex@example.com").
		Return(stored, nil)

	player, err := suite.playerService.Login(suite.ctx, &types.LoginForm{Name: "Alexander", Email: "alex@example.com"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), uint(7), player.ID)
	assert.Equal(suite.T(), "Alex", player.Name)
}

func (suite *PlayerServiceTestSuite) TestLogin_ValidationErrors() {
	testCases := []struct {
		name  string
		form  types.LoginForm
		field string
	}{
		{name: "missing name", form: types.LoginForm{Email: "a@b.com"}, field: "name"},
		{name: "blank name", form: types.LoginForm{Name: "   ", Email: "a@b.com"}, field: "name"},
		{name: "missing email", form: types.LoginForm{Name: "Alex"}, field: "email"},
		{name: "malformed email", form: types.LoginForm{Name: "Alex", Email: "not-an-email"}, field: "email"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			form := tc.form
			_, err := suite.playerService.Login(suite.ctx, &form)

			suite.Require().Error(err)
			assert.True(suite.T(), apperrors.IsValidation(err))
			assert.Equal(suite.T(), tc.field, apperrors.ValidationField(err))
		})
	}
}

func (suite *PlayerServiceTestSuite) TestLogin_RepositoryError() {
	suite.mockPlayerRepo.EXPECT().
		FirstOrCreateByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := suite.playerService.Login(suite.ctx, &types.LoginForm{Name: "Alex", Email: "alex@example.com"})

	suite.Require().Error(err)
	assert.Contains(suite.T(), err.Error(), "failed to identify player")
	assert.False(suite.T(), apperrors.IsValidation(err))
}

func (suite *PlayerServiceTestSuite) TestGetByID_NotFound() {
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), uint(3)).Return(nil, apperrors.ErrPlayerNotFound)

	_, err := suite.playerService.GetByID(suite.ctx, 3)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerNotFound)
}

func TestPlayerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}
