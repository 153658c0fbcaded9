package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"afl-predictions-backend/internal/api/handlers"
	apperrors "afl-predictions-backend/internal/errors"
	"afl-predictions-backend/internal/mocks"
	"afl-predictions-backend/internal/testutils"
	"afl-predictions-backend/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LadderHandlerTestSuite defines the test suite for LadderHandler
type LadderHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockLadderSvc *mocks.MockLadderServiceInterface
	http          *testutils.HTTPTestSuite
}

func (suite *LadderHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLadderSvc = mocks.NewMockLadderServiceInterface(suite.ctrl)
	handler := handlers.NewLadderHandler(suite.mockLadderSvc)

	suite.http = testutils.SetupHTTPTest()
	authed := suite.http.Router.Group("", withPlayer(callerID))
	authed.POST("/ladder-predictions", handler.SubmitLadderPrediction)
	authed.GET("/ladder-predictions/round/:roundNumber", handler.GetLadderPredictions)
}

func (suite *LadderHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LadderHandlerTestSuite) TestSubmitLadderPrediction_Success() {
	req := &types.LadderPredictionRequest{RoundNumber: 5, TeamID: 7, PredictedPosition: 1}
	suite.mockLadderSvc.EXPECT().Submit(gomock.Any(), callerID, req).Return(&types.SuccessResponse{Success: true}, nil)

	w := suite.http.MakeRequest(suite.T(), http.MethodPost, "/ladder-predictions", req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"success":true}`, w.Body.String())
}

func (suite *LadderHandlerTestSuite) TestSubmitLadderPrediction_InvalidBody() {
	w := suite.http.MakeRequest(suite.T(), http.MethodPost, "/ladder-predictions", `{"round_number":"five"}`)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid request body")
}

func (suite *LadderHandlerTestSuite) TestSubmitLadderPrediction_PositionOutOfRange() {
	req := &types.LadderPredictionRequest{RoundNumber: 5, TeamID: 7, PredictedPosition: 19}
	suite.mockLadderSvc.EXPECT().Submit(gomock.Any(), callerID, req).Return(nil, apperrors.ErrInvalidLadderPosition)

	w := suite.http.MakeRequest(suite.T(), http.MethodPost, "/ladder-predictions", req)

	var got types.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &got)
	assert.Equal(suite.T(), "predicted_position", got.Field)
}

func (suite *LadderHandlerTestSuite) TestSubmitLadderPrediction_TeamNotFound() {
	req := &types.LadderPredictionRequest{RoundNumber: 5, TeamID: 70, PredictedPosition: 1}
	suite.mockLadderSvc.EXPECT().Submit(gomock.Any(), callerID, req).Return(nil, apperrors.NewNotFoundError("team"))

	w := suite.http.MakeRequest(suite.T(), http.MethodPost, "/ladder-predictions", req)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "team not found")
}

func (suite *LadderHandlerTestSuite) TestGetLadderPredictions_Success() {
	predictions := []types.LadderPrediction{
		{ID: 1, PlayerID: 5, RoundNumber: 2, TeamID: 7, PredictedPosition: 1, Team: &types.Team{ID: 7, Name: "Geelong"}},
		{ID: 2, PlayerID: 6, RoundNumber: 2, TeamID: 8, PredictedPosition: 2, Team: &types.Team{ID: 8, Name: "Carlton"}},
	}
	suite.mockLadderSvc.EXPECT().GetForRound(gomock.Any(), 2).Return(predictions, nil)

	w := suite.http.MakeRequest(suite.T(), http.MethodGet, "/ladder-predictions/round/2", nil)

	var got []types.LadderPrediction
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), predictions, got)
}

func (suite *LadderHandlerTestSuite) TestGetLadderPredictions_InvalidRoundNumber() {
	w := suite.http.MakeRequest(suite.T(), http.MethodGet, "/ladder-predictions/round/first", nil)

	var got types.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &got)
	assert.Equal(suite.T(), "roundNumber", got.Field)
}

func (suite *LadderHandlerTestSuite) TestGetLadderPredictions_StorageError() {
	suite.mockLadderSvc.EXPECT().GetForRound(gomock.Any(), 2).Return(nil, errors.New("boom"))

	w := suite.http.MakeRequest(suite.T(), http.MethodGet, "/ladder-predictions/round/2", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to get ladder predictions")
}

func TestLadderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LadderHandlerTestSuite))
}
