package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"afl-predictions-backend/internal/api/handlers"
	"afl-predictions-backend/internal/auth"
	apperrors "afl-predictions-backend/internal/errors"
	"afl-predictions-backend/internal/mocks"
	"afl-predictions-backend/internal/testutils"
	"afl-predictions-backend/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const callerID uint = 5

// withPlayer stands in for RequireSession
func withPlayer(playerID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextPlayerID, playerID)
		c.Next()
	}
}

// PredictionHandlerTestSuite defines the test suite for PredictionHandler
type PredictionHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockPredictionSvc *mocks.MockPredictionServiceInterface
	http              *testutils.HTTPTestSuite
}

func (suite *PredictionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPredictionSvc = mocks.NewMockPredictionServiceInterface(suite.ctrl)
	handler := handlers.NewPredictionHandler(suite.mockPredictionSvc)

	suite.http = testutils.SetupHTTPTest()
	authed := suite.http.Router.Group("", withPlayer(callerID))
	authed.POST("/predictions", handler.SubmitPrediction)
	authed.GET("/predictions/stats", handler.GetPlayerStats)
	authed.GET("/has-submitted", handler.HasSubmitted)

	suite.http.Router.POST("/anonymous/predictions", handler.SubmitPrediction)
}

func (suite *PredictionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PredictionHandlerTestSuite) TestSubmitPrediction_Success() {
	req := &types.PredictionRequest{GameID: 12, PredictedWinnerID: 7}
	suite.mockPredictionSvc.EXPECT().Submit(gomock.Any(), callerID, req).Return(&types.SuccessResponse{Success: true}, nil)

	w := suite.http.MakeRequest(suite.T(), http.MethodPost, "/predictions", req)

	var got types.SuccessResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.True(suite.T(), got.Success)
}

func (suite *PredictionHandlerTestSuite) TestSubmitPrediction_InvalidBody() {
	w := suite.http.MakeRequest(suite.T(), http.MethodPost, "/predictions", "{not json")

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid request body")
}

func (suite *PredictionHandlerTestSuite) TestSubmitPrediction_WinnerNotInGame() {
	req := &types.PredictionRequest{GameID: 12, PredictedWinnerID: 99}
	suite.mockPredictionSvc.EXPECT().Submit(gomock.Any(), callerID, req).Return(nil, apperrors.ErrPredictedWinnerNotInGame)

	w := suite.http.MakeRequest(suite.T(), http.MethodPost, "/predictions", req)

	var got types.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &got)
	assert.Equal(suite.T(), "predicted_winner_id", got.Field)
	assert.Equal(suite.T(), apperrors.ErrPredictedWinnerNotInGame.Error(), got.Error)
}

func (suite *PredictionHandlerTestSuite) TestSubmitPrediction_GameNotFound() {
	req := &types.PredictionRequest{GameID: 404, PredictedWinnerID: 1}
	suite.mockPredictionSvc.EXPECT().Submit(gomock.Any(), callerID, req).Return(nil, apperrors.NewNotFoundError("game"))

	w := suite.http.MakeRequest(suite.T(), http.MethodPost, "/predictions", req)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "game not found")
}

func (suite *PredictionHandlerTestSuite) TestSubmitPrediction_StorageError() {
	req := &types.PredictionRequest{GameID: 12, PredictedWinnerID: 7}
	suite.mockPredictionSvc.EXPECT().Submit(gomock.Any(), callerID, req).Return(nil, errors.New("deadlock detected"))

	w := suite.http.MakeRequest(suite.T(), http.MethodPost, "/predictions", req)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to submit prediction")
}

func (suite *PredictionHandlerTestSuite) TestSubmitPrediction_WithoutSession() {
	w := suite.http.MakeRequest(suite.T(), http.MethodPost, "/anonymous/predictions", &types.PredictionRequest{GameID: 1, PredictedWinnerID: 1})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "Not logged in")
}

func (suite *PredictionHandlerTestSuite) TestGetPlayerStats_Success() {
	stats := []types.PlayerStats{
		{Player: types.Player{ID: 1, Name: "Alex"}, Wins: 3, Losses: 1, Total: 2},
		{Player: types.Player{ID: 2, Name: "Sam"}, Wins: 0, Losses: 0, Total: 0},
	}
	suite.mockPredictionSvc.EXPECT().GetStats(gomock.Any()).Return(stats, nil)

	w := suite.http.MakeRequest(suite.T(), http.MethodGet, "/predictions/stats", nil)

	var got []types.PlayerStats
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), stats, got)
}

func (suite *PredictionHandlerTestSuite) TestGetPlayerStats_StorageError() {
	suite.mockPredictionSvc.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("boom"))

	w := suite.http.MakeRequest(suite.T(), http.MethodGet, "/predictions/stats", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to get player stats")
}

func (suite *PredictionHandlerTestSuite) TestHasSubmitted_DefaultsToCaller() {
	suite.mockPredictionSvc.EXPECT().HasSubmitted(gomock.Any(), callerID, 3).Return(true, nil)

	w := suite.http.MakeRequest(suite.T(), http.MethodGet, "/has-submitted?round_number=3", nil)

	var got types.HasSubmittedResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.True(suite.T(), got.HasSubmitted)
}

func (suite *PredictionHandlerTestSuite) TestHasSubmitted_OtherPlayer() {
	suite.mockPredictionSvc.EXPECT().HasSubmitted(gomock.Any(), uint(9), 4).Return(false, nil)

	w := suite.http.MakeRequest(suite.T(), http.MethodGet, "/has-submitted?round_number=4&player_id=9", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"hasSubmitted":false}`, w.Body.String())
}

func (suite *PredictionHandlerTestSuite) TestHasSubmitted_InvalidQuery() {
	cases := map[string]string{
		"/has-submitted":                             "Invalid round number",
		"/has-submitted?round_number=x":              "Invalid round number",
		"/has-submitted?round_number=0":              "Invalid round number",
		"/has-submitted?round_number=1&player_id=-1": "Invalid player id",
		"/has-submitted?round_number=1&player_id=0":  "Invalid player id",
	}
	for url, message := range cases {
		w := suite.http.MakeRequest(suite.T(), http.MethodGet, url, nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, message)
	}
}

func TestPredictionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PredictionHandlerTestSuite))
}
