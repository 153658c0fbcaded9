package handlers

import (
	"net/http"
	"strconv"

	"afl-predictions-backend/internal/service"
	"afl-predictions-backend/pkg/types"

	"github.com/gin-gonic/gin"
)

// PredictionHandler handles HTTP requests for match-winner predictions
type PredictionHandler struct {
	predictionService service.PredictionServiceInterface
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictionService service.PredictionServiceInterface) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
	}
}

// SubmitPrediction handles POST /predictions
// @Summary Submit a tip
// @Description Records the caller's predicted winner for a game, replacing any earlier tip for that game
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body types.PredictionRequest true "Tip"
// @Success 200 {object} types.SuccessResponse
// @Failure 400 {object} types.ErrorResponse "Invalid body or the team is not playing in the game"
// @Failure 401 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse "Game not found"
// @Failure 500 {object} types.ErrorResponse
// @Router /predictions [post]
func (h *PredictionHandler) SubmitPrediction(c *gin.Context) {
	playerID, ok := playerIDFromContext(c)
	if !ok {
		return
	}

	var req types.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.predictionService.Submit(c.Request.Context(), playerID, &req)
	if err != nil {
		respondError(c, err, "Failed to submit prediction")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPlayerStats handles GET /predictions/stats
// @Summary Leaderboard
// @Description Wins and losses for every player on decided games, most wins first, then fewest losses
// @Tags predictions
// @Produce json
// @Success 200 {array} types.PlayerStats
// @Failure 401 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /predictions/stats [get]
func (h *PredictionHandler) GetPlayerStats(c *gin.Context) {
	stats, err := h.predictionService.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get player stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HasSubmitted handles GET /has-submitted
// @Summary Has a player tipped a round
// @Description Reports whether the player (the caller by default) has tipped any game of the round
// @Tags predictions
// @Produce json
// @Param round_number query int true "Round number"
// @Param player_id query int false "Player id, defaults to the caller"
// @Success 200 {object} types.HasSubmittedResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 401 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /has-submitted [get]
func (h *PredictionHandler) HasSubmitted(c *gin.Context) {
	playerID, ok := playerIDFromContext(c)
	if !ok {
		return
	}

	roundNumber, err := strconv.Atoi(c.Query("round_number"))
	if err != nil || roundNumber < 1 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid round number", Field: "round_number"})
		return
	}

	if raw := c.Query("player_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid player id", Field: "player_id"})
			return
		}
		playerID = uint(id)
	}

	submitted, err := h.predictionService.HasSubmitted(c.Request.Context(), playerID, roundNumber)
	if err != nil {
		respondError(c, err, "Failed to check submission")
		return
	}

	c.JSON(http.StatusOK, types.HasSubmittedResponse{HasSubmitted: submitted})
}
