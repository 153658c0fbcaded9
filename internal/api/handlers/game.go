package handlers

import (
	"net/http"

	"afl-predictions-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GameHandler handles HTTP requests for rounds and games
type GameHandler struct {
	gameService service.GameServiceInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService service.GameServiceInterface) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// GetCurrentRound handles GET /games/current-round
// @Summary Current round
// @Description Returns the highest round number loaded. 404 when no rounds exist yet.
// @Tags games
// @Produce json
// @Success 200 {integer} int "Current round number"
// @Failure 401 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse "No rounds found"
// @Failure 500 {object} types.ErrorResponse
// @Router /games/current-round [get]
func (h *GameHandler) GetCurrentRound(c *gin.Context) {
	current, err := h.gameService.GetCurrentRound(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get current round")
		return
	}

	c.JSON(http.StatusOK, current)
}

// GetGamesForRound handles GET /games/round/:roundNumber
// @Summary Games of a round
// @Description Returns the fixtures of a round with both teams nested, in fixture order. Unknown rounds yield an empty list.
// @Tags games
// @Produce json
// @Param roundNumber path int true "Round number"
// @Success 200 {array} types.Game
// @Failure 400 {object} types.ErrorResponse
// @Failure 401 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /games/round/{roundNumber} [get]
func (h *GameHandler) GetGamesForRound(c *gin.Context) {
	roundNumber, ok := roundNumberParam(c)
	if !ok {
		return
	}

	games, err := h.gameService.GetGamesForRound(c.Request.Context(), roundNumber)
	if err != nil {
		respondError(c, err, "Failed to get games")
		return
	}

	c.JSON(http.StatusOK, games)
}
