package handlers

import (
	"net/http"

	"afl-predictions-backend/internal/service"
	"afl-predictions-backend/pkg/types"

	"github.com/gin-gonic/gin"
)

// LadderHandler handles HTTP requests for ladder predictions
type LadderHandler struct {
	ladderService service.LadderServiceInterface
}

// NewLadderHandler creates a new ladder handler
func NewLadderHandler(ladderService service.LadderServiceInterface) *LadderHandler {
	return &LadderHandler{
		ladderService: ladderService,
	}
}

// SubmitLadderPrediction handles POST /ladder-predictions
// @Summary Submit a ladder prediction
// @Description Records where the caller expects a team to finish the round, replacing any earlier guess for that team and round
// @Tags ladder
// @Accept json
// @Produce json
// @Param request body types.LadderPredictionRequest true "Ladder prediction"
// @Success 200 {object} types.SuccessResponse
// @Failure 400 {object} types.ErrorResponse "Invalid body or position outside the ladder"
// @Failure 401 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse "Team not found"
// @Failure 500 {object} types.ErrorResponse
// @Router /ladder-predictions [post]
func (h *LadderHandler) SubmitLadderPrediction(c *gin.Context) {
	playerID, ok := playerIDFromContext(c)
	if !ok {
		return
	}

	var req types.LadderPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.ladderService.Submit(c.Request.Context(), playerID, &req)
	if err != nil {
		respondError(c, err, "Failed to submit ladder prediction")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLadderPredictions handles GET /ladder-predictions/round/:roundNumber
// @Summary Ladder predictions of a round
// @Description Every player's ladder predictions for the round with the team nested, top position first
// @Tags ladder
// @Produce json
// @Param roundNumber path int true "Round number"
// @Success 200 {array} types.LadderPrediction
// @Failure 400 {object} types.ErrorResponse
// @Failure 401 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /ladder-predictions/round/{roundNumber} [get]
func (h *LadderHandler) GetLadderPredictions(c *gin.Context) {
	roundNumber, ok := roundNumberParam(c)
	if !ok {
		return
	}

	predictions, err := h.ladderService.GetForRound(c.Request.Context(), roundNumber)
	if err != nil {
		respondError(c, err, "Failed to get ladder predictions")
		return
	}

	c.JSON(http.StatusOK, predictions)
}
