package handlers_test

import (
	"net/http"
	"testing"

	"afl-predictions-backend/internal/api/handlers"
	"afl-predictions-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestLive(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.GET("/health/live", handlers.NewHealthHandler(nil).Live)

	w := h.MakeRequest(t, http.MethodGet, "/health/live", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(t, w, http.StatusOK, &body)
	assert.Equal(t, true, body["alive"])
	assert.Contains(t, body, "timestamp")
}
