// Package client is a typed wrapper around the prediction league HTTP API. A Client keeps the
// session cookie in its jar, so a successful Login authenticates every later call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"afl-predictions-backend/pkg/types"
)

const defaultTimeout = 30 * time.Second

// Status classes an *APIError can be matched against with errors.Is
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("not logged in")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
)

// APIError is returned for every failed call. Message is the generic per-operation text;
// ServerMessage is whatever the server put in its error body, if anything.
type APIError struct {
	Op            string
	StatusCode    int
	Message       string
	ServerMessage string
	Err           error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches the status class sentinels
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrServer:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// Client calls the API rooted at baseURL, e.g. http://localhost:3003/rules/api
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default client. It should carry a cookie jar, or sessions won't stick.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout of the underlying http.Client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a client with its own cookie jar
func New(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar, Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Login identifies the player and starts a session
func (c *Client) Login(ctx context.Context, form *types.LoginForm) (*types.Player, error) {
	var player types.Player
	if err := c.do(ctx, "login", "Login failed", http.MethodPost, "/auth/login", form, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// Logout ends the session on the server and drops the cookie
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "logout", "Logout failed", http.MethodPost, "/auth/logout", nil, nil)
}

// CheckSession reports whether the jar holds a live session
func (c *Client) CheckSession(ctx context.Context) (*types.SessionStatus, error) {
	var status types.SessionStatus
	if err := c.do(ctx, "check session", "Failed to check session", http.MethodGet, "/check-session", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetCurrentRound returns the latest round number. It fails with ErrNotFound when no rounds exist.
func (c *Client) GetCurrentRound(ctx context.Context) (int, error) {
	var round int
	if err := c.do(ctx, "current round", "Failed to get current round", http.MethodGet, "/games/current-round", nil, &round); err != nil {
		return 0, err
	}
	return round, nil
}

// GetGames lists the games of a round
func (c *Client) GetGames(ctx context.Context, roundNumber int) ([]types.Game, error) {
	var games []types.Game
	path := "/games/round/" + strconv.Itoa(roundNumber)
	if err := c.do(ctx, "games", "Failed to get games", http.MethodGet, path, nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// HasSubmitted reports whether playerID has tipped any game of the round
func (c *Client) HasSubmitted(ctx context.Context, playerID uint, roundNumber int) (bool, error) {
	query := url.Values{}
	query.Set("player_id", strconv.FormatUint(uint64(playerID), 10))
	query.Set("round_number", strconv.Itoa(roundNumber))

	var resp types.HasSubmittedResponse
	if err := c.do(ctx, "has submitted", "Failed to get submitted status", http.MethodGet, "/has-submitted?"+query.Encode(), nil, &resp); err != nil {
		return false, err
	}
	return resp.HasSubmitted, nil
}

// SubmitPrediction records or replaces a tip
func (c *Client) SubmitPrediction(ctx context.Context, req *types.PredictionRequest) (*types.SuccessResponse, error) {
	var resp types.SuccessResponse
	if err := c.do(ctx, "submit prediction", "Failed to submit prediction", http.MethodPost, "/predictions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPlayerStats returns the leaderboard
func (c *Client) GetPlayerStats(ctx context.Context) ([]types.PlayerStats, error) {
	var stats []types.PlayerStats
	if err := c.do(ctx, "player stats", "Failed to get player stats", http.MethodGet, "/predictions/stats", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// SubmitLadderPrediction records or replaces a ladder guess
func (c *Client) SubmitLadderPrediction(ctx context.Context, req *types.LadderPredictionRequest) (*types.SuccessResponse, error) {
	var resp types.SuccessResponse
	if err := c.do(ctx, "submit ladder prediction", "Failed to submit ladder prediction", http.MethodPost, "/ladder-predictions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLadderPredictions lists every ladder prediction of a round
func (c *Client) GetLadderPredictions(ctx context.Context, roundNumber int) ([]types.LadderPrediction, error) {
	var predictions []types.LadderPrediction
	path := "/ladder-predictions/round/" + strconv.Itoa(roundNumber)
	if err := c.do(ctx, "ladder predictions", "Failed to get ladder predictions", http.MethodGet, path, nil, &predictions); err != nil {
		return nil, err
	}
	return predictions, nil
}

// GetTeams lists all teams
func (c *Client) GetTeams(ctx context.Context) ([]types.Team, error) {
	var teams []types.Team
	if err := c.do(ctx, "teams", "Failed to get teams", http.MethodGet, "/teams", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// do sends body as JSON and decodes a 2xx response into out. Every failure becomes an *APIError
// carrying the operation's generic message.
func (c *Client) do(ctx context.Context, op, message, method, path string, body, out interface{}) error {
	fail := func(status int, err error) *APIError {
		return &APIError{Op: op, StatusCode: status, Message: message, Err: err}
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fail(0, fmt.Errorf("encode request: %w", err))
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fail(0, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := fail(resp.StatusCode, nil)
		var errBody types.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			apiErr.ServerMessage = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
