// Package types holds the JSON shapes exchanged between the prediction league API and its clients.
// The server builds its responses from these structs and pkg/client decodes into them.
package types

// Player is a league participant
type Player struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"name" example:"Alex"`
	Email string `json:"email" example:"alex@example.com"`
}

// Team is an AFL club
type Team struct {
	ID   uint   `json:"id" example:"7"`
	Name string `json:"name" example:"Geelong"`
}

// Game is a fixture with both teams nested. WinnerID is null while the game is pending.
type Game struct {
	ID       uint  `json:"id"`
	RoundID  uint  `json:"round_id"`
	Team1ID  uint  `json:"team1_id"`
	Team2ID  uint  `json:"team2_id"`
	WinnerID *uint `json:"winner_id"`
	Team1    *Team `json:"team1,omitempty"`
	Team2    *Team `json:"team2,omitempty"`
	Winner   *Team `json:"winner,omitempty"`
}

// Prediction is a player's tip for a game
type Prediction struct {
	ID                uint  `json:"id"`
	PlayerID          uint  `json:"player_id"`
	GameID            uint  `json:"game_id"`
	PredictedWinnerID uint  `json:"predicted_winner_id"`
	Game              *Game `json:"game,omitempty"`
	PredictedWinner   *Team `json:"predicted_winner,omitempty"`
}

// LadderPrediction is a player's guess of a team's ladder position for a round
type LadderPrediction struct {
	ID                uint  `json:"id"`
	PlayerID          uint  `json:"player_id"`
	RoundNumber       int   `json:"round_number"`
	TeamID            uint  `json:"team_id"`
	PredictedPosition int   `json:"predicted_position"`
	Team              *Team `json:"team,omitempty"`
}

// PlayerStats is one leaderboard row. Total is Wins minus Losses.
type PlayerStats struct {
	Player Player `json:"player"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Total  int    `json:"total"`
}
