package types

// LoginForm identifies a player; an unknown email registers a new player
type LoginForm struct {
	Name  string `json:"name" validate:"required,max=100" example:"Alex"`
	Email string `json:"email" validate:"required,email,max=255" example:"alex@example.com"`
}

// PredictionRequest submits or replaces the caller's tip for a game
type PredictionRequest struct {
	GameID            uint `json:"game_id" validate:"required,min=1" example:"12"`
	PredictedWinnerID uint `json:"predicted_winner_id" validate:"required,min=1" example:"7"`
}

// LadderPredictionRequest submits or replaces the caller's ladder guess for a team in a round
type LadderPredictionRequest struct {
	RoundNumber       int  `json:"round_number" validate:"required,min=1" example:"5"`
	TeamID            uint `json:"team_id" validate:"required,min=1" example:"7"`
	PredictedPosition int  `json:"predicted_position" validate:"required,min=1" example:"1"`
}
