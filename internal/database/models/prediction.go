package models

// Prediction is a player's tip for the winner of a game; at most one per (player, game)
type Prediction struct {
	TimestampedModel
	PlayerID          uint `json:"player_id" gorm:"not null;uniqueIndex:idx_predictions_player_game,priority:1"`
	GameID            uint `json:"game_id" gorm:"not null;uniqueIndex:idx_predictions_player_game,priority:2"`
	PredictedWinnerID uint `json:"predicted_winner_id" gorm:"not null"`

	// Relationships
	Game            *Game `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	PredictedWinner *Team `json:"predicted_winner,omitempty" gorm:"foreignKey:PredictedWinnerID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Prediction
func (Prediction) TableName() string {
	return "predictions"
}
