package models

// LadderPrediction is a player's guess of a team's ladder position after a round.
// At most one per (player, round_number, team).
type LadderPrediction struct {
	TimestampedModel
	PlayerID          uint `json:"player_id" gorm:"not null;uniqueIndex:idx_ladder_predictions_player_round_team,priority:1"`
	RoundNumber       int  `json:"round_number" gorm:"not null;index;uniqueIndex:idx_ladder_predictions_player_round_team,priority:2"`
	TeamID            uint `json:"team_id" gorm:"not null;uniqueIndex:idx_ladder_predictions_player_round_team,priority:3"`
	PredictedPosition int  `json:"predicted_position" gorm:"not null"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for LadderPrediction
func (LadderPrediction) TableName() string {
	return "ladder_predictions"
}
