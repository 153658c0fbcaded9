package models

// Player is a league participant identified by email
type Player struct {
	TimestampedModel
	Name  string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email string `json:"email" gorm:"uniqueIndex:idx_players_email;not null;size:255" validate:"required,email,max=255"`

	// Relationships
	Predictions       []Prediction       `json:"predictions,omitempty" gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
	LadderPredictions []LadderPrediction `json:"ladder_predictions,omitempty" gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
