package models

// Round is a numbered stage of the season; the highest number is the current round
type Round struct {
	BaseModel
	RoundNumber int `json:"round_number" gorm:"uniqueIndex:idx_rounds_round_number;not null" validate:"required,min=1"`

	// Relationships
	Games []Game `json:"games,omitempty" gorm:"foreignKey:RoundID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Round
func (Round) TableName() string {
	return "rounds"
}
