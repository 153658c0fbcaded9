package models

// Game is a fixture between two teams within a round. WinnerID stays nil until the result is known.
type Game struct {
	BaseModel
	RoundID  uint  `json:"round_id" gorm:"not null;index"`
	Team1ID  uint  `json:"team1_id" gorm:"not null"`
	Team2ID  uint  `json:"team2_id" gorm:"not null"`
	WinnerID *uint `json:"winner_id"`

	// Relationships
	Team1  *Team `json:"team1,omitempty" gorm:"foreignKey:Team1ID;constraint:OnDelete:RESTRICT"`
	Team2  *Team `json:"team2,omitempty" gorm:"foreignKey:Team2ID;constraint:OnDelete:RESTRICT"`
	Winner *Team `json:"winner,omitempty" gorm:"foreignKey:WinnerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "games"
}

// HasTeam reports whether teamID is one of the two sides of the game
func (g *Game) HasTeam(teamID uint) bool {
	return teamID == g.Team1ID || teamID == g.Team2ID
}

// IsDecided reports whether the result has been recorded
func (g *Game) IsDecided() bool {
	return g.WinnerID != nil
}
