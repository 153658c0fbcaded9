package models

// Team represents an AFL club
type Team struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex:idx_teams_name;not null;size:100" validate:"required,max=100"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
