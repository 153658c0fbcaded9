package models

import (
	"time"
)

// BaseModel provides the auto-increment primary key shared by all tables
type BaseModel struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
}

// TimestampedModel adds audit timestamps for rows that change after creation
type TimestampedModel struct {
	BaseModel
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
