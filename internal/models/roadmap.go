package models

import (
	"time"

	"github.com/google/uuid"
)

type Roadmap struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"-"`
	SessionID  string     `gorm:"type:text;uniqueIndex;not null" json:"session_id"`
	UserName   string     `gorm:"type:text" json:"user_name"`
	FocusAreas StringList `gorm:"type:jsonb" json:"focus_areas"`
	Actions    StringList `gorm:"type:jsonb" json:"actions"`
	Resources  StringList `gorm:"type:jsonb" json:"resources"`
	CreatedAt  time.Time  `gorm:"type:timestamp;default:now()" json:"-"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}
