package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionFinalized SessionStatus = "finalized"
)

// QAPair is one answered turn. Immutable once appended to a session.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	VideoURL string `json:"video_url,omitempty"`
}

type QAPairList []QAPair

func (l QAPairList) Value() (driver.Value, error) {
	if l == nil {
		l = QAPairList{}
	}
	return json.Marshal(l)
}

func (l *QAPairList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type InterviewSession struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID  string        `gorm:"type:text;uniqueIndex;not null" json:"session_id"`
	UserName   string        `gorm:"type:text;not null" json:"user_name"`
	Difficulty string        `gorm:"type:text" json:"difficulty"`
	Status     SessionStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	QAPairs    QAPairList    `gorm:"type:jsonb" json:"interview_data"`
	CreatedAt  time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (InterviewSession) TableName() string {
	return "interviews"
}

type InterviewVideo struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID string    `gorm:"type:text;index;not null" json:"session_id"`
	Question  string    `gorm:"type:text" json:"question"`
	VideoURL  string    `gorm:"type:text" json:"video_url"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (InterviewVideo) TableName() string {
	return "interview_videos"
}
