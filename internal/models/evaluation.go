package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// QuestionFeedback is the scorer's verdict for a single turn.
type QuestionFeedback struct {
	Question       string  `json:"question"`
	TechnicalScore float64 `json:"technical_score"`
	Feedback       string  `json:"feedback"`
}

type QuestionFeedbackList []QuestionFeedback

func (l QuestionFeedbackList) Value() (driver.Value, error) {
	if l == nil {
		l = QuestionFeedbackList{}
	}
	return json.Marshal(l)
}

func (l *QuestionFeedbackList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Evaluation aggregates the four score streams across all turns of a
// finalized session. All four scores are on a 0-100 scale.
type Evaluation struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"-"`
	SessionID       string               `gorm:"type:text;uniqueIndex;not null" json:"session_id"`
	UserName        string               `gorm:"type:text" json:"user_name"`
	Technical       float64              `gorm:"type:decimal(5,2)" json:"technical"`
	Communication   float64              `gorm:"type:decimal(5,2)" json:"communication"`
	Confidence      float64              `gorm:"type:decimal(5,2)" json:"confidence"`
	Professionalism float64              `gorm:"type:decimal(5,2)" json:"professionalism"`
	PerQuestion     QuestionFeedbackList `gorm:"type:jsonb" json:"per_question"`
	Incomplete      bool                 `gorm:"default:false" json:"incomplete,omitempty"`
	CreatedAt       time.Time            `gorm:"type:timestamp;default:now()" json:"-"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}
