package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryFeedback carries one narrative paragraph per score category.
type CategoryFeedback struct {
	Technical       string `json:"technical"`
	Communication   string `json:"communication"`
	Confidence      string `json:"confidence"`
	Professionalism string `json:"professionalism"`
}

type Report struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"-"`
	SessionID               string     `gorm:"type:text;uniqueIndex;not null" json:"session_id"`
	TechnicalFeedback       string     `gorm:"type:text" json:"-"`
	CommunicationFeedback   string     `gorm:"type:text" json:"-"`
	ConfidenceFeedback      string     `gorm:"type:text" json:"-"`
	ProfessionalismFeedback string     `gorm:"type:text" json:"-"`
	ShortTerm               StringList `gorm:"type:jsonb" json:"-"`
	LongTerm                StringList `gorm:"type:jsonb" json:"-"`
	CreatedAt               time.Time  `gorm:"type:timestamp;default:now()" json:"-"`
}

func (Report) TableName() string {
	return "reports"
}

// ReportPayload is the wire shape of a report, matching the nested
// feedback/recommendations structure clients consume.
type ReportPayload struct {
	SessionID       string           `json:"session_id"`
	Feedback        CategoryFeedback `json:"feedback"`
	Recommendations Recommendations  `json:"recommendations"`
}

type Recommendations struct {
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

func (r *Report) Payload() *ReportPayload {
	return &ReportPayload{
		SessionID: r.SessionID,
		Feedback: CategoryFeedback{
			Technical:       r.TechnicalFeedback,
			Communication:   r.CommunicationFeedback,
			Confidence:      r.ConfidenceFeedback,
			Professionalism: r.ProfessionalismFeedback,
		},
		Recommendations: Recommendations{
			ShortTerm: r.ShortTerm,
			LongTerm:  r.LongTerm,
		},
	}
}
