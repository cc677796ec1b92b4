package models

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserName   string     `gorm:"type:text;index;not null" json:"user_name"`
	Filename   string     `gorm:"type:text" json:"filename"`
	Skills     StringList `gorm:"type:jsonb" json:"skills"`
	Sections   SectionMap `gorm:"type:jsonb" json:"sections"`
	RawPreview string     `gorm:"type:text" json:"raw_text"`
	CreatedAt  time.Time  `gorm:"type:timestamp;default:now()" json:"uploaded_at"`
}

func (Resume) TableName() string {
	return "resumes"
}

// CandidateProfile is the parsed-resume view every generative prompt embeds.
type CandidateProfile struct {
	Name     string            `json:"name"`
	Skills   []string          `json:"skills"`
	Sections map[string]string `json:"sections"`
}

func (r *Resume) Profile() *CandidateProfile {
	return &CandidateProfile{
		Name:     r.UserName,
		Skills:   r.Skills,
		Sections: r.Sections,
	}
}
