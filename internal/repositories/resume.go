package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"mockmate/interview/internal/models"
)

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindLatestByUserName(userName string) (*models.Resume, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	return nil
}

// FindLatestByUserName implements ResumeRepository. Latest upload wins when
// the same candidate uploaded more than once.
func (r *resumeRepository) FindLatestByUserName(userName string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.
		Where("user_name = ?", userName).
		Order("created_at DESC").
		First(&resume).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no resume found for user: %s", userName)
		}
		return nil, fmt.Errorf("failed to find resume: %w", err)
	}

	return &resume, nil
}
