package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"mockmate/interview/internal/models"
)

type EvaluationRepository interface {
	Create(eval *models.Evaluation) error
	FindBySessionID(sessionID string) (*models.Evaluation, error)
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

// Create implements EvaluationRepository.
func (r *evaluationRepository) Create(eval *models.Evaluation) error {
	if err := r.db.Create(eval).Error; err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}
	return nil
}

// FindBySessionID implements EvaluationRepository.
func (r *evaluationRepository) FindBySessionID(sessionID string) (*models.Evaluation, error) {
	var eval models.Evaluation
	if err := r.db.Where("session_id = ?", sessionID).First(&eval).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("evaluation not found for session: %s", sessionID)
		}
		return nil, fmt.Errorf("failed to find evaluation: %w", err)
	}
	return &eval, nil
}
