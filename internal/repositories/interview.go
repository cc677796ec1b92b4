package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"mockmate/interview/internal/models"
)

type InterviewRepository interface {
	Create(session *models.InterviewSession) error
	FindBySessionID(sessionID string) (*models.InterviewSession, error)
	AppendQA(sessionID string, pair models.QAPair) error
	Finalize(sessionID string) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

// Create implements InterviewRepository.
func (r *interviewRepository) Create(session *models.InterviewSession) error {
	if session.QAPairs == nil {
		session.QAPairs = models.QAPairList{}
	}
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create interview session: %w", err)
	}

	return nil
}

// FindBySessionID implements InterviewRepository.
func (r *interviewRepository) FindBySessionID(sessionID string) (*models.InterviewSession, error) {
	var session models.InterviewSession
	if err := r.db.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("interview session not found: %s", sessionID)
		}
		return nil, fmt.Errorf("failed to find interview session: %w", err)
	}

	return &session, nil
}

// AppendQA implements InterviewRepository. The whole qa_pairs document is
// rewritten; callers serialize turns per session so the read-modify-write
// cannot interleave.
func (r *interviewRepository) AppendQA(sessionID string, pair models.QAPair) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var session models.InterviewSession
		if err := tx.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("interview session not found: %s", sessionID)
			}
			return fmt.Errorf("failed to find interview session: %w", err)
		}

		if session.Status == models.SessionFinalized {
			return fmt.Errorf("interview session already finalized: %s", sessionID)
		}

		pairs := append(session.QAPairs, pair)
		result := tx.Model(&models.InterviewSession{}).
			Where("session_id = ?", sessionID).
			Updates(map[string]interface{}{
				"qa_pairs":   pairs,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to append qa pair: %w", result.Error)
		}

		return nil
	})
}

// Finalize implements InterviewRepository. Finalizing twice is an error.
func (r *interviewRepository) Finalize(sessionID string) error {
	result := r.db.Model(&models.InterviewSession{}).
		Where("session_id = ? AND status = ?", sessionID, models.SessionActive).
		Updates(map[string]interface{}{
			"status":     models.SessionFinalized,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to finalize interview session: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("no active interview session: %s", sessionID)
	}

	return nil
}
