package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"mockmate/interview/internal/models"
)

type ReportRepository interface {
	Create(report *models.Report) error
	FindBySessionID(sessionID string) (*models.Report, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create implements ReportRepository.
func (r *reportRepository) Create(report *models.Report) error {
	if err := r.db.Create(report).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// FindBySessionID implements ReportRepository.
func (r *reportRepository) FindBySessionID(sessionID string) (*models.Report, error) {
	var report models.Report
	if err := r.db.Where("session_id = ?", sessionID).First(&report).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("report not found for session: %s", sessionID)
		}
		return nil, fmt.Errorf("failed to find report: %w", err)
	}
	return &report, nil
}

type RoadmapRepository interface {
	Create(roadmap *models.Roadmap) error
	FindBySessionID(sessionID string) (*models.Roadmap, error)
}

type roadmapRepository struct {
	db *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) RoadmapRepository {
	return &roadmapRepository{db: db}
}

// Create implements RoadmapRepository.
func (r *roadmapRepository) Create(roadmap *models.Roadmap) error {
	if err := r.db.Create(roadmap).Error; err != nil {
		return fmt.Errorf("failed to create roadmap: %w", err)
	}
	return nil
}

// FindBySessionID implements RoadmapRepository.
func (r *roadmapRepository) FindBySessionID(sessionID string) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	if err := r.db.Where("session_id = ?", sessionID).First(&roadmap).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("roadmap not found for session: %s", sessionID)
		}
		return nil, fmt.Errorf("failed to find roadmap: %w", err)
	}
	return &roadmap, nil
}

type VideoRepository interface {
	Create(video *models.InterviewVideo) error
	FindBySessionID(sessionID string) ([]models.InterviewVideo, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

// Create implements VideoRepository.
func (r *videoRepository) Create(video *models.InterviewVideo) error {
	if err := r.db.Create(video).Error; err != nil {
		return fmt.Errorf("failed to create interview video: %w", err)
	}
	return nil
}

// FindBySessionID implements VideoRepository.
func (r *videoRepository) FindBySessionID(sessionID string) ([]models.InterviewVideo, error) {
	var videos []models.InterviewVideo
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find interview videos: %w", err)
	}
	return videos, nil
}
