package services

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"mockmate/interview/internal/models"
	"mockmate/interview/internal/repositories"
)

// SessionStore owns the active interview sessions. Every mutation is written
// through to the interviews table before it returns, so a crashed process
// never loses an already-answered turn; the in-memory side holds only the
// per-session locks that serialize concurrent turns on one session id.
type SessionStore interface {
	Start(sessionID, userName, difficulty string) (string, error)
	Append(sessionID string, pair models.QAPair) error
	Pairs(sessionID string) ([]models.QAPair, error)
	Finalize(sessionID string) (*models.InterviewSession, error)
}

type sessionStore struct {
	repo  repositories.InterviewRepository
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionStore(repo repositories.InterviewRepository) SessionStore {
	return &sessionStore{
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *sessionStore) lockFor(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.locks[sessionID]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[sessionID] = l
	return l
}

func (s *sessionStore) dropLock(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, sessionID)
}

// Start implements SessionStore. A fresh identifier is generated when the
// caller supplied none.
func (s *sessionStore) Start(sessionID, userName, difficulty string) (string, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	l := s.lockFor(sessionID)
	l.Lock()
	defer l.Unlock()

	session := &models.InterviewSession{
		ID:         uuid.New(),
		SessionID:  sessionID,
		UserName:   userName,
		Difficulty: difficulty,
		Status:     models.SessionActive,
		QAPairs:    models.QAPairList{},
	}

	if err := s.repo.Create(session); err != nil {
		return sessionID, fmt.Errorf("failed to start session: %w", err)
	}

	return sessionID, nil
}

// Append implements SessionStore. The write is durable before Append
// returns; a session the store has not seen yet (process restart, or a
// client that skipped the start call) is created on the fly.
func (s *sessionStore) Append(sessionID string, pair models.QAPair) error {
	l := s.lockFor(sessionID)
	l.Lock()
	defer l.Unlock()

	err := s.repo.AppendQA(sessionID, pair)
	if err != nil && strings.Contains(err.Error(), "not found") {
		log.Printf("⚠️ Session %s missing on append, creating it\n", sessionID)
		create := s.repo.Create(&models.InterviewSession{
			ID:        uuid.New(),
			SessionID: sessionID,
			Status:    models.SessionActive,
			QAPairs:   models.QAPairList{},
		})
		if create != nil {
			return fmt.Errorf("failed to recover session %s: %w", sessionID, create)
		}
		err = s.repo.AppendQA(sessionID, pair)
	}

	if err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}

	return nil
}

// Pairs implements SessionStore.
func (s *sessionStore) Pairs(sessionID string) ([]models.QAPair, error) {
	session, err := s.repo.FindBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	return session.QAPairs, nil
}

// Finalize implements SessionStore. Finalized is terminal: a second call
// for the same identifier, or a call for an unknown one, is an error.
func (s *sessionStore) Finalize(sessionID string) (*models.InterviewSession, error) {
	l := s.lockFor(sessionID)
	l.Lock()
	defer l.Unlock()

	if err := s.repo.Finalize(sessionID); err != nil {
		return nil, err
	}

	session, err := s.repo.FindBySessionID(sessionID)
	if err != nil {
		return nil, err
	}

	s.dropLock(sessionID)
	return session, nil
}
