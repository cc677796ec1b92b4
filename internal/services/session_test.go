package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"mockmate/interview/internal/models"
)

// fakeInterviewRepo keeps sessions in memory with the same semantics the
// gorm repository implements against the interviews table.
type fakeInterviewRepo struct {
	mu       sync.Mutex
	sessions map[string]*models.InterviewSession
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{sessions: make(map[string]*models.InterviewSession)}
}

func (f *fakeInterviewRepo) Create(session *models.InterviewSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.sessions[session.SessionID]; exists {
		return fmt.Errorf("duplicate session id")
	}
	copied := *session
	f.sessions[session.SessionID] = &copied
	return nil
}

func (f *fakeInterviewRepo) FindBySessionID(sessionID string) (*models.InterviewSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("interview session not found")
	}
	copied := *session
	copied.QAPairs = append(models.QAPairList{}, session.QAPairs...)
	return &copied, nil
}

func (f *fakeInterviewRepo) AppendQA(sessionID string, pair models.QAPair) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok {
		return fmt.Errorf("interview session not found")
	}
	if session.Status == models.SessionFinalized {
		return fmt.Errorf("interview session already finalized")
	}
	session.QAPairs = append(session.QAPairs, pair)
	return nil
}

func (f *fakeInterviewRepo) Finalize(sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok || session.Status != models.SessionActive {
		return fmt.Errorf("no active interview session")
	}
	session.Status = models.SessionFinalized
	return nil
}

func TestSessionStore_StartGeneratesID(t *testing.T) {
	store := NewSessionStore(newFakeInterviewRepo())

	id, err := store.Start("", "John Doe", "medium")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	pairs, err := store.Pairs(id)
	require.NoError(t, err)
	require.Empty(t, pairs)
}

func TestSessionStore_AppendPreservesOrder(t *testing.T) {
	store := NewSessionStore(newFakeInterviewRepo())

	id, err := store.Start("sess-order", "John Doe", "easy")
	require.NoError(t, err)

	var expected []models.QAPair
	for i := 0; i < 5; i++ {
		pair := models.QAPair{
			Question: fmt.Sprintf("question %d", i),
			Answer:   fmt.Sprintf("answer %d", i),
		}
		expected = append(expected, pair)
		require.NoError(t, store.Append(id, pair))

		// Re-read after every turn
		pairs, err := store.Pairs(id)
		require.NoError(t, err)
		require.Equal(t, expected, pairs)
	}
}

func TestSessionStore_AppendRecoversMissingSession(t *testing.T) {
	store := NewSessionStore(newFakeInterviewRepo())

	pair := models.QAPair{Question: "Q", Answer: "A"}
	require.NoError(t, store.Append("never-started", pair))

	pairs, err := store.Pairs("never-started")
	require.NoError(t, err)
	require.Equal(t, []models.QAPair{pair}, pairs)
}

func TestSessionStore_Finalize(t *testing.T) {
	store := NewSessionStore(newFakeInterviewRepo())

	id, err := store.Start("sess-final", "John Doe", "hard")
	require.NoError(t, err)
	require.NoError(t, store.Append(id, models.QAPair{Question: "Q", Answer: "A"}))

	session, err := store.Finalize(id)
	require.NoError(t, err)
	require.Equal(t, models.SessionFinalized, session.Status)
	require.Len(t, session.QAPairs, 1)

	// Terminal: a second finalize fails
	_, err = store.Finalize(id)
	require.Error(t, err)

	// So does appending to a finalized session
	require.Error(t, store.Append(id, models.QAPair{Question: "Q2", Answer: "A2"}))
}

func TestSessionStore_FinalizeUnknownSession(t *testing.T) {
	store := NewSessionStore(newFakeInterviewRepo())

	_, err := store.Finalize("no-such-session")
	require.Error(t, err)
}
