package service

import (
	"context"
	"time"

	"pgcet-quiz/internal/adapter/scraper"
	"pgcet-quiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) ListYears(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockQuestionRepository) ListQuestionsForYear(ctx context.Context, year int) ([]*domain.Question, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListLatestQuestions(ctx context.Context, limit int) ([]*domain.Question, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) CountQuestions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockQuestionRepository) UpsertQuestions(ctx context.Context, questions []*domain.Question) (int, int, error) {
	args := m.Called(ctx, questions)
	return args.Int(0), args.Int(1), args.Error(2)
}

// --- MockAttemptRepository ---
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) InsertAnswer(ctx context.Context, record *domain.AnswerRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttemptRepository) InsertAttempt(ctx context.Context, attempt *domain.Attempt) error {
	args := m.Called(ctx, attempt)
	if args.Error(0) == nil && attempt.ID == "" {
		attempt.ID = "attempt-1"
	}
	return args.Error(0)
}

func (m *MockAttemptRepository) InsertResponses(ctx context.Context, attemptID string, responses []domain.Response) error {
	args := m.Called(ctx, attemptID, responses)
	return args.Error(0)
}

func (m *MockAttemptRepository) ListAnswerDetails(ctx context.Context) ([]domain.AnswerDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnswerDetail), args.Error(1)
}

func (m *MockAttemptRepository) ListResponseDetails(ctx context.Context) ([]domain.AnswerDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnswerDetail), args.Error(1)
}

func (m *MockAttemptRepository) ListAttempts(ctx context.Context, limit int) ([]*domain.Attempt, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attempt), args.Error(1)
}

// --- MockFetcher ---
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, src scraper.Source) (*scraper.Result, error) {
	args := m.Called(ctx, src)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scraper.Result), args.Error(1)
}

// memoryStore is a map-backed SessionStore; it records every saved state.
type memoryStore struct {
	sessions map[string]domain.Session
	saves    []domain.Session
	saveErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]domain.Session)}
}

func (s *memoryStore) Get(_ context.Context, id string) (domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *memoryStore) Save(_ context.Context, session domain.Session, _ time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.sessions[session.ID] = session
	s.saves = append(s.saves, session)
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}
