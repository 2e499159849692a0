package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"pgcet-quiz/internal/config"
	"pgcet-quiz/internal/domain"
	"pgcet-quiz/internal/dto"
	"pgcet-quiz/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService drives quiz sessions through their state machine and
// executes the store writes each transition asks for.
type SessionService interface {
	Create(ctx context.Context) (*dto.SessionView, error)
	Get(ctx context.Context, id string) (*dto.SessionView, error)
	SelectYear(ctx context.Context, id string, year int) (*dto.SessionView, error)
	SelectOption(ctx context.Context, id string, option domain.OptionLetter) (*dto.SessionView, error)
	Submit(ctx context.Context, id string) (*dto.SessionView, error)
	Advance(ctx context.Context, id string) (*dto.SessionView, error)
	Restart(ctx context.Context, id string) (*dto.SessionView, error)
}

type sessionService struct {
	store     domain.SessionStore
	questions domain.QuestionRepository
	attempts  domain.AttemptRepository
	mode      domain.PersistenceMode
	ttl       time.Duration
	shuffle   domain.Shuffler
	now       func() time.Time
	newID     func() string
}

// NewSessionService creates a SessionService persisting answers in the schema selected by cfg.Quiz.Schema.
func NewSessionService(
	store domain.SessionStore,
	questions domain.QuestionRepository,
	attempts domain.AttemptRepository,
	cfg *config.Config,
) SessionService {
	mode := domain.PersistPerAttempt
	if cfg.Quiz.Schema == config.SchemaAnswer {
		mode = domain.PersistPerAnswer
	}
	return &sessionService{
		store:     store,
		questions: questions,
		attempts:  attempts,
		mode:      mode,
		ttl:       cfg.Session.TTL,
		shuffle:   rand.Shuffle,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (s *sessionService) load(ctx context.Context, id string) (domain.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.Session{}, domain.NewSessionNotFoundError(id)
		}
		return domain.Session{}, domain.NewInternalError("failed to load session", err)
	}
	return session, nil
}

func (s *sessionService) save(ctx context.Context, session domain.Session) error {
	if err := s.store.Save(ctx, session, s.ttl); err != nil {
		logger.Get().Error("Failed to save session", zap.String("session_id", session.ID), zap.Error(err))
		return domain.NewInternalError("failed to save session", err)
	}
	return nil
}

func (s *sessionService) Create(ctx context.Context) (*dto.SessionView, error) {
	session := domain.NewSession(s.newID(), s.mode, s.now())
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	logger.Get().Debug("Session created", zap.String("session_id", session.ID), zap.String("mode", string(s.mode)))
	return toSessionView(session), nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*dto.SessionView, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSessionView(session), nil
}

// SelectYear loads the questions of year. Stored records that fail validation
// are left out and counted in the log.
func (s *sessionService) SelectYear(ctx context.Context, id string, year int) (*dto.SessionView, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.State != domain.StateSelectingYear {
		return nil, domain.NewInvalidTransitionError("selectYear", session.State)
	}

	stored, err := s.questions.ListQuestionsForYear(ctx, year)
	if err != nil {
		logger.Get().Error("Failed to load questions", zap.String("session_id", id), zap.Int("year", year), zap.Error(err))
		fetchErr := domain.NewFetchError("failed to load questions", err)
		if saveErr := s.save(ctx, session.WithError(fetchErr.Message, s.now())); saveErr != nil {
			return nil, saveErr
		}
		return nil, fetchErr
	}

	valid := make([]domain.Question, 0, len(stored))
	rejected := 0
	for _, q := range stored {
		if q == nil || q.Validate() != nil {
			rejected++
			continue
		}
		valid = append(valid, *q)
	}
	if rejected > 0 {
		logger.Get().Warn("Rejected malformed questions", zap.Int("year", year), zap.Int("rejected", rejected))
	}

	next, err := session.SelectYear(year, valid, s.shuffle, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	logger.Get().Debug("Session started", zap.String("session_id", id), zap.Int("year", year), zap.Int("questions", next.Total()))
	return toSessionView(next), nil
}

func (s *sessionService) SelectOption(ctx context.Context, id string, option domain.OptionLetter) (*dto.SessionView, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := session.SelectOption(option, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return toSessionView(next), nil
}

func (s *sessionService) Submit(ctx context.Context, id string) (*dto.SessionView, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	next, cmds, err := session.Submit(s.now())
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, next, cmds)
}

func (s *sessionService) Advance(ctx context.Context, id string) (*dto.SessionView, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	next, cmds, err := session.Advance(s.now())
	if err != nil {
		return nil, err
	}
	if next.Finished {
		logger.Get().Debug("Session finished",
			zap.String("session_id", id),
			zap.Int("score", next.Score),
			zap.Int("total", next.Total()),
		)
	}
	return s.commit(ctx, next, cmds)
}

func (s *sessionService) Restart(ctx context.Context, id string) (*dto.SessionView, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	next := session.Restart(s.now())
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return toSessionView(next), nil
}

// commit runs the commands of a transition and then stores the new state.
// A failed write keeps the graded state, records the failure on the session
// and is returned to the caller once; it is not retried.
func (s *sessionService) commit(ctx context.Context, next domain.Session, cmds []domain.Command) (*dto.SessionView, error) {
	if err := s.execute(ctx, cmds); err != nil {
		var domainErr *domain.DomainError
		msg := err.Error()
		if errors.As(err, &domainErr) {
			msg = domainErr.Message
		}
		if saveErr := s.save(ctx, next.WithError(msg, s.now())); saveErr != nil {
			return nil, saveErr
		}
		return nil, err
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return toSessionView(next), nil
}

func (s *sessionService) execute(ctx context.Context, cmds []domain.Command) error {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case domain.SaveAnswer:
			record := c.Record
			if err := s.attempts.InsertAnswer(ctx, &record); err != nil {
				logger.Get().Error("Failed to save answer", zap.String("question_id", record.QuestionID), zap.Error(err))
				return domain.NewPersistenceError("failed to save answer", err)
			}
		case domain.SaveAttempt:
			attempt := c.Attempt
			if err := s.attempts.InsertAttempt(ctx, &attempt); err != nil {
				logger.Get().Error("Failed to save attempt", zap.Int("year", attempt.Year), zap.Error(err))
				return domain.NewPersistenceError("failed to save attempt", err)
			}
			if err := s.attempts.InsertResponses(ctx, attempt.ID, attempt.Responses); err != nil {
				logger.Get().Error("Attempt saved without responses", zap.String("attempt_id", attempt.ID), zap.Error(err))
				return domain.NewPersistenceError("attempt saved without responses", err).
					WithContext("attempt_id", attempt.ID)
			}
			logger.Get().Info("Attempt saved",
				zap.String("attempt_id", attempt.ID),
				zap.Int("correct", attempt.CorrectAnswers),
				zap.Int("total", attempt.TotalQuestions),
			)
		}
	}
	return nil
}
