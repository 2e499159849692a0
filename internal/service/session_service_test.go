package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pgcet-quiz/internal/config"
	"pgcet-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func year(y int) *int { return &y }

func testQuestions() []*domain.Question {
	return []*domain.Question{
		{
			ID:            "q1",
			Text:          "Which data structure is LIFO?",
			Options:       domain.Options{A: "Queue", B: "Stack", C: "Heap", D: "Tree"},
			CorrectOption: domain.OptionB,
			Explanation:   "A stack pops the last pushed element.",
			Year:          year(2023),
		},
		{
			ID:            "q2",
			Text:          "2 + 2 = ?",
			Options:       domain.Options{A: "4", B: "3", C: "5", D: "22"},
			CorrectOption: domain.OptionA,
			Year:          year(2023),
		},
	}
}

func newTestSessionService(t *testing.T, schema string) (*sessionService, *memoryStore, *MockQuestionRepository, *MockAttemptRepository) {
	t.Helper()
	store := newMemoryStore()
	questions := new(MockQuestionRepository)
	attempts := new(MockAttemptRepository)
	cfg := &config.Config{
		Quiz:    config.QuizConfig{Schema: schema},
		Session: config.SessionConfig{TTL: time.Hour},
	}
	svc := NewSessionService(store, questions, attempts, cfg).(*sessionService)
	svc.shuffle = func(int, func(i, j int)) {}
	svc.now = func() time.Time { return fixedNow }
	svc.newID = func() string { return "session-1" }
	return svc, store, questions, attempts
}

func TestSessionService_Create(t *testing.T) {
	svc, store, _, _ := newTestSessionService(t, config.SchemaAttempt)

	view, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "session-1", view.ID)
	assert.Equal(t, string(domain.StateSelectingYear), view.State)
	assert.Equal(t, string(domain.PersistPerAttempt), view.Mode)
	assert.Nil(t, view.Question)
	assert.Contains(t, store.sessions, "session-1")
}

func TestSessionService_UnknownSession(t *testing.T) {
	svc, _, _, _ := newTestSessionService(t, config.SchemaAttempt)

	_, err := svc.Get(context.Background(), "missing")
	assert.True(t, domain.HasCode(err, domain.CodeSessionNotFound))

	_, err = svc.Submit(context.Background(), "missing")
	assert.True(t, domain.HasCode(err, domain.CodeSessionNotFound))
}

func TestSessionService_SelectYear(t *testing.T) {
	ctx := context.Background()

	t.Run("loads questions", func(t *testing.T) {
		svc, _, questions, _ := newTestSessionService(t, config.SchemaAttempt)
		questions.On("ListQuestionsForYear", mock.Anything, 2023).Return(testQuestions(), nil)
		_, err := svc.Create(ctx)
		require.NoError(t, err)

		view, err := svc.SelectYear(ctx, "session-1", 2023)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StateAnswering), view.State)
		assert.Equal(t, 2, view.Total)
		require.NotNil(t, view.Question)
		assert.Equal(t, "q1", view.Question.ID)
		assert.Len(t, view.Question.Options, 4)
		assert.Nil(t, view.Feedback)
		questions.AssertExpectations(t)
	})

	t.Run("empty year", func(t *testing.T) {
		svc, store, questions, _ := newTestSessionService(t, config.SchemaAttempt)
		questions.On("ListQuestionsForYear", mock.Anything, 1999).Return([]*domain.Question{}, nil)
		_, err := svc.Create(ctx)
		require.NoError(t, err)

		_, err = svc.SelectYear(ctx, "session-1", 1999)
		assert.True(t, domain.HasCode(err, domain.CodeNoQuestions))
		assert.Equal(t, domain.StateSelectingYear, store.sessions["session-1"].State)
	})

	t.Run("malformed records are skipped", func(t *testing.T) {
		svc, _, questions, _ := newTestSessionService(t, config.SchemaAttempt)
		qs := testQuestions()
		qs[1].CorrectOption = "E"
		questions.On("ListQuestionsForYear", mock.Anything, 2023).Return(qs, nil)
		_, err := svc.Create(ctx)
		require.NoError(t, err)

		view, err := svc.SelectYear(ctx, "session-1", 2023)
		require.NoError(t, err)
		assert.Equal(t, 1, view.Total)
	})

	t.Run("store failure is recorded", func(t *testing.T) {
		svc, store, questions, _ := newTestSessionService(t, config.SchemaAttempt)
		questions.On("ListQuestionsForYear", mock.Anything, 2023).Return(nil, errors.New("db down"))
		_, err := svc.Create(ctx)
		require.NoError(t, err)

		_, err = svc.SelectYear(ctx, "session-1", 2023)
		assert.True(t, domain.HasCode(err, domain.CodeFetch))
		stored := store.sessions["session-1"]
		assert.Equal(t, domain.StateSelectingYear, stored.State)
		assert.NotEmpty(t, stored.LastError)
	})

	t.Run("wrong state", func(t *testing.T) {
		svc, _, questions, _ := newTestSessionService(t, config.SchemaAttempt)
		questions.On("ListQuestionsForYear", mock.Anything, 2023).Return(testQuestions(), nil).Once()
		_, err := svc.Create(ctx)
		require.NoError(t, err)
		_, err = svc.SelectYear(ctx, "session-1", 2023)
		require.NoError(t, err)

		_, err = svc.SelectYear(ctx, "session-1", 2023)
		assert.True(t, domain.HasCode(err, domain.CodeInvalidTransition))
		questions.AssertNumberOfCalls(t, "ListQuestionsForYear", 1)
	})
}

func TestSessionService_AnswerSchema(t *testing.T) {
	ctx := context.Background()
	svc, _, questions, attempts := newTestSessionService(t, config.SchemaAnswer)
	questions.On("ListQuestionsForYear", mock.Anything, 2023).Return(testQuestions(), nil)
	attempts.On("InsertAnswer", mock.Anything, mock.MatchedBy(func(r *domain.AnswerRecord) bool {
		return r.QuestionID == "q1" && r.SelectedOption == domain.OptionB && r.SelectedText == "Stack" && r.IsCorrect
	})).Return(nil).Once()
	attempts.On("InsertAnswer", mock.Anything, mock.MatchedBy(func(r *domain.AnswerRecord) bool {
		return r.QuestionID == "q2" && r.SelectedOption == domain.OptionC && !r.IsCorrect
	})).Return(nil).Once()

	_, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = svc.SelectYear(ctx, "session-1", 2023)
	require.NoError(t, err)

	_, err = svc.SelectOption(ctx, "session-1", domain.OptionB)
	require.NoError(t, err)
	view, err := svc.Submit(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Score)
	require.NotNil(t, view.Feedback)
	assert.True(t, view.Feedback.IsCorrect)
	assert.Equal(t, "Stack", view.Feedback.CorrectText)
	assert.Equal(t, "A stack pops the last pushed element.", view.Feedback.Explanation)

	_, err = svc.Advance(ctx, "session-1")
	require.NoError(t, err)
	_, err = svc.SelectOption(ctx, "session-1", domain.OptionC)
	require.NoError(t, err)
	view, err = svc.Submit(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Score)
	assert.False(t, view.Feedback.IsCorrect)

	view, err = svc.Advance(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, view.Finished)
	assert.Equal(t, string(domain.StateFinished), view.State)
	assert.Nil(t, view.Question)

	attempts.AssertExpectations(t)
	attempts.AssertNotCalled(t, "InsertAttempt", mock.Anything, mock.Anything)
}

func TestSessionService_AttemptSchema(t *testing.T) {
	ctx := context.Background()
	svc, _, questions, attempts := newTestSessionService(t, config.SchemaAttempt)
	questions.On("ListQuestionsForYear", mock.Anything, 2023).Return(testQuestions(), nil)
	attempts.On("InsertAttempt", mock.Anything, mock.MatchedBy(func(a *domain.Attempt) bool {
		return a.Year == 2023 && a.TotalQuestions == 2 && a.CorrectAnswers == 2 && a.WrongAnswers == 0
	})).Return(nil).Once()
	attempts.On("InsertResponses", mock.Anything, "attempt-1", mock.MatchedBy(func(rs []domain.Response) bool {
		return len(rs) == 2 && rs[0].QuestionID == "q1" && rs[1].QuestionID == "q2"
	})).Return(nil).Once()

	_, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = svc.SelectYear(ctx, "session-1", 2023)
	require.NoError(t, err)

	for _, letter := range []domain.OptionLetter{domain.OptionB, domain.OptionA} {
		_, err = svc.SelectOption(ctx, "session-1", letter)
		require.NoError(t, err)
		_, err = svc.Submit(ctx, "session-1")
		require.NoError(t, err)
		attempts.AssertNotCalled(t, "InsertAttempt", mock.Anything, mock.Anything)
		_, err = svc.Advance(ctx, "session-1")
		require.NoError(t, err)
	}

	view, err := svc.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, view.Finished)
	assert.Equal(t, 2, view.Score)
	attempts.AssertExpectations(t)
	attempts.AssertNotCalled(t, "InsertAnswer", mock.Anything, mock.Anything)
}

func TestSessionService_SubmitTwice(t *testing.T) {
	ctx := context.Background()
	svc, _, questions, attempts := newTestSessionService(t, config.SchemaAnswer)
	questions.On("ListQuestionsForYear", mock.Anything, 2023).Return(testQuestions(), nil)
	attempts.On("InsertAnswer", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = svc.SelectYear(ctx, "session-1", 2023)
	require.NoError(t, err)
	_, err = svc.SelectOption(ctx, "session-1", domain.OptionB)
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "session-1")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "session-1")
	assert.True(t, domain.HasCode(err, domain.CodeInvalidTransition))
	attempts.AssertNumberOfCalls(t, "InsertAnswer", 1)

	view, err := svc.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Score)
}

func TestSessionService_SubmitWithoutSelection(t *testing.T) {
	ctx := context.Background()
	svc, _, questions, _ := newTestSessionService(t, config.SchemaAnswer)
	questions.On("ListQuestionsForYear", mock.Anything, 2023).Return(testQuestions(), nil)

	_, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = svc.SelectYear(ctx, "session-1", 2023)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "session-1")
	assert.True(t, domain.HasCode(err, domain.CodeInvalidInput))
}

func TestSessionService_PersistenceFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("answer write", func(t *testing.T) {
		svc, store, questions, attempts := newTestSessionService(t, config.SchemaAnswer)
		questions.On("ListQuestionsForYear", mock.Anything, 2023).Return(testQuestions(), nil)
		attempts.On("InsertAnswer", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		_, err := svc.Create(ctx)
		require.NoError(t, err)
		_, err = svc.SelectYear(ctx, "session-1", 2023)
		require.NoError(t, err)
		_, err = svc.SelectOption(ctx, "session-1", domain.OptionB)
		require.NoError(t, err)

		_, err = svc.Submit(ctx, "session-1")
		assert.True(t, domain.HasCode(err, domain.CodePersistence))

		stored := store.sessions["session-1"]
		assert.Equal(t, domain.StateSubmitted, stored.State)
		assert.Equal(t, 1, stored.Score)
		assert.Equal(t, "failed to save answer", stored.LastError)

		// The failure is reported once; advancing carries on without a retry.
		view, err := svc.Advance(ctx, "session-1")
		require.NoError(t, err)
		assert.Empty(t, view.LastError)
		attempts.AssertNumberOfCalls(t, "InsertAnswer", 1)
	})

	t.Run("orphan attempt", func(t *testing.T) {
		svc, store, questions, attempts := newTestSessionService(t, config.SchemaAttempt)
		questions.On("ListQuestionsForYear", mock.Anything, 2023).Return(testQuestions()[:1], nil)
		attempts.On("InsertAttempt", mock.Anything, mock.Anything).Return(nil)
		attempts.On("InsertResponses", mock.Anything, "attempt-1", mock.Anything).Return(errors.New("constraint"))

		_, err := svc.Create(ctx)
		require.NoError(t, err)
		_, err = svc.SelectYear(ctx, "session-1", 2023)
		require.NoError(t, err)
		_, err = svc.SelectOption(ctx, "session-1", domain.OptionA)
		require.NoError(t, err)
		_, err = svc.Submit(ctx, "session-1")
		require.NoError(t, err)

		_, err = svc.Advance(ctx, "session-1")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodePersistence, domainErr.Code)
		assert.Equal(t, "attempt-1", domainErr.Context["attempt_id"])
		assert.True(t, store.sessions["session-1"].Finished)
	})
}

func TestSessionService_Restart(t *testing.T) {
	ctx := context.Background()
	svc, _, questions, _ := newTestSessionService(t, config.SchemaAttempt)
	questions.On("ListQuestionsForYear", mock.Anything, 2023).Return(testQuestions(), nil)

	_, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = svc.SelectYear(ctx, "session-1", 2023)
	require.NoError(t, err)
	_, err = svc.SelectOption(ctx, "session-1", domain.OptionB)
	require.NoError(t, err)

	view, err := svc.Restart(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateSelectingYear), view.State)
	assert.Equal(t, 0, view.Total)
	assert.Equal(t, 0, view.Score)
	assert.Empty(t, view.Selected)
}

func TestSessionService_SaveFailure(t *testing.T) {
	svc, store, _, _ := newTestSessionService(t, config.SchemaAttempt)
	store.saveErr = errors.New("redis unavailable")

	_, err := svc.Create(context.Background())
	assert.True(t, domain.HasCode(err, domain.CodeInternal))
}
