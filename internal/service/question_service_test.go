package service

import (
	"context"
	"errors"
	"testing"

	"pgcet-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuestionService_Health(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("CountQuestions", mock.Anything).Return(42, nil).Once()
	repo.On("CountQuestions", mock.Anything).Return(0, errors.New("db down")).Once()
	svc := NewQuestionService(repo)

	resp, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 42, resp.QuestionCount)

	_, err = svc.Health(context.Background())
	assert.True(t, domain.HasCode(err, domain.CodeFetch))
}

func TestQuestionService_ListYears(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("ListYears", mock.Anything).Return(nil, nil)
	svc := NewQuestionService(repo)

	resp, err := svc.ListYears(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Years)
	assert.Empty(t, resp.Years)
}

func TestQuestionService_ListLatest(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("ListLatestQuestions", mock.Anything, 5).Return(testQuestions(), nil)
	svc := NewQuestionService(repo)

	resp, err := svc.ListLatest(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "Which data structure is LIFO?", resp.Questions[0].Text)
	assert.Equal(t, 2023, resp.Questions[0].Year)
	assert.Equal(t, "Stack", resp.Questions[0].Options[1].Text)
	repo.AssertExpectations(t)
}
