package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "github.com/Kay-svg505/Philologic-platform/internal/errors"
	"github.com/Kay-svg505/Philologic-platform/internal/inference"
	"github.com/Kay-svg505/Philologic-platform/internal/model"
)

func TestContentService_ListModules(t *testing.T) {
	repo := new(MockPhilosopherRepository)
	repo.On("FindByID", mock.Anything, uint(2)).Return(&model.Philosopher{ID: 2, Name: "Plato"}, nil)
	repo.On("ListModules", mock.Anything, uint(2)).Return([]model.LearningModule{{ID: 1, PhilosopherID: 2, Title: "The Cave"}}, nil)
	repo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewContentService(repo)

	modules, err := service.ListModules(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "The Cave", modules[0].Title)

	_, err = service.ListModules(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrPhilosopherNotFound)
	repo.AssertNotCalled(t, "ListModules", mock.Anything, uint(99))
}

func TestContentService_ListPhilosophers(t *testing.T) {
	repo := new(MockPhilosopherRepository)
	repo.On("List", mock.Anything).Return([]model.Philosopher{{ID: 1, Name: "Carl Jung"}, {ID: 2, Name: "Plato"}}, nil)

	philosophers, err := NewContentService(repo).ListPhilosophers(context.Background())
	require.NoError(t, err)
	assert.Len(t, philosophers, 2)
}

func TestQAService_Answer(t *testing.T) {
	tests := []struct {
		name          string
		contextText   string
		question      string
		upstream      string
		upstreamErr   error
		expected      string
		expectedError error
	}{
		{name: "answer passes through", contextText: "Socrates taught Plato.", question: "Who taught Plato?", upstream: "Socrates", expected: "Socrates"},
		{name: "empty answer falls back", contextText: "c", question: "q", upstream: "", expected: FallbackAnswer},
		{name: "blank question", contextText: "c", question: " ", expectedError: apperrors.ErrQARequired},
		{name: "blank context", contextText: "", question: "q", expectedError: apperrors.ErrQARequired},
		{name: "upstream status", contextText: "c", question: "q", upstreamErr: &inference.StatusError{StatusCode: 500}, expectedError: apperrors.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockInferenceClient)
			client.On("AnswerQuestion", mock.Anything, tt.question, tt.contextText).Return(tt.upstream, tt.upstreamErr).Maybe()

			answer, err := NewQAService(client, nil).Answer(context.Background(), tt.contextText, tt.question)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, answer)
		})
	}
}
