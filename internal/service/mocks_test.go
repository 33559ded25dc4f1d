package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Kay-svg505/Philologic-platform/internal/auth"
	"github.com/Kay-svg505/Philologic-platform/internal/model"
	"github.com/Kay-svg505/Philologic-platform/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockSessionManager is a mock implementation of auth.SessionManager.
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Start(ctx context.Context, userID uint, username string) (string, error) {
	args := m.Called(ctx, userID, username)
	return args.String(0), args.Error(1)
}

func (m *MockSessionManager) Resolve(ctx context.Context, claims *auth.SessionClaims) (auth.Identity, error) {
	args := m.Called(ctx, claims)
	return args.Get(0).(auth.Identity), args.Error(1)
}

func (m *MockSessionManager) ResolveToken(ctx context.Context, token string) (auth.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(auth.Identity), args.Error(1)
}

func (m *MockSessionManager) End(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionManager) TTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

// MockFlashcardRepository is a mock implementation of FlashcardRepository.
type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) CreateBatch(ctx context.Context, cards []model.Flashcard) error {
	args := m.Called(ctx, cards)
	return args.Error(0)
}

func (m *MockFlashcardRepository) ListByUser(ctx context.Context, userID uint) ([]model.Flashcard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Flashcard), args.Error(1)
}

// MockPhilosopherRepository is a mock implementation of PhilosopherRepository.
type MockPhilosopherRepository struct {
	mock.Mock
}

func (m *MockPhilosopherRepository) List(ctx context.Context) ([]model.Philosopher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Philosopher), args.Error(1)
}

func (m *MockPhilosopherRepository) FindByID(ctx context.Context, id uint) (*model.Philosopher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Philosopher), args.Error(1)
}

func (m *MockPhilosopherRepository) ListModules(ctx context.Context, philosopherID uint) ([]model.LearningModule, error) {
	args := m.Called(ctx, philosopherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LearningModule), args.Error(1)
}

func (m *MockPhilosopherRepository) UpsertByName(ctx context.Context, philosopher *model.Philosopher) (bool, error) {
	args := m.Called(ctx, philosopher)
	return args.Bool(0), args.Error(1)
}

func (m *MockPhilosopherRepository) UpsertModule(ctx context.Context, module *model.LearningModule) (bool, error) {
	args := m.Called(ctx, module)
	return args.Bool(0), args.Error(1)
}

func (m *MockPhilosopherRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.PhilosopherRepository) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// MockInferenceClient is a mock implementation of inference.Client.
type MockInferenceClient struct {
	mock.Mock
}

func (m *MockInferenceClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockInferenceClient) AnswerQuestion(ctx context.Context, question, contextText string) (string, error) {
	args := m.Called(ctx, question, contextText)
	return args.String(0), args.Error(1)
}

type countingRecorder struct {
	total int
}

func (r *countingRecorder) AddFlashcards(n int) { r.total += n }
