package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kay-svg505/Philologic-platform/internal/auth"
	"github.com/Kay-svg505/Philologic-platform/internal/model"
	"github.com/Kay-svg505/Philologic-platform/internal/quiz"
	"github.com/Kay-svg505/Philologic-platform/internal/view"
)

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error { return tv.v.Struct(i) }

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer
	return e
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) SessionTTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

// MockContentService is a mock implementation of service.ContentService.
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) ListPhilosophers(ctx context.Context) ([]model.Philosopher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Philosopher), args.Error(1)
}

func (m *MockContentService) ListModules(ctx context.Context, philosopherID uint) ([]model.LearningModule, error) {
	args := m.Called(ctx, philosopherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LearningModule), args.Error(1)
}

// MockFlashcardService is a mock implementation of service.FlashcardService.
type MockFlashcardService struct {
	mock.Mock
}

func (m *MockFlashcardService) GenerateFromNotes(ctx context.Context, userID uint, notes string) ([]quiz.QAPair, error) {
	args := m.Called(ctx, userID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]quiz.QAPair), args.Error(1)
}

func (m *MockFlashcardService) ListForUser(ctx context.Context, userID uint) ([]quiz.QAPair, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]quiz.QAPair), args.Error(1)
}

// MockQAService is a mock implementation of service.QAService.
type MockQAService struct {
	mock.Mock
}

func (m *MockQAService) Answer(ctx context.Context, contextText, question string) (string, error) {
	args := m.Called(ctx, contextText, question)
	return args.String(0), args.Error(1)
}

// MockProbeService is a mock implementation of service.ProbeService.
type MockProbeService struct {
	mock.Mock
}

func (m *MockProbeService) PingDatabase(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func withIdentity(req *http.Request, userID uint, username string) *http.Request {
	return req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{UserID: userID, Username: username, SessionID: "sid"}))
}

func flashFrom(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookieName {
			msg, err := url.QueryUnescape(c.Value)
			require.NoError(t, err)
			return msg
		}
	}
	return ""
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
