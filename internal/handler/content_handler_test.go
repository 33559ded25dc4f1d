package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Kay-svg505/Philologic-platform/internal/errors"
	"github.com/Kay-svg505/Philologic-platform/internal/model"
)

func TestPhilosopherHandler_List(t *testing.T) {
	e := newEcho(t)
	svc := new(MockContentService)
	svc.On("ListPhilosophers", mock.Anything).Return([]model.Philosopher{
		{ID: 1, Name: "Plato", WorkTitle: "Allegory of the Cave", Description: "Shadows.", ReasoningFramework: "Dialectic"},
	}, nil)
	e.GET("/api/philosophers", NewPhilosopherHandler(svc).List)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/philosophers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Plato","work_title":"Allegory of the Cave","description":"Shadows."}]`, rec.Body.String())
}

func TestPhilosopherHandler_ListModules(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(*MockContentService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "modules of a known philosopher",
			path: "/api/philosophers/2/modules",
			setupMock: func(m *MockContentService) {
				m.On("ListModules", mock.Anything, uint(2)).Return([]model.LearningModule{{ID: 4, PhilosopherID: 2, Title: "Forms", DifficultyLevel: 3}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown philosopher",
			path: "/api/philosophers/77/modules",
			setupMock: func(m *MockContentService) {
				m.On("ListModules", mock.Anything, uint(77)).Return(nil, apperrors.ErrPhilosopherNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "PHILOSOPHER_NOT_FOUND",
		},
		{
			name:           "non-numeric id",
			path:           "/api/philosophers/plato/modules",
			setupMock:      func(m *MockContentService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho(t)
			svc := new(MockContentService)
			tt.setupMock(svc)
			e.GET("/api/philosophers/:id/modules", NewPhilosopherHandler(svc).ListModules)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec)["code"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestQAHandler_Answer(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockQAService)
		expectedStatus int
		expectedBody   string
		expectedCode   string
	}{
		{
			name: "answer",
			body: `{"context":"Socrates taught Plato.","question":"Who taught Plato?"}`,
			setupMock: func(m *MockQAService) {
				m.On("Answer", mock.Anything, "Socrates taught Plato.", "Who taught Plato?").Return("Socrates", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"answer":"Socrates"}`,
		},
		{
			name: "missing question",
			body: `{"context":"c"}`,
			setupMock: func(m *MockQAService) {
				m.On("Answer", mock.Anything, "c", "").Return("", apperrors.ErrQARequired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "CONTEXT_AND_QUESTION_REQUIRED",
		},
		{
			name: "transport failure",
			body: `{"context":"c","question":"q"}`,
			setupMock: func(m *MockQAService) {
				m.On("Answer", mock.Anything, "c", "q").Return("", errors.Join(apperrors.ErrInference, errors.New("dial tcp: refused")))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INFERENCE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho(t)
			svc := new(MockQAService)
			tt.setupMock(svc)
			e.POST("/qa", NewQAHandler(svc).Answer)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/qa", tt.body))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec)["code"])
			}
		})
	}
}

func TestPageHandler(t *testing.T) {
	t.Run("test-db success", func(t *testing.T) {
		e := newEcho(t)
		probe := new(MockProbeService)
		probe.On("PingDatabase", mock.Anything).Return(1, nil)
		e.GET("/test-db", NewPageHandler(new(MockContentService), probe, nil).TestDB)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test-db", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Database connected! Result: 1", rec.Body.String())
	})

	t.Run("test-db failure", func(t *testing.T) {
		e := newEcho(t)
		probe := new(MockProbeService)
		probe.On("PingDatabase", mock.Anything).Return(0, errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))
		e.GET("/test-db", NewPageHandler(new(MockContentService), probe, nil).TestDB)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test-db", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Database connection failed: dial tcp 127.0.0.1:3306: connect: connection refused", rec.Body.String())
	})

	t.Run("philosophers page", func(t *testing.T) {
		e := newEcho(t)
		content := new(MockContentService)
		content.On("ListPhilosophers", mock.Anything).Return([]model.Philosopher{{ID: 1, Name: "Friedrich Nietzsche", WorkTitle: "Beyond Good and Evil"}}, nil)
		e.GET("/philosophers", NewPageHandler(content, new(MockProbeService), nil).Philosophers)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/philosophers", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Beyond Good and Evil")
	})

	t.Run("home shows username", func(t *testing.T) {
		e := newEcho(t)
		e.GET("/", NewPageHandler(new(MockContentService), new(MockProbeService), nil).Home)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, withIdentity(httptest.NewRequest(http.MethodGet, "/", nil), 1, "beauvoir"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "beauvoir")
	})
}
