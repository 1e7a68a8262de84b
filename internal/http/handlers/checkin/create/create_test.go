package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/gym-manager/internal/models"
	"github.com/magabrotheeeer/gym-manager/internal/services"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, studentID int) (*models.Checkin, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Checkin), args.Error(1)
}

func TestCreateCheckinHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		studentID      string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "успешный чекин",
			studentID: "1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, 1).
					Return(&models.Checkin{ID: 42, StudentID: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":42`,
		},
		{
			name:           "некорректный id в url",
			studentID:      "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation Fails"}`,
		},
		{
			name:      "студент не найден",
			studentID: "404",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, 404).
					Return(nil, services.ErrStudentNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Student does not exists"}`,
		},
		{
			name:      "нет действующего абонемента",
			studentID: "2",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, 2).
					Return(nil, services.ErrRegistrationInactive)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Student registration is not active"}`,
		},
		{
			name:      "лимит чекинов исчерпан",
			studentID: "3",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, 3).
					Return(nil, services.ErrCheckinLimit)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Maximum checkins on past 7 days reached"}`,
		},
		{
			name:      "ошибка сервиса",
			studentID: "4",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, 4).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/students/"+tt.studentID+"/checkins", nil)

			// Устанавливаем URL параметр studentId для chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("studentId", tt.studentID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
