package create

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

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

func (m *MockService) Answer(ctx context.Context, id int, req models.DummyAnswer) (*models.HelpOrderDetail, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HelpOrderDetail), args.Error(1)
}

func TestAnswerHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	answer := "Comece com 10kg"
	answerAt := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	answered := &models.HelpOrderDetail{
		ID:       5,
		Question: "Qual a carga ideal?",
		Answer:   &answer,
		AnswerAt: &answerAt,
		Student:  models.StudentSummary{ID: 1, Name: "Maria Silva", Email: "maria@example.com"},
	}

	tests := []struct {
		name           string
		helpOrderID    string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешный ответ",
			helpOrderID: "5",
			requestBody: models.DummyAnswer{Answer: answer},
			setupMock: func(m *MockService) {
				m.On("Answer", mock.Anything, 5, models.DummyAnswer{Answer: answer}).
					Return(answered, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"answer":"Comece com 10kg"`,
		},
		{
			name:           "пустой ответ",
			helpOrderID:    "5",
			requestBody:    models.DummyAnswer{},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation Fails"}`,
		},
		{
			name:           "некорректный id в url",
			helpOrderID:    "abc",
			requestBody:    models.DummyAnswer{Answer: answer},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation Fails"}`,
		},
		{
			name:        "вопрос не найден",
			helpOrderID: "404",
			requestBody: models.DummyAnswer{Answer: answer},
			setupMock: func(m *MockService) {
				m.On("Answer", mock.Anything, 404, models.DummyAnswer{Answer: answer}).
					Return(nil, services.ErrHelpOrderNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Help order does not exists"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			body, err := json.Marshal(tt.requestBody)
			assert.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/help-orders/"+tt.helpOrderID+"/answer", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			// Устанавливаем URL параметр helpOrderId для chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("helpOrderId", tt.helpOrderID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
