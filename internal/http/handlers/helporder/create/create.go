// Package create реализует HTTP-обработчик создания вопроса студента тренеру.
//
// Маршрут открытый, но вопрос может задать только существующий студент
// с действующим абонементом.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-manager/internal/http/response"
	"github.com/magabrotheeeer/gym-manager/internal/lib/sl"
	"github.com/magabrotheeeer/gym-manager/internal/models"
	"github.com/magabrotheeeer/gym-manager/internal/services"
)

// Handler обрабатывает запросы на создание вопроса.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики вопросов студентов.
type Service interface {
	CreateQuestion(ctx context.Context, studentID int, req models.DummyHelpOrder) (*models.HelpOrder, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Задать вопрос тренеру
// @Tags HelpOrders
// @Accept  json
// @Produce  json
// @Param studentId path int true "ID студента"
// @Param request body models.DummyHelpOrder true "Текст вопроса"
// @Success 200 {object} models.HelpOrder "Созданный вопрос"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Студент не найден или абонемент неактивен"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /students/{studentId}/help-orders [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.helporder.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	studentID, err := strconv.Atoi(chi.URLParam(r, "studentId"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationFails())
		return
	}

	var req models.DummyHelpOrder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationFails())
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationFails())
		return
	}

	helpOrder, err := h.service.CreateQuestion(r.Context(), studentID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStudentNotFound):
			log.Error("student not found", slog.Int("student_id", studentID))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Student does not exists"))
		case errors.Is(err, services.ErrRegistrationInactive):
			log.Error("registration not active", slog.Int("student_id", studentID))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Student registration is not active"))
		default:
			log.Error("failed to create help order", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal error"))
		}
		return
	}

	log.Info("success to create help order", slog.Int("id", helpOrder.ID))
	render.JSON(w, r, helpOrder)
}
