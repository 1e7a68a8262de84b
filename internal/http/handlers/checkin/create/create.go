// Package create реализует HTTP-обработчик отметки о посещении зала.
//
// Маршрут открытый: студент отмечается со своего устройства без токена.
// Перед вставкой проверяются существование студента, активный абонемент
// и лимит из пяти посещений за последние семь суток.
package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-manager/internal/http/response"
	"github.com/magabrotheeeer/gym-manager/internal/lib/sl"
	"github.com/magabrotheeeer/gym-manager/internal/models"
	"github.com/magabrotheeeer/gym-manager/internal/services"
)

// Handler обрабатывает запросы на создание чекина.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чекинов.
type Service interface {
	Create(ctx context.Context, studentID int) (*models.Checkin, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отметить посещение зала
// @Description Создает чекин студента. Не более пяти чекинов за последние семь суток.
// @Tags Checkins
// @Produce  json
// @Param studentId path int true "ID студента"
// @Success 200 {object} models.Checkin "Созданный чекин"
// @Failure 401 {object} response.ErrorResponse "Студент не найден, абонемент неактивен или лимит исчерпан"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /students/{studentId}/checkins [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkin.create"
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

	checkin, err := h.service.Create(r.Context(), studentID)
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
		case errors.Is(err, services.ErrCheckinLimit):
			log.Error("checkin limit reached", slog.Int("student_id", studentID))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Maximum checkins on past 7 days reached"))
		default:
			log.Error("failed to create checkin", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal error"))
		}
		return
	}

	log.Info("success to create checkin", slog.Int("id", checkin.ID))
	render.JSON(w, r, checkin)
}
