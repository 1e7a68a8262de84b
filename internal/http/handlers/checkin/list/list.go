// Package list реализует HTTP-обработчик истории посещений студента.
package list

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

// Handler обрабатывает запросы на получение чекинов студента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чекинов.
type Service interface {
	List(ctx context.Context, studentID int) ([]*models.Checkin, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary История посещений студента
// @Tags Checkins
// @Produce  json
// @Param studentId path int true "ID студента"
// @Success 200 {array} models.Checkin "Все чекины студента"
// @Failure 401 {object} response.ErrorResponse "Студент не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /students/{studentId}/checkins [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkin.list"
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

	checkins, err := h.service.List(r.Context(), studentID)
	if err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			log.Error("student not found", slog.Int("student_id", studentID))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Student does not exists"))
			return
		}
		log.Error("failed to list checkins", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("list checkins", slog.Int("count", len(checkins)))
	render.JSON(w, r, checkins)
}
