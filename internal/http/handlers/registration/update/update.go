// Package update реализует HTTP-обработчик для обновления абонемента.
//
// Дата окончания и полная стоимость всегда пересчитываются из текущего
// тарифа, даже если тариф в запросе не менялся.
package update

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

// Handler обрабатывает запросы на обновление абонемента.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления абонемента.
type Service interface {
	Update(ctx context.Context, req models.DummyRegistration, id int) (*models.Registration, error)
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
// @Summary Обновить абонемент
// @Tags Registrations
// @Accept  json
// @Produce  json
// @Param registrationId path int true "ID абонемента"
// @Param request body models.DummyRegistration true "Новые данные абонемента"
// @Success 200 {object} models.Registration "Обновленный абонемент"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Абонемент, студент или тариф не найдены"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /registrations/{registrationId} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.registration.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "registrationId"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationFails())
		return
	}

	var req models.DummyRegistration
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

	registration, err := h.service.Update(r.Context(), req, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStartDate):
			log.Error("invalid start date", slog.String("start_date", req.StartDate))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.ValidationFails())
		case errors.Is(err, services.ErrRegistrationNotFound):
			log.Error("registration not found", slog.Int("id", id))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Registration does not exists"))
		case errors.Is(err, services.ErrStudentNotFound):
			log.Error("student not found", slog.Int("student_id", req.StudentID))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Student does not exists"))
		case errors.Is(err, services.ErrPlanNotFound):
			log.Error("plan not found", slog.Int("plan_id", req.PlanID))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Plan does not exists"))
		default:
			log.Error("failed to update registration", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal error"))
		}
		return
	}

	log.Info("success to update registration", slog.Int("id", registration.ID))
	render.JSON(w, r, registration)
}
