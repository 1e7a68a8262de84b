// Package create реализует HTTP-обработчик для оформления абонементов.
//
// Handler принимает студента, тариф и дату начала; дата окончания и полная
// стоимость выводятся из текущего тарифа. После создания публикуется
// сообщение для письма-подтверждения.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-manager/internal/http/response"
	"github.com/magabrotheeeer/gym-manager/internal/lib/sl"
	"github.com/magabrotheeeer/gym-manager/internal/models"
	"github.com/magabrotheeeer/gym-manager/internal/services"
)

// Handler управляет HTTP-запросами на оформление абонементов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики оформления абонемента.
type Service interface {
	Create(ctx context.Context, req models.DummyRegistration) (*models.Registration, error)
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
// @Summary Оформить абонемент
// @Description Создает абонемент студента на тариф. Дата окончания и стоимость вычисляются из тарифа.
// @Tags Registrations
// @Accept  json
// @Produce  json
// @Param request body models.DummyRegistration true "Данные абонемента"
// @Success 200 {object} models.Registration "Созданный абонемент"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Студент или тариф не найдены"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /registrations [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.registration.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRegistration
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationFails())
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationFails())
		return
	}

	registration, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStartDate):
			log.Error("invalid start date", slog.String("start_date", req.StartDate))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.ValidationFails())
		case errors.Is(err, services.ErrStudentNotFound):
			log.Error("student not found", slog.Int("student_id", req.StudentID))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Student does not exists"))
		case errors.Is(err, services.ErrPlanNotFound):
			log.Error("plan not found", slog.Int("plan_id", req.PlanID))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Plan does not exists"))
		default:
			log.Error("failed to create registration", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal error"))
		}
		return
	}

	log.Info("success to create registration", slog.Int("id", registration.ID))
	render.JSON(w, r, registration)
}
