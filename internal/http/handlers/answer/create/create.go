// Package create реализует HTTP-обработчик ответа тренера на вопрос студента.
//
// Повторный ответ перезаписывает текст, но answer_at сохраняет момент
// первого ответа. После ответа публикуется сообщение для письма студенту.
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

// Handler обрабатывает запросы на ответ тренера.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики ответа на вопрос.
type Service interface {
	Answer(ctx context.Context, id int, req models.DummyAnswer) (*models.HelpOrderDetail, error)
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
// @Summary Ответить на вопрос студента
// @Tags HelpOrders
// @Accept  json
// @Produce  json
// @Param helpOrderId path int true "ID вопроса"
// @Param request body models.DummyAnswer true "Текст ответа"
// @Success 200 {object} models.HelpOrderDetail "Вопрос с ответом"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Вопрос не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /help-orders/{helpOrderId}/answer [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.answer.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "helpOrderId"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationFails())
		return
	}

	var req models.DummyAnswer
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

	helpOrder, err := h.service.Answer(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrHelpOrderNotFound) {
			log.Error("help order not found", slog.Int("id", id))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Help order does not exists"))
			return
		}
		log.Error("failed to answer help order", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("success to answer help order", slog.Int("id", helpOrder.ID))
	render.JSON(w, r, helpOrder)
}
