// Package read реализует HTTP-обработчик для получения вопроса по ID.
package read

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

// Handler обрабатывает запросы на получение вопроса по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения вопроса.
type Service interface {
	Read(ctx context.Context, id int) (*models.HelpOrderDetail, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить вопрос по ID
// @Tags HelpOrders
// @Produce  json
// @Param helpOrderId path int true "ID вопроса"
// @Success 200 {object} models.HelpOrderDetail "Вопрос с данными студента"
// @Failure 401 {object} response.ErrorResponse "Вопрос не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /help-orders/{helpOrderId}/answer [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.answer.read"

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

	helpOrder, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrHelpOrderNotFound) {
			log.Error("help order not found", slog.Int("id", id))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Help order does not exists"))
			return
		}
		log.Error("failed to read help order", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("success to read help order", slog.Int("id", helpOrder.ID))
	render.JSON(w, r, helpOrder)
}
