// Package list реализует HTTP-обработчик списка неотвеченных вопросов
// для тренерской панели.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-manager/internal/http/response"
	"github.com/magabrotheeeer/gym-manager/internal/lib/pagination"
	"github.com/magabrotheeeer/gym-manager/internal/lib/sl"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

const defaultPerPage = 5

// Handler обрабатывает запросы на получение неотвеченных вопросов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики вопросов студентов.
type Service interface {
	ListUnanswered(ctx context.Context, p pagination.Params) ([]*models.HelpOrderDetail, int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Неотвеченные вопросы
// @Tags HelpOrders
// @Produce  json
// @Param page query int false "Номер страницы"
// @Param per_page query int false "Размер страницы"
// @Success 200 {object} map[string]any "Страница списка и число страниц"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /help-orders [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.answer.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	params := pagination.FromQuery(r.URL.Query(), defaultPerPage)

	helpOrders, numPages, err := h.service.ListUnanswered(r.Context(), params)
	if err != nil {
		log.Error("failed to list unanswered help orders", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("list unanswered help orders", slog.Int("count", len(helpOrders)))
	render.JSON(w, r, response.Paginated(helpOrders, numPages))
}
