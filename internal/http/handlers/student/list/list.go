// Package list реализует HTTP-обработчик для постраничного списка студентов
// с необязательным поиском по имени.
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

const defaultPerPage = 20

// Handler обрабатывает запросы на получение списка студентов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка студентов.
type Service interface {
	List(ctx context.Context, q string, p pagination.Params) ([]*models.Student, int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список студентов
// @Description Возвращает страницу списка студентов. Параметр q фильтрует по имени без учета регистра.
// @Tags Students
// @Produce  json
// @Param q query string false "Поиск по имени"
// @Param page query int false "Номер страницы"
// @Param per_page query int false "Размер страницы"
// @Success 200 {object} map[string]any "Страница списка и число страниц"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /students [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.student.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query().Get("q")
	params := pagination.FromQuery(r.URL.Query(), defaultPerPage)

	students, numPages, err := h.service.List(r.Context(), q, params)
	if err != nil {
		log.Error("failed to list students", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("list students", slog.Int("count", len(students)))
	render.JSON(w, r, response.Paginated(students, numPages))
}
