package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/gym-manager/internal/lib/pagination"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// PlanRepository определяет методы для работы с тарифами в хранилище.
type PlanRepository interface {
	// CreatePlan добавляет тариф и возвращает его ID.
	CreatePlan(ctx context.Context, plan models.Plan) (int, error)
	// ReadPlan возвращает тариф по ID.
	ReadPlan(ctx context.Context, id int) (*models.Plan, error)
	// UpdatePlan обновляет тариф и возвращает количество изменённых строк.
	UpdatePlan(ctx context.Context, plan models.Plan, id int) (int, error)
	// RemovePlan удаляет тариф и возвращает количество удалённых строк.
	RemovePlan(ctx context.Context, id int) (int, error)
	// CountPlans возвращает общее количество тарифов.
	CountPlans(ctx context.Context) (int, error)
	// ListPlans возвращает список тарифов с пагинацией.
	ListPlans(ctx context.Context, limit, offset int) ([]*models.Plan, error)
}

// PlanService реализует бизнес-логику работы с тарифами, включая кеширование.
type PlanService struct {
	repo  PlanRepository
	cache Cache
	log   *slog.Logger
}

// NewPlanService создает новый экземпляр PlanService.
func NewPlanService(repo PlanRepository, cache Cache, log *slog.Logger) *PlanService {
	return &PlanService{repo: repo, cache: cache, log: log}
}

// Create создает новый тариф.
func (s *PlanService) Create(ctx context.Context, req models.DummyPlan) (*models.Plan, error) {
	plan := models.Plan{
		Title:    req.Title,
		Duration: req.Duration,
		Price:    req.Price,
	}
	id, err := s.repo.CreatePlan(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = id

	s.log.Info("created new plan", slog.Int("id", id))
	return &plan, nil
}

// Read возвращает тариф по ID, используя кеш или репозиторий.
func (s *PlanService) Read(ctx context.Context, id int) (*models.Plan, error) {
	var result *models.Plan
	cacheKey := fmt.Sprintf("plan:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ReadPlan(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache plan", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Update обновляет тариф и инвалидирует кеш. Существующие абонементы
// не пересчитываются: новая цена и срок применяются только к последующим
// операциям создания и обновления абонементов.
func (s *PlanService) Update(ctx context.Context, req models.DummyPlan, id int) (*models.Plan, error) {
	plan := models.Plan{
		ID:       id,
		Title:    req.Title,
		Duration: req.Duration,
		Price:    req.Price,
	}
	rows, err := s.repo.UpdatePlan(ctx, plan, id)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPlanNotFound
	}

	cacheKey := fmt.Sprintf("plan:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate plan cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return &plan, nil
}

// Remove удаляет тариф по ID и инвалидирует кеш.
func (s *PlanService) Remove(ctx context.Context, id int) error {
	rows, err := s.repo.RemovePlan(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPlanNotFound
	}

	cacheKey := fmt.Sprintf("plan:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate plan cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return nil
}

// List возвращает страницу тарифов и количество страниц.
func (s *PlanService) List(ctx context.Context, p pagination.Params) ([]*models.Plan, int, error) {
	total, err := s.repo.CountPlans(ctx)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.repo.ListPlans(ctx, p.Limit(total), p.Offset())
	if err != nil {
		return nil, 0, err
	}
	return items, p.NumPages(total), nil
}
