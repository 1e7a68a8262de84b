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

// StudentRepository определяет методы для работы со студентами в хранилище.
type StudentRepository interface {
	// CreateStudent добавляет студента и возвращает его ID.
	CreateStudent(ctx context.Context, student models.Student) (int, error)
	// ReadStudent возвращает студента по ID.
	ReadStudent(ctx context.Context, id int) (*models.Student, error)
	// GetStudentByEmail возвращает студента по email.
	GetStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	// UpdateStudent обновляет данные студента и возвращает количество изменённых строк.
	UpdateStudent(ctx context.Context, student models.Student, id int) (int, error)
	// RemoveStudent удаляет студента и возвращает количество удалённых строк.
	RemoveStudent(ctx context.Context, id int) (int, error)
	// CountStudents подсчитывает студентов по фильтру имени.
	CountStudents(ctx context.Context, q string) (int, error)
	// ListStudents возвращает студентов по фильтру имени с пагинацией.
	ListStudents(ctx context.Context, q string, limit, offset int) ([]*models.Student, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// StudentService реализует бизнес-логику работы со студентами, включая кеширование.
type StudentService struct {
	repo  StudentRepository
	cache Cache
	log   *slog.Logger
}

// NewStudentService создает новый экземпляр StudentService.
func NewStudentService(repo StudentRepository, cache Cache, log *slog.Logger) *StudentService {
	return &StudentService{repo: repo, cache: cache, log: log}
}

// Create создает нового студента. Email должен быть уникален.
func (s *StudentService) Create(ctx context.Context, req models.DummyStudent) (*models.Student, error) {
	_, err := s.repo.GetStudentByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrStudentExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	student := models.Student{
		Name:   req.Name,
		Email:  req.Email,
		Age:    req.Age,
		Weight: req.Weight,
		Height: req.Height,
	}
	id, err := s.repo.CreateStudent(ctx, student)
	if err != nil {
		return nil, err
	}
	student.ID = id

	s.log.Info("created new student", slog.Int("id", id))
	return &student, nil
}

// Read возвращает студента по ID, используя кеш или репозиторий.
func (s *StudentService) Read(ctx context.Context, id int) (*models.Student, error) {
	var result *models.Student
	cacheKey := fmt.Sprintf("student:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ReadStudent(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache student", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Update обновляет студента и инвалидирует кеш.
// Новый email не должен принадлежать другому студенту.
func (s *StudentService) Update(ctx context.Context, req models.DummyStudent, id int) (*models.Student, error) {
	existing, err := s.repo.GetStudentByEmail(ctx, req.Email)
	if err == nil && existing.ID != id {
		return nil, ErrStudentExists
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	student := models.Student{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		Age:    req.Age,
		Weight: req.Weight,
		Height: req.Height,
	}
	rows, err := s.repo.UpdateStudent(ctx, student, id)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrStudentNotFound
	}

	cacheKey := fmt.Sprintf("student:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate student cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return &student, nil
}

// Remove удаляет студента по ID и инвалидирует кеш.
func (s *StudentService) Remove(ctx context.Context, id int) error {
	rows, err := s.repo.RemoveStudent(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStudentNotFound
	}

	cacheKey := fmt.Sprintf("student:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate student cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return nil
}

// List возвращает страницу студентов по фильтру имени и количество страниц.
func (s *StudentService) List(ctx context.Context, q string, p pagination.Params) ([]*models.Student, int, error) {
	total, err := s.repo.CountStudents(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.repo.ListStudents(ctx, q, p.Limit(total), p.Offset())
	if err != nil {
		return nil, 0, err
	}
	return items, p.NumPages(total), nil
}
