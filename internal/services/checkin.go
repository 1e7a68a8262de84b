package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// Лимит чекинов и скользящее окно, в котором он действует.
// Значения фиксированы и не настраиваются по тарифам.
const (
	checkinLimit  = 5
	checkinWindow = 7 * 24 * time.Hour
)

// CheckinRepository определяет методы для работы с чекинами в хранилище.
type CheckinRepository interface {
	// CreateCheckin вставляет отметку о посещении и возвращает её.
	CreateCheckin(ctx context.Context, studentID int, at time.Time) (*models.Checkin, error)
	// CountCheckinsSince подсчитывает чекины студента с created_at >= since.
	CountCheckinsSince(ctx context.Context, studentID int, since time.Time) (int, error)
	// ListCheckins возвращает все чекины студента.
	ListCheckins(ctx context.Context, studentID int) ([]*models.Checkin, error)
	// ReadStudent возвращает студента по ID.
	ReadStudent(ctx context.Context, id int) (*models.Student, error)
	// FindActiveRegistration возвращает абонемент студента, не истёкший на момент now.
	FindActiveRegistration(ctx context.Context, studentID int, now time.Time) (*models.Registration, error)
}

// CheckinService реализует правило допуска на чекин: существующий студент,
// действующий абонемент и не более пяти посещений за последние семь дней.
//
// Проверка счётчика и вставка не сериализованы: два одновременных запроса
// могут оба увидеть счётчик 4 и оба вставить запись. Это осознанно
// унаследованное поведение, а не гарантия.
type CheckinService struct {
	repo CheckinRepository
	log  *slog.Logger
}

// NewCheckinService создает новый экземпляр CheckinService.
func NewCheckinService(repo CheckinRepository, log *slog.Logger) *CheckinService {
	return &CheckinService{repo: repo, log: log}
}

// Create проверяет допуск и создает чекин. Проверки выполняются по порядку,
// первая неудачная прерывает обработку.
func (s *CheckinService) Create(ctx context.Context, studentID int) (*models.Checkin, error) {
	now := time.Now()

	if _, err := s.repo.ReadStudent(ctx, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if _, err := s.repo.FindActiveRegistration(ctx, studentID, now); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRegistrationInactive
		}
		return nil, err
	}

	count, err := s.repo.CountCheckinsSince(ctx, studentID, now.Add(-checkinWindow))
	if err != nil {
		return nil, err
	}
	if count >= checkinLimit {
		return nil, ErrCheckinLimit
	}

	checkin, err := s.repo.CreateCheckin(ctx, studentID, now)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new checkin",
		slog.Int("id", checkin.ID), slog.Int("student_id", studentID))
	return checkin, nil
}

// List возвращает все чекины существующего студента.
func (s *CheckinService) List(ctx context.Context, studentID int) ([]*models.Checkin, error) {
	if _, err := s.repo.ReadStudent(ctx, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return s.repo.ListCheckins(ctx, studentID)
}
