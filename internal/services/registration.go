package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/gym-manager/internal/lib/pagination"
	"github.com/magabrotheeeer/gym-manager/internal/lib/period"
	"github.com/magabrotheeeer/gym-manager/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// startDateLayout — формат даты начала абонемента во входных запросах.
const startDateLayout = "2006-01-02"

// RegistrationRepository определяет методы для работы с абонементами в хранилище.
type RegistrationRepository interface {
	// CreateRegistration добавляет абонемент и возвращает его ID.
	CreateRegistration(ctx context.Context, reg models.Registration) (int, error)
	// ReadRegistration возвращает абонемент со вложенными студентом и тарифом.
	ReadRegistration(ctx context.Context, id int) (*models.RegistrationDetail, error)
	// UpdateRegistration обновляет абонемент и возвращает количество изменённых строк.
	UpdateRegistration(ctx context.Context, reg models.Registration, id int) (int, error)
	// RemoveRegistration удаляет абонемент и возвращает количество удалённых строк.
	RemoveRegistration(ctx context.Context, id int) (int, error)
	// CountRegistrations возвращает общее количество абонементов.
	CountRegistrations(ctx context.Context) (int, error)
	// ListRegistrations возвращает абонементы с пагинацией.
	ListRegistrations(ctx context.Context, limit, offset int) ([]*models.RegistrationDetail, error)
	// ReadStudent возвращает студента по ID.
	ReadStudent(ctx context.Context, id int) (*models.Student, error)
	// ReadPlan возвращает тариф по ID.
	ReadPlan(ctx context.Context, id int) (*models.Plan, error)
}

// Publisher публикует почтовые уведомления в брокер сообщений.
type Publisher interface {
	Publish(routingKey string, message any) error
}

// RegistrationService реализует бизнес-логику абонементов: срок и полная
// стоимость всегда производные от текущего тарифа и даты начала.
type RegistrationService struct {
	repo      RegistrationRepository
	publisher Publisher
	log       *slog.Logger
}

// NewRegistrationService создает новый экземпляр RegistrationService.
func NewRegistrationService(repo RegistrationRepository, publisher Publisher, log *slog.Logger) *RegistrationService {
	return &RegistrationService{repo: repo, publisher: publisher, log: log}
}

// derive пересчитывает производные поля абонемента из текущего тарифа.
func derive(req models.DummyRegistration, plan *models.Plan) (models.Registration, error) {
	startDate, err := time.Parse(startDateLayout, req.StartDate)
	if err != nil {
		return models.Registration{}, fmt.Errorf("%w: %v", ErrInvalidStartDate, err)
	}
	return models.Registration{
		StudentID: req.StudentID,
		PlanID:    req.PlanID,
		StartDate: startDate,
		EndDate:   period.End(startDate, plan.Duration),
		Price:     period.TotalPrice(plan.Price, plan.Duration),
	}, nil
}

// Create создает абонемент и публикует письмо-подтверждение.
// Ошибка публикации не отменяет создание: письмо лишь уведомление.
func (s *RegistrationService) Create(ctx context.Context, req models.DummyRegistration) (*models.Registration, error) {
	plan, err := s.repo.ReadPlan(ctx, req.PlanID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	student, err := s.repo.ReadStudent(ctx, req.StudentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}

	reg, err := derive(req, plan)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.CreateRegistration(ctx, reg)
	if err != nil {
		return nil, err
	}
	reg.ID = id
	now := time.Now()
	reg.Active = !now.Before(reg.StartDate) && !now.After(reg.EndDate)

	s.log.Info("created new registration", slog.Int("id", id))

	mail := models.RegistrationMail{
		Email:        student.Email,
		StudentName:  student.Name,
		PlanTitle:    plan.Title,
		StartDate:    reg.StartDate,
		EndDate:      reg.EndDate,
		Price:        reg.Price,
		MonthlyPrice: plan.Price,
	}
	if err := s.publisher.Publish(rabbitmq.RegistrationKey, mail); err != nil {
		s.log.Warn("failed to publish registration mail", slog.Any("err", err))
	}

	return &reg, nil
}

// Update обновляет абонемент, заново выводя срок и стоимость из
// текущего тарифа, даже если тариф изменился после создания.
func (s *RegistrationService) Update(ctx context.Context, req models.DummyRegistration, id int) (*models.Registration, error) {
	plan, err := s.repo.ReadPlan(ctx, req.PlanID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.ReadStudent(ctx, req.StudentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	reg, err := derive(req, plan)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.UpdateRegistration(ctx, reg, id)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrRegistrationNotFound
	}
	reg.ID = id
	now := time.Now()
	reg.Active = !now.Before(reg.StartDate) && !now.After(reg.EndDate)

	s.log.Info("updated registration", slog.Int("id", id))
	return &reg, nil
}

// Read возвращает абонемент со вложенными студентом и тарифом.
func (s *RegistrationService) Read(ctx context.Context, id int) (*models.RegistrationDetail, error) {
	result, err := s.repo.ReadRegistration(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRegistrationNotFound
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Remove удаляет абонемент по ID.
func (s *RegistrationService) Remove(ctx context.Context, id int) error {
	rows, err := s.repo.RemoveRegistration(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

// List возвращает страницу абонементов и количество страниц.
func (s *RegistrationService) List(ctx context.Context, p pagination.Params) ([]*models.RegistrationDetail, int, error) {
	total, err := s.repo.CountRegistrations(ctx)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.repo.ListRegistrations(ctx, p.Limit(total), p.Offset())
	if err != nil {
		return nil, 0, err
	}
	return items, p.NumPages(total), nil
}
