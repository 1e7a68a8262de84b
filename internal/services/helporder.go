package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/gym-manager/internal/lib/pagination"
	"github.com/magabrotheeeer/gym-manager/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// HelpOrderRepository определяет методы для работы с вопросами студентов.
type HelpOrderRepository interface {
	// CreateHelpOrder вставляет вопрос студента и возвращает его.
	CreateHelpOrder(ctx context.Context, studentID int, question string) (*models.HelpOrder, error)
	// ReadHelpOrder возвращает вопрос со вложенным студентом.
	ReadHelpOrder(ctx context.Context, id int) (*models.HelpOrderDetail, error)
	// AnswerHelpOrder записывает ответ и возвращает количество изменённых строк.
	AnswerHelpOrder(ctx context.Context, id int, answer string, answerAt time.Time) (int, error)
	// ListHelpOrdersByStudent возвращает все вопросы студента.
	ListHelpOrdersByStudent(ctx context.Context, studentID int) ([]*models.HelpOrder, error)
	// CountUnansweredHelpOrders возвращает количество вопросов без ответа.
	CountUnansweredHelpOrders(ctx context.Context) (int, error)
	// ListUnansweredHelpOrders возвращает вопросы без ответа с пагинацией.
	ListUnansweredHelpOrders(ctx context.Context, limit, offset int) ([]*models.HelpOrderDetail, error)
	// ReadStudent возвращает студента по ID.
	ReadStudent(ctx context.Context, id int) (*models.Student, error)
	// FindActiveRegistration возвращает абонемент студента, не истёкший на момент now.
	FindActiveRegistration(ctx context.Context, studentID int, now time.Time) (*models.Registration, error)
}

// HelpOrderService реализует бизнес-логику вопросов студентов тренеру.
type HelpOrderService struct {
	repo      HelpOrderRepository
	publisher Publisher
	log       *slog.Logger
}

// NewHelpOrderService создает новый экземпляр HelpOrderService.
func NewHelpOrderService(repo HelpOrderRepository, publisher Publisher, log *slog.Logger) *HelpOrderService {
	return &HelpOrderService{repo: repo, publisher: publisher, log: log}
}

// requireActiveStudent проверяет, что студент существует и имеет действующий абонемент.
func (s *HelpOrderService) requireActiveStudent(ctx context.Context, studentID int) error {
	if _, err := s.repo.ReadStudent(ctx, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrStudentNotFound
		}
		return err
	}
	if _, err := s.repo.FindActiveRegistration(ctx, studentID, time.Now()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRegistrationInactive
		}
		return err
	}
	return nil
}

// CreateQuestion создает вопрос от студента с действующим абонементом.
func (s *HelpOrderService) CreateQuestion(ctx context.Context, studentID int, req models.DummyHelpOrder) (*models.HelpOrder, error) {
	if err := s.requireActiveStudent(ctx, studentID); err != nil {
		return nil, err
	}

	order, err := s.repo.CreateHelpOrder(ctx, studentID, req.Question)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new help order",
		slog.Int("id", order.ID), slog.Int("student_id", studentID))
	return order, nil
}

// ListForStudent возвращает все вопросы студента с действующим абонементом.
func (s *HelpOrderService) ListForStudent(ctx context.Context, studentID int) ([]*models.HelpOrder, error) {
	if err := s.requireActiveStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.repo.ListHelpOrdersByStudent(ctx, studentID)
}

// ListUnanswered возвращает страницу вопросов без ответа и количество страниц.
func (s *HelpOrderService) ListUnanswered(ctx context.Context, p pagination.Params) ([]*models.HelpOrderDetail, int, error) {
	total, err := s.repo.CountUnansweredHelpOrders(ctx)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.repo.ListUnansweredHelpOrders(ctx, p.Limit(total), p.Offset())
	if err != nil {
		return nil, 0, err
	}
	return items, p.NumPages(total), nil
}

// Read возвращает вопрос со вложенным студентом.
func (s *HelpOrderService) Read(ctx context.Context, id int) (*models.HelpOrderDetail, error) {
	result, err := s.repo.ReadHelpOrder(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHelpOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Answer записывает ответ тренера и публикует письмо студенту.
// answer_at выставляется только при первом ответе; повторный ответ
// заменяет текст, но не дату. Публикуется ровно одно письмо на ответ.
func (s *HelpOrderService) Answer(ctx context.Context, id int, req models.DummyAnswer) (*models.HelpOrderDetail, error) {
	order, err := s.repo.ReadHelpOrder(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHelpOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rows, err := s.repo.AnswerHelpOrder(ctx, id, req.Answer, now)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrHelpOrderNotFound
	}

	answerAt := now
	if order.AnswerAt != nil {
		answerAt = *order.AnswerAt
	}
	order.Answer = &req.Answer
	order.AnswerAt = &answerAt

	s.log.Info("answered help order", slog.Int("id", id))

	mail := models.AnswerMail{
		Email:       order.Student.Email,
		StudentName: order.Student.Name,
		Question:    order.Question,
		Answer:      req.Answer,
		AnswerAt:    answerAt,
	}
	if err := s.publisher.Publish(rabbitmq.AnswerKey, mail); err != nil {
		s.log.Warn("failed to publish answer mail", slog.Any("err", err))
	}

	return order, nil
}
