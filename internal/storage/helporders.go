package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// CreateHelpOrder вставляет вопрос студента и возвращает созданную запись.
func (s *Storage) CreateHelpOrder(ctx context.Context, studentID int, question string) (*models.HelpOrder, error) {
	const op = "storage.CreateHelpOrder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO help_orders (student_id, question)
			  VALUES ($1, $2)
			  RETURNING id, student_id, question, answer, answer_at, created_at`
	row := s.DB.QueryRowContext(ctx, query, studentID, question)

	var result models.HelpOrder
	if err := row.Scan(&result.ID, &result.StudentID, &result.Question,
		&result.Answer, &result.AnswerAt, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ReadHelpOrder возвращает вопрос со вложенным студентом, включая его email.
func (s *Storage) ReadHelpOrder(ctx context.Context, id int) (*models.HelpOrderDetail, error) {
	const op = "storage.ReadHelpOrder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT h.id, h.question, h.answer, h.answer_at,
			      st.id, st.name, st.email
			  FROM help_orders h
			  JOIN students st ON st.id = h.student_id
			  WHERE h.id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.HelpOrderDetail
	if err := row.Scan(&result.ID, &result.Question, &result.Answer, &result.AnswerAt,
		&result.Student.ID, &result.Student.Name, &result.Student.Email); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// AnswerHelpOrder записывает ответ тренера. answer_at выставляется только
// при первом ответе и дальше не меняется. Возвращает количество изменённых строк.
func (s *Storage) AnswerHelpOrder(ctx context.Context, id int, answer string, answerAt time.Time) (int, error) {
	const op = "storage.AnswerHelpOrder"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE help_orders
			  SET answer = $1, answer_at = COALESCE(answer_at, $2)
			  WHERE id = $3`
	result, err := s.DB.ExecContext(ctx, query, answer, answerAt, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListHelpOrdersByStudent возвращает все вопросы студента.
func (s *Storage) ListHelpOrdersByStudent(ctx context.Context, studentID int) ([]*models.HelpOrder, error) {
	const op = "storage.ListHelpOrdersByStudent"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, student_id, question, answer, answer_at, created_at
			  FROM help_orders
			  WHERE student_id = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.HelpOrder
	for rows.Next() {
		var item models.HelpOrder
		if err := rows.Scan(&item.ID, &item.StudentID, &item.Question,
			&item.Answer, &item.AnswerAt, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountUnansweredHelpOrders возвращает количество вопросов без ответа.
func (s *Storage) CountUnansweredHelpOrders(ctx context.Context) (int, error) {
	const op = "storage.CountUnansweredHelpOrders"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var total int
	query := `SELECT COUNT(*) FROM help_orders WHERE answer IS NULL`
	if err := s.DB.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// ListUnansweredHelpOrders возвращает вопросы без ответа со вложенным студентом.
func (s *Storage) ListUnansweredHelpOrders(ctx context.Context, limit, offset int) ([]*models.HelpOrderDetail, error) {
	const op = "storage.ListUnansweredHelpOrders"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT h.id, h.question, h.answer, h.answer_at,
			      st.id, st.name, st.email
			  FROM help_orders h
			  JOIN students st ON st.id = h.student_id
			  WHERE h.answer IS NULL
			  ORDER BY h.id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.HelpOrderDetail
	for rows.Next() {
		var item models.HelpOrderDetail
		if err := rows.Scan(&item.ID, &item.Question, &item.Answer, &item.AnswerAt,
			&item.Student.ID, &item.Student.Name, &item.Student.Email); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
