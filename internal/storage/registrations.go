package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// CreateRegistration вставляет новый абонемент и возвращает его ID.
func (s *Storage) CreateRegistration(ctx context.Context, reg models.Registration) (int, error) {
	const op = "storage.CreateRegistration"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO registrations (student_id, plan_id, start_date, end_date, price)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		reg.StudentID, reg.PlanID, reg.StartDate, reg.EndDate, reg.Price).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadRegistration возвращает абонемент со вложенными студентом и тарифом.
func (s *Storage) ReadRegistration(ctx context.Context, id int) (*models.RegistrationDetail, error) {
	const op = "storage.ReadRegistration"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT r.id, r.start_date, r.end_date, r.price,
			      (r.start_date <= now() AND r.end_date >= now()) AS active,
			      st.id, st.name, st.email,
			      p.id, p.title
			  FROM registrations r
			  JOIN students st ON st.id = r.student_id
			  JOIN plans p ON p.id = r.plan_id
			  WHERE r.id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.RegistrationDetail
	if err := row.Scan(&result.ID, &result.StartDate, &result.EndDate, &result.Price,
		&result.Active,
		&result.Student.ID, &result.Student.Name, &result.Student.Email,
		&result.Plan.ID, &result.Plan.Title); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateRegistration обновляет абонемент по его ID и возвращает количество изменённых строк.
func (s *Storage) UpdateRegistration(ctx context.Context, reg models.Registration, id int) (int, error) {
	const op = "storage.UpdateRegistration"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE registrations
			  SET student_id = $1, plan_id = $2, start_date = $3, end_date = $4, price = $5
			  WHERE id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		reg.StudentID, reg.PlanID, reg.StartDate, reg.EndDate, reg.Price, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveRegistration удаляет абонемент по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveRegistration(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveRegistration"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM registrations WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// CountRegistrations возвращает общее количество абонементов.
func (s *Storage) CountRegistrations(ctx context.Context) (int, error) {
	const op = "storage.CountRegistrations"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var total int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// ListRegistrations возвращает абонементы со вложенными студентом и тарифом с пагинацией.
func (s *Storage) ListRegistrations(ctx context.Context, limit, offset int) ([]*models.RegistrationDetail, error) {
	const op = "storage.ListRegistrations"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT r.id, r.start_date, r.end_date, r.price,
			      (r.start_date <= now() AND r.end_date >= now()) AS active,
			      st.id, st.name, st.email,
			      p.id, p.title
			  FROM registrations r
			  JOIN students st ON st.id = r.student_id
			  JOIN plans p ON p.id = r.plan_id
			  ORDER BY r.id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.RegistrationDetail
	for rows.Next() {
		var item models.RegistrationDetail
		if err := rows.Scan(&item.ID, &item.StartDate, &item.EndDate, &item.Price,
			&item.Active,
			&item.Student.ID, &item.Student.Name, &item.Student.Email,
			&item.Plan.ID, &item.Plan.Title); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FindActiveRegistration возвращает абонемент студента, срок которого
// ещё не истёк на момент now.
func (s *Storage) FindActiveRegistration(ctx context.Context, studentID int, now time.Time) (*models.Registration, error) {
	const op = "storage.FindActiveRegistration"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, student_id, plan_id, start_date, end_date, price
			  FROM registrations
			  WHERE student_id = $1 AND end_date >= $2
			  ORDER BY end_date DESC
			  LIMIT 1`
	row := s.DB.QueryRowContext(ctx, query, studentID, now)

	var result models.Registration
	if err := row.Scan(&result.ID, &result.StudentID, &result.PlanID,
		&result.StartDate, &result.EndDate, &result.Price); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result.Active = !now.Before(result.StartDate) && !now.After(result.EndDate)
	return &result, nil
}
