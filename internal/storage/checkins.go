package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// CreateCheckin вставляет отметку о посещении и возвращает созданную запись.
func (s *Storage) CreateCheckin(ctx context.Context, studentID int, at time.Time) (*models.Checkin, error) {
	const op = "storage.CreateCheckin"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO checkins (student_id, created_at)
			  VALUES ($1, $2)
			  RETURNING id, student_id, created_at`
	row := s.DB.QueryRowContext(ctx, query, studentID, at)

	var result models.Checkin
	if err := row.Scan(&result.ID, &result.StudentID, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// CountCheckinsSince подсчитывает чекины студента с created_at >= since.
// Нижняя граница окна включается.
func (s *Storage) CountCheckinsSince(ctx context.Context, studentID int, since time.Time) (int, error) {
	const op = "storage.CountCheckinsSince"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*) FROM checkins
			  WHERE student_id = $1 AND created_at >= $2`
	var count int
	if err := s.DB.QueryRowContext(ctx, query, studentID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// ListCheckins возвращает все чекины студента в порядке создания.
func (s *Storage) ListCheckins(ctx context.Context, studentID int) ([]*models.Checkin, error) {
	const op = "storage.ListCheckins"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, student_id, created_at
			  FROM checkins
			  WHERE student_id = $1
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Checkin
	for rows.Next() {
		var item models.Checkin
		if err := rows.Scan(&item.ID, &item.StudentID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
