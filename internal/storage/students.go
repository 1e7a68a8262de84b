package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// CreateStudent вставляет нового студента и возвращает его ID.
func (s *Storage) CreateStudent(ctx context.Context, student models.Student) (int, error) {
	const op = "storage.CreateStudent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO students (name, email, age, weight, height)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		student.Name, student.Email, student.Age, student.Weight, student.Height).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadStudent возвращает студента по его ID.
func (s *Storage) ReadStudent(ctx context.Context, id int) (*models.Student, error) {
	const op = "storage.ReadStudent"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, email, age, weight, height
			  FROM students WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Student
	if err := row.Scan(&result.ID, &result.Name, &result.Email,
		&result.Age, &result.Weight, &result.Height); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// GetStudentByEmail возвращает студента по email.
func (s *Storage) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	const op = "storage.GetStudentByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, email, age, weight, height
			  FROM students WHERE email = $1`
	row := s.DB.QueryRowContext(ctx, query, email)

	var result models.Student
	if err := row.Scan(&result.ID, &result.Name, &result.Email,
		&result.Age, &result.Weight, &result.Height); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateStudent обновляет данные студента по его ID и возвращает количество изменённых строк.
func (s *Storage) UpdateStudent(ctx context.Context, student models.Student, id int) (int, error) {
	const op = "storage.UpdateStudent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE students
			  SET name = $1, email = $2, age = $3, weight = $4, height = $5, updated_at = now()
			  WHERE id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		student.Name, student.Email, student.Age, student.Weight, student.Height, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveStudent удаляет студента по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveStudent(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveStudent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM students WHERE id = $1`
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

// CountStudents подсчитывает студентов, имя которых содержит подстроку q.
// Пустая подстрока соответствует всем студентам.
func (s *Storage) CountStudents(ctx context.Context, q string) (int, error) {
	const op = "storage.CountStudents"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*) FROM students
			  WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`
	var total int
	if err := s.DB.QueryRowContext(ctx, query, q).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// ListStudents возвращает список студентов с фильтром по имени и пагинацией.
func (s *Storage) ListStudents(ctx context.Context, q string, limit, offset int) ([]*models.Student, error) {
	const op = "storage.ListStudents"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, email, age, weight, height
			  FROM students
			  WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
			  ORDER BY id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Student
	for rows.Next() {
		var item models.Student
		if err := rows.Scan(&item.ID, &item.Name, &item.Email,
			&item.Age, &item.Weight, &item.Height); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
