package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/gym-manager/internal/lib/pagination"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

type StudentRepoMock struct{ mock.Mock }

func (m *StudentRepoMock) CreateStudent(ctx context.Context, student models.Student) (int, error) {
	args := m.Called(ctx, student)
	return args.Int(0), args.Error(1)
}
func (m *StudentRepoMock) ReadStudent(ctx context.Context, id int) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}
func (m *StudentRepoMock) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}
func (m *StudentRepoMock) UpdateStudent(ctx context.Context, student models.Student, id int) (int, error) {
	args := m.Called(ctx, student, id)
	return args.Int(0), args.Error(1)
}
func (m *StudentRepoMock) RemoveStudent(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *StudentRepoMock) CountStudents(ctx context.Context, q string) (int, error) {
	args := m.Called(ctx, q)
	return args.Int(0), args.Error(1)
}
func (m *StudentRepoMock) ListStudents(ctx context.Context, q string, limit, offset int) ([]*models.Student, error) {
	args := m.Called(ctx, q, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Student), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestStudentService_Create(t *testing.T) {
	req := models.DummyStudent{
		Name:   "Maria Silva",
		Email:  "maria@example.com",
		Age:    21,
		Weight: 58.5,
		Height: 168,
	}

	tests := []struct {
		name       string
		setupMocks func(r *StudentRepoMock)
		req        models.DummyStudent
		wantErr    error
		wantID     int
	}{
		{
			name: "success create",
			setupMocks: func(r *StudentRepoMock) {
				r.On("GetStudentByEmail", mock.Anything, req.Email).
					Return(nil, sql.ErrNoRows).Once()
				r.On("CreateStudent", mock.Anything, mock.MatchedBy(func(s models.Student) bool {
					return s.Email == req.Email && s.Name == req.Name
				})).Return(7, nil).Once()
			},
			req:    req,
			wantID: 7,
		},
		{
			name: "duplicate email",
			setupMocks: func(r *StudentRepoMock) {
				r.On("GetStudentByEmail", mock.Anything, req.Email).
					Return(&models.Student{ID: 3, Email: req.Email}, nil).Once()
			},
			req:     req,
			wantErr: ErrStudentExists,
		},
		{
			name: "storage failure",
			setupMocks: func(r *StudentRepoMock) {
				r.On("GetStudentByEmail", mock.Anything, req.Email).
					Return(nil, errors.New("connection refused")).Once()
			},
			req:     req,
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(StudentRepoMock)
			cache := new(CacheMock)
			tt.setupMocks(repo)

			svc := NewStudentService(repo, cache, newNoopLogger())
			student, err := svc.Create(context.Background(), tt.req)

			switch tt.name {
			case "success create":
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, student.ID)
			case "duplicate email":
				assert.ErrorIs(t, err, ErrStudentExists)
			default:
				assert.Error(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestStudentService_Update_DuplicateEmail(t *testing.T) {
	repo := new(StudentRepoMock)
	cache := new(CacheMock)

	// email принадлежит другому студенту
	repo.On("GetStudentByEmail", mock.Anything, "taken@example.com").
		Return(&models.Student{ID: 99, Email: "taken@example.com"}, nil).Once()

	svc := NewStudentService(repo, cache, newNoopLogger())
	_, err := svc.Update(context.Background(), models.DummyStudent{
		Name:   "Maria Silva",
		Email:  "taken@example.com",
		Age:    21,
		Weight: 58.5,
		Height: 168,
	}, 7)

	assert.ErrorIs(t, err, ErrStudentExists)
	repo.AssertExpectations(t)
}

func TestStudentService_Remove_NotFound(t *testing.T) {
	repo := new(StudentRepoMock)
	cache := new(CacheMock)

	repo.On("RemoveStudent", mock.Anything, 404).Return(0, nil).Once()

	svc := NewStudentService(repo, cache, newNoopLogger())
	err := svc.Remove(context.Background(), 404)

	assert.ErrorIs(t, err, ErrStudentNotFound)
	repo.AssertExpectations(t)
}

func TestStudentService_List(t *testing.T) {
	repo := new(StudentRepoMock)
	cache := new(CacheMock)

	students := []*models.Student{{ID: 1, Name: "Maria Silva"}}
	repo.On("CountStudents", mock.Anything, "mar").Return(23, nil).Once()
	repo.On("ListStudents", mock.Anything, "mar", 5, 10).Return(students, nil).Once()

	svc := NewStudentService(repo, cache, newNoopLogger())
	items, numPages, err := svc.List(context.Background(), "mar", pagination.Params{Page: 3, PerPage: 5})

	assert.NoError(t, err)
	assert.Equal(t, students, items)
	assert.Equal(t, 5, numPages)
	repo.AssertExpectations(t)
}
