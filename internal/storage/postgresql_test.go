package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-manager/internal/models"
)

func TestStorage_CreateStudent(t *testing.T) {
	type args struct {
		ctx     context.Context
		student models.Student
	}

	tests := []struct {
		name   string
		args   args
		wantID int
		verify func(t *testing.T, s *Storage, id int)
	}{
		{
			name: "successful create student",
			args: args{
				ctx: context.Background(),
				student: models.Student{
					Name:   "Cleiton Souza",
					Email:  "cleiton@gympoint.com",
					Age:    25,
					Weight: 82.5,
					Height: 1.78,
				},
			},
			wantID: 1,
			verify: func(t *testing.T, s *Storage, id int) {
				verification := NewTestVerification(s)
				verification.VerifyStudentExists(t, id)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			gotID, err := storage.CreateStudent(tt.args.ctx, tt.args.student)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, gotID)
			tt.verify(t, storage, gotID)
		})
	}
}

func TestStorage_ReadStudent(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	id := factory.CreateStudent(t, "Robson Braga", "robson@gympoint.com", 31, 90.0, 1.85)

	got, err := storage.ReadStudent(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Robson Braga", got.Name)
	assert.Equal(t, "robson@gympoint.com", got.Email)
	assert.Equal(t, 31, got.Age)

	_, err = storage.ReadStudent(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestStorage_GetStudentByEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	id := factory.CreateStudent(t, "Marcela Ferraz", "marcela@gympoint.com", 22, 58.0, 1.65)

	got, err := storage.GetStudentByEmail(context.Background(), "marcela@gympoint.com")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = storage.GetStudentByEmail(context.Background(), "missing@gympoint.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestStorage_RemoveStudent(t *testing.T) {
	type args struct {
		ctx context.Context
		id  int
	}

	tests := []struct {
		name             string
		args             args
		wantRowsAffected int
	}{
		{
			name: "successful delete student",
			args: args{
				ctx: context.Background(),
				id:  1,
			},
			wantRowsAffected: 1,
		},
		{
			name: "invalid id",
			args: args{
				ctx: context.Background(),
				id:  9999,
			},
			wantRowsAffected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			factory.CreateStudent(t, "Cleiton Souza", "cleiton@gympoint.com", 25, 82.5, 1.78)

			gotRowsAffected, err := storage.RemoveStudent(tt.args.ctx, tt.args.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRowsAffected, gotRowsAffected)

			if tt.wantRowsAffected == 1 {
				verification := NewTestVerification(storage)
				verification.VerifyStudentDeleted(t, tt.args.id)
			}
		})
	}
}

func TestStorage_ListStudents(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateStudent(t, "Cleiton Souza", "cleiton@gympoint.com", 25, 82.5, 1.78)
	factory.CreateStudent(t, "Robson Braga", "robson@gympoint.com", 31, 90.0, 1.85)
	factory.CreateStudent(t, "Cleiomar Braga", "cleiomar@gympoint.com", 28, 75.0, 1.72)

	ctx := context.Background()

	// Фильтр по подстроке имени без учета регистра.
	total, err := storage.CountStudents(ctx, "clei")
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	got, err := storage.ListStudents(ctx, "clei", 20, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Cleiton Souza", got[0].Name)
	assert.Equal(t, "Cleiomar Braga", got[1].Name)

	// Пустой фильтр соответствует всем студентам.
	total, err = storage.CountStudents(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	// Пагинация: вторая страница по два элемента.
	got, err = storage.ListStudents(ctx, "", 2, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cleiomar Braga", got[0].Name)
}

func TestStorage_ReadRegistration(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	studentID := factory.CreateStudent(t, "Cleiton Souza", "cleiton@gympoint.com", 25, 82.5, 1.78)
	planID := factory.CreatePlan(t, "Gold", 3, 100.00)

	now := time.Now().UTC()
	regID := factory.CreateRegistration(t, studentID, planID,
		now.AddDate(0, -1, 0), now.AddDate(0, 2, 0), 300.00)

	got, err := storage.ReadRegistration(context.Background(), regID)
	require.NoError(t, err)
	assert.Equal(t, regID, got.ID)
	assert.True(t, got.Active)
	assert.Equal(t, 300.00, got.Price)
	assert.Equal(t, "Cleiton Souza", got.Student.Name)
	assert.Equal(t, "Gold", got.Plan.Title)
}

func TestStorage_FindActiveRegistration(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	studentID := factory.CreateStudent(t, "Cleiton Souza", "cleiton@gympoint.com", 25, 82.5, 1.78)
	planID := factory.CreatePlan(t, "Gold", 3, 100.00)

	now := time.Now().UTC()

	t.Run("нет абонементов", func(t *testing.T) {
		_, err := storage.FindActiveRegistration(context.Background(), studentID, now)
		require.Error(t, err)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})

	t.Run("истекший абонемент не находится", func(t *testing.T) {
		factory.CreateRegistration(t, studentID, planID,
			now.AddDate(0, -6, 0), now.AddDate(0, -3, 0), 300.00)

		_, err := storage.FindActiveRegistration(context.Background(), studentID, now)
		require.Error(t, err)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})

	t.Run("действующий абонемент находится", func(t *testing.T) {
		factory.CreateRegistration(t, studentID, planID,
			now.AddDate(0, -1, 0), now.AddDate(0, 2, 0), 300.00)

		got, err := storage.FindActiveRegistration(context.Background(), studentID, now)
		require.NoError(t, err)
		assert.Equal(t, studentID, got.StudentID)
		assert.True(t, got.Active)
	})
}

func TestStorage_CountCheckinsSince(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	studentID := factory.CreateStudent(t, "Cleiton Souza", "cleiton@gympoint.com", 25, 82.5, 1.78)

	now := time.Now().UTC().Truncate(time.Second)
	since := now.Add(-7 * 24 * time.Hour)

	// Чекин ровно на нижней границе окна входит в подсчет.
	factory.CreateCheckin(t, studentID, since)
	factory.CreateCheckin(t, studentID, now.Add(-time.Hour))
	factory.CreateCheckin(t, studentID, since.Add(-time.Second))

	count, err := storage.CountCheckinsSince(context.Background(), studentID, since)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStorage_CreateCheckin(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	studentID := factory.CreateStudent(t, "Cleiton Souza", "cleiton@gympoint.com", 25, 82.5, 1.78)

	at := time.Now().UTC().Truncate(time.Second)
	got, err := storage.CreateCheckin(context.Background(), studentID, at)
	require.NoError(t, err)
	assert.Equal(t, studentID, got.StudentID)
	assert.True(t, got.CreatedAt.Equal(at))

	list, err := storage.ListCheckins(context.Background(), studentID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, got.ID, list[0].ID)
}

func TestStorage_AnswerHelpOrder(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	studentID := factory.CreateStudent(t, "Cleiton Souza", "cleiton@gympoint.com", 25, 82.5, 1.78)
	helpOrderID := factory.CreateHelpOrder(t, studentID, "Qual a carga ideal?")

	ctx := context.Background()
	firstAnswerAt := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

	rows, err := storage.AnswerHelpOrder(ctx, helpOrderID, "Comece com 40kg", firstAnswerAt)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	verification := NewTestVerification(storage)
	verification.VerifyHelpOrderAnswered(t, helpOrderID, "Comece com 40kg")

	// Повторный ответ меняет текст, но не время первого ответа.
	rows, err = storage.AnswerHelpOrder(ctx, helpOrderID, "Comece com 45kg", firstAnswerAt.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	got, err := storage.ReadHelpOrder(ctx, helpOrderID)
	require.NoError(t, err)
	require.NotNil(t, got.Answer)
	assert.Equal(t, "Comece com 45kg", *got.Answer)
	require.NotNil(t, got.AnswerAt)
	assert.True(t, got.AnswerAt.Equal(firstAnswerAt))

	rows, err = storage.AnswerHelpOrder(ctx, 9999, "answer", firstAnswerAt)
	require.NoError(t, err)
	assert.Equal(t, 0, rows)
}

func TestStorage_ListUnansweredHelpOrders(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	studentID := factory.CreateStudent(t, "Cleiton Souza", "cleiton@gympoint.com", 25, 82.5, 1.78)

	first := factory.CreateHelpOrder(t, studentID, "Qual a carga ideal?")
	second := factory.CreateHelpOrder(t, studentID, "Posso treinar todo dia?")
	answered := factory.CreateHelpOrder(t, studentID, "Como funciona o plano Gold?")

	ctx := context.Background()
	_, err := storage.AnswerHelpOrder(ctx, answered, "Tres meses de acesso", time.Now().UTC())
	require.NoError(t, err)

	total, err := storage.CountUnansweredHelpOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	got, err := storage.ListUnansweredHelpOrders(ctx, 5, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0].ID)
	assert.Equal(t, second, got[1].ID)
	assert.Equal(t, "cleiton@gympoint.com", got[0].Student.Email)

	all, err := storage.ListHelpOrdersByStudent(ctx, studentID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStorage_SeedAdminUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	err := storage.SeedAdminUser(ctx, "Administrador", "admin@gympoint.com", "hash-one")
	require.NoError(t, err)

	// Повторный запуск не перезаписывает существующую запись.
	err = storage.SeedAdminUser(ctx, "Administrador", "admin@gympoint.com", "hash-two")
	require.NoError(t, err)

	got, err := storage.GetUserByEmail(ctx, "admin@gympoint.com")
	require.NoError(t, err)
	assert.Equal(t, "Administrador", got.Name)
	assert.Equal(t, "hash-one", got.PasswordHash)

	var count int
	err = storage.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
