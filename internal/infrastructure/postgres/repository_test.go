package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/mentor-hub/internal/domain/entity"
	"github.com/oksasatya/mentor-hub/internal/domain/repository"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

var userCols = []string{"id", "full_name", "email", "password_hash", "phone_number", "profile_picture_url", "bio", "location", "is_mentor", "created_at", "updated_at"}

var mentorCols = []string{"id", "user_id", "skills", "expertise", "experience_years", "languages_spoken", "availability", "hourly_rate", "linkedin_url", "is_active", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ada", "ada@x.com", "hash", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

	u := &entity.User{FullName: "Ada", Email: "ada@x.com", Password: "hash", IsMentor: true}
	require.NoError(t, NewUserRepository(mock).Create(context.Background(), u))
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, now, u.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(anyArgs(8)...).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"})

	err := NewUserRepository(mock).Create(context.Background(), &entity.User{Email: "a@x.com"})
	require.ErrorIs(t, err, repository.ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock := newMock(t)
	now := time.Now()
	bio := "hello"

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(int64(3), "A", "a@x.com", "hash", (*string)(nil), (*string)(nil), &bio, (*string)(nil), false, now, now))

	u, err := NewUserRepository(mock).GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, int64(3), u.ID)
	require.Equal(t, "hello", *u.Bio)
	require.Nil(t, u.PhoneNumber)
}

func TestUserRepository_GetByIDNotFound(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := NewUserRepository(mock).GetByID(context.Background(), 9)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_SetMentorNotFound(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(`UPDATE users SET is_mentor`).
		WithArgs(true, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := NewUserRepository(mock).SetMentor(context.Background(), 5, true)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMentorRepository_CreateMapsConstraintErrors(t *testing.T) {
	mock := newMock(t)
	repo := NewMentorProfileRepository(mock)

	mock.ExpectQuery(`INSERT INTO mentor_profiles`).
		WithArgs(anyArgs(9)...).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})
	err := repo.Create(context.Background(), &entity.MentorProfile{UserID: 1})
	require.ErrorIs(t, err, repository.ErrDuplicate)

	mock.ExpectQuery(`INSERT INTO mentor_profiles`).
		WithArgs(anyArgs(9)...).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolation})
	err = repo.Create(context.Background(), &entity.MentorProfile{UserID: 2})
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMentorRepository_List(t *testing.T) {
	mock := newMock(t)
	now := time.Now()
	rate := 40.0

	mock.ExpectQuery(`SELECT .+ FROM mentor_profiles ORDER BY id`).
		WillReturnRows(pgxmock.NewRows(mentorCols).
			AddRow(int64(1), int64(1), "go", "backend", 5, "en", "evenings", &rate, (*string)(nil), true, now, now).
			AddRow(int64(2), int64(4), "ml", "vision", 2, "en,de", "weekends", (*float64)(nil), (*string)(nil), false, now, now))

	list, err := NewMentorProfileRepository(mock).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, 40.0, *list[0].HourlyRate)
	require.Nil(t, list[1].HourlyRate)
	require.False(t, list[1].IsActive)
}

func TestMentorRepository_UpdateNotFound(t *testing.T) {
	mock := newMock(t)

	args := append(anyArgs(8), int64(77))
	mock.ExpectQuery(`UPDATE mentor_profiles`).
		WithArgs(args...).
		WillReturnError(pgx.ErrNoRows)

	err := NewMentorProfileRepository(mock).Update(context.Background(), &entity.MentorProfile{ID: 77})
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMentorRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewMentorProfileRepository(mock)

	mock.ExpectExec(`DELETE FROM mentor_profiles`).WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, repo.Delete(context.Background(), 1))

	mock.ExpectExec(`DELETE FROM mentor_profiles`).WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, repo.Delete(context.Background(), 2), repository.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE users SET is_mentor`).WithArgs(true, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := WithTx(context.Background(), mock, func(ctx context.Context, tx pgx.Tx) error {
		return NewUserRepository(tx).SetMentor(ctx, 1, true)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	mock := newMock(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := WithTx(context.Background(), mock, func(ctx context.Context, tx pgx.Tx) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	require.Panics(t, func() {
		_ = WithTx(context.Background(), mock, func(ctx context.Context, tx pgx.Tx) error {
			panic("kaboom")
		})
	})
	require.NoError(t, mock.ExpectationsWereMet())
}
