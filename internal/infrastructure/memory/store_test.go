package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/mentor-hub/internal/domain/entity"
	"github.com/oksasatya/mentor-hub/internal/domain/repository"
)

func TestStore_UniqueEmail(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.Run(ctx, func(ctx context.Context, sess repository.Session) error {
		require.NoError(t, sess.Users().Create(ctx, &entity.User{Email: "a@x.com"}))
		return sess.Users().Create(ctx, &entity.User{Email: "a@x.com"})
	})
	require.ErrorIs(t, err, repository.ErrDuplicate)

	_ = s.Run(ctx, func(ctx context.Context, sess repository.Session) error {
		users, _ := sess.Users().List(ctx)
		require.Len(t, users, 1)
		require.Equal(t, int64(1), users[0].ID)
		return nil
	})
}

func TestStore_MentorConstraints(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_ = s.Run(ctx, func(ctx context.Context, sess repository.Session) error {
		err := sess.Mentors().Create(ctx, &entity.MentorProfile{UserID: 42})
		require.ErrorIs(t, err, repository.ErrNotFound)

		u := &entity.User{Email: "m@x.com"}
		require.NoError(t, sess.Users().Create(ctx, u))
		require.NoError(t, sess.Mentors().Create(ctx, &entity.MentorProfile{UserID: u.ID}))
		require.ErrorIs(t, sess.Mentors().Create(ctx, &entity.MentorProfile{UserID: u.ID}), repository.ErrDuplicate)
		return nil
	})
}

func TestStore_RunInTxRollsBack(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.RunInTx(ctx, func(ctx context.Context, sess repository.Session) error {
		require.NoError(t, sess.Users().Create(ctx, &entity.User{Email: "t@x.com"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_ = s.Run(ctx, func(ctx context.Context, sess repository.Session) error {
		_, err := sess.Users().GetByEmail(ctx, "t@x.com")
		require.ErrorIs(t, err, repository.ErrNotFound)
		return nil
	})
}

func TestStore_FailNextMentorCreate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	boom := errors.New("disk full")
	s.FailNextMentorCreate(boom)

	_ = s.Run(ctx, func(ctx context.Context, sess repository.Session) error {
		u := &entity.User{Email: "f@x.com"}
		require.NoError(t, sess.Users().Create(ctx, u))
		require.ErrorIs(t, sess.Mentors().Create(ctx, &entity.MentorProfile{UserID: u.ID}), boom)
		require.NoError(t, sess.Mentors().Create(ctx, &entity.MentorProfile{UserID: u.ID}))
		return nil
	})
}
