package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/oksasatya/mentor-hub/internal/domain/entity"
	repo "github.com/oksasatya/mentor-hub/internal/domain/repository"
)

// UserService serves read-only user lookups.
type UserService struct {
	UoW repo.UnitOfWork
}

func NewUserService(uow repo.UnitOfWork) *UserService {
	return &UserService{UoW: uow}
}

func (s *UserService) List(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	err := s.UoW.Run(ctx, func(ctx context.Context, sess repo.Session) error {
		var err error
		users, err = sess.Users().List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	var u *entity.User
	err := s.UoW.Run(ctx, func(ctx context.Context, sess repo.Session) error {
		var err error
		u, err = sess.Users().GetByID(ctx, id)
		return err
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Me returns the user together with their mentor profile, if any.
func (s *UserService) Me(ctx context.Context, id int64) (*entity.User, *entity.MentorProfile, error) {
	var (
		u *entity.User
		m *entity.MentorProfile
	)
	err := s.UoW.Run(ctx, func(ctx context.Context, sess repo.Session) error {
		var err error
		if u, err = sess.Users().GetByID(ctx, id); err != nil {
			return err
		}
		m, err = mentorFor(ctx, sess, u)
		return err
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil, ErrUserNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load current user: %w", err)
	}
	return u, m, nil
}

// mentorFor loads the profile of a mentor user; a missing profile is not an error.
func mentorFor(ctx context.Context, sess repo.Session, u *entity.User) (*entity.MentorProfile, error) {
	if !u.IsMentor {
		return nil, nil
	}
	m, err := sess.Mentors().GetByUserID(ctx, u.ID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	return m, err
}
