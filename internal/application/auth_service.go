package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/mentor-hub/internal/domain/entity"
	repo "github.com/oksasatya/mentor-hub/internal/domain/repository"
	"github.com/oksasatya/mentor-hub/pkg/helpers"
)

const TokenTypeBearer = "bearer"

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	AccessToken   string
	TokenType     string
	ExpiresAt     time.Time
	User          *entity.User
	MentorProfile *entity.MentorProfile
}

type AuthService struct {
	UoW    repo.UnitOfWork
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(uow repo.UnitOfWork, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{UoW: uow, JWT: jwt, Logger: logger}
}

// Login checks the credentials and issues an access token. An unknown email
// and a wrong password are reported as different errors.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	in.Email = entity.NormalizeEmail(in.Email)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	var (
		u *entity.User
		m *entity.MentorProfile
	)
	err := s.UoW.Run(ctx, func(ctx context.Context, sess repo.Session) error {
		var err error
		u, err = sess.Users().GetByEmail(ctx, in.Email)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		ok, err := helpers.VerifyPassword(u.Password, in.Password)
		if err != nil {
			return fmt.Errorf("verify password: %w", err)
		}
		if !ok {
			return ErrInvalidCredentials
		}

		m, err = mentorFor(ctx, sess, u)
		return err
	})
	if err != nil {
		loginsFailed.Add(1)
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrInvalidCredentials) {
			if s.Logger != nil {
				s.Logger.WithField("email", in.Email).WithError(err).Info("login rejected")
			}
			return nil, err
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	token, exp, err := s.JWT.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		loginsFailed.Add(1)
		return nil, fmt.Errorf("issue token: %w", err)
	}
	loginsOK.Add(1)

	return &LoginResult{
		AccessToken:   token,
		TokenType:     TokenTypeBearer,
		ExpiresAt:     exp,
		User:          u,
		MentorProfile: m,
	}, nil
}
