package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/mentor-hub/internal/domain/entity"
	repo "github.com/oksasatya/mentor-hub/internal/domain/repository"
	"github.com/oksasatya/mentor-hub/pkg/helpers"
	"github.com/oksasatya/mentor-hub/pkg/validation"
)

// WelcomeNotifier is told about every completed registration.
type WelcomeNotifier interface {
	SendWelcome(ctx context.Context, to, name string, isMentor bool) error
}

// ValidationError lists the offending fields by their JSON names.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrValidation, e.Fields)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

var validate = validation.New()

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return &ValidationError{Fields: validation.ToDetails(verrs)}
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

type registrationRules struct {
	FullName        string   `json:"full_name" validate:"required,max=255"`
	Email           string   `json:"email" validate:"required,email,max=255"`
	Password        string   `json:"password" validate:"required,pwd"`
	PhoneNumber     *string  `json:"phone_number" validate:"omitempty,phone"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,nonneg"`
	LanguagesSpoken *string  `json:"languages_spoken" validate:"omitempty,langs"`
	HourlyRate      *float64 `json:"hourly_rate" validate:"omitempty,nonneg"`
	LinkedInURL     *string  `json:"linkedin_url" validate:"omitempty,url"`
}

func validateRegistration(r entity.Registration) error {
	return validateStruct(registrationRules{
		FullName:        r.FullName,
		Email:           entity.NormalizeEmail(r.Email),
		Password:        r.Password,
		PhoneNumber:     r.PhoneNumber,
		ExperienceYears: r.ExperienceYears,
		LanguagesSpoken: r.LanguagesSpoken,
		HourlyRate:      r.HourlyRate,
		LinkedInURL:     r.LinkedInURL,
	})
}

// RegisterResult is the outcome of a registration. MentorProfileErr is set
// when the account was created but its mentor profile could not be.
type RegisterResult struct {
	User             *entity.User
	MentorProfile    *entity.MentorProfile
	MentorProfileErr error
}

type RegistrationService struct {
	UoW      repo.UnitOfWork
	Notifier WelcomeNotifier
	Logger   *logrus.Logger
}

func NewRegistrationService(uow repo.UnitOfWork, notifier WelcomeNotifier, logger *logrus.Logger) *RegistrationService {
	return &RegistrationService{UoW: uow, Notifier: notifier, Logger: logger}
}

// Register creates the account and, for mentors who filled in mentor fields,
// the linked mentor profile.
//
// The user row is written first and stays written even if the mentor insert
// fails afterwards; that failure is reported through RegisterResult instead of
// failing the whole registration.
func (s *RegistrationService) Register(ctx context.Context, in entity.Registration) (*RegisterResult, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	res := &RegisterResult{}
	err := s.UoW.Run(ctx, func(ctx context.Context, sess repo.Session) error {
		email := entity.NormalizeEmail(in.Email)
		if _, err := sess.Users().GetByEmail(ctx, email); err == nil {
			return ErrDuplicateEmail
		} else if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		hash, err := helpers.HashPassword(in.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user, mentorFields := entity.PartitionRegistration(in, hash)

		// the unique index decides races between concurrent sign-ups
		if err := sess.Users().Create(ctx, user); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return ErrDuplicateEmail
			}
			return err
		}
		res.User = user

		if !user.IsMentor || mentorFields.IsEmpty() {
			return nil
		}
		m := entity.NewMentorProfile(user.ID, mentorFields)
		if err := sess.Mentors().Create(ctx, m); err != nil {
			res.MentorProfileErr = err
			return nil
		}
		res.MentorProfile = m
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("register user: %w", err)
	}

	registrationsTotal.Add(1)
	if res.MentorProfileErr != nil {
		partialRegistrations.Add(1)
		if s.Logger != nil {
			s.Logger.WithError(res.MentorProfileErr).WithField("user_id", res.User.ID).
				Warn("user registered without mentor profile")
		}
	}
	s.notify(ctx, res.User)
	return res, nil
}

func (s *RegistrationService) notify(ctx context.Context, u *entity.User) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWelcome(ctx, u.Email, u.FullName, u.IsMentor); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("failed to enqueue welcome email")
	}
}
