package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/mentor-hub/internal/domain/entity"
	repo "github.com/oksasatya/mentor-hub/internal/domain/repository"
)

// CreateMentorInput is the payload of a standalone mentor profile creation.
type CreateMentorInput struct {
	UserID          int64    `json:"user_id" validate:"required,gt=0"`
	Skills          string   `json:"skills" validate:"required"`
	Expertise       string   `json:"expertise" validate:"required"`
	ExperienceYears int      `json:"experience_years" validate:"nonneg"`
	LanguagesSpoken string   `json:"languages_spoken" validate:"required,langs"`
	Availability    string   `json:"availability" validate:"required"`
	HourlyRate      *float64 `json:"hourly_rate" validate:"omitempty,nonneg"`
	LinkedInURL     *string  `json:"linkedin_url" validate:"omitempty,url"`
	IsActive        *bool    `json:"is_active"`
}

type mentorPatchRules struct {
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,nonneg"`
	LanguagesSpoken *string  `json:"languages_spoken" validate:"omitempty,langs"`
	HourlyRate      *float64 `json:"hourly_rate" validate:"omitempty,nonneg"`
	LinkedInURL     *string  `json:"linkedin_url" validate:"omitempty,url"`
}

type MentorService struct {
	UoW    repo.UnitOfWork
	Logger *logrus.Logger
}

func NewMentorService(uow repo.UnitOfWork, logger *logrus.Logger) *MentorService {
	return &MentorService{UoW: uow, Logger: logger}
}

// Create adds a mentor profile for an existing user and marks that user as a
// mentor, both in one transaction.
func (s *MentorService) Create(ctx context.Context, in CreateMentorInput) (*entity.MentorProfile, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	m := &entity.MentorProfile{
		UserID:          in.UserID,
		Skills:          in.Skills,
		Expertise:       in.Expertise,
		ExperienceYears: in.ExperienceYears,
		LanguagesSpoken: in.LanguagesSpoken,
		Availability:    in.Availability,
		HourlyRate:      in.HourlyRate,
		LinkedInURL:     in.LinkedInURL,
		IsActive:        active,
	}

	err := s.UoW.RunInTx(ctx, func(ctx context.Context, sess repo.Session) error {
		u, err := sess.Users().GetByID(ctx, in.UserID)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}
		if err := sess.Mentors().Create(ctx, m); err != nil {
			switch {
			case errors.Is(err, repo.ErrDuplicate):
				return ErrMentorProfileExists
			case errors.Is(err, repo.ErrNotFound):
				return ErrUserNotFound
			}
			return err
		}
		if !u.IsMentor {
			return sess.Users().SetMentor(ctx, u.ID, true)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrMentorProfileExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create mentor profile: %w", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"mentor_id": m.ID, "user_id": m.UserID}).Info("mentor profile created")
	}
	return m, nil
}

func (s *MentorService) Get(ctx context.Context, id int64) (*entity.MentorProfile, error) {
	var m *entity.MentorProfile
	err := s.UoW.Run(ctx, func(ctx context.Context, sess repo.Session) error {
		var err error
		m, err = sess.Mentors().GetByID(ctx, id)
		return err
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrMentorProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get mentor profile: %w", err)
	}
	return m, nil
}

func (s *MentorService) List(ctx context.Context) ([]*entity.MentorProfile, error) {
	var list []*entity.MentorProfile
	err := s.UoW.Run(ctx, func(ctx context.Context, sess repo.Session) error {
		var err error
		list, err = sess.Mentors().List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list mentor profiles: %w", err)
	}
	return list, nil
}

// Update merges the fields set in patch onto the stored profile.
func (s *MentorService) Update(ctx context.Context, id int64, patch entity.MentorPatch) (*entity.MentorProfile, error) {
	if err := validateStruct(mentorPatchRules{
		ExperienceYears: patch.ExperienceYears,
		LanguagesSpoken: patch.LanguagesSpoken,
		HourlyRate:      patch.HourlyRate,
		LinkedInURL:     patch.LinkedInURL,
	}); err != nil {
		return nil, err
	}

	var m *entity.MentorProfile
	err := s.UoW.RunInTx(ctx, func(ctx context.Context, sess repo.Session) error {
		var err error
		if m, err = sess.Mentors().GetByID(ctx, id); err != nil {
			return err
		}
		if patch.IsEmpty() {
			return nil
		}
		patch.Apply(m)
		return sess.Mentors().Update(ctx, m)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrMentorProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update mentor profile: %w", err)
	}
	return m, nil
}

// Delete removes the profile only; the owning user is left as is.
func (s *MentorService) Delete(ctx context.Context, id int64) error {
	err := s.UoW.Run(ctx, func(ctx context.Context, sess repo.Session) error {
		return sess.Mentors().Delete(ctx, id)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return ErrMentorProfileNotFound
	}
	if err != nil {
		return fmt.Errorf("delete mentor profile: %w", err)
	}
	return nil
}
