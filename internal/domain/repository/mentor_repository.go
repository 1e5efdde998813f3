package repository

import (
	"context"

	"github.com/oksasatya/mentor-hub/internal/domain/entity"
)

// MentorProfileRepository defines persistence for mentor profiles.
// Create returns ErrDuplicate when the owner already has a profile.
type MentorProfileRepository interface {
	Create(ctx context.Context, m *entity.MentorProfile) error
	GetByID(ctx context.Context, id int64) (*entity.MentorProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.MentorProfile, error)
	List(ctx context.Context) ([]*entity.MentorProfile, error)
	Update(ctx context.Context, m *entity.MentorProfile) error
	Delete(ctx context.Context, id int64) error
}
