package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/mentor-hub/internal/domain/entity"
	"github.com/oksasatya/mentor-hub/internal/domain/repository"
)

const mentorColumns = `id, user_id, skills, expertise, experience_years, languages_spoken, availability, hourly_rate, linkedin_url, is_active, created_at, updated_at`

type MentorProfileRepository struct {
	db DBTX
}

func NewMentorProfileRepository(db DBTX) *MentorProfileRepository {
	return &MentorProfileRepository{db: db}
}

func (r *MentorProfileRepository) Create(ctx context.Context, m *entity.MentorProfile) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO mentor_profiles (user_id, skills, expertise, experience_years, languages_spoken, availability, hourly_rate, linkedin_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, m.UserID, m.Skills, m.Expertise, m.ExperienceYears, m.LanguagesSpoken, m.Availability, m.HourlyRate, m.LinkedInURL, m.IsActive)

	if err := row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		switch {
		case isUniqueViolation(err):
			return repository.ErrDuplicate
		case isForeignKeyViolation(err):
			return repository.ErrNotFound
		}
		return fmt.Errorf("insert mentor profile: %w", err)
	}
	return nil
}

func (r *MentorProfileRepository) GetByID(ctx context.Context, id int64) (*entity.MentorProfile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+mentorColumns+` FROM mentor_profiles WHERE id = $1`, id)
	return scanMentor(row)
}

func (r *MentorProfileRepository) GetByUserID(ctx context.Context, userID int64) (*entity.MentorProfile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+mentorColumns+` FROM mentor_profiles WHERE user_id = $1`, userID)
	return scanMentor(row)
}

func (r *MentorProfileRepository) List(ctx context.Context) ([]*entity.MentorProfile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+mentorColumns+` FROM mentor_profiles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list mentor profiles: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.MentorProfile, 0)
	for rows.Next() {
		m, err := scanMentor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MentorProfileRepository) Update(ctx context.Context, m *entity.MentorProfile) error {
	row := r.db.QueryRow(ctx, `
		UPDATE mentor_profiles
		SET skills = $1, expertise = $2, experience_years = $3, languages_spoken = $4,
		    availability = $5, hourly_rate = $6, linkedin_url = $7, is_active = $8, updated_at = now()
		WHERE id = $9
		RETURNING updated_at
	`, m.Skills, m.Expertise, m.ExperienceYears, m.LanguagesSpoken, m.Availability, m.HourlyRate, m.LinkedInURL, m.IsActive, m.ID)

	if err := row.Scan(&m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("update mentor profile: %w", err)
	}
	return nil
}

func (r *MentorProfileRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM mentor_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mentor profile: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanMentor(row pgx.Row) (*entity.MentorProfile, error) {
	m := &entity.MentorProfile{}
	if err := row.Scan(&m.ID, &m.UserID, &m.Skills, &m.Expertise, &m.ExperienceYears, &m.LanguagesSpoken,
		&m.Availability, &m.HourlyRate, &m.LinkedInURL, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

var _ repository.MentorProfileRepository = (*MentorProfileRepository)(nil)
