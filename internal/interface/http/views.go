package handlers

import (
	"time"

	"github.com/oksasatya/mentor-hub/internal/domain/entity"
)

// userView is the public shape of a user. It never carries the password hash.
type userView struct {
	ID                int64     `json:"id"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	PhoneNumber       *string   `json:"phone_number"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	Bio               *string   `json:"bio"`
	Location          *string   `json:"location"`
	IsMentor          bool      `json:"is_mentor"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toUserView(u *entity.User) userView {
	return userView{
		ID:                u.ID,
		FullName:          u.FullName,
		Email:             u.Email,
		PhoneNumber:       u.PhoneNumber,
		ProfilePictureURL: u.ProfilePictureURL,
		Bio:               u.Bio,
		Location:          u.Location,
		IsMentor:          u.IsMentor,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func toUserViews(list []*entity.User) []userView {
	out := make([]userView, 0, len(list))
	for _, u := range list {
		out = append(out, toUserView(u))
	}
	return out
}

// loginUserView is the reduced user summary returned with a token.
type loginUserView struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	IsMentor bool   `json:"is_mentor"`
}

type mentorView struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Skills          string    `json:"skills"`
	Expertise       string    `json:"expertise"`
	ExperienceYears int       `json:"experience_years"`
	LanguagesSpoken string    `json:"languages_spoken"`
	Languages       []string  `json:"languages"`
	Availability    string    `json:"availability"`
	HourlyRate      *float64  `json:"hourly_rate"`
	LinkedInURL     *string   `json:"linkedin_url"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toMentorView(m *entity.MentorProfile) *mentorView {
	if m == nil {
		return nil
	}
	return &mentorView{
		ID:              m.ID,
		UserID:          m.UserID,
		Skills:          m.Skills,
		Expertise:       m.Expertise,
		ExperienceYears: m.ExperienceYears,
		LanguagesSpoken: m.LanguagesSpoken,
		Languages:       m.Languages(),
		Availability:    m.Availability,
		HourlyRate:      m.HourlyRate,
		LinkedInURL:     m.LinkedInURL,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toMentorViews(list []*entity.MentorProfile) []*mentorView {
	out := make([]*mentorView, 0, len(list))
	for _, m := range list {
		out = append(out, toMentorView(m))
	}
	return out
}

type loginView struct {
	AccessToken   string        `json:"access_token"`
	TokenType     string        `json:"token_type"`
	ExpiresAt     time.Time     `json:"expires_at"`
	User          loginUserView `json:"user"`
	MentorProfile *mentorView   `json:"mentor_profile"`
}

type meView struct {
	User          userView    `json:"user"`
	MentorProfile *mentorView `json:"mentor_profile"`
}
