package entity

import (
	"strings"
	"time"
)

// MentorProfile holds mentor-specific attributes. It is owned by exactly one
// User and references it through UserID.
type MentorProfile struct {
	ID              int64
	UserID          int64
	Skills          string
	Expertise       string
	ExperienceYears int
	LanguagesSpoken string // comma-separated
	Availability    string
	HourlyRate      *float64
	LinkedInURL     *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Languages splits LanguagesSpoken into trimmed, non-empty entries.
func (m *MentorProfile) Languages() []string {
	parts := strings.Split(m.LanguagesSpoken, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MentorPatch carries a partial update. Nil fields are left untouched.
type MentorPatch struct {
	Skills          *string
	Expertise       *string
	ExperienceYears *int
	LanguagesSpoken *string
	Availability    *string
	HourlyRate      *float64
	LinkedInURL     *string
	IsActive        *bool
}

// IsEmpty reports whether the patch sets no field at all.
func (p MentorPatch) IsEmpty() bool {
	return p.Skills == nil && p.Expertise == nil && p.ExperienceYears == nil &&
		p.LanguagesSpoken == nil && p.Availability == nil && p.HourlyRate == nil &&
		p.LinkedInURL == nil && p.IsActive == nil
}

// Apply merges the set fields of p onto m.
func (p MentorPatch) Apply(m *MentorProfile) {
	if p.Skills != nil {
		m.Skills = *p.Skills
	}
	if p.Expertise != nil {
		m.Expertise = *p.Expertise
	}
	if p.ExperienceYears != nil {
		m.ExperienceYears = *p.ExperienceYears
	}
	if p.LanguagesSpoken != nil {
		m.LanguagesSpoken = *p.LanguagesSpoken
	}
	if p.Availability != nil {
		m.Availability = *p.Availability
	}
	if p.HourlyRate != nil {
		rate := *p.HourlyRate
		m.HourlyRate = &rate
	}
	if p.LinkedInURL != nil {
		url := *p.LinkedInURL
		m.LinkedInURL = &url
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
}
