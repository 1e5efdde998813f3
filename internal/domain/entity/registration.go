package entity

// Registration is the combined sign-up input: account fields plus the
// optional mentor fields a mentor may fill in on the same form.
type Registration struct {
	FullName          string
	Email             string
	Password          string
	PhoneNumber       *string
	ProfilePictureURL *string
	Bio               *string
	Location          *string
	IsMentor          bool

	Skills          *string
	Expertise       *string
	ExperienceYears *int
	LanguagesSpoken *string
	Availability    *string
	HourlyRate      *float64
	LinkedInURL     *string
}

// PartitionRegistration splits r into the User record and the mentor fields
// that were supplied. passwordHash replaces the plaintext password.
// The returned patch is empty when no mentor field was given.
func PartitionRegistration(r Registration, passwordHash string) (*User, MentorPatch) {
	u := &User{
		FullName:          r.FullName,
		Email:             NormalizeEmail(r.Email),
		Password:          passwordHash,
		PhoneNumber:       r.PhoneNumber,
		ProfilePictureURL: r.ProfilePictureURL,
		Bio:               r.Bio,
		Location:          r.Location,
		IsMentor:          r.IsMentor,
	}
	patch := MentorPatch{
		Skills:          r.Skills,
		Expertise:       r.Expertise,
		ExperienceYears: r.ExperienceYears,
		LanguagesSpoken: r.LanguagesSpoken,
		Availability:    r.Availability,
		HourlyRate:      r.HourlyRate,
		LinkedInURL:     r.LinkedInURL,
	}
	return u, patch
}

// NewMentorProfile builds an active profile for userID from the set fields of p.
func NewMentorProfile(userID int64, p MentorPatch) *MentorProfile {
	m := &MentorProfile{UserID: userID, IsActive: true}
	p.Apply(m)
	return m
}
