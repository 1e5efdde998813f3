package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/mentor-hub/internal/application"
	"github.com/oksasatya/mentor-hub/internal/domain/entity"
	"github.com/oksasatya/mentor-hub/internal/interface/middleware"
	"github.com/oksasatya/mentor-hub/pkg/response"
)

type UserHandler struct {
	Registration *application.RegistrationService
	Users        *application.UserService
	Logger       *logrus.Logger
}

func NewUserHandler(reg *application.RegistrationService, users *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Registration: reg, Users: users, Logger: logger}
}

type registerRequest struct {
	FullName          string  `json:"full_name" binding:"required"`
	Email             string  `json:"email" binding:"required"`
	Password          string  `json:"password" binding:"required"`
	PhoneNumber       *string `json:"phone_number"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	Bio               *string `json:"bio"`
	Location          *string `json:"location"`
	IsMentor          bool    `json:"is_mentor"`

	Skills          *string  `json:"skills"`
	Expertise       *string  `json:"expertise"`
	ExperienceYears *int     `json:"experience_years"`
	LanguagesSpoken *string  `json:"languages_spoken"`
	Availability    *string  `json:"availability"`
	HourlyRate      *float64 `json:"hourly_rate"`
	LinkedInURL     *string  `json:"linkedin_url"`
}

func (r registerRequest) toRegistration() entity.Registration {
	return entity.Registration{
		FullName:          r.FullName,
		Email:             r.Email,
		Password:          r.Password,
		PhoneNumber:       r.PhoneNumber,
		ProfilePictureURL: r.ProfilePictureURL,
		Bio:               r.Bio,
		Location:          r.Location,
		IsMentor:          r.IsMentor,
		Skills:            r.Skills,
		Expertise:         r.Expertise,
		ExperienceYears:   r.ExperienceYears,
		LanguagesSpoken:   r.LanguagesSpoken,
		Availability:      r.Availability,
		HourlyRate:        r.HourlyRate,
		LinkedInURL:       r.LinkedInURL,
	}
}

// Register POST /register/
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := h.Registration.Register(c.Request.Context(), req.toRegistration())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}

	var meta map[string]any
	if res.User.IsMentor {
		meta = map[string]any{"mentor_profile_created": res.MentorProfile != nil}
		if res.MentorProfile != nil {
			meta["mentor_profile_id"] = res.MentorProfile.ID
		}
		if res.MentorProfileErr != nil {
			meta["warning"] = "account created but the mentor profile could not be saved"
		}
	}
	response.Success(c, http.StatusOK, toUserView(res.User), "user registered", meta)
}

// List GET /users/
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserViews(users), "users", map[string]any{"count": len(users)})
}

// Get GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.Users.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserView(u), "user", nil)
}

// Me GET /me (auth required)
func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	u, m, err := h.Users.Me(c.Request.Context(), uid)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, meView{User: toUserView(u), MentorProfile: toMentorView(m)}, "profile", nil)
}
