package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/mentor-hub/internal/application"
	"github.com/oksasatya/mentor-hub/internal/domain/entity"
	"github.com/oksasatya/mentor-hub/pkg/response"
)

type MentorHandler struct {
	Svc    *application.MentorService
	Logger *logrus.Logger
}

func NewMentorHandler(svc *application.MentorService, logger *logrus.Logger) *MentorHandler {
	return &MentorHandler{Svc: svc, Logger: logger}
}

type createMentorRequest struct {
	UserID          int64    `json:"user_id" binding:"required"`
	Skills          string   `json:"skills"`
	Expertise       string   `json:"expertise"`
	ExperienceYears int      `json:"experience_years"`
	LanguagesSpoken string   `json:"languages_spoken"`
	Availability    string   `json:"availability"`
	HourlyRate      *float64 `json:"hourly_rate"`
	LinkedInURL     *string  `json:"linkedin_url"`
	IsActive        *bool    `json:"is_active"`
}

// updateMentorRequest has no user_id: a profile never changes owner.
type updateMentorRequest struct {
	Skills          *string  `json:"skills"`
	Expertise       *string  `json:"expertise"`
	ExperienceYears *int     `json:"experience_years"`
	LanguagesSpoken *string  `json:"languages_spoken"`
	Availability    *string  `json:"availability"`
	HourlyRate      *float64 `json:"hourly_rate"`
	LinkedInURL     *string  `json:"linkedin_url"`
	IsActive        *bool    `json:"is_active"`
}

func (r updateMentorRequest) toPatch() entity.MentorPatch {
	return entity.MentorPatch{
		Skills:          r.Skills,
		Expertise:       r.Expertise,
		ExperienceYears: r.ExperienceYears,
		LanguagesSpoken: r.LanguagesSpoken,
		Availability:    r.Availability,
		HourlyRate:      r.HourlyRate,
		LinkedInURL:     r.LinkedInURL,
		IsActive:        r.IsActive,
	}
}

// Create POST /mentors/
func (h *MentorHandler) Create(c *gin.Context) {
	var req createMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	m, err := h.Svc.Create(c.Request.Context(), application.CreateMentorInput(req))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toMentorView(m), "mentor profile created", nil)
}

// List GET /mentors/
func (h *MentorHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toMentorViews(list), "mentor profiles", map[string]any{"count": len(list)})
}

// Get GET /mentors/:id
func (h *MentorHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toMentorView(m), "mentor profile", nil)
}

// Update PUT /mentors/:id
func (h *MentorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	m, err := h.Svc.Update(c.Request.Context(), id, req.toPatch())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toMentorView(m), "mentor profile updated", nil)
}

// Delete DELETE /mentors/:id
func (h *MentorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "mentor profile deleted", nil)
}
