package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/mentor-hub/internal/application"
	"github.com/oksasatya/mentor-hub/pkg/helpers"
	"github.com/oksasatya/mentor-hub/pkg/response"
	"github.com/oksasatya/mentor-hub/pkg/validation"
)

// apiError is the "error" member of a failed envelope.
type apiError struct {
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// writeError maps an application error onto one status and error code.
// Anything unrecognised is logged and reported as 500.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error[any](c, http.StatusBadRequest, "validation failed", apiError{Code: "validation_error", Details: verr.Fields})
	case errors.Is(err, application.ErrValidation):
		response.Error[any](c, http.StatusBadRequest, "validation failed", apiError{Code: "validation_error"})
	case errors.Is(err, application.ErrDuplicateEmail):
		response.Error[any](c, http.StatusConflict, "email already registered", apiError{Code: "duplicate_email"})
	case errors.Is(err, application.ErrMentorProfileExists):
		response.Error[any](c, http.StatusConflict, "user already has a mentor profile", apiError{Code: "mentor_profile_exists"})
	case errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "user not found", apiError{Code: "not_found"})
	case errors.Is(err, application.ErrMentorProfileNotFound):
		response.Error[any](c, http.StatusNotFound, "mentor profile not found", apiError{Code: "not_found"})
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", apiError{Code: "unauthorized"})
	default:
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		})
		response.Error[any](c, http.StatusInternalServerError, "internal server error", apiError{Code: "internal"})
	}
}

// writeBindError reports a body that could not be decoded or bound.
func writeBindError(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", apiError{Code: "validation_error", Details: validation.ToDetails(err)})
}

// pathID parses the :id route parameter, writing a 400 when it is not a positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid id", apiError{Code: "validation_error", Details: map[string]string{"id": "must be a positive integer"}})
		return 0, false
	}
	return id, true
}
