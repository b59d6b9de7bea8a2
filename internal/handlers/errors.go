package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

const (
	msgInternal      = "Something went wrong. Please try again later."
	msgInvalidID     = "Invalid id."
	msgLoginRequired = "Please log in to continue."
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondOK sends {success:true, message}
func respondOK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, models.StatusResponse{Success: true, Message: message})
}

// respondSoftFail reports a logical failure as 200 with success:false
func respondSoftFail(c *gin.Context, message string, err error) {
	attachError(c, err)
	c.JSON(http.StatusOK, models.StatusResponse{Success: false, Message: message})
}

// respondServiceError maps a service error onto the response. Store and mail
// failures are 500 with a generic message; everything else is a soft-fail
// carrying the error's client message.
func respondServiceError(c *gin.Context, err error) {
	if apperrors.Is(err, apperrors.ErrStore) || apperrors.Is(err, apperrors.ErrMail) {
		attachError(c, err)
		c.JSON(http.StatusInternalServerError, models.StatusResponse{Success: false, Message: msgInternal})
		return
	}

	if msg, ok := apperrors.PublicMessage(err); ok {
		respondSoftFail(c, msg, err)
		return
	}

	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		respondSoftFail(c, "Invalid request.", err)
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		respondSoftFail(c, "Authentication failed.", err)
	case apperrors.Is(err, apperrors.ErrAccessDenied):
		respondSoftFail(c, "You are not allowed to do that.", err)
	case apperrors.Is(err, apperrors.ErrNotFound):
		respondSoftFail(c, "Not found.", err)
	case apperrors.Is(err, apperrors.ErrConflict):
		respondSoftFail(c, "This action conflicts with the current state.", err)
	default:
		attachError(c, err)
		c.JSON(http.StatusInternalServerError, models.StatusResponse{Success: false, Message: msgInternal})
	}
}

// respondBindError reports a request body that failed to bind or validate
func respondBindError(c *gin.Context, err error) {
	respondSoftFail(c, BindErrorMessage(err), err)
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondSoftFail(c, msgInvalidID, err)
		return 0, false
	}
	return id, true
}

// currentUser returns the identity resolved by SessionMiddleware
func currentUser(c *gin.Context) (models.SessionUser, bool) {
	session, err := middleware.GetSession(c)
	if err != nil {
		attachError(c, err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.StatusResponse{Success: false, Message: msgLoginRequired})
		return models.SessionUser{}, false
	}
	return session.User, true
}
