package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gstbill/gst_billing_app/internal/apperrors"
	"github.com/gstbill/gst_billing_app/internal/dto"
	"github.com/gstbill/gst_billing_app/internal/middleware"
)

// respondOK writes a success envelope with 200.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.OK(data))
}

// respondCreated writes a success envelope with 201.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.OK(data))
}

// respondMessage writes a success envelope with a message and 200.
func respondMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.OKMessage(message, data))
}

// respondBindError writes the 400 for a failed request binding.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
}

// respondError translates an application error into its HTTP status and a
// failure envelope. Unclassified errors become opaque 500s; their detail
// stays in the logs.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidReference):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrStateConflict):
		status = http.StatusConflict
		message = err.Error()
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled error", "error", err.Error())
	}

	c.JSON(status, dto.Fail(message))
}

// requireUserID pulls the authenticated user from the context, writing the
// 401 itself when absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Authentication required"))
	}
	return userID, ok
}
