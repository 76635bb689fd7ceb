package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contracts-data-backend/internal/platform/apierr"
	"github.com/yungbote/contracts-data-backend/internal/platform/ctxutil"
)

type APIError struct {
	Message   string `json:"message"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message:   msg,
			Code:      code,
			RequestID: ctxutil.RequestID(c.Request.Context()),
		},
	})
}

// RespondAPIError hides the message of server faults behind a generic one.
func RespondAPIError(c *gin.Context, err *apierr.Error) {
	if err.Status >= http.StatusInternalServerError {
		RespondError(c, err.Status, err.Code, errInternal)
		return
	}
	RespondError(c, err.Status, err.Code, err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

var errInternal = errors.New("internal server error")
