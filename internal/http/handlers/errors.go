package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contracts-data-backend/internal/domain/contracts"
	"github.com/yungbote/contracts-data-backend/internal/http/response"
	pkgerrors "github.com/yungbote/contracts-data-backend/internal/pkg/errors"
	"github.com/yungbote/contracts-data-backend/internal/platform/apierr"
)

var serviceErrorMappings = []apierr.Mapping{
	{Target: contracts.ErrInvalidStatusTransition, Status: http.StatusConflict, Code: apierr.CodeInvalidTransition},
	{Target: pkgerrors.ErrNotFound, Status: http.StatusNotFound, Code: apierr.CodeNotFound},
	{Target: pkgerrors.ErrInvalidArgument, Status: http.StatusBadRequest, Code: apierr.CodeInvalidRequest},
	{Target: pkgerrors.ErrPreconditionFailed, Status: http.StatusPreconditionFailed, Code: apierr.CodeExpectationFailed},
	{Target: pkgerrors.ErrConflict, Status: http.StatusConflict, Code: apierr.CodeConflict},
}

func respondServiceError(c *gin.Context, err error) {
	apiErr := apierr.Classify(err, serviceErrorMappings...)
	_ = c.Error(err)
	response.RespondAPIError(c, apiErr)
}

func respondBadRequest(c *gin.Context, err error) {
	response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, err)
}
