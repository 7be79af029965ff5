package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"uatf-curricular/backend/internal/service"
	apperrors "uatf-curricular/backend/pkg/errors"
	"uatf-curricular/backend/pkg/response"
)

// statusOf HTTP status of each error kind
func statusOf(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindPermissionDenied:
		return http.StatusForbidden
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindUniqueness:
		return http.StatusConflict
	case apperrors.KindStorageFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the response for a service error. Classified errors
// carry their own code and message; anything else is a bare 500.
func handleError(c *gin.Context, err error) {
	_ = c.Error(err)

	// credential failures are 401 whatever their kind
	if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrInvalidRefresh) {
		e, _ := apperrors.As(err)
		response.Unauthorized(c, e.Code, e.Message)
		return
	}

	e, ok := apperrors.As(err)
	if !ok || e.Kind == apperrors.KindInternal {
		response.InternalError(c)
		return
	}
	response.Error(c, statusOf(e.Kind), e.Code, e.Message)
}

func badRequest(c *gin.Context, err error) {
	response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "invalid parameters", err.Error())
}
