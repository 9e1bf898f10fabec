package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"openmusic-backend/internal/shared/errs"
)

// Error maps a service error to an HTTP response by its kind. Unknown
// errors are logged and masked as a generic 500.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, errs.ErrAuthorizationDenied):
		Forbidden(c, err.Error())
	case errors.Is(err, errs.ErrInvariantViolation):
		BadRequest(c, err.Error())
	default:
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("unhandled service error")
		InternalServerError(c, "internal server error")
	}
}
