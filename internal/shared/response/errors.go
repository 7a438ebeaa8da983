package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookly-backend/internal/shared"
)

// ErrorSpec describes how a domain error is rendered.
type ErrorSpec struct {
	Status  int
	Code    string
	Message string
}

// HandleError renders err using the first spec whose key matches via errors.Is.
// Validation errors become 400; anything unknown becomes a generic 500 and is logged.
func HandleError(c *gin.Context, err error, specs map[error]ErrorSpec) {
	var ve *shared.ValidationError
	if errors.As(err, &ve) {
		ValidationFailed(c, ve)
		return
	}

	for target, spec := range specs {
		if errors.Is(err, target) {
			ErrorResponse(c, spec.Status, spec.Code, spec.Message)
			return
		}
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.FullPath()).
		Msg("Unhandled error")
	InternalServerError(c)
}
