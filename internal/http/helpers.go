package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/learningmate/examstore/internal/messages"
	"github.com/learningmate/examstore/internal/result"
)

// --- Response Types ---

// ProblemResponse is the standard error response format for all API errors.
type ProblemResponse struct {
	Errors []result.Problem `json:"errors"`
}

// --- Error Response Helpers ---

// statusFor maps the leading problem onto an HTTP status.
func statusFor(problems []result.Problem) int {
	if len(problems) == 0 {
		return http.StatusInternalServerError
	}
	switch problems[0].Kind {
	case result.KindNotFound:
		return http.StatusNotFound
	case result.KindValidation:
		return http.StatusBadRequest
	case result.KindWriteIneffective:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondProblems sends the problems of a failed result.
func respondProblems(c *gin.Context, problems []result.Problem) {
	c.JSON(statusFor(problems), ProblemResponse{Errors: problems})
}

// respondBadRequest sends a 400 with a single validation problem.
func respondBadRequest(c *gin.Context, title string) {
	respondProblems(c, []result.Problem{result.Validation(title)})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, log zerolog.Logger, err error, process string) {
	log.Error().Err(err).Str(messages.FieldAction, process).Msg("internal error")
	respondProblems(c, []result.Problem{result.Unexpected(messages.UnexpectedErrorDuring(process))})
}

// respond renders res: the value with status on success, its problems otherwise.
// A non-nil err wins over res.
func respond[T any](c *gin.Context, log zerolog.Logger, status int, res result.Result[T], err error, process string) {
	if err != nil {
		respondInternalError(c, log, err, process)
		return
	}
	res.Match(
		func(v T) { c.JSON(status, v) },
		func(problems []result.Problem) { respondProblems(c, problems) },
	)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates a UUID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns uuid.Nil, false.
func parseIDParam(c *gin.Context, paramName string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		respondBadRequest(c, messages.InvalidIDFormat)
		return uuid.Nil, false
	}
	return id, true
}
