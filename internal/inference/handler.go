package inference

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kuro-ml/internal/shared/server/respond"
)

// OperationKey is the gin context key the request logger reads.
const OperationKey = "inferenceOp"

// Recorder observes completed inference calls.
type Recorder interface {
	ObserveInference(op, outcome string, elapsed time.Duration)
}

// Observe reports the outcome of op, started at start, to r. A nil r is a no-op.
func Observe(r Recorder, op string, start time.Time, err error) {
	if r == nil {
		return
	}
	r.ObserveInference(op, Outcome(err), time.Since(start))
}

// Fail writes the error envelope for a failed inference call.
func Fail(c *gin.Context, op string, err error) {
	c.Set(OperationKey, op)
	status, code := HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "inference failed"
	}
	respond.Error(c, status, code, message, gin.H{"operation": op})
}

// BadRequest writes a validation error for a malformed inference request.
func BadRequest(c *gin.Context, op string, message string) {
	c.Set(OperationKey, op)
	respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, message, gin.H{"operation": op})
}
