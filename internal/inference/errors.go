package inference

import (
	"errors"
	"net/http"
)

// ErrNotImplemented is returned by every inference operation that has no
// backing model yet.
var ErrNotImplemented = errors.New("not implemented")

// Operation identifiers used in errors, logs and metric labels.
const (
	OpTextEmbedding  = "text_embedding"
	OpImageEmbedding = "image_embedding"
	OpTranscription  = "transcription"
	OpVideoAnalysis  = "video_analysis"
)

// Outcome labels recorded per inference call.
const (
	OutcomeOK             = "ok"
	OutcomeNotImplemented = "not_implemented"
	OutcomeError          = "error"
)

const (
	ErrorCodeNotImplemented = "not_implemented"
	ErrorCodeValidation     = "validation_error"
	ErrorCodeInternal       = "internal_error"
)

var messages = map[string]string{
	OpTextEmbedding:  "Embedding generation not yet implemented",
	OpImageEmbedding: "Visual embedding not yet implemented",
	OpTranscription:  "Transcription not yet implemented",
	OpVideoAnalysis:  "VLM analysis not yet implemented",
}

// NotImplementedError reports which operation is missing a backend.
type NotImplementedError struct {
	Op string
}

// NotImplemented returns the error for op.
func NotImplemented(op string) error {
	return &NotImplementedError{Op: op}
}

func (e *NotImplementedError) Error() string {
	if msg, ok := messages[e.Op]; ok {
		return msg
	}
	return e.Op + " not yet implemented"
}

func (e *NotImplementedError) Unwrap() error {
	return ErrNotImplemented
}

// Outcome classifies err into one of the outcome labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrNotImplemented):
		return OutcomeNotImplemented
	default:
		return OutcomeError
	}
}

// HTTPStatus maps an inference error to a status code and error code.
func HTTPStatus(err error) (int, string) {
	if errors.Is(err, ErrNotImplemented) {
		return http.StatusNotImplemented, ErrorCodeNotImplemented
	}
	return http.StatusInternalServerError, ErrorCodeInternal
}
