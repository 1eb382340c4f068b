package inference

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotImplementedMessages(t *testing.T) {
	cases := map[string]string{
		OpTextEmbedding:  "Embedding generation not yet implemented",
		OpImageEmbedding: "Visual embedding not yet implemented",
		OpTranscription:  "Transcription not yet implemented",
		OpVideoAnalysis:  "VLM analysis not yet implemented",
		"reranking":      "reranking not yet implemented",
	}
	for op, want := range cases {
		t.Run(op, func(t *testing.T) {
			err := NotImplemented(op)
			assert.EqualError(t, err, want)
			assert.ErrorIs(t, err, ErrNotImplemented)

			var nie *NotImplementedError
			require.True(t, errors.As(err, &nie))
			assert.Equal(t, op, nie.Op)
		})
	}
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeOK, Outcome(nil))
	assert.Equal(t, OutcomeNotImplemented, Outcome(NotImplemented(OpTranscription)))
	assert.Equal(t, OutcomeNotImplemented, Outcome(fmt.Errorf("wrapped: %w", NotImplemented(OpVideoAnalysis))))
	assert.Equal(t, OutcomeError, Outcome(errors.New("boom")))
}

func TestHTTPStatus(t *testing.T) {
	status, code := HTTPStatus(NotImplemented(OpTextEmbedding))
	assert.Equal(t, http.StatusNotImplemented, status)
	assert.Equal(t, ErrorCodeNotImplemented, code)

	status, code = HTTPStatus(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, ErrorCodeInternal, code)
}
