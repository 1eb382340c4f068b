package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequestCountsByLabel(t *testing.T) {
	m := New()

	m.ObserveRequest("/health", http.MethodGet, 200, 3*time.Millisecond)
	m.ObserveRequest("/health", http.MethodGet, 200, 4*time.Millisecond)
	m.ObserveRequest("/v1/embeddings/text", http.MethodPost, 501, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/health", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/v1/embeddings/text", "POST", "501")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpDuration))
}

func TestObserveInference(t *testing.T) {
	m := New()

	m.ObserveInference("text_embedding", "not_implemented", time.Millisecond)
	m.ObserveInference("video_analysis", "not_implemented", time.Millisecond)
	m.ObserveInference("video_analysis", "not_implemented", time.Millisecond)

	expected := `
# HELP kuro_ml_inference_calls_total Inference calls by operation and outcome.
# TYPE kuro_ml_inference_calls_total counter
kuro_ml_inference_calls_total{op="text_embedding",outcome="not_implemented"} 1
kuro_ml_inference_calls_total{op="video_analysis",outcome="not_implemented"} 2
`
	require.NoError(t, testutil.CollectAndCompare(m.inferenceCalls, strings.NewReader(expected)))
}

func TestHandlerServesRegistry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	m.ObserveInference("transcription", "not_implemented", time.Millisecond)

	r := gin.New()
	r.GET("/metrics", m.Handler())

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, `kuro_ml_build_info{version="0.1.0"} 1`)
	assert.Contains(t, body, `kuro_ml_inference_calls_total{op="transcription",outcome="not_implemented"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.ObserveInference("text_embedding", "ok", time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(a.inferenceCalls))
	assert.Equal(t, 0, testutil.CollectAndCount(b.inferenceCalls))
	assert.NotSame(t, a.Registry(), b.Registry())
}
