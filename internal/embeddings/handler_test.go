package embeddings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmbedder struct {
	vec []float32
	err error
}

func (s stubEmbedder) GenerateEmbedding(context.Context, string) ([]float32, error) {
	return s.vec, s.err
}

func (s stubEmbedder) GenerateVisualEmbedding(context.Context, string) ([]float32, error) {
	return s.vec, s.err
}

func serve(t *testing.T, svc Embedder, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc, nil).RegisterRoutes(r.Group("/v1"))

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestEmbedTextNotImplemented(t *testing.T) {
	for _, body := range []string{`{"text":"hello world"}`, `{"text":""}`} {
		resp := serve(t, NewService(""), "/v1/embeddings/text", body)
		require.Equal(t, http.StatusNotImplemented, resp.Code, body)
		assert.JSONEq(t, `{"error":{"code":"not_implemented","message":"Embedding generation not yet implemented","details":{"operation":"text_embedding"}}}`, resp.Body.String())
	}
}

func TestEmbedImageNotImplemented(t *testing.T) {
	resp := serve(t, NewService(""), "/v1/embeddings/image", `{"imagePath":"/does/not/exist.png"}`)
	require.Equal(t, http.StatusNotImplemented, resp.Code)
	assert.Contains(t, resp.Body.String(), "Visual embedding not yet implemented")
}

func TestEmbedValidation(t *testing.T) {
	cases := []struct{ path, body string }{
		{"/v1/embeddings/text", `{}`},
		{"/v1/embeddings/text", `not json`},
		{"/v1/embeddings/image", `{"imagePath":""}`},
	}
	for _, tc := range cases {
		resp := serve(t, NewService(""), tc.path, tc.body)
		assert.Equal(t, http.StatusBadRequest, resp.Code, tc.body)
	}
}

func TestEmbedSuccessAndInternalError(t *testing.T) {
	resp := serve(t, stubEmbedder{vec: []float32{0.5, 1}}, "/v1/embeddings/text", `{"text":"a"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"embedding":[0.5,1],"dimensions":2}`, resp.Body.String())

	resp = serve(t, stubEmbedder{err: errors.New("gpu on fire")}, "/v1/embeddings/image", `{"imagePath":"a.png"}`)
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), `"internal_error"`)
	assert.NotContains(t, resp.Body.String(), "gpu on fire")
}
