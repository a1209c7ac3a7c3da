package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashviz/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// doGet runs one request against a fresh engine and returns the recorder.
func doGet(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	router := server.New(server.Config{Port: server.DefaultPort}, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	return w
}

// TestGetPuzzle_Defaults: no parameters means easy linear probing.
func TestGetPuzzle_Defaults(t *testing.T) {
	w := doGet(t, "/api/puzzle")
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "linear_probing", doc["technique"])
	assert.Equal(t, float64(7), doc["table_size"])
	assert.Contains(t, doc, "solution")
	assert.Contains(t, doc, "steps")
	assert.Contains(t, doc, "formula_label")
}

// TestGetPuzzle_UnknownTechniqueFallsBack mirrors the engine contract:
// a bogus technique is served as linear probing, not rejected.
func TestGetPuzzle_UnknownTechniqueFallsBack(t *testing.T) {
	w := doGet(t, "/api/puzzle?technique=cuckoo_hashing")
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "linear_probing", doc["technique"])
}

// TestGetPuzzle_BadDifficulty: the one hard failure surfaces as a 400
// with an error document, never as a silent default.
func TestGetPuzzle_BadDifficulty(t *testing.T) {
	w := doGet(t, "/api/puzzle?difficulty=impossible")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Contains(t, doc["error"], "impossible")
}

// TestGetPuzzle_SeedReproducibility: the same non-zero seed returns a
// byte-identical puzzle; omitting the seed draws fresh randomness.
func TestGetPuzzle_SeedReproducibility(t *testing.T) {
	first := doGet(t, "/api/puzzle?technique=double_hashing&difficulty=medium&seed=1234")
	second := doGet(t, "/api/puzzle?technique=double_hashing&difficulty=medium&seed=1234")
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

// TestGetPuzzle_AllTechniques smoke-tests every technique end to end.
func TestGetPuzzle_AllTechniques(t *testing.T) {
	for _, technique := range []string{
		"linear_probing", "quadratic_probing", "double_hashing", "chaining",
	} {
		w := doGet(t, "/api/puzzle?technique="+technique+"&difficulty=hard")
		require.Equal(t, http.StatusOK, w.Code, technique)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, technique, doc["technique"])
		assert.Equal(t, float64(13), doc["table_size"])
	}
}

// TestHealth: liveness probe answers without touching the engine.
func TestHealth(t *testing.T) {
	w := doGet(t, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

// TestIndex serves the static landing page.
func TestIndex(t *testing.T) {
	w := doGet(t, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "hashviz")
}

// TestRequestID_Echoed: every response carries a request identifier,
// and a caller-supplied one is honored.
func TestRequestID_Echoed(t *testing.T) {
	router := server.New(server.Config{Port: server.DefaultPort}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "trace-me-42")
	router.ServeHTTP(w, req)
	assert.Equal(t, "trace-me-42", w.Header().Get("X-Request-ID"))
}

// TestConfigFromEnv honors HASHVIZ_PORT and falls back to the default.
func TestConfigFromEnv(t *testing.T) {
	t.Setenv("HASHVIZ_PORT", "8123")
	assert.Equal(t, server.Config{Port: "8123"}, server.ConfigFromEnv())

	t.Setenv("HASHVIZ_PORT", "")
	assert.Equal(t, server.Config{Port: server.DefaultPort}, server.ConfigFromEnv())
}
