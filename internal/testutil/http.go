package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/pkg/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Config returns defaults tuned for tests.
func Config() *config.Config {
	cfg := config.Defaults()
	cfg.App.Env = "test"
	cfg.JWT.Secret = "test-secret-0123456789"
	cfg.App.MediaURL = "/media"
	return cfg
}

// Router returns a bare engine with an /api group, the way the real router
// mounts domain routes.
func Router() (*gin.Engine, *gin.RouterGroup) {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	return r, r.Group("/api")
}

func Bearer(t *testing.T, cfg *config.Config, userID uint) string {
	t.Helper()

	signed, err := token.GenerateJWT(userID, cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + signed
}

// Do sends a JSON request. body may be nil, a string, or any value that
// marshals to JSON.
func Do(r http.Handler, method, path string, body interface{}, authHeader string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Data decodes the data field of a success envelope into v.
func Data(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	require.Equal(t, "success", envelope.Status, w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, v))
}
