package responses

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/pkg/apperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func run(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h(c)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"apperr not found", apperr.ErrNotFound, http.StatusNotFound},
		{"gorm not found", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), http.StatusNotFound},
		{"forbidden", apperr.ErrForbidden, http.StatusForbidden},
		{"conflict", apperr.ErrConflict, http.StatusConflict},
		{"duplicate key", gorm.ErrDuplicatedKey, http.StatusConflict},
		{"closed", apperr.ErrClosed, http.StatusConflict},
		{"invalid", fmt.Errorf("%w: score must be positive", apperr.ErrInvalid), http.StatusBadRequest},
		{"unknown", errors.New("pq: connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := run(t, func(c *gin.Context) { FromError(c, "comment", tt.err) })
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestInternalServerErrorHidesDetails(t *testing.T) {
	w, body := run(t, func(c *gin.Context) {
		InternalServerError(c, errors.New("secret dsn password=hunter2"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "fail", body.Status)
	assert.NotContains(t, w.Body.String(), "hunter2")
}

func TestValidationError(t *testing.T) {
	w, body := run(t, func(c *gin.Context) {
		ValidationError(c, "invalid input", map[string]string{"title": "title is required"})
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "title is required", body.Fields["title"])
}
