package middleware

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
	"github.com/yigit/linguacrm/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func runHandleAPIError(t *testing.T, err error) (int, errorBody) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/courses/x/schedule", nil)

	HandleAPIError(c, err)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", fmt.Errorf("lookup: %w", apperrors.ErrCourseNotFound), http.StatusNotFound, "RES_001"},
		{"validation", apperrors.NewValidationError("bad rule"), http.StatusBadRequest, "VAL_001"},
		{"bad request", apperrors.NewBadRequestError("bad id"), http.StatusBadRequest, "VAL_001"},
		{"forbidden", apperrors.NewForbiddenError("no"), http.StatusForbidden, "AUTH_009"},
		{"expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, "AUTH_006"},
		{"conflict", apperrors.NewConflictError("taken"), http.StatusConflict, "RES_004"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "SRV_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := runHandleAPIError(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleAPIError_PartialWrite(t *testing.T) {
	err := fmt.Errorf("expand: %w", &apperrors.PartialWriteError{Written: 2, Remaining: 3, Err: errors.New("timeout")})

	status, body := runHandleAPIError(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "SRV_004", body.Error.Code)
	assert.JSONEq(t, `{"written":2,"remaining":3}`, string(body.Error.Details))
}
