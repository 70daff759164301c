package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/yungbote/routinely-backend/internal/pkg/errors"
)

func TestRespondAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"not found", pkgerrors.NotFound("Routine task"), http.StatusNotFound, "not_found", "Routine task not found"},
		{"validation", pkgerrors.Invalid("day_name", "bad"), http.StatusBadRequest, "validation_error", "validation failed: day_name: bad"},
		{"conflict", pkgerrors.Conflict("User already exists"), http.StatusConflict, "conflict", "User already exists"},
		{"internal", errors.New("dial tcp: refused"), http.StatusInternalServerError, "internal_error", "internal server error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			RespondAPIError(c, tc.err)

			if rec.Code != tc.status {
				t.Fatalf("status: got %d want %d", rec.Code, tc.status)
			}
			var env ErrorEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Error.Code != tc.code || env.Error.Message != tc.message {
				t.Fatalf("unexpected envelope: %+v", env.Error)
			}
		})
	}
}

func TestRespondAPIErrorCarriesFieldDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	RespondAPIError(c, pkgerrors.Invalid("status", "must be one of: pending, done"))

	var env ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Details["status"] != "must be one of: pending, done" {
		t.Fatalf("missing details: %+v", env.Error)
	}
}
