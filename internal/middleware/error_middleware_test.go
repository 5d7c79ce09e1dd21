package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/zedhire/zedhire/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"revoked token", apperrors.ErrTokenRevoked, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"suspended account", apperrors.ErrAccountSuspended, http.StatusForbidden},
		{"job not found", apperrors.ErrJobNotFound, http.StatusNotFound},
		{"application not found", apperrors.ErrApplicationNotFound, http.StatusNotFound},
		{"candidate profile not found", apperrors.ErrCandidateProfileNotFound, http.StatusNotFound},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"already applied", apperrors.ErrAlreadyApplied, http.StatusConflict},
		{"resume required", apperrors.ErrResumeRequired, http.StatusUnprocessableEntity},
		{"invalid status change", apperrors.ErrInvalidStatusChange, http.StatusUnprocessableEntity},
		{"job not published", apperrors.ErrJobNotPublished, http.StatusUnprocessableEntity},
		{"file too large", apperrors.ErrFileTooLarge, http.StatusBadRequest},
		{"invalid file type", apperrors.ErrInvalidFileType, http.StatusBadRequest},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestHandleAPIErrorUnwrapsCustomErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	err := apperrors.NewResourceNotFoundError("job with ID 42 not found")
	HandleAPIError(c, err)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
