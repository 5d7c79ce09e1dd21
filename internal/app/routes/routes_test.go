package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/zedhire/zedhire/internal/app/controllers"
	"github.com/zedhire/zedhire/internal/app/models"
	"github.com/zedhire/zedhire/internal/middleware"
	"github.com/zedhire/zedhire/internal/pkg/auth"
	"github.com/zedhire/zedhire/internal/pkg/notify"
)

// newTestRouter wires the full route table with nil services. Requests that
// are rejected by middleware never reach a handler, which is all the role
// gate tests need.
func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "routes-test-secret",
		AccessTokenExp:  time.Minute,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "zedhire-test",
	})

	lgr := zerolog.Nop()
	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(nil, lgr),
		controllers.NewJobController(nil, lgr),
		controllers.NewCandidateController(nil, nil, lgr),
		controllers.NewRecruiterController(nil, nil, lgr),
		controllers.NewAdminController(nil, nil, lgr),
		notify.NewHub(lgr),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, userID int64, role models.RoleType) string {
	t.Helper()
	access, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:    userID,
		Email: "user@example.com",
		Role:  role,
	})
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	return access
}

func TestRecruiterProfileRoutesRejectOtherRoles(t *testing.T) {
	router, jwtService := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		role   models.RoleType
	}{
		{"admin cannot read recruiter profile", http.MethodGet, "/api/v1/recruiters/me", models.RoleAdmin},
		{"admin cannot update recruiter profile", http.MethodPut, "/api/v1/recruiters/me", models.RoleAdmin},
		{"admin cannot read recruiter stats", http.MethodGet, "/api/v1/recruiters/me/stats", models.RoleAdmin},
		{"admin cannot open recruiter events", http.MethodGet, "/api/v1/recruiters/me/events", models.RoleAdmin},
		{"candidate cannot read recruiter profile", http.MethodGet, "/api/v1/recruiters/me", models.RoleCandidate},
		{"candidate cannot create jobs", http.MethodPost, "/api/v1/jobs", models.RoleCandidate},
		{"recruiter cannot read admin stats", http.MethodGet, "/api/v1/admin/stats", models.RoleRecruiter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, 1, tt.role))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusForbidden {
				t.Fatalf("%s %s as %s: status = %d, want %d", tt.method, tt.path, tt.role, w.Code, http.StatusForbidden)
			}
		})
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recruiters/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
