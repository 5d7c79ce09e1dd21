package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zedhire/zedhire/internal/app/models"
	"github.com/zedhire/zedhire/internal/pkg/auth"
)

func newTestMiddleware() (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "zedhire.test",
	})
	return NewAuthMiddleware(jwtService), jwtService
}

func issueToken(t *testing.T, jwtService *auth.JWTService) string {
	t.Helper()
	user := &models.User{ID: 5, Email: "jane@example.com", Role: models.RoleCandidate}
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	return accessToken
}

func newTestRouter(m *AuthMiddleware, wrap gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded", wrap, func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return router
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	m, jwtService := newTestMiddleware()
	router := newTestRouter(m, m.JWTAuth())

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestJWTAuthRejectsMissingAndBadTokens(t *testing.T) {
	m, _ := newTestMiddleware()
	router := newTestRouter(m, m.JWTAuth())

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestOptionalJWTAuthAllowsAnonymous(t *testing.T) {
	m, jwtService := newTestMiddleware()
	router := newTestRouter(m, m.OptionalJWTAuth())

	// No token: request still passes, no user context
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous status = %d, want %d", w.Code, http.StatusOK)
	}

	// Invalid token: treated as anonymous rather than rejected
	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("bad token status = %d, want %d", w.Code, http.StatusOK)
	}

	// Valid token: user context is populated
	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := w.Body.String(); body == `{"anonymous":true}` {
		t.Fatal("expected user context to be set for a valid token")
	}
}

func TestRoleRequired(t *testing.T) {
	m, _ := newTestMiddleware()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/admin",
		func(c *gin.Context) { c.Set("role", string(models.RoleCandidate)); c.Next() },
		m.RoleRequired(string(models.RoleAdmin)),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	router.GET("/either",
		func(c *gin.Context) { c.Set("role", string(models.RoleRecruiter)); c.Next() },
		m.RoleRequired(string(models.RoleRecruiter), string(models.RoleAdmin)),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("wrong role status = %d, want %d", w.Code, http.StatusForbidden)
	}

	req = httptest.NewRequest(http.MethodGet, "/either", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("matching role status = %d, want %d", w.Code, http.StatusOK)
	}
}
