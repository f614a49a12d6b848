package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/campusbook/appointment-scheduler/internal/config"
	domain "github.com/campusbook/appointment-scheduler/internal/domain/booking"
	"github.com/campusbook/appointment-scheduler/internal/httpresp"
	"github.com/campusbook/appointment-scheduler/internal/models"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{JWTSecret: testSecret}
}

// authRouter guards a single endpoint with AuthMiddleware. The db is nil:
// every case here is rejected before the user lookup runs.
func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/appointments", AuthMiddleware(nil, testConfig()), func(c *gin.Context) {
		httpresp.OK(c, nil)
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (bool, string) {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return body.Success, body.Message
}

func signToken(t *testing.T, userID uuid.UUID, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.String(),
		"role": models.RoleStudent,
		"exp":  expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestAuthMiddlewareRejections(t *testing.T) {
	r := authRouter()

	expired := signToken(t, uuid.New(), time.Now().Add(-time.Hour))
	wrongKey := func() string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": uuid.NewString(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("other-secret"))
		if err != nil {
			t.Fatalf("signing token: %v", err)
		}
		return signed
	}()

	cases := []struct {
		name    string
		header  string
		message string
	}{
		{"no header", "", "Access denied. No token provided."},
		{"not bearer", "Basic abc123", "Access denied. No token provided."},
		{"garbage token", "Bearer not-a-jwt", "Invalid token."},
		{"wrong signing key", "Bearer " + wrongKey, "Invalid token."},
		{"expired token", "Bearer " + expired, "Token expired."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doGet(r, tc.header)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
			success, message := decodeEnvelope(t, w)
			if success {
				t.Error("success = true on a rejected request")
			}
			if message != tc.message {
				t.Errorf("message = %q, want %q", message, tc.message)
			}
		})
	}
}

// roleRouter stashes the given principal the way AuthMiddleware would, then
// applies the role guard.
func roleRouter(p domain.Principal, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/availability",
		func(c *gin.Context) {
			c.Set(ContextPrincipal, p)
			c.Next()
		},
		RequireRole(roles...),
		func(c *gin.Context) {
			httpresp.OK(c, nil)
		},
	)
	return r
}

func doPost(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/availability", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	student := domain.Principal{UserID: uuid.New(), Role: models.RoleStudent}

	w := doPost(roleRouter(student, models.RoleProfessor))
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	success, message := decodeEnvelope(t, w)
	if success {
		t.Error("success = true on a rejected request")
	}
	if message != "Access denied. professor role required." {
		t.Errorf("message = %q", message)
	}
}

func TestRequireRoleAllowsListedRoles(t *testing.T) {
	professor := domain.Principal{UserID: uuid.New(), Role: models.RoleProfessor}

	w := doPost(roleRouter(professor, models.RoleProfessor))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	w = doPost(roleRouter(professor, models.RoleStudent, models.RoleProfessor))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
