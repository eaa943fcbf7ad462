package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloodlink/model"
	"bloodlink/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubVerifier treats the bearer value as the caller email, and "bad" as an
// invalid credential.
type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (*services.Identity, error) {
	if token == "bad" {
		return nil, errors.New("invalid token")
	}
	return &services.Identity{Email: token}, nil
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Authenticate(stubVerifier{}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r
}

func TestAuthenticateMissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	newAuthRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer bad")
	newAuthRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateSetsIdentity(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer donor@example.com")
	newAuthRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "donor@example.com")
}

func newRoleRouter(roles map[string]string, allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	lookup := func(_ context.Context, email string) (string, error) {
		return roles[email], nil
	}
	r := gin.New()
	r.GET("/guarded", Authenticate(stubVerifier{}), RequireRole(lookup, allowed...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func serveAs(r *gin.Engine, email string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+email)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoleAdmitsAdmin(t *testing.T) {
	r := newRoleRouter(map[string]string{"admin@example.com": model.RoleAdmin}, model.RoleAdmin)
	assert.Equal(t, http.StatusOK, serveAs(r, "admin@example.com").Code)
}

func TestRequireRoleRejectsDonor(t *testing.T) {
	r := newRoleRouter(map[string]string{"donor@example.com": model.RoleDonor}, model.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, serveAs(r, "donor@example.com").Code)
}

// A caller with no stored profile is not admitted; the lookup miss is not an
// error.
func TestRequireRoleRejectsUnknownUser(t *testing.T) {
	r := newRoleRouter(map[string]string{}, model.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, serveAs(r, "ghost@example.com").Code)
}

func TestRequireRoleStaffAdmitsVolunteer(t *testing.T) {
	r := newRoleRouter(
		map[string]string{"vol@example.com": model.RoleVolunteer},
		model.RoleAdmin, model.RoleVolunteer,
	)
	assert.Equal(t, http.StatusOK, serveAs(r, "vol@example.com").Code)
}

func TestRequireRoleLookupFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lookup := func(_ context.Context, _ string) (string, error) {
		return "", errors.New("store unavailable")
	}
	r := gin.New()
	r.GET("/guarded", Authenticate(stubVerifier{}), RequireRole(lookup, model.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	assert.Equal(t, http.StatusInternalServerError, serveAs(r, "admin@example.com").Code)
}
