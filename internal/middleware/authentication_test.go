package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
	"github.com/stretchr/testify/assert"
)

type stubSignInService struct {
	user *model.User
	err  error
}

func (s stubSignInService) SignIn(email string, password string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func basicAuthEngine(service stubSignInService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())

	authentication := NewAuthentication(nil, service)
	r.POST("/tokens", authentication.BasicAuthentication, func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r
}

func TestBasicAuthentication_MissingHeader(t *testing.T) {
	r := basicAuthEngine(stubSignInService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tokens", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "invalid Authorization header format"}`, w.Body.String())
}

func TestBasicAuthentication_BadCredentials(t *testing.T) {
	r := basicAuthEngine(stubSignInService{err: errdef.NewUnauthorized("invalid email or password")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tokens", nil)
	req.SetBasicAuth("someone@example.com", "wrong")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "invalid email or password"}`, w.Body.String())
}

func TestBasicAuthentication_ValidCredentials(t *testing.T) {
	r := basicAuthEngine(stubSignInService{user: &model.User{Email: "someone@example.com"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tokens", nil)
	req.SetBasicAuth("someone@example.com", "right")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
