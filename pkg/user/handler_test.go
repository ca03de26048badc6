package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/pkg/config"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
	"github.com/mcpmarket/marketplace-manager/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_RefreshToken_Cookie(t *testing.T) {
	userID := uuid.New()
	u := &model.User{ID: userID}
	userService := &mockUserService{}
	userService.
		On("FindByID", userID).
		Return(u, nil)
	tokenService := &mockTokenService{}
	id := uuid.New()
	refreshTokenData := &token.RefreshTokenData{
		SignedToken: "signed-token",
		ID:          id,
		UserID:      userID,
	}
	tokenService.
		On("ValidateRefreshToken", "token").
		Return(refreshTokenData, nil)
	tokens := &token.Tokens{
		AccessToken:  "accessToken",
		TokenType:    "bearer",
		RefreshToken: "refreshToken",
		ExpiresIn:    312,
	}
	tokenService.
		On("GetTokens", u, id.String()).
		Return(tokens, nil)
	cfg := config.Config{Hostname: "hostname"}
	handler := NewHandler(cfg, userService, tokenService, &mockDeploymentService{}, &mockSavedService{})

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	request := newPost(t, "/refresh", nil)
	cookie := &http.Cookie{Name: "refreshToken", Value: "token"}
	require.NoError(t, cookie.Valid())
	request.AddCookie(cookie)
	c.Request = request

	handler.RefreshToken(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	cookies := recorder.Result().Cookies()
	assert.Len(t, cookies, 2)
	assert.Equal(t, "accessToken", cookies[0].Name)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, "refreshToken", cookies[1].Name)
	assert.Equal(t, "/refresh", cookies[1].Path)
	tokenService.AssertExpectations(t)
	userService.AssertExpectations(t)
}

func TestHandler_RefreshToken_RequestBody(t *testing.T) {
	userID := uuid.New()
	u := &model.User{ID: userID}
	userService := &mockUserService{}
	userService.
		On("FindByID", userID).
		Return(u, nil)
	tokenService := &mockTokenService{}
	id := uuid.New()
	refreshTokenData := &token.RefreshTokenData{
		SignedToken: "signed-token",
		ID:          id,
		UserID:      userID,
	}
	tokenService.
		On("ValidateRefreshToken", "token").
		Return(refreshTokenData, nil)
	tokens := &token.Tokens{
		AccessToken:  "accessToken",
		TokenType:    "bearer",
		RefreshToken: "refreshToken",
		ExpiresIn:    312,
	}
	tokenService.
		On("GetTokens", u, id.String()).
		Return(tokens, nil)
	cfg := config.Config{Hostname: "hostname"}
	handler := NewHandler(cfg, userService, tokenService, &mockDeploymentService{}, &mockSavedService{})

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = newPost(t, "/refresh", &RefreshTokenRequest{RefreshToken: "token"})

	handler.RefreshToken(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	tokenService.AssertExpectations(t)
	userService.AssertExpectations(t)
}

func TestHandler_SignIn_Cookies(t *testing.T) {
	u := &model.User{ID: uuid.New()}
	tokenService := &mockTokenService{}
	tokens := &token.Tokens{
		AccessToken:  "accessToken",
		TokenType:    "bearer",
		RefreshToken: "refreshToken",
		ExpiresIn:    312,
	}
	tokenService.
		On("GetTokens", u, "").
		Return(tokens, nil)
	cfg := config.Config{Hostname: "hostname"}
	handler := NewHandler(cfg, &mockUserService{}, tokenService, &mockDeploymentService{}, &mockSavedService{})

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", u)
	c.Request = newPost(t, "/tokens", nil)

	handler.SignIn(c)

	require.Len(t, c.Errors.Errors(), 0)
	cookies := recorder.Result().Cookies()
	assert.Len(t, cookies, 2)
	assert.Equal(t, "accessToken", cookies[0].Name)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, "refreshToken", cookies[1].Name)
	assert.Equal(t, "/refresh", cookies[1].Path)
	tokenService.AssertExpectations(t)
}

func TestHandler_SignOut(t *testing.T) {
	userID := uuid.New()
	u := &model.User{ID: userID}
	tokenService := &mockTokenService{}
	tokenService.
		On("SignOut", userID).
		Return(nil)
	cfg := config.Config{Hostname: "hostname"}
	handler := NewHandler(cfg, &mockUserService{}, tokenService, &mockDeploymentService{}, &mockSavedService{})

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", u)
	c.Request = newPost(t, "/users", nil)

	handler.SignOut(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusOK, recorder.Code)
	tokenService.AssertExpectations(t)
}

func TestHandler_Profile_Stats(t *testing.T) {
	userID := uuid.New()
	u := &model.User{ID: userID, Email: "someone@something.org"}
	userService := &mockUserService{}
	userService.
		On("FindByID", userID).
		Return(u, nil)
	deploymentService := &mockDeploymentService{}
	deploymentService.
		On("CountByUser", userID).
		Return(int64(5), int64(2), nil)
	savedService := &mockSavedService{}
	savedService.
		On("CountByUser", userID).
		Return(int64(3), nil)
	cfg := config.Config{Hostname: "hostname"}
	handler := NewHandler(cfg, userService, &mockTokenService{}, deploymentService, savedService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", u)
	c.Request = newGet(t, "/user/profile")

	handler.Profile(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var response struct {
		Email string `json:"email"`
		Stats struct {
			ActiveDeployments int64 `json:"activeDeployments"`
			TotalDeployments  int64 `json:"totalDeployments"`
			SavedServers      int64 `json:"savedServers"`
		} `json:"stats"`
		Auth struct {
			Email string `json:"email"`
		} `json:"auth"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "someone@something.org", response.Email)
	assert.Equal(t, int64(2), response.Stats.ActiveDeployments)
	assert.Equal(t, int64(5), response.Stats.TotalDeployments)
	assert.Equal(t, int64(3), response.Stats.SavedServers)
	assert.Equal(t, "someone@something.org", response.Auth.Email)
	userService.AssertExpectations(t)
	deploymentService.AssertExpectations(t)
	savedService.AssertExpectations(t)
}

func TestHandler_UpdateProfile_AllowList(t *testing.T) {
	userID := uuid.New()
	u := &model.User{ID: userID}
	fullName := "Some One"
	updated := &model.User{ID: userID, FullName: fullName}
	userService := &mockUserService{}
	userService.
		On("UpdateProfile", u, &fullName, (*string)(nil)).
		Return(updated, nil)
	cfg := config.Config{Hostname: "hostname"}
	handler := NewHandler(cfg, userService, &mockTokenService{}, &mockDeploymentService{}, &mockSavedService{})

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", u)
	c.Request = newPost(t, "/user/profile", &UpdateProfileRequest{FullName: &fullName})

	handler.UpdateProfile(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusOK, recorder.Code)
	userService.AssertExpectations(t)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) SignUp(ctx context.Context, email string, password string) (*model.User, error) {
	called := m.Called(email, password)
	return called.Get(0).(*model.User), called.Error(1)
}

func (m *mockUserService) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	called := m.Called(id)
	return called.Get(0).(*model.User), called.Error(1)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, user *model.User, fullName *string, avatarURL *string) (*model.User, error) {
	called := m.Called(user, fullName, avatarURL)
	return called.Get(0).(*model.User), called.Error(1)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) GetTokens(user *model.User, previousTokenID string) (*token.Tokens, error) {
	called := m.Called(user, previousTokenID)
	return called.Get(0).(*token.Tokens), called.Error(1)
}

func (m *mockTokenService) ValidateRefreshToken(ctx context.Context, tokenString string) (*token.RefreshTokenData, error) {
	called := m.Called(tokenString)
	return called.Get(0).(*token.RefreshTokenData), called.Error(1)
}

func (m *mockTokenService) SignOut(userID uuid.UUID) error {
	called := m.Called(userID)
	return called.Error(0)
}

type mockDeploymentService struct{ mock.Mock }

func (m *mockDeploymentService) CountByUser(ctx context.Context, userID uuid.UUID) (int64, int64, error) {
	called := m.Called(userID)
	return called.Get(0).(int64), called.Get(1).(int64), called.Error(2)
}

type mockSavedService struct{ mock.Mock }

func (m *mockSavedService) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	called := m.Called(userID)
	return called.Get(0).(int64), called.Error(1)
}

func newPost(t *testing.T, path string, jsonBody any) *http.Request {
	body, err := json.Marshal(jsonBody)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	return req
}

func newGet(t *testing.T, path string) *http.Request {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	return req
}
