package user

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
	"github.com/mcpmarket/marketplace-manager/internal/handler"
	"github.com/mcpmarket/marketplace-manager/pkg/config"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
	"github.com/mcpmarket/marketplace-manager/pkg/token"
)

func NewHandler(config config.Config, userService userService, tokenService tokenService, deploymentService deploymentService, savedService savedService) Handler {
	return Handler{
		config,
		userService,
		tokenService,
		deploymentService,
		savedService,
	}
}

type Handler struct {
	config            config.Config
	userService       userService
	tokenService      tokenService
	deploymentService deploymentService
	savedService      savedService
}

type userService interface {
	SignUp(ctx context.Context, email string, password string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, user *model.User, fullName *string, avatarURL *string) (*model.User, error)
}

type tokenService interface {
	GetTokens(user *model.User, previousTokenID string) (*token.Tokens, error)
	ValidateRefreshToken(ctx context.Context, tokenString string) (*token.RefreshTokenData, error)
	SignOut(userID uuid.UUID) error
}

type deploymentService interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (total int64, active int64, err error)
}

type savedService interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,gte=16,lte=128"`
}

// SignUp creates a new principal.
func (h Handler) SignUp(c *gin.Context) {
	var request SignUpRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	u, err := h.userService.SignUp(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

// SignIn issues tokens for the principal resolved by basic authentication.
func (h Handler) SignIn(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	tokens, err := h.tokenService.GetTokens(u, "")
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.setCookies(c, tokens)
	c.JSON(http.StatusCreated, tokens)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h Handler) RefreshToken(c *gin.Context) {
	refreshTokenString, err := c.Cookie("refreshToken")
	if err != nil {
		var request RefreshTokenRequest
		if err := handler.DataBinder(c, &request); err != nil {
			_ = c.Error(err)
			return
		}
		refreshTokenString = request.RefreshToken
	}
	if refreshTokenString == "" {
		_ = c.Error(errdef.NewUnauthorized("refresh token not found"))
		return
	}

	refreshToken, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), refreshTokenString)
	if err != nil {
		_ = c.Error(errdef.NewUnauthorized("%v", err))
		return
	}

	u, err := h.userService.FindByID(c.Request.Context(), refreshToken.UserID)
	if err != nil {
		if errdef.IsNotFound(err) {
			_ = c.Error(errdef.NewUnauthorized("unable to verify refresh token"))
		} else {
			_ = c.Error(err)
		}
		return
	}

	tokens, err := h.tokenService.GetTokens(u, refreshToken.ID.String())
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.setCookies(c, tokens)
	c.JSON(http.StatusCreated, tokens)
}

// SignOut invalidates the principal's refresh tokens.
func (h Handler) SignOut(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.tokenService.SignOut(u.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusOK)
}

type profileStats struct {
	ActiveDeployments int64 `json:"activeDeployments"`
	TotalDeployments  int64 `json:"totalDeployments"`
	SavedServers      int64 `json:"savedServers"`
}

type profileAuth struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type profileResponse struct {
	*model.User
	Stats profileStats `json:"stats"`
	Auth  profileAuth  `json:"auth"`
}

// Profile returns the principal's profile along with aggregate usage stats.
func (h Handler) Profile(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	profile, err := h.userService.FindByID(ctx, u.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	total, active, err := h.deploymentService.CountByUser(ctx, u.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	saved, err := h.savedService.CountByUser(ctx, u.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		User: profile,
		Stats: profileStats{
			ActiveDeployments: active,
			TotalDeployments:  total,
			SavedServers:      saved,
		},
		Auth: profileAuth{
			Email:     profile.Email,
			CreatedAt: profile.CreatedAt,
		},
	})
}

type UpdateProfileRequest struct {
	FullName  *string `json:"fullName"`
	AvatarURL *string `json:"avatarUrl"`
}

// UpdateProfile applies the allow-listed profile fields.
func (h Handler) UpdateProfile(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request UpdateProfileRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	updated, err := h.userService.UpdateProfile(c.Request.Context(), u, request.FullName, request.AvatarURL)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h Handler) setCookies(c *gin.Context, tokens *token.Tokens) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("accessToken", tokens.AccessToken, h.config.Authentication.AccessTokenExpirationSeconds, "/", h.config.Hostname, true, true)
	c.SetCookie("refreshToken", tokens.RefreshToken, h.config.Authentication.RefreshTokenExpirationSeconds, "/refresh", h.config.Hostname, true, true)
}
