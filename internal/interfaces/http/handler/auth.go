package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appidentity "github.com/invoicehub/backend/internal/application/identity"
	"github.com/invoicehub/backend/internal/infrastructure/auth"
)

// LoginRequest carries sign-in credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse carries the issued token and the signed-in user
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
}

// AuthenticateResponse is the form-facing sign-in outcome: an empty message
// means the credentials were accepted.
type AuthenticateResponse struct {
	Message string `json:"message"`
}

// AuthHandler serves the authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *appidentity.AuthService
	jwtService  *auth.JWTService
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(authService *appidentity.AuthService, jwtService *auth.JWTService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		authService: authService,
		jwtService:  jwtService,
	}
}

// RegisterRoutes registers the auth routes on the given group
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/authenticate", h.Authenticate)
	}
}

// Login verifies credentials and issues an access token for API clients
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	token, err := h.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, LoginResponse{
		AccessToken: token,
		UserID:      user.ID.String(),
		Email:       user.Email,
		Name:        user.Name,
	})
}

// Authenticate verifies credentials for the login form. Recognized
// failures come back as a 200 with a message for the form to display;
// only unexpected faults surface as errors.
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	message, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, AuthenticateResponse{Message: message})
}
