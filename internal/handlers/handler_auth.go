package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
	"github.com/gstbill/gst_billing_app/internal/middleware"
	"github.com/gstbill/gst_billing_app/internal/platform/config"
)

const oauthStateCookie = "oauthstate"

type authHandler struct {
	cfg          *config.Config
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	googleOAuth  portssvc.GoogleOAuthHandlerSvcFacade
}

func newAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *authHandler {
	return &authHandler{
		cfg:          cfg,
		userService:  services.User,
		tokenService: services.Token,
		googleOAuth:  services.GoogleOAuthHandler,
	}
}

func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(cfg, services)

	auth := r.Group("/auth")
	auth.POST("/register", h.register)
	auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
	auth.POST("/google", middleware.RateLimit(loginLimiter), h.googleTokenLogin)
	auth.GET("/google/login", h.googleLoginRedirect)
	auth.GET("/google/callback", h.googleCallback)
}

func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.issueToken(c, user, http.StatusCreated)
}

func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.issueToken(c, user, http.StatusOK)
}

// googleTokenLogin accepts a Google ID token obtained by the frontend and
// signs the matching user in, creating an EMPLOYEE account on first sight.
func (h *authHandler) googleTokenLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	payload, err := h.googleOAuth.ValidateGoogleIDToken(ctx, req.IDToken)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Google ID token validation failed", "error", err.Error())
		c.JSON(http.StatusUnauthorized, dto.Fail("Invalid Google ID token"))
		return
	}

	user, err := h.userService.GetOrCreateGoogleUser(ctx, googleInfoFromIDToken(payload.Claims))
	if err != nil {
		respondError(c, err)
		return
	}

	h.issueToken(c, user, http.StatusOK)
}

// googleLoginRedirect starts the server-side OAuth flow. The state lives in
// a short-lived cookie checked again on callback.
func (h *authHandler) googleLoginRedirect(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := h.googleOAuth.GenerateStateString(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuth.GetGoogleLoginURL(ctx, state))
}

func (h *authHandler) googleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	storedState, err := c.Cookie(oauthStateCookie)
	if err != nil || storedState == "" || storedState != c.Query("state") {
		c.JSON(http.StatusUnauthorized, dto.Fail("OAuth state mismatch"))
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("Authorization code missing"))
		return
	}

	oauthToken, err := h.googleOAuth.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Google code exchange failed", "error", err.Error())
		c.JSON(http.StatusBadGateway, dto.Fail("Failed to exchange authorization code with Google"))
		return
	}

	info, err := h.googleOAuth.GetUserInfo(ctx, oauthToken)
	if err != nil {
		logger.Error("Google userinfo fetch failed", "error", err.Error())
		c.JSON(http.StatusBadGateway, dto.Fail("Failed to fetch Google user info"))
		return
	}

	user, err := h.userService.GetOrCreateGoogleUser(ctx, *info)
	if err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.cfg.FrontendBaseURL != "" {
		redirect := h.cfg.FrontendBaseURL + "/auth/callback?token=" + url.QueryEscape(token)
		c.Redirect(http.StatusTemporaryRedirect, redirect)
		return
	}

	respondOK(c, dto.AuthResponse{Token: token, ExpiresAt: expiresAt, User: dto.ToUserResponse(user)})
}

func (h *authHandler) issueToken(c *gin.Context, user *domain.User, status int) {
	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, dto.OK(dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}))
}

// googleInfoFromIDToken maps the verified ID-token claims onto the userinfo
// shape used by the callback flow.
func googleInfoFromIDToken(claims map[string]interface{}) domain.GoogleUserInfo {
	info := domain.GoogleUserInfo{}
	if v, ok := claims["sub"].(string); ok {
		info.ID = v
	}
	if v, ok := claims["email"].(string); ok {
		info.Email = v
	}
	if v, ok := claims["email_verified"].(bool); ok {
		info.VerifiedEmail = v
	}
	if v, ok := claims["name"].(string); ok {
		info.Name = v
	}
	if v, ok := claims["picture"].(string); ok {
		info.Picture = v
	}
	return info
}
