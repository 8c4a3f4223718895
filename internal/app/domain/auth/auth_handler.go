package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
	"github.com/FACorreiaa/influencer-hub/internal/app/observability/metrics"
	"github.com/FACorreiaa/influencer-hub/internal/app/pages"
	"github.com/FACorreiaa/influencer-hub/internal/app/renderer"
	"github.com/FACorreiaa/influencer-hub/internal/pkg/htmx"
)

const loginTitle = "Sign In - Influencer Hub"

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int64           `json:"expires_in"`
	User      models.Identity `json:"user"`
}

// LoginHints is what the login page shows as demo credentials. An empty
// Password hides the notice.
type LoginHints struct {
	Email    string
	Password string
}

type AuthHandlers struct {
	provider   *Provider
	jwtService *JWTService
	jwtConfig  JWTConfig
	hints      LoginHints
	logger     *zap.Logger
}

func NewAuthHandlers(provider *Provider, jwtConfig JWTConfig, hints LoginHints, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		provider:   provider,
		jwtService: NewJWTService(),
		jwtConfig:  jwtConfig,
		hints:      hints,
		logger:     logger,
	}
}

// ShowLogin renders the sign in form.
func (h *AuthHandlers) ShowLogin(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, pages.LoginView{Email: h.hints.Email})
}

// Login checks the submitted credentials against the request's session store.
func (h *AuthHandlers) Login(c *gin.Context) {
	l := h.logger.With(zap.String("method", "Login"), zap.String("remote_addr", c.ClientIP()))

	store := StoreFromContext(c)
	if store == nil {
		l.Error("No session store in context")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		l.Warn("Failed to parse login form", zap.Error(err))
	}

	err := store.Login(c.Request.Context(), req.Email, req.Password)
	recordAuth(c.Request.Context(), err)
	if err != nil {
		if isInterrupted(err) {
			l.Info("Client went away during login")
			c.Abort()
			return
		}
		h.loginFailed(c, http.StatusUnauthorized, req.Email, store.ErrorMessage())
		return
	}

	l.Info("Successful login", zap.String("session_id", store.SessionID()))
	htmx.Redirect(c.Writer, c.Request, "/dashboard", http.StatusOK)
	c.Abort()
}

// Logout ends the session and sends the user to the login page.
func (h *AuthHandlers) Logout(c *gin.Context) {
	if store := StoreFromContext(c); store != nil {
		store.Logout()
	}
	htmx.Redirect(c.Writer, c.Request, "/login", http.StatusOK)
	c.Abort()
}

// APILogin exchanges the demo credential for a bearer token.
func (h *AuthHandlers) APILogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	mirror := NewTokenMirror(h.jwtService, h.jwtConfig, "")
	store := h.provider.NewStore(mirror)
	err := store.Login(c.Request.Context(), req.Email, req.Password)
	recordAuth(c.Request.Context(), err)
	if err != nil {
		if isInterrupted(err) {
			h.logger.Info("Client went away during API login")
			c.Abort()
			return
		}
		status := http.StatusUnauthorized
		if !errors.Is(err, models.ErrInvalidCredentials) {
			status = http.StatusInternalServerError
		}
		c.AbortWithStatusJSON(status, gin.H{"error": store.ErrorMessage()})
		return
	}

	identity, _ := store.Identity()
	c.JSON(http.StatusOK, LoginResponse{
		Token:     mirror.Token(),
		ExpiresIn: int64(h.jwtConfig.TokenExpiration.Seconds()),
		User:      *identity,
	})
}

// Me returns the identity behind the bearer token.
func (h *AuthHandlers) Me(c *gin.Context) {
	identity := IdentityFromContext(c)
	if identity == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, identity)
}

func (h *AuthHandlers) loginFailed(c *gin.Context, status int, email, message string) {
	if htmx.IsHTMXRequest(c.Request) {
		c.Header("HX-Retarget", "#login-error")
		c.Header("HX-Reswap", "innerHTML")
		h.render(c, status, pages.LoginError(message))
		return
	}
	h.renderLogin(c, status, pages.LoginView{Email: email, Error: message})
}

func (h *AuthHandlers) renderLogin(c *gin.Context, status int, v pages.LoginView) {
	v.DemoEmail = h.hints.Email
	v.DemoPassword = h.hints.Password
	h.render(c, status, pages.LayoutPage(models.LayoutTempl{
		Title:   loginTitle,
		Content: pages.LoginPage(v),
		Nav:     models.OfflineNav,
	}))
}

func (h *AuthHandlers) render(c *gin.Context, status int, component templ.Component) {
	if err := renderer.New(c.Request.Context(), status, component).Render(c.Writer); err != nil {
		h.logger.Error("Failed to render login view", zap.Error(err))
	}
	c.Abort()
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func recordAuth(ctx context.Context, err error) {
	result := "success"
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		result = "invalid_credentials"
	case err != nil:
		result = "error"
	}
	metrics.Get().AuthRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
