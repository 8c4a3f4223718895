package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/domain/analytics"
	"github.com/FACorreiaa/influencer-hub/internal/app/domain/auth"
	"github.com/FACorreiaa/influencer-hub/internal/app/domain/campaigns"
	"github.com/FACorreiaa/influencer-hub/internal/app/domain/dashboard"
	"github.com/FACorreiaa/influencer-hub/internal/app/domain/messages"
	"github.com/FACorreiaa/influencer-hub/internal/app/middleware"
	"github.com/FACorreiaa/influencer-hub/internal/app/renderer"
	"github.com/FACorreiaa/influencer-hub/internal/pkg/cache"
	"github.com/FACorreiaa/influencer-hub/internal/pkg/config"
)

// Dependencies are the process-wide resources the routes are built from.
// Pool is nil when the catalog is served from the built-in sample data.
type Dependencies struct {
	Config *config.Config
	Pool   *pgxpool.Pool
	Caches *cache.CacheManager
	Logger *zap.Logger
}

type AppHandlers struct {
	Auth      *auth.AuthHandlers
	Dashboard *dashboard.Handler
	Campaigns *campaigns.Handler
	Messages  *messages.Handler
	Analytics *analytics.Handler

	provider  *auth.Provider
	jwtConfig auth.JWTConfig
}

// Setup registers every route on r. The sessions middleware must already be
// installed.
func Setup(r *gin.Engine, deps Dependencies) error {
	ginHTMLRenderer := r.HTMLRender
	r.HTMLRender = &renderer.HTMLTemplRenderer{FallbackHTMLRenderer: ginHTMLRenderer}

	h, err := setupDependencies(deps)
	if err != nil {
		return fmt.Errorf("failed to setup dependencies: %w", err)
	}
	setupRouter(r, h, deps)
	return nil
}

func setupDependencies(deps Dependencies) (*AppHandlers, error) {
	cfg, log := deps.Config, deps.Logger

	authenticator, err := auth.NewDemoAuthenticator(cfg.Demo.Email, cfg.Demo.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}
	tracker := campaigns.NewApplicationTracker(deps.Caches.Applications)
	provider := auth.NewProvider(authenticator, cfg.Demo.LoginDelay, log,
		auth.WithEndedSessions(deps.Caches.EndedSessions),
		auth.WithLogoutHook(tracker.Forget),
	)
	jwtConfig := auth.JWTConfig{
		SecretKey:       cfg.JWT.SecretKey,
		TokenExpiration: cfg.JWT.AccessTokenTTL,
		Issuer:          cfg.JWT.Issuer,
		Logger:          log,
	}

	// Repositories
	var (
		campaignRepo campaigns.Repository = campaigns.NewStaticRepository()
		messageRepo  messages.Repository  = messages.NewStaticRepository()
	)
	if deps.Pool != nil {
		campaignRepo = campaigns.NewCachedRepository(campaigns.NewPostgresRepository(deps.Pool, log), deps.Caches.Campaigns)
		messageRepo = messages.NewCachedRepository(messages.NewPostgresRepository(deps.Pool, log), deps.Caches.Conversations, deps.Caches.Messages)
		log.Info("Serving catalog from Postgres")
	} else {
		log.Info("Serving catalog from built-in sample data")
	}

	// Services
	campaignService := campaigns.NewService(campaignRepo, tracker, log)
	messageService := messages.NewService(messageRepo, log)
	analyticsService := analytics.NewService(log)
	dashboardService := dashboard.NewService(campaignService, messageService, analyticsService, log)

	return &AppHandlers{
		Auth:      auth.NewAuthHandlers(provider, jwtConfig, auth.LoginHints{Email: cfg.Demo.Email, Password: demoPasswordHint(cfg)}, log),
		Dashboard: dashboard.NewHandler(dashboardService, log),
		Campaigns: campaigns.NewHandler(campaignService, log),
		Messages:  messages.NewHandler(messageService, log),
		Analytics: analytics.NewHandler(analyticsService, log),
		provider:  provider,
		jwtConfig: jwtConfig,
	}, nil
}

// demoPasswordHint is only shown when the built-in password is in use.
func demoPasswordHint(cfg *config.Config) string {
	if cfg.Demo.PasswordHash != "" {
		return ""
	}
	return auth.DefaultDemoPassword
}

func setupRouter(r *gin.Engine, h *AppHandlers, deps Dependencies) {
	log := deps.Logger

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"caches": deps.Caches.GetAllMetrics(),
		})
	})

	// API routes authenticate with bearer tokens, not the cookie.
	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/auth/login", h.Auth.APILogin)

		protectedAPI := apiGroup.Group("/")
		protectedAPI.Use(auth.JWTAuthMiddleware(h.jwtConfig, h.provider))
		{
			protectedAPI.GET("/me", h.Auth.Me)
			protectedAPI.GET("/dashboard", h.Dashboard.APIDashboard)
			protectedAPI.GET("/campaigns", h.Campaigns.APIListCampaigns)
			protectedAPI.POST("/campaigns/:id/apply", h.Campaigns.APIApply)
			protectedAPI.GET("/conversations", h.Messages.APIConversations)
			protectedAPI.GET("/conversations/:id/messages", h.Messages.APIMessages)
			protectedAPI.GET("/analytics", h.Analytics.APIAnalytics)
		}
	}

	web := r.Group("/")
	web.Use(middleware.LoadSession(h.provider, log))
	{
		web.POST("/logout", h.Auth.Logout)

		public := web.Group("/")
		public.Use(middleware.RedirectIfAuthenticated())
		{
			public.GET(middleware.LoginPath, h.Auth.ShowLogin)
			public.POST(middleware.LoginPath, h.Auth.Login)
		}

		protected := web.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET(middleware.DashboardPath, h.Dashboard.ShowDashboard)

			protected.GET("/campaigns", h.Campaigns.ShowCampaigns)
			protected.GET("/campaigns/:id", h.Campaigns.ShowCampaign)
			protected.POST("/campaigns/:id/apply", h.Campaigns.Apply)

			protected.GET("/messages", h.Messages.ShowMessages)
			protected.POST("/messages/:id", h.Messages.SendMessage)

			protected.GET("/analytics", h.Analytics.ShowAnalytics)
		}

		web.GET("/", middleware.RedirectTo(middleware.DashboardPath))
	}

	// Unknown paths go to the dashboard, which sends anonymous users on to
	// the login page.
	r.NoRoute(func(c *gin.Context) {
		log.Info("Unknown path, redirecting",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.String("ip", c.ClientIP()),
		)
		c.Redirect(http.StatusFound, middleware.DashboardPath)
	})
}
