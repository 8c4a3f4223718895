package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/domain/auth"
	"github.com/FACorreiaa/influencer-hub/internal/app/models"
	"github.com/FACorreiaa/influencer-hub/internal/app/observability/metrics"
	"github.com/FACorreiaa/influencer-hub/internal/pkg/htmx"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"

	RequestIDHeader = "X-Request-Id"
	RequestIDKey    = "request_id"
)

// CORSMiddleware handles CORS headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, HX-Request, HX-Target, HX-Current-URL, HX-Boosted")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// htmx is loaded from unpkg and uses inline hx-on handlers.
		csp := "default-src 'self'; " +
			"script-src 'self' 'unsafe-inline' 'unsafe-eval' https://unpkg.com; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data: https:; " +
			"connect-src 'self'"
		c.Writer.Header().Set("Content-Security-Policy", csp)

		c.Next()
	}
}

// RequestID propagates or assigns a request id and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// OTELGinMiddleware returns the OpenTelemetry middleware for Gin
func OTELGinMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}

// MetricsMiddleware records request counts and latency per route. Requests
// carrying a search query on the list pages also count as searches.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		ctx := c.Request.Context()
		m := metrics.Get()
		attrs := metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("route", route),
			attribute.String("status", strconv.Itoa(c.Writer.Status())),
		)
		m.HTTPRequestsTotal.Add(ctx, 1, attrs)
		m.HTTPRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)

		if q := c.Query("q"); q != "" {
			switch route {
			case "/campaigns", "/messages", "/api/campaigns", "/api/conversations":
				m.SearchRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("route", route)))
			}
		}
	}
}

// LoadSession restores the request's session store from the cookie session
// and puts it in the context. Must run after sessions.Sessions.
func LoadSession(provider *auth.Provider, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := provider.NewStore(auth.NewSessionMirror(sessions.Default(c)))
		if err := store.Restore(); err != nil {
			if errors.Is(err, models.ErrSessionEnded) {
				logger.Info("Ignored logged out session",
					zap.String("path", c.Request.URL.Path))
			} else {
				logger.Warn("Discarded stored session",
					zap.String("path", c.Request.URL.Path),
					zap.Error(err))
				metrics.Get().MalformedSessionsDiscarded.Add(c.Request.Context(), 1)
			}
		}
		auth.SetStore(c, store)
		c.Next()
	}
}

// AuthMiddleware lets only authenticated sessions through. Everyone else is
// sent to the login page.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := auth.StoreFromContext(c)
		if store == nil || !store.IsAuthenticated() {
			handleAuthRedirect(c, LoginPath)
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated keeps signed-in users off the login page.
func RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if store := auth.StoreFromContext(c); store != nil && store.IsAuthenticated() {
			if htmx.IsHTMXRequest(c.Request) {
				c.Header("HX-Redirect", DashboardPath)
				c.AbortWithStatus(http.StatusOK)
				return
			}
			c.Redirect(http.StatusFound, DashboardPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectTo is used for "/" and unknown paths.
func RedirectTo(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, path)
	}
}

// handleAuthRedirect handles redirects for both regular and HTMX requests
func handleAuthRedirect(c *gin.Context, redirectURL string) {
	if htmx.IsHTMXRequest(c.Request) {
		c.Header("HX-Redirect", redirectURL)
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.Redirect(http.StatusFound, redirectURL)
	c.Abort()
}

// GetIdentityFromContext returns the signed-in identity or nil.
func GetIdentityFromContext(c *gin.Context) *models.Identity {
	return auth.IdentityFromContext(c)
}

// GetRequestID returns the id assigned by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
