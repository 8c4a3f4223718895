package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/domain/auth"
	"github.com/FACorreiaa/influencer-hub/internal/app/models"
	"github.com/FACorreiaa/influencer-hub/internal/app/observability/metrics"
	"github.com/FACorreiaa/influencer-hub/internal/app/pages"
	"github.com/FACorreiaa/influencer-hub/internal/app/renderer"
	"github.com/FACorreiaa/influencer-hub/internal/pkg/htmx"
)

type BaseHandler struct {
	Logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	return &BaseHandler{Logger: logger}
}

func (h *BaseHandler) NewLayoutData(c *gin.Context, title, activeNav string, content templ.Component) models.LayoutTempl {
	user := auth.IdentityFromContext(c)
	nav := models.MainNav
	if user == nil {
		nav = models.OfflineNav
	}

	return models.LayoutTempl{
		Title:     title,
		Content:   content,
		Nav:       nav,
		ActiveNav: activeNav,
		User:      user,
	}
}

// Render writes component with status and records how long rendering took.
func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	start := time.Now()
	err := renderer.New(c.Request.Context(), status, component).Render(c.Writer)
	metrics.Get().TemplateRenderDuration.Record(context.Background(), time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("path", c.FullPath())))
	if err != nil {
		h.Logger.Error("Failed to render component", zap.String("path", c.Request.URL.Path), zap.Error(err))
		_ = c.Error(err)
	}
}

// RenderPage renders content inside the layout. HTMX requests that are not
// boosted navigations only get the content.
func (h *BaseHandler) RenderPage(c *gin.Context, title, activeNav string, content templ.Component) {
	h.RenderPageStatus(c, http.StatusOK, title, activeNav, content)
}

func (h *BaseHandler) RenderPageStatus(c *gin.Context, status int, title, activeNav string, content templ.Component) {
	if htmx.IsHTMXRequest(c.Request) && !htmx.IsBoosted(c.Request) {
		h.Render(c, status, content)
		return
	}
	layoutData := h.NewLayoutData(c, title, activeNav, content)
	h.Render(c, status, pages.LayoutPage(layoutData))
}

// RenderError maps err to a status code and renders a short message.
func (h *BaseHandler) RenderError(c *gin.Context, err error, message string) {
	status := StatusFor(err)
	h.Logger.Warn("Request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", status),
		zap.Error(err))
	h.RenderPageStatus(c, status, "Influencer Hub", "", pages.NotFound(message))
}

// JSONError writes {"error": message} with the status mapped from err.
func (h *BaseHandler) JSONError(c *gin.Context, err error, message string) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		h.Logger.Error("API request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
