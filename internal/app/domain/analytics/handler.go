package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/handlers"
	"github.com/FACorreiaa/influencer-hub/internal/app/pages"
)

const (
	pageTitle = "Analytics - Influencer Hub"
	navName   = "Analytics"
)

type Handler struct {
	*handlers.BaseHandler
	service Service
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		BaseHandler: handlers.NewBaseHandler(logger),
		service:     service,
	}
}

func queryFromRequest(c *gin.Context) Query {
	return NewQuery(c.Query("range"), c.Query("platform"), c.Query("tab"))
}

func (h *Handler) ShowAnalytics(c *gin.Context) {
	q := queryFromRequest(c)
	report, err := h.service.Report(c.Request.Context(), q)
	if err != nil {
		h.RenderError(c, err, "Failed to load analytics")
		return
	}

	h.RenderPage(c, pageTitle, navName, pages.AnalyticsPage(pages.AnalyticsView{
		TimeRange:    q.TimeRange,
		Platform:     q.Platform,
		Tab:          q.Tab,
		TimeRanges:   q.TimeRangeOptions(),
		Platforms:    q.PlatformOptions(),
		Tabs:         q.TabOptions(),
		Overview:     report.Overview,
		Growth:       report.Growth,
		Engagement:   report.Engagement,
		Revenue:      report.Revenue,
		Distribution: report.Distribution,
		Posts:        report.Posts,
		Campaigns:    report.Campaigns,
		Totals:       report.Totals,
	}))
}

func (h *Handler) APIAnalytics(c *gin.Context) {
	report, err := h.service.Report(c.Request.Context(), queryFromRequest(c))
	if err != nil {
		h.JSONError(c, err, "Failed to load analytics")
		return
	}
	c.JSON(http.StatusOK, report)
}
