package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/domain/auth"
	"github.com/FACorreiaa/influencer-hub/internal/app/handlers"
	"github.com/FACorreiaa/influencer-hub/internal/app/pages"
)

const (
	pageTitle = "Dashboard - Influencer Hub"
	navName   = "Dashboard"
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

func (h *Handler) ShowDashboard(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), auth.SessionIDFromContext(c))
	if err != nil {
		h.RenderError(c, err, "Failed to load dashboard")
		return
	}

	h.RenderPage(c, pageTitle, navName, pages.DashboardPage(pages.DashboardView{
		User:              auth.IdentityFromContext(c),
		Earnings:          summary.Earnings,
		Overview:          summary.Overview,
		Performance:       summary.Performance,
		Upcoming:          summary.Upcoming,
		Recent:            summary.Recent,
		ActiveCampaigns:   summary.ActiveCampaigns,
		DeliverablesDone:  summary.DeliverablesDone,
		DeliverablesTotal: summary.DeliverablesTotal,
	}))
}

func (h *Handler) APIDashboard(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), auth.SessionIDFromContext(c))
	if err != nil {
		h.JSONError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}
