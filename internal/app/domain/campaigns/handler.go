package campaigns

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/domain/auth"
	"github.com/FACorreiaa/influencer-hub/internal/app/handlers"
	"github.com/FACorreiaa/influencer-hub/internal/app/pages"
	"github.com/FACorreiaa/influencer-hub/internal/pkg/htmx"
)

const (
	pageTitle = "Campaigns - Influencer Hub"
	navName   = "Campaigns"

	// ChangedEvent is fired after an application so the list refreshes.
	ChangedEvent = "campaigns-changed"

	resultsTarget = "campaign-results"
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

func filterFromQuery(c *gin.Context) Filter {
	return NewFilter(c.Query("tab"), c.Query("q"), c.Query("category"))
}

func (h *Handler) buildView(c *gin.Context, filter Filter) (pages.CampaignsView, error) {
	list, err := h.service.List(c.Request.Context(), auth.SessionIDFromContext(c), filter)
	if err != nil {
		return pages.CampaignsView{}, err
	}
	return pages.CampaignsView{
		Query:      filter.Query,
		Category:   filter.Category,
		Tab:        string(filter.Tab),
		Tabs:       filter.TabOptions(),
		Categories: filter.CategoryOptions(),
		Campaigns:  list,
	}, nil
}

// ShowCampaigns renders the campaign browser. Requests targeting the result
// list only get the list back.
func (h *Handler) ShowCampaigns(c *gin.Context) {
	v, err := h.buildView(c, filterFromQuery(c))
	if err != nil {
		h.RenderError(c, err, "Failed to load campaigns")
		return
	}

	if htmx.IsHTMXRequest(c.Request) && htmx.Target(c.Request) == resultsTarget {
		h.Render(c, http.StatusOK, pages.CampaignList(v))
		return
	}
	h.RenderPage(c, pageTitle, navName, pages.CampaignsPage(v))
}

// ShowCampaign renders the details dialog, on top of the list for full page loads.
func (h *Handler) ShowCampaign(c *gin.Context) {
	campaign, err := h.service.Get(c.Request.Context(), auth.SessionIDFromContext(c), c.Param("id"))
	if err != nil {
		h.RenderError(c, err, "Campaign not found")
		return
	}

	if htmx.IsHTMXRequest(c.Request) && !htmx.IsBoosted(c.Request) {
		h.Render(c, http.StatusOK, pages.CampaignDialog(campaign))
		return
	}

	v, err := h.buildView(c, filterFromQuery(c))
	if err != nil {
		h.RenderError(c, err, "Failed to load campaigns")
		return
	}
	v.Selected = &campaign
	h.RenderPage(c, campaign.Title+" - Influencer Hub", navName, pages.CampaignsPage(v))
}

func (h *Handler) Apply(c *gin.Context) {
	campaign, err := h.service.Apply(c.Request.Context(), auth.SessionIDFromContext(c), c.Param("id"))
	if err != nil {
		h.RenderError(c, err, applyErrorMessage(err))
		return
	}

	if htmx.IsHTMXRequest(c.Request) {
		htmx.Trigger(c.Writer, ChangedEvent)
		h.Render(c, http.StatusOK, pages.CampaignDialog(campaign))
		return
	}
	c.Redirect(http.StatusSeeOther, "/campaigns?tab="+string(TabApplied))
}

func applyErrorMessage(err error) string {
	switch handlers.StatusFor(err) {
	case http.StatusNotFound:
		return "Campaign not found"
	case http.StatusConflict:
		return "This campaign is no longer accepting applications"
	default:
		return "Failed to apply to campaign"
	}
}

// APIListCampaigns serves GET /api/campaigns with the same filters as the page.
func (h *Handler) APIListCampaigns(c *gin.Context) {
	filter := filterFromQuery(c)
	list, err := h.service.List(c.Request.Context(), auth.SessionIDFromContext(c), filter)
	if err != nil {
		h.JSONError(c, err, "Failed to load campaigns")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"campaigns": list,
		"count":     len(list),
	})
}

func (h *Handler) APIApply(c *gin.Context) {
	campaign, err := h.service.Apply(c.Request.Context(), auth.SessionIDFromContext(c), c.Param("id"))
	if err != nil {
		h.JSONError(c, err, applyErrorMessage(err))
		return
	}
	c.JSON(http.StatusOK, campaign)
}

