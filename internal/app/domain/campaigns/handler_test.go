package campaigns

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/domain/auth"
)

// newTestRouter signs one session in and restores it on every request.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	a, err := auth.NewDemoAuthenticator("demo@example.com", "")
	require.NoError(t, err)
	provider := auth.NewProvider(a, 0, zap.NewNop())
	mirror := auth.NewMemoryMirror()
	require.NoError(t, provider.NewStore(mirror).Login(context.Background(), "demo@example.com", "password"))

	h := NewHandler(newTestService(), zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		store := provider.NewStore(mirror)
		require.NoError(t, store.Restore())
		auth.SetStore(c, store)
		c.Next()
	})
	r.GET("/campaigns", h.ShowCampaigns)
	r.GET("/campaigns/:id", h.ShowCampaign)
	r.POST("/campaigns/:id/apply", h.Apply)
	r.GET("/api/campaigns", h.APIListCampaigns)
	r.POST("/api/campaigns/:id/apply", h.APIApply)
	return r
}

func do(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func parse(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return doc
}

func cardIDs(doc *goquery.Document) []string {
	ids := []string{}
	doc.Find(".campaign-card").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("data-campaign-id")
		ids = append(ids, id)
	})
	return ids
}

var htmxHeaders = map[string]string{"HX-Request": "true"}

func TestHandler_ShowCampaigns(t *testing.T) {
	r := newTestRouter(t)

	t.Run("full page", func(t *testing.T) {
		w := do(r, http.MethodGet, "/campaigns", nil)

		require.Equal(t, http.StatusOK, w.Code)
		doc := parse(t, w)
		assert.Equal(t, "Campaigns - Influencer Hub", doc.Find("title").Text())
		assert.Equal(t, "Campaigns", doc.Find(`nav a[aria-current="page"]`).Text())
		assert.Equal(t, []string{"1", "2", "3", "4"}, cardIDs(doc))
		assert.Equal(t, 1, doc.Find(".applied-badge").Length())
		selected, _ := doc.Find("#campaign-category option[selected]").Attr("value")
		assert.Equal(t, "all", selected)
	})

	t.Run("applied tab", func(t *testing.T) {
		doc := parse(t, do(r, http.MethodGet, "/campaigns?tab=applied", nil))

		assert.Equal(t, []string{"3"}, cardIDs(doc))
		assert.Equal(t, "Organic Skincare Review", doc.Find(".campaign-title").Text())
	})

	t.Run("search ignores case", func(t *testing.T) {
		doc := parse(t, do(r, http.MethodGet, "/campaigns?q=TRAVEL", nil))

		assert.Equal(t, []string{"4"}, cardIDs(doc))
		value, _ := doc.Find("#campaign-search").Attr("value")
		assert.Equal(t, "TRAVEL", value)
	})

	t.Run("empty state", func(t *testing.T) {
		doc := parse(t, do(r, http.MethodGet, "/campaigns?category=food", nil))

		assert.Empty(t, cardIDs(doc))
		assert.Contains(t, doc.Find(".campaign-empty").Text(), "No campaigns found")
	})

	t.Run("htmx list refresh returns only the results", func(t *testing.T) {
		w := do(r, http.MethodGet, "/campaigns?category=beauty", map[string]string{
			"HX-Request": "true",
			"HX-Target":  "campaign-results",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "<html")
		doc := parse(t, w)
		assert.Equal(t, 0, doc.Find("#campaign-filters").Length())
		assert.Equal(t, 1, doc.Find("#campaign-results").Length())
		assert.Equal(t, []string{"3"}, cardIDs(doc))
	})
}

func TestHandler_ShowCampaign(t *testing.T) {
	r := newTestRouter(t)

	t.Run("htmx returns the dialog", func(t *testing.T) {
		w := do(r, http.MethodGet, "/campaigns/1", htmxHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		doc := parse(t, w)
		assert.Equal(t, "Summer Fashion Collection Promotion", doc.Find("#campaign-dialog-title").Text())
		assert.Equal(t, "Apply Now", strings.TrimSpace(doc.Find(".apply-button").Text()))
		assert.NotContains(t, w.Body.String(), "<html")
	})

	t.Run("applied campaign cannot be applied again", func(t *testing.T) {
		doc := parse(t, do(r, http.MethodGet, "/campaigns/3", htmxHeaders))

		assert.Equal(t, "Already Applied", strings.TrimSpace(doc.Find(".apply-button").Text()))
	})

	t.Run("full page opens the dialog over the list", func(t *testing.T) {
		doc := parse(t, do(r, http.MethodGet, "/campaigns/2", nil))

		assert.Equal(t, 1, doc.Find("#campaign-dialog").Length())
		assert.Len(t, cardIDs(doc), 4)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		w := do(r, http.MethodGet, "/campaigns/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Campaign not found")
	})
}

func TestHandler_Apply(t *testing.T) {
	t.Run("htmx apply refreshes the dialog and triggers a list reload", func(t *testing.T) {
		r := newTestRouter(t)

		w := do(r, http.MethodPost, "/campaigns/1/apply", htmxHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, ChangedEvent, w.Header().Get("HX-Trigger"))
		assert.Equal(t, "Already Applied", strings.TrimSpace(parse(t, w).Find(".apply-button").Text()))

		doc := parse(t, do(r, http.MethodGet, "/campaigns?tab=applied", nil))
		assert.Equal(t, []string{"1", "3"}, cardIDs(doc))
	})

	t.Run("plain form post redirects", func(t *testing.T) {
		r := newTestRouter(t)

		w := do(r, http.MethodPost, "/campaigns/2/apply", nil)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/campaigns?tab=applied", w.Header().Get("Location"))
	})

	t.Run("unknown campaign", func(t *testing.T) {
		r := newTestRouter(t)

		w := do(r, http.MethodPost, "/campaigns/99/apply", htmxHeaders)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_API(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/campaigns?tab=available&q=fitness", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Campaigns []struct {
			ID string `json:"id"`
		} `json:"campaigns"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "2", body.Campaigns[0].ID)

	apply := do(r, http.MethodPost, "/api/campaigns/4/apply", nil)
	require.Equal(t, http.StatusOK, apply.Code)
	assert.Contains(t, apply.Body.String(), `"applied":true`)

	missing := do(r, http.MethodPost, "/api/campaigns/99/apply", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.JSONEq(t, `{"error":"Campaign not found"}`, missing.Body.String())
}
