package messages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/domain/auth"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	a, err := auth.NewDemoAuthenticator("demo@example.com", "")
	require.NoError(t, err)
	store := auth.NewStore(auth.NewMemoryMirror(), a, 0, zap.NewNop())
	require.NoError(t, store.Login(context.Background(), "demo@example.com", "password"))

	h := NewHandler(NewService(NewStaticRepository(), zap.NewNop()), zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.SetStore(c, store)
		c.Next()
	})
	r.GET("/messages", h.ShowMessages)
	r.POST("/messages/:id", h.SendMessage)
	r.GET("/api/conversations", h.APIConversations)
	r.GET("/api/conversations/:id/messages", h.APIMessages)
	return r
}

func request(r http.Handler, method, path string, form url.Values, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
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

var htmxHeaders = map[string]string{"HX-Request": "true"}

func TestHandler_ShowMessages(t *testing.T) {
	r := newTestRouter(t)

	t.Run("inbox without a selection", func(t *testing.T) {
		w := request(r, http.MethodGet, "/messages", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		doc := parse(t, w)
		assert.Equal(t, "Messages - Influencer Hub", doc.Find("title").Text())
		assert.Equal(t, 4, doc.Find("li.conversation").Length())
		assert.Equal(t, 2, doc.Find(".unread-badge").Length())
		assert.Equal(t, 1, doc.Find(".thread-placeholder").Length())
	})

	t.Run("selected conversation shows its thread", func(t *testing.T) {
		doc := parse(t, request(r, http.MethodGet, "/messages?conversation=1", nil, nil))

		msgs := doc.Find("#thread-body .message")
		require.Equal(t, 4, msgs.Length())
		sender, _ := msgs.Eq(1).Attr("data-sender")
		assert.Equal(t, "influencer", sender)
		action, _ := doc.Find("#thread-body form").Attr("action")
		assert.Equal(t, "/messages/1", action)
	})

	t.Run("conversation without messages", func(t *testing.T) {
		doc := parse(t, request(r, http.MethodGet, "/messages?conversation=3", nil, nil))

		assert.Equal(t, 0, doc.Find("#thread-body .message").Length())
		assert.Equal(t, 1, doc.Find(".thread-empty").Length())
	})

	t.Run("search narrows the list", func(t *testing.T) {
		w := request(r, http.MethodGet, "/messages?q=TRAVEL", nil, map[string]string{
			"HX-Request": "true",
			"HX-Target":  "conversation-list",
		})

		require.Equal(t, http.StatusOK, w.Code)
		doc := parse(t, w)
		assert.Equal(t, 1, doc.Find("#conversation-list").Length())
		assert.Equal(t, 0, doc.Find("#thread").Length())
		id, _ := doc.Find("li.conversation").Attr("data-conversation-id")
		assert.Equal(t, "4", id)
	})

	t.Run("empty search result", func(t *testing.T) {
		doc := parse(t, request(r, http.MethodGet, "/messages?q=nobody", nil, nil))

		assert.Equal(t, 0, doc.Find("li.conversation").Length())
		assert.Equal(t, "No conversations found", strings.TrimSpace(doc.Find(".conversation-empty").Text()))
	})

	t.Run("unknown conversation", func(t *testing.T) {
		w := request(r, http.MethodGet, "/messages?conversation=99", nil, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_SendMessage(t *testing.T) {
	r := newTestRouter(t)

	t.Run("htmx send re-renders the thread with a cleared input", func(t *testing.T) {
		w := request(r, http.MethodPost, "/messages/1", url.Values{"message": {"Sure, sending them now!"}}, htmxHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		doc := parse(t, w)
		assert.Equal(t, 1, doc.Find("#thread-body").Length())
		value, _ := doc.Find(`input[name="message"]`).Attr("value")
		assert.Empty(t, value)
		assert.Equal(t, 4, doc.Find(".message").Length())
		assert.NotContains(t, w.Body.String(), "Sure, sending them now!")
	})

	t.Run("blank message is rejected", func(t *testing.T) {
		w := request(r, http.MethodPost, "/messages/1", url.Values{"message": {"   "}}, htmxHeaders)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Message cannot be empty", strings.TrimSpace(parse(t, w).Find(`[role="alert"]`).Text()))
	})

	t.Run("plain post redirects back to the thread", func(t *testing.T) {
		w := request(r, http.MethodPost, "/messages/2", url.Values{"message": {"hello"}}, nil)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/messages?conversation=2", w.Header().Get("Location"))
	})

	t.Run("plain blank post renders the page with the error", func(t *testing.T) {
		w := request(r, http.MethodPost, "/messages/2", url.Values{"message": {""}}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		doc := parse(t, w)
		assert.Equal(t, "Messages - Influencer Hub", doc.Find("title").Text())
		assert.Contains(t, doc.Find("#thread-body").Text(), "Message cannot be empty")
	})

	t.Run("too long", func(t *testing.T) {
		w := request(r, http.MethodPost, "/messages/1", url.Values{"message": {strings.Repeat("x", MaxMessageLength+1)}}, htmxHeaders)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "cannot be longer than")
	})

	t.Run("unknown conversation", func(t *testing.T) {
		w := request(r, http.MethodPost, "/messages/99", url.Values{"message": {"hi"}}, htmxHeaders)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_API(t *testing.T) {
	r := newTestRouter(t)

	w := request(r, http.MethodGet, "/api/conversations?q=glow", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
	assert.Contains(t, w.Body.String(), `"brandName":"Natural Glow"`)

	thread := request(r, http.MethodGet, "/api/conversations/1/messages", nil, nil)
	require.Equal(t, http.StatusOK, thread.Code)
	assert.Contains(t, thread.Body.String(), `"id":"1_4"`)

	missing := request(r, http.MethodGet, "/api/conversations/99/messages", nil, nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
