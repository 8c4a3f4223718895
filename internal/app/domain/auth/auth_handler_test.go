package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := NewProvider(newTestAuthenticator(t), 0, zap.NewNop())
	h := NewAuthHandlers(provider, testJWTConfig(), LoginHints{Email: "demo@example.com", Password: "password"}, zap.NewNop())

	r := gin.New()
	r.Use(sessions.Sessions("influencer_session", cookie.NewStore([]byte("0123456789abcdef0123456789abcdef"))))
	r.Use(func(c *gin.Context) {
		store := provider.NewStore(NewSessionMirror(sessions.Default(c)))
		_ = store.Restore()
		SetStore(c, store)
		c.Next()
	})
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/whoami", func(c *gin.Context) {
		if identity := IdentityFromContext(c); identity != nil {
			c.String(http.StatusOK, identity.Name)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	r.POST("/api/auth/login", h.APILogin)
	r.GET("/api/me", JWTAuthMiddleware(testJWTConfig(), provider), h.Me)
	return r
}

func postForm(r http.Handler, path string, form url.Values, headers map[string]string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandlers_ShowLogin(t *testing.T) {
	r := newAuthRouter(t)

	w := get(r, "/login", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, "Sign In - Influencer Hub", doc.Find("title").Text())
	email, _ := doc.Find("input#email").Attr("value")
	assert.Equal(t, "demo@example.com", email)
	assert.Contains(t, doc.Find("#demo-credentials").Text(), `"password"`)
	assert.Empty(t, strings.TrimSpace(doc.Find("#login-error").Text()))
}

func TestAuthHandlers_Login(t *testing.T) {
	creds := url.Values{"email": {"demo@example.com"}, "password": {"password"}}

	t.Run("success redirects to the dashboard and sets the session cookie", func(t *testing.T) {
		r := newAuthRouter(t)

		w := postForm(r, "/login", creds, nil, nil)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)

		who := get(r, "/whoami", cookies)
		assert.Equal(t, "Demo Influencer", who.Body.String())
	})

	t.Run("htmx success uses HX-Redirect", func(t *testing.T) {
		r := newAuthRouter(t)

		w := postForm(r, "/login", creds, map[string]string{"HX-Request": "true"}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("HX-Redirect"))
	})

	t.Run("invalid credentials re-render the form with the error", func(t *testing.T) {
		r := newAuthRouter(t)
		bad := url.Values{"email": {"demo@example.com"}, "password": {"nope"}}

		w := postForm(r, "/login", bad, nil, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		doc, err := goquery.NewDocumentFromReader(w.Body)
		require.NoError(t, err)
		assert.Equal(t, "Invalid credentials", strings.TrimSpace(doc.Find(`#login-error [role="alert"]`).Text()))
	})

	t.Run("htmx invalid credentials return the alert fragment", func(t *testing.T) {
		r := newAuthRouter(t)
		bad := url.Values{"email": {"x@example.com"}, "password": {"password"}}

		w := postForm(r, "/login", bad, map[string]string{"HX-Request": "true"}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "#login-error", w.Header().Get("HX-Retarget"))
		assert.Contains(t, w.Body.String(), "Invalid credentials")
		assert.NotContains(t, w.Body.String(), "<html")
	})

	t.Run("blank fields fail like any other credential", func(t *testing.T) {
		r := newAuthRouter(t)

		w := postForm(r, "/login", url.Values{"email": {""}}, nil, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		doc, err := goquery.NewDocumentFromReader(w.Body)
		require.NoError(t, err)
		assert.Equal(t, "Invalid credentials", strings.TrimSpace(doc.Find(`#login-error [role="alert"]`).Text()))
	})

	t.Run("email is compared without trimming", func(t *testing.T) {
		r := newAuthRouter(t)
		padded := url.Values{"email": {" demo@example.com"}, "password": {"password"}}

		w := postForm(r, "/login", padded, nil, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})
}

func TestAuthHandlers_Logout(t *testing.T) {
	r := newAuthRouter(t)
	login := postForm(r, "/login", url.Values{"email": {"demo@example.com"}, "password": {"password"}}, nil, nil)
	cookies := login.Result().Cookies()

	w := postForm(r, "/logout", nil, nil, cookies)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	who := get(r, "/whoami", w.Result().Cookies())
	assert.Equal(t, "anonymous", who.Body.String())
}

func TestAuthHandlers_APILogin(t *testing.T) {
	r := newAuthRouter(t)

	t.Run("valid credentials return a usable token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"demo@example.com","password":"password"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.EqualValues(t, 3600, resp.ExpiresIn)
		assert.Equal(t, "1", resp.User.ID)

		me := httptest.NewRecorder()
		meReq := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		meReq.Header.Set("Authorization", "Bearer "+resp.Token)
		r.ServeHTTP(me, meReq)
		assert.Equal(t, http.StatusOK, me.Code)
		assert.Contains(t, me.Body.String(), `"email":"demo@example.com"`)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"demo@example.com","password":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
	})

	t.Run("padded email is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"demo@example.com ","password":"password"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("client gone before the check writes nothing", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"demo@example.com","password":"password"}`)).WithContext(ctx)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.NotEqual(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
