package htmx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHTMXRequest(t *testing.T) {
	assert.False(t, IsHTMXRequest(nil))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsHTMXRequest(r))

	r.Header.Set("HX-Request", "TRUE")
	assert.True(t, IsHTMXRequest(r))
}

func TestIsBoostedAndTarget(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/campaigns", nil)
	assert.False(t, IsBoosted(r))
	assert.Empty(t, Target(r))

	r.Header.Set("HX-Boosted", "true")
	r.Header.Set("HX-Target", "campaign-results")
	assert.True(t, IsBoosted(r))
	assert.Equal(t, "campaign-results", Target(r))
}

func TestTrigger(t *testing.T) {
	w := httptest.NewRecorder()
	Trigger(w, "campaigns-changed")
	assert.Equal(t, "campaigns-changed", w.Header().Get("HX-Trigger"))
}

func TestRedirect(t *testing.T) {
	t.Run("plain request", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/login", nil)

		Redirect(w, r, "/dashboard", http.StatusOK)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	})

	t.Run("htmx request", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.Header.Set("HX-Request", "true")

		Redirect(w, r, "/dashboard", http.StatusOK)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("HX-Redirect"))
		assert.Empty(t, w.Header().Get("Location"))
	})
}
