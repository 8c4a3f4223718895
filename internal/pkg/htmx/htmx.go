package htmx

import (
	"net/http"
	"strings"
)

// RequestHeaderKey is the HTMX request header used to detect partial updates.
const RequestHeaderKey = "HX-Request"

const (
	boostedHeaderKey = "HX-Boosted"
	targetHeaderKey  = "HX-Target"
)

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// IsBoosted reports whether the request is an hx-boost navigation, which
// expects a full page.
func IsBoosted(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(boostedHeaderKey), "true")
}

// Target returns the id of the element HTMX will swap, without the leading '#'.
func Target(r *http.Request) string {
	if r == nil {
		return ""
	}
	return strings.TrimPrefix(r.Header.Get(targetHeaderKey), "#")
}

// Trigger sets HX-Trigger so the client fires event after the swap.
func Trigger(w http.ResponseWriter, event string) {
	w.Header().Set("HX-Trigger", event)
}

// Redirect sends the client to url, using HX-Redirect for HTMX requests.
// status is used for HTMX responses; plain requests always get 303.
func Redirect(w http.ResponseWriter, r *http.Request, url string, status int) {
	if IsHTMXRequest(r) {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(status)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}
