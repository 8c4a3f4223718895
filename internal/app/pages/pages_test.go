package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDoc(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestLoginError(t *testing.T) {
	doc := renderDoc(t, LoginError(`<script>alert("x")</script>`))

	alert := doc.Find(`[role="alert"]`)
	require.Equal(t, 1, alert.Length())
	assert.Equal(t, `<script>alert("x")</script>`, alert.Text())
	assert.Equal(t, 0, doc.Find("script").Length())
}

func TestLoginPage_EmbedsAlert(t *testing.T) {
	t.Run("error is shown inside the target", func(t *testing.T) {
		doc := renderDoc(t, LoginPage(LoginView{Email: "demo@example.com", Error: "Invalid credentials"}))

		assert.Equal(t, "Invalid credentials", strings.TrimSpace(doc.Find(`#login-error [role="alert"]`).Text()))
	})

	t.Run("no error leaves the target empty", func(t *testing.T) {
		doc := renderDoc(t, LoginPage(LoginView{}))

		assert.Equal(t, 0, doc.Find(`#login-error [role="alert"]`).Length())
	})
}

func TestNotFound(t *testing.T) {
	doc := renderDoc(t, NotFound("Campaign not found & gone"))

	assert.Equal(t, "Something went wrong", doc.Find("h2").Text())
	assert.Equal(t, "Campaign not found & gone", doc.Find("p").Text())
}
