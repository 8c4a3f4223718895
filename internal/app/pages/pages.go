package pages

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	printer = message.NewPrinter(language.English)

	templates = template.Must(template.New("pages").Funcs(funcMap).ParseFS(templateFS, "templates/*.html"))
)

var funcMap = template.FuncMap{
	"cx":       Cx,
	"navClass": navClass,
	"number":   FormatNumber,
	"money":    FormatMoney,
	"percent":  FormatPercent,
	"title":    Title,
	"progress": Progress,
	"ratio":    ratio,
	"initial":  initial,
	"alert":    alertHTML,
}

// Cx joins class lists, letting later tailwind utilities override earlier
// conflicting ones.
func Cx(classes ...string) string {
	return twmerge.Merge(strings.Join(classes, " "))
}

func navClass(active bool) string {
	base := "block rounded-md px-3 py-2 text-sm font-medium text-gray-300 hover:bg-gray-700 hover:text-white"
	if !active {
		return base
	}
	return Cx(base, "bg-gray-900 text-white")
}

// FormatNumber renders n with thousands separators.
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// Title upper-cases the first letter of each word.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

func FormatMoney(n int) string {
	return "$" + FormatNumber(n)
}

func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Progress returns value as a percentage of limit, clamped to [0, 100].
func Progress(value, limit float64) int {
	if limit <= 0 || value <= 0 {
		return 0
	}
	p := int(value / limit * 100)
	if p > 100 {
		return 100
	}
	return p
}

func ratio(value, limit int) int {
	return Progress(float64(value), float64(limit))
}

func initial(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return "?"
}

func view(name string, data any) templ.Component {
	return templ.FromGoHTML(templates.Lookup(name), data)
}

type layoutView struct {
	models.LayoutTempl
	Body template.HTML
}

// LayoutPage wraps content in the application shell. Signed-in users get the
// sidebar navigation; everyone else gets a bare page.
func LayoutPage(data models.LayoutTempl) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var body template.HTML
		if data.Content != nil {
			var err error
			body, err = templ.ToGoHTML(ctx, data.Content)
			if err != nil {
				return fmt.Errorf("failed to render page content: %w", err)
			}
		}
		return templates.ExecuteTemplate(w, "layout", layoutView{LayoutTempl: data, Body: body})
	})
}

func LoginPage(v LoginView) templ.Component {
	return view("login", v)
}

const alertClass = "mb-4 rounded-md border border-red-200 bg-red-50 p-3 text-sm text-red-700"

// LoginError is the inline alert shown above the login form.
func LoginError(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div role="alert" class="`+alertClass+`">`+templ.EscapeString(message)+`</div>`)
		return err
	})
}

// alertHTML lets the login template embed the same alert markup.
func alertHTML(message string) (template.HTML, error) {
	return templ.ToGoHTML(context.Background(), LoginError(message))
}

func DashboardPage(v DashboardView) templ.Component {
	return view("dashboard", v)
}

func CampaignsPage(v CampaignsView) templ.Component {
	return view("campaigns", v)
}

// CampaignList renders only the filtered cards, for HTMX swaps.
func CampaignList(v CampaignsView) templ.Component {
	return view("campaign-list", v)
}

func CampaignDialog(c models.Campaign) templ.Component {
	return view("campaign-dialog", c)
}

func MessagesPage(v MessagesView) templ.Component {
	return view("messages", v)
}

func ConversationList(v MessagesView) templ.Component {
	return view("conversation-list", v)
}

func Thread(v ThreadView) templ.Component {
	return view("thread", v)
}

func AnalyticsPage(v AnalyticsView) templ.Component {
	return view("analytics", v)
}

// NotFound is the error panel rendered in place of page content.
func NotFound(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="rounded-lg bg-white p-8 text-center">`+
			`<h2 class="mb-2 text-lg font-semibold">Something went wrong</h2>`+
			`<p class="text-sm text-gray-500">`+templ.EscapeString(message)+`</p></div>`)
		return err
	})
}
