package analytics

import (
	"strings"

	"github.com/FACorreiaa/influencer-hub/internal/app/pages"
)

const (
	DefaultTimeRange = "30d"
	AllPlatforms     = "all"
	DefaultTab       = "growth"
)

type choice struct {
	value string
	label string
}

var (
	timeRanges = []choice{
		{"7d", "Last 7 days"},
		{"30d", "Last 30 days"},
		{"90d", "Last 90 days"},
		{"6m", "Last 6 months"},
		{"1y", "Last year"},
	}
	platforms = []choice{
		{AllPlatforms, "All Platforms"},
		{"instagram", "Instagram"},
		{"tiktok", "TikTok"},
		{"youtube", "YouTube"},
		{"twitter", "Twitter"},
	}
	tabs = []choice{
		{"growth", "Growth"},
		{"engagement", "Engagement"},
		{"campaigns", "Campaigns"},
	}
)

func pick(choices []choice, value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, c := range choices {
		if c.value == value {
			return c.value
		}
	}
	return fallback
}

func options(choices []choice, selected string) []pages.Option {
	out := make([]pages.Option, 0, len(choices))
	for _, c := range choices {
		out = append(out, pages.Option{Value: c.value, Label: c.label, Selected: c.value == selected})
	}
	return out
}

// Query holds the page selectors. Unknown values fall back to the defaults.
type Query struct {
	TimeRange string
	Platform  string
	Tab       string
}

func NewQuery(timeRange, platform, tab string) Query {
	return Query{
		TimeRange: pick(timeRanges, timeRange, DefaultTimeRange),
		Platform:  pick(platforms, platform, AllPlatforms),
		Tab:       pick(tabs, tab, DefaultTab),
	}
}

func (q Query) TimeRangeOptions() []pages.Option { return options(timeRanges, q.TimeRange) }
func (q Query) PlatformOptions() []pages.Option  { return options(platforms, q.Platform) }
func (q Query) TabOptions() []pages.Option       { return options(tabs, q.Tab) }

// matchesPlatform compares a display name such as "TikTok" with the selector.
func (q Query) matchesPlatform(name string) bool {
	return q.Platform == AllPlatforms || strings.EqualFold(name, q.Platform)
}
