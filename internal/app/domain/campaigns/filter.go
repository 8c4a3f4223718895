package campaigns

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
	"github.com/FACorreiaa/influencer-hub/internal/app/pages"
)

type Tab string

const (
	TabAll       Tab = "all"
	TabAvailable Tab = "available"
	TabApplied   Tab = "applied"
)

// AllCategories bypasses the category predicate.
const AllCategories = "all"

// Categories offered by the category select. They are not derived from the
// catalog, so a category may match nothing.
var Categories = []string{AllCategories, "fashion", "beauty", "fitness", "travel", "food", "technology", "lifestyle"}

var tabLabels = []struct {
	tab   Tab
	label string
}{
	{TabAll, "All Campaigns"},
	{TabAvailable, "Available"},
	{TabApplied, "Applied"},
}

// ParseTab maps a query value to a tab. Anything unknown is the All tab.
func ParseTab(s string) Tab {
	switch Tab(strings.ToLower(strings.TrimSpace(s))) {
	case TabAvailable:
		return TabAvailable
	case TabApplied:
		return TabApplied
	default:
		return TabAll
	}
}

// Filter is the conjunction of the tab, the free text query and the category.
type Filter struct {
	Tab      Tab
	Query    string
	Category string
}

// NewFilter normalizes raw request values.
func NewFilter(tab, query, category string) Filter {
	category = strings.TrimSpace(category)
	if category == "" {
		category = AllCategories
	}
	return Filter{
		Tab:      ParseTab(tab),
		Query:    query,
		Category: category,
	}
}

func (f Filter) matchesTab(c models.Campaign) bool {
	switch f.Tab {
	case TabAvailable:
		return c.IsAvailable()
	case TabApplied:
		return c.Applied
	default:
		return true
	}
}

func (f Filter) matchesQuery(fold cases.Caser, c models.Campaign) bool {
	if f.Query == "" {
		return true
	}
	q := fold.String(f.Query)
	return strings.Contains(fold.String(c.Title), q) ||
		strings.Contains(fold.String(c.Brand.Name), q) ||
		strings.Contains(fold.String(c.Description), q)
}

func (f Filter) matchesCategory(fold cases.Caser, c models.Campaign) bool {
	if f.Category == "" || strings.EqualFold(f.Category, AllCategories) {
		return true
	}
	return fold.String(c.Brand.Industry) == fold.String(f.Category)
}

// Matches reports whether c passes every predicate of the filter.
func (f Filter) Matches(c models.Campaign) bool {
	fold := cases.Fold()
	return f.matchesTab(c) && f.matchesQuery(fold, c) && f.matchesCategory(fold, c)
}

// Apply returns the campaigns that match, keeping their original order.
// The result is never nil.
func (f Filter) Apply(all []models.Campaign) []models.Campaign {
	out := make([]models.Campaign, 0, len(all))
	for _, c := range all {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// TabOptions returns the tab bar entries with the active tab selected.
func (f Filter) TabOptions() []pages.Option {
	opts := make([]pages.Option, 0, len(tabLabels))
	for _, t := range tabLabels {
		opts = append(opts, pages.Option{Value: string(t.tab), Label: t.label, Selected: t.tab == f.Tab})
	}
	return opts
}

// CategoryOptions returns the category select entries.
func (f Filter) CategoryOptions() []pages.Option {
	opts := make([]pages.Option, 0, len(Categories))
	for _, cat := range Categories {
		label := pages.Title(cat)
		if cat == AllCategories {
			label = "All Categories"
		}
		opts = append(opts, pages.Option{Value: cat, Label: label, Selected: strings.EqualFold(cat, f.Category)})
	}
	return opts
}
