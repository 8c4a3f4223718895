package campaigns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(t *testing.T, f Filter) []string {
	t.Helper()
	out := []string{}
	for _, c := range f.Apply(SampleCampaigns()) {
		out = append(out, c.Title)
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "all tab keeps the original order",
			filter: NewFilter("", "", ""),
			want: []string{
				"Summer Fashion Collection Promotion",
				"Fitness Product Launch",
				"Organic Skincare Review",
				"Travel Destination Promotion",
			},
		},
		{
			name:   "applied tab",
			filter: NewFilter("applied", "", "all"),
			want:   []string{"Organic Skincare Review"},
		},
		{
			name:   "available tab",
			filter: NewFilter("available", "", "all"),
			want: []string{
				"Summer Fashion Collection Promotion",
				"Fitness Product Launch",
				"Travel Destination Promotion",
			},
		},
		{
			name:   "query matches the title",
			filter: NewFilter("all", "travel", "all"),
			want:   []string{"Travel Destination Promotion"},
		},
		{
			name:   "query ignores case",
			filter: NewFilter("all", "TRAVEL", "all"),
			want:   []string{"Travel Destination Promotion"},
		},
		{
			name:   "query whitespace is matched literally",
			filter: NewFilter("all", "travel  ", "all"),
			want:   []string{},
		},
		{
			name:   "query matches the brand name",
			filter: NewFilter("all", "natural glow", "all"),
			want:   []string{"Organic Skincare Review"},
		},
		{
			name:   "query matches the description",
			filter: NewFilter("all", "revolutionary", "all"),
			want:   []string{"Fitness Product Launch"},
		},
		{
			name:   "category compares the brand industry",
			filter: NewFilter("all", "", "Beauty"),
			want:   []string{"Organic Skincare Review"},
		},
		{
			name:   "category without campaigns",
			filter: NewFilter("all", "", "food"),
			want:   []string{},
		},
		{
			name:   "predicates are combined",
			filter: NewFilter("available", "launch", "fitness"),
			want:   []string{"Fitness Product Launch"},
		},
		{
			name:   "applied tab with a non matching query",
			filter: NewFilter("applied", "travel", "all"),
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(t, tt.filter))
		})
	}
}

func TestFilter_ApplyNeverNil(t *testing.T) {
	got := NewFilter("applied", "", "technology").Apply(SampleCampaigns())

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseTab(t *testing.T) {
	assert.Equal(t, TabAll, ParseTab(""))
	assert.Equal(t, TabAll, ParseTab("bogus"))
	assert.Equal(t, TabAvailable, ParseTab("Available"))
	assert.Equal(t, TabApplied, ParseTab(" applied "))
}

func TestFilter_Options(t *testing.T) {
	f := NewFilter("applied", "", "travel")

	tabs := f.TabOptions()
	require.Len(t, tabs, 3)
	assert.Equal(t, "All Campaigns", tabs[0].Label)
	assert.True(t, tabs[2].Selected)

	cats := f.CategoryOptions()
	require.Len(t, cats, len(Categories))
	assert.Equal(t, "All Categories", cats[0].Label)
	for _, o := range cats {
		assert.Equal(t, o.Value == "travel", o.Selected, o.Value)
	}
	assert.Equal(t, "Technology", cats[6].Label)
}
