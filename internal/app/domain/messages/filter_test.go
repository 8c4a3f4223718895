package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brandNames(t *testing.T, query string) []string {
	t.Helper()
	out := []string{}
	for _, c := range FilterConversations(SampleConversations(), query) {
		out = append(out, c.BrandName)
	}
	return out
}

func TestFilterConversations(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Fashion Brand X", "FitLife", "Natural Glow", "Travel Adventures"}},
		{"fit", []string{"FitLife"}},
		{"FIT", []string{"FitLife"}},
		{" glow", []string{"Natural Glow"}},
		// Whitespace is part of the query.
		{"  glow ", []string{}},
		{"a", []string{"Fashion Brand X", "Natural Glow", "Travel Adventures"}},
		// Only the brand name is searched, not the last message.
		{"resort", []string{}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, brandNames(t, tt.query))
		})
	}
}

func TestFilterConversations_NeverNil(t *testing.T) {
	got := FilterConversations(nil, "")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWithUnread(t *testing.T) {
	got := WithUnread(SampleConversations())

	require.Len(t, got, 2)
	assert.Equal(t, "Fashion Brand X", got[0].BrandName)
	assert.Equal(t, "Travel Adventures", got[1].BrandName)
}
