package messages

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
)

// FilterConversations keeps the conversations whose brand name contains
// query, ignoring case. An empty query keeps everything. Order is preserved
// and the result is never nil.
func FilterConversations(all []models.Conversation, query string) []models.Conversation {
	out := make([]models.Conversation, 0, len(all))
	if query == "" {
		return append(out, all...)
	}

	fold := cases.Fold()
	q := fold.String(query)
	for _, c := range all {
		if strings.Contains(fold.String(c.BrandName), q) {
			out = append(out, c)
		}
	}
	return out
}

// WithUnread returns the conversations that have unread messages.
func WithUnread(all []models.Conversation) []models.Conversation {
	out := make([]models.Conversation, 0, len(all))
	for _, c := range all {
		if c.UnreadCount > 0 {
			out = append(out, c)
		}
	}
	return out
}
