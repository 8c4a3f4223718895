package cache

import (
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
)

// CacheManager holds all application caches
type CacheManager struct {
	// Catalog reads, only populated when the catalog is database backed.
	Campaigns     *UnifiedCache[[]models.Campaign]
	Conversations *UnifiedCache[[]models.Conversation]
	Messages      *UnifiedCache[[]models.Message]

	// Per-session set of campaign ids the user applied to.
	Applications *UnifiedCache[map[string]struct{}]

	// Session ids that were logged out, keyed by id with the logout time.
	EndedSessions *UnifiedCache[time.Time]
}

// NewCacheManager creates a cache manager. applicationsTTL bounds how long an
// idle session keeps its applications. sessionTTL should match the cookie
// lifetime so an ended session stays rejected for as long as its cookie could
// be replayed.
func NewCacheManager(applicationsTTL, sessionTTL time.Duration, logger *zap.Logger) *CacheManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheManager{
		Campaigns:     NewUnifiedCache[[]models.Campaign](5*time.Minute, "campaigns", logger),
		Conversations: NewUnifiedCache[[]models.Conversation](5*time.Minute, "conversations", logger),
		Messages:      NewUnifiedCache[[]models.Message](5*time.Minute, "messages", logger),
		Applications:  NewUnifiedCache[map[string]struct{}](applicationsTTL, "applications", logger),
		EndedSessions: NewUnifiedCache[time.Time](sessionTTL, "ended_sessions", logger),
	}
}

// GetAllMetrics returns metrics for all caches
func (cm *CacheManager) GetAllMetrics() map[string]CacheMetrics {
	return map[string]CacheMetrics{
		"campaigns":      cm.Campaigns.GetMetrics(),
		"conversations":  cm.Conversations.GetMetrics(),
		"messages":       cm.Messages.GetMetrics(),
		"applications":   cm.Applications.GetMetrics(),
		"ended_sessions": cm.EndedSessions.GetMetrics(),
	}
}

// ClearCatalog drops cached catalog reads. Session scoped caches are left untouched.
func (cm *CacheManager) ClearCatalog() {
	cm.Campaigns.Clear()
	cm.Conversations.Clear()
	cm.Messages.Clear()
}
