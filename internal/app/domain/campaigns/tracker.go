package campaigns

import (
	"sync"

	"github.com/FACorreiaa/influencer-hub/internal/pkg/cache"
)

// ApplicationTracker remembers which campaigns each session applied to.
// Entries live in the Applications cache and expire with it.
type ApplicationTracker struct {
	mu    sync.Mutex
	cache *cache.UnifiedCache[map[string]struct{}]
}

func NewApplicationTracker(c *cache.UnifiedCache[map[string]struct{}]) *ApplicationTracker {
	return &ApplicationTracker{cache: c}
}

// Apply records the application and reports whether it was new. Sessions
// without an id are not tracked.
func (t *ApplicationTracker) Apply(sessionID, campaignID string) bool {
	if sessionID == "" {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	current, _ := t.cache.Get(sessionID)
	if _, ok := current[campaignID]; ok {
		return false
	}
	// Readers may hold the old map, so write a copy.
	next := make(map[string]struct{}, len(current)+1)
	for id := range current {
		next[id] = struct{}{}
	}
	next[campaignID] = struct{}{}
	t.cache.Set(sessionID, next)
	return true
}

func (t *ApplicationTracker) Has(sessionID, campaignID string) bool {
	if sessionID == "" {
		return false
	}
	applied, _ := t.cache.Get(sessionID)
	_, ok := applied[campaignID]
	return ok
}

// Forget drops everything recorded for the session.
func (t *ApplicationTracker) Forget(sessionID string) {
	if sessionID == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cache.Delete(sessionID)
}
