package summary

import "sync"

type cacheKey struct {
	userId int
	date   string
}

// summaryCache memoizes computed summaries per (user, date). Entries are
// invalidated through event bus notifications published by the activity and
// category services; the bus is synchronous, so invalidation completes before
// the write request returns.
type summaryCache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]CategorySummary
}

func newSummaryCache() *summaryCache {
	return &summaryCache{entries: make(map[cacheKey][]CategorySummary)}
}

func (c *summaryCache) get(userId int, date string) ([]CategorySummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	summaries, ok := c.entries[cacheKey{userId, date}]
	return summaries, ok
}

func (c *summaryCache) put(userId int, date string, summaries []CategorySummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{userId, date}] = summaries
}

func (c *summaryCache) invalidate(userId int, date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, cacheKey{userId, date})
}

// invalidateUser drops every cached date of one user. Needed for category
// changes, which affect all of the user's summaries at once.
func (c *summaryCache) invalidateUser(userId int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.userId == userId {
			delete(c.entries, key)
		}
	}
}
