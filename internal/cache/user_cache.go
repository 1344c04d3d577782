package cache

import (
	"sync"

	"authdemo/internal/domain"
)

// UserCache is an unbounded in-memory cache of user records keyed by username.
// Entries live for the lifetime of the cache: no eviction, no expiry.
type UserCache struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewUserCache() *UserCache {
	return &UserCache{users: make(map[string]*domain.User)}
}

// Get returns the cached record for username, if present.
func (c *UserCache) Get(username string) (*domain.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	user, ok := c.users[username]
	return user, ok
}

// Put stores user keyed by username, replacing any previous entry.
func (c *UserCache) Put(username string, user *domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[username] = user
}

// Len reports the number of cached entries.
func (c *UserCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.users)
}
