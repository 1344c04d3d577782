package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authdemo/internal/domain"
)

func TestUserCache_MissThenHit(t *testing.T) {
	c := NewUserCache()

	_, ok := c.Get("alice")
	assert.False(t, ok)

	user := &domain.User{ID: 1, Username: "alice", Email: "alice@example.com"}
	c.Put("alice", user)

	got, ok := c.Get("alice")
	require.True(t, ok)
	assert.Same(t, user, got)
	assert.Equal(t, 1, c.Len())
}

func TestUserCache_PutReplaces(t *testing.T) {
	c := NewUserCache()

	c.Put("alice", &domain.User{ID: 1, Username: "alice"})
	replacement := &domain.User{ID: 1, Username: "alice", Email: "alice@example.com"}
	c.Put("alice", replacement)

	got, ok := c.Get("alice")
	require.True(t, ok)
	assert.Same(t, replacement, got)
	assert.Equal(t, 1, c.Len())
}

func TestUserCache_ConcurrentAccess(t *testing.T) {
	c := NewUserCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		name := fmt.Sprintf("user%d", i%10)
		go func() {
			defer wg.Done()
			c.Put(name, &domain.User{ID: 1, Username: name})
		}()
		go func() {
			defer wg.Done()
			c.Get(name)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, c.Len())
}
