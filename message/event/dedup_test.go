package event

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeenCacheRemembersKeys(t *testing.T) {
	cache := newSeenCache(10, time.Minute)

	assert.False(t, cache.Seen("a"))
	cache.Mark("a")
	assert.True(t, cache.Seen("a"))
	assert.False(t, cache.Seen("b"))
}

func TestSeenCacheExpiresEntries(t *testing.T) {
	cache := newSeenCache(10, time.Millisecond)

	cache.Mark("a")
	time.Sleep(5 * time.Millisecond)
	assert.False(t, cache.Seen("a"))
}

func TestSeenCacheIsBounded(t *testing.T) {
	cache := newSeenCache(3, time.Minute)

	for i := 0; i < 10; i++ {
		cache.Mark(fmt.Sprintf("key-%d", i))
	}

	// Oldest keys are evicted, newest survive.
	assert.False(t, cache.Seen("key-0"))
	assert.True(t, cache.Seen("key-9"))
	assert.LessOrEqual(t, len(cache.entries), 3)
}
