package memcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignedURLs_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSignedURLs()
	s.now = func() time.Time { return now }

	s.Set("media/a", "https://signed/a", time.Minute)
	s.Set("media/b", "https://signed/b", time.Hour)

	url, ok := s.Get("media/a")
	assert.True(t, ok)
	assert.Equal(t, "https://signed/a", url)

	now = now.Add(2 * time.Minute)
	_, ok = s.Get("media/a")
	assert.False(t, ok)

	url, ok = s.Get("media/b")
	assert.True(t, ok)
	assert.Equal(t, "https://signed/b", url)
}

func TestSignedURLs_DeleteAndPurge(t *testing.T) {
	now := time.Now()
	s := NewSignedURLs()
	s.now = func() time.Time { return now }

	s.Set("a", "u1", time.Second)
	s.Set("b", "u2", time.Hour)
	s.Set("c", "u3", 0)

	s.Delete("b")
	_, ok := s.Get("b")
	assert.False(t, ok)
	_, ok = s.Get("c")
	assert.False(t, ok)

	now = now.Add(time.Minute)
	assert.Equal(t, 1, s.Purge())
}

func TestSignedURLs_JanitorPurgesExpired(t *testing.T) {
	s := NewSignedURLs()
	s.Set("media/a", "u1", time.Millisecond)
	s.Set("media/b", "u2", time.Hour)
	later := time.Now().Add(time.Minute)
	s.now = func() time.Time { return later }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.RunJanitor(ctx, 5*time.Millisecond)
	}()

	assert.Eventually(t, func() bool { return s.Len() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	_, ok := s.Get("media/b")
	assert.True(t, ok)
}
