package memcache

import (
	"context"
	"sync"
	"time"
)

type SignedURLStore interface {
	Set(key string, url string, ttl time.Duration)

	// Get returns the cached url for key if it has not expired.
	Get(key string) (string, bool)

	Delete(key string)
}

type entry struct {
	url       string
	expiresAt time.Time
}

type SignedURLs struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewSignedURLs() *SignedURLs {
	return &SignedURLs{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *SignedURLs) Set(key string, url string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		url:       url,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *SignedURLs) Get(key string) (string, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if s.now().After(e.expiresAt) {
		s.Delete(key)
		return "", false
	}
	return e.url, true
}

func (s *SignedURLs) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Purge drops every expired entry and reports how many were removed.
func (s *SignedURLs) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
			removed++
		}
	}
	return removed
}

// RunJanitor purges expired entries every interval until ctx is done.
func (s *SignedURLs) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Purge()
		}
	}
}

// Len reports how many entries are held, expired or not.
func (s *SignedURLs) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
