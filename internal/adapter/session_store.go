package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pgcet-quiz/internal/cache"
	"pgcet-quiz/internal/domain"
)

const (
	sessionServiceName = "session"
	sessionObjectType  = "state"
)

// CacheSessionStore keeps sessions as JSON documents in a domain.Cache.
type CacheSessionStore struct {
	cache domain.Cache
}

func NewCacheSessionStore(c domain.Cache) domain.SessionStore {
	return &CacheSessionStore{cache: c}
}

// SessionKey returns the cache key of a session.
func SessionKey(id string) string {
	return cache.GenerateCacheKey(sessionServiceName, sessionObjectType, id)
}

func (s *CacheSessionStore) Get(ctx context.Context, id string) (domain.Session, error) {
	raw, err := s.cache.Get(ctx, SessionKey(id))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return domain.Session{}, domain.ErrSessionNotFound
		}
		return domain.Session{}, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return domain.Session{}, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return session, nil
}

func (s *CacheSessionStore) Save(ctx context.Context, session domain.Session, ttl time.Duration) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}
	if err := s.cache.Set(ctx, SessionKey(session.ID), string(raw), ttl); err != nil {
		return fmt.Errorf("failed to store session %s: %w", session.ID, err)
	}
	return nil
}

func (s *CacheSessionStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, SessionKey(id))
}
