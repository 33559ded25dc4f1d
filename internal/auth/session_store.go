package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Kay-svg505/Philologic-platform/internal/cache"
)

const sessionKeyPrefix = "session:"

// ErrSessionNotFound is returned when the session expired or was logged out.
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side record behind a session cookie.
type Session struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// SessionStore persists sessions by id.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, session Session, ttl time.Duration) error
	Load(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions in Redis under session:<id>.
type RedisSessionStore struct {
	cache *cache.Client
}

var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a new session store.
func NewRedisSessionStore(cache *cache.Client) *RedisSessionStore {
	return &RedisSessionStore{cache: cache}
}

func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, session Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+sessionID, payload, ttl)
}

func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*Session, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrSessionNotFound
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}
