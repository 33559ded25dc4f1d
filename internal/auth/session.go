package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie that carries the signed session token.
const CookieName = "philologic_session"

// SessionManager starts, resolves and ends login sessions.
type SessionManager interface {
	Start(ctx context.Context, userID uint, username string) (token string, err error)
	Resolve(ctx context.Context, claims *SessionClaims) (Identity, error)
	ResolveToken(ctx context.Context, token string) (Identity, error)
	End(ctx context.Context, token string) error
	TTL() time.Duration
}

// Manager pairs a signed cookie token with a server-side session record.
type Manager struct {
	tokens *TokenService
	store  SessionStore
	ttl    time.Duration
}

var _ SessionManager = (*Manager)(nil)

// NewManager creates a session manager.
func NewManager(tokens *TokenService, store SessionStore, ttl time.Duration) *Manager {
	return &Manager{tokens: tokens, store: store, ttl: ttl}
}

// TTL returns the session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Start records a new session and returns the token for the cookie.
func (m *Manager) Start(ctx context.Context, userID uint, username string) (string, error) {
	sessionID := uuid.New().String()
	if err := m.store.Save(ctx, sessionID, Session{UserID: userID, Username: username}, m.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	token, err := m.tokens.Issue(sessionID, userID, username, m.ttl)
	if err != nil {
		_ = m.store.Delete(ctx, sessionID)
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Resolve checks that validated claims still name a live session.
func (m *Manager) Resolve(ctx context.Context, claims *SessionClaims) (Identity, error) {
	session, err := m.store.Load(ctx, claims.ID)
	if err != nil {
		return Identity{}, err
	}
	if session.UserID != claims.UserID {
		return Identity{}, ErrSessionNotFound
	}
	return Identity{UserID: session.UserID, Username: session.Username, SessionID: claims.ID}, nil
}

// ResolveToken validates a raw token and resolves its session.
func (m *Manager) ResolveToken(ctx context.Context, token string) (Identity, error) {
	claims, err := m.tokens.Parse(token)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}
	return m.Resolve(ctx, claims)
}

// End removes the session behind token. Tokens that no longer parse have
// nothing left to remove.
func (m *Manager) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := m.tokens.Parse(token)
	if err != nil {
		return nil
	}
	if err := m.store.Delete(ctx, claims.ID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// NewSessionCookie builds the cookie holding token.
func NewSessionCookie(token string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie builds a cookie that makes the browser drop the session.
func ExpiredSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
