// Package session issues and tracks opaque login tokens. The token is the
// only thing the client holds; everything else lives server-side behind the
// Store interface, so the default in-memory store can be swapped for Redis
// without touching route logic.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is the server-side session state for one token.
type Record struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Firstname string    `json:"firstname"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store persists session records. Get returns (nil, nil) for an unknown
// token.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Get(ctx context.Context, token string) (*Record, error)
	Delete(ctx context.Context, token string) error
}

type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Login creates a session for the user and returns the opaque token to hand
// to the client.
func (m *Manager) Login(ctx context.Context, userID, firstname string) (string, error) {
	rec := Record{
		Token:     uuid.NewString(),
		UserID:    userID,
		Firstname: firstname,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.store.Save(ctx, rec); err != nil {
		return "", err
	}
	return rec.Token, nil
}

// Check reports whether the token maps to a live session. On success it also
// returns the uppercased first character of the stored firstname, the only
// identity detail the status endpoint leaks.
func (m *Manager) Check(ctx context.Context, token string) (bool, string) {
	if token == "" {
		return false, ""
	}
	rec, err := m.store.Get(ctx, token)
	if err != nil || rec == nil {
		return false, ""
	}
	if time.Now().After(rec.ExpiresAt) {
		_ = m.store.Delete(ctx, token)
		return false, ""
	}

	initial := ""
	if rec.Firstname != "" {
		runes := []rune(rec.Firstname)
		initial = strings.ToUpper(string(runes[0]))
	}
	return true, initial
}

// Destroy removes the session record for the token.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}
