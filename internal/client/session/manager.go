// Package session is the single source of truth for whether the client is
// authenticated. It owns the locally persisted token and user record and
// keeps both consistent with the token's expiry.
//
// Session state is never stored directly. It is derived on every read:
// anonymous when no token is stored (or the stored one is expired or
// unparseable), authenticated otherwise. Reads fail closed: any storage or
// decoding problem degrades to anonymous instead of surfacing an error.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/inkpress/inkcli/internal/client/models"
	"github.com/inkpress/inkcli/internal/client/storage"
	"github.com/inkpress/inkcli/internal/common"
	"github.com/inkpress/inkcli/internal/logging"
)

// Status reports the derived session state.
// IsAuthenticated is true only when both a valid token and a user record
// are present.
type Status struct {
	IsAuthenticated bool
	User            *models.User
	Token           string
}

// Manager reads and mutates the persisted session.
type Manager struct {
	store storage.Store
	log   logging.Logger
	now   func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces the wall clock. Test seam.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager builds a Manager over the given store.
func NewManager(store storage.Store, log logging.Logger, opts ...Option) *Manager {
	m := &Manager{store: store, log: log, now: time.Now}
	for _, o := range opts {
		o(m)
	}
	return m
}

// IsTokenExpired reports whether token is unusable: absent, malformed,
// missing an exp claim, or past its expiry. The comparison is done in
// milliseconds (exp*1000 vs the current wall clock).
func (m *Manager) IsTokenExpired(token string) bool {
	if token == "" {
		return true
	}
	exp, err := tokenExpiry(token)
	if err != nil {
		m.log.Warn(context.Background(), "treating token as expired", "reason", err)
		return true
	}
	return exp.UnixMilli() <= m.now().UnixMilli()
}

// ClearAuthData removes the stored token and user record. Idempotent; safe
// to call when nothing is stored.
func (m *Manager) ClearAuthData(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear auth data", "error", err)
		return
	}
	m.log.Debug(ctx, "auth data cleared")
}

// Token returns the stored token, or "" when none is stored or the store
// is unreadable.
func (m *Manager) Token(ctx context.Context) string {
	v, err := m.store.Get(ctx, common.TokenStorageKey)
	if err != nil {
		m.log.Warn(ctx, "failed to read stored token", "error", err)
		return ""
	}
	return string(v)
}

// GetCurrentUser returns the cached user record, or nil when anonymous.
// An expired token or a corrupted record purges storage first.
func (m *Manager) GetCurrentUser(ctx context.Context) *models.User {
	if token := m.Token(ctx); token != "" && m.IsTokenExpired(token) {
		m.log.Debug(ctx, "stored token expired, clearing auth data")
		m.ClearAuthData(ctx)
		return nil
	}

	raw, err := m.store.Get(ctx, common.UserStorageKey)
	if err != nil {
		m.log.Warn(ctx, "failed to read stored user", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	// Decoding into a pointer maps a stored JSON null onto the absent state
	// instead of a zero-value user.
	var user *models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		m.log.Warn(ctx, "stored user record corrupted, clearing auth data", "error", err)
		m.ClearAuthData(ctx)
		return nil
	}
	return user
}

// CheckAuthStatus derives the current session state. An expired stored token
// purges storage and yields the anonymous status.
func (m *Manager) CheckAuthStatus(ctx context.Context) Status {
	token := m.Token(ctx)

	if token != "" && m.IsTokenExpired(token) {
		m.ClearAuthData(ctx)
		return Status{}
	}

	user := m.GetCurrentUser(ctx)
	return Status{
		IsAuthenticated: token != "" && user != nil,
		User:            user,
		Token:           token,
	}
}

// RecordSession persists the token and the user record atomically: a
// concurrent read observes either the whole session or none of it.
func (m *Manager) RecordSession(ctx context.Context, token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return m.store.SetMany(ctx, map[string][]byte{
		common.TokenStorageKey: []byte(token),
		common.UserStorageKey:  raw,
	})
}
