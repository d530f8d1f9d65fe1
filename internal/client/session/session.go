// Package session owns the client's notion of "who is signed in".
//
// A Manager holds the bearer token and the user record it belongs to,
// persists the token in the local metadata store, and is the only code that
// changes either. Everything else reads a Snapshot or passes Token() to the
// API client per call.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/client/client"
	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/dmitrijs2005/storeadmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/storeadmin/internal/common"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

const (
	loginFailed        = "Login failed"
	registrationFailed = "Registration failed"
)

var errNoIdentity = errors.New("session check returned no user id")

// AuthClient is the part of client.Client the session needs.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Me(ctx context.Context, token string) (*models.User, error)
}

// Session is a point-in-time copy of the authentication state.
// User is non-nil only when Token is non-empty.
type Session struct {
	Token string
	User  *models.User
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// ActionError is returned by Login and Register. Message is ready to show.
type ActionError struct {
	Message string
	Err     error
}

func (e *ActionError) Error() string { return e.Message }
func (e *ActionError) Unwrap() error { return e.Err }

type Manager struct {
	client AuthClient
	store  metadata.Repository
	log    logging.Logger
	now    func() time.Time

	mu      sync.RWMutex
	token   string
	user    *models.User
	loading bool
}

// NewManager restores the persisted token, if any. The manager reports
// Loading until the first ValidateSession call returns.
func NewManager(ctx context.Context, c AuthClient, store metadata.Repository, log logging.Logger) (*Manager, error) {
	if log == nil {
		log = logging.Discard()
	}

	raw, err := store.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return nil, fmt.Errorf("load session token: %w", err)
	}

	return &Manager{
		client:  c,
		store:   store,
		log:     log,
		now:     time.Now,
		token:   string(raw),
		loading: true,
	}, nil
}

// Login exchanges credentials for a token. On success the token is persisted
// and the token and user are set together; on failure nothing changes.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	res, err := m.client.Login(ctx, email, password)
	if err != nil {
		return &ActionError{Message: client.UserMessage(err, loginFailed), Err: err}
	}
	if res == nil || res.Token == "" {
		return &ActionError{Message: loginFailed, Err: errors.New("login response has no token")}
	}
	if res.User.ID == "" {
		return &ActionError{Message: loginFailed, Err: errors.New("login response has no user id")}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Set(ctx, common.TokenStorageKey, []byte(res.Token)); err != nil {
		return &ActionError{Message: loginFailed, Err: err}
	}

	user := res.User
	m.token = res.Token
	m.user = &user
	m.loading = false

	m.log.Info(ctx, "signed in", "user_id", user.ID)
	return nil
}

// Register creates an account. It never signs the caller in.
func (m *Manager) Register(ctx context.Context, username, email, password string) error {
	if _, err := m.client.Register(ctx, username, email, password); err != nil {
		return &ActionError{Message: client.UserMessage(err, registrationFailed), Err: err}
	}
	return nil
}

// Logout forgets the token and user. Calling it while signed out is a no-op.
// The in-memory state is cleared even when the store fails.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearLocked(ctx)
}

func (m *Manager) clearLocked(ctx context.Context) error {
	m.token = ""
	m.user = nil
	if err := m.store.Delete(ctx, common.TokenStorageKey); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}
	return nil
}

// ValidateSession checks the current token with the server and loads the
// user. Without a token it makes no call. Any failure signs the caller out.
// The returned error only reports a failure to clear the persisted token.
func (m *Manager) ValidateSession(ctx context.Context) error {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()

	if token == "" {
		m.finishLoading()
		return nil
	}

	if exp, ok := tokenExpiry(token); ok && !m.now().Before(exp) {
		m.log.Warn(ctx, "stored token expired", "expired_at", exp)
		return m.invalidate(ctx, token)
	}

	user, err := m.client.Me(ctx, token)
	if err == nil && (user == nil || user.ID == "") {
		err = errNoIdentity
	}
	if err != nil {
		m.log.Warn(ctx, "session validation failed", "error", err)
		return m.invalidate(ctx, token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	// A login or logout that raced the call wins.
	if m.token == token {
		u := *user
		m.user = &u
	}
	return nil
}

func (m *Manager) invalidate(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if m.token != token {
		return nil
	}
	return m.clearLocked(ctx)
}

func (m *Manager) finishLoading() {
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
}

// UpdateUser replaces the in-memory user record. It reports false and does
// nothing while signed out.
func (m *Manager) UpdateUser(user models.User) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return false
	}
	m.user = &user
	return true
}

func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns a copy of the current user, or nil.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) Snapshot() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := Session{Token: m.token}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

func (m *Manager) Authenticated() bool {
	return m.Snapshot().Authenticated()
}

func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// TokenExpiry reports the exp claim of the current token when it is a JWT
// that carries one.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	return tokenExpiry(m.Token())
}

// tokenExpiry reads exp without verifying the signature; the server remains
// the authority on validity.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
