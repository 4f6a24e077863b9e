package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vidsum/internal/models"
	"github.com/desertthunder/vidsum/internal/shared"
	"golang.org/x/oauth2"
)

// Store persists the oracle's session between runs.
//
// Implemented by repositories.SessionRepository; tests use an in-memory stub.
type Store interface {
	Save(session *models.Session) error
	Load() (*models.Session, error)
	Clear() error
}

// Event describes a session state transition delivered to watchers.
type Event struct {
	Authenticated bool
	User          *models.User
}

// Oracle wraps the identity provider and owns the single active session.
//
// All other components observe the session through the oracle; none of them
// mutate it. Watchers are notified on every sign-in, sign-up, sign-out, and
// restored-session load.
type Oracle struct {
	provider *Provider
	store    Store
	logger   *log.Logger

	mu       sync.Mutex
	session  *models.Session
	watchers []func(Event)
}

// NewOracle creates an Oracle and restores any persisted session.
//
// A corrupt or missing session row degrades to the signed-out state rather
// than failing construction.
func NewOracle(provider *Provider, store Store, logger *log.Logger) *Oracle {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	o := &Oracle{provider: provider, store: store, logger: logger}

	if store != nil {
		session, err := store.Load()
		if err != nil {
			logger.Debugf("no restorable session: %v", err)
		} else if session != nil {
			if err := session.Validate(); err != nil {
				logger.Warnf("discarding persisted session: %v", err)
				store.Clear()
			} else {
				o.session = session
			}
		}
	}

	return o
}

// Watch registers fn to be called on every session state transition.
//
// Watchers run synchronously on the goroutine performing the transition.
func (o *Oracle) Watch(fn func(Event)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.watchers = append(o.watchers, fn)
}

// IsAuthenticated reports whether a session is active.
func (o *Oracle) IsAuthenticated() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.session != nil
}

// CurrentUser returns the active session's user, or nil when signed out.
func (o *Oracle) CurrentUser() *models.User {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session == nil {
		return nil
	}
	u := o.session.User()
	return &u
}

// SignIn authenticates with the provider and installs the resulting session.
func (o *Oracle) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	cred, err := o.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return o.install(cred)
}

// SignUp registers a new account and installs the resulting session.
//
// Password rules (minimum length, confirmation) are enforced by
// ValidatePassword in the calling form; the provider applies its own policy
// on top.
func (o *Oracle) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	cred, err := o.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return o.install(cred)
}

// SignOut destroys the active session and notifies watchers.
func (o *Oracle) SignOut(ctx context.Context) error {
	o.mu.Lock()
	if o.session == nil {
		o.mu.Unlock()
		return shared.ErrNoActiveSession
	}
	o.session = nil
	o.mu.Unlock()

	if o.store != nil {
		if err := o.store.Clear(); err != nil {
			// The in-memory session is already gone; the stale row will be
			// replaced on the next sign-in.
			o.logger.Warnf("failed to clear persisted session: %v", err)
		}
	}

	o.notify(Event{Authenticated: false})
	return nil
}

// IDToken returns a bearer token for the active session, refreshing it
// through the provider when the cached one is about to expire.
func (o *Oracle) IDToken(ctx context.Context) (string, error) {
	o.mu.Lock()
	session := o.session
	o.mu.Unlock()

	if session == nil {
		return "", shared.ErrNotAuthenticated
	}
	if !session.Expired(time.Now()) {
		return session.IDToken, nil
	}

	cred, err := o.provider.Refresh(ctx, session.RefreshToken)
	if err != nil {
		return "", err
	}

	o.mu.Lock()
	// The session may have been destroyed while the refresh was in flight.
	if o.session == nil {
		o.mu.Unlock()
		return "", shared.ErrNotAuthenticated
	}
	o.session.IDToken = cred.IDToken
	if cred.RefreshToken != "" {
		o.session.RefreshToken = cred.RefreshToken
	}
	o.session.ExpiresAt = cred.ExpiresAt
	o.session.UpdatedAt = time.Now()
	refreshed := *o.session
	o.mu.Unlock()

	if o.store != nil {
		if err := o.store.Save(&refreshed); err != nil {
			o.logger.Warnf("failed to persist refreshed session: %v", err)
		}
	}

	return cred.IDToken, nil
}

// TokenSource adapts the oracle to [oauth2.TokenSource] for the API client.
func (o *Oracle) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &oracleTokenSource{ctx: ctx, oracle: o}
}

type oracleTokenSource struct {
	ctx    context.Context
	oracle *Oracle
}

func (ts *oracleTokenSource) Token() (*oauth2.Token, error) {
	token, err := ts.oracle.IDToken(ts.ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

// install replaces the active session with one built from a fresh credential.
func (o *Oracle) install(cred *Credential) (*models.User, error) {
	now := time.Now()
	session := &models.Session{
		ID:            shared.GenerateID(),
		UID:           cred.UID,
		Email:         cred.Email,
		EmailVerified: cred.EmailVerified,
		IDToken:       cred.IDToken,
		RefreshToken:  cred.RefreshToken,
		ExpiresAt:     cred.ExpiresAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := session.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	o.mu.Lock()
	o.session = session
	o.mu.Unlock()

	if o.store != nil {
		if err := o.store.Save(session); err != nil {
			o.logger.Warnf("failed to persist session: %v", err)
		}
	}

	user := session.User()
	o.notify(Event{Authenticated: true, User: &user})
	return &user, nil
}

func (o *Oracle) notify(event Event) {
	o.mu.Lock()
	watchers := make([]func(Event), len(o.watchers))
	copy(watchers, o.watchers)
	o.mu.Unlock()

	for _, fn := range watchers {
		fn(event)
	}
}

// ValidatePassword applies the registration form's password rules.
func ValidatePassword(password, confirm string) error {
	if len(password) < 6 {
		return shared.ErrPasswordTooShort
	}
	if password != confirm {
		return shared.ErrPasswordMismatch
	}
	return nil
}
