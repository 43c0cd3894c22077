package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortling/shortling/pkg/adapters/api"
	"github.com/shortling/shortling/pkg/core/domain"
)

// fakeGateway implements ports.Gateway with pluggable behavior and call
// counting, so tests can assert which operations hit the "network".
type fakeGateway struct {
	loginFunc    func(domain.Credentials) (string, error)
	registerFunc func(domain.Profile) error
	shortenFunc  func(token, originalURL string) (*domain.Link, error)
	listFunc     func(token string) ([]domain.Link, error)
	eventsFunc   func(token, shortURL string) ([]domain.ClickEvent, error)
	clicksFunc   func(token string) (map[string]int64, error)

	calls int
}

func (g *fakeGateway) Login(_ context.Context, creds domain.Credentials) (string, error) {
	g.calls++
	if g.loginFunc == nil {
		return "", errors.New("unexpected Login call")
	}
	return g.loginFunc(creds)
}

func (g *fakeGateway) Register(_ context.Context, profile domain.Profile) error {
	g.calls++
	if g.registerFunc == nil {
		return errors.New("unexpected Register call")
	}
	return g.registerFunc(profile)
}

func (g *fakeGateway) CreateShortURL(_ context.Context, token, originalURL string) (*domain.Link, error) {
	g.calls++
	if g.shortenFunc == nil {
		return nil, errors.New("unexpected CreateShortURL call")
	}
	return g.shortenFunc(token, originalURL)
}

func (g *fakeGateway) ListMyURLs(_ context.Context, token string) ([]domain.Link, error) {
	g.calls++
	if g.listFunc == nil {
		return nil, errors.New("unexpected ListMyURLs call")
	}
	return g.listFunc(token)
}

func (g *fakeGateway) GetURLAnalytics(_ context.Context, token, shortURL string, _, _ time.Time) ([]domain.ClickEvent, error) {
	g.calls++
	if g.eventsFunc == nil {
		return nil, errors.New("unexpected GetURLAnalytics call")
	}
	return g.eventsFunc(token, shortURL)
}

func (g *fakeGateway) GetTotalClicks(_ context.Context, token string, _, _ time.Time) (map[string]int64, error) {
	g.calls++
	if g.clicksFunc == nil {
		return nil, errors.New("unexpected GetTotalClicks call")
	}
	return g.clicksFunc(token)
}

// memStore is an in-memory ports.CredentialStore.
type memStore struct {
	session domain.Session
	saved   bool
}

func (s *memStore) Load() (domain.Session, bool, error) {
	if !s.saved {
		return domain.Session{}, false, nil
	}
	return s.session, true, nil
}

func (s *memStore) Save(session domain.Session) error {
	s.session = session
	s.saved = true
	return nil
}

func (s *memStore) Clear() error {
	s.session = domain.Session{}
	s.saved = false
	return nil
}

// recorder captures toasts.
type recorder struct {
	successes []string
	errors    []string
}

func (r *recorder) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) Error(msg string)   { r.errors = append(r.errors, msg) }

func TestLoginSuccess(t *testing.T) {
	gateway := &fakeGateway{
		loginFunc: func(creds domain.Credentials) (string, error) {
			return "tok-123", nil
		},
	}
	store := &memStore{}
	notify := &recorder{}
	svc := NewSessionService(gateway, store, notify, nil)

	err := svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)

	assert.True(t, svc.Authenticated())
	// The backend echoes only the token; the identity comes from the
	// submitted credentials, and exactly that pair gets persisted.
	assert.Equal(t, domain.Session{Username: "alice", Token: "tok-123"}, svc.Current())
	assert.Equal(t, domain.Session{Username: "alice", Token: "tok-123"}, store.session)
	assert.Equal(t, []string{"Login successful!"}, notify.successes)
}

func TestLoginFailureUsesServerMessage(t *testing.T) {
	gateway := &fakeGateway{
		loginFunc: func(domain.Credentials) (string, error) {
			return "", &api.APIError{StatusCode: 401, Message: "Bad credentials"}
		},
	}
	store := &memStore{}
	notify := &recorder{}
	svc := NewSessionService(gateway, store, notify, nil)

	err := svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "nope"})
	require.Error(t, err)

	assert.False(t, svc.Authenticated())
	assert.False(t, store.saved)
	assert.Equal(t, []string{"Bad credentials"}, notify.errors)
}

func TestLoginFailureGenericFallback(t *testing.T) {
	gateway := &fakeGateway{
		loginFunc: func(domain.Credentials) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	notify := &recorder{}
	svc := NewSessionService(gateway, &memStore{}, notify, nil)

	err := svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, []string{"Login failed. Please check your credentials."}, notify.errors)
}

func TestLoginFailureLeavesExistingSession(t *testing.T) {
	store := &memStore{session: domain.Session{Username: "bob", Token: "tok-bob"}, saved: true}
	gateway := &fakeGateway{
		loginFunc: func(domain.Credentials) (string, error) {
			return "", &api.APIError{StatusCode: 401}
		},
	}
	svc := NewSessionService(gateway, store, &recorder{}, nil)

	err := svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "nope"})
	require.Error(t, err)

	assert.Equal(t, domain.Session{Username: "bob", Token: "tok-bob"}, svc.Current())
	assert.Equal(t, "tok-bob", store.session.Token)
}

func TestRegisterSuccessDoesNotAuthenticate(t *testing.T) {
	gateway := &fakeGateway{
		registerFunc: func(domain.Profile) error { return nil },
	}
	store := &memStore{}
	notify := &recorder{}
	svc := NewSessionService(gateway, store, notify, nil)

	err := svc.Register(context.Background(), domain.Profile{Username: "alice", Email: "a@b.co", Password: "hunter22"})
	require.NoError(t, err)

	assert.False(t, svc.Authenticated())
	assert.False(t, store.saved)
	assert.Equal(t, []string{"Registration successful! Please login."}, notify.successes)
}

func TestRegisterFailure(t *testing.T) {
	gateway := &fakeGateway{
		registerFunc: func(domain.Profile) error {
			return &api.APIError{StatusCode: 400, Message: "Username already exists"}
		},
	}
	notify := &recorder{}
	svc := NewSessionService(gateway, &memStore{}, notify, nil)

	err := svc.Register(context.Background(), domain.Profile{Username: "taken", Email: "a@b.co", Password: "hunter22"})
	require.Error(t, err)
	assert.Equal(t, []string{"Username already exists"}, notify.errors)
}

func TestLogout(t *testing.T) {
	store := &memStore{session: domain.Session{Username: "alice", Token: "tok"}, saved: true}
	notify := &recorder{}
	svc := NewSessionService(&fakeGateway{}, store, notify, nil)
	require.True(t, svc.Authenticated())

	svc.Logout()

	assert.False(t, svc.Authenticated())
	assert.Equal(t, domain.Session{}, svc.Current())
	assert.False(t, store.saved)
	assert.Equal(t, []string{"Logged out successfully"}, notify.successes)
}

func TestLogoutWhenAnonymous(t *testing.T) {
	// Logout is idempotent: anonymous in, anonymous out.
	store := &memStore{}
	svc := NewSessionService(&fakeGateway{}, store, &recorder{}, nil)

	svc.Logout()

	assert.False(t, svc.Authenticated())
	assert.False(t, store.saved)
}

func TestRestoreFromStoreSkipsNetwork(t *testing.T) {
	store := &memStore{session: domain.Session{Username: "alice", Token: "tok"}, saved: true}
	gateway := &fakeGateway{}

	svc := NewSessionService(gateway, store, &recorder{}, nil)

	assert.True(t, svc.Authenticated())
	assert.Equal(t, "alice", svc.Current().Username)
	assert.Zero(t, gateway.calls, "restoring a session must not touch the network")
}

func TestFreshStoreStartsAnonymous(t *testing.T) {
	svc := NewSessionService(&fakeGateway{}, &memStore{}, &recorder{}, nil)
	assert.False(t, svc.Authenticated())
}
