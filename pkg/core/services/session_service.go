package services

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/shortling/shortling/pkg/core/domain"
	"github.com/shortling/shortling/pkg/ports"
)

const (
	loginFailedMsg    = "Login failed. Please check your credentials."
	registerFailedMsg = "Registration failed. Please try again."
)

// SessionService owns the current session and its mirrored copy in the
// credential store. It is constructed explicitly and handed to consumers;
// nothing reaches it through package-level state.
type SessionService struct {
	gateway ports.Gateway
	store   ports.CredentialStore
	notify  ports.Notifier
	logger  *zap.Logger

	mu      sync.RWMutex
	session domain.Session
}

// NewSessionService probes the credential store synchronously. A complete
// persisted pair restores the authenticated state without any network call;
// the token is trusted until a backend call rejects it. Anything less starts
// anonymous.
func NewSessionService(gateway ports.Gateway, store ports.CredentialStore, notify ports.Notifier, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}

	svc := &SessionService{
		gateway: gateway,
		store:   store,
		notify:  notify,
		logger:  logger,
	}

	session, found, err := store.Load()
	if err != nil {
		logger.Warn("credential storage unreadable, starting anonymous", zap.Error(err))
		return svc
	}
	if found {
		svc.session = session
		logger.Debug("session restored", zap.String("username", session.Username))
	}
	return svc
}

// Current returns a copy of the session record.
func (s *SessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *SessionService) Authenticated() bool {
	return s.Current().Authenticated()
}

// Login exchanges credentials for a token. The backend does not echo the
// identity, so the session is built from the submitted username. On failure
// nothing changes and the error is returned so the caller can abort whatever
// it was about to do next.
func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) error {
	token, err := s.gateway.Login(ctx, creds)
	if err != nil {
		s.notify.Error(userMessage(err, loginFailedMsg))
		return err
	}

	session := domain.Session{Username: creds.Username, Token: token}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	if err := s.store.Save(session); err != nil {
		// The in-memory session stands; only persistence across runs is lost.
		s.logger.Warn("persist session", zap.Error(err))
	}

	s.notify.Success("Login successful!")
	return nil
}

// Register creates an account without authenticating it; the caller is
// expected to send the user to the login flow afterwards.
func (s *SessionService) Register(ctx context.Context, profile domain.Profile) error {
	if err := s.gateway.Register(ctx, profile); err != nil {
		s.notify.Error(userMessage(err, registerFailedMsg))
		return err
	}
	s.notify.Success("Registration successful! Please login.")
	return nil
}

// Logout is purely local: the token is a stateless bearer credential, there
// is no server-side session to invalidate. It never fails the caller.
func (s *SessionService) Logout() {
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		s.logger.Warn("clear credential storage", zap.Error(err))
	}
	s.notify.Success("Logged out successfully")
}

// userMessager is implemented by errors that carry backend-provided text fit
// to show the user.
type userMessager interface {
	UserMessage() string
}

func userMessage(err error, fallback string) string {
	var um userMessager
	if errors.As(err, &um) && um.UserMessage() != "" {
		return um.UserMessage()
	}
	return fallback
}
