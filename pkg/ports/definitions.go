package ports

import (
	"context"
	"time"

	"github.com/shortling/shortling/pkg/core/domain"
)

// Gateway defines one operation per backend capability. Implementations hold
// no session state; authenticated calls receive the bearer token from the
// caller at call time.
type Gateway interface {
	Login(ctx context.Context, creds domain.Credentials) (token string, err error)
	Register(ctx context.Context, profile domain.Profile) error
	CreateShortURL(ctx context.Context, token, originalURL string) (*domain.Link, error)
	ListMyURLs(ctx context.Context, token string) ([]domain.Link, error)
	GetURLAnalytics(ctx context.Context, token, shortURL string, start, end time.Time) ([]domain.ClickEvent, error)
	GetTotalClicks(ctx context.Context, token string, start, end time.Time) (map[string]int64, error)
}

// CredentialStore persists the {token, username} pair across runs. Save and
// Clear act on both entries together; Load reports found=false when either
// entry is missing or unreadable.
type CredentialStore interface {
	Load() (session domain.Session, found bool, err error)
	Save(session domain.Session) error
	Clear() error
}

// SessionService is the single source of truth for who is logged in.
type SessionService interface {
	Current() domain.Session
	Authenticated() bool
	Login(ctx context.Context, creds domain.Credentials) error
	Register(ctx context.Context, profile domain.Profile) error
	Logout()
}

// LinkService exposes the authenticated link operations to the UI surfaces.
type LinkService interface {
	Shorten(ctx context.Context, originalURL string) (*domain.Link, error)
	List(ctx context.Context) ([]domain.Link, bool, error)
	URLAnalytics(ctx context.Context, shortURL string, start, end time.Time) (domain.ClickSeries, error)
	TotalClicks(ctx context.Context, start, end time.Time) (domain.ClickSeries, error)
}

// Notifier is the transient toast surface the services report through.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LinkCache keeps a local snapshot of the most recent myurls fetch so the
// list stays viewable when the API is unreachable.
type LinkCache interface {
	Replace(ctx context.Context, owner string, links []domain.Link) error
	List(ctx context.Context, owner string) ([]domain.Link, error)
	Purge(ctx context.Context, owner string) error
}
