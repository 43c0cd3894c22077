package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shortling/shortling/pkg/core/domain"
	"github.com/shortling/shortling/pkg/ports"
)

const (
	shortenFailedMsg   = "Failed to create short URL"
	listFailedMsg      = "Failed to fetch URLs"
	analyticsFailedMsg = "Failed to fetch analytics"
)

// LinkService drives the authenticated link operations: create, list and the
// two analytics fetches. It attaches the current bearer token per call and
// keeps the local cache in step with what the backend last returned.
type LinkService struct {
	gateway ports.Gateway
	session ports.SessionService
	cache   ports.LinkCache
	notify  ports.Notifier
	logger  *zap.Logger
}

// NewLinkService wires the dependencies; cache may be nil when the caller
// does not want offline snapshots.
func NewLinkService(gateway ports.Gateway, session ports.SessionService, cache ports.LinkCache, notify ports.Notifier, logger *zap.Logger) *LinkService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LinkService{
		gateway: gateway,
		session: session,
		cache:   cache,
		notify:  notify,
		logger:  logger,
	}
}

// Shorten validates and submits one URL. Validation failures are returned
// without touching the network so the form can show them inline.
func (s *LinkService) Shorten(ctx context.Context, originalURL string) (*domain.Link, error) {
	if err := domain.ValidateOriginalURL(originalURL); err != nil {
		return nil, err
	}

	link, err := s.gateway.CreateShortURL(ctx, s.session.Current().Token, originalURL)
	if err != nil {
		s.notify.Error(userMessage(err, shortenFailedMsg))
		return nil, err
	}

	s.notify.Success("Short URL created successfully!")
	return link, nil
}

// List fetches the user's links in server order. On success the cache is
// refreshed; when the backend is unreachable the last snapshot is served
// instead and the second return value reports that the data is stale.
func (s *LinkService) List(ctx context.Context) ([]domain.Link, bool, error) {
	current := s.session.Current()

	links, err := s.gateway.ListMyURLs(ctx, current.Token)
	if err != nil {
		if cached, ok := s.cachedLinks(ctx, current.Username); ok {
			s.logger.Info("serving cached links", zap.String("username", current.Username))
			s.notify.Error(userMessage(err, listFailedMsg))
			return cached, true, nil
		}
		s.notify.Error(userMessage(err, listFailedMsg))
		return nil, false, err
	}

	if s.cache != nil {
		if err := s.cache.Replace(ctx, current.Username, links); err != nil {
			s.logger.Warn("refresh link cache", zap.Error(err))
		}
	}
	return links, false, nil
}

func (s *LinkService) cachedLinks(ctx context.Context, owner string) ([]domain.Link, bool) {
	if s.cache == nil {
		return nil, false
	}
	cached, err := s.cache.List(ctx, owner)
	if err != nil {
		s.logger.Warn("read link cache", zap.Error(err))
		return nil, false
	}
	return cached, len(cached) > 0
}

// URLAnalytics returns the day-by-day click series for one short URL over
// [start, end], with absent days filled in as zero.
func (s *LinkService) URLAnalytics(ctx context.Context, shortURL string, start, end time.Time) (domain.ClickSeries, error) {
	events, err := s.gateway.GetURLAnalytics(ctx, s.session.Current().Token, shortURL, start, end)
	if err != nil {
		s.notify.Error(userMessage(err, analyticsFailedMsg))
		return domain.ClickSeries{}, err
	}
	return domain.SeriesFromEvents(start, end, events), nil
}

// TotalClicks returns the click series across all of the user's links.
func (s *LinkService) TotalClicks(ctx context.Context, start, end time.Time) (domain.ClickSeries, error) {
	clicks, err := s.gateway.GetTotalClicks(ctx, s.session.Current().Token, start, end)
	if err != nil {
		s.notify.Error(userMessage(err, analyticsFailedMsg))
		return domain.ClickSeries{}, err
	}
	return domain.NewClickSeries(start, end, clicks), nil
}
