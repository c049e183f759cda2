package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/classtym/campaign/pkg/logger"
	"github.com/classtym/campaign/svc/funnel"
	"github.com/classtym/campaign/svc/gateway"
)

// Shared CMS endpoints, requested with the funnel's page name.
const (
	SectionMetaData = "meta-data"
	SectionBanner   = "banner"
)

// Caller is the part of the gateway the service needs.
type Caller interface {
	Call(ctx context.Context, method, endpoint string, body any, opts ...gateway.CallOption) (json.RawMessage, error)
}

// Page is everything a funnel landing page renders from the CMS.
type Page struct {
	MetaData json.RawMessage            `json:"meta_data"`
	Banner   json.RawMessage            `json:"banner"`
	Sections map[string]json.RawMessage `json:"sections"`
}

// Service proxies read-only CMS content with a revalidation cache.
type Service struct {
	gateway Caller
	catalog *funnel.Catalog
	store   Store
	flight  singleflight.Group
	timeout time.Duration
	log     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithStore sets the cache store.
func WithStore(s Store) Option {
	return func(svc *Service) {
		if s != nil {
			svc.store = s
		}
	}
}

// WithFetchTimeout bounds each shared upstream fetch. Non-positive values
// keep the default.
func WithFetchTimeout(d time.Duration) Option {
	return func(svc *Service) {
		if d > 0 {
			svc.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(svc *Service) {
		if l != nil {
			svc.log = l
		}
	}
}

// NewService creates a content Service. Without WithStore content is
// cached in memory for the default revalidation interval.
func NewService(gw Caller, catalog *funnel.Catalog, opts ...Option) *Service {
	s := &Service{
		gateway: gw,
		catalog: catalog,
		timeout: DefaultFetchTimeout,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = NewMemoryStore(DefaultCacheSize, DefaultTTL)
	}
	return s
}

// Page fetches the meta data, banner and every section of a funnel
// concurrently. Any failure fails the whole page.
func (s *Service) Page(ctx context.Context, name string) (*Page, error) {
	f, ok := s.catalog.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunnel, name)
	}

	page := &Page{Sections: make(map[string]json.RawMessage, len(f.Content.Sections))}
	sections := make([]json.RawMessage, len(f.Content.Sections))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.MetaData, err = s.section(gctx, f, SectionMetaData)
		return err
	})
	g.Go(func() (err error) {
		page.Banner, err = s.section(gctx, f, SectionBanner)
		return err
	})
	for i, endpoint := range f.Content.Sections {
		g.Go(func() (err error) {
			sections[i], err = s.section(gctx, f, sectionName(f, endpoint))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, endpoint := range f.Content.Sections {
		page.Sections[sectionName(f, endpoint)] = sections[i]
	}
	return page, nil
}

// Section fetches one piece of a funnel's content: meta-data, banner or
// one of the funnel's own sections by short name (e.g. "benefits").
func (s *Service) Section(ctx context.Context, name, section string) (json.RawMessage, error) {
	f, ok := s.catalog.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunnel, name)
	}
	return s.section(ctx, f, section)
}

func (s *Service) section(ctx context.Context, f *funnel.Funnel, section string) (json.RawMessage, error) {
	method, endpoint := http.MethodGet, f.Name+"/"+section
	var body any

	switch {
	case section == SectionMetaData, section == SectionBanner:
		method, endpoint = http.MethodPost, section
		body = map[string]string{"page_name": f.Content.PageName}
	case f.Content.HasSection(endpoint):
	case f.Content.HasSection(section):
		endpoint = section
	default:
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownSection, f.Name, section)
	}

	return s.cached(ctx, f.Name+":"+section, func(ctx context.Context) (json.RawMessage, error) {
		return s.gateway.Call(ctx, method, endpoint, body)
	})
}

// cached serves key from the store, collapsing concurrent misses into a
// single upstream call. The shared call runs detached from any one caller's
// cancellation; each caller stops waiting when its own ctx is done.
func (s *Service) cached(ctx context.Context, key string, fetch func(context.Context) (json.RawMessage, error)) (json.RawMessage, error) {
	if val, ok := s.store.Get(ctx, key); ok {
		return val, nil
	}

	ch := s.flight.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		raw, err := fetch(fctx)
		if err != nil {
			return nil, err
		}
		if err := s.store.Set(fctx, key, raw); err != nil {
			s.log.WarnContext(fctx, "content cache write failed",
				logger.Component("content"),
				logger.Error(err),
			)
		}
		return raw, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(json.RawMessage), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func sectionName(f *funnel.Funnel, endpoint string) string {
	return strings.TrimPrefix(endpoint, f.Name+"/")
}
