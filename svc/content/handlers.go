package content

import (
	"errors"

	"github.com/go-chi/chi/v5"

	"github.com/classtym/campaign/handler"
	"github.com/classtym/campaign/pkg/binder"
	"github.com/classtym/campaign/pkg/logger"
)

type pageRequest struct {
	Funnel string `path:"funnel"`
}

type sectionRequest struct {
	Funnel  string `path:"funnel"`
	Section string `path:"section"`
}

// Routes registers GET /content/{funnel} and GET /content/{funnel}/{section}.
func (s *Service) Routes(r chi.Router) {
	r.Get("/content/{funnel}", handler.Wrap(s.handlePage,
		handler.WithBinders[handler.Context, pageRequest](binder.Path(nil)),
		handler.WithErrorHandler[handler.Context, pageRequest](handler.NewErrorHandler(s.log)),
	))
	r.Get("/content/{funnel}/{section}", handler.Wrap(s.handleSection,
		handler.WithBinders[handler.Context, sectionRequest](binder.Path(nil)),
		handler.WithErrorHandler[handler.Context, sectionRequest](handler.NewErrorHandler(s.log)),
	))
}

func (s *Service) handlePage(ctx handler.Context, req pageRequest) handler.Response {
	page, err := s.Page(ctx, req.Funnel)
	if err != nil {
		return s.failure(ctx, err)
	}
	return handler.JSON(page)
}

func (s *Service) handleSection(ctx handler.Context, req sectionRequest) handler.Response {
	raw, err := s.Section(ctx, req.Funnel, req.Section)
	if err != nil {
		return s.failure(ctx, err)
	}
	return handler.JSON(raw)
}

func (s *Service) failure(ctx handler.Context, err error) handler.Response {
	if errors.Is(err, ErrUnknownFunnel) || errors.Is(err, ErrUnknownSection) {
		return handler.JSONError(handler.ErrNotFound)
	}
	s.log.WarnContext(ctx, "content unavailable",
		logger.Component("content"),
		logger.Error(err),
	)
	return handler.JSONError(handler.ErrBadGateway)
}
