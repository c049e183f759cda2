package registration

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/classtym/campaign/handler"
	"github.com/classtym/campaign/pkg/binder"
	"github.com/classtym/campaign/pkg/clientip"
	"github.com/classtym/campaign/svc/funnel"
)

// Service exposes the registration endpoints of every funnel.
type Service struct {
	catalog *funnel.Catalog
	flow    *Flow
	log     *slog.Logger
}

// NewService creates the registration HTTP service.
func NewService(catalog *funnel.Catalog, flow *Flow, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{catalog: catalog, flow: flow, log: log}
}

// Routes registers POST /{funnel}/registration for every funnel.
func (s *Service) Routes(r chi.Router) {
	errorHandler := handler.NewErrorHandler(s.log)
	for _, f := range s.catalog.All() {
		r.Post("/"+f.Name+"/registration", handler.Wrap(s.submit(f),
			handler.WithBinders[handler.Context, Submission](binder.JSON()),
			handler.WithErrorHandler[handler.Context, Submission](errorHandler),
			handler.WithDecorators(handler.Logged[handler.Context, Submission](s.log, f.Name+".registration")),
		))
	}
}

func (s *Service) submit(f *funnel.Funnel) handler.HandlerFunc[handler.Context, Submission] {
	return func(ctx handler.Context, sub Submission) handler.Response {
		form := NewForm(f)
		form.Request = sub.Request(f)

		if ip := clientip.FromContext(ctx); ip != "" {
			form.Request.IPAddress = ip
		} else if ip := clientip.GetIP(ctx.Request()); ip != "" {
			form.Request.IPAddress = ip
		}

		outcome := s.flow.Submit(ctx, form)
		if handler.IsDataStar(ctx.Request()) {
			return outcome.DataStar(form)
		}
		return outcome.JSON()
	}
}
