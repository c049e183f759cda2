package campaign

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/classtym/campaign/handler"
	"github.com/classtym/campaign/pkg/clientip"
	"github.com/classtym/campaign/pkg/environment"
	"github.com/classtym/campaign/pkg/httpserver"
	"github.com/classtym/campaign/pkg/logger"
	"github.com/classtym/campaign/pkg/requestid"
	"github.com/classtym/campaign/svc/content"
	"github.com/classtym/campaign/svc/registration"
)

// Dependencies are the services mounted by the campaign router.
type Dependencies struct {
	Env          environment.Environment
	Logger       *slog.Logger
	Registration *registration.Service
	Content      *content.Service
	Checks       []httpserver.Check
}

// NewRouter builds the HTTP surface of the campaign backend:
//
//	GET  /api/ip
//	POST /api/{funnel}/registration
//	GET  /api/content/{funnel}
//	GET  /api/content/{funnel}/{section}
//	GET  /health/live
//	GET  /health/ready
func NewRouter(d Dependencies) http.Handler {
	log := d.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(d.Env),
		accessLog(log),
		middleware.Recoverer,
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.NewHTTPError(http.StatusMethodNotAllowed, "")).Render(w, r)
	})

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, d.Checks...))

	r.Route("/api", func(r chi.Router) {
		r.Get("/ip", handler.Wrap(resolveIP))
		if d.Registration != nil {
			d.Registration.Routes(r)
		}
		if d.Content != nil {
			d.Content.Routes(r)
		}
	})

	return r
}

type ipResponse struct {
	IP *string `json:"ip"`
}

// resolveIP answers with the visitor address, or null when none is known.
func resolveIP(ctx handler.Context, _ struct{}) handler.Response {
	ip := clientip.FromContext(ctx)
	if ip == "" {
		return handler.JSON(ipResponse{})
	}
	return handler.JSON(ipResponse{IP: &ip})
}

// accessLog logs one line per request with status and duration.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.InfoContext(r.Context(), "http request",
				logger.Component("http"),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
