package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/classtym/campaign/modules/campaign"
	"github.com/classtym/campaign/pkg/config"
	"github.com/classtym/campaign/pkg/email"
	"github.com/classtym/campaign/pkg/environment"
	"github.com/classtym/campaign/pkg/httpserver"
	"github.com/classtym/campaign/pkg/logger"
	"github.com/classtym/campaign/pkg/redis"
	"github.com/classtym/campaign/pkg/requestid"
	"github.com/classtym/campaign/svc/content"
	"github.com/classtym/campaign/svc/funnel"
	"github.com/classtym/campaign/svc/gateway"
	"github.com/classtym/campaign/svc/registration"
)

type appConfig struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	ServiceName   string `env:"SERVICE_NAME" envDefault:"campaign"`
	GetStartedURL string `env:"GET_STARTED_URL" envDefault:"https://app.classtym.com/"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("campaign stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg     appConfig
		logCfg     logger.Config
		srvCfg     httpserver.Config
		gwCfg      gateway.Config
		funnelCfg  funnel.Config
		contentCfg content.Config
		redisCfg   redis.Config
		emailCfg   email.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&logCfg) },
		func() error { return config.Load(&srvCfg) },
		func() error { return config.Load(&gwCfg) },
		func() error { return config.Load(&funnelCfg) },
		func() error { return config.Load(&contentCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&emailCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	env := environment.Parse(appCfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, appCfg.ServiceName),
		logger.WithConfig(logCfg),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	catalog, err := funnel.Load(funnelCfg)
	if err != nil {
		return err
	}

	gw, err := gateway.New(gwCfg, gateway.WithLogger(log))
	if err != nil {
		return err
	}

	flowOpts := []registration.FlowOption{registration.WithLogger(log)}
	sender, err := email.New(emailCfg)
	switch {
	case errors.Is(err, email.ErrNotConfigured):
		log.Info("welcome email disabled", logger.Component("email"))
	case err != nil:
		return err
	default:
		flowOpts = append(flowOpts, registration.WithWelcome(
			registration.NewWelcomer(sender, appCfg.GetStartedURL, emailCfg.SupportEmail),
		))
	}

	var checks []httpserver.Check
	store := content.Store(content.NewMemoryStore(contentCfg.CacheSize, contentCfg.TTL))
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		checks = append(checks, httpserver.Check{Name: "redis", Func: redis.Healthcheck(client)})
		store = content.NewRedisStore(redis.NewStorage(client, redisCfg.KeyPrefix), contentCfg.TTL, log)
	}

	pages := content.NewService(gw, catalog,
		content.WithStore(store),
		content.WithFetchTimeout(contentCfg.FetchTimeout),
		content.WithLogger(log),
	)

	router := campaign.NewRouter(campaign.Dependencies{
		Env:          env,
		Logger:       log,
		Registration: registration.NewService(catalog, registration.NewFlow(gw, flowOpts...), log),
		Content:      pages,
		Checks:       checks,
	})

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}
